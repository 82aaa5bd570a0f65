package generator

import (
	"strings"

	"github.com/leeaandrob/trendpulse/internal/models"
)

// Keywords returns the hashtags tracked for a query.
func Keywords(query string) []string {
	tag := strings.Join(strings.Fields(query), "")
	return []string{
		"#" + tag,
		"#" + tag + "NG",
		"#Nigerian" + tag,
		"#NaijaTrends",
		"#MadeInNigeria",
		"#NaijaVibes",
	}
}

// RegionalBreakdown returns the typical share of mentions per region.
func RegionalBreakdown() []models.RegionShare {
	return []models.RegionShare{
		{Region: "Lagos", Percentage: 40},
		{Region: "Abuja", Percentage: 25},
		{Region: "Kano", Percentage: 20},
		{Region: "Port Harcourt", Percentage: 15},
	}
}

// TrendSeries returns seven days of mention counts between 1,000 and 5,999.
func TrendSeries(r *Random) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, models.TrendWindow)
	for _, day := range models.TrendDays {
		points = append(points, models.TrendPoint{
			Day:      day,
			Mentions: r.Between(1000, 6000),
		})
	}
	return points
}

// ContentSuggestions returns ready-to-post social captions for a topic.
func ContentSuggestions(topic string) []string {
	return []string{
		topic + " wey dey make person happy! 🔥 #NaijaVibes",
		"Wetin you dey wait for? Get your " + topic + " now! 💯",
		topic + " for the culture! Who dey feel am? 🚀",
		"Make we talk about " + topic + " - e dey sweet oh! ❤️",
	}
}

// CampaignTitles returns marketing campaign titles for a topic.
func CampaignTitles(topic string) []string {
	return []string{
		topic + " Fever: Na Lagos Start Am!",
		"From Naija With Love: " + topic + " Edition",
		topic + " Wahala: Good Wahala!",
		"The " + topic + " Revolution: Join the Movement",
	}
}

// PidginPhrases returns Pidgin expressions people use about a topic.
func PidginPhrases(topic string) []string {
	return []string{
		topic + " na fire!",
		"This " + topic + " sweet die!",
		topic + " dey burst brain!",
	}
}
