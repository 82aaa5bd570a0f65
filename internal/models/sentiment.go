package models

import (
	"errors"
	"sort"
)

// ErrInvalidSentiment is returned when a sentiment split cannot be rescaled.
var ErrInvalidSentiment = errors.New("sentiment percentages cannot be normalized")

// Sentiment is a positive/negative/neutral split that sums to 100.
type Sentiment struct {
	Positive int
	Negative int
	Neutral  int
}

// NormalizeSentiment rescales a raw split so it sums to exactly 100.
// Negative inputs count as zero. Rounding uses the largest remainder, ties
// going to positive, then negative, then neutral.
func NormalizeSentiment(positive, negative, neutral int) (Sentiment, error) {
	raw := [3]int{max(positive, 0), max(negative, 0), max(neutral, 0)}
	total := raw[0] + raw[1] + raw[2]
	if total == 0 {
		return Sentiment{}, ErrInvalidSentiment
	}
	if total == 100 {
		return Sentiment{Positive: raw[0], Negative: raw[1], Neutral: raw[2]}, nil
	}

	var scaled, remainder [3]int
	assigned := 0
	for i, v := range raw {
		scaled[i] = v * 100 / total
		remainder[i] = v * 100 % total
		assigned += scaled[i]
	}

	order := []int{0, 1, 2}
	sort.SliceStable(order, func(a, b int) bool {
		return remainder[order[a]] > remainder[order[b]]
	})
	for i := 0; assigned < 100; i++ {
		scaled[order[i%3]]++
		assigned++
	}

	return Sentiment{Positive: scaled[0], Negative: scaled[1], Neutral: scaled[2]}, nil
}

// ApplySentiment normalizes the analysis percentages in place.
func (a *Analysis) ApplySentiment() error {
	s, err := NormalizeSentiment(a.PositivePercentage, a.NegativePercentage, a.NeutralPercentage)
	if err != nil {
		return err
	}
	a.PositivePercentage = s.Positive
	a.NegativePercentage = s.Negative
	a.NeutralPercentage = s.Neutral
	return nil
}
