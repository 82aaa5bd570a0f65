// trendctl is a command-line client for a running TrendPulse server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/leeaandrob/trendpulse/internal/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
	verbose   bool

	api *client.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "trendctl",
	Short:         "Query a TrendPulse market intelligence server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		api = client.New(serverURL, timeout)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <query>",
	Short: "Analyze a topic, reusing the stored analysis when there is one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := api.Analyze(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), a)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <query>",
	Short: "Show a stored analysis without generating one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := api.Get(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), a)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		analyses, err := api.List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, a := range analyses {
			fmt.Fprintf(out, "%4d  %-30s  %-7s  %3d%% positive  %s\n",
				a.ID, a.Query, a.TrendDirection, a.PositivePercentage,
				a.CreatedAt.Local().Format(time.DateTime))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := api.Stats(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), stats)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <query>",
	Short: "Print the markdown report for an analyzed query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := api.Report(cmd.Context(), strings.Join(args, " "))
		if client.IsNotFound(err) {
			return fmt.Errorf("no analysis for %q yet, run 'trendctl analyze' first", strings.Join(args, " "))
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}

var contentCmd = &cobra.Command{
	Use:   "content <topic>",
	Short: "Suggest social media content for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideas, err := api.ContentIdeas(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printList(cmd.OutOrStdout(), ideas)
		return nil
	},
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns <topic>",
	Short: "Suggest campaign titles for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		titles, err := api.CampaignTitles(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printList(cmd.OutOrStdout(), titles)
		return nil
	},
}

var pidginCmd = &cobra.Command{
	Use:   "pidgin <text>",
	Short: "Read the sentiment of a Nigerian Pidgin text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := api.AnalyzePidgin(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var viralCmd = &cobra.Command{
	Use:   "viral <topic>",
	Short: "Estimate whether a topic is about to go viral",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prediction, err := api.PredictViral(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), prediction)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("TRENDPULSE_URL", client.DefaultBaseURL), "TrendPulse server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API calls")

	rootCmd.AddCommand(analyzeCmd, getCmd, listCmd, statsCmd, reportCmd,
		contentCmd, campaignsCmd, pidginCmd, viralCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printList(w io.Writer, items []string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
