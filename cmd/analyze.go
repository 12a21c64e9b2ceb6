package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/report"
	"github.com/fuzumoe/domsight-api/internal/service"
)

// analyzeCmd runs a one-shot analysis from the command line.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "analyze one page and print the statistics report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL := args[0]

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		allAgents, _ := cmd.Flags().GetBool("all-agents")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		userAgent, _ := cmd.Flags().GetString("user-agent")
		respectRobots, _ := cmd.Flags().GetBool("respect-robots")
		workers, _ := cmd.Flags().GetInt("workers")

		f := fetcher.New(timeout, userAgent, respectRobots)
		engine := analyzer.NewEngine()
		svc := service.NewAnalysisService(f, engine, workers, log.Logger)

		var (
			result map[string]any
			err    error
		)
		if allAgents {
			result, err = svc.AnalyzeAllAgents(cmd.Context(), rawURL)
		} else {
			result, err = svc.Analyze(cmd.Context(), rawURL)
		}
		// A fetch failure still yields a printable error report; any other
		// error is fatal.
		if err != nil && result == nil {
			return err
		}

		w := cmd.OutOrStdout()
		if output != "" {
			file, createErr := os.Create(output)
			if createErr != nil {
				return fmt.Errorf("create output file: %w", createErr)
			}
			defer file.Close()
			w = file
		}

		return report.Write(w, result, report.Format(format))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().String("format", "json", "output format: json, summary, csv or xlsx")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().Bool("all-agents", false, "fetch the page once per user-agent identity and compare responses")
	analyzeCmd.Flags().Duration("timeout", 30*time.Second, "fetch timeout")
	analyzeCmd.Flags().String("user-agent", fetcher.DefaultAgent, "user-agent identity name or literal header value")
	analyzeCmd.Flags().Bool("respect-robots", false, "honor robots.txt before fetching")
	analyzeCmd.Flags().Int("workers", 4, "concurrent fetches for --all-agents")
}
