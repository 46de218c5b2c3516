package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/steward/internal/config"
	"github.com/JaimeStill/steward/internal/enrichment"
)

var classifyCmd = &cobra.Command{
	Use:   "classify FILENAME",
	Short: "Classify a filename",
	Long: "Classify a filename through the pattern ladder, consulting the\n" +
		"configured enrichment model for weak results. Runs entirely offline\n" +
		"when enrichment is disabled or no configuration is present.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		result := enrichment.Classify(cmd.Context(), classifyEnricher(logger), args[0], nil, logger)

		if asJSON {
			return printJSON(result)
		}

		fmt.Printf("Type:       %s\n", result.ContentType)
		if result.Title != "" {
			fmt.Printf("Title:      %s\n", result.Title)
		}
		if result.ShowName != "" {
			fmt.Printf("Show:       %s\n", result.ShowName)
			fmt.Printf("Episode:    S%02dE%02d\n", result.Season, result.Episode)
		}
		if result.Year > 0 {
			fmt.Printf("Year:       %d\n", result.Year)
		}
		if result.Extension != "" {
			fmt.Printf("Extension:  %s\n", result.Extension)
		}
		fmt.Printf("Category:   %s\n", result.Category())
		fmt.Printf("Confidence: %.2f\n", result.Confidence)
		fmt.Printf("Source:     %s\n", result.Source)
		return nil
	},
}

// classifyEnricher builds the enrichment collaborator when configuration
// enables one; classification itself never requires configuration.
func classifyEnricher(logger *slog.Logger) enrichment.Enricher {
	cfg, err := config.Load()
	if err != nil {
		logger.Debug("config unavailable, skipping enrichment", "error", err)
		return enrichment.Nop{}
	}
	if !cfg.Enrichment.Enabled {
		return enrichment.Nop{}
	}
	return enrichment.NewOpenAI(cfg.Enrichment, logger)
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Emit the result as JSON")
	rootCmd.AddCommand(classifyCmd)
}
