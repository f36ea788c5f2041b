package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume with the offline providers",
	Long:  "Run the pipeline with the heuristic annotator and local embedder and print only the score breakdown. Useful for quick, fully offline scoring.",
	RunE:  runScore,
}

var (
	scoreResume string
	scoreJob    string
	scoreJSON   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the score breakdown as JSON")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resumeText, err := ingestion.LoadFile(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var jdText string
	if scoreJob != "" {
		jdText, err = ingestion.LoadFile(scoreJob)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
	}

	deps, closeDeps, err := buildDeps(ctx, config.DefaultConfig())
	defer closeDeps()
	if err != nil {
		return err
	}

	result, runErr := pipeline.New(deps).Analyze(ctx, resumeText, jdText)
	if runErr != nil {
		return runErr
	}

	if scoreJSON {
		payload, err := json.MarshalIndent(result.Score, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal score: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(payload))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintWarnings(result.Warnings)
	printer.PrintScoreReport(result.Score)
	return nil
}
