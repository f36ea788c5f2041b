package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analyses, newest first",
	RunE:  runHistoryList,
}

var historyGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a saved analysis as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryGet,
}

var (
	historyDatabaseURL string
	historyLimit       int
)

func init() {
	historyCmd.PersistentFlags().StringVar(&historyDatabaseURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL env var)")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of analyses to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyGetCmd)
	rootCmd.AddCommand(historyCmd)
}

func connectHistory(ctx context.Context) (*db.DB, error) {
	url := historyDatabaseURL
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		return nil, fmt.Errorf("database URL is required (use --database-url or DATABASE_URL)")
	}
	return db.Connect(ctx, url)
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := connectHistory(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	summaries, err := database.ListAnalyses(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(os.Stdout, "No analyses saved yet.")
		return nil
	}

	for _, s := range summaries {
		marker := ""
		if s.Degraded {
			marker = "  (degraded)"
		}
		fmt.Fprintf(os.Stdout, "%s  %s  %5.1f  %s%s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.OverallScore, s.Interpretation, marker)
	}
	return nil
}

func runHistoryGet(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis id: %w", err)
	}

	ctx := context.Background()
	database, err := connectHistory(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	result, err := database.GetAnalysis(ctx, id)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("analysis not found: %s", id)
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}
