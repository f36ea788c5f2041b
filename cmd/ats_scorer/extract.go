package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/extraction"
	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the structured profile from a resume without scoring",
	Long:  "Extract sections, contact info, skills, projects, keywords, and action verbs from a resume text file and print them as JSON.",
	RunE:  runExtract,
}

var extractResume string

func init() {
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to resume text file (required)")
	_ = extractCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	resumeText, err := ingestion.LoadFile(extractResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	extractor := extraction.NewExtractor(nlp.NewHeuristicAnnotator())
	profile, err := extractor.Extract(context.Background(), resumeText)
	if err != nil {
		return fmt.Errorf("failed to extract profile: %w", err)
	}

	// Surface section text lengths instead of full bodies to keep the
	// output readable.
	sectionLengths := map[string]int{}
	for _, name := range types.SectionNames() {
		sectionLengths[name] = len(profile.Sections[name])
	}

	payload, err := json.MarshalIndent(struct {
		SectionLengths map[string]int       `json:"section_lengths"`
		Contact        types.ContactInfo    `json:"contact"`
		Skills         []string             `json:"skills"`
		Projects       []types.ProjectEntry `json:"projects"`
		Keywords       []string             `json:"keywords"`
		ActionVerbs    []string             `json:"action_verbs"`
	}{
		SectionLengths: sectionLengths,
		Contact:        profile.Contact,
		Skills:         profile.Skills,
		Projects:       profile.Projects,
		Keywords:       profile.Keywords,
		ActionVerbs:    profile.ActionVerbs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}
