// Package observability provides formatted terminal output for analysis
// results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output of analysis reports.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listWithOverflow writes up to limit items as bullets plus an overflow line.
func listWithOverflow(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintScoreReport outputs the full score breakdown.
func (p *Printer) PrintScoreReport(score *types.ScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f / %.0f  (%s)\n\n", score.Overall, types.MaxOverallScore, score.Interpretation))

	components := []struct {
		label string
		name  string
		max   float64
	}{
		{"Formatting", types.ComponentFormatting, types.MaxFormattingScore},
		{"Keywords", types.ComponentKeywords, types.MaxKeywordsScore},
		{"Content", types.ComponentContent, types.MaxContentScore},
		{"Skill Validation", types.ComponentSkillValidation, types.MaxSkillValidationScore},
		{"ATS Compatibility", types.ComponentATS, types.MaxATSScore},
	}
	for _, c := range components {
		sb.WriteString(fmt.Sprintf("%-18s %5.1f / %.0f\n", c.label, score.Components.Get(c.name), c.max))
	}

	if len(score.Bonuses) > 0 {
		sb.WriteString("\nBonuses:\n")
		for _, b := range score.Bonuses {
			sb.WriteString(fmt.Sprintf("  +%g %s\n", b.Points, b.Reason))
		}
	}
	if len(score.Penalties) > 0 {
		sb.WriteString("\nPenalties noted (not deducted):\n")
		for reason, points := range score.Penalties {
			sb.WriteString(fmt.Sprintf("  -%g %s\n", points, reason))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))

	if len(score.CriticalIssues) > 0 {
		var issues strings.Builder
		listWithOverflow(&issues, score.CriticalIssues, maxItemsToShow)
		p.printBox("CRITICAL ISSUES", strings.TrimSuffix(issues.String(), "\n"))
	}
	if len(score.Strengths) > 0 {
		var strengths strings.Builder
		listWithOverflow(&strengths, score.Strengths, maxItemsToShow)
		p.printBox("STRENGTHS", strings.TrimSuffix(strengths.String(), "\n"))
	}
	if len(score.Improvements) > 0 {
		var improvements strings.Builder
		listWithOverflow(&improvements, score.Improvements, maxItemsToShow)
		p.printBox("SUGGESTED IMPROVEMENTS", strings.TrimSuffix(improvements.String(), "\n"))
	}
}

// PrintSkillValidation outputs the skill evidence summary.
func (p *Printer) PrintSkillValidation(validation *types.SkillValidation, feedback []string) {
	if validation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validated: %d   Unvalidated: %d   (%.0f%%)\n",
		len(validation.ValidatedSkills), len(validation.UnvalidatedSkills),
		validation.ValidationPercentage*100))

	if len(validation.ValidatedSkills) > 0 {
		validated := make([]string, len(validation.ValidatedSkills))
		for i, ev := range validation.ValidatedSkills {
			validated[i] = fmt.Sprintf("%s (%s)", ev.Skill, strings.Join(ev.Projects, ", "))
		}
		sb.WriteString("\nValidated skills:\n")
		listWithOverflow(&sb, validated, maxItemsToShow)
	}
	if len(validation.UnvalidatedSkills) > 0 {
		sb.WriteString("\nUnvalidated skills:\n")
		listWithOverflow(&sb, validation.UnvalidatedSkills, maxItemsToShow)
	}
	if len(feedback) > 0 {
		sb.WriteString("\n")
		for _, line := range feedback {
			sb.WriteString(line + "\n")
		}
	}

	p.printBox("SKILL VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrivacyReport outputs detected location mentions and recommendations.
func (p *Printer) PrintPrivacyReport(report *types.PrivacyReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Risk level: %s\n", report.PrivacyRisk))

	if len(report.DetectedLocations) > 0 {
		sb.WriteString("\nLocation mentions:\n")
		count := min(len(report.DetectedLocations), maxItemsToShow)
		for i := 0; i < count; i++ {
			loc := report.DetectedLocations[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %s)\n", loc.Text, loc.Type, loc.Section))
		}
		if len(report.DetectedLocations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.DetectedLocations)-maxItemsToShow))
		}
	}
	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		listWithOverflow(&sb, report.Recommendations, maxItemsToShow)
	}

	p.printBox("LOCATION PRIVACY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJDComparison outputs the job description match summary.
func (p *Printer) PrintJDComparison(comparison *types.JDComparison) {
	if comparison == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %.1f%%   Semantic similarity: %.2f\n",
		comparison.MatchPercentage, comparison.SemanticSimilarity))

	if len(comparison.MatchedKeywords) > 0 {
		sb.WriteString("\nMatched keywords:\n")
		listWithOverflow(&sb, comparison.MatchedKeywords, maxItemsToShow)
	}
	if len(comparison.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		listWithOverflow(&sb, comparison.MissingKeywords, maxItemsToShow)
	}
	if len(comparison.SkillsGap) > 0 {
		sb.WriteString("\nSkills gap:\n")
		listWithOverflow(&sb, comparison.SkillsGap, maxItemsToShow)
	}

	p.printBox("JOB DESCRIPTION MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the experience section analysis.
func (p *Printer) PrintExperience(analysis *types.ExperienceAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f / %.0f\n", analysis.Score, analysis.MaxScore))
	sb.WriteString(fmt.Sprintf("Jobs: %d   With dates: %d   With bullets: %d\n",
		analysis.Metrics.TotalJobs, analysis.Metrics.JobsWithDates, analysis.Metrics.JobsWithBullets))
	sb.WriteString(fmt.Sprintf("Action verbs: %d   Quantified achievements: %d\n",
		analysis.Metrics.ActionVerbsUsed, analysis.Metrics.QuantifiedAchievements))

	if len(analysis.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		listWithOverflow(&sb, analysis.Strengths, 3)
	}
	if len(analysis.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		listWithOverflow(&sb, analysis.Improvements, 3)
	}

	p.printBox("EXPERIENCE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs degraded-stage warnings, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("WARNINGS", sb.String())
}
