// Package privacy detects location information in resumes and rates the
// privacy risk of sharing it.
package privacy

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/types"
)

// contactHeaderWindow is how far into the resume the contact header extends.
const contactHeaderWindow = 200

// sectionContextWindow is the radius searched around a mention to classify
// its section.
const sectionContextWindow = 200

// maxScanChars caps how much text is scanned, matching the annotation cap.
const maxScanChars = 10000

var (
	zipRe    = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	streetRe = regexp.MustCompile(`(?i)\b\d+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Circle|Cir|Way|Place|Pl)\b`)
)

// Detector finds location mentions via regex and annotator entities.
type Detector struct {
	annotator nlp.Annotator
}

// NewDetector creates a location privacy detector.
func NewDetector(annotator nlp.Annotator) *Detector {
	return &Detector{annotator: annotator}
}

// Detect scans resume text for location disclosures and builds the
// privacy report: mentions with section classification, risk level,
// penalty, and recommendations.
func (d *Detector) Detect(ctx context.Context, text string) (*types.PrivacyReport, error) {
	if len(text) > maxScanChars {
		text = text[:maxScanChars]
	}

	var mentions []types.LocationMention

	for _, loc := range streetRe.FindAllStringIndex(text, -1) {
		mentions = append(mentions, types.LocationMention{
			Text:    text[loc[0]:loc[1]],
			Type:    types.LocationAddress,
			Section: classifySection(text, loc[0]),
		})
	}
	for _, loc := range zipRe.FindAllStringIndex(text, -1) {
		if insideAddress(text, loc[0]) {
			continue
		}
		mentions = append(mentions, types.LocationMention{
			Text:    text[loc[0]:loc[1]],
			Type:    types.LocationZip,
			Section: classifySection(text, loc[0]),
		})
	}

	ann, err := d.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text for location detection: %w", err)
	}
	for _, e := range ann.EntitiesByLabel(nlp.LabelGPE, nlp.LabelLoc) {
		mentionType := types.LocationGPE
		if e.Label == nlp.LabelLoc {
			mentionType = types.LocationLoc
		}
		mentions = append(mentions, types.LocationMention{
			Text:    e.Text,
			Type:    mentionType,
			Section: classifySection(text, e.Start),
		})
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Text < mentions[j].Text
	})
	mentions = dedupe(mentions)

	report := &types.PrivacyReport{
		LocationFound:     len(mentions) > 0,
		DetectedLocations: mentions,
	}

	risky := unacceptable(mentions)
	report.PrivacyRisk = riskLevel(risky)
	report.PenaltyApplied = penaltyFor(report.PrivacyRisk, risky)
	report.Recommendations = recommendations(report.PrivacyRisk, risky)

	return report, nil
}

// classifySection maps a text offset to the resume region it falls in.
func classifySection(text string, offset int) string {
	if offset < contactHeaderWindow {
		return types.RegionContactHeader
	}

	start := offset - sectionContextWindow
	if start < 0 {
		start = 0
	}
	end := offset + sectionContextWindow
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])

	switch {
	case strings.Contains(window, "experience") ||
		strings.Contains(window, "work history") ||
		strings.Contains(window, "employment"):
		return types.RegionExperience
	case strings.Contains(window, "education") ||
		strings.Contains(window, "academic") ||
		strings.Contains(window, "university") ||
		strings.Contains(window, "college"):
		return types.RegionEducation
	}
	return types.RegionOther
}

// insideAddress reports whether a ZIP offset falls inside a street
// address match, which already covers it.
func insideAddress(text string, offset int) bool {
	for _, loc := range streetRe.FindAllStringIndex(text, -1) {
		if offset >= loc[0] && offset < loc[1] {
			return true
		}
	}
	return false
}

func dedupe(mentions []types.LocationMention) []types.LocationMention {
	seen := map[string]bool{}
	out := make([]types.LocationMention, 0, len(mentions))
	for _, m := range mentions {
		key := strings.ToLower(m.Text) + "|" + m.Type + "|" + m.Section
		if !seen[key] {
			seen[key] = true
			out = append(out, m)
		}
	}
	return out
}

func unacceptable(mentions []types.LocationMention) []types.LocationMention {
	var risky []types.LocationMention
	for _, m := range mentions {
		if !m.Acceptable() {
			risky = append(risky, m)
		}
	}
	return risky
}
