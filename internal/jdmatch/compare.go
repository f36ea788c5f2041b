// Package jdmatch compares a resume against a job description: keyword
// overlap, semantic similarity, missing keywords, and skills gap.
package jdmatch

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/extraction"
	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Comparison weights and caps.
const (
	maxEmbedChars       = 5000
	overlapWeight       = 0.6
	semanticWeight      = 0.4
	missingKeywordLimit = 15
	skillsGapLimit      = 20
)

// Comparator scores resume/JD fit.
type Comparator struct {
	embedder  embedding.Embedder
	annotator nlp.Annotator
}

// NewComparator creates a JD comparator.
func NewComparator(embedder embedding.Embedder, annotator nlp.Annotator) *Comparator {
	return &Comparator{embedder: embedder, annotator: annotator}
}

// Compare builds the full comparison. Matched keywords are the sorted
// lowercase intersection; missing keywords keep JD order and are capped;
// the match percentage blends keyword overlap with embedding similarity.
// With no extractable JD keywords the overlap term drops out and only the
// semantic term contributes.
func (c *Comparator) Compare(ctx context.Context, resumeText, jdText string, resumeKeywords, resumeSkills []string) (*types.JDComparison, error) {
	ann, err := c.annotator.Annotate(ctx, extraction.Truncate(jdText, extraction.MaxAnnotationChars))
	if err != nil {
		return nil, fmt.Errorf("failed to annotate job description: %w", err)
	}
	jdKeywords := extraction.ExtractKeywords(ann, extraction.JDKeywordLimit)

	resumeSet := lowerSet(resumeKeywords)
	jdSet := lowerSet(jdKeywords)

	matched := []string{}
	for kw := range jdSet {
		if resumeSet[kw] {
			matched = append(matched, kw)
		}
	}
	sort.Strings(matched)

	missing := []string{}
	for _, kw := range jdKeywords {
		if len(missing) >= missingKeywordLimit {
			break
		}
		if !resumeSet[strings.ToLower(kw)] {
			missing = append(missing, kw)
		}
	}

	semantic, err := embedding.Similarity(ctx, c.embedder,
		truncate(resumeText), truncate(jdText))
	if err != nil {
		return nil, fmt.Errorf("failed to compute semantic similarity: %w", err)
	}

	overlap := 0.0
	matchPct := semantic * semanticWeight * 100
	if len(jdSet) > 0 {
		overlap = float64(len(matched)) / float64(len(jdSet))
		matchPct = (overlap*overlapWeight + semantic*semanticWeight) * 100
	}
	if matchPct < 0 {
		matchPct = 0
	}
	if matchPct > 100 {
		matchPct = 100
	}

	return &types.JDComparison{
		MatchPercentage:    matchPct,
		KeywordOverlap:     overlap,
		MatchedKeywords:    matched,
		MissingKeywords:    missing,
		SkillsGap:          skillsGap(ann, resumeSkills),
		SemanticSimilarity: semantic,
	}, nil
}

func truncate(text string) string {
	if len(text) > maxEmbedChars {
		return text[:maxEmbedChars]
	}
	return text
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
