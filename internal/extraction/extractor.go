package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/types"
)

// MaxAnnotationChars caps how much text is sent to the annotator.
const MaxAnnotationChars = 10000

// Extractor turns raw resume text into a structured profile.
type Extractor struct {
	annotator nlp.Annotator
}

// NewExtractor creates an extractor using the given annotator.
func NewExtractor(annotator nlp.Annotator) *Extractor {
	return &Extractor{annotator: annotator}
}

// Extract builds a resume profile: sections, contact info, skills,
// projects, keywords, and action verbs. Annotation failures are fatal
// because every downstream stage depends on this output.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ResumeProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	sections := SplitSections(text)

	ann, err := e.annotator.Annotate(ctx, Truncate(text, MaxAnnotationChars))
	if err != nil {
		return nil, fmt.Errorf("failed to annotate resume text: %w", err)
	}

	profile := &types.ResumeProfile{
		FullText:    text,
		Sections:    sections,
		Contact:     ExtractContact(text),
		Skills:      ExtractSkills(sections[types.SectionSkills], ann),
		Keywords:    ExtractKeywords(ann, ResumeKeywordLimit),
		ActionVerbs: ExtractActionVerbs(text),
		Projects:    []types.ProjectEntry{},
	}

	if projectsText := sections[types.SectionProjects]; strings.TrimSpace(projectsText) != "" {
		// Annotate the section on its own so entity offsets line up
		// with project block boundaries.
		projAnn, err := e.annotator.Annotate(ctx, Truncate(projectsText, MaxAnnotationChars))
		if err != nil {
			return nil, fmt.Errorf("failed to annotate projects section: %w", err)
		}
		profile.Projects = ExtractProjects(projectsText, projAnn)
	}

	return profile, nil
}

// JDKeywords extracts ranked keywords from job description text.
func (e *Extractor) JDKeywords(ctx context.Context, jdText string) ([]string, error) {
	ann, err := e.annotator.Annotate(ctx, Truncate(jdText, MaxAnnotationChars))
	if err != nil {
		return nil, fmt.Errorf("failed to annotate job description: %w", err)
	}
	return ExtractKeywords(ann, JDKeywordLimit), nil
}

// Truncate caps text at n bytes without splitting a line mid-way when a
// newline is close to the cut.
func Truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := text[:n]
	if idx := strings.LastIndexByte(cut, '\n'); idx > n-200 {
		cut = cut[:idx]
	}
	return cut
}
