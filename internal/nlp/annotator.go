// Package nlp provides text annotation (entities, noun chunks, part-of-speech
// tokens) behind a provider interface. A deterministic rule-based annotator is
// the default; a Gemini-backed annotator is available for richer extraction.
package nlp

import "context"

// Entity labels. The subset of labels consumers care about: tech terms for
// skill and keyword extraction, places for privacy detection.
const (
	LabelProduct  = "PRODUCT"
	LabelOrg      = "ORG"
	LabelLanguage = "LANGUAGE"
	LabelSkill    = "SKILL"
	LabelGPE      = "GPE"
	LabelNORP     = "NORP"
	LabelLoc      = "LOC"
)

// Part-of-speech tags used by consumers.
const (
	POSNoun       = "NOUN"
	POSProperNoun = "PROPN"
	POSVerb       = "VERB"
	POSOther      = "X"
)

// Entity is a labeled span of text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
}

// NounChunk is a base noun phrase.
type NounChunk struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}

// Token is a single word with its part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"`
	Stop bool   `json:"stop"`
}

// Annotation is the full output for one text.
type Annotation struct {
	Entities   []Entity    `json:"entities"`
	NounChunks []NounChunk `json:"noun_chunks"`
	Tokens     []Token     `json:"tokens"`
}

// Annotator produces linguistic annotations for a text. Implementations
// must be safe for concurrent use.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Annotation, error)
}

// EntitiesByLabel filters entities to the given labels.
func (a *Annotation) EntitiesByLabel(labels ...string) []Entity {
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	var out []Entity
	for _, e := range a.Entities {
		if want[e.Label] {
			out = append(out, e)
		}
	}
	return out
}
