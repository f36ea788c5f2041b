package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/schemas"
)

// annotationSchema constrains the LLM's annotation output before decoding.
const annotationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["entities", "noun_chunks"],
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text", "label"],
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "label": {
            "type": "string",
            "enum": ["PRODUCT", "ORG", "LANGUAGE", "SKILL", "GPE", "NORP", "LOC"]
          }
        }
      }
    },
    "noun_chunks": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

const annotationPrompt = `Extract named entities and noun phrases from the text below.

Entities: label each as one of PRODUCT (tools, frameworks, software),
ORG (companies, institutions, cloud platforms), LANGUAGE (programming or
natural languages), SKILL (named competencies), GPE (cities, states,
countries), NORP (nationalities, groups), or LOC (other locations).
Only include spans that appear verbatim in the text.

Noun phrases: short base noun phrases of one to four words, verbatim.

Return JSON: {"entities": [{"text": "...", "label": "..."}], "noun_chunks": ["..."]}

Text:
%s`

// GeminiAnnotator produces annotations with a Gemini model. Entities and
// noun chunks come from the model; token tagging stays local so the tag
// set is stable across providers.
type GeminiAnnotator struct {
	client    llm.Client
	tier      llm.ModelTier
	tokenizer *HeuristicAnnotator
}

// NewGeminiAnnotator creates an LLM-backed annotator.
func NewGeminiAnnotator(client llm.Client, tier llm.ModelTier) *GeminiAnnotator {
	return &GeminiAnnotator{
		client:    client,
		tier:      tier,
		tokenizer: NewHeuristicAnnotator(),
	}
}

type rawAnnotation struct {
	Entities []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"entities"`
	NounChunks []string `json:"noun_chunks"`
}

// Annotate asks the model for entities and noun chunks, validates the JSON
// against the annotation schema, and anchors each span to its first
// occurrence in the text.
func (g *GeminiAnnotator) Annotate(ctx context.Context, text string) (*Annotation, error) {
	local, err := g.tokenizer.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	output, err := g.client.GenerateJSON(ctx, fmt.Sprintf(annotationPrompt, text), g.tier)
	if err != nil {
		return nil, fmt.Errorf("annotation request failed: %w", err)
	}

	if err := schemas.ValidateJSONString(annotationSchema, output); err != nil {
		return nil, fmt.Errorf("annotation output rejected: %w", err)
	}

	var raw rawAnnotation
	if err := json.Unmarshal([]byte(output), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode annotation output: %w", err)
	}

	ann := &Annotation{
		Entities:   []Entity{},
		NounChunks: []NounChunk{},
		Tokens:     local.Tokens,
	}

	lower := strings.ToLower(text)
	for _, e := range raw.Entities {
		start := strings.Index(lower, strings.ToLower(e.Text))
		if start < 0 {
			continue // hallucinated span
		}
		ann.Entities = append(ann.Entities, Entity{
			Text:  text[start : start+len(e.Text)],
			Label: e.Label,
			Start: start,
		})
	}
	for _, chunk := range raw.NounChunks {
		start := strings.Index(lower, strings.ToLower(chunk))
		if start < 0 {
			continue
		}
		ann.NounChunks = append(ann.NounChunks, NounChunk{
			Text:  text[start : start+len(chunk)],
			Start: start,
		})
	}

	return ann, nil
}
