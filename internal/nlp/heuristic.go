package nlp

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// tokenRe matches words, keeping tech-term punctuation (c++, c#, node.js, ci/cd).
var tokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#./-]*[A-Za-z0-9+#]|[A-Za-z]`)

// cityStateRe matches "City, ST" contact lines.
var cityStateRe = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+){0,2}), ([A-Z]{2})\b`)

// irregularPastVerbs covers common resume verbs the suffix rule misses.
var irregularPastVerbs = map[string]bool{
	"built": true, "led": true, "wrote": true, "ran": true, "made": true,
	"drove": true, "grew": true, "oversaw": true, "won": true, "held": true,
	"taught": true, "set": true, "took": true, "gave": true, "kept": true,
}

// HeuristicAnnotator is a deterministic rule-based annotator. It recognizes
// technical terms and place names from fixed vocabularies, approximates
// part-of-speech tags from word shape, and groups content words into chunks.
// It needs no network access and always returns the same output for the
// same input.
type HeuristicAnnotator struct{}

// NewHeuristicAnnotator creates a rule-based annotator.
func NewHeuristicAnnotator() *HeuristicAnnotator {
	return &HeuristicAnnotator{}
}

type span struct {
	text  string
	start int
	end   int
}

// Annotate produces entities, noun chunks, and tagged tokens for text.
func (h *HeuristicAnnotator) Annotate(_ context.Context, text string) (*Annotation, error) {
	spans := tokenize(text)

	ann := &Annotation{
		Entities:   []Entity{},
		NounChunks: []NounChunk{},
		Tokens:     make([]Token, 0, len(spans)),
	}

	for _, s := range spans {
		ann.Tokens = append(ann.Tokens, Token{
			Text: s.text,
			POS:  tagPOS(s.text),
			Stop: IsStopWord(s.text),
		})
	}

	ann.Entities = matchEntities(text, spans)
	ann.NounChunks = chunkNouns(text, spans, ann.Tokens)

	return ann, nil
}

func tokenize(text string) []span {
	var spans []span
	for _, loc := range tokenRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span{text: text[loc[0]:loc[1]], start: loc[0], end: loc[1]})
	}
	return spans
}

// IsLikelyVerb reports whether a word looks like a verb by shape: a common
// irregular past form or a long -ed/-ing form.
func IsLikelyVerb(word string) bool {
	lower := strings.ToLower(word)
	if irregularPastVerbs[lower] {
		return true
	}
	return len(lower) > 4 && (strings.HasSuffix(lower, "ed") || strings.HasSuffix(lower, "ing"))
}

func tagPOS(word string) string {
	if stopWords[strings.ToLower(word)] {
		return POSOther
	}
	if IsLikelyVerb(word) {
		return POSVerb
	}
	if unicode.IsUpper(rune(word[0])) {
		return POSProperNoun
	}
	return POSNoun
}

// matchEntities scans token n-grams (longest first) against the term
// vocabularies, then adds "City, ST" matches.
func matchEntities(text string, spans []span) []Entity {
	entities := []Entity{}
	consumed := make([]bool, len(spans))

	for i := 0; i < len(spans); i++ {
		if consumed[i] {
			continue
		}
		for n := 3; n >= 1; n-- {
			if i+n > len(spans) {
				continue
			}
			first, last := spans[i], spans[i+n-1]
			phrase := strings.ToLower(text[first.start:last.end])
			var label string
			switch {
			case techTerms[phrase] != "":
				label = techTerms[phrase]
			case gpeTerms[phrase]:
				label = LabelGPE
			default:
				continue
			}
			entities = append(entities, Entity{
				Text:  text[first.start:last.end],
				Label: label,
				Start: first.start,
			})
			for j := i; j < i+n; j++ {
				consumed[j] = true
			}
			break
		}
	}

	seen := map[int]bool{}
	for _, e := range entities {
		seen[e.Start] = true
	}
	for _, m := range cityStateRe.FindAllStringSubmatchIndex(text, -1) {
		cityStart, cityEnd := m[2], m[3]
		stateStart, stateEnd := m[4], m[5]
		if !seen[cityStart] {
			entities = append(entities, Entity{Text: text[cityStart:cityEnd], Label: LabelGPE, Start: cityStart})
			seen[cityStart] = true
		}
		if !seen[stateStart] {
			entities = append(entities, Entity{Text: text[stateStart:stateEnd], Label: LabelGPE, Start: stateStart})
			seen[stateStart] = true
		}
	}

	return entities
}

// chunkNouns groups maximal runs of non-stop, non-verb tokens on the same
// line into chunks of at most four words.
func chunkNouns(text string, spans []span, tokens []Token) []NounChunk {
	chunks := []NounChunk{}
	runStart := -1

	flush := func(start, end int) {
		for start < end {
			n := end - start
			if n > 4 {
				n = 4
			}
			first, last := spans[start], spans[start+n-1]
			chunks = append(chunks, NounChunk{Text: text[first.start:last.end], Start: first.start})
			start += n
		}
	}

	for i := range tokens {
		content := !tokens[i].Stop && tokens[i].POS != POSVerb
		if content && runStart >= 0 && strings.ContainsAny(text[spans[i-1].end:spans[i].start], "\n\r") {
			flush(runStart, i)
			runStart = -1
		}
		switch {
		case content && runStart < 0:
			runStart = i
		case !content && runStart >= 0:
			flush(runStart, i)
			runStart = -1
		}
	}
	if runStart >= 0 {
		flush(runStart, len(tokens))
	}

	return chunks
}
