package nlp

import "strings"

// techTerms maps known technical terms (lowercase) to their entity label.
// Languages and frameworks mirror the skill vocabulary used by extraction.
var techTerms = map[string]string{
	"python":     LabelLanguage,
	"java":       LabelLanguage,
	"javascript": LabelLanguage,
	"typescript": LabelLanguage,
	"c++":        LabelLanguage,
	"c#":         LabelLanguage,
	"ruby":       LabelLanguage,
	"go":         LabelLanguage,
	"golang":     LabelLanguage,
	"rust":       LabelLanguage,
	"sql":        LabelLanguage,
	"graphql":    LabelLanguage,

	"react":         LabelProduct,
	"angular":       LabelProduct,
	"vue":           LabelProduct,
	"node":          LabelProduct,
	"node.js":       LabelProduct,
	"django":        LabelProduct,
	"flask":         LabelProduct,
	"spring":        LabelProduct,
	"express":       LabelProduct,
	"mongodb":       LabelProduct,
	"postgresql":    LabelProduct,
	"mysql":         LabelProduct,
	"redis":         LabelProduct,
	"elasticsearch": LabelProduct,
	"docker":        LabelProduct,
	"kubernetes":    LabelProduct,
	"jenkins":       LabelProduct,
	"git":           LabelProduct,
	"tensorflow":    LabelProduct,
	"pytorch":       LabelProduct,
	"scikit-learn":  LabelProduct,
	"kafka":         LabelProduct,
	"terraform":     LabelProduct,

	"aws":   LabelOrg,
	"azure": LabelOrg,
	"gcp":   LabelOrg,
}

// gpeTerms holds known place names (lowercase): US states, their postal
// abbreviations, and major cities. Used for privacy detection.
var gpeTerms = buildGPETerms()

func buildGPETerms() map[string]bool {
	terms := map[string]bool{}
	states := []string{
		"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
		"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
		"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
		"maine", "maryland", "massachusetts", "michigan", "minnesota",
		"mississippi", "missouri", "montana", "nebraska", "nevada",
		"new hampshire", "new jersey", "new mexico", "new york",
		"north carolina", "north dakota", "ohio", "oklahoma", "oregon",
		"pennsylvania", "rhode island", "south carolina", "south dakota",
		"tennessee", "texas", "utah", "vermont", "virginia", "washington",
		"west virginia", "wisconsin", "wyoming",
	}
	cities := []string{
		"new york city", "los angeles", "chicago", "houston", "phoenix",
		"philadelphia", "san antonio", "san diego", "dallas", "san jose",
		"austin", "seattle", "denver", "boston", "atlanta", "miami",
		"portland", "san francisco", "pittsburgh", "detroit", "minneapolis",
		"charlotte", "nashville", "baltimore", "sacramento", "toronto",
		"vancouver", "london", "berlin", "paris", "amsterdam", "dublin",
		"bangalore", "mumbai", "singapore", "sydney", "tokyo",
	}
	for _, s := range states {
		terms[s] = true
	}
	for _, c := range cities {
		terms[c] = true
	}
	return terms
}

// stopWords is a compact English stop list for keyword filtering.
var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	list := "a an and are as at be but by for from has have he her his i if in " +
		"into is it its me my no not of on or our she so that the their them " +
		"they this to was we were will with you your what when where which who " +
		"how all also been being can could do does did had would should than " +
		"then there these those such each other some more most over under up " +
		"down out about after before between through during against both any " +
		"few own same very too just only now while because until"
	words := map[string]bool{}
	for _, w := range strings.Fields(list) {
		words[w] = true
	}
	return words
}

// IsStopWord reports whether the lowercase word is a stop word.
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}
