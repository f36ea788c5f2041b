package privacy

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// maxExamplesPerCategory caps how many found values a recommendation cites.
const maxExamplesPerCategory = 3

// recommendations builds per-category guidance for the unacceptable
// mentions, each citing up to three examples from the resume.
func recommendations(risk string, risky []types.LocationMention) []string {
	recs := []string{}
	if risk == types.RiskNone {
		return recs
	}

	var addresses, zips, places []string
	for _, m := range risky {
		switch m.Type {
		case types.LocationAddress:
			addresses = append(addresses, m.Text)
		case types.LocationZip:
			zips = append(zips, m.Text)
		default:
			places = append(places, m.Text)
		}
	}

	if len(addresses) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Remove your street address; employers do not need it before an offer (found: %s)",
			examples(addresses)))
	}
	if len(zips) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Remove ZIP codes; they narrow your location to a few blocks (found: %s)",
			examples(zips)))
	}
	if len(places) > mediumRiskThreshold {
		recs = append(recs, fmt.Sprintf(
			"Limit location mentions outside the contact header (found: %s)",
			examples(places)))
	}

	recs = append(recs, "City and state in the contact header is enough location detail for recruiters")
	return recs
}

func examples(values []string) string {
	if len(values) > maxExamplesPerCategory {
		values = values[:maxExamplesPerCategory]
	}
	return strings.Join(values, ", ")
}
