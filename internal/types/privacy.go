package types

// Location mention types. Regex detection produces address and zip;
// annotator entities produce gpe and loc.
const (
	LocationAddress = "address"
	LocationZip     = "zip"
	LocationCity    = "city"
	LocationState   = "state"
	LocationGPE     = "gpe"
	LocationLoc     = "loc"
)

// Resume regions a location mention can fall in.
const (
	RegionContactHeader = "contact_header"
	RegionExperience    = "experience"
	RegionEducation     = "education"
	RegionOther         = "other"
)

// Privacy risk levels, ordered none < low < medium < high. Unknown is
// reported only when detection could not run at all.
const (
	RiskNone    = "none"
	RiskLow     = "low"
	RiskMedium  = "medium"
	RiskHigh    = "high"
	RiskUnknown = "unknown"
)

// LocationMention is a single detected location with its classification.
type LocationMention struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	Section string `json:"section"`
}

// Acceptable reports whether the mention is fine to keep on a resume.
// City, state, and place names are expected in the contact header;
// street addresses and ZIP codes are never acceptable.
func (m LocationMention) Acceptable() bool {
	if m.Section != RegionContactHeader {
		return false
	}
	switch m.Type {
	case LocationCity, LocationState, LocationGPE:
		return true
	}
	return false
}

// PrivacyReport is the output of the location privacy detection stage.
type PrivacyReport struct {
	LocationFound     bool              `json:"location_found"`
	DetectedLocations []LocationMention `json:"detected_locations"`
	PrivacyRisk       string            `json:"privacy_risk"`
	Recommendations   []string          `json:"recommendations"`
	PenaltyApplied    float64           `json:"penalty_applied"`
}

// EmptyPrivacyReport returns the fallback result used when the stage is
// degraded. The risk is unknown rather than none: nothing was scanned.
func EmptyPrivacyReport() *PrivacyReport {
	return &PrivacyReport{
		DetectedLocations: []LocationMention{},
		PrivacyRisk:       RiskUnknown,
		Recommendations:   []string{"Location detection was unavailable; review the resume for street addresses and ZIP codes manually"},
	}
}
