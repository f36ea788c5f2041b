package privacy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/types"
)

func detect(t *testing.T, text string) *types.PrivacyReport {
	t.Helper()
	report, err := NewDetector(nlp.NewHeuristicAnnotator()).Detect(context.Background(), text)
	require.NoError(t, err)
	return report
}

func TestDetect_StreetAddressIsHighRisk(t *testing.T) {
	report := detect(t, "Jane Smith\n123 Maple Street\njane@example.com")

	require.True(t, report.LocationFound)
	assert.Equal(t, types.RiskHigh, report.PrivacyRisk)
	assert.Equal(t, 4.0, report.PenaltyApplied)

	var foundAddress bool
	for _, m := range report.DetectedLocations {
		if m.Type == types.LocationAddress {
			foundAddress = true
			assert.Equal(t, types.RegionContactHeader, m.Section)
		}
	}
	assert.True(t, foundAddress)
}

func TestDetect_AddressPlusZipWorstPenalty(t *testing.T) {
	padding := strings.Repeat("profile text ", 20)
	report := detect(t, "Jane Smith\n123 Maple Street\n"+padding+"\nZIP 98101 on file")

	assert.Equal(t, types.RiskHigh, report.PrivacyRisk)
	assert.Equal(t, 5.0, report.PenaltyApplied)
}

func TestDetect_ZipInsideAddressNotDoubleCounted(t *testing.T) {
	report := detect(t, "12345 Oak Avenue")

	zips := 0
	for _, m := range report.DetectedLocations {
		if m.Type == types.LocationZip {
			zips++
		}
	}
	assert.Zero(t, zips)
}

func TestDetect_CityInHeaderAcceptable(t *testing.T) {
	report := detect(t, "Jane Smith\nSeattle, WA\njane@example.com")

	assert.True(t, report.LocationFound)
	assert.Equal(t, types.RiskNone, report.PrivacyRisk)
	assert.Equal(t, 0.0, report.PenaltyApplied)
	assert.Empty(t, report.Recommendations)
}

func TestDetect_CityOutsideHeaderIsLowRisk(t *testing.T) {
	padding := strings.Repeat("x", 250)
	report := detect(t, padding+"\nVolunteered around Seattle last summer")

	assert.Equal(t, types.RiskLow, report.PrivacyRisk)
	assert.Equal(t, 2.0, report.PenaltyApplied)
	assert.NotEmpty(t, report.Recommendations)
}

func TestDetect_NoLocations(t *testing.T) {
	report := detect(t, "A resume about software with no places at all")

	assert.False(t, report.LocationFound)
	assert.Equal(t, types.RiskNone, report.PrivacyRisk)
}

func TestDetect_RecommendationsCiteFindings(t *testing.T) {
	report := detect(t, "Jane Smith\n123 Maple Street")

	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "123 Maple Street")
	assert.Contains(t, report.Recommendations[len(report.Recommendations)-1], "contact header")
}

func TestClassifySection_Regions(t *testing.T) {
	text := strings.Repeat("a", 300) + " experience at a company " + strings.Repeat("b", 300)

	assert.Equal(t, types.RegionContactHeader, classifySection(text, 10))
	assert.Equal(t, types.RegionExperience, classifySection(text, 310))
	assert.Equal(t, types.RegionOther, classifySection(strings.Repeat("c", 600), 550))
}
