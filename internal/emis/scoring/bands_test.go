package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emis-workers/internal/emis/catalog"
)

func TestBandAndSummary(t *testing.T) {
	tests := []struct {
		percentage int
		band       ScoreBand
		summary    string
		tier       Tier
	}{
		{100, BandExcellent, "excellent", TierMediumTerm},
		{80, BandExcellent, "excellent", TierMediumTerm},
		{79, BandGood, "good", TierMediumTerm},
		{70, BandGood, "good", TierMediumTerm},
		{69, BandGood, "good", TierShortTerm},
		{60, BandGood, "good", TierShortTerm},
		{50, BandModerate, "moderate", TierShortTerm},
		{49, BandModerate, "moderate", TierImmediate},
		{40, BandModerate, "moderate", TierImmediate},
		{39, BandNeedsImprovement, "significant improvement needed", TierImmediate},
		{0, BandNeedsImprovement, "significant improvement needed", TierImmediate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.band, Band(tt.percentage), "band %d", tt.percentage)
		assert.Equal(t, tt.summary, Summary(tt.percentage), "summary %d", tt.percentage)
		assert.Equal(t, tt.tier, PriorityTier(tt.percentage), "tier %d", tt.percentage)
	}

	assert.True(t, Satisfactory(70))
	assert.False(t, Satisfactory(69))
}

func TestSectionActions(t *testing.T) {
	sr := SectionResult{ID: string(catalog.SectionEnergyMeters)}

	sr.Percentage = 10
	actions := SectionActions(sr)
	assert.Len(t, actions, 3)
	assert.Equal(t, "Implement comprehensive sub-metering strategy to achieve 80%+ coverage", actions[0])

	sr.Percentage = 55
	assert.Len(t, SectionActions(sr), 2)

	sr.Percentage = 90
	assert.Len(t, SectionActions(sr), 1)

	assert.Empty(t, SectionActions(SectionResult{ID: "Lighting"}))
}

func TestSectionDescription(t *testing.T) {
	for _, s := range catalog.Sections() {
		assert.NotEqual(t, defaultSectionDescription, SectionDescription(s), s)
	}
	assert.Equal(t, defaultSectionDescription, SectionDescription("Lighting"))
}
