package specs

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Keys and Topics
// ==========================

func TestTabs(t *testing.T) {
	tabs := Tabs()
	require.Len(t, tabs, TabCount)
	assert.Equal(t, "Data Integration", tabs[0].Name())
	assert.Equal(t, "Technical Warranty, Support and Training", tabs[7].Name())
	assert.Equal(t, "tab3", Tab(3).Key())
	assert.Equal(t, "", Tab(9).Name())

	tab, ok := ParseTab("tab5")
	assert.True(t, ok)
	assert.Equal(t, Tab(5), tab)
	tab, ok = ParseTab("2")
	assert.True(t, ok)
	assert.Equal(t, Tab(2), tab)
	_, ok = ParseTab("tab0")
	assert.False(t, ok)
	_, ok = ParseTab("summary")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Natural Gas", UtilityNaturalGas.Label())
	assert.Equal(t, "Renewable Energy", UtilityRenewableEnergy.Label())
	assert.Equal(t, "Electricity", UtilityElectricity.Label())
	assert.Equal(t, "chiller/boiler plant data", BASPlantData.Label())
	assert.Equal(t, "energy meter data already connected into the BAS", BASMeterData.Label())
	assert.Equal(t, ".doc/.docx", ExportWord.Label())
	assert.Len(t, Utilities(), 9)
	assert.Len(t, BASDataTypes(), 3)
	assert.Len(t, BASIntegrationPoints(), 8)
	assert.Len(t, ExportFormats(), 3)
}

func TestTopics(t *testing.T) {
	assert.Len(t, Topics(), 34)
	assert.Equal(t, Tab(4), TopicID("4.2").Tab())
	assert.Equal(t, "include_4_2", TopicID("4.2").FlagKey())

	topic, ok := LookupTopic(TopicSubmeterData)
	require.True(t, ok)
	assert.Equal(t, "Interval sub-meter data integration", topic.Title)

	_, ok = LookupTopic("9.9")
	assert.False(t, ok)

	counts := map[Tab]int{1: 7, 2: 3, 3: 2, 4: 6, 5: 4, 6: 2, 7: 6, 8: 4}
	for tab, want := range counts {
		assert.Len(t, TopicsIn(tab), want, "tab %d", tab)
	}
}

func TestSubmeterRow_IntervalLabel(t *testing.T) {
	assert.Equal(t, "Monthly", SubmeterRow{Interval: IntervalMonthly}.IntervalLabel())
	assert.Equal(t, "Sub-hourly: 15 mins interval", SubmeterRow{Interval: IntervalSubHourly, Minutes: "15"}.IntervalLabel())
	assert.Equal(t, "Sub-hourly", SubmeterRow{Interval: IntervalSubHourly}.IntervalLabel())
	assert.False(t, Interval("Weekly").Valid())
}

// ==========================
// Survey
// ==========================

func TestNewSurvey_Defaults(t *testing.T) {
	s := NewSurvey()

	assert.Empty(t, s.Included)
	assert.Equal(t, []Tab{1}, s.VisitedTabs)
	require.Len(t, s.SubmeterRows, 1)
	assert.Equal(t, "1", s.SubmeterRows[0].ID)
	assert.Equal(t, IntervalMonthly, s.SubmeterRows[0].Interval)
	assert.Equal(t, DefaultAdditionalMonitoring, s.AdditionalMonitoring)
	assert.Equal(t, DefaultOtherDataSources, s.OtherDataSources)
	assert.Equal(t, DefaultEnergyConsumptionTracking, s.EnergyConsumptionTracking)
	assert.Equal(t, 13, s.CompletionPercent())
	assert.False(t, s.Complete())
	assert.NoError(t, s.Validate())
}

func TestSurvey_Include(t *testing.T) {
	s := NewSurvey()

	require.NoError(t, s.Include("4.2", true))
	assert.True(t, s.IsIncluded("4.2"))

	require.NoError(t, s.Include("4.2", false))
	assert.False(t, s.IsIncluded("4.2"))
	assert.Empty(t, s.Included)

	err := s.Include("4.9", true)
	assert.True(t, errors.Is(err, ErrInvalidSurvey))
}

func TestSurvey_VisitAndCompletion(t *testing.T) {
	s := NewSurvey()

	require.NoError(t, s.Visit(3))
	require.NoError(t, s.Visit(3))
	require.NoError(t, s.Visit(2))
	assert.Equal(t, []Tab{1, 2, 3}, s.VisitedTabs)
	assert.Equal(t, 38, s.CompletionPercent())

	err := s.RequireComplete()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), IncompleteMessage)

	for _, tab := range Tabs() {
		require.NoError(t, s.Visit(tab))
	}
	assert.Equal(t, 100, s.CompletionPercent())
	assert.True(t, s.Complete())
	assert.NoError(t, s.RequireComplete())

	assert.True(t, errors.Is(s.Visit(0), ErrInvalidSurvey))
}

func TestSurvey_Validate(t *testing.T) {
	s := NewSurvey()
	s.Included["9.1"] = true
	s.Utilities["Coal"] = true
	s.SubmeterRows = append(s.SubmeterRows, SubmeterRow{ID: "2", Interval: "Weekly"})

	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSurvey))
	assert.Contains(t, err.Error(), `unknown topic "9.1"`)
	assert.Contains(t, err.Error(), `unknown utility "Coal"`)
	assert.Contains(t, err.Error(), `submeter row 2: unknown interval "Weekly"`)
}

func TestSurvey_SelectedInCatalogOrder(t *testing.T) {
	s := NewSurvey()
	s.Utilities[UtilityWater] = true
	s.Utilities[UtilityElectricity] = true
	s.ExportFormats[ExportHTML] = true
	s.ExportFormats[ExportPDF] = true

	assert.Equal(t, []Utility{UtilityElectricity, UtilityWater}, s.SelectedUtilities())
	assert.Equal(t, []ExportFormat{ExportPDF, ExportHTML}, s.SelectedExportFormats())
	assert.Empty(t, s.SelectedBASDataTypes())
}

func TestSurvey_NormalizeAfterDecode(t *testing.T) {
	var s Survey
	require.NoError(t, json.Unmarshal([]byte(`{"included":{"1.1":true}}`), &s))

	s.Normalize()

	assert.True(t, s.IsIncluded(TopicUtilityData))
	assert.NotNil(t, s.Utilities)
	assert.Len(t, s.SubmeterRows, 1)
	assert.Equal(t, []Tab{1}, s.VisitedTabs)
	assert.NotPanics(t, func() { _ = s.Include("2.1", true) })
}

// ==========================
// Flat Flags
// ==========================

func TestFromFlags(t *testing.T) {
	flags := map[string]interface{}{
		"include_1_1":              true,
		"include_1_3":              true,
		"include_4_2":              false,
		"utility_NaturalGas_tab1":  true,
		"utility_Electricity_tab1": true,
		"bas_airhandlerdata_1_3":   true,
		"bas_fanspeed_1_3":         true,
		"export_pdf":               true,
		"additionalMonitoring":     "Chiller plant kW/ton",
		"visitedTabs":              []interface{}{"tab1", "tab3", float64(2), "tab3"},
		"submeterRows": []interface{}{
			map[string]interface{}{"id": "1", "meterName": "Main", "parameter": "kWh", "interval": "Sub-hourly", "minutes": "15", "comments": ""},
			map[string]interface{}{"id": "2", "meterName": "Chiller", "parameter": "kW", "interval": "Hourly", "comments": "new"},
		},
	}

	s, err := FromFlags(flags)
	require.NoError(t, err)

	assert.True(t, s.IsIncluded(TopicUtilityData))
	assert.True(t, s.IsIncluded(TopicBASData))
	assert.False(t, s.IsIncluded("4.2"))
	assert.Equal(t, []Utility{UtilityElectricity, UtilityNaturalGas}, s.SelectedUtilities())
	assert.Equal(t, []BASDataType{BASAirHandlerData}, s.SelectedBASDataTypes())
	assert.Equal(t, []BASIntegrationPoint{BASFanSpeed}, s.SelectedBASIntegration())
	assert.Equal(t, []ExportFormat{ExportPDF}, s.SelectedExportFormats())
	assert.Equal(t, "Chiller plant kW/ton", s.AdditionalMonitoring)
	assert.Equal(t, DefaultOtherDataSources, s.OtherDataSources)
	assert.Equal(t, []Tab{1, 2, 3}, s.VisitedTabs)

	require.Len(t, s.SubmeterRows, 2)
	assert.Equal(t, "Sub-hourly: 15 mins interval", s.SubmeterRows[0].IntervalLabel())
	assert.Equal(t, "Chiller", s.SubmeterRows[1].MeterName)
	assert.Equal(t, IntervalHourly, s.SubmeterRows[1].Interval)
}

func TestFromFlags_LegacyMeterDataKey(t *testing.T) {
	s, err := FromFlags(map[string]interface{}{
		"bas_energymeteralreadyconnectedintotheBAS_1_3": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []BASIntegrationPoint{BASMeterData}, s.SelectedBASIntegration())
}

func TestFromFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]interface{}
		want  []string
	}{
		{
			name:  "unknown key",
			flags: map[string]interface{}{"favouriteColour": "blue"},
			want:  []string{"favouriteColour: unknown key"},
		},
		{
			name:  "unknown topic",
			flags: map[string]interface{}{"include_9_9": true},
			want:  []string{"include_9_9: unknown topic"},
		},
		{
			name:  "non-boolean include",
			flags: map[string]interface{}{"include_1_1": "yes"},
			want:  []string{"include_1_1: want boolean"},
		},
		{
			name:  "unknown utility",
			flags: map[string]interface{}{"utility_Coal_tab1": true},
			want:  []string{"utility_Coal_tab1"},
		},
		{
			name:  "unknown BAS option",
			flags: map[string]interface{}{"bas_lasers_1_3": true},
			want:  []string{"bas_lasers_1_3: unknown BAS option"},
		},
		{
			name:  "bad tab",
			flags: map[string]interface{}{"visitedTabs": []interface{}{"tab12"}},
			want:  []string{"visitedTabs: unknown tab"},
		},
		{
			name: "bad row field",
			flags: map[string]interface{}{"submeterRows": []interface{}{
				map[string]interface{}{"id": "1", "interval": "Monthly", "voltage": 480},
			}},
			want: []string{"submeterRows"},
		},
		{
			name: "bad row interval",
			flags: map[string]interface{}{"submeterRows": []interface{}{
				map[string]interface{}{"id": "1", "interval": "Weekly"},
			}},
			want: []string{`unknown interval "Weekly"`},
		},
		{
			name: "all problems reported",
			flags: map[string]interface{}{
				"include_1_1":        1,
				"export_tiff":        true,
				"otherDataSources":   42,
				"utility_Water_tab1": true,
			},
			want: []string{"include_1_1", "export_tiff", "otherDataSources: want string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromFlags(tt.flags)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, ErrInvalidSurvey))
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestFlags_RoundTrip(t *testing.T) {
	s := NewSurvey()
	require.NoError(t, s.Include("1.2", true))
	require.NoError(t, s.Include("6.2", true))
	s.Utilities[UtilitySteam] = true
	s.BASIntegration[BASMeterData] = true
	s.ExportFormats[ExportWord] = true
	s.SubmeterRows[0].MeterName = "Main"
	require.NoError(t, s.Visit(4))

	flags := s.Flags()
	assert.Equal(t, true, flags["include_1_2"])
	assert.Equal(t, true, flags["bas_energymeterdataalreadyconnectedintotheBAS_1_3"])
	assert.Equal(t, []interface{}{"tab1", "tab4"}, flags["visitedTabs"])

	back, err := FromFlags(flags)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

// ==========================
// Outline Numbering
// ==========================

func TestOutline_NumbersOnlyIncludedTopics(t *testing.T) {
	s := NewSurvey()
	for _, id := range []TopicID{"1.3", "1.6", "4.2", "4.5", "8.1"} {
		require.NoError(t, s.Include(id, true))
	}

	outline := s.Outline()
	require.Len(t, outline, 3)

	assert.Equal(t, 1, outline[0].Number)
	assert.Equal(t, "Data Integration", outline[0].Title)
	require.Len(t, outline[0].Topics, 2)
	assert.Equal(t, "1.1", outline[0].Topics[0].Number)
	assert.Equal(t, TopicBASData, outline[0].Topics[0].ID)
	assert.Equal(t, "1.2", outline[0].Topics[1].Number)
	assert.Equal(t, TopicOtherDataSources, outline[0].Topics[1].ID)

	assert.Equal(t, 2, outline[1].Number)
	assert.Equal(t, Tab(4), outline[1].Tab)
	assert.Equal(t, "2.2", outline[1].Topics[1].Number)
	assert.Equal(t, "Work order management", outline[1].Topics[1].Title)

	assert.Equal(t, 3, outline[2].Number)
	assert.Equal(t, Tab(8), outline[2].Tab)
	assert.Equal(t, "3.1", outline[2].Topics[0].Number)
}

func TestOutline_Empty(t *testing.T) {
	assert.Empty(t, NewSurvey().Outline())
}
