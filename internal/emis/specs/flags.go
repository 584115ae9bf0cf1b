package specs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Legacy flat keys.
const (
	keyAdditionalMonitoring      = "additionalMonitoring"
	keyOtherDataSources          = "otherDataSources"
	keyEnergyConsumptionTracking = "energyConsumptionTracking"
	keySubmeterRows              = "submeterRows"
	keyVisitedTabs               = "visitedTabs"
)

// FromFlags builds a survey from the flat key/value form used by the survey
// screens: "include_4_2", "utility_NaturalGas_tab1", "bas_fanspeed_1_3",
// "export_pdf", the three free-text fields, "submeterRows" and "visitedTabs".
// Fields that are absent keep their NewSurvey defaults. Every unknown key or
// mistyped value is reported; none are dropped silently.
func FromFlags(flags map[string]interface{}) (*Survey, error) {
	s := NewSurvey()
	var problems []string
	bad := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := flags[k]
		switch {
		case strings.HasPrefix(k, "include_"):
			id := TopicID(strings.ReplaceAll(strings.TrimPrefix(k, "include_"), "_", "."))
			on, ok := v.(bool)
			if !ok {
				bad("%s: want boolean", k)
				continue
			}
			if _, known := topicIndex[id]; !known {
				bad("%s: unknown topic", k)
				continue
			}
			setFlag(s.Included, id, on)

		case strings.HasPrefix(k, "utility_") && strings.HasSuffix(k, "_tab1"):
			u := Utility(strings.TrimSuffix(strings.TrimPrefix(k, "utility_"), "_tab1"))
			on, ok := v.(bool)
			if !ok || !knownUtility(u) {
				bad("%s: unknown utility or non-boolean value", k)
				continue
			}
			setFlag(s.Utilities, u, on)

		case strings.HasPrefix(k, "bas_") && strings.HasSuffix(k, "_1_3"):
			key := strings.TrimSuffix(strings.TrimPrefix(k, "bas_"), "_1_3")
			on, ok := v.(bool)
			if !ok {
				bad("%s: want boolean", k)
				continue
			}
			if d, found := lookupBASDataType(key); found {
				setFlag(s.BASDataTypes, d, on)
			} else if p, found := lookupBASIntegrationPoint(key); found {
				setFlag(s.BASIntegration, p, on)
			} else {
				bad("%s: unknown BAS option", k)
			}

		case strings.HasPrefix(k, "export_"):
			f, found := lookupExportFormat(strings.TrimPrefix(k, "export_"))
			on, ok := v.(bool)
			if !found || !ok {
				bad("%s: unknown export format or non-boolean value", k)
				continue
			}
			setFlag(s.ExportFormats, f, on)

		case k == keyAdditionalMonitoring, k == keyOtherDataSources, k == keyEnergyConsumptionTracking:
			text, ok := v.(string)
			if !ok {
				bad("%s: want string", k)
				continue
			}
			switch k {
			case keyAdditionalMonitoring:
				s.AdditionalMonitoring = text
			case keyOtherDataSources:
				s.OtherDataSources = text
			default:
				s.EnergyConsumptionTracking = text
			}

		case k == keySubmeterRows:
			var rows []SubmeterRow
			if err := decodeRows(v, &rows); err != nil {
				bad("%s: %v", k, err)
				continue
			}
			s.SubmeterRows = rows

		case k == keyVisitedTabs:
			tabs, err := parseTabs(v)
			if err != nil {
				bad("%s: %v", k, err)
				continue
			}
			s.VisitedTabs = tabs

		default:
			bad("%s: unknown key", k)
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSurvey, strings.Join(problems, "; "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeRows(v interface{}, rows *[]SubmeterRow) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           rows,
	})
	if err != nil {
		return err
	}
	return dec.Decode(v)
}

func parseTabs(v interface{}) ([]Tab, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("want list")
	}
	seen := make(map[Tab]bool, len(items))
	var out []Tab
	for _, item := range items {
		var tab Tab
		switch x := item.(type) {
		case string:
			t, ok := ParseTab(x)
			if !ok {
				return nil, fmt.Errorf("unknown tab %q", x)
			}
			tab = t
		case float64:
			tab = Tab(x)
		case int:
			tab = Tab(x)
		default:
			return nil, fmt.Errorf("unknown tab %v", item)
		}
		if !tab.Valid() {
			return nil, fmt.Errorf("unknown tab %v", item)
		}
		if !seen[tab] {
			seen[tab] = true
			out = append(out, tab)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Flags renders the survey back into the flat key form accepted by
// FromFlags. Only selected options appear.
func (s *Survey) Flags() map[string]interface{} {
	out := map[string]interface{}{
		keyAdditionalMonitoring:      s.AdditionalMonitoring,
		keyOtherDataSources:          s.OtherDataSources,
		keyEnergyConsumptionTracking: s.EnergyConsumptionTracking,
	}
	for id, on := range s.Included {
		if on {
			out[id.FlagKey()] = true
		}
	}
	for _, u := range s.SelectedUtilities() {
		out["utility_"+string(u)+"_tab1"] = true
	}
	for _, d := range s.SelectedBASDataTypes() {
		out["bas_"+string(d)+"_1_3"] = true
	}
	for _, p := range s.SelectedBASIntegration() {
		out["bas_"+string(p)+"_1_3"] = true
	}
	for _, f := range s.SelectedExportFormats() {
		out["export_"+string(f)] = true
	}

	rows := make([]interface{}, 0, len(s.SubmeterRows))
	for _, r := range s.SubmeterRows {
		rows = append(rows, map[string]interface{}{
			"id":        r.ID,
			"meterName": r.MeterName,
			"parameter": r.Parameter,
			"interval":  string(r.Interval),
			"minutes":   r.Minutes,
			"comments":  r.Comments,
		})
	}
	out[keySubmeterRows] = rows

	tabs := make([]interface{}, 0, len(s.VisitedTabs))
	for _, t := range s.VisitedTabs {
		tabs = append(tabs, t.Key())
	}
	out[keyVisitedTabs] = tabs
	return out
}

// Normalize allocates any nil maps left by JSON decoding and restores the
// single default sub-meter row when none is present.
func (s *Survey) Normalize() {
	if s.Included == nil {
		s.Included = make(map[TopicID]bool)
	}
	if s.Utilities == nil {
		s.Utilities = make(map[Utility]bool)
	}
	if s.BASDataTypes == nil {
		s.BASDataTypes = make(map[BASDataType]bool)
	}
	if s.BASIntegration == nil {
		s.BASIntegration = make(map[BASIntegrationPoint]bool)
	}
	if s.ExportFormats == nil {
		s.ExportFormats = make(map[ExportFormat]bool)
	}
	if s.SubmeterRows == nil {
		s.SubmeterRows = []SubmeterRow{defaultSubmeterRow()}
	}
	if s.VisitedTabs == nil {
		s.VisitedTabs = []Tab{1}
	}
}
