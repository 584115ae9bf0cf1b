package intake

import "strings"

// ReductionObjectiveID is the objective that carries a reduction percentage.
const ReductionObjectiveID = "obj2"

type TechnicalObjective struct {
	ID                  string `json:"id"`
	Text                string `json:"text"`
	Checked             bool   `json:"checked"`
	ReductionPercentage string `json:"reductionPercentage,omitempty"`
}

var objectiveTexts = []struct{ id, text string }{
	{"obj1", "Facilitate continuous energy management and increased operational efficiency"},
	{"obj2", "Enable the organization to reduce portfolio energy use by"},
	{"obj3", "Automate energy performance analysis using an energy information system"},
	{"obj4", "Perform automated fault detection and diagnostics (FDD) for the HVAC system"},
	{"obj5", "Achieve automated system optimization with the EMIS software performing supervisory control to supplement the building automation system (BAS)"},
	{"obj6", "Track the impact of energy efficiency projects, and measure and verify savings"},
	{"obj7", "Track and manage peak demand"},
	{"obj8", "Produce reports for energy and utility management, operations, and maintenance"},
	{"obj9", "Support implementation of ISO 50001 Ready"},
	{"obj10", "Manage GHG emission monitoring and subsequent reporting"},
}

// DefaultObjectives returns the ten objectives, all unchecked.
func DefaultObjectives() []TechnicalObjective {
	out := make([]TechnicalObjective, len(objectiveTexts))
	for i, o := range objectiveTexts {
		out[i] = TechnicalObjective{ID: o.id, Text: o.text}
	}
	return out
}

// MergeObjectives overlays the checked state and percentage of submitted
// objectives onto the defaults. Texts always come from the defaults and
// unknown ids are ignored.
func MergeObjectives(submitted []TechnicalObjective) []TechnicalObjective {
	byID := make(map[string]TechnicalObjective, len(submitted))
	for _, o := range submitted {
		byID[o.ID] = o
	}
	out := DefaultObjectives()
	for i := range out {
		if s, ok := byID[out[i].ID]; ok {
			out[i].Checked = s.Checked
			if out[i].ID == ReductionObjectiveID {
				out[i].ReductionPercentage = strings.TrimSpace(s.ReductionPercentage)
			}
		}
	}
	return out
}

// Display renders the objective as it appears in a report. The reduction
// objective reads "... by 15 percent" when a percentage was entered.
func (o TechnicalObjective) Display() string {
	if o.ID == ReductionObjectiveID && o.ReductionPercentage != "" {
		return o.Text + " " + o.ReductionPercentage + " percent"
	}
	return o.Text
}

// Selected returns the checked objectives in their original order.
func Selected(objectives []TechnicalObjective) []TechnicalObjective {
	var out []TechnicalObjective
	for _, o := range objectives {
		if o.Checked {
			out = append(out, o)
		}
	}
	return out
}
