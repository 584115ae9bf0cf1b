// Package catalog holds the ordered set of facility assessment questions and
// their grouping into the seven fixed assessment sections.
package catalog

import "strings"

// Section names one of the fixed assessment groupings. The string value is
// also the display title and the section id used in results.
type Section string

const (
	SectionEnergyMeters       Section = "Energy Meters"
	SectionRelevantVariables  Section = "Relevant Variables"
	SectionDataCapture        Section = "Data Capture and Storage"
	SectionDataAnalysis       Section = "Data Analysis"
	SectionTargetSetting      Section = "Target Setting"
	SectionPerformanceReports Section = "Energy Performance Reporting"
	SectionSupportSkills      Section = "System Support Skills"
)

// PercentageScale is the top of the 0-5 scale used by percentage-based sliders.
const PercentageScale = 5

var sectionOrder = []Section{
	SectionEnergyMeters,
	SectionRelevantVariables,
	SectionDataCapture,
	SectionDataAnalysis,
	SectionTargetSetting,
	SectionPerformanceReports,
	SectionSupportSkills,
}

// Sections returns the seven sections in display and report order.
func Sections() []Section {
	out := make([]Section, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// Valid reports whether s is one of the seven known sections.
func (s Section) Valid() bool {
	for _, known := range sectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Slug returns a lowercase hyphenated form suitable for metric labels and anchors.
func (s Section) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

type AnswerOption struct {
	Text        string `json:"text" yaml:"text"`
	Score       int    `json:"score" yaml:"score"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Question is one assessment item. For slider questions the position of an
// option in AnswerOptions is also its slider index.
type Question struct {
	ID                string         `json:"id" yaml:"id"`
	Title             string         `json:"title" yaml:"title"`
	Subsection        Section        `json:"subsection" yaml:"subsection"`
	Explanation       string         `json:"explanation" yaml:"explanation"`
	AnswerOptions     []AnswerOption `json:"answerOptions" yaml:"answerOptions"`
	MaxScore          int            `json:"maxScore" yaml:"maxScore"`
	IsSlider          bool           `json:"isSlider,omitempty" yaml:"isSlider,omitempty"`
	IsPercentageBased bool           `json:"isPercentageBased,omitempty" yaml:"isPercentageBased,omitempty"`
	SliderLabels      []string       `json:"sliderLabels,omitempty" yaml:"sliderLabels,omitempty"`
	NextSteps         string         `json:"nextSteps,omitempty" yaml:"nextSteps,omitempty"`
}

// Option returns the answer option at index i.
func (q Question) Option(i int) (AnswerOption, bool) {
	if i < 0 || i >= len(q.AnswerOptions) {
		return AnswerOption{}, false
	}
	return q.AnswerOptions[i], true
}

// OptionIndexByText finds the option whose text equals text exactly.
// Returns -1 when nothing matches.
func (q Question) OptionIndexByText(text string) int {
	for i, opt := range q.AnswerOptions {
		if opt.Text == text {
			return i
		}
	}
	return -1
}

// HighestOptionScore is the largest score among the answer options.
func (q Question) HighestOptionScore() int {
	best := 0
	for i, opt := range q.AnswerOptions {
		if i == 0 || opt.Score > best {
			best = opt.Score
		}
	}
	return best
}

func (q Question) clone() Question {
	out := q
	out.AnswerOptions = append([]AnswerOption(nil), q.AnswerOptions...)
	if q.SliderLabels != nil {
		out.SliderLabels = append([]string(nil), q.SliderLabels...)
	}
	return out
}
