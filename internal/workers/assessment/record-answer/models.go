package recordanswer

import "emis-workers/internal/emis/assessment"

// Capture modes. Each mode reads exactly one of Index, Percentage or Score.
const (
	ModeOption      = "option"
	ModeSlider      = "slider"
	ModePercentage  = "percentage"
	ModeSliderScore = "sliderScore"
)

type Input struct {
	AssessmentID string                       `json:"assessmentId"`
	Answers      map[string]assessment.Answer `json:"answers"`
	QuestionID   string                       `json:"questionId"`
	Mode         string                       `json:"mode"`
	Index        *int                         `json:"index,omitempty"`
	Percentage   *float64                     `json:"percentage,omitempty"`
	Score        *int                         `json:"score,omitempty"`
}

type Output struct {
	AssessmentID      string                       `json:"assessmentId"`
	Answers           map[string]assessment.Answer `json:"answers"`
	Applied           bool                         `json:"applied"`
	Complete          bool                         `json:"complete"`
	CompletionPercent int                          `json:"completionPercent"`
	SectionProgress   []assessment.SectionProgress `json:"sectionProgress"`
}
