package routefacilitychoice

import "emis-workers/internal/emis/flow"

const (
	DirectionNext = "next"
	DirectionBack = "back"
)

// Input is the wizard position. Step defaults to facility-choice and
// Direction to next.
type Input struct {
	FacilityType           string    `json:"facilityType"`
	Step                   flow.Step `json:"step"`
	Direction              string    `json:"direction"`
	AssessmentComplete     bool      `json:"assessmentComplete"`
	SpecificationsComplete bool      `json:"specificationsComplete"`
}

type Output struct {
	FacilityType string      `json:"facilityType"`
	NextStep     flow.Step   `json:"nextStep"`
	Path         []flow.Step `json:"path"`
	WithEMIS     bool        `json:"withEmis"`
}
