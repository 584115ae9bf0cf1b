// Package flow is the assessment wizard as a pure state machine. The two
// branches share intake and the technical objectives; only facilities with an
// EMIS are scored and only facilities without one fill in the specification
// survey.
package flow

import (
	"errors"
	"fmt"

	"emis-workers/internal/emis/intake"
)

var (
	ErrIncompleteAssessment     = errors.New("INCOMPLETE_ASSESSMENT")
	ErrIncompleteSpecifications = errors.New("INCOMPLETE_SPECIFICATIONS")
	ErrInvalidTransition        = errors.New("INVALID_INPUT")
)

type Step string

const (
	StepOrgInfo             Step = "org-info"
	StepFacilityChoice      Step = "facility-choice"
	StepFacilityAssessment  Step = "facility-assessment"
	StepAssessmentResults   Step = "assessment-results"
	StepTechnicalObjectives Step = "technical-objectives"
	StepEMISSpecs           Step = "emis-specs"
	StepReport              Step = "report"
)

var (
	withEMISPath = []Step{
		StepOrgInfo, StepFacilityChoice, StepFacilityAssessment,
		StepAssessmentResults, StepTechnicalObjectives, StepReport,
	}
	withoutEMISPath = []Step{
		StepOrgInfo, StepFacilityChoice, StepTechnicalObjectives,
		StepEMISSpecs, StepReport,
	}
	commonPath = []Step{StepOrgInfo, StepFacilityChoice}
)

// State is where a session is in the wizard plus the facts the gates need.
type State struct {
	Step                   Step                  `json:"step"`
	Choice                 intake.FacilityChoice `json:"facilityType,omitempty"`
	AssessmentComplete     bool                  `json:"assessmentComplete"`
	SpecificationsComplete bool                  `json:"specificationsComplete"`
}

// Start returns the initial state. Starting over discards the branch choice
// and both gates.
func Start() State {
	return State{Step: StepOrgInfo}
}

// Path lists the steps of a branch in order. Before a choice is made only the
// shared intake steps are known.
func Path(choice intake.FacilityChoice) []Step {
	switch choice {
	case intake.WithEMIS:
		return append([]Step(nil), withEMISPath...)
	case intake.WithoutEMIS:
		return append([]Step(nil), withoutEMISPath...)
	default:
		return append([]Step(nil), commonPath...)
	}
}

// Next advances one step. Leaving the facility choice needs a valid choice,
// leaving the assessment needs every section complete and leaving the
// specification survey needs every tab visited.
func Next(s State) (State, error) {
	switch s.Step {
	case StepFacilityChoice:
		if _, err := intake.ParseFacilityChoice(string(s.Choice)); err != nil {
			return s, err
		}
	case StepFacilityAssessment:
		if !s.AssessmentComplete {
			return s, fmt.Errorf("%w: every section must be answered before viewing results", ErrIncompleteAssessment)
		}
	case StepEMISSpecs:
		if !s.SpecificationsComplete {
			return s, fmt.Errorf("%w: please visit and complete all modules before generating the report", ErrIncompleteSpecifications)
		}
	case StepReport:
		return s, fmt.Errorf("%w: report is the last step", ErrInvalidTransition)
	}

	path := Path(s.Choice)
	i := indexOf(path, s.Step)
	if i < 0 || i+1 >= len(path) {
		return s, fmt.Errorf("%w: step %q is not on the %q path", ErrInvalidTransition, s.Step, s.Choice)
	}
	s.Step = path[i+1]
	return s, nil
}

// Back returns to the previous step of the branch. Going back past the
// facility choice clears it.
func Back(s State) (State, error) {
	path := Path(s.Choice)
	i := indexOf(path, s.Step)
	if i <= 0 {
		return s, fmt.Errorf("%w: cannot go back from %q", ErrInvalidTransition, s.Step)
	}
	s.Step = path[i-1]
	if s.Step == StepFacilityChoice {
		s.Choice = ""
	}
	return s, nil
}

// Valid reports whether the state's step lies on its branch.
func (s State) Valid() bool {
	return indexOf(Path(s.Choice), s.Step) >= 0
}

func indexOf(path []Step, step Step) int {
	for i, p := range path {
		if p == step {
			return i
		}
	}
	return -1
}
