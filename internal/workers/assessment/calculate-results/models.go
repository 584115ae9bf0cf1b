package calculateresults

import (
	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/scoring"
)

// Input carries the session's answers. With Finalize set the assessment must
// be complete.
type Input struct {
	Answers  map[string]assessment.Answer `json:"answers"`
	Finalize bool                         `json:"finalize"`
}

type Output struct {
	AssessmentResults   *scoring.Results `json:"assessmentResults"`
	Complete            bool             `json:"complete"`
	CompletionPercent   int              `json:"completionPercent"`
	Summary             string           `json:"summary"`
	RecommendationTexts []string         `json:"recommendationTexts"`
}
