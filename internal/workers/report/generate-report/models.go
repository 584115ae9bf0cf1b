package generatereport

import (
	"emis-workers/internal/emis/intake"
	"emis-workers/internal/emis/scoring"
	"emis-workers/internal/emis/specs"
)

// Input is the accumulated session state a report is rendered from.
// ReportDate is YYYY-MM-DD; empty means today.
type Input struct {
	ReportKind          string                      `json:"reportKind"`
	UserInfo            intake.UserInfo             `json:"userInfo"`
	FacilityType        string                      `json:"facilityType"`
	AssessmentResults   *scoring.Results            `json:"assessmentResults"`
	TechnicalObjectives []intake.TechnicalObjective `json:"technicalObjectives"`
	EMISSpecs           *specs.Survey               `json:"emisSpecs"`
	ReportDate          string                      `json:"reportDate"`
}

// Output is the rendered document. HTML is passed on to deliver-report.
type Output struct {
	ReportID    string `json:"reportId"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	HTML        string `json:"html"`
	Cached      bool   `json:"cached"`
}
