// Package report renders assessment results and EMIS specifications into the
// Word-compatible HTML documents users download.
package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"emis-workers/internal/emis/catalog"
	"emis-workers/internal/emis/intake"
	"emis-workers/internal/emis/scoring"
	"emis-workers/internal/emis/specs"
)

var ErrRenderFailed = errors.New("REPORT_RENDER_FAILED")

const (
	ContentType     = "application/msword"
	ResultsFilename = "EMIS_Assessment_Results.doc"
	EMISFilename    = "EMIS_Report.doc"

	dateLayout = "January 2, 2006"
)

type Kind string

const (
	KindResults Kind = "results"
	KindEMIS    Kind = "emis"
)

// Document is a rendered report ready for download or delivery.
type Document struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	HTML        string `json:"html"`
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("report").Funcs(template.FuncMap{
	"lines": func(s string) []string { return strings.Split(s, "\n") },
	"join":  strings.Join,
}).ParseFS(templateFS, "templates/*.html"))

// ResultsOptions tunes the assessment results document. A zero Date means
// today.
type ResultsOptions struct {
	Date         time.Time
	Organization string
}

type sectionView struct {
	scoring.SectionResult
	Description string
	Actions     []string
}

type resultsView struct {
	Results      *scoring.Results
	Date         string
	Organization string
	Summary      string
	Chart        template.HTML
	Sections     []sectionView
}

// RenderResults renders the "EMIS Assessment Results" document.
func RenderResults(results *scoring.Results, opts ResultsOptions) (*Document, error) {
	if results == nil {
		return nil, fmt.Errorf("%w: no results", ErrRenderFailed)
	}
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	view := resultsView{
		Results:      results,
		Date:         date.Format(dateLayout),
		Organization: opts.Organization,
		Summary:      scoring.Summary(results.OverallPercentage),
		Chart:        Chart(results).SVG(),
		Sections:     make([]sectionView, 0, len(results.Sections)),
	}
	for _, s := range results.Sections {
		view.Sections = append(view.Sections, sectionView{
			SectionResult: s,
			Description:   scoring.SectionDescription(catalog.Section(s.ID)),
			Actions:       scoring.SectionActions(s),
		})
	}

	html, err := execute("results.html", view)
	if err != nil {
		return nil, err
	}
	return &Document{
		Kind:        KindResults,
		Title:       "EMIS Assessment Results",
		Filename:    ResultsFilename,
		ContentType: ContentType,
		HTML:        html,
	}, nil
}

// EMISInput is everything the combined EMIS report draws on. Results is only
// shown for facilities with an EMIS; Survey is optional.
type EMISInput struct {
	UserInfo   intake.UserInfo             `json:"userInfo"`
	Choice     intake.FacilityChoice       `json:"facilityType"`
	Results    *scoring.Results            `json:"assessmentResults,omitempty"`
	Objectives []intake.TechnicalObjective `json:"technicalObjectives"`
	Survey     *specs.Survey               `json:"emisSpecs,omitempty"`
}

type topicView struct {
	Number       string
	Title        string
	Before       []specs.Block
	After        []specs.Block
	Utilities    []string
	SubmeterRows []specs.SubmeterRow
	BASData      []string
	BASPoints    []string
	FreeText     string
	ShowExports  bool
	Exports      []string
}

type outlineView struct {
	Number int
	Title  string
	Topics []topicView
}

type emisView struct {
	UserInfo        intake.UserInfo
	Attendees       string
	WithoutEMIS     bool
	Results         *scoring.Results
	Recommendations []string
	Objectives      []string
	Outline         []outlineView
}

// RenderEMISReport renders the combined "EMIS Report".
func RenderEMISReport(in EMISInput) (*Document, error) {
	view := emisView{
		UserInfo:    in.UserInfo,
		Attendees:   in.UserInfo.Attendees(),
		WithoutEMIS: in.Choice == intake.WithoutEMIS,
	}
	if in.Choice == intake.WithEMIS && in.Results != nil {
		view.Results = in.Results
		view.Recommendations = in.Results.RecommendationTexts()
	}
	for _, o := range intake.Selected(in.Objectives) {
		view.Objectives = append(view.Objectives, o.Display())
	}
	if in.Survey != nil {
		view.Outline = outline(in.Survey)
	}

	html, err := execute("emis_report.html", view)
	if err != nil {
		return nil, err
	}
	return &Document{
		Kind:        KindEMIS,
		Title:       "EMIS Report",
		Filename:    EMISFilename,
		ContentType: ContentType,
		HTML:        html,
	}, nil
}

func outline(s *specs.Survey) []outlineView {
	sections := s.Outline()
	out := make([]outlineView, 0, len(sections))
	for _, sec := range sections {
		ov := outlineView{Number: sec.Number, Title: sec.Title}
		for _, t := range sec.Topics {
			topic, _ := specs.LookupTopic(t.ID)
			ov.Topics = append(ov.Topics, topicDetail(s, t, topic))
		}
		out = append(out, ov)
	}
	return out
}

// topicDetail fills in what the survey answers contribute to a topic.
func topicDetail(s *specs.Survey, t specs.OutlineTopic, topic specs.Topic) topicView {
	tv := topicView{Number: t.Number, Title: t.Title, Before: topic.Before, After: topic.After}
	switch t.ID {
	case specs.TopicUtilityData:
		for _, u := range s.SelectedUtilities() {
			tv.Utilities = append(tv.Utilities, u.Label())
		}
	case specs.TopicSubmeterData:
		tv.SubmeterRows = s.SubmeterRows
	case specs.TopicBASData:
		for _, d := range s.SelectedBASDataTypes() {
			tv.BASData = append(tv.BASData, d.Label())
		}
		for _, p := range s.SelectedBASIntegration() {
			tv.BASPoints = append(tv.BASPoints, p.Label())
		}
	case specs.TopicAdditionalMonitoring:
		tv.FreeText = s.AdditionalMonitoring
	case specs.TopicOtherDataSources:
		tv.FreeText = s.OtherDataSources
	case specs.TopicConsumptionTracking:
		tv.FreeText = s.EnergyConsumptionTracking
	case specs.TopicNotificationExport:
		tv.ShowExports = true
		for _, f := range s.SelectedExportFormats() {
			tv.Exports = append(tv.Exports, f.Label())
		}
	}
	return tv
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	return buf.String(), nil
}
