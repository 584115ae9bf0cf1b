// Package scoring turns an answer set into section and overall results.
//
// CalculateResults is a pure function of its inputs. It never fails: an empty
// or partial answer set scores against the full maximum of every section.
package scoring

import (
	"math"

	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"
)

// SectionResult is the score for one section. ID and Title are both the
// section name.
type SectionResult struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TotalScore int    `json:"totalScore"`
	MaxScore   int    `json:"maxScore"`
	Percentage int    `json:"percentage"`
}

// QuestionRecommendation describes one answered question for the detailed
// findings of a report.
type QuestionRecommendation struct {
	QuestionID                string          `json:"questionId"`
	QuestionTitle             string          `json:"questionTitle"`
	Section                   catalog.Section `json:"section"`
	SelectedAnswer            string          `json:"selectedAnswer"`
	SelectedAnswerDescription string          `json:"selectedAnswerDescription,omitempty"`
	ConditionalNextStep       string          `json:"conditionalNextStep,omitempty"`
	Score                     int             `json:"score"`
	MaxScore                  int             `json:"maxScore"`
}

// Text is the plain-text projection of a recommendation. It is empty when the
// selected answer has no matching description.
func (r QuestionRecommendation) Text() string {
	if r.SelectedAnswerDescription == "" {
		return ""
	}
	return "This facility " + r.SelectedAnswerDescription
}

type Results struct {
	Sections          []SectionResult          `json:"sections"`
	TotalScore        int                      `json:"totalScore"`
	MaxTotalScore     int                      `json:"maxTotalScore"`
	OverallPercentage int                      `json:"overallPercentage"`
	Recommendations   []QuestionRecommendation `json:"recommendations"`
}

// Percentage returns round(score/maxScore*100), or 0 when maxScore is not positive.
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// CalculateResults scores answers against c. Sections are reported in the
// fixed catalog order and recommendations follow question order. Unanswered
// questions still count toward their section's maximum. A recorded score is
// bounded by its question's maximum so stale answers cannot push a section
// above 100%.
func CalculateResults(answers map[string]assessment.Answer, c *catalog.Catalog) *Results {
	res := &Results{
		Sections:        make([]SectionResult, 0, len(catalog.Sections())),
		Recommendations: make([]QuestionRecommendation, 0, len(answers)),
	}

	for _, section := range c.Sections() {
		sr := SectionResult{ID: string(section), Title: string(section)}

		for _, q := range c.QuestionsIn(section) {
			sr.MaxScore += q.MaxScore

			a, ok := answers[q.ID]
			if !ok {
				continue
			}
			score := boundScore(a.Score, q.MaxScore)
			sr.TotalScore += score
			res.Recommendations = append(res.Recommendations, recommend(q, a, score))
		}

		sr.Percentage = Percentage(sr.TotalScore, sr.MaxScore)
		res.TotalScore += sr.TotalScore
		res.MaxTotalScore += sr.MaxScore
		res.Sections = append(res.Sections, sr)
	}

	res.OverallPercentage = Percentage(res.TotalScore, res.MaxTotalScore)
	return res
}

func boundScore(score, maxScore int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func recommend(q catalog.Question, a assessment.Answer, score int) QuestionRecommendation {
	rec := QuestionRecommendation{
		QuestionID:          q.ID,
		QuestionTitle:       q.Title,
		Section:             q.Subsection,
		SelectedAnswer:      a.Value,
		ConditionalNextStep: q.NextSteps,
		Score:               score,
		MaxScore:            q.MaxScore,
	}
	if idx := assessment.MatchOption(q, a); idx != assessment.NoOption {
		rec.SelectedAnswerDescription = q.AnswerOptions[idx].Description
	}
	return rec
}

// RecommendationTexts is the flat "This facility ..." list, one entry per
// answer whose selected option carries a description.
func (r *Results) RecommendationTexts() []string {
	out := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		if text := rec.Text(); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func (r *Results) Section(section catalog.Section) (SectionResult, bool) {
	for _, s := range r.Sections {
		if s.ID == string(section) {
			return s, true
		}
	}
	return SectionResult{}, false
}

// RecommendationsFor returns the question recommendations of one section.
func (r *Results) RecommendationsFor(section catalog.Section) []QuestionRecommendation {
	var out []QuestionRecommendation
	for _, rec := range r.Recommendations {
		if rec.Section == section {
			out = append(out, rec)
		}
	}
	return out
}

// FromStore is a convenience for scoring a Store against its own catalog.
func FromStore(s *assessment.Store) *Results {
	return CalculateResults(s.Answers(), s.Catalog())
}
