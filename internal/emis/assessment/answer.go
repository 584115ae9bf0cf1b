// Package assessment records a user's answers to the facility questionnaire.
//
// A Store holds at most one Answer per question. Every capture mode (radio
// selection, ordinal slider, percentage entry and direct 0-5 score) produces
// the same Answer shape, and the most recent write for a question wins.
package assessment

import (
	"errors"
	"fmt"
	"math"

	"emis-workers/internal/emis/catalog"
)

var ErrInvalidAnswer = errors.New("INVALID_ANSWER")

// NoOption marks an answer that was not taken from the option list, such as a
// score derived from a percentage.
const NoOption = -1

// Answer is the recorded response to one question. Value is the display
// string; Score is the points awarded. OptionIndex is the position of the
// chosen option, or NoOption.
type Answer struct {
	QuestionID  string `json:"questionId"`
	Value       string `json:"value"`
	Score       int    `json:"score"`
	OptionIndex int    `json:"optionIndex"`
}

// PercentageToScore maps a 0-100 percentage onto the 0-5 scale. The input is
// clamped first; NaN counts as 0.
func PercentageToScore(percentage float64) int {
	switch {
	case math.IsNaN(percentage) || percentage < 0:
		percentage = 0
	case percentage > 100:
		percentage = 100
	}
	return int(math.Round(percentage / 100 * catalog.PercentageScale))
}

// ScoreToPercentage maps a 0-5 score back to a whole percentage.
func ScoreToPercentage(score int) int {
	return int(math.Round(float64(score) / catalog.PercentageScale * 100))
}

// PercentageValue is the display string for a percentage-based answer, e.g.
// "4/5 (80%)". The percent shown is recomputed from the score, so an entered
// 73% displays as 80%.
func PercentageValue(score int) string {
	return fmt.Sprintf("%d/%d (%d%%)", score, catalog.PercentageScale, ScoreToPercentage(score))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > catalog.PercentageScale {
		return catalog.PercentageScale
	}
	return score
}

func optionAnswer(q catalog.Question, index int) (Answer, error) {
	opt, ok := q.Option(index)
	if !ok {
		return Answer{}, fmt.Errorf("%w: question %s has no option %d", ErrInvalidAnswer, q.ID, index)
	}
	return Answer{QuestionID: q.ID, Value: opt.Text, Score: opt.Score, OptionIndex: index}, nil
}

func percentageAnswer(q catalog.Question, score int) Answer {
	return Answer{QuestionID: q.ID, Value: PercentageValue(score), Score: score, OptionIndex: NoOption}
}

// MatchOption finds the option an answer refers to. The stored index is used
// when it still points at an option with the same text; otherwise the option
// is looked up by text. Returns NoOption when neither matches.
func MatchOption(q catalog.Question, a Answer) int {
	if opt, ok := q.Option(a.OptionIndex); ok && opt.Text == a.Value {
		return a.OptionIndex
	}
	return q.OptionIndexByText(a.Value)
}
