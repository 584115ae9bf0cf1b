package assessment

import (
	"fmt"
	"math"

	"emis-workers/internal/emis/catalog"
)

// Store maps question ids to answers for one assessment session. It is owned
// by a single session and is not safe for concurrent writers.
type Store struct {
	catalog *catalog.Catalog
	answers map[string]Answer
}

func NewStore(c *catalog.Catalog) *Store {
	return &Store{catalog: c, answers: make(map[string]Answer)}
}

// FromAnswers rebuilds a store from a previously exported answer map. Map keys
// are authoritative; an empty QuestionID is filled from its key. Answers for
// questions the catalog does not know are kept so they round-trip, but they
// never score.
func FromAnswers(c *catalog.Catalog, answers map[string]Answer) *Store {
	s := NewStore(c)
	for id, a := range answers {
		a.QuestionID = id
		s.answers[id] = a
	}
	return s
}

func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// SelectOption records the option at index for a radio question. An unknown
// question id is ignored and reported as not applied.
func (s *Store) SelectOption(questionID string, index int) (bool, error) {
	q, ok := s.catalog.Question(questionID)
	if !ok {
		return false, nil
	}
	a, err := optionAnswer(q, index)
	if err != nil {
		return false, err
	}
	s.answers[q.ID] = a
	return true, nil
}

// SetSliderIndex records the option at the slider position of an ordinal
// slider question.
func (s *Store) SetSliderIndex(questionID string, index int) (bool, error) {
	q, ok := s.catalog.Question(questionID)
	if !ok {
		return false, nil
	}
	if !q.IsSlider {
		return false, fmt.Errorf("%w: question %s is not a slider", ErrInvalidAnswer, q.ID)
	}
	a, err := optionAnswer(q, index)
	if err != nil {
		return false, err
	}
	s.answers[q.ID] = a
	return true, nil
}

// SetPercentage records a percentage-based answer from a 0-100 entry.
// Out-of-range entries are clamped.
func (s *Store) SetPercentage(questionID string, percentage float64) (bool, error) {
	q, ok := s.catalog.Question(questionID)
	if !ok {
		return false, nil
	}
	if !q.IsPercentageBased {
		return false, fmt.Errorf("%w: question %s is not percentage-based", ErrInvalidAnswer, q.ID)
	}
	s.answers[q.ID] = percentageAnswer(q, PercentageToScore(percentage))
	return true, nil
}

// SetSliderScore records a percentage-based answer from the direct 0-5 score
// control. It overwrites any answer written by SetPercentage and vice versa.
func (s *Store) SetSliderScore(questionID string, score int) (bool, error) {
	q, ok := s.catalog.Question(questionID)
	if !ok {
		return false, nil
	}
	if !q.IsPercentageBased {
		return false, fmt.Errorf("%w: question %s is not percentage-based", ErrInvalidAnswer, q.ID)
	}
	s.answers[q.ID] = percentageAnswer(q, clampScore(score))
	return true, nil
}

// Clear removes the answer for a question, if any.
func (s *Store) Clear(questionID string) {
	delete(s.answers, questionID)
}

func (s *Store) Answer(questionID string) (Answer, bool) {
	a, ok := s.answers[questionID]
	return a, ok
}

func (s *Store) Len() int {
	return len(s.answers)
}

// Answers returns a snapshot of the store.
func (s *Store) Answers() map[string]Answer {
	out := make(map[string]Answer, len(s.answers))
	for id, a := range s.answers {
		out[id] = a
	}
	return out
}

// SliderPosition recovers the slider index to display for a question.
func (s *Store) SliderPosition(questionID string) (int, bool) {
	a, ok := s.answers[questionID]
	if !ok {
		return 0, false
	}
	q, ok := s.catalog.Question(questionID)
	if !ok {
		return 0, false
	}
	if q.IsPercentageBased && a.OptionIndex == NoOption {
		return a.Score, true
	}
	idx := MatchOption(q, a)
	if idx == NoOption {
		return 0, false
	}
	return idx, true
}

// PercentageInput returns the percentage to display in the entry field of a
// percentage-based question, derived from the recorded score.
func (s *Store) PercentageInput(questionID string) (int, bool) {
	a, ok := s.answers[questionID]
	if !ok {
		return 0, false
	}
	q, ok := s.catalog.Question(questionID)
	if !ok || !q.IsPercentageBased {
		return 0, false
	}
	return ScoreToPercentage(a.Score), true
}

// SectionProgress summarises how many questions in a section are answered.
type SectionProgress struct {
	Section  catalog.Section `json:"section"`
	Answered int             `json:"answered"`
	Total    int             `json:"total"`
	Complete bool            `json:"complete"`
}

func (s *Store) sectionCounts(section catalog.Section) (answered, total int) {
	for _, q := range s.catalog.QuestionsIn(section) {
		total++
		if _, ok := s.answers[q.ID]; ok {
			answered++
		}
	}
	return answered, total
}

// SectionComplete reports whether every question in section has an answer.
func (s *Store) SectionComplete(section catalog.Section) bool {
	answered, total := s.sectionCounts(section)
	return answered == total
}

// Complete reports whether all seven sections are complete.
func (s *Store) Complete() bool {
	for _, section := range s.catalog.Sections() {
		if !s.SectionComplete(section) {
			return false
		}
	}
	return true
}

func (s *Store) SectionProgress() []SectionProgress {
	sections := s.catalog.Sections()
	out := make([]SectionProgress, 0, len(sections))
	for _, section := range sections {
		answered, total := s.sectionCounts(section)
		out = append(out, SectionProgress{
			Section:  section,
			Answered: answered,
			Total:    total,
			Complete: answered == total,
		})
	}
	return out
}

// CompletionPercent is the share of catalog questions answered, rounded to a
// whole percent. An empty catalog counts as 0.
func (s *Store) CompletionPercent() int {
	total := s.catalog.Len()
	if total == 0 {
		return 0
	}
	answered := 0
	for _, q := range s.catalog.Questions() {
		if _, ok := s.answers[q.ID]; ok {
			answered++
		}
	}
	return int(math.Round(float64(answered) / float64(total) * 100))
}
