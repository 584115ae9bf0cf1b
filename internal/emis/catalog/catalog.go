package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrInvalidCatalog = errors.New("CATALOG_INVALID")

// Catalog is an immutable, ordered question set. All read methods return
// copies so callers cannot alter the catalog they were handed.
type Catalog struct {
	questions []Question
	byID      map[string]int
	bySection map[Section][]int
}

// New validates questions and builds a catalog from them. Question order is
// preserved within each section.
func New(questions []Question) (*Catalog, error) {
	if problems := validate(questions); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}

	c := &Catalog{
		questions: make([]Question, 0, len(questions)),
		byID:      make(map[string]int, len(questions)),
		bySection: make(map[Section][]int, len(sectionOrder)),
	}
	for _, q := range questions {
		idx := len(c.questions)
		c.questions = append(c.questions, q.clone())
		c.byID[q.ID] = idx
		c.bySection[q.Subsection] = append(c.bySection[q.Subsection], idx)
	}
	return c, nil
}

func validate(questions []Question) []string {
	var problems []string
	seen := make(map[string]bool, len(questions))

	for i, q := range questions {
		ref := q.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
			problems = append(problems, fmt.Sprintf("question %s: empty id", ref))
		} else if seen[q.ID] {
			problems = append(problems, fmt.Sprintf("question %s: duplicate id", ref))
		}
		seen[q.ID] = true

		if !q.Subsection.Valid() {
			problems = append(problems, fmt.Sprintf("question %s: unknown subsection %q", ref, q.Subsection))
		}
		if len(q.AnswerOptions) == 0 {
			problems = append(problems, fmt.Sprintf("question %s: no answer options", ref))
			continue
		}

		texts := make(map[string]bool, len(q.AnswerOptions))
		for _, opt := range q.AnswerOptions {
			if texts[opt.Text] {
				problems = append(problems, fmt.Sprintf("question %s: duplicate option text %q", ref, opt.Text))
			}
			texts[opt.Text] = true
			if opt.Score < 0 {
				problems = append(problems, fmt.Sprintf("question %s: negative score on option %q", ref, opt.Text))
			}
		}

		switch {
		case q.IsPercentageBased && !q.IsSlider:
			problems = append(problems, fmt.Sprintf("question %s: percentage-based question must be a slider", ref))
		case q.IsPercentageBased && q.MaxScore != PercentageScale:
			problems = append(problems, fmt.Sprintf("question %s: maxScore %d, want %d for percentage-based question", ref, q.MaxScore, PercentageScale))
		case !q.IsPercentageBased && q.MaxScore != q.HighestOptionScore():
			problems = append(problems, fmt.Sprintf("question %s: maxScore %d does not match highest option score %d", ref, q.MaxScore, q.HighestOptionScore()))
		}
	}
	return problems
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in facility assessment catalog. It panics if the
// built-in data fails validation, which is a programming error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = New(facilityQuestions)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultCatalog
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

// Sections returns the fixed section order. Sections with no questions are
// included; they score as zero.
func (c *Catalog) Sections() []Section {
	return Sections()
}

func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.clone()
	}
	return out
}

func (c *Catalog) Question(id string) (Question, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[idx].clone(), true
}

// QuestionsIn returns the questions of one section in catalog order.
func (c *Catalog) QuestionsIn(s Section) []Question {
	idxs := c.bySection[s]
	out := make([]Question, len(idxs))
	for i, idx := range idxs {
		out[i] = c.questions[idx].clone()
	}
	return out
}

func (c *Catalog) SectionMaxScore(s Section) int {
	total := 0
	for _, idx := range c.bySection[s] {
		total += c.questions[idx].MaxScore
	}
	return total
}

func (c *Catalog) MaxScore() int {
	total := 0
	for _, q := range c.questions {
		total += q.MaxScore
	}
	return total
}
