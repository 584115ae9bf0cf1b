package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"
)

// ==========================
// Test Helper Functions
// ==========================

func bestAnswers(t *testing.T, c *catalog.Catalog) map[string]assessment.Answer {
	t.Helper()
	s := assessment.NewStore(c)
	for _, q := range c.Questions() {
		best := 0
		for i, opt := range q.AnswerOptions {
			if opt.Score > q.AnswerOptions[best].Score {
				best = i
			}
		}
		_, err := s.SelectOption(q.ID, best)
		require.NoError(t, err)
	}
	return s.Answers()
}

func randomAnswers(t *testing.T, c *catalog.Catalog, r *rand.Rand) map[string]assessment.Answer {
	t.Helper()
	s := assessment.NewStore(c)
	for _, q := range c.Questions() {
		if r.Intn(3) == 0 {
			continue
		}
		if q.IsPercentageBased && r.Intn(2) == 0 {
			_, err := s.SetPercentage(q.ID, float64(r.Intn(121)-10))
			require.NoError(t, err)
			continue
		}
		_, err := s.SelectOption(q.ID, r.Intn(len(q.AnswerOptions)))
		require.NoError(t, err)
	}
	return s.Answers()
}

// ==========================
// Scenario Tests
// ==========================

func TestCalculateResults_SingleAnswerPartialCredit(t *testing.T) {
	c := catalog.Default()
	s := assessment.NewStore(c)
	_, err := s.SelectOption("em1", 0)
	require.NoError(t, err)

	res := CalculateResults(s.Answers(), c)

	em, ok := res.Section(catalog.SectionEnergyMeters)
	require.True(t, ok)
	assert.Equal(t, 10, em.TotalScore)
	assert.Equal(t, 40, em.MaxScore)
	assert.Equal(t, 25, em.Percentage)
	assert.Equal(t, "Energy Meters", em.ID)
	assert.Equal(t, "Energy Meters", em.Title)

	assert.Equal(t, 10, res.TotalScore)
	assert.Equal(t, 210, res.MaxTotalScore)
	assert.Equal(t, 5, res.OverallPercentage)

	require.Len(t, res.Recommendations, 1)
	rec := res.Recommendations[0]
	assert.Equal(t, "Key Energy Account Centres (EACs) Identified", rec.QuestionTitle)
	assert.Equal(t, 10, rec.Score)
	assert.Equal(t,
		[]string{"This facility has EACs delineated at an appropriate scale and scope for the site's operations or processes."},
		res.RecommendationTexts())
}

func TestCalculateResults_EmptyStore(t *testing.T) {
	res := CalculateResults(map[string]assessment.Answer{}, catalog.Default())

	require.Len(t, res.Sections, 7)
	for _, s := range res.Sections {
		assert.Equal(t, 0, s.TotalScore)
		assert.Equal(t, 0, s.Percentage)
		assert.Positive(t, s.MaxScore)
	}
	assert.Equal(t, 0, res.TotalScore)
	assert.Equal(t, 0, res.OverallPercentage)
	assert.NotNil(t, res.Recommendations)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.RecommendationTexts())

	nilRes := CalculateResults(nil, catalog.Default())
	assert.Equal(t, res, nilRes)
}

func TestCalculateResults_PercentageAnswer(t *testing.T) {
	c := catalog.Default()
	s := assessment.NewStore(c)
	_, err := s.SetPercentage("em5", 73)
	require.NoError(t, err)

	res := CalculateResults(s.Answers(), c)

	em, _ := res.Section(catalog.SectionEnergyMeters)
	assert.Equal(t, 4, em.TotalScore)
	assert.Equal(t, 10, em.Percentage)

	require.Len(t, res.Recommendations, 1)
	rec := res.Recommendations[0]
	assert.Equal(t, "4/5 (80%)", rec.SelectedAnswer)
	assert.Empty(t, rec.SelectedAnswerDescription)
	assert.NotEmpty(t, rec.ConditionalNextStep)
	assert.Empty(t, res.RecommendationTexts())
}

func TestCalculateResults_AllBestAnswers(t *testing.T) {
	c := catalog.Default()
	res := CalculateResults(bestAnswers(t, c), c)

	assert.Equal(t, 100, res.OverallPercentage)
	assert.Equal(t, res.MaxTotalScore, res.TotalScore)
	for _, s := range res.Sections {
		assert.Equal(t, 100, s.Percentage, s.Title)
	}
	assert.Len(t, res.Recommendations, c.Len())
	assert.Len(t, res.RecommendationTexts(), c.Len())
}

func TestCalculateResults_StaleAnswerYieldsNoText(t *testing.T) {
	c := catalog.Default()
	answers := map[string]assessment.Answer{
		"em3":   {QuestionID: "em3", Value: "an option that was renamed", Score: 7, OptionIndex: 1},
		"ghost": {QuestionID: "ghost", Value: "x", Score: 3},
	}

	res := CalculateResults(answers, c)

	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "em3", res.Recommendations[0].QuestionID)
	assert.Empty(t, res.Recommendations[0].SelectedAnswerDescription)
	assert.Empty(t, res.RecommendationTexts())
	assert.Equal(t, 7, res.TotalScore)
}

func TestCalculateResults_BoundsScores(t *testing.T) {
	c := catalog.Default()
	answers := map[string]assessment.Answer{
		"em4": {QuestionID: "em4", Value: "x", Score: 50},
		"em1": {QuestionID: "em1", Value: "y", Score: -4},
	}

	res := CalculateResults(answers, c)
	em, _ := res.Section(catalog.SectionEnergyMeters)
	assert.Equal(t, 5, em.TotalScore)
	assert.Equal(t, 13, em.Percentage)
}

func TestCalculateResults_MiniCatalog(t *testing.T) {
	c, err := catalog.New([]catalog.Question{
		{
			ID: "a", Title: "A", Subsection: catalog.SectionDataAnalysis, MaxScore: 3,
			AnswerOptions: []catalog.AnswerOption{{Text: "yes", Score: 3, Description: "does a."}, {Text: "no", Score: 0}},
		},
	})
	require.NoError(t, err)

	res := CalculateResults(map[string]assessment.Answer{"a": {Value: "yes", Score: 3}}, c)

	require.Len(t, res.Sections, 7)
	for _, s := range res.Sections {
		if s.ID == string(catalog.SectionDataAnalysis) {
			assert.Equal(t, 100, s.Percentage)
			continue
		}
		assert.Equal(t, 0, s.MaxScore)
		assert.Equal(t, 0, s.Percentage)
	}
	assert.Equal(t, 100, res.OverallPercentage)
	assert.Equal(t, []string{"This facility does a."}, res.RecommendationTexts())
}

// ==========================
// Property Tests
// ==========================

func TestCalculateResults_Properties(t *testing.T) {
	c := catalog.Default()
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		answers := randomAnswers(t, c, r)
		res := CalculateResults(answers, c)

		sumTotal, sumMax := 0, 0
		for _, s := range res.Sections {
			assert.GreaterOrEqual(t, s.Percentage, 0)
			assert.LessOrEqual(t, s.Percentage, 100)
			assert.Equal(t, Percentage(s.TotalScore, s.MaxScore), s.Percentage)
			sumTotal += s.TotalScore
			sumMax += s.MaxScore
		}
		assert.Equal(t, sumTotal, res.TotalScore)
		assert.Equal(t, sumMax, res.MaxTotalScore)
		assert.Equal(t, Percentage(res.TotalScore, res.MaxTotalScore), res.OverallPercentage)

		assert.Equal(t, res, CalculateResults(answers, c), "results must be deterministic")
	}
}

func TestCalculateResults_AddingAnswerNeverDecreasesScore(t *testing.T) {
	c := catalog.Default()
	s := assessment.NewStore(c)
	prev := CalculateResults(s.Answers(), c)

	for _, q := range c.Questions() {
		_, err := s.SelectOption(q.ID, len(q.AnswerOptions)-1)
		require.NoError(t, err)

		next := CalculateResults(s.Answers(), c)
		assert.GreaterOrEqual(t, next.TotalScore, prev.TotalScore)
		for i := range next.Sections {
			assert.GreaterOrEqual(t, next.Sections[i].TotalScore, prev.Sections[i].TotalScore)
		}
		prev = next
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 0, Percentage(0, 10))
	assert.Equal(t, 25, Percentage(10, 40))
	assert.Equal(t, 3, Percentage(1, 40))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 13, Percentage(1, 8))
}

func TestResults_RecommendationsFor(t *testing.T) {
	c := catalog.Default()
	res := CalculateResults(bestAnswers(t, c), c)

	assert.Len(t, res.RecommendationsFor(catalog.SectionRelevantVariables), 2)
	assert.Len(t, res.RecommendationsFor(catalog.SectionPerformanceReports), 8)

	_, ok := res.Section("Lighting")
	assert.False(t, ok)
}

func TestFromStore(t *testing.T) {
	s := assessment.NewStore(catalog.Default())
	_, _ = s.SelectOption("rv1", 0)

	res := FromStore(s)
	assert.Equal(t, 10, res.TotalScore)
}
