package calculateresults

import (
	"context"
	"testing"

	"emis-workers/internal/common/camunda/camundatest"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"
	"emis-workers/internal/emis/scoring"
	"emis-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	schema, err := reg.InputSchema(TaskType)
	require.NoError(t, err)

	h, err := NewHandler(HandlerOptions{Logger: logger.NewTestLogger(t), Schema: schema})
	require.NoError(t, err)
	return h
}

// bestAnswers answers every question with its highest-scoring option.
func bestAnswers() map[string]assessment.Answer {
	out := make(map[string]assessment.Answer)
	for _, q := range catalog.Default().Questions() {
		best := 0
		for i, opt := range q.AnswerOptions {
			if opt.Score > q.AnswerOptions[best].Score {
				best = i
			}
		}
		opt := q.AnswerOptions[best]
		out[q.ID] = assessment.Answer{QuestionID: q.ID, Value: opt.Text, Score: opt.Score, OptionIndex: best}
	}
	return out
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name           string
		input          *Input
		wantCode       errors.ErrorCode
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "empty preview scores zero against the full maximum",
			input: &Input{},
			validateOutput: func(t *testing.T, out *Output) {
				res := out.AssessmentResults
				assert.Equal(t, 0, res.OverallPercentage)
				assert.Equal(t, catalog.Default().MaxScore(), res.MaxTotalScore)
				assert.Len(t, res.Sections, 7)
				assert.False(t, out.Complete)
				assert.Equal(t, "significant improvement needed", out.Summary)
				assert.Empty(t, out.RecommendationTexts)
			},
		},
		{
			name: "partial preview",
			input: &Input{Answers: map[string]assessment.Answer{
				"em1": {Value: "No EACs have been identified.", Score: 0, OptionIndex: 4},
				"em5": {Value: "4/5 (80%)", Score: 4, OptionIndex: assessment.NoOption},
			}},
			validateOutput: func(t *testing.T, out *Output) {
				res := out.AssessmentResults
				assert.Equal(t, 4, res.TotalScore)
				require.Len(t, res.Recommendations, 2)
				assert.Equal(t, "em1", res.Recommendations[0].QuestionID)
				assert.Equal(t, []string{"This facility has not identified any EACs."}, out.RecommendationTexts)
			},
		},
		{
			name:  "finalized complete assessment",
			input: &Input{Answers: bestAnswers(), Finalize: true},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Complete)
				assert.Equal(t, 100, out.CompletionPercent)
				assert.Equal(t, 100, out.AssessmentResults.OverallPercentage)
				assert.Equal(t, string(scoring.BandExcellent), out.Summary)
				for _, s := range out.AssessmentResults.Sections {
					assert.Equal(t, 100, s.Percentage, s.ID)
				}
			},
		},
		{
			name: "finalize rejects an incomplete assessment",
			input: &Input{
				Answers:  map[string]assessment.Answer{"em1": {Value: "x", Score: 3}},
				Finalize: true,
			},
			wantCode: errors.ErrCodeIncompleteAssessment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.FromError(err).Code)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

// ==========================
// Handle
// ==========================

func TestHandler_Handle(t *testing.T) {
	h := newTestHandler(t)

	client := camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(1, TaskType, map[string]interface{}{"answers": bestAnswers(), "finalize": true}))
	var out Output
	require.True(t, client.CompletedVariables(&out))
	assert.Equal(t, 100, out.AssessmentResults.OverallPercentage)

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(2, TaskType, map[string]interface{}{"finalize": true}))
	assert.Equal(t, "INCOMPLETE_ASSESSMENT", client.ThrownCode())

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(3, TaskType, map[string]interface{}{
		"answers": map[string]interface{}{"em1": map[string]interface{}{"questionId": "em1", "value": "x", "score": -2}},
	}))
	assert.Equal(t, "INVALID_INPUT", client.ThrownCode())
}
