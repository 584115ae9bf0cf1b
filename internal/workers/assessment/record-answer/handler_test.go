package recordanswer

import (
	"context"
	"testing"

	"emis-workers/internal/common/camunda/camundatest"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"
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

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

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
			name:  "radio option",
			input: &Input{AssessmentID: "a-1", QuestionID: "em1", Mode: ModeOption, Index: intPtr(1)},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Applied)
				assert.Equal(t, "a-1", out.AssessmentID)
				a := out.Answers["em1"]
				assert.Equal(t, 7, a.Score)
				assert.Equal(t, 1, a.OptionIndex)
				assert.False(t, out.Complete)
				assert.Len(t, out.SectionProgress, len(catalog.Sections()))
			},
		},
		{
			name:  "slider index",
			input: &Input{QuestionID: "dc3", Mode: ModeSlider, Index: intPtr(4)},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 4, out.Answers["dc3"].Score)
				assert.NotEmpty(t, out.AssessmentID)
			},
		},
		{
			name:  "percentage is rounded onto the five point scale",
			input: &Input{QuestionID: "em5", Mode: ModePercentage, Percentage: floatPtr(73)},
			validateOutput: func(t *testing.T, out *Output) {
				a := out.Answers["em5"]
				assert.Equal(t, 4, a.Score)
				assert.Equal(t, "4/5 (80%)", a.Value)
				assert.Equal(t, assessment.NoOption, a.OptionIndex)
			},
		},
		{
			name: "slider score overwrites an earlier percentage",
			input: &Input{
				Answers:    map[string]assessment.Answer{"em5": {Value: "4/5 (80%)", Score: 4, OptionIndex: assessment.NoOption}},
				QuestionID: "em5",
				Mode:       ModeSliderScore,
				Score:      intPtr(9),
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 5, out.Answers["em5"].Score)
				assert.Equal(t, "em5", out.Answers["em5"].QuestionID)
			},
		},
		{
			name:  "unknown question is ignored",
			input: &Input{QuestionID: "zz9", Mode: ModeOption, Index: intPtr(0)},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.Applied)
				assert.Empty(t, out.Answers)
				assert.Equal(t, 0, out.CompletionPercent)
			},
		},
		{
			name:     "option out of range",
			input:    &Input{QuestionID: "em1", Mode: ModeOption, Index: intPtr(12)},
			wantCode: errors.ErrCodeInvalidAnswer,
		},
		{
			name:     "percentage on a radio question",
			input:    &Input{QuestionID: "em1", Mode: ModePercentage, Percentage: floatPtr(50)},
			wantCode: errors.ErrCodeInvalidAnswer,
		},
		{
			name:     "slider mode on a radio question",
			input:    &Input{QuestionID: "em1", Mode: ModeSlider, Index: intPtr(0)},
			wantCode: errors.ErrCodeInvalidAnswer,
		},
		{
			name:     "mode without its value",
			input:    &Input{QuestionID: "em1", Mode: ModeOption},
			wantCode: errors.ErrCodeInvalidInput,
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

func TestHandler_Execute_CompletesAssessment(t *testing.T) {
	h := newTestHandler(t)
	cat := catalog.Default()

	answers := make(map[string]assessment.Answer)
	questions := cat.Questions()
	for _, q := range questions[:len(questions)-1] {
		answers[q.ID] = assessment.Answer{Value: q.AnswerOptions[0].Text, Score: q.AnswerOptions[0].Score}
	}
	last := questions[len(questions)-1]

	out, err := h.Execute(context.Background(), &Input{
		Answers:    answers,
		QuestionID: last.ID,
		Mode:       ModeOption,
		Index:      intPtr(0),
	})
	require.NoError(t, err)
	assert.True(t, out.Complete)
	assert.Equal(t, 100, out.CompletionPercent)
	for _, p := range out.SectionProgress {
		assert.True(t, p.Complete, p.Section)
	}
}

// ==========================
// Handle
// ==========================

func TestHandler_Handle(t *testing.T) {
	h := newTestHandler(t)

	client := camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(1, TaskType, map[string]interface{}{
		"assessmentId": "a-7",
		"questionId":   "rv1",
		"mode":         "option",
		"index":        0,
	}))
	var out Output
	require.True(t, client.CompletedVariables(&out))
	assert.Equal(t, "a-7", out.AssessmentID)
	assert.Contains(t, out.Answers, "rv1")

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(2, TaskType, map[string]interface{}{
		"questionId": "rv1",
		"mode":       "guess",
	}))
	assert.Equal(t, "INVALID_INPUT", client.ThrownCode())

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(3, TaskType, map[string]interface{}{
		"questionId": "rv1",
		"mode":       "option",
		"index":      40,
	}))
	assert.Equal(t, "INVALID_ANSWER", client.ThrownCode())
}
