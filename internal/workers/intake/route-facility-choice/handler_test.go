package routefacilitychoice

import (
	"context"
	"errors"
	"testing"

	"emis-workers/internal/common/camunda/camundatest"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/emis/flow"
	"emis-workers/internal/emis/intake"
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

// ==========================
// Execute
// ==========================

func TestHandler_Execute(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name           string
		input          *Input
		wantErr        error
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "with EMIS goes to the assessment",
			input: &Input{FacilityType: "with-emis"},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, flow.StepFacilityAssessment, out.NextStep)
				assert.True(t, out.WithEMIS)
				assert.Equal(t, flow.Path(intake.WithEMIS), out.Path)
			},
		},
		{
			name:  "without EMIS goes to the objectives",
			input: &Input{FacilityType: "without-emis", Direction: DirectionNext},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, flow.StepTechnicalObjectives, out.NextStep)
				assert.False(t, out.WithEMIS)
			},
		},
		{
			name:  "objectives lead to the survey without EMIS",
			input: &Input{FacilityType: "without-emis", Step: flow.StepTechnicalObjectives},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, flow.StepEMISSpecs, out.NextStep)
			},
		},
		{
			name:  "back from the choice clears it",
			input: &Input{FacilityType: "with-emis", Step: flow.StepFacilityAssessment, Direction: DirectionBack},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, flow.StepFacilityChoice, out.NextStep)
				assert.Empty(t, out.FacilityType)
			},
		},
		{
			name:    "unknown choice",
			input:   &Input{FacilityType: "maybe"},
			wantErr: intake.ErrUnknownFacilityChoice,
		},
		{
			name:    "incomplete assessment",
			input:   &Input{FacilityType: "with-emis", Step: flow.StepFacilityAssessment},
			wantErr: flow.ErrIncompleteAssessment,
		},
		{
			name:    "unknown direction",
			input:   &Input{FacilityType: "with-emis", Direction: "sideways"},
			wantErr: flow.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
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
	h.Handle(client, camundatest.NewJob(1, TaskType, map[string]interface{}{"facilityType": "with-emis"}))
	var out Output
	require.True(t, client.CompletedVariables(&out))
	assert.Equal(t, flow.StepFacilityAssessment, out.NextStep)

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(2, TaskType, map[string]interface{}{"facilityType": "unsure"}))
	assert.Equal(t, "INVALID_INPUT", client.ThrownCode())

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(3, TaskType, map[string]interface{}{
		"facilityType": "without-emis",
		"step":         "emis-specs",
	}))
	assert.Equal(t, "INCOMPLETE_SPECIFICATIONS", client.ThrownCode())
}
