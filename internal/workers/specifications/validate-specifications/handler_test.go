package validatespecifications

import (
	"context"
	"testing"

	"emis-workers/internal/common/camunda/camundatest"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/emis/specs"
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

func allTabs() []interface{} {
	return []interface{}{"tab1", "tab2", "tab3", "tab4", "tab5", "tab6", "tab7", "tab8"}
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
			name:  "empty input is a fresh survey",
			input: &Input{},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.Complete)
				assert.Equal(t, 13, out.CompletionPercent)
				assert.Empty(t, out.Outline)
				assert.Len(t, out.EMISSpecs.SubmeterRows, 1)
			},
		},
		{
			name: "flags are decoded and numbered",
			input: &Input{EMISFlags: map[string]interface{}{
				"include_1_1":             true,
				"include_3_1":             true,
				"utility_NaturalGas_tab1": true,
				"visitedTabs":             allTabs(),
			}},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Complete)
				assert.Equal(t, 100, out.CompletionPercent)
				require.Len(t, out.Outline, 2)
				assert.Equal(t, "Data Integration", out.Outline[0].Title)
				assert.Equal(t, "1.1", out.Outline[0].Topics[0].Number)
				assert.Equal(t, 2, out.Outline[1].Number)
				assert.Equal(t, specs.TopicConsumptionTracking, out.Outline[1].Topics[0].ID)
			},
		},
		{
			name: "structured survey is normalized",
			input: &Input{EMISSpecs: &specs.Survey{
				Included:    map[specs.TopicID]bool{specs.TopicNotificationExport: true},
				VisitedTabs: []specs.Tab{1, 6},
			}},
			validateOutput: func(t *testing.T, out *Output) {
				assert.NotNil(t, out.EMISSpecs.Utilities)
				assert.Len(t, out.EMISSpecs.SubmeterRows, 1)
				assert.Equal(t, 25, out.CompletionPercent)
				require.Len(t, out.Outline, 1)
				assert.Equal(t, "1.1", out.Outline[0].Topics[0].Number)
			},
		},
		{
			name:     "unknown flag",
			input:    &Input{EMISFlags: map[string]interface{}{"include_9_9": true}},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name: "unknown topic in a structured survey",
			input: &Input{EMISSpecs: &specs.Survey{
				Included: map[specs.TopicID]bool{"42.1": true},
			}},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name: "incomplete survey when completion is required",
			input: &Input{
				EMISFlags:       map[string]interface{}{"visitedTabs": []interface{}{"tab1", "tab2"}},
				RequireComplete: true,
			},
			wantCode: errors.ErrCodeIncompleteSpecifications,
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
	h.Handle(client, camundatest.NewJob(1, TaskType, map[string]interface{}{
		"emisFlags":       map[string]interface{}{"include_1_2": true, "visitedTabs": allTabs()},
		"requireComplete": true,
	}))
	var out Output
	require.True(t, client.CompletedVariables(&out))
	assert.True(t, out.Complete)
	assert.True(t, out.EMISSpecs.IsIncluded(specs.TopicSubmeterData))

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(2, TaskType, map[string]interface{}{"requireComplete": true}))
	assert.Equal(t, "INCOMPLETE_SPECIFICATIONS", client.ThrownCode())
}
