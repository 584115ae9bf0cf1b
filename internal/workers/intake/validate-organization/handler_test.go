package validateorganization

import (
	"context"
	"testing"

	"emis-workers/internal/common/camunda/camundatest"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/emis/intake"
	"emis-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	schema, err := reg.InputSchema(TaskType)
	require.NoError(t, err)

	h, err := NewHandler(HandlerOptions{
		Logger: logger.NewTestLogger(t),
		Schema: schema,
	})
	require.NoError(t, err)
	return h
}

func validUserInfo() intake.UserInfo {
	return intake.UserInfo{
		AppID:         " APP-1042 ",
		OrgName:       "New Afton Mine",
		OrgType:       "21 - Mining, quarrying, and oil and gas extraction",
		SiteAddress:   "Kamloops, BC",
		AttendeeNames: []string{"Ana Lee", " ", "Sam Ortiz "},
	}
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name           string
		input          *Input
		wantField      string
		wantDetails    string
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "valid organization is normalized",
			input: &Input{UserInfo: validUserInfo()},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Valid)
				assert.Equal(t, "APP-1042", out.UserInfo.AppID)
				assert.Equal(t, []string{"Ana Lee", "Sam Ortiz"}, out.UserInfo.AttendeeNames)
				assert.Equal(t, "Ana Lee, Sam Ortiz", out.Attendees)
			},
		},
		{
			name: "unknown facility type falls back to the first",
			input: func() *Input {
				u := validUserInfo()
				u.OrgType = "99 - Retail"
				return &Input{UserInfo: u}
			}(),
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, intake.FacilityTypes[0], out.UserInfo.OrgType)
			},
		},
		{
			name: "missing application id is reported first",
			input: func() *Input {
				u := validUserInfo()
				u.AppID = "  "
				u.OrgName = ""
				return &Input{UserInfo: u}
			}(),
			wantField:   "appId",
			wantDetails: "Please enter an Application ID.",
		},
		{
			name: "missing site address",
			input: func() *Input {
				u := validUserInfo()
				u.SiteAddress = ""
				return &Input{UserInfo: u}
			}(),
			wantField:   "siteAddress",
			wantDetails: "Please fill in all required fields.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			if tt.wantField != "" {
				require.Error(t, err)
				stdErr := errors.FromError(err)
				assert.Equal(t, errors.ErrCodeMissingRequiredField, stdErr.Code)
				assert.Equal(t, tt.wantDetails, stdErr.Details)
				assert.Equal(t, tt.wantField, stdErr.Metadata["field"])
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
	h.Handle(client, camundatest.NewJob(1, TaskType, map[string]interface{}{"userInfo": validUserInfo()}))

	var out Output
	require.True(t, client.CompletedVariables(&out))
	assert.True(t, out.Valid)
	assert.Equal(t, "New Afton Mine", out.UserInfo.OrgName)

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(2, TaskType, map[string]interface{}{"userInfo": map[string]interface{}{"orgName": "x"}}))
	assert.Equal(t, "MISSING_REQUIRED_FIELD", client.ThrownCode())

	client = camundatest.NewJobClient()
	h.Handle(client, camundatest.NewJob(3, TaskType, map[string]interface{}{}))
	assert.Equal(t, "INVALID_INPUT", client.ThrownCode())
}

// ==========================
// Configuration
// ==========================

func TestCreateConfigFromAppConfig(t *testing.T) {
	appCfg := &config.Config{Workers: map[string]config.WorkerConfig{
		TaskType: {Enabled: false, MaxJobsActive: 2, Timeout: 5000},
	}}

	cfg := createConfigFromAppConfig(appCfg, nil)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 2, cfg.MaxJobsActive)
	assert.Equal(t, "5s", cfg.Timeout.String())

	assert.Equal(t, DefaultConfig(), createConfigFromAppConfig(nil, nil))

	_, err := NewHandler(HandlerOptions{CustomConfig: &Config{MaxJobsActive: 1}})
	assert.EqualError(t, err, "invalid configuration for validate-organization: timeout must be positive")
}
