package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"validate-organization",
		"route-facility-choice",
		"record-answer",
		"calculate-results",
		"validate-specifications",
		"generate-report",
		"deliver-report",
	}, reg.TaskTypes())

	a, ok := reg.Get("deliver-report")
	require.True(t, ok)
	assert.Equal(t, 3, a.Retries)
	assert.Contains(t, a.ErrorCodes, "REPORT_DELIVERY_FAILED")

	_, ok = reg.Get("crm-user-create")
	assert.False(t, ok)
}

func TestInputSchema(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	tests := []struct {
		taskType  string
		document  string
		wantValid bool
	}{
		{"record-answer", `{"questionId":"em1","mode":"option","index":0}`, true},
		{"record-answer", `{"questionId":"em1","mode":"knob"}`, false},
		{"record-answer", `{"mode":"option"}`, false},
		{"calculate-results", `{}`, true},
		{"calculate-results", `{"answers":{"em1":{"questionId":"em1","value":"x","score":-1}}}`, false},
		{"generate-report", `{"reportKind":"results","reportDate":"2026-10-16"}`, true},
		{"generate-report", `{"reportKind":"results","reportDate":"16/10/2026"}`, false},
		{"generate-report", `{"reportKind":"pdf"}`, false},
		{"deliver-report", `{"recipients":[],"report":{"filename":"a.doc","html":"<p>"}}`, false},
		{"route-facility-choice", `{"facilityType":"with-emis","step":"facility-choice"}`, true},
		{"route-facility-choice", `{"facilityType":"with-emis","step":"checkout"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.taskType+" "+tt.document, func(t *testing.T) {
			s, err := reg.InputSchema(tt.taskType)
			require.NoError(t, err)
			require.NotNil(t, s)

			res, err := s.ValidateJSON(tt.document)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid, "errors: %v", res.GetErrorMessages())
		})
	}

	s, err := reg.InputSchema("unknown-task")
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "valid",
			content: `{"version":"1","activities":[{"id":"a","taskType":"record-answer","timeout":"5s"}]}`,
		},
		{
			name:    "bad task type",
			content: `{"activities":[{"id":"a","taskType":"crm.user.create"}]}`,
			wantErr: "kebab-case",
		},
		{
			name:    "duplicate",
			content: `{"activities":[{"id":"a","taskType":"record-answer"},{"id":"b","taskType":"record-answer"}]}`,
			wantErr: "duplicate task type",
		},
		{
			name:    "bad timeout",
			content: `{"activities":[{"id":"a","taskType":"record-answer","timeout":"soon"}]}`,
			wantErr: "invalid timeout",
		},
		{
			name:    "bad schema",
			content: `{"activities":[{"id":"a","taskType":"record-answer","inputSchema":{"type":7}}]}`,
			wantErr: "invalid json schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			reg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, reg.Activities, 1)
		})
	}

	reg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, reg.Activities, 7)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
