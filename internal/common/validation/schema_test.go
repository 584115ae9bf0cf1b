package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"questionId", "mode"},
		"properties": map[string]interface{}{
			"questionId": map[string]interface{}{"type": "string", "minLength": 1},
			"mode": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{"option", "slider", "percentage", "sliderScore"},
			},
			"value": map[string]interface{}{"type": "number", "minimum": 0},
		},
	}
}

func TestSchema_ValidateJSON(t *testing.T) {
	s, err := Compile(answerSchema())
	require.NoError(t, err)

	tests := []struct {
		name      string
		document  string
		wantValid bool
		field     string
	}{
		{
			name:      "valid",
			document:  `{"questionId":"em1","mode":"option","value":2}`,
			wantValid: true,
		},
		{
			name:     "missing mode",
			document: `{"questionId":"em1"}`,
			field:    "mode",
		},
		{
			name:     "unknown mode",
			document: `{"questionId":"em1","mode":"dial"}`,
			field:    "mode",
		},
		{
			name:     "negative value",
			document: `{"questionId":"em1","mode":"percentage","value":-3}`,
			field:    "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ValidateJSON(tt.document)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, res.GetErrorsForField(tt.field), "errors: %v", res.GetErrorMessages())
			}
		})
	}
}

func TestSchema_MalformedDocument(t *testing.T) {
	s, err := Compile(answerSchema())
	require.NoError(t, err)

	_, err = s.ValidateJSON(`{"questionId":`)
	assert.Error(t, err)
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile(map[string]interface{}{"type": 12})
	assert.Error(t, err)
}

func TestValidateInput(t *testing.T) {
	res, err := ValidateInput(map[string]interface{}{"questionId": "em1", "mode": "slider"}, answerSchema())
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.GetErrorMessages())
}

func TestValidateTaskTypeNaming(t *testing.T) {
	assert.NoError(t, ValidateTaskTypeNaming("calculate-results"))
	assert.NoError(t, ValidateTaskTypeNaming("validate-organization"))
	assert.Error(t, ValidateTaskTypeNaming("report"))
	assert.Error(t, ValidateTaskTypeNaming("crm.user.create"))
	assert.Error(t, ValidateTaskTypeNaming("Record-Answer"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("energy.manager@example.org"))
	assert.False(t, ValidateEmail("energy.manager"))
	assert.False(t, ValidateEmail("a@b"))
}

func TestGetSchemaFromJSON(t *testing.T) {
	s, err := GetSchemaFromJSON(`{"type":"object","required":["answers"]}`)
	require.NoError(t, err)
	assert.Equal(t, "object", s["type"])
}
