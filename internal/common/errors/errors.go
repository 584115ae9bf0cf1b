// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMissingRequiredField     ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrCodeIncompleteAssessment     ErrorCode = "INCOMPLETE_ASSESSMENT"
	ErrCodeIncompleteSpecifications ErrorCode = "INCOMPLETE_SPECIFICATIONS"
	ErrCodeInvalidAnswer            ErrorCode = "INVALID_ANSWER"
	ErrCodeCatalogInvalid           ErrorCode = "CATALOG_INVALID"
	ErrCodeInvalidInput             ErrorCode = "INVALID_INPUT"
	ErrCodeParseError               ErrorCode = "PARSE_ERROR"

	ErrCodeReportRenderFailed   ErrorCode = "REPORT_RENDER_FAILED"
	ErrCodeReportDeliveryFailed ErrorCode = "REPORT_DELIVERY_FAILED"
	ErrCodeCacheUnavailable     ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the internal error structure.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Type
// ==========================

// BPMNError is what gets thrown to Camunda.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables converts the error into process variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func NewMissingRequiredFieldError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingRequiredField,
		Message:   "Required organization information is missing",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewIncompleteAssessmentError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIncompleteAssessment,
		Message:   "Facility assessment is not complete",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewIncompleteSpecificationsError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIncompleteSpecifications,
		Message:   "EMIS specifications are not complete",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidAnswerError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAnswer,
		Message:   "Answer does not match the question",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewCatalogInvalidError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Question catalog failed validation",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError is used for job variables that fail the input schema.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Failed to parse job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewReportRenderFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportRenderFailed,
		Message:   "Report rendering failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportDeliveryFailedError wraps a mail transport failure. Retryable.
func NewReportDeliveryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportDeliveryFailed,
		Message:   "Report delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Report cache unavailable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. They are
// identical; the map doubles as the set of known codes.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeMissingRequiredField:     "MISSING_REQUIRED_FIELD",
	ErrCodeIncompleteAssessment:     "INCOMPLETE_ASSESSMENT",
	ErrCodeIncompleteSpecifications: "INCOMPLETE_SPECIFICATIONS",
	ErrCodeInvalidAnswer:            "INVALID_ANSWER",
	ErrCodeCatalogInvalid:           "CATALOG_INVALID",
	ErrCodeInvalidInput:             "INVALID_INPUT",
	ErrCodeParseError:               "PARSE_ERROR",
	ErrCodeReportRenderFailed:       "REPORT_RENDER_FAILED",
	ErrCodeReportDeliveryFailed:     "REPORT_DELIVERY_FAILED",
	ErrCodeCacheUnavailable:         "CACHE_UNAVAILABLE",
	ErrCodeInternal:                 "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeReportDeliveryFailed:
		return 3

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "REPORT"):
		return "REPORT"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "INCOMPLETE"):
		return "WORKFLOW"
	case strings.Contains(codeStr, "CATALOG"):
		return "CONFIGURATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "MISSING") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

// FromError classifies any error into a StandardError. A StandardError
// anywhere in the chain is returned as is. Otherwise the chain is searched for
// a sentinel whose text is a known code, which is how the domain packages
// signal; the outermost message becomes the details. Everything else is an
// INTERNAL_ERROR.
func FromError(err error) *StandardError {
	if err == nil {
		return nil
	}

	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}

	for e := err; e != nil; e = stderrors.Unwrap(e) {
		code := ErrorCode(e.Error())
		if _, known := BPMNErrorMapping[code]; !known {
			continue
		}
		return newForCode(code, err.Error())
	}

	return NewInternalError(err)
}

func newForCode(code ErrorCode, details string) *StandardError {
	switch code {
	case ErrCodeMissingRequiredField:
		return NewMissingRequiredFieldError(details)
	case ErrCodeIncompleteAssessment:
		return NewIncompleteAssessmentError(details)
	case ErrCodeIncompleteSpecifications:
		return NewIncompleteSpecificationsError(details)
	case ErrCodeInvalidAnswer:
		return NewInvalidAnswerError(details)
	case ErrCodeInvalidInput:
		return NewInvalidInputError(details)
	case ErrCodeCatalogInvalid:
		return NewCatalogInvalidError(stderrors.New(details))
	case ErrCodeParseError:
		return NewParseError(stderrors.New(details))
	case ErrCodeReportRenderFailed:
		return NewReportRenderFailedError(stderrors.New(details))
	case ErrCodeReportDeliveryFailed:
		return NewReportDeliveryFailedError(stderrors.New(details))
	case ErrCodeCacheUnavailable:
		return NewCacheUnavailableError(stderrors.New(details))
	default:
		return NewInternalError(stderrors.New(details))
	}
}
