// Package errors provides standardized error handling for the lead scoring
// pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Retrieval errors: always absorbed into default scores, never fatal.
	ErrCodeRetrievalUnavailable ErrorCode = "RETRIEVAL_UNAVAILABLE"
	ErrCodeMalformedIndicator   ErrorCode = "MALFORMED_INDICATOR"

	// Per-lead scoring failure, isolated by the orchestrator.
	ErrCodeScoringFailed ErrorCode = "SCORING_FAILED"

	// Ingestion / validation errors.
	ErrCodeIngestionFailed  ErrorCode = "INGESTION_FAILED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Export and infrastructure errors.
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeSearchIndexFailed        ErrorCode = "SEARCH_INDEX_FAILED"
	ErrCodeExportFailed             ErrorCode = "EXPORT_FAILED"
	ErrCodeNotificationSendFailed   ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
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

// NewRetrievalUnavailableError marks a website or listing fetch that failed
// or had no URL. Non-retryable within the core: the scorer degrades to the
// defined default instead.
func NewRetrievalUnavailableError(target, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRetrievalUnavailable,
		Message:   fmt.Sprintf("Retrieval unavailable for %s", target),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedIndicatorError marks retrieval data in an unexpected shape.
// Treated identically to RetrievalUnavailable by the scorers.
func NewMalformedIndicatorError(target string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedIndicator,
		Message:   fmt.Sprintf("Malformed indicator data from %s", target),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewScoringFailedError marks an unexpected internal scorer failure. The
// orchestrator catches it at the per-lead boundary and continues the batch.
func NewScoringFailedError(leadID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScoringFailed,
		Message:   "Lead scoring failed",
		Details:   fmt.Sprintf("leadId: %s, error: %s", leadID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIngestionFailedError creates a non-retryable file ingestion error.
func NewIngestionFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIngestionFailed,
		Message:   "Lead file ingestion failed",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable record validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Lead record validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchIndexFailedError creates a retryable search index error.
func NewSearchIndexFailedError(index string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchIndexFailed,
		Message:   "Search index operation failed",
		Details:   fmt.Sprintf("index: %s, error: %s", index, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewExportFailedError creates a non-retryable export error.
func NewExportFailedError(sink string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExportFailed,
		Message:   fmt.Sprintf("Export to %s failed", sink),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount returns the recommended retry count per error class.
// Retrieval and scoring errors are never retried by the core; retries for
// fetches, if any, belong to the retrieval collaborator.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeSearchIndexFailed,
		ErrCodeNotificationSendFailed:
		return 3
	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "RETRIEVAL") || strings.Contains(codeStr, "INDICATOR"):
		return "RETRIEVAL"
	case strings.Contains(codeStr, "SCORING"):
		return "SCORING"
	case strings.Contains(codeStr, "INGESTION") || strings.Contains(codeStr, "VALIDATION"):
		return "INPUT"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "SEARCH"):
		return "DATABASE"
	case strings.Contains(codeStr, "EXPORT") || strings.Contains(codeStr, "NOTIFICATION"):
		return "OUTPUT"
	default:
		return "OTHER"
	}
}
