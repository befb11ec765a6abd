// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseConnectionFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseInsertFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeSearchIndexFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeNotificationSendFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeValidationFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeScoringFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeRetrievalUnavailable))

	assert.True(t, IsRetryableErrorCode(ErrCodeDatabaseConnectionFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeMalformedIndicator))
}

func TestStandardError_CarriesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseConnectionFailedError(cause)

	assert.Equal(t, ErrCodeDatabaseConnectionFailed, err.Code)
	assert.True(t, err.Retryable)
	assert.Equal(t, "connection refused", err.Details)
	assert.Contains(t, err.Error(), "DATABASE_CONNECTION_FAILED")
	assert.False(t, err.Timestamp.IsZero())
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "RETRIEVAL", GetErrorCategory(ErrCodeRetrievalUnavailable))
	assert.Equal(t, "RETRIEVAL", GetErrorCategory(ErrCodeMalformedIndicator))
	assert.Equal(t, "SCORING", GetErrorCategory(ErrCodeScoringFailed))
	assert.Equal(t, "INPUT", GetErrorCategory(ErrCodeValidationFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeSearchIndexFailed))
	assert.Equal(t, "OUTPUT", GetErrorCategory(ErrCodeNotificationSendFailed))
}
