package errors

import (
	"net/http"
	"testing"

	"conduit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseErrorKeepsCauseOffTheWire(t *testing.T) {
	cause := errors.New("pq: connection reset by peer")

	appErr := NewDatabaseExecuteError(cause, "failed to create user")

	// The cause stays reachable for logging.
	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "connection reset by peer")

	// Client-facing fields never carry it.
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_ERROR", appErr.ErrorCode())
	assert.Equal(t, "database operation failed", appErr.Message())
	assert.Equal(t, "failed to create user", appErr.Details())
	assert.NotContains(t, appErr.Message(), "connection reset")
	assert.NotContains(t, appErr.Details(), "connection reset")
}

func TestDatabaseQueryErrorCode(t *testing.T) {
	cause := errors.New("read timeout")

	appErr := NewDatabaseQueryError(cause, "failed to check follow edge")

	require.Equal(t, "DATABASE_QUERY_ERROR", appErr.ErrorCode())
	assert.ErrorIs(t, appErr, cause)
}

func TestDatabaseErrorWithoutCause(t *testing.T) {
	appErr := NewDatabaseExecuteError(nil, "failed to commit")

	assert.Equal(t, "database operation failed", appErr.Error())
	assert.NoError(t, appErr.Unwrap())
}
