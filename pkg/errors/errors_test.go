package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/pkg/errors"
)

func TestAppError_MessageAndUnwrap(t *testing.T) {
	t.Parallel()

	err := errors.NewNotFoundError("order 7 not found")

	assert.Equal(t, "order 7 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	require.True(t, stderrors.Is(err, errors.ErrNotFound))
	assert.True(t, errors.IsNotFound(err))
}

func TestAppError_FallsBackToSentinelMessage(t *testing.T) {
	t.Parallel()

	err := errors.NewAppError(errors.ErrTimeout, "", http.StatusGatewayTimeout, true)
	assert.Equal(t, errors.ErrTimeout.Error(), err.Error())
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", errors.NewTimeoutError("timed out"), true},
		{"temporary", errors.NewTemporaryError("unavailable"), true},
		{"internal", errors.NewInternalError("boom"), true},
		{"not found", errors.NewNotFoundError("missing"), false},
		{"invalid input", errors.NewInvalidInputError("bad page"), false},
		{"bare timeout sentinel", errors.ErrTimeout, true},
		{"bare unavailable sentinel", errors.ErrServiceUnavailable, true},
		{"unrelated", stderrors.New("whatever"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errors.IsRetryable(tt.err), tt.name)
	}
}
