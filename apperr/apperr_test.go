package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("bad input").StatusCode())
	assert.Equal(t, http.StatusBadRequest, Conflict("taken").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("missing").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(errors.New("boom")).StatusCode())
}

func TestStatusCodeMatchesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("missing"))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, "missing", Message(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
}

func TestPlainErrorsDefaultTo500(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Equal(t, "boom", Message(err))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)
	assert.Equal(t, "connection reset", err.Message)
	assert.ErrorIs(t, err, cause)
}
