package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorPredicates(t *testing.T) {
	cause := errors.New("boom")

	notFound := NotFoundError("missing", cause)
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsConflictError(notFound))
	assert.ErrorIs(t, notFound, cause)
	assert.Equal(t, "missing: boom", notFound.Error())

	wrapped := fmt.Errorf("outer: %w", ConflictError("dup", nil))
	assert.True(t, IsConflictError(wrapped))
	assert.Equal(t, http.StatusConflict, GetAppError(wrapped).Code)

	assert.True(t, IsValidationError(ValidationErr("bad", nil)))
	assert.Equal(t, http.StatusBadRequest, GetAppError(BadRequestError("bad", nil)).Code)
	assert.False(t, IsAppError(cause))
	assert.Nil(t, WrapError(nil, "ctx"))
	assert.ErrorIs(t, WrapError(cause, "ctx"), cause)
}
