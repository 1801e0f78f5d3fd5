package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := NotFound("word not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrUnauthorized))

	wrapped := fmt.Errorf("get word: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestLookupFailed(t *testing.T) {
	cause := errors.New("dictionary returned 404 Not Found")
	err := LookupFailed(cause)

	assert.True(t, errors.Is(err, ErrLookupFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "404 Not Found")
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
