package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapfPreservesSentinel(t *testing.T) {
	wrapped := Wrapf(ErrFrameMismatch, "closing %q", "if x > 0")

	assert.True(t, Is(wrapped, ErrFrameMismatch))
	assert.Contains(t, wrapped.Error(), `closing "if x > 0"`)
}

func TestIsUsageError(t *testing.T) {
	assert.True(t, IsUsageError(ErrFrameMismatch))
	assert.True(t, IsUsageError(ErrFrameClosed))
	assert.True(t, IsUsageError(ErrOutsideClass))
	assert.True(t, IsUsageError(Wrap(ErrFrameClosed, "context")))

	assert.False(t, IsUsageError(ErrFormatterFailed))
	assert.False(t, IsUsageError(New("unrelated")))
	assert.False(t, IsUsageError(nil))
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrFrameMismatch, "close inner blocks first")
	assert.True(t, Is(err, ErrFrameMismatch))
}
