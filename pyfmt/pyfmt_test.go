package pyfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codecraft/errors"
)

func TestExecPassthrough(t *testing.T) {
	// cat is a formatter that returns its input unchanged.
	f := New("cat")
	out, err := f.Format("x = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", out)
}

func TestExecQuotedArguments(t *testing.T) {
	f := New(`sed 's/old/new/'`)
	out, err := f.Format("old = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "new = 1\n", out)
}

func TestExecCommandFails(t *testing.T) {
	f := New("false")
	_, err := f.Format("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFormatterFailed))
}

func TestExecCommandMissing(t *testing.T) {
	f := New("definitely-not-a-real-formatter-xyz")
	_, err := f.Format("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFormatterFailed))
}

func TestExecEmptyCommand(t *testing.T) {
	f := New("")
	_, err := f.Format("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFormatterFailed))
}

func TestExecBadQuoting(t *testing.T) {
	f := New(`black "unterminated`)
	_, err := f.Format("x = 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFormatterFailed))
}

func TestBlackCommandLine(t *testing.T) {
	assert.Equal(t, "black -q --line-length 100 -", Black(100).Command)
	assert.Equal(t, "black -q --line-length 88 -", Black(0).Command)
	assert.Equal(t, "black -q --line-length 88 -", Black(-5).Command)
}
