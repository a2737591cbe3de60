package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleLevelDocstring(t *testing.T) {
	doc := New()
	doc.Docstring("Generated module.")
	doc.Line("x = 1")

	assert.Equal(t, "\"\"\"Generated module.\"\"\"\nx = 1", doc.Generate())
}

func TestDocstringInsideFunction(t *testing.T) {
	doc := New()
	fn := doc.Function("run")
	doc.Docstring("Run the job.")
	require.NoError(t, fn.Close())

	// The docstring is the body; no placeholder needed.
	assert.Equal(t, "def run():\n    \"\"\"Run the job.\"\"\"", doc.Generate())
	assert.True(t, doc.Validate())
}

func TestMultilineDocstring(t *testing.T) {
	doc := New()
	cls := doc.Class("Job")
	doc.Docstring("A job.\n\nRuns things.")
	require.NoError(t, cls.Close())

	want := strings.Join([]string{
		"class Job:",
		`    """`,
		"    A job.",
		"",
		"    Runs things.",
		`    """`,
	}, "\n")
	assert.Equal(t, want, doc.Generate())
}

func TestDocstringCountsAsFirstStatement(t *testing.T) {
	doc := New()
	fn := doc.Function("documented")
	doc.Docstring("Only docs.")
	require.NoError(t, fn.Close())
	assert.NotContains(t, doc.Generate(), "pass")
}

func TestDocstringInControlFlowRendersInline(t *testing.T) {
	doc := New()
	cond := doc.If("debug")
	doc.Docstring("debug branch marker")
	require.NoError(t, cond.Close())

	assert.Equal(t, "if debug:\n    \"\"\"debug branch marker\"\"\"", doc.Generate())
	assert.True(t, doc.Validate())
}
