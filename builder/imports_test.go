package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportDeduplication(t *testing.T) {
	doc := New()
	doc.Import("os")
	doc.Import("typing", "List")
	doc.Import("os")

	doc.Line("x = 1")
	output := doc.Generate()

	assert.Equal(t, 1, strings.Count(output, "import os"))
	assert.Equal(t, 1, strings.Count(output, "from typing import List"))
}

func TestImportIdempotenceManyCalls(t *testing.T) {
	doc := New()
	for i := 0; i < 10; i++ {
		doc.Import("json")
		doc.Import("typing", "List", "Dict")
	}

	lines := doc.Imports().Render()
	require.Equal(t, []string{
		"import json",
		"from typing import List, Dict",
	}, lines)
}

func TestImportSymbolMerging(t *testing.T) {
	doc := New()
	doc.Import("typing", "List")
	doc.Import("typing", "Dict", "List")
	doc.Import("typing", "Optional")

	lines := doc.Imports().Render()
	require.Equal(t, []string{"from typing import List, Dict, Optional"}, lines)
}

func TestImportWholeAndFromMerge(t *testing.T) {
	// A whole-module import layered over a from-import (or vice versa)
	// keeps both forms and drops neither.
	doc := New()
	doc.Import("os", "path")
	doc.Import("os")

	lines := doc.Imports().Render()
	require.Equal(t, []string{
		"import os",
		"from os import path",
	}, lines)
}

func TestImportRenderOrder(t *testing.T) {
	doc := New()
	doc.Import("zlib")
	doc.Import("typing", "Any")
	doc.Import("abc")
	doc.Import("collections", "OrderedDict")

	// Whole-module imports first in first-insertion order, then from-imports
	// in first-insertion order. No alphabetical sorting.
	require.Equal(t, []string{
		"import zlib",
		"import abc",
		"from typing import Any",
		"from collections import OrderedDict",
	}, doc.Imports().Render())
}

func TestImportInsideBlockDegradesToLine(t *testing.T) {
	doc := New()
	doc.Import("os")

	cond := doc.If("TYPE_CHECKING")
	doc.Import("typing", "Protocol")
	doc.Import("heavy_module")
	require.NoError(t, cond.Close())

	output := doc.Generate()
	assert.Contains(t, output, "if TYPE_CHECKING:\n    from typing import Protocol\n    import heavy_module")
	// The conditional imports stay out of the module-level block.
	require.Equal(t, []string{"import os"}, doc.Imports().Render())
}

func TestLocalImportNotDeduplicatedAgainstGlobal(t *testing.T) {
	doc := New()
	doc.Import("os")

	fn := doc.Function("lazy")
	doc.Import("os")
	require.NoError(t, fn.Close())

	output := doc.Generate()
	// Both the module-level and the local import render.
	assert.Equal(t, 2, strings.Count(output, "import os"))
}

func TestImportSeparatorLines(t *testing.T) {
	doc := New()
	doc.Import("os")
	doc.Line("x = 1")

	assert.Equal(t, "import os\n\n\nx = 1", doc.Generate())
}

func TestNoSeparatorWithoutImports(t *testing.T) {
	doc := New()
	doc.Line("x = 1")
	assert.Equal(t, "x = 1", doc.Generate())
}

func TestNoSeparatorWithoutBody(t *testing.T) {
	doc := New()
	doc.Import("os")
	assert.Equal(t, "import os", doc.Generate())
}
