package pygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codecraft/builder"
	"github.com/teranos/codecraft/pycheck"
)

func testModel() *Model {
	return &Model{
		Package: PackageSpec{Name: "models", Doc: "Data models."},
		Enums: []EnumSpec{
			{Name: "Status", Doc: "Lifecycle state.", Values: []string{"active", "inactive", "onHold"}},
		},
		Classes: []ClassSpec{
			{
				Name: "User",
				Doc:  "A registered user.",
				Fields: []FieldSpec{
					{Name: "id", Type: "int"},
					{Name: "email", Type: "str", Optional: true},
					{Name: "name", Type: "str"},
					{Name: "status", Type: "Status", Default: "Status.ACTIVE"},
				},
			},
		},
	}
}

func TestGenerateFullModule(t *testing.T) {
	out, err := Generate(testModel())
	require.NoError(t, err)

	want := strings.Join([]string{
		"from dataclasses import dataclass",
		"from enum import Enum",
		"",
		"",
		`"""Data models."""`,
		"",
		"",
		"class Status(str, Enum):",
		`    """Lifecycle state."""`,
		`    ACTIVE = "active"`,
		`    INACTIVE = "inactive"`,
		`    ON_HOLD = "onHold"`,
		"",
		"",
		"@dataclass",
		"class User:",
		`    """A registered user."""`,
		"    id: int",
		"    name: str",
		"    status: Status = Status.ACTIVE",
		"    email: str | None = None",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestGeneratedModuleParses(t *testing.T) {
	out, err := Generate(testModel())
	require.NoError(t, err)

	res := pycheck.Check(out)
	assert.True(t, res.OK, "generated module does not parse: %s", res)
}

func TestOptionalFieldsRenderLast(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{
			Name: "Mixed",
			Fields: []FieldSpec{
				{Name: "a", Type: "str", Optional: true},
				{Name: "b", Type: "int"},
				{Name: "c", Type: "str", Optional: true},
				{Name: "d", Type: "int"},
			},
		}},
	}
	out, err := Generate(m)
	require.NoError(t, err)

	// Required fields keep their relative order, optional ones follow.
	bIdx := strings.Index(out, "b: int")
	dIdx := strings.Index(out, "d: int")
	aIdx := strings.Index(out, "a: str | None")
	cIdx := strings.Index(out, "c: str | None")
	assert.True(t, bIdx < dIdx && dIdx < aIdx && aIdx < cIdx,
		"unexpected field order:\n%s", out)
}

func TestKeywordFieldGetsSuffix(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{
			Name:   "Rule",
			Fields: []FieldSpec{{Name: "class", Type: "str"}},
		}},
	}
	out, err := Generate(m)
	require.NoError(t, err)
	assert.Contains(t, out, "class_: str")
}

func TestFieldCommentRenders(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{
			Name:   "Job",
			Fields: []FieldSpec{{Name: "retries", Type: "int", Comment: "bounded, no backoff"}},
		}},
	}
	out, err := Generate(m)
	require.NoError(t, err)
	assert.Contains(t, out, "    # bounded, no backoff\n    retries: int")
}

func TestCustomDecoratorsAndBases(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{
			Name:       "Frozen",
			Bases:      []string{"Base"},
			Decorators: []string{"@dataclass(frozen=True)"},
			Fields:     []FieldSpec{{Name: "x", Type: "int"}},
		}},
	}
	out, err := Generate(m)
	require.NoError(t, err)
	assert.Contains(t, out, "@dataclass(frozen=True)\nclass Frozen(Base):")
}

func TestEmptyClassGetsPlaceholder(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{Name: "Marker"}},
	}
	out, err := Generate(m)
	require.NoError(t, err)
	assert.Contains(t, out, "class Marker:\n    pass")
}

func TestAnyTypeAddsTypingImport(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{
			Name:   "Envelope",
			Fields: []FieldSpec{{Name: "payload", Type: "dict[str, Any]"}},
		}},
	}
	out, err := Generate(m)
	require.NoError(t, err)
	assert.Contains(t, out, "from typing import Any")
}

func TestExtraImports(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Imports: []ImportSpec{
			{Module: "datetime", Symbols: []string{"datetime"}},
			{Module: "uuid"},
		},
		Classes: []ClassSpec{{
			Name:   "Event",
			Fields: []FieldSpec{{Name: "at", Type: "datetime"}},
		}},
	}
	out, err := Generate(m)
	require.NoError(t, err)
	assert.Contains(t, out, "import uuid")
	assert.Contains(t, out, "from datetime import datetime")
}

func TestGenerateHonorsBuilderOptions(t *testing.T) {
	m := &Model{
		Package: PackageSpec{Name: "m"},
		Classes: []ClassSpec{{Name: "T", Fields: []FieldSpec{{Name: "x", Type: "int"}}}},
	}
	out, err := Generate(m, builder.WithIndent(2))
	require.NoError(t, err)
	assert.Contains(t, out, "class T:\n  x: int")
}

func TestToConstName(t *testing.T) {
	tests := map[string]string{
		"active":          "ACTIVE",
		"onHold":          "ON_HOLD",
		"HTTPSConnection": "HTTPS_CONNECTION",
		"with-dash":       "WITH_DASH",
		"two words":       "TWO_WORDS",
	}
	for in, want := range tests {
		assert.Equal(t, want, toConstName(in), "input %q", in)
	}
}
