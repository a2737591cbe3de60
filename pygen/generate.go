package pygen

import (
	"sort"
	"strings"

	"github.com/teranos/codecraft/builder"
	"github.com/teranos/codecraft/errors"
	"github.com/teranos/codecraft/logger"
)

// pythonKeywords are reserved words that need an underscore suffix when used
// as identifiers.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
	// Soft keywords (Python 3.10+)
	"match": true, "case": true, "type": true,
}

func toPythonIdent(s string) string {
	if pythonKeywords[s] {
		return s + "_"
	}
	return s
}

// Generate builds the model's Python module through a builder.Document and
// returns the rendered source. The output is run through the syntax checker
// before returning; a model that produces unparseable text is an error.
func Generate(m *Model, opts ...builder.Option) (string, error) {
	doc := builder.New(opts...)

	if len(m.Classes) > 0 {
		doc.Import("dataclasses", "dataclass")
	}
	if len(m.Enums) > 0 {
		doc.Import("enum", "Enum")
	}
	if needsAny(m) {
		doc.Import("typing", "Any")
	}
	for _, imp := range m.Imports {
		doc.Import(imp.Module, imp.Symbols...)
	}

	emitted := false
	if m.Package.Doc != "" {
		doc.Docstring(m.Package.Doc)
		emitted = true
	}

	for _, enum := range m.Enums {
		if emitted {
			doc.BlankLines(2)
		}
		if err := emitEnum(doc, enum); err != nil {
			return "", err
		}
		emitted = true
	}

	for _, class := range m.Classes {
		if emitted {
			doc.BlankLines(2)
		}
		if err := emitClass(doc, class); err != nil {
			return "", err
		}
		emitted = true
	}

	report := doc.ValidateDetailed()
	if !report.Valid {
		return "", errors.Newf("model %s produced invalid source: %s",
			m.Package.Name, strings.Join(report.Errors, "; "))
	}

	logger.Debugw("generated module",
		"package", m.Package.Name,
		"enums", len(m.Enums),
		"classes", len(m.Classes))
	return doc.Generate(), nil
}

func emitEnum(doc *builder.Document, enum EnumSpec) error {
	h := doc.Class(enum.Name, builder.ClassOpts{Bases: []string{"str", "Enum"}})

	if enum.Doc != "" {
		doc.Docstring(enum.Doc)
	}
	for _, value := range enum.Values {
		doc.Line(toConstName(value) + ` = "` + value + `"`)
	}
	return h.Close()
}

func emitClass(doc *builder.Document, class ClassSpec) error {
	decorators := class.Decorators
	if len(decorators) == 0 {
		decorators = []string{"@dataclass"}
	}
	h := doc.Class(class.Name, builder.ClassOpts{
		Bases:      class.Bases,
		Decorators: decorators,
	})

	if class.Doc != "" {
		doc.Docstring(class.Doc)
	}

	// Required fields must precede optional ones in a dataclass.
	fields := make([]FieldSpec, len(class.Fields))
	copy(fields, class.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return !fields[i].Optional && fields[j].Optional
	})

	for _, f := range fields {
		if f.Comment != "" {
			doc.Comment(f.Comment)
		}
		typeHint := f.Type
		defaultValue := f.Default
		if f.Optional {
			if !strings.Contains(typeHint, "None") {
				typeHint += " | None"
			}
			if defaultValue == "" {
				defaultValue = "None"
			}
		}
		if err := doc.Attr(toPythonIdent(f.Name), typeHint, defaultValue); err != nil {
			return err
		}
	}
	return h.Close()
}

func needsAny(m *Model) bool {
	for _, c := range m.Classes {
		for _, f := range c.Fields {
			if strings.Contains(f.Type, "Any") {
				return true
			}
		}
	}
	return false
}

// toConstName converts a value to SCREAMING_SNAKE_CASE for enum members.
func toConstName(s string) string {
	return strings.ToUpper(toSnakeCase(s))
}

// toSnakeCase converts PascalCase or camelCase to snake_case, keeping
// acronyms together (e.g. "HTTPSConnection" -> "https_connection").
func toSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i > 0 && r >= 'A' && r <= 'Z' {
			prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if !prevUpper || nextLower {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}
	out := strings.ToLower(result.String())
	out = strings.ReplaceAll(out, "-", "_")
	return strings.ReplaceAll(out, " ", "_")
}
