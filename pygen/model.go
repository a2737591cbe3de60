// Package pygen generates Python modules from declarative models. A model
// describes a package of enums and dataclasses; Generate builds the module
// through a builder.Document and validates the result before returning it.
package pygen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/codecraft/errors"
)

// Model is the root of a declarative generation input.
type Model struct {
	Package PackageSpec  `toml:"package" yaml:"package"`
	Imports []ImportSpec `toml:"imports" yaml:"imports"`
	Enums   []EnumSpec   `toml:"enums" yaml:"enums"`
	Classes []ClassSpec  `toml:"classes" yaml:"classes"`
}

// PackageSpec names and documents the generated module.
type PackageSpec struct {
	Name string `toml:"name" yaml:"name"`
	Doc  string `toml:"doc" yaml:"doc"`
}

// ImportSpec is an extra import for the generated module. Without symbols it
// is a whole-module import.
type ImportSpec struct {
	Module  string   `toml:"module" yaml:"module"`
	Symbols []string `toml:"symbols" yaml:"symbols"`
}

// EnumSpec becomes a `class Name(str, Enum)` with one member per value,
// named in SCREAMING_SNAKE_CASE.
type EnumSpec struct {
	Name   string   `toml:"name" yaml:"name"`
	Doc    string   `toml:"doc" yaml:"doc"`
	Values []string `toml:"values" yaml:"values"`
}

// ClassSpec becomes a @dataclass definition.
type ClassSpec struct {
	Name       string      `toml:"name" yaml:"name"`
	Doc        string      `toml:"doc" yaml:"doc"`
	Bases      []string    `toml:"bases" yaml:"bases"`
	Decorators []string    `toml:"decorators" yaml:"decorators"`
	Fields     []FieldSpec `toml:"fields" yaml:"fields"`
}

// FieldSpec is one annotated dataclass field. Optional fields get a `| None`
// union and a None default, and render after required fields as the
// dataclass grammar demands.
type FieldSpec struct {
	Name     string `toml:"name" yaml:"name"`
	Type     string `toml:"type" yaml:"type"`
	Default  string `toml:"default" yaml:"default"`
	Optional bool   `toml:"optional" yaml:"optional"`
	Comment  string `toml:"comment" yaml:"comment"`
}

// Load reads a model from a TOML or YAML file, chosen by extension.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read model %s", path)
	}

	var m Model
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "parse TOML model %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "parse YAML model %s", path)
		}
	default:
		return nil, errors.Newf("unsupported model format %q (want .toml, .yaml or .yml)", ext)
	}

	if err := m.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid model %s", path)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if m.Package.Name == "" {
		return errors.New("package.name is required")
	}
	for _, e := range m.Enums {
		if e.Name == "" {
			return errors.New("enum without a name")
		}
		if len(e.Values) == 0 {
			return errors.Newf("enum %s has no values", e.Name)
		}
	}
	for _, c := range m.Classes {
		if c.Name == "" {
			return errors.New("class without a name")
		}
		for _, f := range c.Fields {
			if f.Name == "" || f.Type == "" {
				return errors.Newf("class %s has a field missing name or type", c.Name)
			}
		}
	}
	return nil
}
