// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// enum generates the boilerplate for Go enums declared in YAML.
//
// To generate the code for a file, use
//
//	//go:generate go run github.com/bufbuild/docfmt/internal/enum kinds.yaml
//
// The YAML file holds a list of [Enum]s. The output is written next to it,
// with the .yaml extension replaced by .go, and is formatted with gofmt.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

// Enum is a single enum type.
type Enum struct {
	Name    string   `yaml:"name"` // The name of the new type.
	Type    string   `yaml:"type"` // The underlying type.
	Docs    string   `yaml:"docs"` // Documentation for the type.
	Methods []Method `yaml:"methods"`
	Values  []*Value `yaml:"values"` // Values in declaration order, starting at zero.
}

// Value is one of the values of an [Enum].
type Value struct {
	Name string `yaml:"name"`   // The Go name of the value.
	Str  string `yaml:"string"` // The string form of the value; defaults to Name.
	Docs string `yaml:"docs"`

	Index int `yaml:"-"`
	// Whether the docs are short enough to trail the value's declaration.
	Trailing bool `yaml:"-"`
}

// Text returns the string form of v.
func (v *Value) Text() string {
	if v.Str == "" {
		return v.Name
	}
	return v.Str
}

// Method is a method or function to generate for an [Enum].
type Method struct {
	Kind MethodKind `yaml:"kind"`
	Name string     `yaml:"name"` // Required for from-string.
	Docs string     `yaml:"docs"`
}

// MethodKind is the kind of code a [Method] generates.
type MethodKind string

const (
	// A String method returning each value's string form.
	MethodString MethodKind = "string"
	// A GoString method returning each value's Go name.
	MethodGoString MethodKind = "go-string"
	// A function that looks up a value by its string form, ignoring case.
	MethodFromString MethodKind = "from-string"
)

//go:embed enum.go.tmpl
var tmplText string

// prepare fills in defaults and checks that e is well-formed.
func (e *Enum) prepare() error {
	if e.Name == "" || e.Type == "" {
		return fmt.Errorf("enum %q needs a name and a type", e.Name)
	}

	strs := make(map[string]string)
	for i, v := range e.Values {
		v.Index = i
		key := strings.ToLower(v.Text())
		if prev, ok := strs[key]; ok {
			return fmt.Errorf("%s: values %s and %s have the same string %q", e.Name, prev, v.Name, v.Text())
		}
		strs[key] = v.Name

		next, ok := slicesx.Get(e.Values, i+1)
		v.Trailing = v.Docs != "" && !strings.Contains(v.Docs, "\n") && (!ok || next.Docs != "")
	}

	for i := range e.Methods {
		m := &e.Methods[i]
		switch m.Kind {
		case MethodString:
			m.Name = cmpOr(m.Name, "String")
			m.Docs = cmpOr(m.Docs, "String implements [fmt.Stringer].")
		case MethodGoString:
			m.Name = cmpOr(m.Name, "GoString")
			m.Docs = cmpOr(m.Docs, "GoString implements [fmt.GoStringer].")
		case MethodFromString:
			if m.Name == "" {
				return fmt.Errorf("%s: %s method needs a name", e.Name, m.Kind)
			}
			m.Docs = cmpOr(m.Docs, fmt.Sprintf(
				"%s looks up a [%s] by its string form, ignoring case.", m.Name, e.Name))
		default:
			return fmt.Errorf("%s: unknown method kind %q", e.Name, m.Kind)
		}
	}
	return nil
}

func cmpOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// makeDocs converts text into doc comments.
func makeDocs(text, indent string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// generate generates the code for the enums in the YAML file at config.
func generate(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	var enums []*Enum
	if err := yaml.Unmarshal(text, &enums); err != nil {
		return err
	}

	input := struct {
		Package, Config string
		Lookups         bool // Whether any from-string method is generated.
		Enums           []*Enum
	}{
		Package: os.Getenv("GOPACKAGE"),
		Config:  filepath.Base(config),
		Enums:   enums,
	}
	for _, e := range enums {
		if err := e.prepare(); err != nil {
			return err
		}
		for _, m := range e.Methods {
			input.Lookups = input.Lookups || m.Kind == MethodFromString
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"lower":    strings.ToLower,
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, input); err != nil {
		return err
	}
	source, err := format.Source(out.Bytes())
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", source, 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := generate(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
