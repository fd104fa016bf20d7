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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const colors = `
- name: Color
  type: int
  docs: Color is a color.
  methods:
  - kind: string
  - kind: go-string
  - kind: from-string
    name: lookupColor
  values:
  - name: Red
    docs: The first color.
    string: red
  - name: Green
    docs: The second color.
    string: GREEN
`

func TestGenerate(t *testing.T) {
	t.Setenv("GOPACKAGE", "colors")

	dir := t.TempDir()
	config := filepath.Join(dir, "colors.yaml")
	require.NoError(t, os.WriteFile(config, []byte(colors), 0o600))
	require.NoError(t, generate(config))

	out, err := os.ReadFile(filepath.Join(dir, "colors.go"))
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "package colors\n")
	assert.Contains(t, text, "\t\"strings\"\n")
	assert.Contains(t, text, "Red Color = iota // The first color.\n")
	assert.Contains(t, text, "func (v Color) GoString() string {")
	assert.Contains(t, text, "func lookupColor(s string) (Color, bool) {")
	assert.Contains(t, text, "\"green\": Green,")
	assert.Contains(t, text, "Green: \"GREEN\",")
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		enum Enum
		err  string
	}{
		{
			name: "unnamed",
			enum: Enum{Type: "int"},
			err:  `enum "" needs a name and a type`,
		},
		{
			name: "duplicate-string",
			enum: Enum{Name: "E", Type: "int", Values: []*Value{
				{Name: "A", Str: "x"},
				{Name: "B", Str: "X"},
			}},
			err: `E: values A and B have the same string "X"`,
		},
		{
			name: "lookup-without-name",
			enum: Enum{Name: "E", Type: "int", Methods: []Method{{Kind: MethodFromString}}},
			err:  "E: from-string method needs a name",
		},
		{
			name: "unknown-method",
			enum: Enum{Name: "E", Type: "int", Methods: []Method{{Kind: "parse"}}},
			err:  `E: unknown method kind "parse"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.EqualError(t, test.enum.prepare(), test.err)
		})
	}
}

func TestMakeDocs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, makeDocs("", ""))
	assert.Equal(t, "\t// a\n\t//\n\t// b\n", makeDocs("a\n\nb\n", "\t"))
}
