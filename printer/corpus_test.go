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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/docfmt/internal/corpora"
	"github.com/bufbuild/docfmt/notation"
	"github.com/bufbuild/docfmt/printer"
)

// corpusCase is a single file in testdata.
type corpusCase struct {
	Width  int    `yaml:"width"`
	Indent int    `yaml:"indent"`
	Style  string `yaml:"style"`
	Ending string `yaml:"ending"`

	// The document to print, in notation syntax.
	Doc string `yaml:"doc"`
}

func (c *corpusCase) options() (printer.Options, error) {
	options := printer.Options{LineWidth: c.Width, IndentWidth: c.Indent}
	if c.Style != "" {
		style, err := printer.ParseIndentStyle(c.Style)
		if err != nil {
			return options, err
		}
		options.IndentStyle = style
	}
	if c.Ending != "" {
		ending, err := printer.ParseLineEnding(c.Ending)
		if err != nil {
			return options, err
		}
		options.LineEnding = ending
	}
	return options, nil
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "DOCFMT_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "txt"},
			{Extension: "err"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var test corpusCase
			require.NoError(t, yaml.Unmarshal([]byte(text), &test))

			out, err := run(path, &test)
			if err != nil {
				return []string{"", err.Error() + "\n"}
			}
			if out == "" {
				return []string{"", ""}
			}
			// Golden files end in a newline.
			return []string{out + "\n", ""}
		},
	}
	corpus.Run(t)
}

func run(path string, test *corpusCase) (string, error) {
	options, err := test.options()
	if err != nil {
		return "", err
	}
	p, err := printer.New(options)
	if err != nil {
		return "", err
	}
	doc, err := notation.Parse(path, test.Doc)
	if err != nil {
		return "", err
	}
	return p.Print(doc)
}
