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

// Package unicodex contains helpers for measuring rendered text.
package unicodex

import (
	"io"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/docfmt/internal/ext/stringsx"
)

// DefaultTabstop is the tabstop width used when none is specified.
const DefaultTabstop = 4

// Advance returns the column reached by rendering text at the given column.
//
// Tabs advance to the next multiple of tabstop; everything else is measured
// in grapheme clusters, with wide characters counting for two columns. text
// must not contain newlines.
func Advance(column, tabstop int, text string) int {
	if stringsx.IsASCIIPrint(text) {
		return column + len(text)
	}

	if tabstop <= 0 {
		tabstop = DefaultTabstop
	}

	// We can't just use StringWidth, because that doesn't respect tabstops
	// correctly.
	first := true
	for next := range stringsx.Split(text, '\t') {
		if !first {
			column += tabstop - (column % tabstop)
		}
		first = false
		column += uniseg.StringWidth(next)
	}
	return column
}

// Width is used for calculating the width of a line of text in terminal
// columns as it is written.
type Width struct {
	// The column at which the text is being rendered. This is necessary for
	// tabstop calculations.
	Column int

	// The width of a tabstop in columns. If set to zero, [DefaultTabstop] is
	// used.
	Tabstop int

	// If non-nil, text is written through to this writer verbatim.
	Out io.StringWriter
}

// WriteString writes the given text, advancing w.Column and writing to w.Out.
//
// text must not contain newlines; use [Width.Newline] to start a new line.
func (w *Width) WriteString(text string) (int, error) {
	w.Column = Advance(w.Column, w.Tabstop, text)
	if w.Out == nil {
		return len(text), nil
	}
	return w.Out.WriteString(text)
}

// Newline writes the given line ending and resets the column to zero.
func (w *Width) Newline(ending string) error {
	w.Column = 0
	if w.Out == nil {
		return nil
	}
	_, err := w.Out.WriteString(ending)
	return err
}
