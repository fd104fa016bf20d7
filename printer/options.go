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

package printer

//go:generate go run github.com/bufbuild/docfmt/internal/enum enums.yaml

import "fmt"

const (
	// DefaultLineWidth is the line width used when none is specified.
	DefaultLineWidth = 80
	// DefaultIndentWidth is the indent width used when none is specified.
	DefaultIndentWidth = 2

	// MaxLineWidth is the largest line width a printer accepts.
	MaxLineWidth = 320
	// MaxIndentWidth is the largest indent width a printer accepts.
	MaxIndentWidth = 24
)

// Options specifies configuration for a [Printer].
//
// The zero value is valid, and is equivalent to the result of
// [Options.WithDefaults].
type Options struct {
	// The maximum number of columns a line may occupy before a group that
	// contains it is expanded. Zero means [DefaultLineWidth]; negative widths
	// are rejected by [Options.Validate].
	LineWidth int

	// The number of columns per indentation level. Also used as the tabstop
	// width when measuring tabs. Defaults to [DefaultIndentWidth].
	IndentWidth int

	// Whether indentation levels are printed as spaces or tabs.
	IndentStyle IndentStyle

	// The sequence printed for each line break.
	LineEnding LineEnding
}

// WithDefaults replaces any unset (read: zero value) fields of an Options
// which specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.LineWidth == 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	return o
}

// Validate checks that every field of o is in range, after applying
// defaults.
//
// Returns a [*ConfigurationError] describing the first invalid field.
func (o Options) Validate() error {
	o = o.WithDefaults()
	switch {
	case o.LineWidth < 1 || o.LineWidth > MaxLineWidth:
		return &ConfigurationError{
			Field:  "LineWidth",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxLineWidth, o.LineWidth),
		}
	case o.IndentWidth < 1 || o.IndentWidth > MaxIndentWidth:
		return &ConfigurationError{
			Field:  "IndentWidth",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxIndentWidth, o.IndentWidth),
		}
	case o.IndentStyle > IndentTabs:
		return &ConfigurationError{Field: "IndentStyle", Reason: fmt.Sprintf("unknown style %v", o.IndentStyle)}
	case o.LineEnding > CR:
		return &ConfigurationError{Field: "LineEnding", Reason: fmt.Sprintf("unknown line ending %v", o.LineEnding)}
	}
	return nil
}

// Newline returns the characters printed for a line break.
func (l LineEnding) Newline() string {
	switch l {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseIndentStyle parses the string form of an [IndentStyle], as returned by
// [IndentStyle.String].
func ParseIndentStyle(s string) (IndentStyle, error) {
	if style, ok := lookupIndentStyle(s); ok {
		return style, nil
	}
	return 0, &ConfigurationError{Field: "IndentStyle", Reason: fmt.Sprintf("unknown style %q", s)}
}

// ParseLineEnding parses the string form of a [LineEnding], as returned by
// [LineEnding.String].
func ParseLineEnding(s string) (LineEnding, error) {
	if ending, ok := lookupLineEnding(s); ok {
		return ending, nil
	}
	return 0, &ConfigurationError{Field: "LineEnding", Reason: fmt.Sprintf("unknown line ending %q", s)}
}

// ConfigurationError is returned when a [Printer] is given options that are
// out of range.
type ConfigurationError struct {
	Field  string // The name of the offending field of [Options].
	Reason string
}

// Error implements [error].
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("printer: invalid %s: %s", e.Field, e.Reason)
}
