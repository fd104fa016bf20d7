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

import (
	"strings"

	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/internal/ext/unicodex"
)

// indentation is a persistent stack of indentation units; nil is no
// indentation.
//
// Each unit is either one indentation level, printed according to
// [Options.IndentStyle], or an alignment of a fixed number of columns, which
// is always printed as spaces. Frames share the units of their parents, so
// pushing and popping frames never copies indentation.
type indentation struct {
	prev  *indentation
	align int // Zero for a level.
}

// indent returns i with one more level.
func (i *indentation) indent() *indentation {
	return &indentation{prev: i}
}

// alignBy returns i aligned by a further n columns.
func (i *indentation) alignBy(n int) *indentation {
	if n <= 0 {
		return i
	}
	return &indentation{prev: i, align: n}
}

// dedent returns i with its innermost unit removed, or with every unit
// removed for [document.DedentRoot].
func (i *indentation) dedent(mode document.DedentMode) *indentation {
	if i == nil || mode == document.DedentRoot {
		return nil
	}
	return i.prev
}

// text returns the text of i when printed, outermost unit first.
func (i *indentation) text(options *Options) string {
	if i == nil {
		return ""
	}
	var out strings.Builder
	i.render(&out, options)
	return out.String()
}

// width returns the number of columns i occupies when printed.
func (i *indentation) width(options *Options) int {
	if i == nil {
		return 0
	}
	return unicodex.Advance(0, options.IndentWidth, i.text(options))
}

func (i *indentation) render(out *strings.Builder, options *Options) {
	if i == nil {
		return
	}
	i.prev.render(out, options)

	switch {
	case i.align > 0:
		for range i.align {
			out.WriteByte(' ')
		}
	case options.IndentStyle == IndentTabs:
		out.WriteByte('\t')
	default:
		for range options.IndentWidth {
			out.WriteByte(' ')
		}
	}
}
