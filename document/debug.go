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

package document

import (
	"fmt"
	"strings"
)

// String implements [fmt.Stringer].
//
// The result is a pseudo-HTML rendering of the document's structure, intended
// for debugging.
func (d *Document) String() string {
	var out strings.Builder
	dump(&out, d.Elements(), 0)
	return out.String()
}

func dump(out *strings.Builder, elements []Element, depth int) {
	indent := func() {
		for range depth {
			out.WriteString("  ")
		}
	}

	for _, e := range elements {
		if e.IsEndTag() {
			depth--
		}
		indent()

		switch e.kind {
		case KindInterned:
			fmt.Fprintf(out, "<interned ref=%p>\n", e.ref)
			dump(out, e.ref.elements, depth+1)
			indent()
			out.WriteString("</interned>\n")
		case KindBestFitting:
			out.WriteString("<best-fitting>\n")
			for i, variant := range e.best.variants {
				indent()
				fmt.Fprintf(out, "  <variant n=%d>\n", i)
				dump(out, variant, depth+2)
				indent()
				out.WriteString("  </variant>\n")
			}
			indent()
			out.WriteString("</best-fitting>\n")
		default:
			out.WriteString(e.String())
			out.WriteString("\n")
		}

		if e.IsStartTag() {
			depth++
		}
	}
}
