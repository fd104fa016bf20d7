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
	"slices"

	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/internal/ext/stringsx"
	"github.com/bufbuild/docfmt/internal/ext/unicodex"
)

// verdict is the outcome of measuring a single element.
type verdict byte

const (
	undecided verdict = iota
	fitsYes
	fitsNo
)

// measurement describes content to check with [state.fits].
type measurement struct {
	// The frame the content is measured in.
	frame frame

	// If owned is unset, the content is the rest of the region whose start tag
	// was just printed, and frame is popped by its end tag. Otherwise, elements
	// are measured first and frame is popped once they are exhausted. elements
	// may be empty.
	elements []document.Element
	owned    bool

	// If set, only elements are measured, rather than everything up to the end
	// of the line they end on.
	scoped bool

	// If set, any line break fails the measurement.
	mustBeFlat bool

	// The ID of the group being measured, if any. It is treated as flat while
	// measuring its contents.
	group document.GroupID
}

// measurer simulates printing to find out whether content fits within the
// line width. It works on copies of the printer's frames and cursors, so that
// measuring has no effect on the printer.
type measurer struct {
	options *Options
	printed map[document.GroupID]document.PrintMode
	decided map[document.GroupID]document.PrintMode

	stack stack
	queue queue

	column        int
	indent        int // Width of the indentation printed before the next text.
	indentPending bool
	space         bool
	suffix        bool // Whether any line suffix is pending.
	mustBeFlat    bool
}

// fits reports whether the given content can be printed without exceeding
// the line width.
//
// Unless the measurement is scoped, everything that follows the content up
// to the next line break is measured too, in the modes it will be printed
// in, since that is what will share a line with it.
func (s *state) fits(m measurement) bool {
	r := measurer{
		options:    s.options,
		printed:    s.groups,
		column:     s.line.Column,
		space:      s.space,
		suffix:     s.suffixes.Len() > 0,
		mustBeFlat: m.mustBeFlat,
	}
	if s.indentPending {
		r.indent = s.indent.width(s.options)
		r.indentPending = true
	}
	if !m.group.IsZero() {
		r.decided = map[document.GroupID]document.PrintMode{m.group: document.Flat}
	}

	if !m.scoped {
		r.stack = slices.Clone(s.stack)
		r.queue = slices.Clone(s.queue)
	}
	if m.owned || m.scoped {
		r.queue.pushOwned(&r.stack, m.frame.kind, m.frame.args, m.elements)
	} else {
		r.stack = append(r.stack, m.frame)
	}

	return r.run()
}

func (m *measurer) run() bool {
	for {
		e, ok, err := m.queue.next(&m.stack)
		if err != nil {
			return false
		}
		if !ok {
			// Nothing left to print, so nothing can overflow.
			return true
		}

		switch m.element(e) {
		case fitsYes:
			return true
		case fitsNo:
			return false
		}
	}
}

func (m *measurer) element(e document.Element) verdict {
	args := m.stack.top().args
	switch e.Kind() {
	case document.KindSpace:
		if m.column > 0 {
			m.space = true
		}

	case document.KindHardSpace:
		return m.text(" ", args)

	case document.KindText, document.KindDynamicText, document.KindLocatedText:
		return m.text(e.Text(), args)

	case document.KindLine:
		if args.mode == document.Flat {
			switch e.LineMode() {
			case document.Soft:
				return undecided
			case document.SoftOrSpace:
				if m.column > 0 {
					m.space = true
				}
				return undecided
			}
		}
		return m.newline(args)

	case document.KindExpandParent:
		if m.mustBeFlat {
			return fitsNo
		}

	case document.KindLineSuffixBoundary:
		if m.suffix {
			return m.newline(args)
		}

	case document.KindInterned:
		shared, _ := e.Interned()
		m.queue.push(shared.Elements(), false)

	case document.KindBestFitting:
		best, _ := e.BestFitting()
		variant := best.MostExpanded()
		if args.mode == document.Flat {
			variant = best.MostFlat()
		}
		m.queue.pushOwned(&m.stack, document.TagEntry, args, variant)

	case document.KindTag:
		tag, _ := e.Tag()
		if tag.IsEnd() {
			if m.stack.pop(tag.Kind(), 0) != nil {
				return fitsNo
			}
			return undecided
		}
		return m.start(tag, args)
	}

	return undecided
}

func (m *measurer) start(tag document.Tag, args args) verdict {
	switch tag.Kind() {
	case document.TagGroup:
		if tag.GroupMode() != document.GroupFlat {
			if m.mustBeFlat {
				return fitsNo
			}
			args.mode = document.Expanded
		}
		if id := tag.GroupID(); !id.IsZero() {
			if m.decided == nil {
				m.decided = make(map[document.GroupID]document.PrintMode)
			}
			m.decided[id] = args.mode
		}

	case document.TagIndent:
		args.indent = args.indent.indent()
	case document.TagDedent:
		args.indent = args.indent.dedent(tag.DedentMode())
	case document.TagAlign:
		args.indent = args.indent.alignBy(tag.Align())

	case document.TagIndentIfGroupBreaks:
		if m.mode(tag.GroupID(), args) == document.Expanded {
			args.indent = args.indent.indent()
		}

	case document.TagConditional:
		if m.mode(tag.GroupID(), args) != tag.Condition() {
			if _, err := m.queue.region(tag.Kind()); err != nil {
				return fitsNo
			}
			return undecided
		}

	case document.TagLineSuffix:
		// Suffixes are printed at the end of the line, where their width is
		// not counted against it.
		if _, err := m.queue.region(tag.Kind()); err != nil {
			return fitsNo
		}
		m.suffix = true
		return undecided
	}

	m.stack.push(tag.Kind(), args)
	return undecided
}

// mode returns the mode of the group with the given ID.
//
// Groups that have not been printed or measured yet are assumed to be in the
// current mode; the printer reports them once it reaches them.
func (m *measurer) mode(id document.GroupID, args args) document.PrintMode {
	if id.IsZero() {
		return args.mode
	}
	if mode, ok := m.decided[id]; ok {
		return mode
	}
	if mode, ok := m.printed[id]; ok {
		return mode
	}
	return args.mode
}

// newline handles content that would start a new line.
func (m *measurer) newline(args args) verdict {
	switch {
	case m.mustBeFlat:
		return fitsNo
	case args.measure == firstLine:
		return fitsYes
	}

	m.column = 0
	m.space = false
	m.indent = args.indent.width(m.options)
	m.indentPending = true
	return undecided
}

func (m *measurer) text(text string, args args) verdict {
	first := true
	for line := range stringsx.Lines(text) {
		if !first {
			if v := m.newline(args); v != undecided {
				return v
			}
			// Newlines within text are not followed by indentation.
			m.indentPending = false
		}
		first = false
		if line == "" {
			continue
		}

		if m.indentPending {
			m.column += m.indent
			m.indentPending = false
		}
		if m.space {
			m.column++
			m.space = false
		}
		m.column = unicodex.Advance(m.column, m.options.IndentWidth, line)
		if m.column > m.options.LineWidth {
			return fitsNo
		}
	}
	return undecided
}
