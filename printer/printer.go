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

// Package printer prints a [document.Document] as text, choosing where to
// break lines so that they fit within a maximum width.
//
// Groups are printed flat if they fit on the rest of the current line, and
// expanded otherwise. Printing makes a single pass over the document; a group
// is measured at most once, when the printer reaches its start, and the mode
// chosen for it holds for its whole extent.
package printer

import (
	"strings"

	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/internal/ext/slicesx"
	"github.com/bufbuild/docfmt/internal/ext/stringsx"
	"github.com/bufbuild/docfmt/internal/ext/unicodex"
)

// Printer prints documents with a fixed set of options.
//
// A Printer may be used by multiple goroutines concurrently.
type Printer struct {
	options Options
}

// New returns a printer with the given options.
//
// Returns a [*ConfigurationError] if any option is out of range.
func New(options Options) (*Printer, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Printer{options: options.WithDefaults()}, nil
}

// Print is a shorthand for calling [New] and then [Printer.Print].
func Print(options Options, doc *document.Document) (string, error) {
	p, err := New(options)
	if err != nil {
		return "", err
	}
	return p.Print(doc)
}

// Options returns the options this printer was created with, with defaults
// applied.
func (p *Printer) Options() Options {
	return p.options
}

// Print prints doc.
//
// Line breaks are printed with the configured line ending, including line
// breaks within text. No trailing line break is added.
//
// Returns a [*document.StructuralIntegrityError] if the tags in doc are not
// balanced, or a conditional region refers to a group that has not been
// printed before it.
func (p *Printer) Print(doc *document.Document) (string, error) {
	s := &state{
		options: &p.options,
		groups:  make(map[document.GroupID]document.PrintMode),
	}
	s.line = unicodex.Width{Tabstop: p.options.IndentWidth, Out: &s.out}
	return s.print(doc.Elements())
}

// state is the state of a single call to [Printer.Print].
type state struct {
	options *Options

	out  strings.Builder
	line unicodex.Width // Tracks the column of the current line.

	// Indentation to print before the next text on the current line.
	indent        *indentation
	indentPending bool

	space    bool // Whether a collapsible space is pending.
	newlines int  // Number of line endings at the end of the output.

	// Set once a group has been measured to fit on the current line, so that
	// groups nested in it need not be measured again. Reset at every line
	// break.
	flatVerified bool

	stack    stack
	queue    queue
	suffixes slicesx.Queue[suffix]

	// Modes chosen for groups with an ID, for use by conditional content.
	groups map[document.GroupID]document.PrintMode
}

func (s *state) print(elements []document.Element) (string, error) {
	s.stack.push(document.TagNone, args{mode: document.Expanded})
	s.queue.push(elements, false)

	for {
		e, ok, err := s.queue.next(&s.stack)
		if err != nil {
			return "", err
		}
		if !ok {
			if s.suffixes.Len() == 0 {
				break
			}
			s.flushSuffixes()
			continue
		}

		if err := s.element(e); err != nil {
			return "", err
		}
	}

	if len(s.stack) > 1 {
		return "", &document.StructuralIntegrityError{
			Problem: document.ProblemUnclosed,
			Kind:    s.stack.top().kind,
			Index:   len(elements),
		}
	}
	return s.out.String(), nil
}

func (s *state) element(e document.Element) error {
	top := s.stack.top()
	if top.kind == document.TagFill {
		return s.fill(e, top)
	}

	switch e.Kind() {
	case document.KindSpace:
		if s.line.Column > 0 {
			s.space = true
		}

	case document.KindHardSpace:
		s.write(" ")

	case document.KindText, document.KindDynamicText, document.KindLocatedText:
		s.write(e.Text())

	case document.KindLine:
		s.lineBreak(e, top.args)

	case document.KindLineSuffixBoundary:
		if s.suffixes.Len() > 0 {
			s.queue.push(hardLine, false)
			s.flushSuffixes()
		}

	case document.KindInterned:
		shared, _ := e.Interned()
		s.queue.push(shared.Elements(), false)

	case document.KindBestFitting:
		best, _ := e.BestFitting()
		s.bestFitting(best, top.args)

	case document.KindTag:
		tag, _ := e.Tag()
		if tag.IsEnd() {
			return s.stack.pop(tag.Kind(), s.queue.index())
		}
		return s.start(tag, top.args)
	}

	return nil
}

func (s *state) start(tag document.Tag, args args) error {
	switch tag.Kind() {
	case document.TagGroup:
		args.mode = s.group(tag, args)
		if id := tag.GroupID(); !id.IsZero() {
			s.groups[id] = args.mode
		}

	case document.TagIndent:
		args.indent = args.indent.indent()
	case document.TagDedent:
		args.indent = args.indent.dedent(tag.DedentMode())
	case document.TagAlign:
		args.indent = args.indent.alignBy(tag.Align())

	case document.TagIndentIfGroupBreaks:
		mode, err := s.mode(tag, args)
		if err != nil {
			return err
		}
		if mode == document.Expanded {
			args.indent = args.indent.indent()
		}

	case document.TagConditional:
		mode, err := s.mode(tag, args)
		if err != nil {
			return err
		}
		if mode != tag.Condition() {
			_, err := s.queue.region(tag.Kind())
			return err
		}

	case document.TagLineSuffix:
		return s.deferSuffix(args)

	case document.TagFill:
		s.stack.push(tag.Kind(), args).fill = new(fillState)
		return nil
	}

	s.stack.push(tag.Kind(), args)
	return nil
}

// group chooses the mode for a group whose start tag was just reached.
func (s *state) group(tag document.Tag, args args) document.PrintMode {
	switch {
	case tag.GroupMode() != document.GroupFlat:
		return document.Expanded
	case args.mode == document.Flat && s.flatVerified:
		return document.Flat
	}

	fits := s.fits(measurement{
		frame: frame{kind: document.TagGroup, args: args.withMode(document.Flat)},
		group: tag.GroupID(),
	})
	if !fits {
		return document.Expanded
	}
	s.flatVerified = true
	return document.Flat
}

// mode returns the mode of the group a conditional tag depends on.
func (s *state) mode(tag document.Tag, args args) (document.PrintMode, error) {
	id := tag.GroupID()
	if id.IsZero() {
		return args.mode, nil
	}
	mode, ok := s.groups[id]
	if !ok {
		return 0, &document.StructuralIntegrityError{
			Problem: document.ProblemUnknownGroup,
			Kind:    tag.Kind(),
			Index:   s.queue.index(),
			Group:   id,
		}
	}
	return mode, nil
}

// lineBreak prints a line element in the given frame.
func (s *state) lineBreak(e document.Element, args args) {
	mode := e.LineMode()
	if args.mode == document.Flat {
		switch mode {
		case document.Soft:
			return
		case document.SoftOrSpace:
			if s.line.Column > 0 {
				s.space = true
			}
			return
		}
	}

	if s.suffixes.Len() > 0 {
		// Print the pending suffixes first, then come back to this line.
		s.queue.push([]document.Element{e}, false)
		s.flushSuffixes()
		return
	}

	want := 1
	if mode == document.Empty {
		want = 2
	}
	s.newline(want, args.indent)
}

// newline ends the current line, so that the output ends in at least want
// line endings, and schedules indent to be printed before the next text.
//
// No line endings are printed at the start of the output.
func (s *state) newline(want int, indent *indentation) {
	for s.out.Len() > 0 && s.newlines < want {
		_ = s.line.Newline(s.options.LineEnding.Newline())
		s.newlines++
	}

	s.space = false
	s.indent = indent
	s.indentPending = true
	s.flatVerified = false
}

// write prints text, along with any pending indentation and space.
func (s *state) write(text string) {
	first := true
	for line := range stringsx.Lines(text) {
		if !first {
			_ = s.line.Newline(s.options.LineEnding.Newline())
			s.newlines++
			s.space = false
			s.indentPending = false
			s.flatVerified = false
		}
		first = false
		if line == "" {
			continue
		}

		if s.indentPending {
			_, _ = s.line.WriteString(s.indent.text(s.options))
			s.indentPending = false
		}
		if s.space {
			_, _ = s.line.WriteString(" ")
			s.space = false
		}
		_, _ = s.line.WriteString(line)
		s.newlines = 0
	}
}

var hardLine, _ = document.Collect(func(push document.Sink) {
	push(document.HardLine())
})
