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

import "github.com/bufbuild/docfmt/document"

// fillState tracks the entries of a fill region being printed.
//
// A fill's entries alternate between items and separators, starting and
// usually ending with an item.
type fillState struct {
	entries int  // Number of entries started so far.
	fits    bool // Whether the most recent item was printed flat.
	pair    bool // Whether the most recent separator and the item after it fit.
}

// fill prints an element directly inside of a fill region.
func (s *state) fill(e document.Element, top *frame) error {
	tag, ok := e.Tag()
	switch {
	case ok && tag.IsEnd() && tag.Kind() == document.TagFill:
		return s.stack.pop(tag.Kind(), s.queue.index())
	case !ok || tag.IsEnd() || tag.Kind() != document.TagEntry:
		kind := document.TagNone
		if ok {
			kind = tag.Kind()
		}
		return &document.StructuralIntegrityError{
			Problem: document.ProblemMalformedEntry,
			Kind:    kind,
			Index:   s.queue.index(),
		}
	}

	fill := top.fill
	mode := document.Expanded
	switch {
	case fill.entries%2 == 1:
		// A separator is flat only if the item before it was, and it fits on
		// the line together with the item after it.
		fill.pair = fill.fits && s.fitsEntries(2, top.args)
		if fill.pair {
			mode = document.Flat
		}
	case fill.entries > 0 && fill.pair:
		mode = document.Flat
	default:
		fill.fits = s.fitsEntries(1, top.args)
		if fill.fits {
			mode = document.Flat
		}
	}
	fill.entries++

	s.stack.push(document.TagEntry, top.args.withMode(mode))
	return nil
}

// fitsEntries reports whether the next n entries of a fill, starting with the
// one whose start tag was just reached, fit flat on the current line.
func (s *state) fitsEntries(n int, fill args) bool {
	c := &s.queue[len(s.queue)-1]
	start := c.pos - 1
	end := start
	for i := range n {
		tag, ok := c.elements[end].Tag()
		if !ok || !tag.IsStart() || tag.Kind() != document.TagEntry {
			if i == 0 {
				return false
			}
			break // A trailing separator.
		}

		last, ok := matchingEnd(c.elements, end)
		if !ok {
			return false
		}
		end = last + 1
		if end == len(c.elements) {
			break
		}
	}

	return s.fits(measurement{
		frame: frame{kind: document.TagFill, args: args{
			indent:  fill.indent,
			mode:    document.Flat,
			measure: allLines,
		}},
		elements:   c.elements[start:end],
		owned:      true,
		scoped:     true,
		mustBeFlat: true,
	})
}
