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
	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

// measureMode is how far a fits-check looks ahead.
type measureMode byte

const (
	firstLine measureMode = iota // Content fits once the current line ends within the width.
	allLines                     // Every line of the content must fit.
)

// args are the settings that apply to the elements within a frame.
type args struct {
	indent  *indentation
	mode    document.PrintMode
	measure measureMode
}

func (a args) withMode(mode document.PrintMode) args {
	a.mode = mode
	return a
}

// frame is an open region of the document being printed or measured.
type frame struct {
	kind document.TagKind
	args args

	// Set for frames pushed alongside a cursor, such as a best-fitting
	// variant or a flushed line suffix. These are popped when the cursor is
	// exhausted, never by an end tag.
	owned bool

	// Set for TagFill frames while printing.
	fill *fillState
}

// stack is the stack of open frames. The bottom frame is the root of the
// document, and is never popped.
type stack []frame

func (s stack) top() *frame {
	return slicesx.LastPointer(s)
}

func (s *stack) push(kind document.TagKind, args args) *frame {
	*s = append(*s, frame{kind: kind, args: args})
	return s.top()
}

// pop pops the frame closed by an end tag of the given kind, found at index
// in the elements being printed.
func (s *stack) pop(kind document.TagKind, index int) error {
	if len(*s) <= 1 || s.top().owned {
		return &document.StructuralIntegrityError{
			Problem: document.ProblemUnmatchedEnd,
			Kind:    kind,
			Index:   index,
		}
	}
	if top := s.top(); top.kind != kind {
		return &document.StructuralIntegrityError{
			Problem:  document.ProblemMismatchedEnd,
			Kind:     kind,
			Expected: top.kind,
			Index:    index,
		}
	}
	slicesx.Pop(s)
	return nil
}

// release pops a frame owned by a cursor that was just exhausted.
func (s *stack) release(length int) error {
	top := s.top()
	if top == nil || !top.owned {
		var kind document.TagKind
		if top != nil {
			kind = top.kind
		}
		return &document.StructuralIntegrityError{
			Problem: document.ProblemUnclosed,
			Kind:    kind,
			Index:   length,
		}
	}
	slicesx.Pop(s)
	return nil
}

// cursor is a position within a sequence of elements being printed.
type cursor struct {
	elements []document.Element
	pos      int
	owns     bool // Whether exhausting this cursor releases the top frame.
}

// queue is the stack of cursors being printed. Elements are always taken
// from the innermost cursor, so pushing a cursor splices its elements in at
// the current position.
type queue []cursor

func (q *queue) push(elements []document.Element, owns bool) {
	*q = append(*q, cursor{elements: elements, owns: owns})
}

// pushOwned pushes elements alongside a new frame that is popped once they
// have been consumed.
func (q *queue) pushOwned(s *stack, kind document.TagKind, args args, elements []document.Element) {
	s.push(kind, args).owned = true
	q.push(elements, true)
}

// next returns the next element to print, discarding exhausted cursors and
// releasing the frames they own.
func (q *queue) next(s *stack) (document.Element, bool, error) {
	for {
		c := slicesx.LastPointer(*q)
		if c == nil {
			return document.Element{}, false, nil
		}
		if c.pos < len(c.elements) {
			c.pos++
			return c.elements[c.pos-1], true, nil
		}

		done, _ := slicesx.Pop(q)
		if done.owns {
			if err := s.release(len(done.elements)); err != nil {
				return document.Element{}, false, err
			}
		}
	}
}

// index returns the index of the element most recently returned by next,
// relative to the sequence it came from.
func (q queue) index() int {
	c := slicesx.LastPointer(q)
	if c == nil {
		return 0
	}
	return c.pos - 1
}

// region consumes the rest of a region whose start tag was just returned by
// next, including its end tag, and returns the elements between them.
func (q queue) region(kind document.TagKind) ([]document.Element, error) {
	c := slicesx.LastPointer(q)
	if c == nil {
		return nil, &document.StructuralIntegrityError{Problem: document.ProblemUnclosed, Kind: kind}
	}

	end, ok := matchingEnd(c.elements, c.pos-1)
	if !ok {
		return nil, &document.StructuralIntegrityError{
			Problem: document.ProblemUnclosed,
			Kind:    kind,
			Index:   len(c.elements),
		}
	}
	content := c.elements[c.pos:end]
	c.pos = end + 1
	return content, nil
}

// matchingEnd returns the index of the end tag matching the start tag at
// elements[start].
func matchingEnd(elements []document.Element, start int) (int, bool) {
	open, _ := elements[start].Tag()
	depth := 0
	for i := start; i < len(elements); i++ {
		tag, ok := elements[i].Tag()
		if !ok || tag.Kind() != open.Kind() {
			continue
		}
		if tag.IsStart() {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			return i, true
		}
	}
	return 0, false
}
