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

// Package document defines the intermediate representation a formatter builds
// to describe how code should be laid out, independent of the line width it is
// eventually printed at.
//
// A [Document] is a flat sequence of [Element]s. Regions, such as groups and
// indentation, are delimited by matching start and end [Tag]s, so nesting is
// encoded by the order of the elements rather than by pointers between them.
//
// Documents are constructed with [Build], which is passed a callback that
// pushes [Content] into the document. Content is produced by the factory
// functions in this package, many of which take a func(push Sink) that
// describes their own children:
//
//	doc, err := document.Build(func(push document.Sink) {
//		push(document.Group(func(push document.Sink) {
//			push(
//				document.Text("["),
//				document.Indent(func(push document.Sink) {
//					push(document.SoftLine(), document.Text("1,"))
//					push(document.SoftLineOrSpace(), document.Text("2"))
//				}),
//				document.SoftLine(),
//				document.Text("]"),
//			)
//		}))
//	})
//
// A built document is immutable, and may be printed any number of times,
// concurrently.
package document

import (
	"slices"

	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

// Document is a sequence of formatting elements for one formatted unit, such
// as a file.
//
// The zero value is an empty document.
type Document struct {
	elements []Element
}

// Build constructs a document from the content pushed by the given callback.
//
// Returns a [*MalformedBestFittingError] if a best-fitting element is given
// fewer than two variants, and a [*StructuralIntegrityError] if raw tags
// pushed with [Raw] are not balanced.
//
// Groups that contain content that always breaks are marked as such before
// Build returns; see [Element.WillBreak].
func Build(content func(push Sink)) (*Document, error) {
	elements, err := Collect(content)
	if err != nil {
		return nil, err
	}
	if err := validate(elements); err != nil {
		return nil, err
	}
	propagateExpand(elements)
	return &Document{elements: elements}, nil
}

// New wraps a sequence of raw elements as a document, without validating that
// its tags are balanced.
//
// This is intended for documents produced by something other than the
// builders in this package. Printing a document whose tags are not balanced
// fails with a [*StructuralIntegrityError].
func New(elements ...Element) *Document {
	elements = slices.Clone(elements)
	propagateExpand(elements)
	return &Document{elements: elements}
}

// Collect runs content against a fresh builder and returns the raw elements
// it pushed.
//
// Unlike [Build], this does not validate tags or propagate breaks. The first
// construction error is returned alongside whatever elements were pushed.
func Collect(content func(push Sink)) ([]Element, error) {
	b := new(builder)
	if content != nil {
		content(b.add)
	}
	return b.out, b.err
}

// Elements returns the elements of this document.
//
// The returned slice must not be modified.
func (d *Document) Elements() []Element {
	if d == nil {
		return nil
	}
	return d.elements
}

// Len returns the number of top-level elements in this document.
func (d *Document) Len() int {
	return len(d.Elements())
}

// Validate checks that the start and end tags of this document are balanced.
func (d *Document) Validate() error {
	return validate(d.Elements())
}

// validate checks that tags in elements are balanced.
func validate(elements []Element) error {
	var open []TagKind
	for i := range elements {
		e := &elements[i]
		if e.kind != KindTag {
			continue
		}

		if !e.tag.end {
			open = append(open, e.tag.kind)
			continue
		}

		if len(open) == 0 {
			return &StructuralIntegrityError{Problem: ProblemUnmatchedEnd, Kind: e.tag.kind, Index: i}
		}
		start := open[len(open)-1]
		open = open[:len(open)-1]
		if start != e.tag.kind {
			return &StructuralIntegrityError{Problem: ProblemMismatchedEnd, Kind: e.tag.kind, Expected: start, Index: i}
		}
	}

	if len(open) > 0 {
		return &StructuralIntegrityError{Problem: ProblemUnclosed, Kind: open[len(open)-1], Index: len(elements)}
	}
	return nil
}

// propagateExpand marks every flat group that contains content which always
// breaks as [GroupPropagated].
//
// A break only marks the innermost enclosing group; that group then breaks
// its own parent when its end tag is reached. Fills are looked through, so a
// break inside a fill marks the group around it. Content inside line suffixes
// is ignored, as in [WillBreak]; a group inside a suffix is still marked by
// breaks within it. Best-fitting variants are propagated separately when they
// are built.
//
// Returns whether elements contains breaking content outside of any group,
// which is how interned content reports that it breaks whatever references
// it.
func propagateExpand(elements []Element) (expands bool) {
	type open struct {
		start  int // Index of the group's start tag.
		suffix int // Line suffix depth at the start tag.
	}
	var (
		enclosing []open
		suffix    int
	)
	for i := range elements {
		e := &elements[i]

		var breaks bool
		switch e.kind {
		case KindTag:
			switch {
			case e.tag.kind == TagLineSuffix && e.tag.end:
				suffix--
				continue
			case e.tag.kind == TagLineSuffix:
				suffix++
				continue
			case e.tag.kind != TagGroup:
				continue
			case !e.tag.end:
				enclosing = append(enclosing, open{start: i, suffix: suffix})
				continue
			}
			g, ok := slicesx.Pop(&enclosing)
			if !ok {
				continue // Unbalanced; validate reports this.
			}
			breaks = elements[g.start].tag.group != GroupFlat

		case KindInterned:
			breaks = e.ref.expands

		default:
			breaks = e.WillBreak()
		}

		if !breaks {
			continue
		}
		parent, ok := slicesx.Last(enclosing)
		switch {
		case !ok && suffix == 0:
			expands = true
		case ok && parent.suffix == suffix:
			if tag := &elements[parent.start].tag; tag.group == GroupFlat {
				tag.group = GroupPropagated
			}
		}
	}
	return expands
}
