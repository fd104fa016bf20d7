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

//go:generate go run github.com/bufbuild/docfmt/internal/enum kinds.yaml

import (
	"fmt"
	"slices"
	"strings"
)

// Element is a single formatting primitive within a [Document].
//
// Elements are values; the zero Element has [KindNone] and never appears in a
// built document.
type Element struct {
	kind Kind
	line LineMode

	text string
	pos  int // Source offset, for KindLocatedText.

	tag  Tag
	ref  *interned
	best *BestFittingElement
}

// Kind returns what kind of element this is.
func (e Element) Kind() Kind {
	return e.kind
}

// LineMode returns the mode of a [KindLine] element.
func (e Element) LineMode() LineMode {
	return e.line
}

// Text returns the text of a text element, or "" for any other kind.
func (e Element) Text() string {
	return e.text
}

// SourcePosition returns the offset in the original source that a
// [KindLocatedText] element was sliced from.
func (e Element) SourcePosition() (int, bool) {
	return e.pos, e.kind == KindLocatedText
}

// Tag returns the tag of a [KindTag] element.
func (e Element) Tag() (Tag, bool) {
	return e.tag, e.kind == KindTag
}

// Interned returns the shared content of a [KindInterned] element.
func (e Element) Interned() (Interned, bool) {
	return Interned{e.ref}, e.kind == KindInterned
}

// BestFitting returns the variants of a [KindBestFitting] element.
func (e Element) BestFitting() (*BestFittingElement, bool) {
	return e.best, e.kind == KindBestFitting
}

// IsTag returns whether this is a start or end tag.
func (e Element) IsTag() bool {
	return e.kind == KindTag
}

// IsStartTag returns whether this is a start tag.
func (e Element) IsStartTag() bool {
	return e.kind == KindTag && !e.tag.end
}

// IsEndTag returns whether this is an end tag.
func (e Element) IsEndTag() bool {
	return e.kind == KindTag && e.tag.end
}

// IsText returns whether this is any kind of text.
func (e Element) IsText() bool {
	switch e.kind {
	case KindText, KindDynamicText, KindLocatedText:
		return true
	default:
		return false
	}
}

// IsSpace returns whether this is a collapsible space.
func (e Element) IsSpace() bool {
	return e.kind == KindSpace
}

// IsLine returns whether this is a line break of any mode.
func (e Element) IsLine() bool {
	return e.kind == KindLine
}

// WillBreak returns whether this element is guaranteed to print at least one
// newline, regardless of the width it is printed at.
//
// This is the case for hard and empty lines, text containing a newline,
// [ExpandParent], the start of a group that is not flat, interned content
// that will break, and best-fitting elements whose most flat variant will
// break.
func (e Element) WillBreak() bool {
	switch e.kind {
	case KindExpandParent:
		return true
	case KindLine:
		return e.line == Hard || e.line == Empty
	case KindText, KindDynamicText, KindLocatedText:
		return strings.Contains(e.text, "\n")
	case KindTag:
		return e.tag.kind == TagGroup && !e.tag.end && e.tag.group != GroupFlat
	case KindInterned:
		return WillBreak(e.ref.elements)
	case KindBestFitting:
		// The printer may still pick a more expanded variant, but if even the
		// most flat one breaks, every choice does.
		return WillBreak(e.best.MostFlat())
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (e Element) String() string {
	switch e.kind {
	case KindLine:
		return fmt.Sprintf("line(%v)", e.line)
	case KindText, KindDynamicText:
		return fmt.Sprintf("%v(%q)", e.kind, e.text)
	case KindLocatedText:
		return fmt.Sprintf("%v(%d, %q)", e.kind, e.pos, e.text)
	case KindTag:
		return e.tag.String()
	case KindInterned:
		return fmt.Sprintf("interned(%p)", e.ref)
	case KindBestFitting:
		return fmt.Sprintf("best-fitting(%d)", len(e.best.variants))
	default:
		return e.kind.String()
	}
}

// Interned is content that may be referenced from several places in a
// document, or from several documents, without being copied.
//
// Two Interneds are equal if and only if they were returned by the same call
// to [Intern]; their content is never compared. Interned content is kept alive
// for as long as anything references it.
type Interned struct {
	ref *interned
}

type interned struct {
	elements []Element
	expands  bool // Whether the content breaks whatever group references it.
	err      error
}

// Elements returns the shared content.
//
// The returned slice must not be modified.
func (i Interned) Elements() []Element {
	if i.ref == nil {
		return nil
	}
	return i.ref.elements
}

// IsZero returns whether this is the zero Interned, which refers to nothing.
func (i Interned) IsZero() bool {
	return i.ref == nil
}

// Err returns the error encountered while building the shared content, if any.
func (i Interned) Err() error {
	if i.ref == nil {
		return nil
	}
	return i.ref.err
}

// BestFittingElement is a list of alternative renderings of the same content,
// ordered from most flat to most expanded. The printer picks the first variant
// that fits, or else the last.
//
// Breaks inside of a variant are never propagated to enclosing groups.
type BestFittingElement struct {
	variants [][]Element
}

// NewBestFitting constructs a best-fitting element from raw variants.
//
// Returns a [*MalformedBestFittingError] if fewer than two variants are given.
// The last variant must always fit, usually because it forces its content to
// break.
func NewBestFitting(variants ...[]Element) (*BestFittingElement, error) {
	if len(variants) < 2 {
		return nil, &MalformedBestFittingError{Variants: len(variants)}
	}
	variants = slices.Clone(variants)
	for i, variant := range variants {
		if err := validate(variant); err != nil {
			return nil, err
		}
		variants[i] = slices.Clone(variant)
		propagateExpand(variants[i])
	}
	return &BestFittingElement{variants: variants}, nil
}

// Variants returns all of the variants.
func (b *BestFittingElement) Variants() [][]Element {
	return b.variants
}

// MostFlat returns the variant that takes the least vertical space.
func (b *BestFittingElement) MostFlat() []Element {
	return b.variants[0]
}

// MostExpanded returns the variant that is printed when no other fits.
func (b *BestFittingElement) MostExpanded() []Element {
	return b.variants[len(b.variants)-1]
}
