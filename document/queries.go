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

// WillBreak returns whether printing elements is guaranteed to produce at
// least one newline, regardless of line width.
//
// Content inside of line suffixes is ignored, since it is printed at the end
// of whatever line it ends up on.
func WillBreak(elements []Element) bool {
	var suffix int
	for _, e := range elements {
		if e.kind == KindTag && e.tag.kind == TagLineSuffix {
			if e.tag.end {
				suffix--
			} else {
				suffix++
			}
			continue
		}
		if suffix == 0 && e.WillBreak() {
			return true
		}
	}
	return false
}

// MayDirectlyBreak returns whether elements directly contain a line element,
// so that they may break depending on the mode they are printed in.
//
// Interned content and best-fitting variants are not looked through.
func MayDirectlyBreak(elements []Element) bool {
	for _, e := range elements {
		if e.kind == KindLine {
			return true
		}
	}
	return false
}

// HasLabel returns whether elements begin with a labelled region with the
// given label.
func HasLabel(elements []Element, label LabelID) bool {
	e, ok := first(elements)
	if !ok {
		return false
	}
	return e.kind == KindTag && !e.tag.end && e.tag.kind == TagLabelled && e.tag.label == label
}

// EndTag returns the end tag elements end with, if it has the given kind.
//
// This is used when composing sequences that are expected to close a region
// opened by some other content.
func EndTag(elements []Element, kind TagKind) (Tag, bool) {
	e, ok := last(elements)
	if !ok || e.kind != KindTag || !e.tag.end || e.tag.kind != kind {
		return Tag{}, false
	}
	return e.tag, true
}

// StartTag returns the start tag matching the end tag elements end with, if
// that end tag has the given kind.
//
// The start tag is the one that carries the region's parameters, such as a
// group's [GroupID].
func StartTag(elements []Element, kind TagKind) (Tag, bool) {
	elements = trailing(elements)
	if _, ok := EndTag(elements, kind); !ok {
		return Tag{}, false
	}

	var depth int
	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		if e.kind != KindTag || e.tag.kind != kind {
			continue
		}
		if e.tag.end {
			depth++
			continue
		}
		depth--
		if depth == 0 {
			return e.tag, true
		}
	}
	return Tag{}, false
}

// first returns the first element of elements, looking through interned
// content.
func first(elements []Element) (Element, bool) {
	for len(elements) > 0 {
		e := elements[0]
		if e.kind != KindInterned {
			return e, true
		}
		elements = e.ref.elements
	}
	return Element{}, false
}

// trailing returns the innermost slice whose last element is not interned
// content.
func trailing(elements []Element) []Element {
	for len(elements) > 0 {
		e := elements[len(elements)-1]
		if e.kind != KindInterned {
			break
		}
		elements = e.ref.elements
	}
	return elements
}

// last returns the last element of elements, looking through interned
// content.
func last(elements []Element) (Element, bool) {
	elements = trailing(elements)
	if len(elements) == 0 {
		return Element{}, false
	}
	return elements[len(elements)-1], true
}
