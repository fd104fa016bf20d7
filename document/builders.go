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

import "slices"

// Content is something that can be pushed into a document.
//
// The various factory functions in this package construct content. See their
// documentation for what is available.
//
// The nil Content pushes nothing.
type Content func(*builder)

// Sink is a place to push content. The content is appended to whatever
// region the sink was created for.
//
// Many functions in this package take a func(push Sink) as an argument. This
// callback is executed in the context of that region, and push must not be
// used after the callback returns.
type Sink func(...Content)

// builder accumulates elements for a document or a region of one.
type builder struct {
	out []Element
	err error
}

func (b *builder) add(content ...Content) {
	for _, c := range content {
		if c != nil {
			c(b)
		}
	}
}

func (b *builder) push(e Element) {
	b.out = append(b.out, e)
}

// fail records the first construction error.
func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// region pushes start, the content of body, and the end tag matching start.
func (b *builder) region(start Tag, body func(Sink)) {
	b.push(Element{kind: KindTag, tag: start})
	if body != nil {
		body(b.add)
	}
	b.push(Element{kind: KindTag, tag: Tag{kind: start.kind, end: true}})
}

// sub builds body into a separate, validated element slice.
func (b *builder) sub(body func(Sink)) ([]Element, bool) {
	elements, err := Collect(body)
	if err == nil {
		err = validate(elements)
	}
	if err != nil {
		b.fail(err)
		return nil, false
	}
	return elements, true
}

// Concat returns content that pushes each of the given pieces of content in
// order.
func Concat(content ...Content) Content {
	return func(b *builder) { b.add(content...) }
}

// Space is a space that collapses with adjacent spaces and is dropped at the
// start of a line.
func Space() Content {
	return leaf(Element{kind: KindSpace})
}

// HardSpace is a space that is always printed.
func HardSpace() Content {
	return leaf(Element{kind: KindHardSpace})
}

// Line is a line break of the given mode.
func Line(mode LineMode) Content {
	return leaf(Element{kind: KindLine, line: mode})
}

// SoftLine breaks the line if the enclosing group is expanded, and otherwise
// prints nothing.
func SoftLine() Content { return Line(Soft) }

// SoftLineOrSpace breaks the line if the enclosing group is expanded, and
// otherwise prints a space.
func SoftLineOrSpace() Content { return Line(SoftOrSpace) }

// HardLine always breaks the line, and forces enclosing groups to expand.
func HardLine() Content { return Line(Hard) }

// EmptyLine always breaks the line and leaves an empty line after it, and
// forces enclosing groups to expand.
func EmptyLine() Content { return Line(Empty) }

// ExpandParent prints nothing, but forces the enclosing group to expand.
func ExpandParent() Content {
	return leaf(Element{kind: KindExpandParent})
}

// LineSuffixBoundary forces any pending [LineSuffix] content to be printed at
// this point.
func LineSuffixBoundary() Content {
	return leaf(Element{kind: KindLineSuffixBoundary})
}

// Text is text that was known when the formatter was written, such as a
// keyword or punctuation.
//
// Text should not contain newlines other than U+000A; see [NormalizeNewlines].
// Empty text pushes nothing.
func Text(text string) Content {
	return textOf(KindText, 0, text)
}

// DynamicText is text computed while formatting, such as a normalized string
// literal.
func DynamicText(text string) Content {
	return textOf(KindDynamicText, 0, text)
}

// LocatedText is text sliced verbatim from the source at the given offset.
func LocatedText(position int, text string) Content {
	return textOf(KindLocatedText, position, text)
}

func textOf(kind Kind, position int, text string) Content {
	if text == "" {
		return nil
	}
	return leaf(Element{kind: kind, pos: position, text: text})
}

func leaf(e Element) Content {
	return func(b *builder) { b.push(e) }
}

// Raw pushes elements exactly as given.
//
// This is an escape hatch for content produced by something other than this
// package's builders; [Build] still checks that the resulting tags balance.
func Raw(elements ...Element) Content {
	return func(b *builder) { b.out = append(b.out, elements...) }
}

// OpenTag returns a start tag of the given kind with default parameters, for
// use with [Raw].
func OpenTag(kind TagKind) Element {
	return Element{kind: KindTag, tag: Tag{kind: kind}}
}

// CloseTag returns an end tag of the given kind, for use with [Raw].
func CloseTag(kind TagKind) Element {
	return Element{kind: KindTag, tag: Tag{kind: kind, end: true}}
}

// GroupOptions configures a group built with [GroupWith].
type GroupOptions struct {
	// Identifies the group, so that [IfGroupBreaksOn], [IfGroupFitsOn] and
	// [IndentIfGroupBreaks] can refer to it from outside of it.
	ID GroupID

	// If set, the group always expands instead of being measured.
	Expand bool
}

// Group returns content whose line breaks are all printed flat or all
// expanded.
//
// The printer prints a group flat if it, and the rest of the line after it,
// fit within the line width. Groups containing content that always breaks,
// such as [HardLine], are always expanded.
func Group(content func(push Sink)) Content {
	return GroupWith(GroupOptions{}, content)
}

// GroupWith is like [Group], but with options.
func GroupWith(options GroupOptions, content func(push Sink)) Content {
	mode := GroupFlat
	if options.Expand {
		mode = GroupExpand
	}
	return func(b *builder) {
		b.region(Tag{kind: TagGroup, group: mode, id: options.ID}, content)
	}
}

// Indent increases the indentation of every line started within content by
// one level.
func Indent(content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagIndent}, content) }
}

// Dedent removes the innermost level of indentation for lines started within
// content.
func Dedent(content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagDedent, dedent: DedentLevel}, content) }
}

// DedentToRoot removes all indentation for lines started within content.
func DedentToRoot(content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagDedent, dedent: DedentRoot}, content) }
}

// Align indents lines started within content by the given number of columns,
// which are always printed as spaces.
//
// A non-positive count pushes content without alignment.
func Align(count int, content func(push Sink)) Content {
	return func(b *builder) {
		if count <= 0 {
			if content != nil {
				content(b.add)
			}
			return
		}
		b.region(Tag{kind: TagAlign, align: count}, content)
	}
}

// IndentIfGroupBreaks indents content by one level only if the group with
// the given ID was expanded.
func IndentIfGroupBreaks(id GroupID, content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagIndentIfGroupBreaks, id: id}, content) }
}

// IfGroupBreaks prints content only if the enclosing group is expanded.
func IfGroupBreaks(content func(push Sink)) Content {
	return IfGroupBreaksOn(GroupID{}, content)
}

// IfGroupFits prints content only if the enclosing group is flat.
func IfGroupFits(content func(push Sink)) Content {
	return IfGroupFitsOn(GroupID{}, content)
}

// IfGroupBreaksOn prints content only if the group with the given ID was
// expanded. That group must be printed before this content.
func IfGroupBreaksOn(id GroupID, content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagConditional, mode: Expanded, id: id}, content) }
}

// IfGroupFitsOn prints content only if the group with the given ID was flat.
// That group must be printed before this content.
func IfGroupFitsOn(id GroupID, content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagConditional, mode: Flat, id: id}, content) }
}

// LineSuffix defers content until just before the next line break, or the
// next [LineSuffixBoundary]. This is intended for trailing comments.
func LineSuffix(content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagLineSuffix}, content) }
}

// Labelled marks content with a label, so that it can be identified with
// [HasLabel]. Labels have no effect on printing.
func Labelled(label LabelID, content func(push Sink)) Content {
	return func(b *builder) { b.region(Tag{kind: TagLabelled, label: label}, content) }
}

// Fill lays out items like words in a paragraph: as many items as fit are
// placed on each line, and the separator between two items is printed
// expanded only when the next item does not fit on the current line.
//
// The separator is usually [SoftLineOrSpace].
func Fill(separator Content, items ...Content) Content {
	return func(b *builder) {
		b.region(Tag{kind: TagFill}, func(push Sink) {
			for i, item := range items {
				if i > 0 {
					b.region(Tag{kind: TagEntry}, func(push Sink) { push(separator) })
				}
				b.region(Tag{kind: TagEntry}, func(push Sink) { push(item) })
			}
		})
	}
}

// BestFitting returns content that is printed as the first of the given
// variants that fits on the line, or else the last variant.
//
// Variants are ordered from most flat to most expanded. At least two variants
// are required; otherwise, construction fails with a
// [*MalformedBestFittingError].
func BestFitting(variants ...func(push Sink)) Content {
	return func(b *builder) {
		if len(variants) < 2 {
			b.fail(&MalformedBestFittingError{Variants: len(variants)})
			return
		}

		best := &BestFittingElement{variants: make([][]Element, 0, len(variants))}
		for _, variant := range variants {
			elements, ok := b.sub(variant)
			if !ok {
				return
			}
			propagateExpand(elements)
			best.variants = append(best.variants, elements)
		}
		b.push(Element{kind: KindBestFitting, best: best})
	}
}

// Intern builds content once, so that it can be referenced from several
// places with [Reference] without being copied.
//
// Errors encountered while building content are reported by [Interned.Err],
// and by [Build] for any document that references it.
func Intern(content func(push Sink)) Interned {
	elements, err := Collect(content)
	if err == nil {
		err = validate(elements)
	}
	elements = slices.Clip(elements)
	ref := &interned{elements: elements, err: err}
	if err == nil {
		ref.expands = propagateExpand(elements)
	}
	return Interned{ref}
}

// Reference pushes a reference to interned content. Printing it is
// equivalent to printing the content in its place.
//
// Referencing the zero Interned pushes nothing.
func Reference(shared Interned) Content {
	return func(b *builder) {
		if shared.ref == nil {
			return
		}
		if shared.ref.err != nil {
			b.fail(shared.ref.err)
			return
		}
		b.push(Element{kind: KindInterned, ref: shared.ref})
	}
}
