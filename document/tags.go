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
	"sync/atomic"

	"github.com/bufbuild/docfmt/internal/intern"
)

// Tag marks the start or end of a region of a document that some special
// formatting applies to.
//
// Every start tag is followed by exactly one end tag of the same kind, at the
// same nesting depth. Only start tags carry the region's parameters.
type Tag struct {
	kind TagKind
	end  bool

	group  GroupMode  // TagGroup.
	mode   PrintMode  // TagConditional.
	dedent DedentMode // TagDedent.
	align  int        // TagAlign.
	id     GroupID    // TagGroup, TagConditional, TagIndentIfGroupBreaks.
	label  LabelID    // TagLabelled.
}

// Kind returns the kind of region this tag delimits.
func (t Tag) Kind() TagKind {
	return t.kind
}

// IsStart returns whether this tag opens a region.
func (t Tag) IsStart() bool {
	return !t.end
}

// IsEnd returns whether this tag closes a region.
func (t Tag) IsEnd() bool {
	return t.end
}

// GroupMode returns the break mode of a [TagGroup].
func (t Tag) GroupMode() GroupMode {
	return t.group
}

// Condition returns the mode a [TagConditional]'s group must be in for its
// content to be printed.
func (t Tag) Condition() PrintMode {
	return t.mode
}

// DedentMode returns how much indentation a [TagDedent] removes.
func (t Tag) DedentMode() DedentMode {
	return t.dedent
}

// Align returns the number of columns a [TagAlign] indents by.
func (t Tag) Align() int {
	return t.align
}

// GroupID returns the group this tag identifies or refers to, if any.
//
// For [TagGroup], this is the identity of the group. For [TagConditional]
// and [TagIndentIfGroupBreaks], this is the group whose mode they depend on;
// a zero ID refers to the innermost enclosing group.
func (t Tag) GroupID() GroupID {
	return t.id
}

// Label returns the label of a [TagLabelled].
func (t Tag) Label() LabelID {
	return t.label
}

// String implements [fmt.Stringer].
func (t Tag) String() string {
	if t.end {
		return fmt.Sprintf("</%v>", t.kind)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<%v", t.kind)
	switch t.kind {
	case TagGroup:
		if t.group != GroupFlat {
			fmt.Fprintf(&b, " mode=%v", t.group)
		}
	case TagConditional:
		fmt.Fprintf(&b, " if=%v", t.mode)
	case TagDedent:
		fmt.Fprintf(&b, " to=%v", t.dedent)
	case TagAlign:
		fmt.Fprintf(&b, " by=%d", t.align)
	case TagLabelled:
		fmt.Fprintf(&b, " label=%q", t.label.Name())
	}
	if !t.id.IsZero() {
		fmt.Fprintf(&b, " id=%v", t.id)
	}
	b.WriteString(">")
	return b.String()
}

var nextGroupID atomic.Uint32

// GroupID identifies a group, so that other content can depend on the mode
// the printer picks for it.
//
// The zero value identifies no group.
type GroupID struct {
	value uint32
	name  string
}

// NewGroupID allocates a new, unique group ID. The name is only used for
// debugging.
//
// This function may be called by multiple goroutines concurrently.
func NewGroupID(name string) GroupID {
	return GroupID{value: nextGroupID.Add(1), name: name}
}

// IsZero returns whether this is the zero GroupID.
func (id GroupID) IsZero() bool {
	return id.value == 0
}

// Name returns the debug name this ID was allocated with.
func (id GroupID) Name() string {
	return id.name
}

// String implements [fmt.Stringer].
func (id GroupID) String() string {
	if id.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%s#%d", id.name, id.value)
}

var labels intern.Table

// LabelID is the name of a [Labelled] region.
//
// Labels with the same name are equal. The zero value is the empty label.
type LabelID intern.ID

// Label returns the label with the given name.
//
// This function may be called by multiple goroutines concurrently.
func Label(name string) LabelID {
	return LabelID(labels.Intern(name))
}

// Name returns the name of this label.
func (id LabelID) Name() string {
	return labels.Value(intern.ID(id))
}

// String implements [fmt.Stringer].
func (id LabelID) String() string {
	return id.Name()
}
