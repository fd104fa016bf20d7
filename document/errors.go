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

import "fmt"

// IntegrityProblem is the way in which a document's tags are malformed.
type IntegrityProblem int

const (
	// An end tag with no start tag before it.
	ProblemUnmatchedEnd IntegrityProblem = iota + 1
	// An end tag whose kind differs from the innermost open start tag.
	ProblemMismatchedEnd
	// A start tag with no end tag after it.
	ProblemUnclosed
	// A conditional or indent-if-group-breaks region referring to a group
	// that has not been printed yet.
	ProblemUnknownGroup
	// A fill region containing something other than entries.
	ProblemMalformedEntry
)

// StructuralIntegrityError is returned when a document's start and end tags
// do not pair up, or refer to things that do not exist.
//
// This is always a bug in whatever built the document.
type StructuralIntegrityError struct {
	Problem IntegrityProblem

	// The kind of the offending tag.
	Kind TagKind
	// For ProblemMismatchedEnd, the kind of the start tag that was expected to
	// be closed.
	Expected TagKind
	// The index of the offending element, relative to the element sequence it
	// occurs in. For ProblemUnclosed, this is the length of the sequence.
	Index int
	// For ProblemUnknownGroup, the group that could not be found.
	Group GroupID
}

// Error implements [error].
func (e *StructuralIntegrityError) Error() string {
	switch e.Problem {
	case ProblemUnmatchedEnd:
		return fmt.Sprintf("document: unmatched end tag %v at element %d", e.Kind, e.Index)
	case ProblemMismatchedEnd:
		return fmt.Sprintf("document: expected end tag %v, got %v at element %d", e.Expected, e.Kind, e.Index)
	case ProblemUnclosed:
		return fmt.Sprintf("document: unclosed start tag %v", e.Kind)
	case ProblemUnknownGroup:
		return fmt.Sprintf("document: %v refers to group %v, which has not been printed", e.Kind, e.Group)
	case ProblemMalformedEntry:
		return fmt.Sprintf("document: expected entry in fill, got %v at element %d", e.Kind, e.Index)
	default:
		return fmt.Sprintf("document: malformed tags at element %d", e.Index)
	}
}

// MalformedBestFittingError is returned when a best-fitting element is
// constructed with fewer than two variants.
type MalformedBestFittingError struct {
	Variants int
}

// Error implements [error].
func (e *MalformedBestFittingError) Error() string {
	return fmt.Sprintf("document: best fitting element needs at least two variants, got %d", e.Variants)
}
