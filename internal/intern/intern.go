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

// Package intern provides an interning table for the names that label
// regions of a document.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is a string interned in a [Table]. The zero ID is the empty string.
type ID int32

// String implements [fmt.Stringer]. It prints the ID's number, not the
// string it stands for; use [Table.Value] for that.
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", int32(id))
}

// Table maps strings to [ID]s and back.
//
// Its methods may be called concurrently. The zero value is ready to use.
type Table struct {
	mu    sync.RWMutex
	ids   map[string]ID
	names []string // names[id-1] is the string for id.
}

// Intern returns the ID for s, assigning a new one if s has not been seen.
func (t *Table) Intern(s string) ID {
	if id, ok := t.Query(s); ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[s]; ok {
		return id
	}
	if len(t.names) == 1<<31-1 {
		panic("intern: table is full")
	}

	// Labels usually come from larger buffers; don't keep those alive.
	s = strings.Clone(s)
	t.names = append(t.names, s)
	id := ID(len(t.names))
	if t.ids == nil {
		t.ids = make(map[string]ID)
	}
	t.ids[s] = id
	return id
}

// Query returns the ID for s, if s has been interned. The empty string is
// always interned.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.ids[s]
	return id, ok
}

// Value returns the string id stands for. It panics if id did not come from
// this table.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || int(id) > len(t.names) {
		panic(fmt.Sprintf("intern: %v is not in this table", id))
	}
	return t.names[id-1]
}

// Len returns the number of distinct non-empty strings in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}
