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

package slicesx

import "iter"

// Queue is a first-in-first-out queue backed by a single slice.
//
// Popped slots are reclaimed once they make up at least half of the slice.
// A zero [Queue] is empty and ready to use.
type Queue[E any] struct {
	buf  []E
	head int // Index of the front element in buf.
}

// Len returns the number of queued elements.
func (q *Queue[E]) Len() int {
	return len(q.buf) - q.head
}

// Front returns a pointer to the element at the front of the queue, or nil
// if it is empty.
func (q *Queue[E]) Front() *E {
	if q.Len() == 0 {
		return nil
	}
	return &q.buf[q.head]
}

// PushBack pushes elements to the back of the queue.
func (q *Queue[E]) PushBack(v ...E) {
	if q.head > 0 && q.head >= len(q.buf)/2 {
		n := copy(q.buf, q.buf[q.head:])
		clear(q.buf[n:])
		q.buf = q.buf[:n]
		q.head = 0
	}
	q.buf = append(q.buf, v...)
}

// PopFront pops the element at the front of the queue.
func (q *Queue[E]) PopFront() (E, bool) {
	var z E
	if q.Len() == 0 {
		return z, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = z
	q.head++
	if q.head == len(q.buf) {
		q.buf, q.head = q.buf[:0], 0
	}
	return v, true
}

// Drain removes every element from the queue and returns them, front to back.
//
// The returned slice does not alias the queue's storage.
func (q *Queue[E]) Drain() []E {
	if q.Len() == 0 {
		return nil
	}
	out := append([]E(nil), q.buf[q.head:]...)
	q.Clear()
	return out
}

// Values returns an iterator over the elements of the queue, front to back.
func (q *Queue[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range q.buf[q.head:] {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear empties the queue, retaining its storage.
func (q *Queue[_]) Clear() {
	clear(q.buf)
	q.buf, q.head = q.buf[:0], 0
}
