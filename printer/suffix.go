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
	"slices"

	"github.com/bufbuild/docfmt/document"
)

// suffix is the content of a line suffix, deferred until the end of the line.
type suffix struct {
	args     args
	elements []document.Element
}

// deferSuffix queues the line suffix whose start tag was just reached.
func (s *state) deferSuffix(args args) error {
	content, err := s.queue.region(document.TagLineSuffix)
	if err != nil {
		return err
	}
	s.suffixes.PushBack(suffix{args: args, elements: content})
	return nil
}

// flushSuffixes schedules every pending line suffix to be printed next, in the
// order they were deferred, each in the frame it was deferred from.
func (s *state) flushSuffixes() {
	for _, v := range slices.Backward(s.suffixes.Drain()) {
		s.queue.pushOwned(&s.stack, document.TagLineSuffix, v.args, v.elements)
	}
}
