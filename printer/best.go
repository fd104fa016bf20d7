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

import "github.com/bufbuild/docfmt/document"

// bestFitting prints the first variant of best that fits, or else its most
// expanded variant.
//
// Variants other than the last are measured flat, and every one of their
// lines must fit. Only the chosen variant is printed.
func (s *state) bestFitting(best *document.BestFittingElement, args args) {
	if args.mode == document.Flat && s.flatVerified {
		// Everything on this line was already measured with the most flat
		// variant in place.
		s.queue.pushOwned(&s.stack, document.TagEntry, args, best.MostFlat())
		return
	}

	measured := args.withMode(document.Flat)
	measured.measure = allLines

	variants := best.Variants()
	for _, variant := range variants[:len(variants)-1] {
		fits := s.fits(measurement{
			frame:    frame{kind: document.TagEntry, args: measured},
			elements: variant,
			owned:    true,
		})
		if fits {
			s.flatVerified = true
			s.queue.pushOwned(&s.stack, document.TagEntry, args.withMode(document.Flat), variant)
			return
		}
	}

	s.queue.pushOwned(&s.stack, document.TagEntry, args.withMode(document.Expanded), best.MostExpanded())
}
