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

import "strings"

var newlines = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// NormalizeNewlines replaces every CRLF, lone CR, LINE SEPARATOR and
// PARAGRAPH SEPARATOR in text with a single LF.
//
// The printer only recognizes LF as a newline within text, and replaces it
// with the configured line ending. Text taken from source should be passed
// through this function before it is pushed into a document.
func NormalizeNewlines(text string) string {
	if !strings.ContainsAny(text, "\r\u2028\u2029") {
		return text
	}
	return newlines.Replace(text)
}
