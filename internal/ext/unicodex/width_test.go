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

package unicodex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt/internal/ext/unicodex"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		column, tabstop int
		text            string
		want            int
	}{
		{0, 4, "", 0},
		{0, 4, "hello", 5},
		{3, 4, "abc", 6},
		{0, 4, "\t", 4},
		{1, 4, "\t", 4},
		{4, 4, "\tx", 9},
		{0, 2, "a\tb", 3},
		{0, 0, "\t", unicodex.DefaultTabstop},
		{0, 4, "日本", 4},
		{0, 4, "é", 1},
		{0, 4, "👍🏽", 2},
	}

	for _, test := range tests {
		got := unicodex.Advance(test.column, test.tabstop, test.text)
		assert.Equal(t, test.want, got, "Advance(%d, %d, %q)", test.column, test.tabstop, test.text)
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := unicodex.Width{Tabstop: 2, Out: &out}

	_, err := w.WriteString("ab")
	require.NoError(t, err)
	_, err = w.WriteString("\tc")
	require.NoError(t, err)
	assert.Equal(t, 5, w.Column)

	require.NoError(t, w.Newline("\r\n"))
	assert.Equal(t, 0, w.Column)
	assert.Equal(t, "ab\tc\r\n", out.String())
}
