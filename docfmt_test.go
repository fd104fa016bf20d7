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

package docfmt_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt"
	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/notation"
	"github.com/bufbuild/docfmt/printer"
)

const list = `"[" group { indent { softline "1," line "2," line "3" } softline } "]"`

func TestFormatAll(t *testing.T) {
	t.Parallel()

	var docs []*document.Document
	var want []string
	for i := range 20 {
		doc, err := notation.Parse("list", fmt.Sprintf(`"%d: " %s`, i, list))
		require.NoError(t, err)
		docs = append(docs, doc)

		// Labels with two digits push the list past the line width.
		if i < 10 {
			want = append(want, fmt.Sprintf("%d: [1, 2, 3]", i))
		} else {
			want = append(want, fmt.Sprintf("%d: [\n  1,\n  2,\n  3\n]", i))
		}
	}

	f := docfmt.Formatter{Options: printer.Options{LineWidth: 12}, MaxParallelism: 3}
	got, err := f.Format(context.Background(), docs...)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}

	got, err = docfmt.FormatAll(context.Background(), printer.Options{LineWidth: 12}, docs...)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = docfmt.FormatAll(context.Background(), printer.Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatAllErrors(t *testing.T) {
	t.Parallel()

	doc, err := notation.Parse("list", list)
	require.NoError(t, err)

	_, err = docfmt.FormatAll(context.Background(), printer.Options{LineWidth: -1}, doc)
	var config *printer.ConfigurationError
	require.ErrorAs(t, err, &config)
	assert.Equal(t, "LineWidth", config.Field)

	broken := document.New(document.OpenTag(document.TagIndent))
	_, err = docfmt.FormatAll(context.Background(), printer.Options{}, doc, broken, doc)
	var structural *document.StructuralIntegrityError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, document.ProblemUnclosed, structural.Problem)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = docfmt.FormatAll(ctx, printer.Options{}, doc)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	doc, err := notation.Parse("list", list)
	require.NoError(t, err)
	out, err := docfmt.Format(printer.Options{LineWidth: 5, IndentStyle: printer.IndentTabs}, doc)
	require.NoError(t, err)
	assert.Equal(t, "[\n\t1,\n\t2,\n\t3\n]", out)

	out, err = docfmt.FormatText(printer.Options{}, "list", list)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", out)

	_, err = docfmt.FormatText(printer.Options{}, "bad", `group {`)
	var nerr *notation.Error
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "bad", nerr.Pos.Filename)
}
