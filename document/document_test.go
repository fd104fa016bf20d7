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

package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt/document"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	doc, err := document.Build(func(push document.Sink) {
		push(
			document.Text("const"),
			document.Space(),
			document.Text(""),
			document.Align(0, func(push document.Sink) {
				push(document.Text("x"))
			}),
		)
	})
	require.NoError(t, err)

	kinds := make([]document.Kind, 0, doc.Len())
	for _, e := range doc.Elements() {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []document.Kind{document.KindText, document.KindSpace, document.KindText}, kinds)
	assert.NoError(t, doc.Validate())

	var empty *document.Document
	assert.Equal(t, 0, empty.Len())
	assert.NoError(t, empty.Validate())
}

func TestBuildStructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elements []document.Element
		want     document.StructuralIntegrityError
	}{
		{
			name:     "unclosed",
			elements: []document.Element{document.OpenTag(document.TagGroup)},
			want: document.StructuralIntegrityError{
				Problem: document.ProblemUnclosed,
				Kind:    document.TagGroup,
				Index:   1,
			},
		},
		{
			name:     "unmatched",
			elements: []document.Element{document.CloseTag(document.TagIndent)},
			want: document.StructuralIntegrityError{
				Problem: document.ProblemUnmatchedEnd,
				Kind:    document.TagIndent,
			},
		},
		{
			name: "mismatched",
			elements: []document.Element{
				document.OpenTag(document.TagGroup),
				document.CloseTag(document.TagIndent),
			},
			want: document.StructuralIntegrityError{
				Problem:  document.ProblemMismatchedEnd,
				Kind:     document.TagIndent,
				Expected: document.TagGroup,
				Index:    1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := document.Build(func(push document.Sink) {
				push(document.Raw(test.elements...))
			})
			var structural *document.StructuralIntegrityError
			require.ErrorAs(t, err, &structural)
			assert.Equal(t, test.want, *structural)

			// Unvalidated documents report the same problem on request.
			assert.ErrorAs(t, document.New(test.elements...).Validate(), &structural)
		})
	}
}

func TestBestFittingVariants(t *testing.T) {
	t.Parallel()

	_, err := document.Build(func(push document.Sink) {
		push(document.BestFitting(func(push document.Sink) {
			push(document.Text("only"))
		}))
	})
	var malformed *document.MalformedBestFittingError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Variants)

	_, err = document.NewBestFitting()
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Variants)

	raw := [][]document.Element{
		{document.OpenTag(document.TagGroup), document.CloseTag(document.TagGroup)},
		{document.OpenTag(document.TagGroup), document.CloseTag(document.TagGroup)},
	}
	best, err := document.NewBestFitting(raw...)
	require.NoError(t, err)
	assert.Len(t, best.Variants(), 2)
	assert.Equal(t, raw[0], best.MostFlat())
}

func TestPropagateExpand(t *testing.T) {
	t.Parallel()

	mode := func(t *testing.T, doc *document.Document, index int) document.GroupMode {
		t.Helper()
		tag, ok := doc.Elements()[index].Tag()
		require.True(t, ok)
		require.Equal(t, document.TagGroup, tag.Kind())
		return tag.GroupMode()
	}

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.Text("a"), document.Group(func(push document.Sink) {
					push(document.Text("b"), document.HardLine())
				}))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 0))
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 2))
	})

	t.Run("explicit", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.GroupWith(document.GroupOptions{Expand: true}, nil))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 0))
		assert.Equal(t, document.GroupExpand, mode(t, doc, 1))
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.Text("a\nb"))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 0))
	})

	t.Run("fill", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.Fill(document.SoftLineOrSpace(), document.Text("a"), document.HardLine()))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 0))
	})

	t.Run("group-in-line-suffix", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.Text("a"), document.LineSuffix(func(push document.Sink) {
					push(document.Group(func(push document.Sink) {
						push(document.Text("b"), document.HardLine())
					}))
				}))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupFlat, mode(t, doc, 0))
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 3))
		assert.False(t, document.WillBreak(doc.Elements()))
	})

	t.Run("best-fitting", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.BestFitting(
					func(push document.Sink) { push(document.Text("a")) },
					func(push document.Sink) { push(document.HardLine()) },
				))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupFlat, mode(t, doc, 0))

		doc, err = document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.BestFitting(
					func(push document.Sink) { push(document.ExpandParent()) },
					func(push document.Sink) { push(document.HardLine()) },
				))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 0))
	})

	t.Run("interned", func(t *testing.T) {
		t.Parallel()
		shared := document.Intern(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.EmptyLine())
			}))
		})
		require.NoError(t, shared.Err())

		doc, err := document.Build(func(push document.Sink) {
			push(document.Group(func(push document.Sink) {
				push(document.Reference(shared))
			}))
		})
		require.NoError(t, err)
		assert.Equal(t, document.GroupPropagated, mode(t, doc, 0))
	})

	t.Run("line-suffix", func(t *testing.T) {
		t.Parallel()
		doc, err := document.Build(func(push document.Sink) {
			push(document.LineSuffix(func(push document.Sink) {
				push(document.Text("// a\nb"))
			}))
		})
		require.NoError(t, err)
		assert.False(t, document.WillBreak(doc.Elements()))
	})
}

func TestInterned(t *testing.T) {
	t.Parallel()

	content := func(push document.Sink) { push(document.Text("x")) }
	a := document.Intern(content)
	b := document.Intern(content)
	assert.Equal(t, a.Elements(), b.Elements())
	assert.True(t, a != b)

	doc, err := document.Build(func(push document.Sink) {
		push(document.Reference(a), document.Reference(a), document.Reference(document.Interned{}))
	})
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	first, _ := doc.Elements()[0].Interned()
	second, _ := doc.Elements()[1].Interned()
	assert.True(t, first == second)
	assert.True(t, first == a)

	broken := document.Intern(func(push document.Sink) {
		push(document.Raw(document.OpenTag(document.TagIndent)))
	})
	require.Error(t, broken.Err())
	_, err = document.Build(func(push document.Sink) {
		push(document.Reference(broken))
	})
	assert.Equal(t, broken.Err(), err)
}

func TestQueries(t *testing.T) {
	t.Parallel()

	label := document.Label("member-chain")
	assert.Equal(t, label, document.Label("member-chain"))
	assert.NotEqual(t, label, document.Label("call-arguments"))
	assert.Equal(t, "member-chain", label.Name())

	id := document.NewGroupID("args")
	assert.NotEqual(t, id, document.NewGroupID("args"))
	assert.Equal(t, "args", id.Name())
	assert.True(t, document.GroupID{}.IsZero())

	labelled := document.Intern(func(push document.Sink) {
		push(document.Labelled(label, func(push document.Sink) {
			push(document.GroupWith(document.GroupOptions{ID: id}, func(push document.Sink) {
				push(document.Text("a"), document.SoftLine(), document.Group(nil))
			}))
		}))
	})
	require.NoError(t, labelled.Err())

	doc, err := document.Build(func(push document.Sink) { push(document.Reference(labelled)) })
	require.NoError(t, err)

	assert.True(t, document.HasLabel(doc.Elements(), label))
	assert.False(t, document.HasLabel(doc.Elements(), document.Label("other")))
	assert.False(t, document.HasLabel(nil, label))

	_, ok := document.EndTag(doc.Elements(), document.TagLabelled)
	assert.True(t, ok)
	_, ok = document.EndTag(doc.Elements(), document.TagGroup)
	assert.False(t, ok)

	inner := labelled.Elements()[1 : len(labelled.Elements())-1]
	start, ok := document.StartTag(inner, document.TagGroup)
	require.True(t, ok)
	assert.Equal(t, id, start.GroupID())
	assert.True(t, start.IsStart())

	assert.False(t, document.MayDirectlyBreak(doc.Elements()))
	assert.True(t, document.MayDirectlyBreak(inner))
	assert.False(t, document.WillBreak(inner))
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc\nd\ne", document.NormalizeNewlines("a\r\nb\rc\u2028d\u2029e"))
	assert.Equal(t, "a\n\nb", document.NormalizeNewlines("a\r\r\nb"))
	assert.Equal(t, "plain", document.NormalizeNewlines("plain"))
}

func TestString(t *testing.T) {
	t.Parallel()

	doc, err := document.Build(func(push document.Sink) {
		push(document.Group(func(push document.Sink) {
			push(document.Text("a"), document.SoftLine())
			push(document.Labelled(document.Label("tail"), func(push document.Sink) {
				push(document.LocatedText(4, "b"))
			}))
		}))
	})
	require.NoError(t, err)

	assert.Equal(t, `<group>
  text("a")
  line(soft)
  <labelled label="tail">
    located-text(4, "b")
  </labelled>
</group>
`, doc.String())
}
