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

// Package docfmt prints formatting documents as text.
//
// The document model lives in package [document], and the printer that lays
// documents out within a line width lives in package [printer]. This package
// ties them together with package [notation], and formats many documents at
// once.
package docfmt

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/notation"
	"github.com/bufbuild/docfmt/printer"
)

// Formatter prints batches of documents with the same options.
type Formatter struct {
	// Options for the printer. The zero value uses the defaults described in
	// [printer.Options].
	Options printer.Options

	// The maximum number of documents to print at once. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// Format prints each of docs, returning the outputs in the same order.
//
// Documents are printed in parallel. The first error encountered, or the
// cancellation of ctx, stops any documents that have not started printing yet
// and is returned.
func (f *Formatter) Format(ctx context.Context, docs ...*document.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	p, err := printer.New(f.Options)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(docs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(f.parallelism())
	for i, doc := range docs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := p.Print(doc)
			if err != nil {
				return err
			}
			out[i] = text
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Formatter) parallelism() int {
	if f.MaxParallelism > 0 {
		return f.MaxParallelism
	}
	return min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
}

// Format prints a single document.
func Format(options printer.Options, doc *document.Document) (string, error) {
	return printer.Print(options, doc)
}

// FormatAll is a shorthand for [Formatter.Format] with the given options.
func FormatAll(ctx context.Context, options printer.Options, docs ...*document.Document) ([]string, error) {
	f := Formatter{Options: options}
	return f.Format(ctx, docs...)
}

// FormatText parses text with [notation.Parse] and prints the resulting
// document. name is used in the positions of syntax errors.
func FormatText(options printer.Options, name, text string) (string, error) {
	p, err := printer.New(options)
	if err != nil {
		return "", err
	}
	doc, err := notation.Parse(name, text)
	if err != nil {
		return "", err
	}
	return p.Print(doc)
}
