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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pmezard/go-difflib/difflib"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/docfmt"
	"github.com/bufbuild/docfmt/printer"
)

// runFmt implements the fmt subcommand.
//
// By default, each document is printed to stdout. With -write, each output is
// written next to its document instead; with -check, outputs are compared
// against those files, and a diff is printed for each one that differs.
func runFmt(args []string, stdout io.Writer) error {
	flags, common := newFlagSet("fmt")
	check := flags.Bool("check", false, "compare outputs against existing .txt files")
	write := flags.Bool("write", false, "write outputs to .txt files")

	cfg, err := common.parse(flags, args)
	if err != nil {
		return err
	}
	if *check && *write {
		return errors.New("-check and -write are mutually exclusive")
	}
	options, err := cfg.PrinterOptions()
	if err != nil {
		return err
	}

	paths, err := collectInputs(flags.Args(), cfg.Extension)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .%s files found", cfg.Extension)
	}

	var failed, stale int
	for _, res := range formatFiles(options, paths, cfg.MaxParallelism) {
		logger := log.WithField("path", res.path)
		if res.err != nil {
			logger.Error(res.err)
			failed++
			continue
		}

		switch {
		case *check:
			want, err := os.ReadFile(outputPath(res.path))
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Error(err)
				failed++
				continue
			}
			if diff := diffOutput(res.path, res.output, string(want)); diff != "" {
				fmt.Fprint(stdout, diff)
				stale++
			}

		case *write:
			if err := os.WriteFile(outputPath(res.path), []byte(res.output), 0o644); err != nil {
				logger.Error(err)
				failed++
				continue
			}
			logger.Debug("wrote output")

		default:
			if len(paths) > 1 {
				fmt.Fprintf(stdout, "# %s\n", res.path)
			}
			fmt.Fprint(stdout, res.output)
		}
	}

	switch {
	case failed > 0:
		return fmt.Errorf("%d file(s) had errors", failed)
	case stale > 0:
		return fmt.Errorf("%d file(s) have stale output", stale)
	}
	return nil
}

// result is the outcome of formatting a single file.
type result struct {
	path   string
	output string
	err    error
}

// formatFiles prints each of the documents at paths, in parallel.
//
// Outputs end in a line break, unless they are empty.
func formatFiles(options printer.Options, paths []string, parallelism int) []result {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(-1)
	}

	results := make([]result, len(paths))
	var group errgroup.Group
	group.SetLimit(parallelism)
	for i, path := range paths {
		group.Go(func() error {
			results[i] = formatFile(options, path)
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func formatFile(options printer.Options, path string) result {
	text, err := os.ReadFile(path)
	if err != nil {
		return result{path: path, err: err}
	}

	out, err := docfmt.FormatText(options, path, string(text))
	if err != nil {
		return result{path: path, err: err}
	}
	if out != "" {
		out += options.LineEnding.Newline()
	}
	return result{path: path, output: out}
}

// diffOutput returns a unified diff from want to got, or the empty string if
// they are equal.
func diffOutput(path, got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: outputPath(path),
		ToFile:   path,
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
