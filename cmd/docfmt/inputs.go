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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/btree"
)

// collectInputs expands the paths, directories and globs given on the command
// line into a sorted list of files, without duplicates.
//
// Directories are searched recursively for files ending in .extension. With
// no arguments, the current directory is searched.
func collectInputs(args []string, extension string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var inputs btree.Map[string, struct{}]
	add := func(path string) { inputs.Set(filepath.Clean(path), struct{}{}) }

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			matches, err := doublestar.Glob(os.DirFS(arg), "**/*."+extension, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("searching %s: %w", arg, err)
			}
			for _, match := range matches {
				add(filepath.Join(arg, filepath.FromSlash(match)))
			}

		case err == nil:
			add(arg)

		case errors.Is(err, fs.ErrNotExist) && isGlob(arg):
			if !doublestar.ValidatePathPattern(arg) {
				return nil, fmt.Errorf("invalid glob %q", arg)
			}
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("searching %s: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match %q", arg)
			}
			for _, match := range matches {
				add(match)
			}

		default:
			return nil, err
		}
	}

	paths := make([]string, 0, inputs.Len())
	inputs.Scan(func(path string, _ struct{}) bool {
		paths = append(paths, path)
		return true
	})
	return paths, nil
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// outputPath returns the path of the file recording the expected output of
// the document at path.
func outputPath(path string) string {
	return path + ".txt"
}
