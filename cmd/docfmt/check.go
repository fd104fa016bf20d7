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
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bufbuild/docfmt/notation"
)

// runCheck implements the check subcommand, which parses each document and
// checks that its tags are balanced, without printing it.
func runCheck(args []string, stdout io.Writer) error {
	flags, common := newFlagSet("check")
	cfg, err := common.parse(flags, args)
	if err != nil {
		return err
	}

	paths, err := collectInputs(flags.Args(), cfg.Extension)
	if err != nil {
		return err
	}

	var failed int
	for _, path := range paths {
		if err := checkFile(path); err != nil {
			log.WithField("path", path).Error(err)
			failed++
		}
	}

	fmt.Fprintf(stdout, "checked %d file(s)\n", len(paths))
	if failed > 0 {
		return fmt.Errorf("%d file(s) had errors", failed)
	}
	return nil
}

func checkFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := notation.Parse(path, string(text))
	if err != nil {
		return err
	}
	return doc.Validate()
}
