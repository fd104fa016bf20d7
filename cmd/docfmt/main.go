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

// Command docfmt prints documents written in notation syntax.
//
// Usage:
//
//	docfmt fmt [flags] [path...]      Print documents
//	docfmt check [flags] [path...]    Check that documents are well-formed
//	docfmt serve [flags]              Serve the printer over HTTP
//	docfmt version                    Print version information
//
// Paths may be files, directories, or doublestar globs such as "docs/**/*.doc".
// Directories are searched recursively for files with the configured
// extension.
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const version = "0.1.0"

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
)

const usage = `docfmt - width-aware document printer

Usage:
  docfmt <command> [flags] [path...]

Commands:
  fmt         Print documents, or check them against their expected output
  check       Check that documents parse and their tags are balanced
  serve       Serve POST /v1/format over HTTP
  version     Print version information
  help        Show this help message

Common flags:
  -envfile path   Load DOCFMT_* variables from a file first
  -width n        Maximum line width (DOCFMT_LINE_WIDTH)
  -indent n       Columns per indentation level (DOCFMT_INDENT_WIDTH)
  -style s        Indentation style: spaces or tabs (DOCFMT_INDENT_STYLE)
  -ending s       Line ending: lf, crlf or cr (DOCFMT_LINE_ENDING)

Examples:
  docfmt fmt ./docs                Print every .doc file under ./docs
  docfmt fmt -write 'docs/**/*.doc' Write each output next to its input, as .txt
  docfmt fmt -check ./docs         Report inputs whose .txt output is stale
  docfmt serve -port 8080          Start the HTTP service
`

func init() {
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run runs the command named by args[0], and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	command, args := args[0], args[1:]
	var err error
	switch command {
	case "fmt":
		err = runFmt(args, stdout)
	case "check":
		err = runCheck(args, stdout)
	case "serve":
		err = runServe(args)
	case "version":
		fmt.Fprintf(stdout, "docfmt v%s built on %s from sha1 %s\n", version, buildTime, sha1ver)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		return 2
	}

	if err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
