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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt/printer"
)

const listDoc = `"const" space "x" space "=" space
group { "[" indent { softline "1," line "2" } softline "]" }
`

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestConfig(t *testing.T) {
	// Not parallel: modifies the environment.
	t.Setenv("DOCFMT_LINE_WIDTH", "100")
	t.Setenv("DOCFMT_INDENT_STYLE", "Tabs")

	envFile := filepath.Join(t.TempDir(), "docfmt.env")
	writeFile(t, envFile, "DOCFMT_MAX_PARALLELISM=3\n")
	t.Cleanup(func() { _ = os.Unsetenv("DOCFMT_MAX_PARALLELISM") })

	cfg, err := ParseConfig(&ConfigOptions{EnvFilePath: envFile})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxParallelism)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "doc", cfg.Extension)

	options, err := cfg.PrinterOptions()
	require.NoError(t, err)
	assert.Equal(t, printer.Options{
		LineWidth:   100,
		IndentWidth: 2,
		IndentStyle: printer.IndentTabs,
		LineEnding:  printer.LF,
	}, options)

	t.Setenv("DOCFMT_INDENT_STYLE", "wide")
	cfg, err = ParseConfig(nil)
	require.NoError(t, err)
	_, err = cfg.PrinterOptions()
	var config *printer.ConfigurationError
	require.ErrorAs(t, err, &config)
	assert.Equal(t, "IndentStyle", config.Field)

	t.Setenv("DOCFMT_PORT", "eighty")
	_, err = ParseConfig(nil)
	require.Error(t, err)

	_, err = ParseConfig(&ConfigOptions{EnvFilePath: filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, err)
}

func TestCollectInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.doc")
	b := filepath.Join(dir, "sub", "b.doc")
	writeFile(t, a, `"a"`)
	writeFile(t, b, `"b"`)
	writeFile(t, filepath.Join(dir, "sub", "b.doc.txt"), "b\n")

	paths, err := collectInputs([]string{b, dir, filepath.Join(dir, "*.doc")}, "doc")
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, paths)

	paths, err = collectInputs([]string{filepath.Join(dir, "**", "*.txt")}, "doc")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "sub", "b.doc.txt")}, paths)

	_, err = collectInputs([]string{filepath.Join(dir, "missing.doc")}, "doc")
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = collectInputs([]string{filepath.Join(dir, "*.yaml")}, "doc")
	require.Error(t, err)
}

func TestFmt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "list.doc")
	writeFile(t, path, listDoc)

	var out bytes.Buffer
	require.NoError(t, runFmt([]string{"-width", "10", path}, &out))
	assert.Equal(t, "const x = [\n  1,\n  2\n]\n", out.String())

	out.Reset()
	require.NoError(t, runFmt([]string{"-width", "10", "-style", "tabs", "-ending", "crlf", path}, &out))
	assert.Equal(t, "const x = [\r\n\t1,\r\n\t2\r\n]\r\n", out.String())

	require.NoError(t, runFmt([]string{"-write", "-width", "40", path}, io.Discard))
	written, err := os.ReadFile(outputPath(path))
	require.NoError(t, err)
	assert.Equal(t, "const x = [1, 2]\n", string(written))

	out.Reset()
	require.NoError(t, runFmt([]string{"-check", "-width", "40", dir}, &out))
	assert.Empty(t, out.String())

	out.Reset()
	err = runFmt([]string{"-check", "-width", "10", dir}, &out)
	require.EqualError(t, err, "1 file(s) have stale output")
	assert.Contains(t, out.String(), "-const x = [1, 2]\n")
	assert.Contains(t, out.String(), "+const x = [\n")

	require.Error(t, runFmt([]string{"-check", "-write", path}, io.Discard))
	require.Error(t, runFmt([]string{"-width", "1000", path}, io.Discard))
}

func TestFmtErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.doc"), `"ok"`)
	writeFile(t, filepath.Join(dir, "bad.doc"), `group {`)
	writeFile(t, filepath.Join(dir, "undefined.doc"), `use(missing)`)

	var out bytes.Buffer
	err := runFmt([]string{dir}, &out)
	require.EqualError(t, err, "2 file(s) had errors")
	assert.Equal(t, "# "+filepath.Join(dir, "good.doc")+"\nok\n", out.String())

	out.Reset()
	err = runCheck([]string{dir}, &out)
	require.EqualError(t, err, "2 file(s) had errors")
	assert.Equal(t, "checked 3 file(s)\n", out.String())

	out.Reset()
	require.NoError(t, runCheck([]string{filepath.Join(dir, "good.doc")}, &out))
}

func TestRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{"version"}, &out))
	assert.Contains(t, out.String(), "docfmt v"+version)

	out.Reset()
	assert.Equal(t, 0, run([]string{"help"}, &out))
	assert.Contains(t, out.String(), "Commands:")

	assert.Equal(t, 2, run(nil, io.Discard))
	assert.Equal(t, 2, run([]string{"frobnicate"}, io.Discard))
	assert.Equal(t, 1, run([]string{"fmt", "-bogus"}, io.Discard))
}
