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

package notation

import (
	"slices"
	"strconv"
	"strings"
)

// argSpec describes the arguments a region call accepts.
type argSpec struct {
	flags []string // Bare identifiers that switch an option on.
	id    bool     // Accepts id: name.
	count bool     // Requires a positional integer.
	name  bool     // Requires a positional name, as an identifier or string.
}

var regions = map[string]argSpec{
	"group":          {flags: []string{"expand"}, id: true},
	"indent":         {},
	"dedent":         {flags: []string{"root"}},
	"align":          {count: true},
	"indentifbreaks": {id: true},
	"ifbreaks":       {id: true},
	"iffits":         {id: true},
	"suffix":         {},
	"label":          {name: true},
	"let":            {name: true},
}

// callArgs are the arguments of a region call, after checking them against
// an argSpec.
type callArgs struct {
	flags map[string]bool
	id    string
	count int
	name  string
}

func (c *Call) parseArgs(spec argSpec) (callArgs, error) {
	out := callArgs{flags: make(map[string]bool)}
	var haveCount, haveName bool
	for _, arg := range c.Args {
		switch {
		case arg.Key == "id" && spec.id:
			name, err := arg.name()
			if err != nil {
				return out, err
			}
			out.id = name

		case arg.Key != "":
			return out, errorf(arg.Pos, "%s does not take argument %q", c.Name, arg.Key)

		case arg.Int != nil && spec.count && !haveCount:
			out.count = *arg.Int
			haveCount = true

		case arg.Ident != nil && slices.Contains(spec.flags, *arg.Ident):
			out.flags[*arg.Ident] = true

		case (arg.Ident != nil || arg.Str != nil) && spec.name && !haveName:
			out.name, _ = arg.name()
			haveName = true

		default:
			return out, errorf(arg.Pos, "unexpected argument %s to %s", arg, c.Name)
		}
	}

	switch {
	case spec.count && !haveCount:
		return out, errorf(c.Pos, "%s needs a column count", c.Name)
	case spec.name && !haveName:
		return out, errorf(c.Pos, "%s needs a name", c.Name)
	}
	return out, nil
}

// expect checks that c has exactly the given number of positional arguments
// and bodies.
func (c *Call) expect(args, bodies int) error {
	switch {
	case len(c.Args) != args:
		return errorf(c.Pos, "%s takes %d arguments, got %d", c.Name, args, len(c.Args))
	case len(c.Bodies) != bodies:
		return errorf(c.Pos, "%s takes %d bodies, got %d", c.Name, bodies, len(c.Bodies))
	}
	for _, arg := range c.Args {
		if arg.Key != "" {
			return errorf(arg.Pos, "%s does not take argument %q", c.Name, arg.Key)
		}
	}
	return nil
}

// String implements [fmt.Stringer].
func (a *Arg) String() string {
	var b strings.Builder
	if a.Key != "" {
		b.WriteString(a.Key)
		b.WriteString(": ")
	}
	switch {
	case a.Int != nil:
		b.WriteString(strconv.Itoa(*a.Int))
	case a.Str != nil:
		b.WriteString(strconv.Quote(*a.Str))
	case a.Ident != nil:
		b.WriteString(*a.Ident)
	}
	return b.String()
}

func (a *Arg) integer() (int, error) {
	if a.Int == nil {
		return 0, errorf(a.Pos, "expected an integer, got %s", a)
	}
	return *a.Int, nil
}

func (a *Arg) text() (string, error) {
	if a.Str == nil {
		return "", errorf(a.Pos, "expected a string, got %s", a)
	}
	return *a.Str, nil
}

// name returns an argument that names something, which may be written as an
// identifier or as a string.
func (a *Arg) name() (string, error) {
	switch {
	case a.Ident != nil:
		return *a.Ident, nil
	case a.Str != nil:
		return *a.Str, nil
	default:
		return "", errorf(a.Pos, "expected a name, got %s", a)
	}
}
