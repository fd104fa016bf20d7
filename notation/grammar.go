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

// Package notation implements a small textual syntax for documents.
//
// A file is a sequence of items. A string literal is static text; anything
// else is a call, which names a builder from package document, optionally
// followed by arguments in parentheses and by brace-delimited bodies:
//
//	"const" space "x" space "=" space
//	group(id: list) {
//		"["
//		indent { softline "1," line "2" }
//		softline "]"
//	}
//	suffix { " # trailing" }
//
// Line comments start with a # outside of a string. See [Parse] for the
// available calls.
package notation

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	notationLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[(),:{}]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(notationLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

// File is the root of a parsed notation file.
type File struct {
	Pos   lexer.Position `parser:""`
	Items []*Item        `parser:"@@*"`
}

// Item is a single piece of content.
type Item struct {
	Pos  lexer.Position `parser:""`
	Text *string        `parser:"  @String"`
	Call *Call          `parser:"| @@"`
}

// Call is a call to a named builder.
type Call struct {
	Pos    lexer.Position `parser:""`
	Name   string         `parser:"@Ident"`
	Args   []*Arg         `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
	Bodies []*Body        `parser:"@@*"`
}

// Arg is an argument to a call, which is either positional or has a key.
type Arg struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"( @Ident ':' )?"`
	Int   *int           `parser:"(  @Int"`
	Str   *string        `parser:" | @String"`
	Ident *string        `parser:" | @Ident )"`
}

// Body is a brace-delimited sequence of items.
type Body struct {
	Pos   lexer.Position `parser:""`
	Items []*Item        `parser:"'{' @@* '}'"`
}

// ParseFile parses text into its syntax tree, without interpreting any calls.
func ParseFile(name, text string) (*File, error) {
	file, err := fileParser.ParseString(name, text)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return file, nil
}
