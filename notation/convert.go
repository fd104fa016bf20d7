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
	"github.com/bufbuild/docfmt/document"
)

// Parse parses text as a document. name is used in error positions.
//
// The following calls are available. Calls without bodies must not be given
// any; arguments shown in brackets are optional.
//
//	space, hardspace, softline, line, hardline, emptyline,
//	expandparent, boundary
//	dyn("text"), src(offset, "text")
//	group[(expand, id: name)] { ... }
//	indent { ... }, dedent[(root)] { ... }, align(n) { ... }
//	indentifbreaks(id: name) { ... }
//	ifbreaks[(id: name)] { ... }, iffits[(id: name)] { ... }
//	suffix { ... }, label(name) { ... }
//	fill { separator } { item } { item } ...
//	best { most flat } ... { most expanded }
//	let(name) { ... }, use(name)
//
// line is a soft line break that prints as a space when flat. Group IDs are
// scoped to a single call to Parse, as are the names defined by let, which
// interns its body so that use can reference it any number of times.
//
// Syntax errors and misused calls are reported as an [*Error]. Errors from
// building the document, such as a [*document.MalformedBestFittingError],
// are returned as-is.
func Parse(name, text string) (*document.Document, error) {
	file, err := ParseFile(name, text)
	if err != nil {
		return nil, err
	}

	c := converter{
		groups: make(map[string]document.GroupID),
		shared: make(map[string]document.Interned),
	}
	content, err := c.items(file.Items)
	if err != nil {
		return nil, err
	}
	return document.Build(func(push document.Sink) { push(content...) })
}

// converter converts a syntax tree into document content.
type converter struct {
	groups map[string]document.GroupID
	shared map[string]document.Interned
}

func (c *converter) items(items []*Item) ([]document.Content, error) {
	out := make([]document.Content, 0, len(items))
	for _, item := range items {
		if item.Text != nil {
			out = append(out, document.Text(*item.Text))
			continue
		}

		content, err := c.call(item.Call)
		if err != nil {
			return nil, err
		}
		if content != nil {
			out = append(out, content)
		}
	}
	return out, nil
}

// body converts a body into a callback suitable for a region builder.
func (c *converter) body(body *Body) (func(document.Sink), error) {
	content, err := c.items(body.Items)
	if err != nil {
		return nil, err
	}
	return func(push document.Sink) { push(content...) }, nil
}

// concat converts a body into a single piece of content.
func (c *converter) concat(body *Body) (document.Content, error) {
	content, err := c.items(body.Items)
	if err != nil {
		return nil, err
	}
	return document.Concat(content...), nil
}

// group returns the ID for the given name, allocating one on first use.
func (c *converter) group(name string) document.GroupID {
	id, ok := c.groups[name]
	if !ok {
		id = document.NewGroupID(name)
		c.groups[name] = id
	}
	return id
}

func (c *converter) call(call *Call) (document.Content, error) {
	if leaf, ok := leaves[call.Name]; ok {
		if err := call.expect(0, 0); err != nil {
			return nil, err
		}
		return leaf(), nil
	}

	switch call.Name {
	case "dyn":
		if err := call.expect(1, 0); err != nil {
			return nil, err
		}
		text, err := call.Args[0].text()
		if err != nil {
			return nil, err
		}
		return document.DynamicText(text), nil

	case "src":
		if err := call.expect(2, 0); err != nil {
			return nil, err
		}
		offset, err := call.Args[0].integer()
		if err != nil {
			return nil, err
		}
		text, err := call.Args[1].text()
		if err != nil {
			return nil, err
		}
		return document.LocatedText(offset, text), nil

	case "use":
		if err := call.expect(1, 0); err != nil {
			return nil, err
		}
		name, err := call.Args[0].name()
		if err != nil {
			return nil, err
		}
		shared, ok := c.shared[name]
		if !ok {
			return nil, errorf(call.Pos, "use of undefined name %q", name)
		}
		return document.Reference(shared), nil

	case "fill":
		if len(call.Args) > 0 {
			return nil, errorf(call.Pos, "fill takes no arguments")
		}
		if len(call.Bodies) < 1 {
			return nil, errorf(call.Pos, "fill needs a separator body")
		}
		separator, err := c.concat(call.Bodies[0])
		if err != nil {
			return nil, err
		}
		items := make([]document.Content, 0, len(call.Bodies)-1)
		for _, body := range call.Bodies[1:] {
			item, err := c.concat(body)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return document.Fill(separator, items...), nil

	case "best":
		if len(call.Args) > 0 {
			return nil, errorf(call.Pos, "best takes no arguments")
		}
		variants := make([]func(document.Sink), 0, len(call.Bodies))
		for _, body := range call.Bodies {
			variant, err := c.body(body)
			if err != nil {
				return nil, err
			}
			variants = append(variants, variant)
		}
		return document.BestFitting(variants...), nil
	}

	return c.region(call)
}

// region converts a call that takes exactly one body.
func (c *converter) region(call *Call) (document.Content, error) {
	if _, ok := regions[call.Name]; !ok {
		return nil, errorf(call.Pos, "unknown call %q", call.Name)
	}
	if len(call.Bodies) != 1 {
		return nil, errorf(call.Pos, "%s takes exactly one body, got %d", call.Name, len(call.Bodies))
	}
	body, err := c.body(call.Bodies[0])
	if err != nil {
		return nil, err
	}
	args, err := call.parseArgs(regions[call.Name])
	if err != nil {
		return nil, err
	}

	switch call.Name {
	case "group":
		options := document.GroupOptions{Expand: args.flags["expand"]}
		if args.id != "" {
			options.ID = c.group(args.id)
		}
		return document.GroupWith(options, body), nil

	case "indent":
		return document.Indent(body), nil

	case "dedent":
		if args.flags["root"] {
			return document.DedentToRoot(body), nil
		}
		return document.Dedent(body), nil

	case "align":
		return document.Align(args.count, body), nil

	case "indentifbreaks":
		if args.id == "" {
			return nil, errorf(call.Pos, "indentifbreaks needs an id")
		}
		return document.IndentIfGroupBreaks(c.group(args.id), body), nil

	case "ifbreaks":
		if args.id == "" {
			return document.IfGroupBreaks(body), nil
		}
		return document.IfGroupBreaksOn(c.group(args.id), body), nil

	case "iffits":
		if args.id == "" {
			return document.IfGroupFits(body), nil
		}
		return document.IfGroupFitsOn(c.group(args.id), body), nil

	case "suffix":
		return document.LineSuffix(body), nil

	case "label":
		return document.Labelled(document.Label(args.name), body), nil

	case "let":
		shared := document.Intern(body)
		if err := shared.Err(); err != nil {
			return nil, err
		}
		c.shared[args.name] = shared
		return nil, nil
	}

	return nil, errorf(call.Pos, "unknown call %q", call.Name)
}

var leaves = map[string]func() document.Content{
	"space":        document.Space,
	"hardspace":    document.HardSpace,
	"softline":     document.SoftLine,
	"line":         document.SoftLineOrSpace,
	"hardline":     document.HardLine,
	"emptyline":    document.EmptyLine,
	"expandparent": document.ExpandParent,
	"boundary":     document.LineSuffixBoundary,
}
