// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"fillmore-labs.com/patchguard/internal/patch"
)

// Prefix starts every directive.
const Prefix = "//harmony:"

//go:generate go tool stringer -type Verb -linecomment

// Verb is the kind of a directive.
type Verb uint8

const (
	// InvalidVerb is an unknown directive.
	InvalidVerb Verb = iota // invalid

	// PatchVerb declares a patch class or target.
	PatchVerb // patch

	// KindVerb asserts the patch kind of a method.
	KindVerb // kind

	// TargetMethodVerb marks a provider of one target method.
	TargetMethodVerb // targetmethod

	// TargetMethodsVerb marks a provider of several target methods.
	TargetMethodsVerb // targetmethods
)

// Directive is a parsed directive comment.
type Directive struct {
	Verb     Verb
	Kind     patch.Kind      // for [KindVerb]
	Fragment *patch.Fragment // for [PatchVerb] and [KindVerb]
	Errors   []Error
}

// Parameterized reports whether a patch directive asserts any value.
func (d Directive) Parameterized() bool {
	return d.Verb == PatchVerb && d.Fragment != nil && len(d.Fragment.Args) > 0
}

// Error is an invalid part of a directive.
type Error struct {
	Pos, End token.Pos
	Message  string
}

// Resolver evaluates a type expression.
type Resolver func(expr string) (types.Type, error)

var errNotAType = errors.New("not a type")

// EvalResolver evaluates type expressions in the scope enclosing pos.
func EvalResolver(fset *token.FileSet, pkg *types.Package, pos token.Pos) Resolver {
	return func(expr string) (types.Type, error) {
		tv, err := types.Eval(fset, pkg, pos, expr)
		if err != nil {
			return nil, err
		}

		if !tv.IsType() {
			return nil, fmt.Errorf("%s: %w", expr, errNotAType)
		}

		return tv.Type, nil
	}
}

// IsDirective reports whether c is a //harmony: directive.
func IsDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, Prefix)
}

// Parse parses a directive comment. It returns false when c is not a directive.
func Parse(c *ast.Comment, resolve Resolver) (Directive, bool) {
	if !IsDirective(c) {
		return Directive{}, false
	}

	p := parser{comment: c, resolve: resolve}

	return p.parse(), true
}

type parser struct {
	comment *ast.Comment
	resolve Resolver
	errors  []Error
}

func (p *parser) parse() Directive {
	text := p.comment.Text
	tokens := split(text, len(Prefix))

	if len(tokens) == 0 {
		p.errorf(len(Prefix), len(text), "missing directive")

		return Directive{Errors: p.errors}
	}

	verb, args := tokens[0], tokens[1:]

	var d Directive

	switch verb.text {
	case "patch":
		d.Verb = PatchVerb
		d.Fragment = patch.NewFragment(p.comment.Pos(), p.comment.End(), p.patchArgs(args)...)

		return p.finish(d)

	case "targetmethod":
		d.Verb = TargetMethodVerb

	case "targetmethods":
		d.Verb = TargetMethodsVerb

	default:
		kind, ok := kindVerb(verb.text)
		if !ok {
			p.errorf(verb.start, verb.end, "unknown directive %q", verb.text)

			return p.finish(d)
		}

		d.Verb, d.Kind = KindVerb, kind
		d.Fragment = patch.NewFragment(p.comment.Pos(), p.comment.End(),
			patch.Arg{Field: patch.PatchKindField, Value: patch.Scalar(kind)})
	}

	for _, a := range args {
		p.errorf(a.start, a.end, "unexpected argument %q", a.text)
	}

	return p.finish(d)
}

func (p *parser) finish(d Directive) Directive {
	d.Errors = p.errors

	return d
}

func kindVerb(verb string) (patch.Kind, bool) {
	for _, k := range patch.Kinds {
		if strings.EqualFold(k.String(), verb) {
			return k, true
		}
	}

	return patch.UnknownKind, false
}

func (p *parser) patchArgs(tokens []span) []patch.Arg {
	var (
		args       []patch.Arg
		positional int
	)

	for _, t := range tokens {
		key, value, ok := strings.Cut(t.text, "=")
		if !ok {
			switch positional {
			case 0:
				args = append(args, patch.Arg{Field: patch.TargetTypeField, Value: p.typeValue(t, t.text, 0)})
			case 1:
				args = append(args, patch.Arg{Field: patch.MemberNameField, Value: p.scalar(t, t.text, 0)})
			default:
				p.errorf(t.start, t.end, "unexpected argument %q", t.text)
			}

			positional++

			continue
		}

		offset := len(key) + 1

		switch key {
		case "type":
			args = append(args, patch.Arg{Field: patch.TargetTypeField, Value: p.typeValue(t, value, offset)})

		case "method":
			args = append(args, patch.Arg{Field: patch.MemberNameField, Value: p.scalar(t, value, offset)})

		case "typename":
			args = append(args, patch.Arg{Field: patch.TypeNameField, Value: p.scalar(t, value, offset)})

		case "kind":
			v := patch.Null()
			if k, ok := patch.ParseMemberKind(value); ok {
				v = patch.Scalar(k)
			} else {
				p.errorf(t.start+offset, t.end, "unknown member kind %q", value)
			}

			args = append(args, patch.Arg{Field: patch.MemberKindField, Value: v})

		case "args":
			args = append(args, patch.Arg{Field: patch.ArgumentTypesField, Value: p.typeList(t, value, offset)})

		default:
			p.errorf(t.start, t.start+len(key), "unknown key %q", key)
		}
	}

	return args
}

// scalar returns a string value, unquoting it when it starts with a double quote.
func (p *parser) scalar(t span, value string, offset int) patch.Value {
	if !strings.HasPrefix(value, `"`) {
		return patch.Scalar(value)
	}

	s, err := strconv.Unquote(value)
	if err != nil {
		p.errorf(t.start+offset, t.end, "invalid quoted value %s", value)

		return patch.Null()
	}

	return patch.Scalar(s)
}

func (p *parser) typeList(t span, list string, offset int) patch.Value {
	if list == "" {
		return patch.Array()
	}

	var elems []patch.Value

	for _, e := range splitList(list, t.start+offset) {
		elems = append(elems, p.typeValue(e, e.text, 0))
	}

	return patch.Array(elems...)
}

func (p *parser) typeValue(t span, expr string, offset int) patch.Value {
	if expr == "" {
		p.errorf(t.start, t.end, "missing type")

		return patch.Null()
	}

	typ, err := p.resolve(expr)
	if err != nil {
		p.errorf(t.start+offset, t.end, "invalid type %q: %v", expr, err)

		return patch.Null()
	}

	return patch.TypeOf(typ)
}

func (p *parser) errorf(start, end int, format string, args ...any) {
	pos := p.comment.Pos()
	p.errors = append(p.errors, Error{
		Pos:     pos + token.Pos(start),
		End:     pos + token.Pos(end),
		Message: fmt.Sprintf(format, args...),
	})
}
