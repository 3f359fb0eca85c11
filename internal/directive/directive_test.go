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

package directive_test

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/patchguard/internal/directive"
	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/typesys"
)

var (
	foo      = types.NewNamed(types.NewTypeName(token.NoPos, nil, "Foo", nil), types.NewStruct(nil, nil), nil)
	mapType  = types.NewMap(types.Typ[types.String], types.Typ[types.Int])
	funcType = types.NewSignatureType(nil, nil, nil,
		types.NewTuple(types.NewParam(token.NoPos, nil, "", types.Typ[types.Int]), types.NewParam(token.NoPos, nil, "", types.Typ[types.String])),
		nil, false)
)

var errUnknown = errors.New("undefined")

func resolve(expr string) (types.Type, error) {
	switch expr {
	case "Foo":
		return foo, nil
	case "int":
		return types.Typ[types.Int], nil
	case "string":
		return types.Typ[types.String], nil
	case "map[string]int":
		return mapType, nil
	case "func(int,string)":
		return funcType, nil
	default:
		return nil, errUnknown
	}
}

func arg(f patch.Field, v patch.Value) patch.Arg { return patch.Arg{Field: f, Value: v} }

func TestParsePatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		args   []patch.Arg
		errors int
	}{
		{
			name: "positional",
			text: "//harmony:patch Foo Bar",
			args: []patch.Arg{arg(patch.TargetTypeField, patch.TypeOf(foo)), arg(patch.MemberNameField, patch.Scalar("Bar"))},
		},
		{
			name: "keyed",
			text: "//harmony:patch type=Foo method=Bar kind=getter args=int,string",
			args: []patch.Arg{
				arg(patch.TargetTypeField, patch.TypeOf(foo)),
				arg(patch.MemberNameField, patch.Scalar("Bar")),
				arg(patch.MemberKindField, patch.Scalar(patch.Getter)),
				arg(patch.ArgumentTypesField, patch.Types(types.Typ[types.Int], types.Typ[types.String])),
			},
		},
		{
			name: "empty_args",
			text: "//harmony:patch\targs=",
			args: []patch.Arg{arg(patch.ArgumentTypesField, patch.Array())},
		},
		{
			name: "composite_args",
			text: "//harmony:patch args=map[string]int,func(int,string)",
			args: []patch.Arg{arg(patch.ArgumentTypesField, patch.Types(mapType, funcType))},
		},
		{
			name: "typename",
			text: "//harmony:patch typename=Hidden method=Bar",
			args: []patch.Arg{arg(patch.TypeNameField, patch.Scalar("Hidden")), arg(patch.MemberNameField, patch.Scalar("Bar"))},
		},
		{
			name: "quoted",
			text: `//harmony:patch typename="Hidden Type" method="op_Add,ition"`,
			args: []patch.Arg{arg(patch.TypeNameField, patch.Scalar("Hidden Type")), arg(patch.MemberNameField, patch.Scalar("op_Add,ition"))},
		},
		{
			name: "quoted_positional",
			text: `//harmony:patch Foo "Bar Baz"`,
			args: []patch.Arg{arg(patch.TargetTypeField, patch.TypeOf(foo)), arg(patch.MemberNameField, patch.Scalar("Bar Baz"))},
		},
		{
			name:   "unterminated_quote",
			text:   `//harmony:patch method="Bar`,
			args:   []patch.Arg{arg(patch.MemberNameField, patch.Null())},
			errors: 1,
		},
		{
			name:   "missing_type",
			text:   "//harmony:patch type=Missing",
			args:   []patch.Arg{arg(patch.TargetTypeField, patch.Null())},
			errors: 1,
		},
		{
			name:   "missing_arg_type",
			text:   "//harmony:patch args=int,Missing",
			args:   []patch.Arg{arg(patch.ArgumentTypesField, patch.Array(patch.TypeOf(types.Typ[types.Int]), patch.Null()))},
			errors: 1,
		},
		{
			name:   "unknown_kind",
			text:   "//harmony:patch kind=method",
			args:   []patch.Arg{arg(patch.MemberKindField, patch.Null())},
			errors: 1,
		},
		{
			name:   "unknown_key",
			text:   "//harmony:patch color=red",
			errors: 1,
		},
		{
			name:   "too_many",
			text:   "//harmony:patch Foo Bar Baz",
			args:   []patch.Arg{arg(patch.TargetTypeField, patch.TypeOf(foo)), arg(patch.MemberNameField, patch.Scalar("Bar"))},
			errors: 1,
		},
		{
			name: "bare",
			text: "//harmony:patch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &ast.Comment{Slash: 100, Text: tt.text}

			d, ok := Parse(c, resolve)
			if !ok || d.Verb != PatchVerb || d.Fragment == nil {
				t.Fatalf("Parse() = %+v, %t", d, ok)
			}

			if d.Fragment.Pos() != c.Pos() || d.Fragment.End() != c.End() {
				t.Errorf("Got fragment range %d-%d", d.Fragment.Pos(), d.Fragment.End())
			}

			if diff := cmp.Diff(tt.args, d.Fragment.Args, typeIdentity); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}

			if len(d.Errors) != tt.errors {
				t.Errorf("Got errors %v, want %d", d.Errors, tt.errors)
			}

			if d.Parameterized() != (len(tt.args) > 0) {
				t.Errorf("Got parameterized %t", d.Parameterized())
			}
		})
	}
}

func TestParseVerbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		ok     bool
		verb   Verb
		kind   patch.Kind
		errors int
	}{
		{"//harmony:prefix", true, KindVerb, patch.Prefix, 0},
		{"//harmony:reversepatch", true, KindVerb, patch.ReversePatch, 0},
		{"//harmony:Finalizer", true, KindVerb, patch.Finalizer, 0},
		{"//harmony:targetmethod", true, TargetMethodVerb, patch.UnknownKind, 0},
		{"//harmony:targetmethods", true, TargetMethodsVerb, patch.UnknownKind, 0},
		{"//harmony:postfix now", true, KindVerb, patch.Postfix, 1},
		{"//harmony:bogus", true, InvalidVerb, patch.UnknownKind, 1},
		{"//harmony:", true, InvalidVerb, patch.UnknownKind, 1},
		{"// harmony:prefix", false, InvalidVerb, patch.UnknownKind, 0},
		{"//nolint:patchguard", false, InvalidVerb, patch.UnknownKind, 0},
	}

	for _, tt := range tests {
		d, ok := Parse(&ast.Comment{Slash: 1, Text: tt.text}, resolve)
		if ok != tt.ok || d.Verb != tt.verb || d.Kind != tt.kind || len(d.Errors) != tt.errors {
			t.Errorf("Parse(%q) = %v %v errors=%v, %t", tt.text, d.Verb, d.Kind, d.Errors, ok)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	t.Parallel()

	c := &ast.Comment{Slash: 100, Text: "//harmony:patch type=Missing"}

	d, _ := Parse(c, resolve)
	if len(d.Errors) != 1 {
		t.Fatalf("Got errors %v, want 1", d.Errors)
	}

	if e := d.Errors[0]; e.Pos != 121 || e.End != 128 {
		t.Errorf("Got error range %d-%d, want 121-128", e.Pos, e.End)
	}
}

var typeIdentity = cmp.Comparer(func(a, b typesys.Type) bool { return a == b })
