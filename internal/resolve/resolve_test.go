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

package resolve_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/patchguard/internal/patch"
	. "fillmore-labs.com/patchguard/internal/resolve"
	"fillmore-labs.com/patchguard/internal/typesys"
	"fillmore-labs.com/patchguard/internal/typesys/typestest"
)

type fixture struct {
	u   *typestest.Universe
	foo *typestest.Type

	barString, barInt, barIntInt *typesys.Method
	count                        *typesys.Property
	item                         *typesys.Property
	ctor, ctorInt, cctor         *typesys.Method
	moveNext                     *typesys.Method
	baz                          *typesys.Method
	derived                      *typestest.Type
	async                        *typesys.Method
}

func newFixture() fixture {
	u := typestest.New()
	foo := u.Declare("Game", "Foo")

	f := fixture{u: u, foo: foo}

	f.barString = foo.Method("Bar", u.Int, typestest.Param("s", u.String))
	f.barInt = foo.Method("Bar", u.Int, typestest.Param("i", u.Int))
	f.barIntInt = foo.Method("Bar", u.Void, typestest.Param("i", u.Int), typestest.Param("j", u.Int))
	foo.Method("Other", u.Void)

	f.derived = u.Declare("Game", "Derived", foo)
	f.baz = foo.Method("Baz", u.Void, typestest.Param("other", foo))

	f.count = foo.Property(u.Void, "Count", u.Int, true, false)
	f.item = foo.Indexer(u.Void, u.String, typestest.Param("index", u.Int))

	f.ctor = foo.Constructor(u.Void)
	f.ctorInt = foo.Constructor(u.Void, typestest.Param("size", u.Int))
	f.cctor = foo.StaticConstructor(u.Void)

	items := foo.Method("Items", u.Object)
	f.moveNext = u.Synthesize(items, typesys.IteratorStateMachine)

	load := foo.Method("Load", u.Object)
	f.async = u.Synthesize(load, typesys.AsyncStateMachine)

	return f
}

func (f fixture) spec(args ...patch.Arg) patch.Specification {
	return patch.NewSpecification(f.u.Object, nil).Merge(patch.NewFragment(1, 2, args...))
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	f := newFixture()
	u := f.u

	target := patch.Arg{Field: patch.TargetTypeField, Value: patch.TypeOf(f.foo)}
	name := func(n string) patch.Arg {
		return patch.Arg{Field: patch.MemberNameField, Value: patch.Scalar(n)}
	}
	kind := func(k patch.MemberKind) patch.Arg {
		return patch.Arg{Field: patch.MemberKindField, Value: patch.Scalar(k)}
	}
	args := func(types ...typesys.Type) patch.Arg {
		return patch.Arg{Field: patch.ArgumentTypesField, Value: patch.Types(types...)}
	}

	tests := []struct {
		name string
		spec patch.Specification
		want []*typesys.Method
	}{
		{"all_overloads", f.spec(target, name("Bar")), []*typesys.Method{f.barString, f.barInt, f.barIntInt}},
		{"one_overload", f.spec(target, name("Bar"), args(u.String)), []*typesys.Method{f.barString}},
		{"two_args", f.spec(target, name("Bar"), args(u.Int, u.Int)), []*typesys.Method{f.barIntInt}},
		{"widening", f.spec(target, name("Baz"), args(f.derived)), []*typesys.Method{f.baz}},
		{"no_narrowing", f.spec(target, name("Baz"), args(u.Object)), nil},
		{"no_overload", f.spec(target, name("Bar"), args(u.Bool)), nil},
		{"no_target", f.spec(name("Bar")), nil},
		{"no_name", f.spec(target), nil},
		{"getter", f.spec(target, name("Count"), kind(patch.Getter)), []*typesys.Method{f.count.Getter}},
		{"read_only", f.spec(target, name("Count"), kind(patch.Setter)), nil},
		{"indexer_getter", f.spec(target, kind(patch.Getter), args(u.Int)), []*typesys.Method{f.item.Getter}},
		{"indexer_setter", f.spec(target, kind(patch.Setter)), []*typesys.Method{f.item.Setter}},
		{"constructors", f.spec(target, kind(patch.Constructor)), []*typesys.Method{f.ctor, f.ctorInt}},
		{"constructor", f.spec(target, kind(patch.Constructor), args(u.Int)), []*typesys.Method{f.ctorInt}},
		{"default_constructor", f.spec(target, kind(patch.Constructor), args()), []*typesys.Method{f.ctor}},
		{"static_constructor", f.spec(target, kind(patch.StaticConstructor), args(u.Int)), []*typesys.Method{f.cctor}},
		{"enumerator", f.spec(target, name("Items"), kind(patch.Enumerator)), []*typesys.Method{f.moveNext}},
		{"not_enumerator", f.spec(target, name("Bar"), kind(patch.Enumerator)), nil},
		{"async", f.spec(target, name("Load"), kind(patch.Async)), []*typesys.Method{f.async}},
		{"not_async", f.spec(target, name("Items"), kind(patch.Async)), nil},
	}

	r := New(u, "MoveNext")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Candidates(t.Context(), tt.spec)

			if diff := cmp.Diff(tt.want, got, methodIdentity); diff != "" {
				t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	f := newFixture()
	r := New(f.u, "MoveNext")

	target := patch.Arg{Field: patch.TargetTypeField, Value: patch.TypeOf(f.foo)}

	tests := []struct {
		name   string
		member string
		want   Outcome
	}{
		{"resolved", "Other", Resolved},
		{"ambiguous", "Bar", Ambiguous},
		{"unresolved", "Missing", Unresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := f.spec(target, patch.Arg{Field: patch.MemberNameField, Value: patch.Scalar(tt.member)})

			res := r.Resolve(t.Context(), s)
			if got := res.Outcome(); got != tt.want {
				t.Errorf("Outcome() = %v, want %v", got, tt.want)
			}

			if _, ok := res.Target(); ok != (tt.want == Resolved) {
				t.Errorf("Target() ok = %t", ok)
			}
		})
	}
}

func TestHints(t *testing.T) {
	t.Parallel()

	f := newFixture()
	u := f.u
	r := New(u, "MoveNext")

	target := patch.Arg{Field: patch.TargetTypeField, Value: patch.TypeOf(f.foo)}

	tests := []struct {
		name string
		args []patch.Arg
		want []patch.MemberKind
	}{
		{
			name: "property",
			args: []patch.Arg{target, {Field: patch.MemberNameField, Value: patch.Scalar("Count")}},
			want: []patch.MemberKind{patch.Getter},
		},
		{
			name: "constructor",
			args: []patch.Arg{target, {Field: patch.ArgumentTypesField, Value: patch.Types()}},
			want: []patch.MemberKind{patch.Constructor},
		},
		{
			name: "indexer",
			args: []patch.Arg{target, {Field: patch.ArgumentTypesField, Value: patch.Types(u.Int)}},
			want: []patch.MemberKind{patch.Constructor, patch.Getter},
		},
		{
			name: "nothing",
			args: []patch.Arg{target},
			want: nil,
		},
		{
			name: "explicit_kind",
			args: []patch.Arg{
				target,
				{Field: patch.MemberNameField, Value: patch.Scalar("Count")},
				{Field: patch.MemberKindField, Value: patch.Scalar(patch.Setter)},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Hints(t.Context(), f.spec(tt.args...))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hints() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCandidatesCanceled(t *testing.T) {
	t.Parallel()

	f := newFixture()
	r := New(f.u, "MoveNext")

	s := f.spec(
		patch.Arg{Field: patch.TargetTypeField, Value: patch.TypeOf(f.foo)},
		patch.Arg{Field: patch.MemberNameField, Value: patch.Scalar("Bar")},
	)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if got := r.Candidates(ctx, s); len(got) != 0 {
		t.Errorf("Got %d candidates after cancellation", len(got))
	}
}

var methodIdentity = cmp.Comparer(func(a, b *typesys.Method) bool { return a == b })
