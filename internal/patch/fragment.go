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

package patch

import (
	"go/token"

	"fillmore-labs.com/patchguard/internal/typesys"
)

//go:generate go tool stringer -type Field -linecomment

// Field is a declarative field a [Fragment] may assert.
type Field uint8

const (
	// TargetTypeField asserts the type declaring the target member.
	TargetTypeField Field = iota // type

	// MemberNameField asserts the name of the target member.
	MemberNameField // method

	// MemberKindField asserts the [MemberKind] of the target member.
	MemberKindField // kind

	// ArgumentTypesField asserts the parameter types of the target member.
	ArgumentTypesField // args

	// TypeNameField names the target type by a string that may not be resolvable.
	TypeNameField // typename

	// PatchKindField asserts the [Kind] of the patch method.
	PatchKindField // patch kind
)

//go:generate go tool stringer -type ValueKind -linecomment

// ValueKind is the shape of a [Value].
type ValueKind uint8

const (
	// NullValue is an omitted or unresolvable value.
	NullValue ValueKind = iota // null

	// ScalarValue is a comparable constant, like a string or a [MemberKind].
	ScalarValue // scalar

	// TypeValue is a type reference.
	TypeValue // type

	// ArrayValue is a sequence of values.
	ArrayValue // array
)

// Value is a value asserted by a [Fragment].
type Value struct {
	Kind   ValueKind
	Scalar any // comparable
	Type   typesys.Type
	Elems  []Value
}

// Null returns the null [Value].
func Null() Value { return Value{} }

// Scalar returns a scalar [Value]. v must be comparable.
func Scalar(v any) Value { return Value{Kind: ScalarValue, Scalar: v} }

// TypeOf returns a type reference [Value], or [Null] for a nil type.
func TypeOf(t typesys.Type) Value {
	if t == nil {
		return Null()
	}

	return Value{Kind: TypeValue, Type: t}
}

// Array returns an array [Value].
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}

	return Value{Kind: ArrayValue, Elems: elems}
}

// Types returns an array [Value] of type references.
func Types(types ...typesys.Type) Value {
	elems := make([]Value, len(types))
	for i, t := range types {
		elems[i] = TypeOf(t)
	}

	return Array(elems...)
}

// Arg is one (field, value) pair of a [Fragment].
type Arg struct {
	Field Field
	Value Value
}

// Fragment is one declarative annotation instance.
//
// A fragment's identity is its address, two fragments are distinct even when their values are equal.
type Fragment struct {
	Args []Arg

	pos, end token.Pos
}

// NewFragment creates a [Fragment] spanning the given source range.
func NewFragment(pos, end token.Pos, args ...Arg) *Fragment {
	return &Fragment{Args: args, pos: pos, end: end}
}

// Pos returns the start of the annotation site.
func (f *Fragment) Pos() token.Pos { return f.pos }

// End returns the end of the annotation site.
func (f *Fragment) End() token.Pos { return f.end }

// Names reports whether the fragment asserts a value for field.
func (f *Fragment) Names(field Field) bool {
	for _, a := range f.Args {
		if a.Field == field {
			return true
		}
	}

	return false
}
