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

package typesys

import (
	"strings"
)

// Type is a type of the host type system.
//
// Types are opaque to the engine; identity and convertibility are decided by the [Oracle].
type Type interface {
	String() string
}

// Member is a member of a host type, see [Oracle.Members].
type Member interface {
	MemberName() string
}

// Category selects the members returned by [Oracle.Members].
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// MethodCategory selects ordinary methods as [*Method].
	MethodCategory Category = iota // method

	// FieldCategory selects fields as [*Field].
	FieldCategory // field

	// PropertyCategory selects properties and indexers as [*Property].
	PropertyCategory // property

	// ConstructorCategory selects instance and static constructors as [*Method].
	ConstructorCategory // constructor
)

// Parameter is a formal parameter of a [Method].
type Parameter struct {
	Name  string
	Type  Type
	ByRef bool // passed by reference, the Type is the referenced type
}

// Method is a method, property accessor or constructor.
type Method struct {
	Name      string
	Declaring Type // declaring type, for instance methods the type of the instance
	Params    []Parameter
	Result    Type // the host's void type for methods without a result
	Static    bool

	// Nested holds the result types of helper functions declared inside the method body.
	// It is only populated for patch methods.
	Nested []Type

	// Object is the host symbol this method was created from.
	Object any
}

// MemberName implements [Member].
func (m *Method) MemberName() string { return m.Name }

// String formats the method as Type.Name(T1, T2).
func (m *Method) String() string {
	var b strings.Builder

	if m.Declaring != nil {
		b.WriteString(m.Declaring.String())
		b.WriteByte('.')
	}

	b.WriteString(m.Name)
	b.WriteByte('(')

	for i, p := range m.Params {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(TypeString(p.Type))
	}

	b.WriteByte(')')

	return b.String()
}

// Parameter returns the index of the parameter with the given name.
func (m *Method) Parameter(name string) (int, bool) {
	for i, p := range m.Params {
		if p.Name == name {
			return i, true
		}
	}

	return -1, false
}

// Field is a field of a host type.
type Field struct {
	Name   string
	Type   Type
	Static bool
}

// MemberName implements [Member].
func (f *Field) MemberName() string { return f.Name }

// Property is a property or indexer with its accessors.
type Property struct {
	Name    string
	Indexer bool
	Getter  *Method // nil for write-only properties
	Setter  *Method // nil for read-only properties
}

// MemberName implements [Member].
func (p *Property) MemberName() string { return p.Name }

// TypeString formats a possibly nil type.
func TypeString(t Type) string {
	if t == nil {
		return "?"
	}

	return t.String()
}

// JoinTypes formats a list of types separated by ", ".
func JoinTypes(types []Type) string {
	var b strings.Builder

	for i, t := range types {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(TypeString(t))
	}

	return b.String()
}
