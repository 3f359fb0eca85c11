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

import "iter"

// Oracle answers the engine's questions about the host type system.
//
// Implementations must be safe for concurrent use, the engine queries an oracle
// from several goroutines at once.
type Oracle interface {
	// LookupType looks up a well-known type by namespace and simple name.
	LookupType(namespace, name string) (Type, bool)

	// Special returns a built-in type of the host.
	Special(s SpecialType) (Type, bool)

	// Members enumerates the members of t in the given category.
	Members(t Type, c Category) iter.Seq[Member]

	// ClassifyConversion classifies the conversion from one type to another.
	ClassifyConversion(from, to Type) Conversion

	// StateMachine returns the type the host compiler synthesized for an iterator or async method.
	StateMachine(m *Method, k StateMachineKind) (Type, bool)

	// ArrayOf constructs the array type with the given element type.
	ArrayOf(elem Type) Type

	// Instantiate constructs an instantiation of a generic type.
	Instantiate(generic Type, args ...Type) (Type, bool)

	// InstanceTypes returns the name-referenceable types an instance of t can be bound to,
	// t itself first when it can be named.
	InstanceTypes(t Type) []Type
}

// SpecialType names a built-in type of the host, see [Oracle.Special].
type SpecialType uint8

//go:generate go tool stringer -type SpecialType -linecomment
const (
	// VoidType is the result type of methods without a result.
	VoidType SpecialType = iota // void

	// BoolType is the boolean type.
	BoolType // bool

	// ObjectType is the root of the type hierarchy.
	ObjectType // object

	// ExceptionType is the base type of exceptions or errors.
	ExceptionType // exception
)

// StateMachineKind distinguishes compiler-synthesized state machines.
type StateMachineKind uint8

const (
	// IteratorStateMachine is synthesized for iterator methods.
	IteratorStateMachine StateMachineKind = iota

	// AsyncStateMachine is synthesized for async methods.
	AsyncStateMachine
)

// Identical reports whether a and b are the same type.
func Identical(o Oracle, a, b Type) bool {
	if a == nil || b == nil {
		return false
	}

	return o.ClassifyConversion(a, b) == IdentityConversion
}

// Converts reports whether from converts to to by a standard implicit conversion.
func Converts(o Oracle, from, to Type) bool {
	if from == nil || to == nil {
		return false
	}

	return o.ClassifyConversion(from, to).IsStandardImplicit()
}

// ConvertsToAny reports whether from converts to any of the given types.
func ConvertsToAny(o Oracle, from Type, to []Type) bool {
	for _, t := range to {
		if Converts(o, from, t) {
			return true
		}
	}

	return false
}
