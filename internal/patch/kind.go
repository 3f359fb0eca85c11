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

import "strings"

//go:generate go tool stringer -type Kind -linecomment

// Kind is the kind of a patch method.
type Kind uint8

const (
	// UnknownKind is the zero value, no patch kind asserted.
	UnknownKind Kind = iota // unknown

	// Prefix runs before the target method.
	Prefix // Prefix

	// Postfix runs after the target method.
	Postfix // Postfix

	// Transpiler rewrites the instructions of the target method.
	Transpiler // Transpiler

	// Finalizer runs after the target method, even when it raised an exception.
	Finalizer // Finalizer

	// ReversePatch is replaced with a copy of the target method.
	ReversePatch // ReversePatch
)

// Kinds lists all valid patch kinds.
var Kinds = [...]Kind{Prefix, Postfix, Transpiler, Finalizer, ReversePatch}

// ParseKind returns the patch kind with exactly the given name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}

	return UnknownKind, false
}

//go:generate go tool stringer -type MemberKind -linecomment

// MemberKind is the category of target member a specification resolves to.
type MemberKind uint8

const (
	// Normal selects ordinary methods.
	Normal MemberKind = iota // Normal

	// Getter selects property getters.
	Getter // Getter

	// Setter selects property setters.
	Setter // Setter

	// Constructor selects instance constructors.
	Constructor // Constructor

	// StaticConstructor selects type initializers.
	StaticConstructor // StaticConstructor

	// Enumerator selects the advance method of an iterator state machine.
	Enumerator // Enumerator

	// Async selects the advance method of an async state machine.
	Async // Async
)

// MemberKinds lists all member kinds.
var MemberKinds = [...]MemberKind{Normal, Getter, Setter, Constructor, StaticConstructor, Enumerator, Async}

// ParseMemberKind parses a member kind name, ignoring case.
func ParseMemberKind(name string) (MemberKind, bool) {
	for _, k := range MemberKinds {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}

	return Normal, false
}
