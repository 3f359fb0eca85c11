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

// QualifiedName names a type by namespace and simple name.
type QualifiedName struct {
	Namespace string
	Name      string
}

// Names configures where the well-known types of a host live.
type Names struct {
	// CodeInstruction is the transpiler instruction type.
	CodeInstruction QualifiedName

	// MethodBase is the method handle type.
	MethodBase QualifiedName

	// ILGenerator is the IL generator type accepted by transpilers.
	ILGenerator QualifiedName

	// Sequence is the open generic sequence type, instantiated with CodeInstruction.
	Sequence QualifiedName

	// Advance is the name of the method advancing a synthesized state machine.
	Advance string
}

// WellKnown holds the types the engine validates against.
//
// A nil field means the host lacks that type and the checks depending on it are skipped.
type WellKnown struct {
	Void      Type
	Bool      Type
	Object    Type
	Exception Type

	ObjectArray     Type // array of Object
	CodeInstruction Type
	MethodBase      Type
	ILGenerator     Type
	Instructions    Type // sequence of CodeInstruction
	MethodBases     Type // sequence of MethodBase

	Advance string
}

// ResolveWellKnown queries the oracle for all well-known types.
func ResolveWellKnown(o Oracle, n Names) WellKnown {
	k := WellKnown{
		Void:      special(o, VoidType),
		Bool:      special(o, BoolType),
		Object:    special(o, ObjectType),
		Exception: special(o, ExceptionType),

		CodeInstruction: lookup(o, n.CodeInstruction),
		MethodBase:      lookup(o, n.MethodBase),
		ILGenerator:     lookup(o, n.ILGenerator),

		Advance: n.Advance,
	}

	if k.Object != nil {
		k.ObjectArray = o.ArrayOf(k.Object)
	}

	if sequence := lookup(o, n.Sequence); sequence != nil {
		k.Instructions = instantiate(o, sequence, k.CodeInstruction)
		k.MethodBases = instantiate(o, sequence, k.MethodBase)
	}

	return k
}

func special(o Oracle, s SpecialType) Type {
	if t, ok := o.Special(s); ok {
		return t
	}

	return nil
}

func lookup(o Oracle, n QualifiedName) Type {
	if n.Name == "" {
		return nil
	}

	if t, ok := o.LookupType(n.Namespace, n.Name); ok {
		return t
	}

	return nil
}

func instantiate(o Oracle, generic, arg Type) Type {
	if arg == nil {
		return nil
	}

	if t, ok := o.Instantiate(generic, arg); ok {
		return t
	}

	return nil
}
