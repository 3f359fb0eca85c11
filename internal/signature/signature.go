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

// Package signature validates the return and parameter types of patch methods against their patch kind.
package signature

import (
	"fmt"
	"slices"

	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Validator checks patch method signatures.
type Validator struct {
	oracle typesys.Oracle
	known  typesys.WellKnown
}

// New creates a [Validator].
func New(o typesys.Oracle, known typesys.WellKnown) Validator {
	return Validator{oracle: o, known: known}
}

// IsPassthrough reports whether m can pass the result of target through.
//
// With a known target, the result of m must convert to the result of target and the result of target
// to the first parameter of m. Without a target, the first parameter must convert to the result of m.
func (v Validator) IsPassthrough(m, target *typesys.Method) bool {
	if len(m.Params) == 0 {
		return false
	}

	first := m.Params[0].Type

	if target == nil {
		return typesys.Converts(v.oracle, first, m.Result)
	}

	return typesys.Converts(v.oracle, m.Result, target.Result) &&
		typesys.Converts(v.oracle, target.Result, first)
}

// ValidReturnTypes returns the acceptable return types for a patch kind.
//
// Reverse patches have no fixed set and yield nil. Unknown well-known types are omitted.
func (v Validator) ValidReturnTypes(kind patch.Kind, target *typesys.Method, passthrough bool) []typesys.Type {
	var types []typesys.Type

	switch kind {
	case patch.Prefix:
		types = []typesys.Type{v.known.Void, v.known.Bool}

	case patch.Postfix:
		types = []typesys.Type{v.known.Void}
		if passthrough && target != nil {
			types = append(types, target.Result)
		}

	case patch.Transpiler:
		types = []typesys.Type{v.known.Instructions}

	case patch.Finalizer:
		types = []typesys.Type{v.known.Void, v.known.Exception}

	default:
		return nil
	}

	return slices.DeleteFunc(types, func(t typesys.Type) bool { return t == nil })
}

// HasValidReturnType validates the return type of the patch method of s and returns the acceptable types.
//
// A postfix without target that may be a passthrough is not checked.
func (v Validator) HasValidReturnType(s patch.Specification, target *typesys.Method) (bool, []typesys.Type) {
	m := s.Method()
	if m == nil {
		return true, nil
	}

	kind, ok := s.Kind()
	if !ok {
		return true, nil
	}

	var passthrough bool
	if kind == patch.Postfix {
		passthrough = v.IsPassthrough(m, target)
		if target == nil && passthrough {
			return true, nil
		}
	}

	types := v.ValidReturnTypes(kind, target, passthrough)
	if len(types) == 0 {
		return true, nil
	}

	return typesys.ConvertsToAny(v.oracle, m.Result, types), types
}

// ReverseSignature returns the result and parameter types a reverse patch of target must have.
//
// The instance of a non-static target is passed as first parameter.
func ReverseSignature(target *typesys.Method) (typesys.Type, []typesys.Type) {
	params := make([]typesys.Type, 0, len(target.Params)+1)

	if !target.Static {
		params = append(params, target.Declaring)
	}

	for _, p := range target.Params {
		params = append(params, p.Type)
	}

	return target.Result, params
}

// CheckReversePatch verifies that the reverse patch m matches target exactly.
//
// Reverse patches containing a helper producing instructions are accepted unchanged.
// On mismatch, the expected signature is returned.
func (v Validator) CheckReversePatch(m, target *typesys.Method) (string, bool) {
	if v.hasTranspilerHelper(m) {
		return "", true
	}

	result, params := ReverseSignature(target)

	if v.matches(m, result, params) {
		return "", true
	}

	return fmt.Sprintf("%s %s(%s)", typesys.TypeString(result), m.Name, typesys.JoinTypes(params)), false
}

func (v Validator) matches(m *typesys.Method, result typesys.Type, params []typesys.Type) bool {
	if !typesys.Identical(v.oracle, m.Result, result) || len(m.Params) != len(params) {
		return false
	}

	for i, p := range m.Params {
		if !typesys.Identical(v.oracle, p.Type, params[i]) {
			return false
		}
	}

	return true
}

func (v Validator) hasTranspilerHelper(m *typesys.Method) bool {
	if v.known.Instructions == nil {
		return false
	}

	for _, t := range m.Nested {
		if typesys.Converts(v.oracle, t, v.known.Instructions) {
			return true
		}
	}

	return false
}

// InvalidTranspilerParameters returns the indices of transpiler parameters with a type
// other than the instruction sequence, the method handle or the IL generator.
func (v Validator) InvalidTranspilerParameters(m *typesys.Method) []int {
	allowed := []typesys.Type{v.known.Instructions, v.known.MethodBase, v.known.ILGenerator}
	if slices.Contains(allowed, nil) {
		return nil
	}

	var invalid []int

	for i, p := range m.Params {
		if !slices.ContainsFunc(allowed, func(t typesys.Type) bool { return typesys.Identical(v.oracle, p.Type, t) }) {
			invalid = append(invalid, i)
		}
	}

	return invalid
}

// ProviderReturnType returns the type a target method provider must return,
// a method handle or, when many is set, a sequence of them.
func (v Validator) ProviderReturnType(many bool) typesys.Type {
	if many {
		return v.known.MethodBases
	}

	return v.known.MethodBase
}

// HasValidProviderReturnType validates the return type of a target method provider.
func (v Validator) HasValidProviderReturnType(m *typesys.Method, many bool) (bool, typesys.Type) {
	want := v.ProviderReturnType(many)
	if want == nil {
		return true, nil
	}

	return typesys.Converts(v.oracle, m.Result, want), want
}
