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

package gotypes

import (
	"go/types"

	"fillmore-labs.com/patchguard/internal/inject"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Method converts a function or method to a target [typesys.Method].
//
// Methods are declared by t, or by *t when they have a pointer receiver. Functions without receiver
// are constructors of t.
func Method(fn *types.Func, t types.Type) *typesys.Method {
	sig := fn.Signature()

	declaring := t
	if recv := sig.Recv(); recv != nil {
		if _, ok := recv.Type().(*types.Pointer); ok {
			declaring = types.NewPointer(deref(t))
		}
	}

	return &typesys.Method{
		Name:      fn.Name(),
		Declaring: declaring,
		Params:    parameters(sig, false),
		Result:    Result(sig),
		Object:    fn,
	}
}

// PatchMethod converts a patch method. The receiver is ignored.
//
// Pointer parameters with a special name are passed by reference. nested are the result types
// of function literals in the body.
func PatchMethod(fn *types.Func, nested []types.Type) *typesys.Method {
	sig := fn.Signature()

	var declaring typesys.Type
	if recv := sig.Recv(); recv != nil {
		declaring = deref(recv.Type())
	}

	m := &typesys.Method{
		Name:      fn.Name(),
		Declaring: declaring,
		Params:    parameters(sig, true),
		Result:    Result(sig),
		Static:    true,
		Object:    fn,
	}

	for _, t := range nested {
		m.Nested = append(m.Nested, t)
	}

	return m
}

// Result returns the result type of sig: [Void], the single result or the result tuple.
func Result(sig *types.Signature) typesys.Type {
	switch r := sig.Results(); r.Len() {
	case 0:
		return Void
	case 1:
		return r.At(0).Type()
	default:
		return r
	}
}

var byReference = map[string]struct{}{
	inject.Exception:   {},
	inject.Instance:    {},
	inject.Result:      {},
	inject.ResultRef:   {},
	inject.RunOriginal: {},
	inject.State:       {},
}

func parameters(sig *types.Signature, patch bool) []typesys.Parameter {
	params := make([]typesys.Parameter, 0, sig.Params().Len())

	for v := range sig.Params().Variables() {
		p := typesys.Parameter{Name: v.Name(), Type: v.Type()}

		if patch {
			if ptr, ok := v.Type().(*types.Pointer); ok {
				if _, special := byReference[v.Name()]; special {
					p.Type, p.ByRef = ptr.Elem(), true
				}
			}
		}

		params = append(params, p)
	}

	return params
}
