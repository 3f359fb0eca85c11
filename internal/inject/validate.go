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

package inject

import (
	"context"

	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Report holds the bindings of a patch method's parameters and the findings about them.
type Report struct {
	Bindings []Binding

	// Mismatches are bindings whose parameter type does not accept the expected type.
	Mismatches []Binding

	// Unresolved are parameters bound to nothing in the target.
	Unresolved []Binding

	// Redundant are __result parameters of passthrough postfixes.
	Redundant []Binding

	// StateByValue are __state parameters of prefixes not passed by reference.
	StateByValue []Binding
}

// Validate classifies and checks all parameters of the patch method of s.
//
// Transpilers and reverse patches are not checked. The first parameter of a passthrough postfix
// is the passed through value and not classified.
func (c Classifier) Validate(ctx context.Context, s patch.Specification, target *typesys.Method, passthrough bool) Report {
	var r Report

	m := s.Method()
	if m == nil {
		return r
	}

	kind, _ := s.Kind()
	if kind == patch.Transpiler || kind == patch.ReversePatch {
		return r
	}

	passthrough = passthrough && kind == patch.Postfix
	targetType, _ := s.TargetType()

	for i, p := range m.Params {
		if ctx.Err() != nil {
			return Report{}
		}

		if passthrough && i == 0 {
			continue
		}

		b := c.Classify(p, i, target, targetType)
		r.Bindings = append(r.Bindings, b)

		switch {
		case b.Class == FixedSpecial && b.Name == Result && passthrough:
			r.Redundant = append(r.Redundant, b)

		case b.Class == FixedSpecial && b.Name == State && kind == patch.Prefix && !p.ByRef:
			r.StateByValue = append(r.StateByValue, b)

		case !b.Found:
			if target != nil || b.Class == FieldInjection && targetType != nil {
				r.Unresolved = append(r.Unresolved, b)
			}

		case !c.Accepts(b):
			r.Mismatches = append(r.Mismatches, b)
		}
	}

	return r
}
