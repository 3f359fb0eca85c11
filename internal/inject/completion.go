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
	"slices"

	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Candidate is a parameter name a patch method can declare.
type Candidate struct {
	Name     string
	Expected []typesys.Type // nil when unconstrained
}

// Candidates lists the parameter names available to a patch method of the given kind.
func (c Classifier) Candidates(kind patch.Kind, target *typesys.Method, targetType typesys.Type) []Candidate {
	if target != nil {
		targetType = target.Declaring
	}

	var candidates []Candidate

	if targetType != nil && (target == nil || !target.Static) {
		candidates = append(candidates, Candidate{Instance, c.oracle.InstanceTypes(targetType)})
	}

	candidates = append(candidates, Candidate{Name: State})

	if kind == patch.Prefix {
		candidates = append(candidates, Candidate{RunOriginal, optional(c.known.Bool)})
	}

	if target != nil && target.Result != nil && !typesys.Identical(c.oracle, target.Result, c.known.Void) {
		candidates = append(candidates, Candidate{Result, []typesys.Type{target.Result}})
	}

	if kind == patch.Finalizer {
		candidates = append(candidates, Candidate{Exception, optional(c.known.Exception)})
	}

	if target != nil {
		for _, p := range target.Params {
			candidates = append(candidates, Candidate{p.Name, []typesys.Type{p.Type}})
		}
	}

	if targetType != nil {
		for m := range c.oracle.Members(targetType, typesys.FieldCategory) {
			if f, ok := m.(*typesys.Field); ok {
				candidates = append(candidates, Candidate{"___" + f.Name, []typesys.Type{f.Type}})
			}
		}
	}

	return candidates
}

// Completions returns the candidate names whose expected type is accepted by a parameter of type t,
// skipping the names in exclude. A nil t accepts every candidate.
func (c Classifier) Completions(candidates []Candidate, t typesys.Type, exclude []string) []string {
	var names []string

	for _, cand := range candidates {
		if slices.Contains(exclude, cand.Name) {
			continue
		}

		if t != nil && !c.Accepts(Binding{Param: typesys.Parameter{Type: t}, Expected: cand.Expected}) {
			continue
		}

		names = append(names, cand.Name)
	}

	return names
}
