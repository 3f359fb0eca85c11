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

package resolve

import (
	"context"

	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/typesys"
)

//go:generate go tool stringer -type Outcome -linecomment

// Outcome classifies a resolution by its number of candidates.
type Outcome uint8

const (
	// Unresolved means no member satisfies the specification.
	Unresolved Outcome = iota // unresolved

	// Resolved means exactly one member satisfies the specification.
	Resolved // resolved

	// Ambiguous means more than one member satisfies the specification.
	Ambiguous // ambiguous
)

// Result is the outcome of resolving a specification.
type Result struct {
	Candidates []*typesys.Method
}

// Outcome classifies the result.
func (r Result) Outcome() Outcome {
	switch len(r.Candidates) {
	case 0:
		return Unresolved
	case 1:
		return Resolved
	default:
		return Ambiguous
	}
}

// Target returns the target method when the result is resolved.
func (r Result) Target() (*typesys.Method, bool) {
	if len(r.Candidates) != 1 {
		return nil, false
	}

	return r.Candidates[0], true
}

// Hints returns the member kinds that would resolve an unresolved ordinary specification.
//
// With a member name, property accessors are considered. Without one, but with argument
// types, constructors and indexer accessors are.
func (r Resolver) Hints(ctx context.Context, s patch.Specification) []patch.MemberKind {
	if kind, ok := s.MemberKind(); ok && kind != patch.Normal {
		return nil
	}

	var kinds []patch.MemberKind

	switch _, hasName := s.MemberName(); {
	case hasName:
		kinds = []patch.MemberKind{patch.Getter, patch.Setter}

	default:
		if _, hasArgs := s.ArgumentTypes(); !hasArgs {
			return nil
		}

		kinds = []patch.MemberKind{patch.Constructor, patch.Getter, patch.Setter}
	}

	var hints []patch.MemberKind

	for _, k := range kinds {
		if len(r.candidates(ctx, s, k)) > 0 {
			hints = append(hints, k)
		}
	}

	return hints
}
