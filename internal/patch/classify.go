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

import "slices"

// KindAssertion is an annotation asserting a patch kind.
type KindAssertion struct {
	Kind     Kind
	Fragment *Fragment
}

// ClassifyKind determines the patch kind of a method from its name and kind annotations.
//
// Annotations take precedence over the name. When annotations disagree,
// the first one is returned and [KindConflicts] reports the conflict.
func ClassifyKind(name string, annotations []KindAssertion) (Kind, bool) {
	if len(annotations) > 0 {
		return annotations[0].Kind, true
	}

	return ParseKind(name)
}

// KindConflicts returns the annotations that take part in a conflict between asserted patch kinds.
//
// The name of a method asserts a kind when it equals a kind name.
func KindConflicts(name string, annotations []KindAssertion) []*Fragment {
	var kinds []Kind

	if k, ok := ParseKind(name); ok {
		kinds = append(kinds, k)
	}

	for _, a := range annotations {
		if !slices.Contains(kinds, a.Kind) {
			kinds = append(kinds, a.Kind)
		}
	}

	if len(kinds) <= 1 {
		return nil
	}

	participants := make([]*Fragment, 0, len(annotations))
	for _, a := range annotations {
		if !slices.Contains(participants, a.Fragment) {
			participants = append(participants, a.Fragment)
		}
	}

	return participants
}
