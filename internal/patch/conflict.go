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

import (
	"context"
	"slices"

	"fillmore-labs.com/patchguard/internal/typesys"
)

var declarativeFields = [...]Field{TargetTypeField, MemberNameField, MemberKindField, ArgumentTypesField}

// Conflicts returns the fragments of s that assert different values for the same declarative field,
// deduplicated and in encounter order.
//
// Type references are compared by identity using o.
func Conflicts(ctx context.Context, o typesys.Oracle, s Specification) []*Fragment {
	var participants []*Fragment

	for _, field := range declarativeFields {
		if ctx.Err() != nil {
			return nil
		}

		var (
			fragments []*Fragment
			values    []Value
		)

		for _, f := range s.origins {
			for _, a := range f.Args {
				if a.Field != field {
					continue
				}

				fragments = append(fragments, f)
				values = append(values, a.Value)
			}
		}

		if Distinct(ctx, o, values) <= 1 {
			continue
		}

		for _, f := range fragments {
			if !slices.Contains(participants, f) {
				participants = append(participants, f)
			}
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	slices.SortStableFunc(participants, func(a, b *Fragment) int {
		return slices.Index(s.origins, a) - slices.Index(s.origins, b)
	})

	return participants
}

// Distinct counts the distinct values, grouped by shape.
//
// All null values count as one. Scalars are compared with ==, type references by identity.
// Arrays of different length are distinct, arrays of equal length add one
// for every position that holds more than one distinct value.
func Distinct(ctx context.Context, o typesys.Oracle, values []Value) int {
	var (
		null    bool
		scalars []any
		types   []typesys.Type
		arrays  = make(map[int][]Value)
		lengths []int
	)

	for _, v := range values {
		if ctx.Err() != nil {
			return 0
		}

		switch v.Kind {
		case NullValue:
			null = true

		case ScalarValue:
			if !slices.Contains(scalars, v.Scalar) {
				scalars = append(scalars, v.Scalar)
			}

		case TypeValue:
			if !slices.ContainsFunc(types, func(t typesys.Type) bool { return typesys.Identical(o, t, v.Type) }) {
				types = append(types, v.Type)
			}

		case ArrayValue:
			n := len(v.Elems)
			if _, ok := arrays[n]; !ok {
				lengths = append(lengths, n)
			}

			arrays[n] = append(arrays[n], v)
		}
	}

	count := len(scalars) + len(types)
	if null {
		count++
	}

	for _, n := range lengths {
		count += distinctArrays(ctx, o, n, arrays[n])
	}

	return count
}

func distinctArrays(ctx context.Context, o typesys.Oracle, n int, arrays []Value) int {
	count := 1

	column := make([]Value, len(arrays))
	for i := range n {
		for j, a := range arrays {
			column[j] = a.Elems[i]
		}

		count += max(1, Distinct(ctx, o, column)) - 1
	}

	return count
}
