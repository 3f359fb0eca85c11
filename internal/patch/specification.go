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
	"slices"

	"fillmore-labs.com/patchguard/internal/typesys"
)

type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] { return optional[T]{value: v, set: true} }

func (o optional[T]) get() (T, bool) { return o.value, o.set }

// Specification is the aggregated, immutable view of one patch method's declarative intent.
//
// Specifications are values, every update returns a new one.
type Specification struct {
	class  typesys.Type
	method *typesys.Method

	kind          optional[Kind]
	targetType    optional[typesys.Type]
	memberName    optional[string]
	memberKind    optional[MemberKind]
	argumentTypes optional[[]typesys.Type]

	origins []*Fragment
}

// NewSpecification returns an empty [Specification] for a patch method of class.
func NewSpecification(class typesys.Type, method *typesys.Method) Specification {
	return Specification{class: class, method: method}
}

// Class returns the patch class.
func (s Specification) Class() typesys.Type { return s.class }

// Method returns the patch method, nil for class-level specifications.
func (s Specification) Method() *typesys.Method { return s.method }

// Kind returns the patch kind, if known.
func (s Specification) Kind() (Kind, bool) { return s.kind.get() }

// TargetType returns the type declaring the target member, if asserted.
func (s Specification) TargetType() (typesys.Type, bool) { return s.targetType.get() }

// MemberName returns the name of the target member, if asserted.
func (s Specification) MemberName() (string, bool) { return s.memberName.get() }

// MemberKind returns the member kind, if asserted.
func (s Specification) MemberKind() (MemberKind, bool) { return s.memberKind.get() }

// ArgumentTypes returns the asserted argument types. The result must not be modified.
func (s Specification) ArgumentTypes() ([]typesys.Type, bool) { return s.argumentTypes.get() }

// Origins returns all fragments that contributed a field, in encounter order. The result must not be modified.
func (s Specification) Origins() []*Fragment { return s.origins }

// ForMethod returns a copy of s for a patch method.
func (s Specification) ForMethod(method *typesys.Method) Specification {
	s.method = method

	return s
}

// WithKind returns a copy of s with the patch kind set.
func (s Specification) WithKind(k Kind) Specification {
	s.kind = some(k)

	return s
}

// Merge returns s with the fields asserted by f overwritten.
//
// Every fragment naming at least one declarative field is recorded in [Specification.Origins],
// also when its value is null. Null values and values of the wrong shape leave the field unchanged.
func (s Specification) Merge(f *Fragment) Specification {
	var recognized bool

	for _, a := range f.Args {
		switch a.Field {
		case TargetTypeField:
			recognized = true

			if a.Value.Kind == TypeValue {
				s.targetType = some(a.Value.Type)
			}

		case MemberNameField:
			recognized = true

			if name, ok := a.Value.Scalar.(string); ok && a.Value.Kind == ScalarValue {
				s.memberName = some(name)
			}

		case MemberKindField:
			recognized = true

			if kind, ok := a.Value.Scalar.(MemberKind); ok && a.Value.Kind == ScalarValue {
				s.memberKind = some(kind)
			}

		case ArgumentTypesField:
			recognized = true

			if types, ok := argumentTypes(a.Value); ok {
				s.argumentTypes = some(types)
			}

		default:
		}
	}

	if recognized {
		s.origins = slices.Concat(s.origins, []*Fragment{f})
	}

	return s
}

// MergeAll folds fragments into s from left to right.
func (s Specification) MergeAll(fragments ...*Fragment) Specification {
	for _, f := range fragments {
		s = s.Merge(f)
	}

	return s
}

func argumentTypes(v Value) ([]typesys.Type, bool) {
	if v.Kind != ArrayValue {
		return nil, false
	}

	types := make([]typesys.Type, 0, len(v.Elems))

	for _, e := range v.Elems {
		if e.Kind != TypeValue {
			return nil, false
		}

		types = append(types, e.Type)
	}

	return types, true
}
