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
	"regexp"
	"strconv"

	"fillmore-labs.com/patchguard/internal/typesys"
)

// Special parameter names.
const (
	Args           = "__args"
	Exception      = "__exception"
	Instance       = "__instance"
	OriginalMethod = "__originalMethod"
	Result         = "__result"
	ResultRef      = "__resultRef"
	RunOriginal    = "__runOriginal"
	State          = "__state"
)

// SpecialNames lists the fixed special parameter names.
var SpecialNames = [...]string{Args, Exception, Instance, OriginalMethod, Result, ResultRef, RunOriginal, State}

//go:generate go tool stringer -type Classification -linecomment

// Classification is the way a patch method parameter is bound.
type Classification uint8

const (
	// Unmatched parameters bind to nothing.
	Unmatched Classification = iota // unmatched

	// FixedSpecial parameters have one of the [SpecialNames].
	FixedSpecial // special

	// FieldInjection parameters are named ___field and bind to a field of the target type.
	FieldInjection // field

	// PositionalInjection parameters are named __N and bind to the N-th target parameter.
	PositionalInjection // positional

	// NameMatch parameters have the name of a target parameter.
	NameMatch // name
)

// Binding is the classification of one patch method parameter.
type Binding struct {
	Param typesys.Parameter
	Index int // position in the patch method

	Class Classification
	Name  string // special name, field name or target parameter name
	// Position is the index of the target parameter for [PositionalInjection] and [NameMatch].
	Position int

	// Found reports whether the bound field or target parameter exists.
	Found bool

	// Expected holds the acceptable source types, nil when unconstrained.
	Expected []typesys.Type
}

var (
	fieldPattern      = regexp.MustCompile(`^___(\w+)$`)
	positionalPattern = regexp.MustCompile(`^__(\d+)$`)
)

// Classifier binds patch method parameters.
type Classifier struct {
	oracle typesys.Oracle
	known  typesys.WellKnown
}

// NewClassifier creates a [Classifier].
func NewClassifier(o typesys.Oracle, known typesys.WellKnown) Classifier {
	return Classifier{oracle: o, known: known}
}

// Classify binds the parameter at index i of a patch method.
//
// target is the resolved target method, or nil. targetType is the type declaring the target,
// used for field injection when no target method is resolved.
func (c Classifier) Classify(p typesys.Parameter, i int, target *typesys.Method, targetType typesys.Type) Binding {
	b := Binding{Param: p, Index: i, Position: -1}

	if target != nil {
		targetType = target.Declaring
	}

	if c.special(&b, target, targetType) {
		return b
	}

	if m := fieldPattern.FindStringSubmatch(p.Name); m != nil {
		b.Class, b.Name = FieldInjection, m[1]
		if f, ok := c.field(targetType, b.Name); ok {
			b.Found, b.Expected = true, []typesys.Type{f.Type}
		}

		return b
	}

	if m := positionalPattern.FindStringSubmatch(p.Name); m != nil {
		b.Class = PositionalInjection
		if n, err := strconv.Atoi(m[1]); err == nil {
			b.Position = n
		}

		if target != nil && b.Position >= 0 && b.Position < len(target.Params) {
			tp := target.Params[b.Position]
			b.Name, b.Found, b.Expected = tp.Name, true, []typesys.Type{tp.Type}
		}

		return b
	}

	// Unnamed and blank parameters never match, even unnamed target parameters.
	if target != nil && p.Name != "" && p.Name != "_" {
		if n, ok := target.Parameter(p.Name); ok {
			b.Class, b.Name, b.Position = NameMatch, p.Name, n
			b.Found, b.Expected = true, []typesys.Type{target.Params[n].Type}
		}
	}

	return b
}

func (c Classifier) special(b *Binding, target *typesys.Method, targetType typesys.Type) bool {
	var expected []typesys.Type

	switch b.Param.Name {
	case Args:
		expected = optional(c.known.ObjectArray)

	case Exception:
		expected = optional(c.known.Exception)

	case Instance:
		if targetType != nil {
			expected = c.oracle.InstanceTypes(targetType)
		}

	case OriginalMethod:
		expected = optional(c.known.MethodBase)

	case Result:
		if target != nil {
			expected = optional(target.Result)
		}

	case RunOriginal:
		expected = optional(c.known.Bool)

	case ResultRef, State:
		// unconstrained

	default:
		return false
	}

	b.Class, b.Name, b.Found, b.Expected = FixedSpecial, b.Param.Name, true, expected

	return true
}

func optional(t typesys.Type) []typesys.Type {
	if t == nil {
		return nil
	}

	return []typesys.Type{t}
}

func (c Classifier) field(t typesys.Type, name string) (*typesys.Field, bool) {
	if t == nil {
		return nil, false
	}

	for m := range c.oracle.Members(t, typesys.FieldCategory) {
		if f, ok := m.(*typesys.Field); ok && f.Name == name {
			return f, true
		}
	}

	return nil, false
}

// Accepts reports whether the parameter type of b accepts one of the expected types.
func (c Classifier) Accepts(b Binding) bool {
	if b.Expected == nil {
		return true
	}

	for _, e := range b.Expected {
		if typesys.Converts(c.oracle, e, b.Param.Type) {
			return true
		}
	}

	return false
}
