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

// Package resolve searches the members of a target type for the method a [patch.Specification] identifies.
package resolve

import (
	"context"

	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Resolver finds target methods using a [typesys.Oracle].
type Resolver struct {
	oracle  typesys.Oracle
	advance string
}

// New creates a [Resolver]. advance is the name of the method advancing a synthesized state machine.
func New(o typesys.Oracle, advance string) Resolver {
	return Resolver{oracle: o, advance: advance}
}

// Resolve classifies the candidates of s.
func (r Resolver) Resolve(ctx context.Context, s patch.Specification) Result {
	return Result{Candidates: r.Candidates(ctx, s)}
}

// Candidates returns all members of the target type satisfying s.
//
// The member kind defaults to [patch.Normal].
func (r Resolver) Candidates(ctx context.Context, s patch.Specification) []*typesys.Method {
	kind, _ := s.MemberKind()

	return r.candidates(ctx, s, kind)
}

func (r Resolver) candidates(ctx context.Context, s patch.Specification, kind patch.MemberKind) []*typesys.Method {
	target, ok := s.TargetType()
	if !ok {
		return nil
	}

	name, hasName := s.MemberName()
	args, hasArgs := s.ArgumentTypes()

	var candidates []*typesys.Method

	switch kind {
	case patch.Normal:
		if !hasName {
			return nil
		}

		candidates = r.methods(ctx, target, name)

	case patch.Getter, patch.Setter:
		candidates = r.accessors(ctx, target, name, kind == patch.Setter)

	case patch.Constructor:
		candidates = r.constructors(ctx, target, false)

	case patch.StaticConstructor:
		return r.constructors(ctx, target, true)

	case patch.Enumerator:
		return r.stateMachines(ctx, s, typesys.IteratorStateMachine)

	case patch.Async:
		return r.stateMachines(ctx, s, typesys.AsyncStateMachine)

	default:
		return nil
	}

	if hasArgs {
		candidates = r.filter(ctx, candidates, args)
	}

	return candidates
}

func (r Resolver) methods(ctx context.Context, target typesys.Type, name string) []*typesys.Method {
	var methods []*typesys.Method

	for m := range r.oracle.Members(target, typesys.MethodCategory) {
		if ctx.Err() != nil {
			return nil
		}

		if m, ok := m.(*typesys.Method); ok && m.Name == name {
			methods = append(methods, m)
		}
	}

	return methods
}

// accessors finds the accessors of the property named name, or of the indexer when name is empty.
func (r Resolver) accessors(ctx context.Context, target typesys.Type, name string, setter bool) []*typesys.Method {
	var accessors []*typesys.Method

	for m := range r.oracle.Members(target, typesys.PropertyCategory) {
		if ctx.Err() != nil {
			return nil
		}

		p, ok := m.(*typesys.Property)
		if !ok {
			continue
		}

		if name == "" && !p.Indexer || name != "" && p.Name != name {
			continue
		}

		accessor := p.Getter
		if setter {
			accessor = p.Setter
		}

		if accessor != nil {
			accessors = append(accessors, accessor)
		}
	}

	return accessors
}

func (r Resolver) constructors(ctx context.Context, target typesys.Type, static bool) []*typesys.Method {
	var constructors []*typesys.Method

	for m := range r.oracle.Members(target, typesys.ConstructorCategory) {
		if ctx.Err() != nil {
			return nil
		}

		if m, ok := m.(*typesys.Method); ok && m.Static == static {
			constructors = append(constructors, m)
		}
	}

	return constructors
}

// stateMachines maps the ordinary candidates to the advance methods of their synthesized state machines.
func (r Resolver) stateMachines(ctx context.Context, s patch.Specification, k typesys.StateMachineKind) []*typesys.Method {
	var advances []*typesys.Method

	for _, m := range r.candidates(ctx, s, patch.Normal) {
		if ctx.Err() != nil {
			return nil
		}

		machine, ok := r.oracle.StateMachine(m, k)
		if !ok {
			continue
		}

		advances = append(advances, r.methods(ctx, machine, r.advance)...)
	}

	return advances
}

// filter keeps the methods whose parameters are assignable from args.
func (r Resolver) filter(ctx context.Context, methods []*typesys.Method, args []typesys.Type) []*typesys.Method {
	var matching []*typesys.Method

	for _, m := range methods {
		if ctx.Err() != nil {
			return nil
		}

		if r.accepts(m, args) {
			matching = append(matching, m)
		}
	}

	return matching
}

func (r Resolver) accepts(m *typesys.Method, args []typesys.Type) bool {
	if len(m.Params) != len(args) {
		return false
	}

	for i, p := range m.Params {
		if !typesys.Converts(r.oracle, args[i], p.Type) {
			return false
		}
	}

	return true
}
