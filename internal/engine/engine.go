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

// Package engine drives the resolution and validation of patch classes.
package engine

import (
	"context"

	"fillmore-labs.com/patchguard/internal/inject"
	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/resolve"
	"fillmore-labs.com/patchguard/internal/signature"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Engine analyzes patch classes against a [typesys.Oracle].
//
// An Engine holds no mutable state and can be used concurrently.
type Engine struct {
	oracle     typesys.Oracle
	known      typesys.WellKnown
	resolver   resolve.Resolver
	validator  signature.Validator
	classifier inject.Classifier
}

// New creates an [Engine], resolving the well-known types with names.
func New(o typesys.Oracle, names typesys.Names) *Engine {
	known := typesys.ResolveWellKnown(o, names)

	return &Engine{
		oracle:     o,
		known:      known,
		resolver:   resolve.New(o, known.Advance),
		validator:  signature.New(o, known),
		classifier: inject.NewClassifier(o, known),
	}
}

// Oracle returns the type system oracle.
func (e *Engine) Oracle() typesys.Oracle { return e.oracle }

// Known returns the well-known types.
func (e *Engine) Known() typesys.WellKnown { return e.known }

// Validator returns the signature validator.
func (e *Engine) Validator() signature.Validator { return e.validator }

// Classifier returns the parameter classifier.
func (e *Engine) Classifier() inject.Classifier { return e.classifier }

// Class is a patch class with its declarative fragments.
type Class struct {
	Type      typesys.Type
	Fragments []*patch.Fragment // class-level, in declaration order
	Methods   []Method
}

// Method is a candidate patch method.
type Method struct {
	Method    *typesys.Method
	Fragments []*patch.Fragment // method-level, in declaration order
	Kinds     []patch.KindAssertion
}

// MethodResult holds the findings for one patch method.
type MethodResult struct {
	Method Method
	Spec   patch.Specification

	// Conflicts are fragments asserting different values for the same field.
	Conflicts []*patch.Fragment
	// KindConflicts are kind annotations disagreeing with each other or the method name.
	KindConflicts []*patch.Fragment

	Resolution resolve.Result
	// Hints are member kinds that would resolve an unresolved target.
	Hints []patch.MemberKind

	Passthrough bool
	ValidReturn bool
	ReturnTypes []typesys.Type // acceptable return types

	// ReverseSignature is the expected signature of a mismatching reverse patch.
	ReverseSignature string
	// InvalidTranspilerParams are indices of invalid transpiler parameters.
	InvalidTranspilerParams []int

	Injection inject.Report
}

// Target returns the resolved target method.
func (r MethodResult) Target() (*typesys.Method, bool) { return r.Resolution.Target() }

// Kind returns the patch kind.
func (r MethodResult) Kind() (patch.Kind, bool) { return r.Spec.Kind() }

// ClassSpecification folds the class-level fragments of c.
func ClassSpecification(c Class) patch.Specification {
	return patch.NewSpecification(c.Type, nil).MergeAll(c.Fragments...)
}

// AnalyzeClass analyzes all methods of c.
//
// On cancellation the results computed so far are returned.
func (e *Engine) AnalyzeClass(ctx context.Context, c Class) []MethodResult {
	base := ClassSpecification(c)

	results := make([]MethodResult, 0, len(c.Methods))

	for _, m := range c.Methods {
		if ctx.Err() != nil {
			break
		}

		results = append(results, e.AnalyzeMethod(ctx, base, m))
	}

	return results
}

// AnalyzeMethod analyzes one patch method, extending the class specification base.
func (e *Engine) AnalyzeMethod(ctx context.Context, base patch.Specification, m Method) MethodResult {
	s := base.ForMethod(m.Method).MergeAll(m.Fragments...)
	if kind, ok := patch.ClassifyKind(m.Method.Name, m.Kinds); ok {
		s = s.WithKind(kind)
	}

	r := MethodResult{
		Method:        m,
		Spec:          s,
		Conflicts:     patch.Conflicts(ctx, e.oracle, s),
		KindConflicts: patch.KindConflicts(m.Method.Name, m.Kinds),
		Resolution:    e.resolver.Resolve(ctx, s),
	}

	if r.Resolution.Outcome() == resolve.Unresolved {
		r.Hints = e.resolver.Hints(ctx, s)
	}

	target, _ := r.Resolution.Target()
	kind, _ := s.Kind()

	if kind == patch.Postfix {
		r.Passthrough = e.validator.IsPassthrough(m.Method, target)
	}

	r.ValidReturn, r.ReturnTypes = e.validator.HasValidReturnType(s, target)

	switch kind {
	case patch.ReversePatch:
		if target != nil {
			r.ReverseSignature, _ = e.validator.CheckReversePatch(m.Method, target)
		}

	case patch.Transpiler:
		r.InvalidTranspilerParams = e.validator.InvalidTranspilerParameters(m.Method)

	default:
	}

	r.Injection = e.classifier.Validate(ctx, s, target, r.Passthrough)

	return r
}
