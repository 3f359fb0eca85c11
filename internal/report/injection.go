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

package report

import (
	"context"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/patchguard/internal/astutil"
	"fillmore-labs.com/patchguard/internal/discover"
	"fillmore-labs.com/patchguard/internal/engine"
	"fillmore-labs.com/patchguard/internal/inject"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// injection reports parameters that do not bind as intended.
func (d *diagnostics) injection(ctx context.Context, results []engine.MethodResult) {
	for i, r := range results {
		if ctx.Err() != nil {
			return
		}

		m := d.class.Methods[i]

		params := d.params(m.Decl)
		if len(params) != len(m.Method.Params) {
			continue
		}

		d.assignments(m, params, r.Passthrough)

		rep := r.Injection

		for _, b := range rep.Redundant {
			p := params[b.Index]
			diag := diagnostic(p, "MHA012", "Unnecessary injected parameter '%s' in passthrough postfix", p.Name())

			if edits := removeParam(params, b.Index); len(edits) > 0 {
				diag.SuggestedFixes = []analysis.SuggestedFix{{Message: "Remove parameter " + p.Name(), TextEdits: edits}}
			}

			d.report(diag)
		}

		for _, b := range rep.StateByValue {
			p := params[b.Index]
			diag := diagnostic(p, "MHA016", "Prefix parameter '%s' should be a pointer", p.Name())

			if edits := insertPointer(p); len(edits) > 0 {
				diag.SuggestedFixes = []analysis.SuggestedFix{{Message: "Pass " + p.Name() + " by pointer", TextEdits: edits}}
			}

			d.report(diag)
		}

		if len(rep.Unresolved) > 0 {
			d.unresolved(m, params, r)
		}

		for _, b := range rep.Mismatches {
			p := params[b.Index]
			d.add(p, "MHA014", "Invalid type '%s' for injected parameter '%s'. Expected %s",
				d.format.typ(d.typeOf(p)), p.Name(), d.expected(b))
		}

		for _, b := range rep.Bindings {
			if b.Class != inject.PositionalInjection || !b.Found || b.Name == "" {
				continue
			}

			p := params[b.Index]
			diag := diagnostic(p, "MHA017", "Use parameter name '%s' over parameter index injection '%s'", b.Name, p.Name())
			diag.SuggestedFixes = renameFixes(d.pass.TypesInfo, m.Decl, p.obj, []string{b.Name})
			d.report(diag)
		}
	}
}

// unresolved reports parameters bound to nothing, with fixes renaming them to available names.
func (d *diagnostics) unresolved(m *discover.Method, params []param, r engine.MethodResult) {
	classifier := d.engine.Classifier()

	kind, _ := r.Kind()
	target, _ := r.Target()
	targetType, _ := r.Spec.TargetType()

	if target != nil {
		targetType = target.Declaring
	}

	candidates := classifier.Candidates(kind, target, targetType)

	exclude := make([]string, 0, len(params))
	for _, p := range params {
		exclude = append(exclude, p.Name())
	}

	for _, b := range r.Injection.Unresolved {
		p := params[b.Index]

		var where string

		switch {
		case b.Class == inject.FieldInjection:
			where = "a field of '" + d.format.typ(elem(targetType)) + "'"

		case target != nil:
			where = "target method '" + d.format.method(target) + "'"

		default:
			where = "the target method"
		}

		diag := diagnostic(p, "MHA013", "Parameter '%s' does not match %s", p.Name(), where)

		names := classifier.Completions(candidates, m.Method.Params[b.Index].Type, exclude)
		diag.SuggestedFixes = renameFixes(d.pass.TypesInfo, m.Decl, p.obj, names)
		d.report(diag)
	}
}

// expected formats the expected types of a binding as declared in Go.
func (d *diagnostics) expected(b inject.Binding) string {
	if !b.Param.ByRef {
		return d.format.alternatives(b.Expected)
	}

	pointers := make([]typesys.Type, 0, len(b.Expected))
	for _, t := range b.Expected {
		if t, ok := t.(types.Type); ok {
			pointers = append(pointers, types.NewPointer(t))
		}
	}

	return d.format.alternatives(pointers)
}

// elem returns the element type of pointers, t otherwise.
func elem(t typesys.Type) typesys.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

// assignments reports assignments to parameters passed by value.
//
// The passed through value of a postfix is its own result and exempt.
func (d *diagnostics) assignments(m *discover.Method, params []param, passthrough bool) {
	if m.Decl.Body == nil {
		return
	}

	byValue := make(map[*types.Var]param, len(params))

	for i, p := range params {
		if p.obj == nil || passthrough && i == 0 {
			continue
		}

		if _, ok := p.obj.Type().Underlying().(*types.Pointer); ok {
			continue
		}

		byValue[p.obj] = p
	}

	if len(byValue) == 0 {
		return
	}

	ast.Inspect(m.Decl.Body, func(n ast.Node) bool {
		stmt, ok := n.(ast.Stmt)
		if !ok {
			return true
		}

		for id := range astutil.AllAssigned(stmt) {
			v, ok := d.pass.TypesInfo.Uses[id].(*types.Var)
			if !ok {
				continue
			}

			p, ok := byValue[v]
			if !ok || m.File.NoLintComment(id.Pos()) {
				continue
			}

			diag := diagnostic(id, "MHA008", "Assignment to non-pointer parameter '%s'", id.Name)
			diag.Related = []analysis.RelatedInformation{{Pos: p.Pos(), End: p.End(), Message: "Parameter declared here"}}
			d.report(diag)
		}

		return true
	})
}
