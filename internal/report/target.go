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
	"fmt"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/patchguard/internal/directive"
	"fillmore-labs.com/patchguard/internal/discover"
	"fillmore-labs.com/patchguard/internal/engine"
	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/resolve"
)

// target reports target method definitions and resolution failures.
//
// Classes with target method providers are not resolved.
func (d *diagnostics) target(ctx context.Context, results []engine.MethodResult) {
	if len(d.class.Providers) > 0 {
		d.targetDefinitions()

		return
	}

	for i, r := range results {
		if ctx.Err() != nil {
			return
		}

		m := d.class.Methods[i]

		switch r.Resolution.Outcome() {
		case resolve.Unresolved:
			if len(r.Hints) > 0 {
				d.missingMemberKind(m, r.Hints)

				continue
			}

			if d.typeNamed(m) {
				continue
			}

			d.add(m.Decl.Name, "MHA005", "Cannot find target method for patch method '%s'", m.Decl.Name.Name)

		case resolve.Ambiguous:
			candidates := make([]string, 0, len(r.Resolution.Candidates))
			for _, t := range r.Resolution.Candidates {
				candidates = append(candidates, d.format.method(t))
			}

			d.add(m.Decl.Name, "MHA004", "Ambiguous target method for patch method '%s'. Candidate methods: %s",
				m.Decl.Name.Name, strings.Join(candidates, ", "))

		case resolve.Resolved:
		}
	}
}

// targetDefinitions reports classes with more than one target method definition.
func (d *diagnostics) targetDefinitions() {
	var related []analysis.RelatedInformation

	for _, p := range d.class.Providers {
		related = append(related, analysis.RelatedInformation{
			Pos:     p.Decl.Name.Pos(),
			End:     p.Decl.Name.End(),
			Message: "Target method provider " + p.Decl.Name.Name,
		})
	}

	parameterized := func(directives []directive.Directive) {
		for _, dir := range directives {
			if dir.Parameterized() {
				related = append(related, analysis.RelatedInformation{
					Pos:     dir.Fragment.Pos(),
					End:     dir.Fragment.End(),
					Message: "Parameterized patch directive",
				})
			}
		}
	}

	parameterized(d.class.Directives)

	for _, m := range d.class.Methods {
		parameterized(m.Directives)
	}

	if len(related) <= 1 {
		return
	}

	diag := diagnostic(d.classRange(), "MHA007",
		"Patch class '%s' has more than one of: targetmethod, targetmethods, parameterized patch directives", d.class.Obj.Name())
	diag.Related = related
	d.report(diag)
}

// missingMemberKind reports member kinds that would resolve the target, with fixes adding them.
func (d *diagnostics) missingMemberKind(m *discover.Method, hints []patch.MemberKind) {
	for _, k := range hints {
		diag := diagnostic(m.Decl.Name, "MHA003", "Cannot find target method for patch method '%s', but a matching %s was found",
			m.Decl.Name.Name, strings.ToLower(k.String()))

		diag.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   fmt.Sprintf("Add kind=%s", k),
			TextEdits: []analysis.TextEdit{addDirective(m.Decl, fmt.Sprintf("%spatch kind=%s", directive.Prefix, k))},
		}}
		d.report(diag)
	}
}

// typeNamed reports whether the target type of m is declared by name only.
func (d *diagnostics) typeNamed(m *discover.Method) bool {
	names := func(directives []directive.Directive) bool {
		for _, dir := range directives {
			if dir.Verb == directive.PatchVerb && dir.Fragment != nil && dir.Fragment.Names(patch.TypeNameField) {
				return true
			}
		}

		return false
	}

	return names(d.class.Directives) || names(m.Directives)
}

// addDirective inserts a directive line below the doc comment of decl.
func addDirective(decl *ast.FuncDecl, text string) analysis.TextEdit {
	if decl.Doc == nil {
		return analysis.TextEdit{Pos: decl.Pos(), End: decl.Pos(), NewText: []byte(text + "\n")}
	}

	end := decl.Doc.End()

	return analysis.TextEdit{Pos: end, End: end, NewText: []byte("\n" + text)}
}
