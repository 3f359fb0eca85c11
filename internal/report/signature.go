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
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/patchguard/internal/discover"
	"fillmore-labs.com/patchguard/internal/engine"
	"fillmore-labs.com/patchguard/internal/signature"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// signature reports invalid return types, transpiler parameters and reverse patch signatures.
func (d *diagnostics) signature(results []engine.MethodResult) {
	validator := d.engine.Validator()

	for _, p := range d.class.Providers {
		if ok, want := validator.HasValidProviderReturnType(p.Method, p.Many); !ok {
			d.add(resultRange(p.Decl), "MHA009", "Target method provider '%s' has invalid return type '%s'. Valid return type: %s",
				p.Decl.Name.Name, d.format.typ(p.Method.Result), d.format.typ(want))
		}
	}

	for i, r := range results {
		m := d.class.Methods[i]

		if !r.ValidReturn {
			d.add(resultRange(m.Decl), "MHA009", "Patch method '%s' has invalid return type '%s'. Valid return types: %s",
				m.Decl.Name.Name, d.format.typ(m.Method.Result), d.format.alternatives(r.ReturnTypes))
		}

		if len(r.InvalidTranspilerParams) > 0 {
			params := d.params(m.Decl)

			for _, idx := range r.InvalidTranspilerParams {
				if idx >= len(params) {
					continue
				}

				p := params[idx]
				d.add(p, "MHA015", "Invalid transpiler parameter '%s' of type '%s'", p.Name(), d.format.typ(d.typeOf(p)))
			}
		}

		if r.ReverseSignature != "" {
			if target, ok := r.Target(); ok {
				d.reversePatch(m, target)
			}
		}
	}
}

// reversePatch reports a reverse patch not matching its target, with a fix rewriting the signature.
func (d *diagnostics) reversePatch(m *discover.Method, target *typesys.Method) {
	result, types := signature.ReverseSignature(target)
	params := d.params(m.Decl)

	old := make([]string, len(params))
	for i, p := range params {
		old[i] = p.Name()
	}

	var reserved []string
	if scope := d.pass.TypesInfo.Scopes[m.Decl.Type]; scope != nil {
		reserved = scope.Names()
	}

	names := paramNames(old, len(types), reserved)

	var list strings.Builder

	for i, t := range types {
		if i > 0 {
			list.WriteString(", ")
		}

		fmt.Fprintf(&list, "%s %s", names[i], d.format.typ(t))
	}

	decl := m.Decl
	expected := fmt.Sprintf("%s(%s)%s", decl.Name.Name, list.String(), d.format.result(result))

	diag := diagnostic(decl.Name, "MHA018", "Reverse patch method '%s' signature does not match target method '%s'. Expected 'func %s'",
		decl.Name.Name, d.format.method(target), expected)

	ft := decl.Type
	edits := []analysis.TextEdit{{
		Pos:     ft.Params.Opening,
		End:     ft.Params.Closing + 1,
		NewText: []byte("(" + list.String() + ")"),
	}}

	resultText := d.format.result(result)

	switch {
	case ft.Results != nil:
		edits = append(edits, analysis.TextEdit{Pos: ft.Params.End(), End: ft.Results.End(), NewText: []byte(resultText)})

	case resultText != "":
		end := ft.Params.End()
		edits = append(edits, analysis.TextEdit{Pos: end, End: end, NewText: []byte(resultText)})
	}

	diag.SuggestedFixes = []analysis.SuggestedFix{{Message: "Change signature to " + expected, TextEdits: edits}}
	d.report(diag)
}

// paramNames names n parameters, keeping the names in old by position.
//
// Missing and blank names get a fresh pN, or pN_k when pN is already declared in
// old or reserved.
func paramNames(old []string, n int, reserved []string) []string {
	taken := make(map[string]bool, len(old)+len(reserved)+n)
	for _, name := range reserved {
		taken[name] = true
	}

	for _, name := range old {
		taken[name] = true
	}

	names := make([]string, n)
	kept := make(map[string]bool, n)

	for i := range min(n, len(old)) {
		if name := old[i]; name != "" && name != "_" && !kept[name] {
			names[i], kept[name] = name, true
		}
	}

	for i, name := range names {
		if name != "" {
			continue
		}

		name = fmt.Sprintf("p%d", i)
		for k := 1; taken[name]; k++ {
			name = fmt.Sprintf("p%d_%d", i, k)
		}

		names[i], taken[name] = name, true
	}

	return names
}

// resultRange is the result list of decl, or its name for functions without results.
func resultRange(decl *ast.FuncDecl) analysis.Range {
	if r := decl.Type.Results; r != nil && r.Pos() != token.NoPos {
		return r
	}

	return decl.Name
}
