// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// rename generates the edits renaming the parameter v of decl to name.
//
// It returns nil when name is already declared in the scope hierarchy of v.
func rename(info *types.Info, decl *ast.FuncDecl, v *types.Var, name string) []analysis.TextEdit {
	if v == nil || name == "_" {
		return nil
	}

	if scope := v.Parent(); scope == nil || checkParents(scope, name) || checkChildren(scope, name) {
		return nil
	}

	var edits []analysis.TextEdit

	// Find all occurrences of this variable (both definitions and uses)
	ast.Inspect(decl, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok || !idIsVar(info, id, v) {
			return true
		}

		edits = append(edits, analysis.TextEdit{Pos: id.Pos(), End: id.End(), NewText: []byte(name)})

		return true
	})

	return edits
}

// renameFixes offers a fix for each name v can be renamed to.
func renameFixes(info *types.Info, decl *ast.FuncDecl, v *types.Var, names []string) []analysis.SuggestedFix {
	var fixes []analysis.SuggestedFix

	for _, name := range names {
		if edits := rename(info, decl, v, name); len(edits) > 0 {
			fixes = append(fixes, analysis.SuggestedFix{Message: "Rename to " + name, TextEdits: edits})
		}
	}

	return fixes
}

// idIsVar checks if the given identifier corresponds to the specified variable.
func idIsVar(info *types.Info, id *ast.Ident, v *types.Var) bool {
	if use, ok := info.Uses[id]; ok {
		return use == v
	}

	if def, ok := info.Defs[id]; ok {
		return def == v
	}

	return false
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
func checkChildren(scope *types.Scope, name string) bool {
	for child := range scope.Children() {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}
