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
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// param is one parameter of a function declaration.
type param struct {
	field *ast.Field
	name  *ast.Ident // nil for unnamed parameters
	obj   *types.Var
}

// Pos implements [analysis.Range].
func (p param) Pos() token.Pos {
	if p.name != nil {
		return p.name.Pos()
	}

	return p.field.Pos()
}

// End implements [analysis.Range].
func (p param) End() token.Pos { return p.field.End() }

// Name returns the parameter name, empty when unnamed.
func (p param) Name() string {
	if p.name == nil {
		return ""
	}

	return p.name.Name
}

// params flattens the parameter list of decl.
func (d *diagnostics) params(decl *ast.FuncDecl) []param {
	var params []param

	for _, field := range decl.Type.Params.List {
		if len(field.Names) == 0 {
			params = append(params, param{field: field})

			continue
		}

		for _, name := range field.Names {
			v, _ := d.pass.TypesInfo.Defs[name].(*types.Var)
			params = append(params, param{field: field, name: name, obj: v})
		}
	}

	return params
}

// typeOf returns the declared type of a parameter.
func (d *diagnostics) typeOf(p param) types.Type {
	if p.obj != nil {
		return p.obj.Type()
	}

	return d.pass.TypesInfo.TypeOf(p.field.Type)
}

// removeParam deletes parameter i, including the separating comma.
//
// Parameters sharing their type with others are not removed.
func removeParam(params []param, i int) []analysis.TextEdit {
	p := params[i]
	if len(p.field.Names) > 1 {
		return nil
	}

	pos, end := p.field.Pos(), p.field.End()

	switch {
	case i+1 < len(params):
		end = params[i+1].field.Pos()

	case i > 0:
		pos = params[i-1].field.End()
	}

	return []analysis.TextEdit{{Pos: pos, End: end}}
}

// insertPointer makes the type of a parameter a pointer.
func insertPointer(p param) []analysis.TextEdit {
	if len(p.field.Names) > 1 {
		return nil
	}

	pos := p.field.Type.Pos()

	return []analysis.TextEdit{{Pos: pos, End: pos, NewText: []byte("*")}}
}
