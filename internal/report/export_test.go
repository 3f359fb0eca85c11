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
	"go/types"

	"golang.org/x/tools/go/analysis"
)

var ParamNames = paramNames

func testParams(info *types.Info, decl *ast.FuncDecl) []param {
	d := &diagnostics{Reporter: &Reporter{pass: &analysis.Pass{TypesInfo: info}}}

	return d.params(decl)
}

func RemoveParam(info *types.Info, decl *ast.FuncDecl, i int) []analysis.TextEdit {
	return removeParam(testParams(info, decl), i)
}

func InsertPointer(info *types.Info, decl *ast.FuncDecl, i int) []analysis.TextEdit {
	return insertPointer(testParams(info, decl)[i])
}

func Rename(info *types.Info, decl *ast.FuncDecl, i int, name string) []analysis.TextEdit {
	return rename(info, decl, testParams(info, decl)[i].obj, name)
}
