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

package report_test

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/patchguard/internal/report"
	"fillmore-labs.com/patchguard/internal/testsource"
)

func TestFixEdits(t *testing.T) {
	t.Parallel()

	removeParam := func(i int) func(*types.Info, *ast.FuncDecl) []analysis.TextEdit {
		return func(info *types.Info, decl *ast.FuncDecl) []analysis.TextEdit { return RemoveParam(info, decl, i) }
	}
	insertPointer := func(i int) func(*types.Info, *ast.FuncDecl) []analysis.TextEdit {
		return func(info *types.Info, decl *ast.FuncDecl) []analysis.TextEdit { return InsertPointer(info, decl, i) }
	}
	rename := func(i int, name string) func(*types.Info, *ast.FuncDecl) []analysis.TextEdit {
		return func(info *types.Info, decl *ast.FuncDecl) []analysis.TextEdit { return Rename(info, decl, i, name) }
	}

	tests := []struct {
		name string
		src  string
		edit func(*types.Info, *ast.FuncDecl) []analysis.TextEdit
		want string // empty when no fix is offered
	}{
		{"remove_first", "func f(a int, b string) {}", removeParam(0), "func f(b string) {}"},
		{"remove_last", "func f(a int, b string) {}", removeParam(1), "func f(a int) {}"},
		{"remove_middle", "func f(a int, b string, c bool) {}", removeParam(1), "func f(a int, c bool) {}"},
		{"remove_only", "func f(a int) {}", removeParam(0), "func f() {}"},
		{"remove_shared", "func f(a, b int) {}", removeParam(0), ""},
		{"pointer", "func f(s int) {}", insertPointer(0), "func f(s *int) {}"},
		{"pointer_second", "func f(a string, s int) {}", insertPointer(1), "func f(a string, s *int) {}"},
		{"pointer_shared", "func f(a, s int) {}", insertPointer(1), ""},
		{
			"rename",
			"func f(__0 int) int {\n\tif __0 > 0 {\n\t\treturn __0\n\t}\n\n\treturn 0\n}",
			rename(0, "amount"),
			"func f(amount int) int {\n\tif amount > 0 {\n\t\treturn amount\n\t}\n\n\treturn 0\n}",
		},
		{"rename_conflict", "func f(__0 int) int {\n\tamount := __0\n\n\treturn amount\n}", rename(0, "amount"), ""},
		{"rename_nested_conflict", "func f(__0 int) {\n\tif true {\n\t\tamount := 1\n\t\t_ = amount\n\t}\n}", rename(0, "amount"), ""},
		{"rename_blank", "func f(__0 int) {}", rename(0, "_"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const header = "package test\n\n"

			src := header + tt.src + "\n"
			fset, f := testsource.Parse(t, src)
			_, info := testsource.Check(t, fset, f)
			decl := f.Decls[0].(*ast.FuncDecl)

			edits := tt.edit(info, decl)
			if tt.want == "" {
				if edits != nil {
					t.Errorf("Expected no fix, got %v", edits)
				}

				return
			}

			if got, want := apply(fset, src, edits), header+tt.want+"\n"; got != want {
				t.Errorf("Got %q, want %q", got, want)
			}
		})
	}
}

// apply applies non-overlapping edits to src.
func apply(fset *token.FileSet, src string, edits []analysis.TextEdit) string {
	edits = slices.Clone(edits)
	slices.SortFunc(edits, func(a, b analysis.TextEdit) int { return int(b.Pos - a.Pos) })

	out := []byte(src)
	for _, e := range edits {
		pos, end := fset.Position(e.Pos).Offset, fset.Position(e.End).Offset
		out = slices.Concat(out[:pos], e.NewText, out[end:])
	}

	return string(out)
}

func TestParamNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		old      []string
		n        int
		reserved []string
		want     []string
	}{
		{"keep", []string{"a", "b"}, 2, nil, []string{"a", "b"}},
		{"append", []string{"p"}, 2, nil, []string{"p", "p1"}},
		{"collision", []string{"p1"}, 2, nil, []string{"p1", "p1_1"}},
		{"blank", []string{"_", "p0"}, 2, nil, []string{"p0_1", "p0"}},
		{"unnamed", []string{"", ""}, 2, nil, []string{"p0", "p1"}},
		{"duplicate", []string{"a", "a"}, 2, nil, []string{"a", "p1"}},
		{"reserved", nil, 2, []string{"p0"}, []string{"p0_1", "p1"}},
		{"truncate", []string{"a", "b", "c"}, 2, nil, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParamNames(tt.old, tt.n, tt.reserved)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParamNames() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
