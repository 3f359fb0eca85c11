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

// Package testsource provides utilities for parsing and type checking Go source code in tests.
//
// It handles the boilerplate of checking a package "test" that imports a minimal
// "harmony" package declaring the patching API types.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Harmony is the source of the "harmony" package available to checked sources.
const Harmony = `package harmony

import "iter"

type CodeInstruction struct {
	Opcode  string
	Operand any
}

type MethodBase interface {
	Name() string
}

type ILGenerator struct{}

type Instructions = iter.Seq[CodeInstruction]
`

// Parse parses a complete Go source file named test.go.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// The file may import "harmony", which resolves to [Harmony].
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	imp := &harmonyImporter{fset: fset, fallback: importer.Default()}

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: imp}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Inspect parses and type checks src and returns an inspector over it.
func Inspect(tb testing.TB, src string) (*token.FileSet, *inspector.Inspector, *types.Package, *types.Info) {
	tb.Helper()

	fset, f := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	return fset, inspector.New([]*ast.File{f}), pkg, info
}

type harmonyImporter struct {
	fset     *token.FileSet
	fallback types.Importer
	harmony  *types.Package
}

func (h *harmonyImporter) Import(path string) (*types.Package, error) {
	if path != "harmony" {
		return h.fallback.Import(path)
	}

	if h.harmony != nil {
		return h.harmony, nil
	}

	f, err := parser.ParseFile(h.fset, "harmony.go", Harmony, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	conf := types.Config{Importer: h.fallback}

	pkg, err := conf.Check("harmony", h.fset, []*ast.File{f}, nil)
	if err != nil {
		return nil, err
	}

	h.harmony = pkg

	return pkg, nil
}
