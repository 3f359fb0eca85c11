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

package discover

import (
	"cmp"
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/patchguard/internal/astutil"
	"fillmore-labs.com/patchguard/internal/directive"
	"fillmore-labs.com/patchguard/internal/gotypes"
	"fillmore-labs.com/patchguard/internal/patch"
)

// Options control discovery.
type Options struct {
	// Generated includes generated files.
	Generated bool
}

// Discover finds all patch classes of the package, ordered by declaration.
func Discover(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, opts Options) []*Class {
	d := discoverer{
		pass:    p,
		classes: make(map[*types.TypeName]*Class),
		skipped: make(map[*types.TypeName]struct{}),
	}

	for f := range in.Root().Children() {
		if ctx.Err() != nil {
			return nil
		}

		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		current := astutil.NewCurrentFile(p.Fset, file)
		if !current.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		if current.Generated() && !opts.Generated {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.GenDecl:
				d.typeDecl(current, decl)

			case *ast.FuncDecl:
				d.funcDecl(current, decl)
			}
		}
	}

	return d.result()
}

type discoverer struct {
	pass    *analysis.Pass
	classes map[*types.TypeName]*Class
	skipped map[*types.TypeName]struct{}
}

func (d *discoverer) class(obj *types.TypeName) *Class {
	c, ok := d.classes[obj]
	if !ok {
		c = &Class{Obj: obj}
		d.classes[obj] = c
	}

	return c
}

func (d *discoverer) typeDecl(current astutil.CurrentFile, decl *ast.GenDecl) {
	if decl.Tok != token.TYPE {
		return
	}

	for _, spec := range decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		doc := ts.Doc
		if doc == nil && len(decl.Specs) == 1 {
			doc = decl.Doc
		}

		obj, ok := d.pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
		if !ok {
			continue
		}

		if astutil.DocHasNoLint(doc) {
			d.skipped[obj] = struct{}{}
			delete(d.classes, obj)

			continue
		}

		c := d.class(obj)
		c.Spec, c.File, c.Directives = ts, current, d.parse(doc)
	}
}

func (d *discoverer) funcDecl(current astutil.CurrentFile, decl *ast.FuncDecl) {
	if decl.Recv == nil || astutil.DocHasNoLint(decl.Doc) {
		return
	}

	fn, ok := d.pass.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return
	}

	named, ok := deref(recv.Type()).(*types.Named)
	if !ok {
		return
	}

	obj := named.Origin().Obj()
	if _, ok := d.skipped[obj]; ok {
		return
	}

	c := d.class(obj)
	directives := d.parse(decl.Doc)

	switch {
	case len(directives) == 0:
		if _, ok := patch.ParseKind(decl.Name.Name); ok {
			c.candidates = append(c.candidates, d.method(current, decl, fn, nil))
		}

	case hasVerb(directives, directive.TargetMethodVerb), hasVerb(directives, directive.TargetMethodsVerb):
		c.Providers = append(c.Providers, &Provider{
			Decl:       decl,
			Method:     gotypes.Method(fn, obj.Type()),
			Many:       hasVerb(directives, directive.TargetMethodsVerb),
			Directives: directives,
		})

	case hasVerb(directives, directive.PatchVerb), hasVerb(directives, directive.KindVerb):
		c.Methods = append(c.Methods, d.method(current, decl, fn, directives))

	default:
		c.Others = append(c.Others, d.method(current, decl, fn, directives))
	}
}

func (d *discoverer) method(current astutil.CurrentFile, decl *ast.FuncDecl, fn *types.Func, directives []directive.Directive) *Method {
	return &Method{
		Decl:       decl,
		File:       current,
		Method:     gotypes.PatchMethod(fn, d.nested(decl)),
		Directives: directives,
	}
}

// nested returns the result types of function literals in the body of decl.
func (d *discoverer) nested(decl *ast.FuncDecl) []types.Type {
	if decl.Body == nil {
		return nil
	}

	var nested []types.Type

	ast.Inspect(decl.Body, func(n ast.Node) bool {
		lit, ok := n.(*ast.FuncLit)
		if !ok {
			return true
		}

		if sig, ok := d.pass.TypesInfo.TypeOf(lit).(*types.Signature); ok && sig.Results().Len() == 1 {
			nested = append(nested, sig.Results().At(0).Type())
		}

		return true
	})

	return nested
}

func (d *discoverer) parse(doc *ast.CommentGroup) []directive.Directive {
	if doc == nil {
		return nil
	}

	var directives []directive.Directive

	for _, c := range doc.List {
		resolve := directive.EvalResolver(d.pass.Fset, d.pass.Pkg, c.Pos())
		if dir, ok := directive.Parse(c, resolve); ok {
			directives = append(directives, dir)
		}
	}

	return directives
}

// result returns the classes with directives, ordered by position.
//
// Without a class-level patch directive, only annotated methods are patch methods.
// With one, methods named like a patch kind are too.
func (d *discoverer) result() []*Class {
	classes := make([]*Class, 0, len(d.classes))

	for _, c := range d.classes {
		if c.HasPatch() {
			c.Methods = append(c.Methods, c.candidates...)
			slices.SortFunc(c.Methods, func(a, b *Method) int { return cmp.Compare(a.Decl.Pos(), b.Decl.Pos()) })
		}

		c.candidates = nil

		if len(c.Directives) == 0 && len(c.Methods) == 0 && len(c.Providers) == 0 && len(c.Others) == 0 {
			continue
		}

		classes = append(classes, c)
	}

	slices.SortFunc(classes, func(a, b *Class) int { return cmp.Compare(a.Obj.Pos(), b.Obj.Pos()) })

	return classes
}

func deref(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

func fragments(directives []directive.Directive) []*patch.Fragment {
	var frags []*patch.Fragment

	for _, d := range directives {
		if d.Verb == directive.PatchVerb && d.Fragment != nil {
			frags = append(frags, d.Fragment)
		}
	}

	return frags
}

func patchKind(d directive.Directive) patch.KindAssertion {
	return patch.KindAssertion{Kind: d.Kind, Fragment: d.Fragment}
}
