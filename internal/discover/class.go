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

// Package discover finds patch classes, patch methods and target method providers in a package.
package discover

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/patchguard/internal/astutil"
	"fillmore-labs.com/patchguard/internal/directive"
	"fillmore-labs.com/patchguard/internal/engine"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// Class is a discovered patch class.
type Class struct {
	Obj  *types.TypeName
	Spec *ast.TypeSpec // nil when declared in a skipped file
	File astutil.CurrentFile

	// Directives are the class-level directives.
	Directives []directive.Directive

	Methods   []*Method
	Providers []*Provider
	// Others are methods with only invalid directives.
	Others []*Method

	candidates []*Method // methods named like a patch kind without directives
}

// Method is a discovered patch method.
type Method struct {
	Decl       *ast.FuncDecl
	File       astutil.CurrentFile
	Method     *typesys.Method
	Directives []directive.Directive
}

// Provider is a method declaring the target methods of its class.
type Provider struct {
	Decl       *ast.FuncDecl
	Method     *typesys.Method
	Many       bool
	Directives []directive.Directive
}

// HasPatch reports whether the class carries a //harmony:patch directive.
func (c *Class) HasPatch() bool {
	return hasVerb(c.Directives, directive.PatchVerb)
}

// Parameterized reports whether any class-level patch directive asserts a value.
func (c *Class) Parameterized() bool {
	for _, d := range c.Directives {
		if d.Verb == directive.PatchVerb && d.Parameterized() {
			return true
		}
	}

	return false
}

// Engine returns the input for the analysis engine.
func (c *Class) Engine() engine.Class {
	ec := engine.Class{
		Type:      c.Obj.Type(),
		Fragments: fragments(c.Directives),
		Methods:   make([]engine.Method, 0, len(c.Methods)),
	}

	for _, m := range c.Methods {
		ec.Methods = append(ec.Methods, m.Engine())
	}

	return ec
}

// Engine returns the input for the analysis engine.
func (m *Method) Engine() engine.Method {
	em := engine.Method{Method: m.Method, Fragments: fragments(m.Directives)}

	for _, d := range m.Directives {
		if d.Verb == directive.KindVerb {
			em.Kinds = append(em.Kinds, patchKind(d))
		}
	}

	return em
}

func hasVerb(directives []directive.Directive, verb directive.Verb) bool {
	for _, d := range directives {
		if d.Verb == verb {
			return true
		}
	}

	return false
}
