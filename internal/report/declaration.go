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
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/patchguard/internal/directive"
	"fillmore-labs.com/patchguard/internal/engine"
	"fillmore-labs.com/patchguard/internal/patch"
)

// invalidDirectives reports the parse errors of all directives of the class.
func (d *diagnostics) invalidDirectives() {
	d.directiveErrors(d.class.Directives)

	for _, m := range d.class.Methods {
		d.directiveErrors(m.Directives)
	}

	for _, p := range d.class.Providers {
		d.directiveErrors(p.Directives)
	}

	for _, m := range d.class.Others {
		d.directiveErrors(m.Directives)
	}
}

func (d *diagnostics) directiveErrors(directives []directive.Directive) {
	for _, dir := range directives {
		for _, e := range dir.Errors {
			d.list = append(d.list, analysis.Diagnostic{
				Pos:     e.Pos,
				End:     e.End,
				Message: "Invalid directive: " + e.Message,
			})
		}
	}
}

// declaration reports missing, unused and conflicting declarations.
func (d *diagnostics) declaration(results []engine.MethodResult) {
	c := d.class

	switch {
	case !c.HasPatch() && len(c.Methods) > 0:
		d.add(d.classRange(), "MHA001", "Type '%s' lacks a '%spatch' directive, but has patch methods", c.Obj.Name(), directive.Prefix)

	case c.HasPatch() && len(c.Methods) == 0:
		d.add(d.classRange(), "MHA006", "Patch class '%s' contains no patch methods", c.Obj.Name())
	}

	seen := make(map[*patch.Fragment]struct{})

	for i, r := range results {
		decl := c.Methods[i].Decl

		if _, ok := r.Kind(); !ok {
			d.add(decl.Name, "MHA002", "Patch method '%s' requires a patch kind", decl.Name.Name)
		}

		for _, f := range r.Conflicts {
			if _, ok := seen[f]; ok {
				continue
			}

			seen[f] = struct{}{}

			d.add(f, "MHA010", "Conflicting patch directives: %s", fieldNames(f))
		}

		for _, f := range r.KindConflicts {
			d.add(f, "MHA011", "Patch method '%s' has conflicting patch kind %s", decl.Name.Name, kindName(f))
		}
	}
}

var declarativeFields = [...]patch.Field{
	patch.TargetTypeField, patch.MemberNameField, patch.MemberKindField, patch.ArgumentTypesField,
}

// fieldNames lists the declarative fields asserted by f.
func fieldNames(f *patch.Fragment) string {
	var names []string

	for _, field := range declarativeFields {
		if f.Names(field) {
			names = append(names, field.String())
		}
	}

	return strings.Join(names, ", ")
}

func kindName(f *patch.Fragment) string {
	for _, a := range f.Args {
		if k, ok := a.Value.Scalar.(patch.Kind); ok && a.Field == patch.PatchKindField {
			return directive.Prefix + strings.ToLower(k.String())
		}
	}

	return "?"
}
