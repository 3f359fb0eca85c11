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

// Package gotypes implements [typesys.Oracle] over [go/types].
//
// Go has no properties, constructors or synthesized state machines. They are mapped by convention:
// a method X() is the getter and SetX(v) the setter of property X, a package level function
// NewT… returning T or *T is a constructor of T.
package gotypes

import (
	"go/types"
	"iter"
	"strings"

	"fillmore-labs.com/patchguard/internal/typesys"
)

// DefaultHarmony is the default name of the package declaring the patching API types.
const DefaultHarmony = "harmony"

type void struct{}

func (void) String() string { return "void" }

// Void is the result type of functions without results.
var Void typesys.Type = void{}

// Oracle answers type system queries for one package and its transitive imports.
type Oracle struct {
	pkg      *types.Package
	packages map[string][]*types.Package
	ctxt     *types.Context
}

var _ typesys.Oracle = (*Oracle)(nil)

// New creates an [Oracle] for pkg.
func New(pkg *types.Package) *Oracle {
	o := &Oracle{
		pkg:      pkg,
		packages: make(map[string][]*types.Package),
		ctxt:     types.NewContext(),
	}

	seen := make(map[*types.Package]struct{})
	queue := []*types.Package{pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		o.packages[p.Name()] = append(o.packages[p.Name()], p)
		queue = append(queue, p.Imports()...)
	}

	return o
}

// Names returns the names of the well-known types, declared in the package named harmony.
func Names(harmony string) typesys.Names {
	return typesys.Names{
		CodeInstruction: typesys.QualifiedName{Namespace: harmony, Name: "CodeInstruction"},
		MethodBase:      typesys.QualifiedName{Namespace: harmony, Name: "MethodBase"},
		ILGenerator:     typesys.QualifiedName{Namespace: harmony, Name: "ILGenerator"},
		Sequence:        typesys.QualifiedName{Namespace: "iter", Name: "Seq"},
	}
}

// Reachable reports whether a package with the given name is the analyzed package or one of its imports.
func (o *Oracle) Reachable(name string) bool {
	_, ok := o.packages[name]

	return ok
}

// LookupType implements [typesys.Oracle]. The namespace is a package name, empty for the universe scope.
func (o *Oracle) LookupType(namespace, name string) (typesys.Type, bool) {
	if namespace == "" {
		return typeName(types.Universe.Lookup(name))
	}

	for _, p := range o.packages[namespace] {
		if t, ok := typeName(p.Scope().Lookup(name)); ok {
			return t, true
		}
	}

	return nil, false
}

func typeName(obj types.Object) (typesys.Type, bool) {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, false
	}

	return tn.Type(), true
}

// Special implements [typesys.Oracle].
func (o *Oracle) Special(s typesys.SpecialType) (typesys.Type, bool) {
	switch s {
	case typesys.VoidType:
		return Void, true
	case typesys.BoolType:
		return types.Typ[types.Bool], true
	case typesys.ObjectType:
		return types.Universe.Lookup("any").Type(), true
	case typesys.ExceptionType:
		return types.Universe.Lookup("error").Type(), true
	default:
		return nil, false
	}
}

// Members implements [typesys.Oracle].
func (o *Oracle) Members(t typesys.Type, c typesys.Category) iter.Seq[typesys.Member] {
	return func(yield func(typesys.Member) bool) {
		typ, ok := t.(types.Type)
		if !ok {
			return
		}

		switch c {
		case typesys.MethodCategory:
			for m := range o.methods(typ) {
				if !yield(m) {
					return
				}
			}

		case typesys.FieldCategory:
			for f := range fields(typ) {
				if !yield(f) {
					return
				}
			}

		case typesys.PropertyCategory:
			for _, p := range o.properties(typ) {
				if !yield(p) {
					return
				}
			}

		case typesys.ConstructorCategory:
			for m := range o.constructors(typ) {
				if !yield(m) {
					return
				}
			}
		}
	}
}

func (o *Oracle) methods(t types.Type) iter.Seq[*typesys.Method] {
	return func(yield func(*typesys.Method) bool) {
		recv := t
		if _, ok := t.Underlying().(*types.Interface); !ok {
			if _, ok := t.(*types.Pointer); !ok {
				recv = types.NewPointer(t)
			}
		}

		mset := types.NewMethodSet(recv)
		for sel := range mset.Methods() {
			fn, ok := sel.Obj().(*types.Func)
			if !ok {
				continue
			}

			if !yield(Method(fn, t)) {
				return
			}
		}
	}
}

func fields(t types.Type) iter.Seq[*typesys.Field] {
	return func(yield func(*typesys.Field) bool) {
		s, ok := deref(t).Underlying().(*types.Struct)
		if !ok {
			return
		}

		for v := range s.Fields() {
			if !yield(&typesys.Field{Name: v.Name(), Type: v.Type()}) {
				return
			}
		}
	}
}

// properties pairs X() getters with SetX(v) setters.
func (o *Oracle) properties(t types.Type) []*typesys.Property {
	var (
		props  []*typesys.Property
		byName = make(map[string]*typesys.Property)
	)

	property := func(name string) *typesys.Property {
		p, ok := byName[name]
		if !ok {
			p = &typesys.Property{Name: name}
			byName[name] = p
			props = append(props, p)
		}

		return p
	}

	for m := range o.methods(t) {
		fn, ok := m.Object.(*types.Func)
		if !ok {
			continue
		}

		sig := fn.Signature()

		switch params, results := sig.Params().Len(), sig.Results().Len(); {
		case params == 0 && results == 1:
			property(m.Name).Getter = m

		case params == 1 && results == 0 && len(m.Name) > len("Set") && strings.HasPrefix(m.Name, "Set"):
			property(strings.TrimPrefix(m.Name, "Set")).Setter = m
		}
	}

	return props
}

func (o *Oracle) constructors(t types.Type) iter.Seq[*typesys.Method] {
	return func(yield func(*typesys.Method) bool) {
		named, ok := deref(t).(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			return
		}

		scope := named.Obj().Pkg().Scope()
		prefix := "New" + named.Obj().Name()

		for _, name := range scope.Names() {
			if !strings.HasPrefix(name, prefix) {
				continue
			}

			fn, ok := scope.Lookup(name).(*types.Func)
			if !ok {
				continue
			}

			sig := fn.Signature()
			if sig.Results().Len() == 0 || !types.Identical(deref(sig.Results().At(0).Type()), named) {
				continue
			}

			if !yield(Method(fn, t)) {
				return
			}
		}
	}
}

// ClassifyConversion implements [typesys.Oracle]. Go has no user-defined conversions.
func (o *Oracle) ClassifyConversion(from, to typesys.Type) typesys.Conversion {
	f, ok1 := from.(types.Type)
	t, ok2 := to.(types.Type)

	switch {
	case !ok1 || !ok2:
		if from == Void && to == Void {
			return typesys.IdentityConversion
		}

		return typesys.NoConversion

	case types.Identical(f, t):
		return typesys.IdentityConversion

	case isTuple(f) || isTuple(t):
		return typesys.NoConversion

	case types.AssignableTo(f, t):
		return typesys.ImplicitConversion

	default:
		return typesys.NoConversion
	}
}

func isTuple(t types.Type) bool {
	_, ok := t.(*types.Tuple)

	return ok
}

// StateMachine implements [typesys.Oracle]. Go does not synthesize state machines.
func (o *Oracle) StateMachine(*typesys.Method, typesys.StateMachineKind) (typesys.Type, bool) {
	return nil, false
}

// ArrayOf implements [typesys.Oracle], returning a slice type.
func (o *Oracle) ArrayOf(elem typesys.Type) typesys.Type {
	t, ok := elem.(types.Type)
	if !ok {
		t = types.Typ[types.Invalid]
	}

	return types.NewSlice(t)
}

// Instantiate implements [typesys.Oracle].
func (o *Oracle) Instantiate(generic typesys.Type, args ...typesys.Type) (typesys.Type, bool) {
	named, ok := generic.(*types.Named)
	if !ok || named.TypeParams().Len() != len(args) {
		return nil, false
	}

	targs := make([]types.Type, len(args))
	for i, a := range args {
		if targs[i], ok = a.(types.Type); !ok {
			return nil, false
		}
	}

	inst, err := types.Instantiate(o.ctxt, named, targs, true)
	if err != nil {
		return nil, false
	}

	return inst, true
}

// InstanceTypes implements [typesys.Oracle].
//
// A named type T is bound as T or *T. Unexported types of other packages can only be bound to any.
func (o *Oracle) InstanceTypes(t typesys.Type) []typesys.Type {
	typ, ok := t.(types.Type)
	if !ok {
		return nil
	}

	typ = deref(typ)

	if named, ok := typ.(*types.Named); ok {
		if obj := named.Obj(); !obj.Exported() && obj.Pkg() != o.pkg {
			return []typesys.Type{types.Universe.Lookup("any").Type()}
		}
	}

	return []typesys.Type{typ, types.NewPointer(typ)}
}

func deref(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}
