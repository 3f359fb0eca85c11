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

// Package typestest provides a fake [typesys.Oracle] over a small, explicitly built type graph.
package typestest

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"fillmore-labs.com/patchguard/internal/typesys"
)

// Type is a type of a [Universe].
type Type struct {
	Namespace string
	Name      string

	arity       int
	unnameable  bool
	bases       []*Type
	userDefined []*Type

	methods []*typesys.Method
	ctors   []*typesys.Method
	fields  []*typesys.Field
	props   []*typesys.Property
}

// String returns the simple type name.
func (t *Type) String() string { return t.Name }

// Universe is a fake type system implementing [typesys.Oracle].
type Universe struct {
	Void, Bool, Object, Exception *Type
	Int, Long, String             *Type

	CodeInstruction, MethodBase, ILGenerator *Type
	Enumerable                               *Type

	mu       sync.Mutex
	types    map[string]*Type
	derived  map[string]*Type
	machines map[machineKey]*Type
}

type machineKey struct {
	method *typesys.Method
	kind   typesys.StateMachineKind
}

var _ typesys.Oracle = (*Universe)(nil)

// New creates a [Universe] populated with the types the engine expects.
func New() *Universe {
	u := &Universe{
		types:    make(map[string]*Type),
		derived:  make(map[string]*Type),
		machines: make(map[machineKey]*Type),
	}

	u.Object = u.Declare("System", "object")
	u.Void = u.Declare("System", "void")
	u.Bool = u.Declare("System", "bool")
	u.Int = u.Declare("System", "int")
	u.Long = u.Declare("System", "long")
	u.String = u.Declare("System", "string")
	u.Exception = u.Declare("System", "Exception")

	u.CodeInstruction = u.Declare("HarmonyLib", "CodeInstruction")
	u.MethodBase = u.Declare("System.Reflection", "MethodBase")
	u.ILGenerator = u.Declare("System.Reflection.Emit", "ILGenerator")

	u.Enumerable = u.Declare("System.Collections.Generic", "IEnumerable")
	u.Enumerable.arity = 1

	return u
}

// Names returns the well-known type names of this universe.
func Names() typesys.Names {
	return typesys.Names{
		CodeInstruction: typesys.QualifiedName{Namespace: "HarmonyLib", Name: "CodeInstruction"},
		MethodBase:      typesys.QualifiedName{Namespace: "System.Reflection", Name: "MethodBase"},
		ILGenerator:     typesys.QualifiedName{Namespace: "System.Reflection.Emit", Name: "ILGenerator"},
		Sequence:        typesys.QualifiedName{Namespace: "System.Collections.Generic", Name: "IEnumerable"},
		Advance:         "MoveNext",
	}
}

// Declare adds a named type deriving from the given bases.
func (u *Universe) Declare(namespace, name string, bases ...*Type) *Type {
	t := &Type{Namespace: namespace, Name: name, bases: bases}
	u.types[namespace+"."+name] = t

	return t
}

// Remove deletes a type from lookups, simulating a host without it.
func (u *Universe) Remove(t *Type) {
	delete(u.types, t.Namespace+"."+t.Name)
}

// Unnameable marks t as not referenceable by name.
func (t *Type) Unnameable() *Type {
	t.unnameable = true

	return t
}

// ConvertsTo adds a user-defined implicit conversion from t.
func (t *Type) ConvertsTo(to *Type) {
	t.userDefined = append(t.userDefined, to)
}

// Param creates a [typesys.Parameter].
func Param(name string, t typesys.Type) typesys.Parameter {
	return typesys.Parameter{Name: name, Type: t}
}

// Ref creates a by-reference [typesys.Parameter].
func Ref(name string, t typesys.Type) typesys.Parameter {
	return typesys.Parameter{Name: name, Type: t, ByRef: true}
}

// Method adds an instance method.
func (t *Type) Method(name string, result typesys.Type, params ...typesys.Parameter) *typesys.Method {
	m := &typesys.Method{Name: name, Declaring: t, Params: params, Result: result}
	t.methods = append(t.methods, m)

	return m
}

// StaticMethod adds a static method.
func (t *Type) StaticMethod(name string, result typesys.Type, params ...typesys.Parameter) *typesys.Method {
	m := t.Method(name, result, params...)
	m.Static = true

	return m
}

// Constructor adds an instance constructor.
func (t *Type) Constructor(void typesys.Type, params ...typesys.Parameter) *typesys.Method {
	m := &typesys.Method{Name: ".ctor", Declaring: t, Params: params, Result: void}
	t.ctors = append(t.ctors, m)

	return m
}

// StaticConstructor adds a static constructor.
func (t *Type) StaticConstructor(void typesys.Type) *typesys.Method {
	m := &typesys.Method{Name: ".cctor", Declaring: t, Result: void, Static: true}
	t.ctors = append(t.ctors, m)

	return m
}

// Field adds a field.
func (t *Type) Field(name string, typ typesys.Type) *typesys.Field {
	f := &typesys.Field{Name: name, Type: typ}
	t.fields = append(t.fields, f)

	return f
}

// Property adds a property with the requested accessors.
func (t *Type) Property(void typesys.Type, name string, typ typesys.Type, get, set bool) *typesys.Property {
	p := &typesys.Property{Name: name}

	if get {
		p.Getter = &typesys.Method{Name: "get_" + name, Declaring: t, Result: typ}
	}

	if set {
		p.Setter = &typesys.Method{Name: "set_" + name, Declaring: t, Params: []typesys.Parameter{Param("value", typ)}, Result: void}
	}

	t.props = append(t.props, p)

	return p
}

// Indexer adds an indexer with getter and setter.
func (t *Type) Indexer(void typesys.Type, typ typesys.Type, index ...typesys.Parameter) *typesys.Property {
	p := &typesys.Property{Name: "this[]", Indexer: true}
	p.Getter = &typesys.Method{Name: "get_Item", Declaring: t, Params: index, Result: typ}
	p.Setter = &typesys.Method{Name: "set_Item", Declaring: t, Params: append(slices.Clip(index), Param("value", typ)), Result: void}
	t.props = append(t.props, p)

	return p
}

// StateMachine synthesizes the state machine type for m, with an advance method named MoveNext.
func (u *Universe) StateMachine(m *typesys.Method, k typesys.StateMachineKind) (typesys.Type, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sm, ok := u.machines[machineKey{m, k}]
	if !ok {
		return nil, false
	}

	return sm, true
}

// Synthesize registers a state machine for m with a MoveNext method.
func (u *Universe) Synthesize(m *typesys.Method, k typesys.StateMachineKind) *typesys.Method {
	sm := &Type{Namespace: "", Name: "<" + m.Name + ">d__0", unnameable: true}
	advance := sm.Method("MoveNext", u.Bool)

	u.mu.Lock()
	u.machines[machineKey{m, k}] = sm
	u.mu.Unlock()

	return advance
}

// LookupType implements [typesys.Oracle].
func (u *Universe) LookupType(namespace, name string) (typesys.Type, bool) {
	t, ok := u.types[namespace+"."+name]
	if !ok {
		return nil, false
	}

	return t, true
}

// Special implements [typesys.Oracle].
func (u *Universe) Special(s typesys.SpecialType) (typesys.Type, bool) {
	var t *Type

	switch s {
	case typesys.VoidType:
		t = u.Void
	case typesys.BoolType:
		t = u.Bool
	case typesys.ObjectType:
		t = u.Object
	case typesys.ExceptionType:
		t = u.Exception
	}

	if t == nil {
		return nil, false
	}

	return t, true
}

// Members implements [typesys.Oracle].
func (u *Universe) Members(t typesys.Type, c typesys.Category) iter.Seq[typesys.Member] {
	ft, ok := t.(*Type)
	if !ok {
		return func(func(typesys.Member) bool) {}
	}

	switch c {
	case typesys.MethodCategory:
		return members(ft.methods)
	case typesys.FieldCategory:
		return members(ft.fields)
	case typesys.PropertyCategory:
		return members(ft.props)
	case typesys.ConstructorCategory:
		return members(ft.ctors)
	default:
		return func(func(typesys.Member) bool) {}
	}
}

func members[M typesys.Member](ms []M) iter.Seq[typesys.Member] {
	return func(yield func(typesys.Member) bool) {
		for _, m := range ms {
			if !yield(m) {
				return
			}
		}
	}
}

// ClassifyConversion implements [typesys.Oracle].
func (u *Universe) ClassifyConversion(from, to typesys.Type) typesys.Conversion {
	f, ok1 := from.(*Type)
	t, ok2 := to.(*Type)

	switch {
	case !ok1 || !ok2:
		return typesys.NoConversion

	case f == t:
		return typesys.IdentityConversion

	case f == u.Void || t == u.Void:
		return typesys.NoConversion

	case t == u.Object, derives(f, t):
		return typesys.ImplicitConversion

	case slices.Contains(f.userDefined, t):
		return typesys.UserDefinedConversion

	default:
		return typesys.NoConversion
	}
}

func derives(t, base *Type) bool {
	for _, b := range t.bases {
		if b == base || derives(b, base) {
			return true
		}
	}

	return false
}

// ArrayOf implements [typesys.Oracle].
func (u *Universe) ArrayOf(elem typesys.Type) typesys.Type {
	return u.derive(elem.String()+"[]", u.Object)
}

// Instantiate implements [typesys.Oracle].
func (u *Universe) Instantiate(generic typesys.Type, args ...typesys.Type) (typesys.Type, bool) {
	g, ok := generic.(*Type)
	if !ok || g.arity != len(args) {
		return nil, false
	}

	var name strings.Builder

	name.WriteString(g.Name)
	name.WriteByte('<')
	name.WriteString(typesys.JoinTypes(args))
	name.WriteByte('>')

	return u.derive(name.String(), u.Object), true
}

func (u *Universe) derive(name string, bases ...*Type) *Type {
	u.mu.Lock()
	defer u.mu.Unlock()

	if t, ok := u.derived[name]; ok {
		return t
	}

	t := &Type{Name: name, bases: bases}
	u.derived[name] = t

	return t
}

// InstanceTypes implements [typesys.Oracle].
func (u *Universe) InstanceTypes(t typesys.Type) []typesys.Type {
	ft, ok := t.(*Type)
	if !ok {
		return nil
	}

	if !ft.unnameable {
		return []typesys.Type{ft}
	}

	var nameable []typesys.Type

	for _, b := range ft.bases {
		nameable = append(nameable, u.InstanceTypes(b)...)
	}

	return append(nameable, u.Object)
}
