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

package discover_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/patchguard/internal/discover"
	"fillmore-labs.com/patchguard/internal/patch"
	"fillmore-labs.com/patchguard/internal/testsource"
)

const src = `package test

import "harmony"

type Foo struct{ hp int }

func (f *Foo) Bar(s string) int { return len(s) + f.hp }

//harmony:patch Foo Bar
type FooPatch struct{}

func (FooPatch) Prefix(__instance *Foo) {}

//harmony:postfix
func (FooPatch) After() {}

func (FooPatch) helper() {}

type Manual struct{}

//harmony:prefix
func (Manual) Before() {}

func (Manual) Postfix() {}

type Providing struct{}

//harmony:targetmethods
func (Providing) Targets() []harmony.MethodBase { return nil }

//harmony:prefix
func (Providing) Prefix() {}

//harmony:patch
//nolint:patchguard
type Ignored struct{}

func (Ignored) Prefix() {}

type Reversing struct{}

//harmony:reversepatch
//harmony:patch Foo Bar
func (Reversing) Reverse(f *Foo, s string) int {
	_ = func() harmony.Instructions { return nil }

	return 0
}

type Broken struct{}

//harmony:bogus
func (Broken) Prefix() {}
`

func TestDiscover(t *testing.T) {
	t.Parallel()

	fset, in, pkg, info := testsource.Inspect(t, src)

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:      fset,
		Pkg:       pkg,
		TypesInfo: info,
		Report:    func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
	}

	classes := Discover(t.Context(), p, in, Options{})

	type summary struct {
		Name      string
		Patch     bool
		Methods   []string
		Providers []string
		Others    []string
	}

	names := func(ms []*Method) []string {
		var n []string
		for _, m := range ms {
			n = append(n, m.Decl.Name.Name)
		}

		return n
	}

	got := make([]summary, 0, len(classes))
	for _, c := range classes {
		s := summary{Name: c.Obj.Name(), Patch: c.HasPatch(), Methods: names(c.Methods), Others: names(c.Others)}
		for _, pr := range c.Providers {
			s.Providers = append(s.Providers, pr.Decl.Name.Name)
		}

		got = append(got, s)
	}

	want := []summary{
		{Name: "FooPatch", Patch: true, Methods: []string{"Prefix", "After"}},
		{Name: "Manual", Methods: []string{"Before"}},
		{Name: "Providing", Methods: []string{"Prefix"}, Providers: []string{"Targets"}},
		{Name: "Reversing", Methods: []string{"Reverse"}},
		{Name: "Broken", Others: []string{"Prefix"}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Unexpected diagnostics %v", diagnostics)
	}

	if len(classes) != len(want) {
		t.FailNow()
	}

	fooPatch := classes[0]
	if !fooPatch.Parameterized() {
		t.Error("Expected parameterized class directive")
	}

	ec := fooPatch.Engine()
	if len(ec.Fragments) != 1 || len(ec.Methods) != 2 {
		t.Fatalf("Unexpected engine class %+v", ec)
	}

	if p := ec.Methods[0].Method.Params; len(p) != 1 || !p[0].ByRef || p[0].Type.String() != "test.Foo" {
		t.Errorf("Unexpected parameters %+v", p)
	}

	if kinds := ec.Methods[1].Kinds; len(kinds) != 1 || kinds[0].Kind != patch.Postfix {
		t.Errorf("Unexpected kinds %+v", kinds)
	}

	reverse := classes[3].Engine().Methods[0]
	if len(reverse.Fragments) != 1 || len(reverse.Kinds) != 1 || len(reverse.Method.Nested) != 1 {
		t.Errorf("Unexpected reverse patch %+v", reverse)
	}

	if !classes[2].Providers[0].Many {
		t.Error("Expected provider of many methods")
	}

	if errs := classes[4].Others[0].Directives[0].Errors; len(errs) != 1 {
		t.Errorf("Got errors %v", errs)
	}
}
