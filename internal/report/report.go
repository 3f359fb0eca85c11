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

// Package report turns analysis results of patch classes into diagnostics.
package report

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/patchguard/internal/config"
	"fillmore-labs.com/patchguard/internal/discover"
	"fillmore-labs.com/patchguard/internal/engine"
)

// Reporter creates the diagnostics of patch classes.
//
// A Reporter only reads the pass and can be used concurrently.
type Reporter struct {
	pass   *analysis.Pass
	engine *engine.Engine
	rules  config.BitMask[config.Rules]
	format formatter
}

// New creates a [Reporter] for the enabled rules.
func New(p *analysis.Pass, e *engine.Engine, rules config.BitMask[config.Rules]) *Reporter {
	return &Reporter{
		pass:   p,
		engine: e,
		rules:  rules,
		format: formatter{qualifier: qualifier(p.Pkg)},
	}
}

// Class returns the diagnostics for a patch class, ordered by position.
//
// results are the analysis results of the patch methods of c, in order.
func (r *Reporter) Class(ctx context.Context, c *discover.Class, results []engine.MethodResult) []analysis.Diagnostic {
	defer trace.StartRegion(ctx, "Report").End()

	d := diagnostics{Reporter: r, class: c}

	d.invalidDirectives()

	if len(results) > len(c.Methods) {
		results = results[:len(c.Methods)]
	}

	if r.rules.Enabled(config.DeclarationRules) {
		d.declaration(results)
	}

	if r.rules.Enabled(config.TargetRules) {
		d.target(ctx, results)
	}

	if r.rules.Enabled(config.SignatureRules) {
		d.signature(results)
	}

	if r.rules.Enabled(config.InjectionRules) {
		d.injection(ctx, results)
	}

	slices.SortStableFunc(d.list, func(a, b analysis.Diagnostic) int { return cmp.Compare(a.Pos, b.Pos) })

	return d.list
}

// diagnostics collects the diagnostics of one patch class.
type diagnostics struct {
	*Reporter
	class *discover.Class
	list  []analysis.Diagnostic
}

// add records a diagnostic without fixes or related information.
func (d *diagnostics) add(rng analysis.Range, id string, format string, args ...any) {
	d.report(diagnostic(rng, id, format, args...))
}

// report records a completed diagnostic.
func (d *diagnostics) report(diag analysis.Diagnostic) {
	d.list = append(d.list, diag)
}

// diagnostic creates a diagnostic for rng with the rule id appended to the message.
func diagnostic(rng analysis.Range, id string, format string, args ...any) analysis.Diagnostic {
	msg := fmt.Appendf(nil, format, args...)
	msg = fmt.Appendf(msg, " (%s)", id)

	return analysis.Diagnostic{Pos: rng.Pos(), End: rng.End(), Message: string(msg)}
}

// classRange is the name of the class declaration.
func (d *diagnostics) classRange() analysis.Range {
	if d.class.Spec != nil {
		return d.class.Spec.Name
	}

	obj := d.class.Obj

	return span{obj.Pos(), obj.Pos() + token.Pos(len(obj.Name()))}
}

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }
