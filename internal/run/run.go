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

package run

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/patchguard/internal/config"
	"fillmore-labs.com/patchguard/internal/discover"
	"fillmore-labs.com/patchguard/internal/engine"
	"fillmore-labs.com/patchguard/internal/gotypes"
	"fillmore-labs.com/patchguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the patchguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("patchguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "PatchGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Packages not using the patching API have nothing to check
	o := gotypes.New(p.Pkg)
	if !o.Reachable(r.Harmony) {
		return nil, nil
	}

	// Stage 1: Find patch classes and parse their directives
	region := trace.StartRegion(ctx, "Discover")
	classes := discover.Discover(ctx, p, in, discover.Options{Generated: r.Behavior.Enabled(config.IncludeGenerated)})
	region.End()

	if len(classes) == 0 {
		return nil, nil
	}

	slog.DebugContext(ctx, "Analyzing patch classes", slog.String("package", p.Pkg.Path()),
		slog.Int("classes", len(classes)), slog.Any("options", r))

	e := engine.New(o, gotypes.Names(r.Harmony))
	rep := report.New(p, e, r.Rules)

	// Stage 2: Analyze patch classes concurrently
	diagnostics := make([][]analysis.Diagnostic, len(classes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs())

	for i, c := range classes {
		g.Go(func() error {
			region := trace.StartRegion(ctx, "Engine")
			results := e.AnalyzeClass(ctx, c.Engine())
			region.End()

			if err := ctx.Err(); err != nil {
				return err
			}

			slog.DebugContext(ctx, "Analyzed patch class", slog.String("class", c.Obj.Name()), slog.Int("methods", len(results)))

			// Stage 3: Generate diagnostics with suggested fixes
			diagnostics[i] = rep.Class(ctx, c, results)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("patchguard: %w", err)
	}

	// Report in source order
	all := slices.Concat(diagnostics...)
	slices.SortStableFunc(all, func(a, b analysis.Diagnostic) int { return cmp.Compare(a.Pos, b.Pos) })

	for _, d := range all {
		p.Report(d)
	}

	return nil, nil
}
