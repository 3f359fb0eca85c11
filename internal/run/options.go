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
	"log/slog"
	"runtime"

	"fillmore-labs.com/patchguard/internal/config"
	"fillmore-labs.com/patchguard/internal/gotypes"
)

// Options represent configuration options for the patchguard analyzer.
type Options struct {
	// Rules are the enabled rule groups.
	Rules config.BitMask[config.Rules]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Harmony is the name of the package declaring the patching API types.
	Harmony string

	// Jobs is the maximum number of patch classes analyzed concurrently, GOMAXPROCS when not positive.
	Jobs int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:   config.NewBitMask(config.AllRules),
		Harmony: gotypes.DefaultHarmony,
	}
}

func (r *Options) jobs() int {
	if r.Jobs > 0 {
		return r.Jobs
	}

	return runtime.GOMAXPROCS(0)
}

// LogValue implements [slog.LogValuer].
func (r *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("declaration", r.Rules.Enabled(config.DeclarationRules)),
		slog.Bool("target", r.Rules.Enabled(config.TargetRules)),
		slog.Bool("signature", r.Rules.Enabled(config.SignatureRules)),
		slog.Bool("injection", r.Rules.Enabled(config.InjectionRules)),
		slog.Bool("generated", r.Behavior.Enabled(config.IncludeGenerated)),
		slog.String("harmony", r.Harmony),
		slog.Int("jobs", r.jobs()),
	)
}
