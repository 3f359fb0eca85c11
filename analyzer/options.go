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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/patchguard/internal/config"
	"fillmore-labs.com/patchguard/internal/run"
)

// Option configures specific behavior of a [New] patchguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDeclaration is an [Option] to configure whether declaration checks are enabled.
func WithDeclaration(declaration bool) Option {
	return ruleOption{key: "declaration", rule: config.DeclarationRules, enabled: declaration}
}

// WithTarget is an [Option] to configure whether target method resolution checks are enabled.
func WithTarget(target bool) Option {
	return ruleOption{key: "target", rule: config.TargetRules, enabled: target}
}

// WithSignature is an [Option] to configure whether signature checks are enabled.
func WithSignature(signature bool) Option {
	return ruleOption{key: "signature", rule: config.SignatureRules, enabled: signature}
}

// WithInjection is an [Option] to configure whether injected parameter checks are enabled.
func WithInjection(injection bool) Option {
	return ruleOption{key: "injection", rule: config.InjectionRules, enabled: injection}
}

type ruleOption struct {
	key     string
	rule    config.Rules
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithHarmonyPackage is an [Option] to configure the name of the package declaring the patching API.
func WithHarmonyPackage(name string) Option { return harmonyOption{name: name} }

type harmonyOption struct{ name string }

func (o harmonyOption) apply(r *run.Options) {
	r.Harmony = o.name
}

func (o harmonyOption) LogAttr() slog.Attr {
	return slog.String("harmony-package", o.name)
}

// WithJobs is an [Option] to configure the number of patch classes analyzed concurrently.
// Values less than one use GOMAXPROCS.
func WithJobs(jobs int) Option { return jobsOption{jobs: jobs} }

type jobsOption struct{ jobs int }

func (o jobsOption) apply(r *run.Options) {
	r.Jobs = o.jobs
}

func (o jobsOption) LogAttr() slog.Attr {
	return slog.Int("jobs", o.jobs)
}
