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

package gclplugin

import patchguard "fillmore-labs.com/patchguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Declaration enables checks of patch class declarations and directives.
	Declaration *bool `json:"declaration,omitzero"`
	// Target enables target method resolution checks.
	Target *bool `json:"target,omitzero"`
	// Signature enables return type, transpiler and reverse patch signature checks.
	Signature *bool `json:"signature,omitzero"`
	// Injection enables injected parameter checks.
	Injection *bool `json:"injection,omitzero"`
	// HarmonyPackage is the name of the package declaring the patching API.
	HarmonyPackage *string `json:"harmony-package,omitzero"`
	// Jobs limits the number of patch classes analyzed concurrently.
	Jobs *int `json:"jobs,omitzero"`
}

// Options converts [Settings] into a list of [patchguard.Option] for the patchguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []patchguard.Option {
	var opts []patchguard.Option

	opts = appendOption(opts, s.Declaration, patchguard.WithDeclaration)
	opts = appendOption(opts, s.Target, patchguard.WithTarget)
	opts = appendOption(opts, s.Signature, patchguard.WithSignature)
	opts = appendOption(opts, s.Injection, patchguard.WithInjection)
	opts = appendOption(opts, s.HarmonyPackage, patchguard.WithHarmonyPackage)
	opts = appendOption(opts, s.Jobs, patchguard.WithJobs)

	return opts
}

// appendOption appends a non-nil setting to a [patchguard.Option] list.
func appendOption[T any](opts []patchguard.Option, value *T, constructor func(T) patchguard.Option) []patchguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
