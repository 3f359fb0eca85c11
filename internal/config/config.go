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

package config

// Rules represents groups of diagnostics that can be toggled.
type Rules uint8

const (
	// DeclarationRules check patch class and patch method declarations (MHA001, MHA002, MHA006, MHA010, MHA011).
	DeclarationRules Rules = 1 << iota

	// TargetRules check target method resolution (MHA003, MHA004, MHA005, MHA007).
	TargetRules

	// SignatureRules check return types, transpiler parameters and reverse patch signatures (MHA009, MHA015, MHA018).
	SignatureRules

	// InjectionRules check injected parameters (MHA008, MHA012, MHA013, MHA014, MHA016, MHA017).
	InjectionRules
)

// AllRules enables every rule group.
const AllRules = DeclarationRules | TargetRules | SignatureRules | InjectionRules

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)
