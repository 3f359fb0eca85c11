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

// Package analyzer implements the patchguard static analysis pass.
//
// # Overview
//
// PatchGuard checks Go code declaring Harmony-style method patches. A patch class is a type
// whose doc comment carries a //harmony:patch directive; its patch methods are named after
// a patch kind (Prefix, Postfix, Transpiler, Finalizer, ReversePatch) or carry a kind directive.
// The target method is declared by directives on the class and its methods and resolved
// against the types visible to the package.
//
// # Example
//
//	//harmony:patch Player TakeDamage
//	type DamagePatch struct{}
//
//	func (DamagePatch) Prefix(__instance *Player, amount int) bool {
//	    return amount > 0
//	}
//
// # Directives
//
//	//harmony:patch [Type [Method]] [type=T] [method=M] [typename=S] [kind=K] [args=T1,T2]
//	//harmony:prefix, postfix, transpiler, finalizer, reversepatch
//	//harmony:targetmethod, targetmethods
//
// # Diagnostics
//
// Diagnostics carry an identifier from MHA001 to MHA018 and are grouped into declaration,
// target, signature and injection rules, each of which can be disabled.
package analyzer
