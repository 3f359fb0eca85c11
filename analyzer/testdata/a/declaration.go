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

package a

type Loose struct{} // want `Type 'Loose' lacks a '//harmony:patch' directive, but has patch methods`

//harmony:prefix
func (Loose) Before(__instance *Player) {} // want "Cannot find target method for patch method 'Before'"

//harmony:patch Player TakeDamage
type Empty struct{} // want "Patch class 'Empty' contains no patch methods"

func (Empty) helper() {}

//harmony:patch Player TakeDamage
type Unkinded struct{}

//harmony:patch
func (Unkinded) Apply() {} // want "Patch method 'Apply' requires a patch kind"

/* want "Conflicting patch directives: type, method" */ //harmony:patch Player TakeDamage
type Conflicting struct{}

/* want "Conflicting patch directives: method" */ //harmony:patch method=Health
func (Conflicting) Prefix() {}

//harmony:patch Player TakeDamage
type Kinds struct{}

/* want "Patch method 'Prefix' has conflicting patch kind //harmony:postfix" */ //harmony:postfix
func (Kinds) Prefix() {}

//harmony:patch Player TakeDamage
type Invalid struct{}

/* want `Invalid directive: unknown key "bogus"` */ //harmony:patch bogus=1
func (Invalid) Prefix() {}

/* want `Invalid directive: unknown directive "replace"` */ //harmony:replace
func (Invalid) Replace() {}

//harmony:patch Player TakeDamage
//nolint:patchguard
type Ignored struct{}

func (Ignored) Prefix() string { return "" }
