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

//harmony:patch Player TakeDamage
type Injecting struct{}

func (Injecting) Prefix(__instance *Player, __state int, amount int) bool { // want "Prefix parameter '__state' should be a pointer"
	amount = 0 // want "Assignment to non-pointer parameter 'amount'"

	return true
}

func (Injecting) Postfix(__result int, ___health int, ___mana int, __0 int) {} // want "Parameter '___mana' does not match a field of 'Player'" "Use parameter name 'amount' over parameter index injection '__0'"

func (Injecting) Finalizer(__exception string) {} // want "Invalid type 'string' for injected parameter '__exception'. Expected error"

//harmony:patch Player TakeDamage
type Suppressed struct{}

func (Suppressed) Prefix(amount int) {
	amount = 0 //nolint:patchguard
}
