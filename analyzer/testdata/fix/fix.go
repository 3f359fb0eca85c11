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

package fix

//harmony:patch Player args=string
type Spawning struct{}

func (Spawning) Postfix(__instance *Player, name string) {} // want "Cannot find target method for patch method 'Postfix', but a matching constructor was found"

//harmony:patch Player TakeDamage
type Passing struct{}

func (Passing) Postfix(result int, __result int) int { return result } // want "Unnecessary injected parameter '__result' in passthrough postfix"

//harmony:patch Player TakeDamage
type Stateful struct{}

func (Stateful) Prefix(__state int) {} // want "Prefix parameter '__state' should be a pointer"

//harmony:patch Player TakeDamage
type Indexed struct{}

func (Indexed) Prefix(__0 int) bool { return __0 > 0 } // want "Use parameter name 'amount' over parameter index injection '__0'"

//harmony:patch Player TakeDamage
type Reversing struct{}

//harmony:reversepatch
func (Reversing) Damage(p *Player) int { return 0 } // want `Reverse patch method 'Damage' signature does not match target method 'func \(\*Player\).TakeDamage\(amount int\) int'. Expected 'func Damage\(p \*Player, p1 int\) int'`

//harmony:reversepatch
func (Reversing) Hurt(p1 *Player) int { return 0 } // want `Reverse patch method 'Hurt' signature does not match target method 'func \(\*Player\).TakeDamage\(amount int\) int'. Expected 'func Hurt\(p1 \*Player, p1_1 int\) int'`
