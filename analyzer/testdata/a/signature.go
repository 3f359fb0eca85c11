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

import "test/harmony"

//harmony:patch Player TakeDamage
type Returning struct{}

func (Returning) Prefix() string { return "" } // want `Patch method 'Prefix' has invalid return type 'string'. Valid return types: no result or bool`

func (Returning) Postfix(result int) int { return result * 2 }

func (Returning) Transpiler(instructions harmony.Instructions, il harmony.ILGenerator, count int) harmony.Instructions { // want "Invalid transpiler parameter 'count' of type 'int'"
	return instructions
}

//harmony:patch Player TakeDamage
type Reversed struct{}

//harmony:reversepatch
func (Reversed) Damage(p *Player, amount int) int { return 0 }

//harmony:reversepatch
func (Reversed) Custom(amount int) int {
	_ = func() harmony.Instructions { return nil }

	return amount
}

//harmony:reversepatch
func (Reversed) Broken(amount int) int { return amount } // want `Reverse patch method 'Broken' signature does not match target method 'func \(\*Player\).TakeDamage\(amount int\) int'. Expected 'func Broken\(amount \*Player, p1 int\) int'`
