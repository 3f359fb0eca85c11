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

//harmony:patch Player kind=constructor
type Construct struct{}

func (Construct) Prefix() {} // want `Ambiguous target method for patch method 'Prefix'. Candidate methods: func NewPlayer\(\) \*Player, func NewPlayerNamed\(name string\) \*Player`

//harmony:patch Player kind=constructor args=string
type ConstructNamed struct{}

func (ConstructNamed) Postfix(__instance *Player, name string) {}

//harmony:patch Player Jump
type Jumping struct{}

func (Jumping) Prefix() {} // want "Cannot find target method for patch method 'Prefix'"

//harmony:patch typename=Enemy method=Attack
type External struct{}

func (External) Prefix() {}

//harmony:patch Player TakeDamage
type Provided struct{} // want "Patch class 'Provided' has more than one of: targetmethod, targetmethods, parameterized patch directives"

//harmony:targetmethod
func (Provided) Target() harmony.MethodBase { return nil }

//harmony:targetmethods
func (Provided) Targets() []harmony.MethodBase { return nil } // want `Target method provider 'Targets' has invalid return type '\[\]harmony.MethodBase'. Valid return type: iter.Seq\[harmony.MethodBase\]`

func (Provided) Prefix() {}

type Listing struct{}

//harmony:targetmethods
func (Listing) TargetMethods() []harmony.MethodBase { return nil } // want "Target method provider 'TargetMethods' has invalid return type"
