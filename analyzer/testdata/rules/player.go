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

package rules

import _ "test/harmony"

type Player struct {
	health int
	name   string
}

func NewPlayer() *Player { return &Player{health: 100} }

func NewPlayerNamed(name string) *Player { return &Player{health: 100, name: name} }

func (p *Player) TakeDamage(amount int) int {
	p.health -= amount

	return p.health
}

func (p *Player) Health() int { return p.health }

func (p *Player) Name() string { return p.name }

func (p *Player) SetName(name string) { p.name = name }
