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

//harmony:patch Player Missing
type Limited struct{}

func (Limited) Prefix(___mana int) string { return "" } // want "Patch method 'Prefix' has invalid return type 'string'. Valid return types: no result or bool"

type Unpatched struct{}

//harmony:postfix
func (Unpatched) Postfix() {}
