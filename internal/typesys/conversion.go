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

package typesys

// Conversion classifies the conversion between two types.
type Conversion uint8

//go:generate go tool stringer -type Conversion -linecomment
const (
	// NoConversion means there is no implicit conversion.
	NoConversion Conversion = iota // none

	// IdentityConversion means both types are identical.
	IdentityConversion // identity

	// ImplicitConversion is an implicit reference or boxing conversion.
	ImplicitConversion // implicit

	// UserDefinedConversion is an implicit conversion through a user-defined operator.
	UserDefinedConversion // user-defined
)

// IsStandardImplicit reports whether the conversion is implicit without involving user-defined operators.
func (c Conversion) IsStandardImplicit() bool {
	return c == IdentityConversion || c == ImplicitConversion
}
