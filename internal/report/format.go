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

package report

import (
	"go/types"
	"strings"

	"fillmore-labs.com/patchguard/internal/gotypes"
	"fillmore-labs.com/patchguard/internal/typesys"
)

// formatter prints types relative to the analyzed package.
type formatter struct {
	qualifier types.Qualifier
}

// qualifier omits the analyzed package and names other packages like their source does.
func qualifier(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}

		return other.Name()
	}
}

// typ formats a type. Functions without results return "no result".
func (f formatter) typ(t typesys.Type) string {
	switch t := t.(type) {
	case nil:
		return "?"

	case types.Type:
		return types.TypeString(t, f.qualifier)

	default:
		if t == gotypes.Void {
			return "no result"
		}

		return t.String()
	}
}

// alternatives formats a list of types as "a, b or c".
func (f formatter) alternatives(ts []typesys.Type) string {
	var b strings.Builder

	for i, t := range ts {
		switch {
		case i == 0:
		case i == len(ts)-1:
			b.WriteString(" or ")
		default:
			b.WriteString(", ")
		}

		b.WriteString(f.typ(t))
	}

	return b.String()
}

// method formats a target method.
func (f formatter) method(m *typesys.Method) string {
	if fn, ok := m.Object.(*types.Func); ok {
		return types.ObjectString(fn, f.qualifier)
	}

	return m.String()
}

// result formats a result type in Go signature syntax, empty for no result.
func (f formatter) result(t typesys.Type) string {
	if t == gotypes.Void {
		return ""
	}

	return " " + f.typ(t)
}
