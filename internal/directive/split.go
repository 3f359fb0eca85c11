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

package directive

// span is a substring of a directive with its byte offsets.
type span struct {
	text       string
	start, end int
}

// split splits text from offset on at spaces outside of brackets, parentheses and
// double-quoted strings.
func split(text string, offset int) []span {
	return scan(text, offset, func(r byte) bool { return r == ' ' || r == '\t' })
}

// splitList splits a comma separated list outside of brackets, parentheses and
// double-quoted strings.
// Offsets are relative to base.
func splitList(list string, base int) []span {
	tokens := scan(list, 0, func(r byte) bool { return r == ',' })
	for i := range tokens {
		tokens[i].start += base
		tokens[i].end += base
	}

	return tokens
}

func scan(text string, offset int, separator func(byte) bool) []span {
	var (
		tokens []span
		depth  int
		quoted bool
		start  = -1
	)

	for i := offset; i < len(text); i++ {
		c := text[i]

		switch {
		case quoted:
			switch c {
			case '\\':
				i++
			case '"':
				quoted = false
			}

		case c == '"':
			quoted = true

		case c == '[' || c == '(' || c == '{':
			depth++

		case (c == ']' || c == ')' || c == '}') && depth > 0:
			depth--

		case depth == 0 && separator(c):
			if start >= 0 {
				tokens = append(tokens, span{text[start:i], start, i})
				start = -1
			}

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		tokens = append(tokens, span{text[start:], start, len(text)})
	}

	return tokens
}
