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

// Package directive parses //harmony: directive comments into declarative fragments.
//
// The grammar of a patch directive is
//
//	//harmony:patch [Type [Method]] [type=T] [method=M] [typename=S] [kind=K] [args=T1,T2,...]
//
// Type expressions must not contain spaces outside of brackets and parentheses.
// Kind directives are //harmony:prefix, postfix, transpiler, finalizer and reversepatch;
// //harmony:targetmethod and //harmony:targetmethods mark target method providers.
package directive
