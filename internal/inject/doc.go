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

// Package inject classifies patch method parameters as injected values or target parameter bindings
// and validates their types.
//
// Parameter names select the binding:
//
//   - one of the [SpecialNames], like __instance or __result
//   - ___field for a field of the target type
//   - __N for the N-th parameter of the target method
//   - the name of a target method parameter
package inject
