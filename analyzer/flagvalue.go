// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import "strconv"

// flagSet is a set of bit flags of type F.
type flagSet[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// boolValue is a boolean [flag.Getter] toggling one flag of a [flagSet].
type boolValue[F any, S flagSet[F]] struct {
	set  S
	flag F
}

// Set implements [flag.Value].
func (v boolValue[_, _]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.set.Set(v.flag, b)

	return nil
}

// String implements [flag.Value]. The zero value prints false for [flag.PrintDefaults].
func (v boolValue[_, _]) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v boolValue[_, _]) Get() any { return v.enabled() }

// IsBoolFlag marks v as a boolean [flag.Value].
func (boolValue[_, _]) IsBoolFlag() bool { return true }

func (v boolValue[_, S]) enabled() bool {
	var zero S

	return v.set != zero && v.set.Enabled(v.flag)
}

// parseBool accepts the values of [strconv.ParseBool] plus on and off.
func parseBool(str string) (bool, error) {
	switch str {
	case "on", "On", "ON":
		return true, nil
	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(str)
}
