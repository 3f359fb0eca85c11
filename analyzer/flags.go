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

import (
	"flag"

	"fillmore-labs.com/patchguard/internal/config"
	"fillmore-labs.com/patchguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(ruleValue(&r.Rules, config.DeclarationRules), "declaration", "check patch class and patch method declarations")
	flags.Var(ruleValue(&r.Rules, config.TargetRules), "target", "check target method resolution")
	flags.Var(ruleValue(&r.Rules, config.SignatureRules), "signature", "check patch method signatures")
	flags.Var(ruleValue(&r.Rules, config.InjectionRules), "injection", "check injected parameters")
	flags.Var(behaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.StringVar(&r.Harmony, "harmony-package", r.Harmony, "name of the package declaring the patching API")
	flags.IntVar(&r.Jobs, "jobs", r.Jobs, "maximum number of patch classes analyzed concurrently (default GOMAXPROCS)")
}

func ruleValue(flags *config.BitMask[config.Rules], value config.Rules) flag.Getter {
	return boolValue[config.Rules, *config.BitMask[config.Rules]]{set: flags, flag: value}
}

func behaviorValue(flags *config.BitMask[config.Behavior], value config.Behavior) flag.Getter {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{set: flags, flag: value}
}
