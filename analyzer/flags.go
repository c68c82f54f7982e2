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

	"fillmore-labs.com/protoscope/internal/config"
	"fillmore-labs.com/protoscope/internal/run"
	"fillmore-labs.com/protoscope/jsast"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newFlagValue(&r.Rules, config.MergeRule), "merge", "report objects composed with Object.assign")
	flags.Var(newFlagValue(&r.Rules, config.ExtendsRule), "extends", "report objects composed with _extends")
	flags.Var(newFlagValue(&r.Rules, config.SuperRule), "super", "report explicit superclass dispatch")
	flags.Var(newFlagValue(&r.Rules, config.ThisRule), "this", "report member initializers depending on instance context")
	flags.Var(newFlagValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newFlagValue(&r.Behavior, config.ReportUnresolved), "unresolved", "report members that cannot be resolved")
	flags.Var(newFlagValue(&r.Extensions, jsast.DynamicImport), "dynamic-import", "source trees may contain dynamic import")
}
