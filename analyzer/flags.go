// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

	"fillmore-labs.com/refescape/internal/config"
	"fillmore-labs.com/refescape/internal/run"
)

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.TextVar(&r.Version, "version", r.Version, "rule set: legacy (csharp10) or ref-fields (csharp11)")
	flags.TextVar(&r.Unsafe, "unsafe", r.Unsafe, "violations in unsafe contexts: warn or strict")

	flags.Var(newBoolValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")

	flags.Var(newBoolValue(&r.Checks, config.EscapeCheck), "escape", "enable escape analysis")
	flags.Var(newBoolValue(&r.Checks, config.BoundaryCheck), "boundary", "enable suspension point and capture checks")
	flags.Var(newBoolValue(&r.Checks, config.CategoricalCheck), "categorical", "enable array element, type argument and nullable checks")

	flags.IntVar(&r.Concurrency, "concurrency", r.Concurrency, "maximum number of methods analyzed in parallel (0 for GOMAXPROCS)")
}
