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
package run

import (
	"fillmore-labs.com/refescape/analyzer/level"
	"fillmore-labs.com/refescape/internal/config"
)

// Options represent the configuration of a refescape run.
type Options struct {
	// Checks represent the analyses to be enabled.
	Checks config.BitMask[config.Checks]

	// Behavior holds file selection options.
	Behavior config.BitMask[config.Behavior]

	// Version selects the rule set.
	Version level.Version

	// Unsafe selects how violations in unsafe contexts are reported.
	Unsafe level.Unsafe

	// Concurrency limits the number of methods analyzed in parallel, GOMAXPROCS when not positive.
	Concurrency int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks:  config.NewBitMask(config.AllChecks),
		Version: level.Legacy,
		Unsafe:  level.UnsafeWarn,
	}
}
