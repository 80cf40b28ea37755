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
	"context"

	"fillmore-labs.com/refescape/analyzer/level"
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/boundfile"
	"fillmore-labs.com/refescape/diag"
)

// Run analyzes all methods of c.
//
// Scope violations are reported as diagnostics. The returned error is non-nil only when ctx is canceled.
func (a *Analyzer) Run(ctx context.Context, c *bound.Compilation) (*diag.Result, error) {
	return a.r.Run(ctx, c)
}

// Check loads the named bound files and analyzes them as one compilation.
// Decoding failures are returned as errors wrapping the [boundfile] sentinels.
func (a *Analyzer) Check(ctx context.Context, names ...string) (*diag.Result, error) {
	c, err := boundfile.Load(ctx, names...)
	if err != nil {
		return nil, err
	}

	return a.Run(ctx, c)
}

// Version returns the configured rule set.
func (a *Analyzer) Version() level.Version {
	return a.r.Version
}
