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

package escape

import (
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/internal/report"
)

// Method analyzes the body of m, reporting scope violations to bag. The returned error
// wraps [ErrInternal] when the bound tree is inconsistent. Diagnostics reported before
// the inconsistency stay in bag.
func Method(cfg Config, m *bound.Method, bag *report.Bag) error {
	w := newEnv(cfg, bag, &m.Function, m.Receiver)
	w.body()

	if w.err != nil {
		return w.err
	}

	return nil
}
