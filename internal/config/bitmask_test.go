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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/refescape/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(EscapeCheck, CategoricalCheck)

	if !b.Enabled(EscapeCheck) || b.Enabled(BoundaryCheck) {
		t.Errorf("Enabled() = %v, %v, want true, false", b.Enabled(EscapeCheck), b.Enabled(BoundaryCheck))
	}

	b.Set(BoundaryCheck, true)
	b.Set(EscapeCheck, false)

	if got, want := slices.Collect(b.Flags()), []Checks{BoundaryCheck, CategoricalCheck}; !slices.Equal(got, want) {
		t.Errorf("Flags() = %v, want %v", got, want)
	}

	b.Disable(AllChecks)

	if !b.Empty() {
		t.Errorf("Empty() = false, want true")
	}
}
