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

package boundutil_test

import (
	"testing"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	. "fillmore-labs.com/refescape/internal/boundutil"
	"fillmore-labs.com/refescape/internal/report"
)

func TestHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		directives []string
		want       bool
	}{
		{"none", nil, false},
		{"own", []string{"nolint:refescape"}, true},
		{"comment form", []string{"//nolint:errcheck,RefEscape"}, true},
		{"all", []string{"nolint:all"}, true},
		{"other linter", []string{"nolint:errcheck"}, false},
		{"not a directive", []string{"refescape"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasNoLint(tt.directives); got != tt.want {
				t.Errorf("HasNoLint(%q) = %v, want %v", tt.directives, got, tt.want)
			}
		})
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	m := &bound.Method{Directives: []string{"nolint:refescape"}}
	other := &bound.Method{}

	c := NewCurrentFile(&bound.File{Generated: true, Methods: []*bound.Method{m, other}})
	if !c.Generated() {
		t.Error("Generated() = false, want true")
	}

	if !c.Skip(m) || c.Skip(other) {
		t.Errorf("Skip() = %v, %v, want true, false", c.Skip(m), c.Skip(other))
	}

	if NewCurrentFile(nil).Generated() {
		t.Error("NewCurrentFile(nil).Generated() = true, want false")
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	bag := report.NewBag("Program.Test")
	InternalError(bag, bound.Pos{Line: 2, Column: 3}, "unexpected %s", "node")

	ds := bag.Diagnostics()
	if len(ds) != 1 {
		t.Fatalf("Diagnostics() = %d, want 1", len(ds))
	}

	if got, want := ds[0].Message(), "Internal Error: unexpected node"; got != want || ds[0].Kind != diag.InternalError {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestAllMethods(t *testing.T) {
	t.Parallel()

	a, b, c := &bound.Method{}, &bound.Method{}, &bound.Method{}
	files := []*bound.File{{Methods: []*bound.Method{a}}, {}, {Methods: []*bound.Method{b, c}}}

	var idx []int
	for i := range AllMethods(files) {
		idx = append(idx, i)
	}

	if len(idx) != 3 || idx[0] != 0 || idx[1] != 2 || idx[2] != 2 {
		t.Errorf("AllMethods() indices = %v, want [0 2 2]", idx)
	}
}
