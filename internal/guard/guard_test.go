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

package guard_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	. "fillmore-labs.com/refescape/internal/guard"
	"fillmore-labs.com/refescape/internal/report"
	"fillmore-labs.com/refescape/internal/testsource"
)

func check(cfg Config, f *bound.File) []diag.Diagnostic {
	var all []diag.Diagnostic

	for _, m := range f.Methods {
		bag := report.NewBag(m.Name())
		Method(cfg, m, bag)
		all = append(all, bag.Diagnostics()...)
	}

	return all
}

func format(ds []diag.Diagnostic) []string {
	var lines []string

	for _, d := range ds {
		var b strings.Builder

		fmt.Fprintf(&b, "%s: %s %s", d.Pos, d.Severity, d.Kind)

		for _, a := range d.Args {
			fmt.Fprintf(&b, " [%s]", a)
		}

		lines = append(lines, b.String())
	}

	return lines
}

func TestGolden(t *testing.T) {
	t.Parallel()

	for _, c := range testsource.Load(t, "testdata/*.txtar") {
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()

			got := format(check(Config{Boundary: true, Categorical: true}, c.File))

			if diff := cmp.Diff(c.Want["want"], got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diagnostics differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	boundary := []diag.Kind{
		diag.BadSpecialByRefLocal, diag.BadSpecialByRefIterator, diag.BadAsyncLocalRef,
		diag.BadIteratorLocalRef, diag.SpecialByRefInLambda,
	}
	categorical := []diag.Kind{diag.ArrayElementCantBeRefAny, diag.BadTypeArgument, diag.CannotBeMadeNullable}

	tests := []struct {
		name     string
		cfg      Config
		excluded []diag.Kind
	}{
		{"none", Config{}, append(boundary, categorical...)},
		{"boundary only", Config{Boundary: true}, categorical},
		{"categorical only", Config{Categorical: true}, boundary},
	}

	cases := testsource.Load(t, "testdata/*.txtar")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, c := range cases {
				for _, d := range check(tt.cfg, c.File) {
					for _, k := range tt.excluded {
						if d.Kind == k {
							t.Errorf("%s: unexpected %s at %s", c.Name, d.Kind, d.Pos)
						}
					}
				}
			}
		})
	}
}
