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

package diag_test

import (
	"encoding/json"
	"testing"

	"fillmore-labs.com/refescape/bound"
	. "fillmore-labs.com/refescape/diag"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     Kind
		severity Severity
		args     []string
		want     string
	}{
		{
			name: "escape call",
			kind: EscapeCall,
			args: []string{"Program.MayWrap(ref System.Span<int>)", "arg"},
			want: "Cannot use a result of 'Program.MayWrap(ref System.Span<int>)' in this context because it may expose variables referenced by parameter 'arg' outside of their declaration scope",
		},
		{
			name:     "warning",
			kind:     EscapeStackAlloc,
			severity: Warning,
			args:     []string{"System.Span<int>"},
			want:     "A result of a stackalloc expression of type 'System.Span<int>' in this context may be exposed outside of the containing method",
		},
		{
			name: "reordered arguments",
			kind: RefAssignNarrower,
			args: []string{"r", "local"},
			want: "Cannot ref-assign 'local' to 'r' because 'local' has a narrower escape scope than 'r'.",
		},
		{
			name:     "no warning form",
			kind:     RefReturnLvalueExpected,
			severity: Warning,
			want:     "An expression cannot be used in this context because it may not be passed or returned by reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.Format(tt.severity, tt.args...); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDowngradable(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{EscapeVariable, CallArgMixing, MismatchedRefEscapeInTernary, RefAssignNarrower} {
		if !k.Downgradable() {
			t.Errorf("%s.Downgradable() = false, want true", k)
		}
	}

	for _, k := range []Kind{RefReturnLvalueExpected, BadSpecialByRefLocal, BadTypeArgument, InternalError} {
		if k.Downgradable() {
			t.Errorf("%s.Downgradable() = true, want false", k)
		}
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	d := Diagnostic{
		Pos:      bound.Pos{Line: 23, Column: 42},
		Kind:     EscapeVariable,
		Severity: Warning,
		Args:     []string{"local"},
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	const want = `{"pos":{"line":23,"column":42},"kind":"escape-variable","severity":"warning","args":["local"]}`
	if got := string(data); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back Diagnostic
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if back.Kind != d.Kind || back.Severity != d.Severity || back.Pos != d.Pos {
		t.Errorf("Unmarshal() = %+v, want %+v", back, d)
	}
}
