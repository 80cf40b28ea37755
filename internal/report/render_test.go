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

package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	. "fillmore-labs.com/refescape/internal/report"
)

func result() *diag.Result {
	a := NewBag("Program.Test")
	a.Report(bound.Pos{Line: 3, Column: 7}, diag.EscapeVariable, diag.Error, "local")
	a.Report(bound.Pos{Line: 9, Column: 2}, diag.EscapeStackAlloc, diag.Warning, "Span<int>")

	b := NewBag("Program.Other")
	b.Report(bound.Pos{Line: 1, Column: 1}, diag.RefReturnLvalueExpected, diag.Error)

	return &diag.Result{Files: []diag.FileResult{
		{Name: "a.bound.yaml", Diagnostics: a.Diagnostics()},
		{Name: "empty.bound.yaml"},
		{Name: "b.bound.yaml", Diagnostics: b.Diagnostics()},
	}}
}

func TestBag(t *testing.T) {
	t.Parallel()

	bag := NewBag("Program.A")
	bag.Report(bound.Pos{Line: 1, Column: 1}, diag.EscapeVariable, diag.Error, "x")
	bag.Report(bound.Pos{Line: 2, Column: 1}, diag.EscapeOther, diag.Warning)

	ds := bag.Diagnostics()
	if len(ds) != 2 {
		t.Fatalf("Diagnostics() = %v, want 2 entries", ds)
	}

	if got := ds[1].Method; got != "Program.A" {
		t.Errorf("Method = %q, want %q", got, "Program.A")
	}

	if got := ds[0].Args; len(got) != 1 || got[0] != "x" {
		t.Errorf("Args = %v, want [x]", got)
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteText(&buf, result(), false); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("WriteText() wrote %d lines, want 3:\n%s", len(lines), buf.String())
	}

	const want = "a.bound.yaml:3:7: error escape-variable: Cannot use variable 'local' in this context because it may expose referenced variables outside of their declaration scope"
	if lines[0] != want {
		t.Errorf("WriteText() = %q, want %q", lines[0], want)
	}

	if !strings.HasPrefix(lines[1], "a.bound.yaml:9:2: warning escape-stackalloc: ") {
		t.Errorf("WriteText() = %q, want warning line", lines[1])
	}
}

func TestWriteTextColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteText(&buf, result(), true); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	if !strings.Contains(buf.String(), "\x1b[31merror\x1b[39m") {
		t.Errorf("WriteText() = %q, want highlighted severity", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	run := uuid.MustParse("3f2c1a9e-8b7d-4e6f-9a1b-2c3d4e5f6a7b")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewDocument(run, "csharp11", result())); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var doc struct {
		Run      string `json:"run"`
		Version  string `json:"version"`
		Errors   int    `json:"errors"`
		Warnings int    `json:"warnings"`
		Files    []struct {
			Name        string `json:"name"`
			Diagnostics []struct {
				Kind    string `json:"kind"`
				Message string `json:"message"`
			} `json:"diagnostics"`
		} `json:"files"`
	}

	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if doc.Run != run.String() || doc.Version != "csharp11" {
		t.Errorf("run, version = %s, %s, want %s, csharp11", doc.Run, doc.Version, run)
	}

	if doc.Errors != 2 || doc.Warnings != 1 {
		t.Errorf("errors, warnings = %d, %d, want 2, 1", doc.Errors, doc.Warnings)
	}

	if len(doc.Files) != 3 || doc.Files[1].Diagnostics == nil {
		t.Fatalf("files = %+v, want three files with non-null diagnostics", doc.Files)
	}

	if got := doc.Files[2].Diagnostics[0].Kind; got != "ref-return-lvalue-expected" {
		t.Errorf("kind = %q, want %q", got, "ref-return-lvalue-expected")
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *diag.Result
		want   string
	}{
		{"clean", &diag.Result{}, "no issues"},
		{"mixed", result(), "2 errors and 1 warning in 'a.bound.yaml' and 'b.bound.yaml'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Summary(tt.result); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
