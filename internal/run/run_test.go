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

package run_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/config"
	. "fillmore-labs.com/refescape/internal/run"
	"fillmore-labs.com/refescape/internal/testsource"
)

const src = `
members:
  Program.Escape:
    static: true
    returns: Span<int>
  Program.Async:
    static: true
    returns: Task
  Program.Quiet:
    static: true
    returns: Span<int>
methods:
  - member: Program.Escape
    body:
      - return: {stackalloc: int, count: 1}
  - member: Program.Async
    async: true
    body:
      - declare: s
        type: Span<int>
        init: {default: Span<int>}
  - member: Program.Quiet
    directives: ["nolint:refescape"]
    body:
      - return: {stackalloc: int, count: 1}
`

func kinds(r *diag.Result) []diag.Kind {
	var ks []diag.Kind

	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			ks = append(ks, d.Kind)
		}
	}

	return ks
}

func TestRun(t *testing.T) {
	t.Parallel()

	generated := testsource.Parse(t, src)
	generated.Generated = true

	tests := []struct {
		name  string
		setup func(o *Options)
		files []*bound.File
		want  []diag.Kind
	}{
		{
			name:  "default",
			setup: func(*Options) {},
			files: []*bound.File{testsource.Parse(t, src)},
			want:  []diag.Kind{diag.EscapeStackAlloc, diag.BadSpecialByRefLocal},
		},
		{
			name:  "escape only",
			setup: func(o *Options) { o.Checks = config.NewBitMask(config.EscapeCheck) },
			files: []*bound.File{testsource.Parse(t, src)},
			want:  []diag.Kind{diag.EscapeStackAlloc},
		},
		{
			name:  "no checks",
			setup: func(o *Options) { o.Checks = config.NewBitMask[config.Checks]() },
			files: []*bound.File{testsource.Parse(t, src)},
		},
		{
			name:  "generated skipped",
			setup: func(*Options) {},
			files: []*bound.File{generated},
		},
		{
			name:  "generated included",
			setup: func(o *Options) { o.Behavior.Enable(config.IncludeGenerated) },
			files: []*bound.File{generated},
			want:  []diag.Kind{diag.EscapeStackAlloc, diag.BadSpecialByRefLocal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			tt.setup(o)

			r, err := o.Run(t.Context(), &bound.Compilation{Files: tt.files})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if len(r.Files) != len(tt.files) {
				t.Fatalf("Run() returned %d files, want %d", len(r.Files), len(tt.files))
			}

			if diff := cmp.Diff(tt.want, kinds(r)); diff != "" {
				t.Errorf("Run() kinds differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunOrder(t *testing.T) {
	t.Parallel()

	files := []*bound.File{testsource.Parse(t, src), testsource.Parse(t, src), testsource.Parse(t, src)}
	files[1].Name = "second.bound.yaml"

	sequential := DefaultOptions()
	sequential.Concurrency = 1

	parallel := DefaultOptions()
	parallel.Concurrency = 8

	want, err := sequential.Run(t.Context(), &bound.Compilation{Files: files})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for range 10 {
		got, err := parallel.Run(t.Context(), &bound.Compilation{Files: files})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("parallel Run() differs (-sequential +parallel):\n%s", diff)
		}
	}
}

// brokenMethod returns a method reading a local that is never declared.
func brokenMethod(at, ref bound.Pos) *bound.Method {
	span := &bound.Type{Name: "Span<int>", Kind: bound.RefStructType}
	ghost := &bound.Local{Name: "ghost", Type: span}

	return &bound.Method{Function: bound.Function{
		Sig: &bound.Signature{Container: "Program", Name: "Broken", Static: true, Return: span},
		At:  at,
		Body: &bound.Block{Stmts: []bound.Stmt{
			&bound.Return{Value: &bound.LocalRef{Base: bound.Base{At: ref, T: span}, Local: ghost}},
		}},
	}}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	broken := brokenMethod(bound.Pos{Line: 2, Column: 5}, bound.Pos{Line: 4, Column: 9})

	f := testsource.Parse(t, src)
	f.Methods = append([]*bound.Method{broken}, f.Methods...)

	r, err := DefaultOptions().Run(t.Context(), &bound.Compilation{Files: []*bound.File{f}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []diag.Kind{diag.InternalError, diag.EscapeStackAlloc, diag.BadSpecialByRefLocal}
	if diff := cmp.Diff(want, kinds(r)); diff != "" {
		t.Fatalf("Run() kinds differ (-want +got):\n%s", diff)
	}

	const msg = `Internal Error: local "ghost" used before its declaration in Program.Broken`
	if got := r.Files[0].Diagnostics[0].Message(); got != msg {
		t.Errorf("Message() = %q, want %q", got, msg)
	}

	if got, want := r.Files[0].Diagnostics[0].Pos, (bound.Pos{Line: 4, Column: 9}); got != want {
		t.Errorf("Pos = %s, want %s", got, want)
	}
}

func TestInternalErrorUnknownPosition(t *testing.T) {
	t.Parallel()

	at := bound.Pos{Line: 2, Column: 5}
	f := &bound.File{Name: "broken.bound.yaml", Methods: []*bound.Method{brokenMethod(at, bound.Pos{})}}

	r, err := DefaultOptions().Run(t.Context(), &bound.Compilation{Files: []*bound.File{f}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	ds := r.Files[0].Diagnostics
	if len(ds) != 1 || ds[0].Kind != diag.InternalError {
		t.Fatalf("Diagnostics = %v, want one internal error", ds)
	}

	if ds[0].Pos != at {
		t.Errorf("Pos = %s, want method position %s", ds[0].Pos, at)
	}
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := DefaultOptions().Run(ctx, &bound.Compilation{Files: []*bound.File{testsource.Parse(t, src)}}); err == nil {
		t.Error("Run() with canceled context succeeded, want error")
	}
}
