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
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fillmore-labs.com/refescape/boundfile"
)

func writeFile(t *testing.T, name string) {
	t.Helper()

	if err := os.WriteFile(name, []byte("name: Test.cs\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestWatchSetMatches(t *testing.T) {
	t.Parallel()

	dir, other := t.TempDir(), t.TempDir()

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	single := filepath.Join(other, "single.bound.yaml")
	writeFile(t, single)

	ws, err := newWatchSet([]string{dir, single})
	if err != nil {
		t.Fatalf("newWatchSet failed: %v", err)
	}

	if got, want := len(ws.dirs), 3; got != want {
		t.Errorf("watched %d directories (%v), want %d", got, ws.dirs, want)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"new file in directory", filepath.Join(dir, "new.bound.yaml"), true},
		{"new file in subdirectory", filepath.Join(sub, "new.bound.json"), true},
		{"other file in directory", filepath.Join(dir, "notes.txt"), false},
		{"named file", single, true},
		{"unnamed file next to named file", filepath.Join(other, "sibling.bound.yaml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ws.matches(tt.path); got != tt.want {
				t.Errorf("matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatchSetMissing(t *testing.T) {
	t.Parallel()

	if _, err := newWatchSet([]string{filepath.Join(t.TempDir(), "missing.bound.yaml")}); err == nil {
		t.Error("newWatchSet() succeeded, want error")
	}
}

func TestWatchAddedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bound.yaml"))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	counts := make(chan int, 16)
	check := func() error {
		paths, err := boundfile.Expand([]string{dir})
		if err != nil {
			return err
		}

		counts <- len(paths)

		return nil
	}

	done := make(chan error, 1)

	go func() {
		done <- watch(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), []string{dir}, check)
	}()

	await := func(want int) {
		t.Helper()

		timeout := time.After(10 * time.Second)

		for {
			select {
			case got := <-counts:
				if got == want {
					return
				}

			case err := <-done:
				t.Fatalf("watch returned early: %v", err)

			case <-timeout:
				t.Fatalf("no run with %d files", want)
			}
		}
	}

	await(1)
	writeFile(t, filepath.Join(dir, "b.bound.yaml"))
	await(2)

	cancel()

	if err := <-done; err != nil {
		t.Errorf("watch failed: %v", err)
	}
}
