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

// Package testsource provides bound test sources for the analysis tests.
//
// Test sources are bound files decoded after a shared prelude, which declares
// commonly used types and members. Golden tests are txtar archives holding one
// bound file (a name ending in .bound.yaml) and the expected output in the other
// sections.
package testsource

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/boundfile"
)

//go:embed prelude.bound.yaml
var prelude []byte

// Parse decodes src after the prelude. Positions are relative to src.
func Parse(tb testing.TB, src string) *bound.File {
	tb.Helper()

	return decode(tb, "test.bound.yaml", []byte(src))
}

func decode(tb testing.TB, name string, src []byte) *bound.File {
	tb.Helper()

	dec := boundfile.NewDecoder()
	if _, err := dec.Decode(bytes.NewReader(prelude), "prelude.bound.yaml"); err != nil {
		tb.Fatalf("Failed to decode prelude: %v", err)
	}

	f, err := dec.Decode(bytes.NewReader(src), name)
	if err != nil {
		tb.Fatalf("Failed to decode %s: %v", name, err)
	}

	return f
}

// Case is a golden test archive.
type Case struct {
	Name string
	File *bound.File

	// Want maps section names to their non-empty lines. Lines starting with # are comments.
	Want map[string][]string
}

// Load reads all archives matching pattern.
func Load(tb testing.TB, pattern string) []Case {
	tb.Helper()

	paths, err := filepath.Glob(pattern)
	if err != nil {
		tb.Fatalf("Invalid pattern %q: %v", pattern, err)
	}

	if len(paths) == 0 {
		tb.Fatalf("No test archives match %q", pattern)
	}

	cases := make([]Case, 0, len(paths))

	for _, path := range paths {
		ar, err := txtar.ParseFile(path)
		if err != nil {
			tb.Fatalf("Failed to read %s: %v", path, err)
		}

		c := Case{
			Name: strings.TrimSuffix(filepath.Base(path), ".txtar"),
			Want: make(map[string][]string),
		}

		for _, f := range ar.Files {
			if boundfile.IsBoundFile(f.Name) {
				c.File = decode(tb, f.Name, f.Data)

				continue
			}

			c.Want[f.Name] = lines(f.Data)
		}

		if c.File == nil {
			tb.Fatalf("Archive %s contains no bound file", path)
		}

		cases = append(cases, c)
	}

	return cases
}

func lines(data []byte) []string {
	var ls []string

	for l := range strings.Lines(string(data)) {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}

		ls = append(ls, l)
	}

	return ls
}
