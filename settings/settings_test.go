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

package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"fillmore-labs.com/refescape/analyzer/level"
	. "fillmore-labs.com/refescape/settings"
)

const allSettings = `{
	"version": "ref-fields",
	"unsafe": "strict",
	"generated": true,
	"escape": true,
	"boundary": true,
	"categorical": false,
	"concurrency": 4
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		ext      string
		want     int
	}{
		{"all", allSettings, ".json", reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, ".json", 0},
		{"yaml", "escape: false\nversion: 11\n", ".yaml", 2},
		{"empty yaml", "", ".yml", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := Decode(strings.NewReader(tc.settings), tc.ext)
			qt.Assert(t, qt.IsNil(err))

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), got.LogValue(), tc.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		ext      string
	}{
		{"unknown json field", `{"scope": true}`, ".json"},
		{"unknown yaml field", "scope: true\n", ".yaml"},
		{"bad level", "version: csharp7\n", ".yaml"},
		{"unknown format", "", ".toml"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tc.settings), tc.ext)
			qt.Check(t, qt.IsNotNil(err))
		})
	}

	_, err := Decode(strings.NewReader(""), ".ini")
	qt.Check(t, qt.ErrorIs(err, ErrUnknownFormat))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := Load("testdata/full.refescape.yaml")
	qt.Assert(t, qt.IsNil(err))

	qt.Check(t, qt.Equals(*s.Version, level.RefFields))
	qt.Check(t, qt.Equals(*s.Unsafe, level.UnsafeStrict))
	qt.Check(t, qt.Equals(*s.Boundary, false))
	qt.Check(t, qt.Equals(*s.Concurrency, 2))

	_, err = Load("testdata/missing.yaml")
	qt.Check(t, qt.IsTrue(errors.Is(err, os.ErrNotExist)))
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, ok := Find(dir)
	qt.Check(t, qt.IsFalse(ok))

	want := filepath.Join(dir, ".refescape.json")
	qt.Assert(t, qt.IsNil(os.WriteFile(want, []byte("{}"), 0o600)))

	got, ok := Find(dir)
	qt.Check(t, qt.IsTrue(ok))
	qt.Check(t, qt.Equals(got, want))
}
