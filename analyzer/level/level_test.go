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

package level_test

import (
	"testing"

	. "fillmore-labs.com/refescape/analyzer/level"
)

func TestVersionText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    Version
		wantErr bool
	}{
		{text: "", want: Legacy},
		{text: "10", want: Legacy},
		{text: "CSharp10", want: Legacy},
		{text: "11", want: RefFields},
		{text: "ref-fields", want: RefFields},
		{text: "12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var v Version

			err := v.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, want error %t", tt.text, err, tt.wantErr)
			}

			if err == nil && v != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, v, tt.want)
			}
		})
	}
}

func TestUnsafeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, u := range []Unsafe{UnsafeWarn, UnsafeStrict} {
		text, err := u.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) failed: %v", u, err)
		}

		var got Unsafe
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}

		if got != u {
			t.Errorf("UnmarshalText(%q) = %d, want %d", text, got, u)
		}
	}

	if _, err := Unsafe(7).MarshalText(); err == nil {
		t.Error("MarshalText(7) succeeded, want error")
	}
}
