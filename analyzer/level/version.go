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

package level

import (
	"fmt"
	"strings"
)

// Version selects the escape rule set.
type Version uint8

const (
	// Legacy applies the rules of language versions without ref fields. Ref and out parameters
	// are returnable, and every ref argument may be captured by a ref-like result.
	Legacy Version = iota

	// RefFields applies the rules of language versions with ref fields. Ref parameters are
	// return-only, out parameters are implicitly scoped.
	RefFields
)

// String returns the canonical name of the rule set.
func (v Version) String() string {
	switch v {
	case Legacy:
		return "csharp10"

	case RefFields:
		return "csharp11"

	default:
		return fmt.Sprintf("Version(%d)", v)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	switch v {
	case Legacy, RefFields:
		return []byte(v.String()), nil

	default:
		return nil, fmt.Errorf("unknown language version %d", v)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "10", "csharp10", "legacy":
		*v = Legacy

	case "11", "csharp11", "ref-fields":
		*v = RefFields

	default:
		return fmt.Errorf("unknown language version %q", string(text))
	}

	return nil
}
