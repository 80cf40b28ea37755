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

// Unsafe specifies how scope violations in unsafe contexts are reported.
type Unsafe uint8

const (
	// UnsafeWarn downgrades scope violations in unsafe contexts to warnings.
	UnsafeWarn Unsafe = iota

	// UnsafeStrict reports scope violations in unsafe contexts as errors.
	UnsafeStrict
)

// String returns "warn" or "strict".
func (u Unsafe) String() string {
	switch u {
	case UnsafeWarn:
		return "warn"

	case UnsafeStrict:
		return "strict"

	default:
		return fmt.Sprintf("Unsafe(%d)", u)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u Unsafe) MarshalText() ([]byte, error) {
	switch u {
	case UnsafeWarn, UnsafeStrict:
		return []byte(u.String()), nil

	default:
		return nil, fmt.Errorf("unknown unsafe level %d", u)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Unsafe) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "warn", "warning":
		*u = UnsafeWarn

	case "strict", "error":
		*u = UnsafeStrict

	default:
		return fmt.Errorf("unknown unsafe level %q", string(text))
	}

	return nil
}
