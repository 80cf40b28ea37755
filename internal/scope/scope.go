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

// Package scope implements the escape scope lattice.
package scope

import "strconv"

// Scope is an escape scope: how far up the call or block hierarchy a reference or value may travel.
//
// Scopes are totally ordered. A smaller value is wider: [CallingMethod] is the widest scope, every
// nested block adds one level below [CurrentMethod].
type Scope uint32

const (
	// CallingMethod can escape the declaring method entirely.
	CallingMethod Scope = iota

	// ReturnOnly may flow into a return statement of the current method, but not into any variable.
	ReturnOnly

	// CurrentMethod is the scope of the method body and its top-level locals.
	CurrentMethod
)

// Nested returns the scope of a block nested directly inside s.
func (s Scope) Nested() Scope {
	if s < CurrentMethod {
		return CurrentMethod
	}

	return s + 1
}

// ConvertibleTo reports whether a reference or value of scope s may flow into a destination of scope to.
func (s Scope) ConvertibleTo(to Scope) bool {
	return s <= to
}

// NarrowerThan reports whether s is strictly narrower than o.
func (s Scope) NarrowerThan(o Scope) bool {
	return s > o
}

// Returnable reports whether s permits flowing into a return statement.
func (s Scope) Returnable() bool {
	return s <= ReturnOnly
}

// ForLocal maps s to a scope a local variable can hold. Locals can't be return-only.
func (s Scope) ForLocal() Scope {
	if s == ReturnOnly {
		return CurrentMethod
	}

	return s
}

// Narrowest returns the narrower of a and b, the merge at control flow joins.
func Narrowest(a, b Scope) Scope {
	return max(a, b)
}

// Widest returns the wider of a and b.
func Widest(a, b Scope) Scope {
	return min(a, b)
}

// String returns a human-readable form of the scope.
func (s Scope) String() string {
	switch s {
	case CallingMethod:
		return "calling-method"

	case ReturnOnly:
		return "return-only"

	case CurrentMethod:
		return "current-method"

	default:
		return "block+" + strconv.FormatUint(uint64(s-CurrentMethod), 10)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
