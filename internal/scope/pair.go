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

package scope

import "fmt"

// Pair holds both escape scopes of a storage location.
type Pair struct {
	// Ref is the ref-safe-to-escape scope: how far a reference to the location may travel.
	Ref Scope

	// Val is the safe-to-escape scope: how far the value itself may travel.
	Val Scope
}

// Uniform returns a [Pair] with both scopes set to s.
func Uniform(s Scope) Pair {
	return Pair{Ref: s, Val: s}
}

// ForLocal maps both components to scopes a local variable can hold.
func (p Pair) ForLocal() Pair {
	return Pair{Ref: p.Ref.ForLocal(), Val: p.Val.ForLocal()}
}

// String returns a human-readable form of the pair.
func (p Pair) String() string {
	return fmt.Sprintf("(ref: %s, val: %s)", p.Ref, p.Val)
}
