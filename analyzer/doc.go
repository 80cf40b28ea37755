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

// Package analyzer implements the refescape analysis.
//
// # Overview
//
// Refescape checks that values of by-ref-like types (ref structs such as Span<T>) and
// references to variables never outlive the storage they refer to. It works on bound
// method bodies, read from .bound.yaml files, and reports C# compatible diagnostics.
//
// # Example
//
//	Span<int> M()
//	{
//	    Span<int> s = stackalloc int[1];
//	    return s; // error escape-variable: Cannot use variable 's' in this context ...
//	}
//
// # Checks
//
// The analysis consists of three independently enabled checks:
//
//   - escape: escape scopes of values and references, including argument mixing at call sites
//   - boundary: by-ref-like values across suspension points of async methods and iterators, and in captures
//   - categorical: by-ref-like array elements, type arguments and nullable types
//
// Violations inside unsafe contexts are reported as warnings unless the unsafe level is strict.
package analyzer
