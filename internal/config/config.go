// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

// Checks selects the analyses to run.
type Checks uint8

const (
	// EscapeCheck enables the scope-based escape analysis, including argument mixing.
	EscapeCheck Checks = 1 << iota

	// BoundaryCheck rejects by-ref-like values across suspension points and in captures.
	BoundaryCheck

	// CategoricalCheck rejects by-ref-like array elements, type arguments and nullables.
	CategoricalCheck

	// AllChecks enables every analysis.
	AllChecks = EscapeCheck | BoundaryCheck | CategoricalCheck
)

// Behavior holds flags that change how files are selected and violations are reported.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)
