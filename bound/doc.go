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

// Package bound defines the bound tree consumed by the ref-escape analysis.
//
// A bound tree is the output of a binder: every name is resolved to a symbol ([Local],
// [Parameter], [Field]), every invocation to a [Signature] and every expression carries its
// [Type]. Expressions and statements are closed sum types; use a type switch to visit them
// and [Inspect] to traverse a tree.
//
// Locals are identified by pointer. A [LocalRef] refers to the same *[Local] as the
// [LocalDecl], [OutVar], pattern or iteration variable that declared it.
package bound
