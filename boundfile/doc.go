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

// Package boundfile decodes bound compilations from their YAML interchange format.
//
// A bound file declares types, fields and members by name and lists methods whose
// bodies are trees of statements and expressions. Every statement or expression is a
// mapping with exactly one kind key, for example
//
//	methods:
//	  - member: Program.Test
//	    body:
//	      - declare: local
//	        type: Span<int>
//	        init: {stackalloc: int, count: 1}
//	      - return: local
//
// A scalar expression names a local, a parameter, "this" or the discard "_".
// Positions default to the location of the node in the YAML document and can be
// overridden with an "at" key of the form "line:column".
//
// JSON documents are accepted as well.
package boundfile
