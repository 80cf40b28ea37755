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

package boundutil

import (
	"iter"

	"fillmore-labs.com/refescape/bound"
)

// AllMethods yields the methods of all files with their file index. Nil files are skipped.
func AllMethods(files []*bound.File) iter.Seq2[int, *bound.Method] {
	return func(yield func(int, *bound.Method) bool) {
		for i, f := range files {
			if f == nil {
				continue
			}

			for _, m := range f.Methods {
				if !yield(i, m) {
					return
				}
			}
		}
	}
}
