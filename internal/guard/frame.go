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

package guard

import (
	"slices"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
)

// suspension holds the diagnostics for a function that suspends.
type suspension struct {
	byRefLike, refLocal diag.Kind
}

var (
	async    = &suspension{byRefLike: diag.BadSpecialByRefLocal, refLocal: diag.BadAsyncLocalRef}
	iterator = &suspension{byRefLike: diag.BadSpecialByRefIterator, refLocal: diag.BadIteratorLocalRef}
)

// frame is a function being checked.
type frame struct {
	fn     *bound.Function
	outer  *frame
	locals map[*bound.Local]struct{}

	// suspension is nil for functions that run to completion.
	suspension *suspension
}

func newFrame(fn *bound.Function, outer *frame) *frame {
	f := &frame{fn: fn, outer: outer, locals: make(map[*bound.Local]struct{})}

	switch {
	case fn.Async:
		f.suspension = async

	case fn.IsIterator():
		f.suspension = iterator
	}

	return f
}

func (f *frame) ownsLocal(l *bound.Local) bool {
	_, ok := f.locals[l]

	return ok
}

// ownsParam reports whether p is a parameter of f. The parameters of the outermost function
// are always owned.
func (f *frame) ownsParam(p *bound.Parameter) bool {
	return f.outer == nil || f.fn.Sig != nil && slices.Contains(f.fn.Sig.Params, p)
}
