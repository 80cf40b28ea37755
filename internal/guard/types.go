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
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
)

// typ reports the by-ref-like types nested in t that would end up on the heap.
func (c *checker) typ(pos bound.Pos, t *bound.Type) {
	if !c.cfg.Categorical || t == nil {
		return
	}

	switch t.Kind {
	case bound.ArrayType:
		c.element(pos, t.Elem)

		return

	case bound.NullableType:
		if t.Elem.IsRefLike() {
			c.bag.Report(pos, diag.CannotBeMadeNullable, diag.Error, t.Elem.String())

			return
		}

		c.typ(pos, t.Elem)

		return

	case bound.PointerType:
		c.typ(pos, t.Elem)

		return
	}

	c.typeArgs(pos, t.Args)
}

// element checks the element type of an array.
func (c *checker) element(pos bound.Pos, elem *bound.Type) {
	if !c.cfg.Categorical {
		return
	}

	if elem.IsRefLike() {
		c.bag.Report(pos, diag.ArrayElementCantBeRefAny, diag.Error, elem.String())

		return
	}

	c.typ(pos, elem)
}

// typeArgs checks the type arguments of a generic type, tuple or invocation.
func (c *checker) typeArgs(pos bound.Pos, args []*bound.Type) {
	if !c.cfg.Categorical {
		return
	}

	for _, a := range args {
		if a.IsRefLike() {
			c.bag.Report(pos, diag.BadTypeArgument, diag.Error, a.String())

			continue
		}

		c.typ(pos, a)
	}
}
