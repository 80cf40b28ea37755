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

package report

import (
	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
)

// Bag accumulates the diagnostics of one analysis unit in report order.
type Bag struct {
	method string
	diags  []diag.Diagnostic
}

// NewBag creates an empty [Bag] for the named method.
func NewBag(method string) *Bag {
	return &Bag{method: method}
}

// Report appends a diagnostic.
func (b *Bag) Report(pos bound.Pos, kind diag.Kind, severity diag.Severity, args ...string) {
	b.diags = append(b.diags, diag.Diagnostic{
		Pos:      pos,
		Kind:     kind,
		Severity: severity,
		Args:     args,
		Method:   b.method,
	})
}

// Diagnostics returns the accumulated diagnostics.
func (b *Bag) Diagnostics() []diag.Diagnostic {
	return b.diags
}
