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

package bound

// Function is a method, lambda or local function body together with its signature.
type Function struct {
	Sig *Signature

	Async bool

	// Unsafe marks an unsafe context.
	Unsafe bool

	Body *Block

	At Pos
}

// Pos implements [Node].
func (f *Function) Pos() Pos { return f.At }

// IsIterator reports whether the body contains a yield statement outside nested functions.
func (f *Function) IsIterator() bool {
	if f.Body == nil {
		return false
	}

	iterator := false

	Inspect(f.Body, func(n Node) bool {
		switch n.(type) {
		case *YieldReturn, *YieldBreak:
			iterator = true

		case *Function:
			return false
		}

		return !iterator
	})

	return iterator
}

// Method is a member declaration with a body.
type Method struct {
	Function

	// Receiver is the declaring type of an instance member.
	Receiver *Type

	// Directives are the comment directives attached to the declaration, e.g. "nolint:refescape".
	Directives []string
}

// Name returns the qualified display name of the method.
func (m *Method) Name() string {
	if m.Sig == nil {
		return "<unknown>"
	}

	return m.Sig.Container + "." + m.Sig.Name
}

// File is one bound source file.
type File struct {
	Name      string
	Generated bool

	// Directives are file-level comment directives.
	Directives []string

	Methods []*Method
}

// Compilation is a set of bound files analyzed together.
type Compilation struct {
	Files []*File
}
