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

package boundfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"fillmore-labs.com/refescape/bound"
	. "fillmore-labs.com/refescape/boundfile"
)

const prelude = `
types:
  Span<int>: {kind: ref-struct, readonly: true}
  Program: {kind: class}
  S1: {kind: ref-struct}
fields:
  S1.field: {type: Span<int>}
members:
  Program.MayWrap:
    static: true
    returns: S1
    params:
      - {name: arg, type: Span<int>, ref: ref}
  Program.Test1:
    static: true
    returns: S1
`

func TestDecode(t *testing.T) {
	t.Parallel()

	const src = prelude + `
methods:
  - member: Program.Test1
    body:
      - declare: local
        type: Span<int>
        init: {stackalloc: int, count: 1}
      - declare: sp
        init: {call: Program.MayWrap, args: [local]}
      - return: {field: field, of: sp}
        at: "9:5"
`

	f, err := Decode(strings.NewReader(src), "test.bound.yaml")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Name, "test.bound.yaml"))
	qt.Assert(t, qt.HasLen(f.Methods, 1))

	m := f.Methods[0]
	qt.Assert(t, qt.Equals(m.Name(), "Program.Test1"))
	qt.Assert(t, qt.IsTrue(m.Sig.Static))
	qt.Assert(t, qt.HasLen(m.Body.Stmts, 3))

	local := m.Body.Stmts[0].(*bound.LocalDecl)
	qt.Assert(t, qt.Equals(local.Local.Type.String(), "Span<int>"))
	qt.Assert(t, qt.IsTrue(local.Local.Type.IsRefLike()))

	alloc := local.Init.(*bound.StackAlloc)
	qt.Assert(t, qt.Equals(alloc.Elem.String(), "int"))
	qt.Assert(t, qt.Equals(alloc.Type(), local.Local.Type))

	sp := m.Body.Stmts[1].(*bound.LocalDecl)
	qt.Assert(t, qt.Equals(sp.Local.Type.String(), "S1"))

	call := sp.Init.(*bound.Call)
	qt.Assert(t, qt.HasLen(call.Args, 1))
	qt.Assert(t, qt.Equals(call.Args[0].RefKind, bound.RefRef))
	qt.Assert(t, qt.Equals(call.Args[0].Expr.(*bound.LocalRef).Local, local.Local))

	ret := m.Body.Stmts[2].(*bound.Return)
	qt.Assert(t, qt.Equals(ret.Pos(), bound.Pos{Line: 9, Column: 5}))

	field := ret.Value.(*bound.FieldAccess)
	qt.Assert(t, qt.Equals(field.Field.Name, "field"))
	qt.Assert(t, qt.Equals(field.Receiver.(*bound.LocalRef).Local, sp.Local))
}

func TestDecodeNested(t *testing.T) {
	t.Parallel()

	const src = prelude + `
methods:
  - member: Program.Test1
    body:
      - declare: outer
        type: Span<int>
      - expr:
          lambda:
            params: [{name: p, type: int}]
            body:
              - declare: inner
                type: Span<int>
                init: outer
              - return: p
      - if: true
        then:
          - declare: s
            type: S1
            init: {call: Program.MayWrap, args: [{out-var: o, type: Span<int>, pass: ref}]}
`

	f, err := Decode(strings.NewReader(src), "nested.bound.yaml")
	qt.Assert(t, qt.IsNil(err))

	m := f.Methods[0]

	lambda := m.Body.Stmts[1].(*bound.ExprStmt).X.(*bound.Lambda)
	qt.Assert(t, qt.HasLen(lambda.Func.Sig.Params, 1))

	inner := lambda.Func.Body.Stmts[0].(*bound.LocalDecl)
	outer := m.Body.Stmts[0].(*bound.LocalDecl)
	qt.Assert(t, qt.Equals(inner.Init.(*bound.LocalRef).Local, outer.Local))

	ret := lambda.Func.Body.Stmts[1].(*bound.Return)
	qt.Assert(t, qt.Equals(ret.Value.(*bound.ParamRef).Param, lambda.Func.Sig.Params[0]))

	then := m.Body.Stmts[2].(*bound.If).Then.(*bound.Block)
	call := then.Stmts[0].(*bound.LocalDecl).Init.(*bound.Call)
	out := call.Args[0].Expr.(*bound.OutVar)
	qt.Assert(t, qt.Equals(out.Local.Name, "o"))
	qt.Assert(t, qt.Equals(call.Args[0].RefKind, bound.RefRef))
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "unknown type",
			src:  "methods:\n  - member: Program.Test1\n    body:\n      - declare: x\n        type: Missing\n",
			want: ErrUnknownType,
		},
		{
			name: "unknown member",
			src:  "methods:\n  - member: Program.Missing\n",
			want: ErrUnknownMember,
		},
		{
			name: "unknown local",
			src:  "methods:\n  - member: Program.Test1\n    body:\n      - return: missing\n",
			want: ErrUnknownLocal,
		},
		{
			name: "unknown field",
			src:  "methods:\n  - member: Program.Test1\n    body:\n      - return: {field: Program.Missing}\n",
			want: ErrUnknownField,
		},
		{
			name: "out of scope",
			src:  "methods:\n  - member: Program.Test1\n    body:\n      - block:\n          - declare: x\n            type: int\n      - return: x\n",
			want: ErrUnknownLocal,
		},
		{
			name: "unexpected key",
			src:  "methods:\n  - member: Program.Test1\n    body:\n      - return: 1\n        extra: 2\n",
			want: ErrSyntax,
		},
		{
			name: "bad position",
			src:  "methods:\n  - member: Program.Test1\n    body:\n      - return: 1\n        at: here\n",
			want: ErrSyntax,
		},
		{
			name: "unknown top-level key",
			src:  "imports: []\n",
			want: ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(prelude+tt.src), "bad.bound.yaml")
			qt.Assert(t, qt.ErrorIs(err, tt.want))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sub := filepath.Join(dir, "sub")
	qt.Assert(t, qt.IsNil(os.Mkdir(sub, 0o755)))

	for _, name := range []string{filepath.Join(dir, "a.bound.yaml"), filepath.Join(sub, "b.bound.json"), filepath.Join(dir, "ignored.txt")} {
		qt.Assert(t, qt.IsNil(os.WriteFile(name, []byte(prelude), 0o600)))
	}

	names, err := Expand([]string{dir})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(names, 2))

	c, err := Load(t.Context(), names...)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(c.Files, 2))
	qt.Assert(t, qt.Equals(c.Files[0].Name, names[0]))

	_, err = Load(t.Context(), filepath.Join(dir, "missing.bound.yaml"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestDecoderShared(t *testing.T) {
	t.Parallel()

	dec := NewDecoder()

	_, err := dec.Decode(strings.NewReader(prelude), "prelude.bound.yaml")
	qt.Assert(t, qt.IsNil(err))

	const src = `
methods:
  - member: Program.Test1
    body:
      - return: {new: S1}
`

	f, err := dec.Decode(strings.NewReader(src), "case.bound.yaml")
	qt.Assert(t, qt.IsNil(err))

	ret := f.Methods[0].Body.Stmts[0].(*bound.Return)
	qt.Assert(t, qt.Equals(ret.Pos(), bound.Pos{Line: 5, Column: 9}))
	qt.Assert(t, qt.Equals(ret.Value.Type().String(), "S1"))
}
