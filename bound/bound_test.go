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

package bound_test

import (
	"testing"

	. "fillmore-labs.com/refescape/bound"
)

var (
	span = &Type{Name: "System.Span<int>", Kind: RefStructType, ReadOnly: true}
	s1   = &Type{Name: "Program.S1", Kind: RefStructType}
	i32  = &Type{Name: "int", Kind: StructType}
)

func TestSignatureString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  *Signature
		want string
	}{
		{
			name: "method",
			sig: &Signature{
				Container: "Program", Name: "MayWrap", Static: true,
				Params: []*Parameter{{Name: "arg", Type: span, RefKind: RefRef}},
			},
			want: "Program.MayWrap(ref System.Span<int>)",
		},
		{
			name: "indexer",
			sig: &Signature{
				Container: "Program.S1", Name: "this[]", Kind: IndexerMember,
				Params: []*Parameter{{Name: "arg1", Type: s1, RefKind: RefIn}},
			},
			want: "Program.S1.this[in Program.S1]",
		},
		{
			name: "constructor",
			sig: &Signature{
				Container: "Program", Kind: ConstructorMember,
				Params: []*Parameter{{Name: "arg1", Type: s1, RefKind: RefRef}, {Name: "arg2", Type: s1, RefKind: RefRef}},
			},
			want: "Program.Program(ref Program.S1, ref Program.S1)",
		},
		{
			name: "generic constructor",
			sig:  &Signature{Container: "NotReadOnly<int>", Kind: ConstructorMember},
			want: "NotReadOnly<int>.NotReadOnly()",
		},
		{
			name: "delegate",
			sig: &Signature{
				Container: "Program.D1", Kind: DelegateMember,
				Params: []*Parameter{{Name: "arg1", Type: span, RefKind: RefRef}},
			},
			want: "Program.D1.Invoke(ref System.Span<int>)",
		},
		{
			name: "scoped",
			sig: &Signature{
				Container: "C", Name: "M",
				Params: []*Parameter{{Name: "x", Type: i32, RefKind: RefRef, Scoped: true}, {Name: "y", Type: i32}},
			},
			want: "C.M(scoped ref int, int)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.sig.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsIterator(t *testing.T) {
	t.Parallel()

	nested := &Function{Body: &Block{Stmts: []Stmt{&YieldBreak{}}}}

	tests := []struct {
		name string
		body *Block
		want bool
	}{
		{"empty", &Block{}, false},
		{"yield", &Block{Stmts: []Stmt{&If{Cond: &Literal{Value: "true"}, Then: &YieldReturn{Value: &Literal{Value: "1"}}}}}, true},
		{"nested function", &Block{Stmts: []Stmt{&LocalFunction{Func: nested}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := &Function{Body: tt.body}
			if got := f.IsIterator(); got != tt.want {
				t.Errorf("IsIterator() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	local := &Local{Name: "local", Type: span}
	call := &Call{
		Sig:  &Signature{Container: "Program", Name: "MayWrap"},
		Args: []*Argument{{Expr: &LocalRef{Local: local}, RefKind: RefRef}},
	}
	body := &Block{Stmts: []Stmt{
		&LocalDecl{Local: local, Init: &StackAlloc{Elem: i32, Count: &Literal{Value: "1"}}},
		&Return{Value: call},
	}}

	var kinds []string

	Inspect(body, func(n Node) bool {
		switch n.(type) {
		case *Block:
			kinds = append(kinds, "block")
		case *LocalDecl:
			kinds = append(kinds, "decl")
		case *StackAlloc:
			kinds = append(kinds, "stackalloc")
		case *Literal:
			kinds = append(kinds, "literal")
		case *Return:
			kinds = append(kinds, "return")
		case *Call:
			kinds = append(kinds, "call")

			return false // arguments are skipped
		case *LocalRef:
			kinds = append(kinds, "local")
		}

		return true
	})

	want := []string{"block", "decl", "stackalloc", "literal", "return", "call"}
	if len(kinds) != len(want) {
		t.Fatalf("Inspect visited %v, want %v", kinds, want)
	}

	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Inspect()[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}

	if got, want := Text(call), "MayWrap(ref local)"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
