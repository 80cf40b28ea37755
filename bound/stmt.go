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

// Stmt is a bound statement. The set of implementations is closed.
type Stmt interface {
	Node
	stmtNode()
}

// StmtBase holds the position shared by all statements.
type StmtBase struct {
	At Pos
}

// Pos implements [Node].
func (s *StmtBase) Pos() Pos { return s.At }

func (*StmtBase) stmtNode() {}

type (
	// Block is a braced statement list opening a new scope.
	Block struct {
		StmtBase
		Stmts []Stmt
	}

	// LocalDecl declares a local, Init is nil without an initializer.
	LocalDecl struct {
		StmtBase
		Local *Local
		Init  Expr
	}

	// ExprStmt evaluates an expression for its side effects.
	ExprStmt struct {
		StmtBase
		X Expr
	}

	// Return returns from the enclosing function, Value is nil for void returns.
	Return struct {
		StmtBase
		Value Expr
		IsRef bool
	}

	// YieldReturn produces the next iterator value.
	YieldReturn struct {
		StmtBase
		Value Expr
	}

	// YieldBreak ends an iterator.
	YieldBreak struct {
		StmtBase
	}

	// If is a conditional statement, Else may be nil.
	If struct {
		StmtBase
		Cond Expr
		Then Stmt
		Else Stmt
	}

	// While is a loop.
	While struct {
		StmtBase
		Cond Expr
		Body Stmt
	}

	// For is a three-clause loop.
	For struct {
		StmtBase
		Init []Stmt
		Cond Expr
		Post []Expr
		Body Stmt
	}

	// Foreach iterates over Collection, declaring either Local or deconstruction Targets.
	Foreach struct {
		StmtBase
		Local      *Local
		Targets    []Expr
		Collection Expr
		Body       Stmt
	}

	// Switch is a pattern switch statement.
	Switch struct {
		StmtBase
		Subject  Expr
		Sections []*SwitchSection
	}

	// Unsafe is an unsafe block.
	Unsafe struct {
		StmtBase
		Body *Block
	}

	// LocalFunction declares a nested function.
	LocalFunction struct {
		StmtBase
		Func *Function
	}

	// Throw is a throw statement, Value is nil for rethrow.
	Throw struct {
		StmtBase
		Value Expr
	}
)

// SwitchSection is a group of case labels with their statements.
type SwitchSection struct {
	At Pos

	// Declared are the locals declared by the section's patterns.
	Declared []*Local

	Stmts []Stmt
}

// Pos implements [Node].
func (s *SwitchSection) Pos() Pos { return s.At }
