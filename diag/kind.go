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

package diag

import "fmt"

// Kind is the closed set of diagnostic kinds reported by the analysis.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	EscapeVariable               Kind = iota // escape-variable
	EscapeCall                               // escape-call
	EscapeCall2                              // escape-call-member
	EscapeStackAlloc                         // escape-stackalloc
	EscapeOther                              // escape-other
	CallArgMixing                            // call-arg-mixing
	RefReturnLocal                           // ref-return-local
	RefReturnLocal2                          // ref-return-local-member
	RefReturnNonreturnableLocal              // ref-return-nonreturnable-local
	RefReturnNonreturnableLocal2             // ref-return-nonreturnable-local-member
	RefReturnParameter                       // ref-return-parameter
	RefReturnParameter2                      // ref-return-parameter-member
	RefReturnScopedParameter                 // ref-return-scoped-parameter
	RefReturnScopedParameter2                // ref-return-scoped-parameter-member
	RefReturnOnlyParameter                   // ref-return-only-parameter
	RefReturnOnlyParameter2                  // ref-return-only-parameter-member
	RefReturnStructThis                      // ref-return-struct-this
	RefReturnLvalueExpected                  // ref-return-lvalue-expected
	MismatchedRefEscapeInTernary             // mismatched-ref-ternary
	RefAssignNarrower                        // ref-assign-narrower
	RefLocalOrParamExpected                  // ref-local-or-param-expected
	RefLvalueExpected                        // ref-lvalue-expected
	AssignReadonlyThis                       // assign-readonly-this
	BadSpecialByRefLocal                     // by-ref-like-in-async
	BadSpecialByRefIterator                  // by-ref-like-in-iterator
	SpecialByRefInLambda                     // by-ref-like-capture
	BadAsyncLocalRef                         // ref-local-in-async
	BadIteratorLocalRef                      // ref-local-in-iterator
	ArrayElementCantBeRefAny                 // by-ref-like-array-element
	BadTypeArgument                          // by-ref-like-type-argument
	CannotBeMadeNullable                     // by-ref-like-nullable
	InternalError                            // internal-error
)

type messages struct {
	err, warn string
}

// catalogue holds the message formats. Arguments are referenced by index.
var catalogue = [...]messages{
	EscapeVariable: {
		"Cannot use variable '%[1]s' in this context because it may expose referenced variables outside of their declaration scope",
		"Use of variable '%[1]s' in this context may expose referenced variables outside of their declaration scope",
	},
	EscapeCall: {
		"Cannot use a result of '%[1]s' in this context because it may expose variables referenced by parameter '%[2]s' outside of their declaration scope",
		"Use of result of '%[1]s' in this context may expose variables referenced by parameter '%[2]s' outside of their declaration scope",
	},
	EscapeCall2: {
		"Cannot use a member of result of '%[1]s' in this context because it may expose variables referenced by parameter '%[2]s' outside of their declaration scope",
		"Use of member of result of '%[1]s' in this context may expose variables referenced by parameter '%[2]s' outside of their declaration scope",
	},
	EscapeStackAlloc: {
		"A result of a stackalloc expression of type '%[1]s' cannot be used in this context because it may be exposed outside of the containing method",
		"A result of a stackalloc expression of type '%[1]s' in this context may be exposed outside of the containing method",
	},
	EscapeOther: {
		"Expression cannot be used in this context because it may indirectly expose variables outside of their declaration scope",
		"This expression may indirectly expose variables outside of their declaration scope",
	},
	CallArgMixing: {
		"This combination of arguments to '%[1]s' is disallowed because it may expose variables referenced by parameter '%[2]s' outside of their declaration scope",
		"This combination of arguments to '%[1]s' may expose variables referenced by parameter '%[2]s' outside of their declaration scope",
	},
	RefReturnLocal: {
		"Cannot return local '%[1]s' by reference because it is not a ref local",
		"This returns local '%[1]s' by reference but it is not a ref local",
	},
	RefReturnLocal2: {
		"Cannot return a member of local '%[1]s' by reference because it is not a ref local",
		"This returns a member of local '%[1]s' by reference but it is not a ref local",
	},
	RefReturnNonreturnableLocal: {
		"Cannot return '%[1]s' by reference because it was initialized to a value that cannot be returned by reference",
		"Local '%[1]s' is returned by reference but was initialized to a value that cannot be returned by reference",
	},
	RefReturnNonreturnableLocal2: {
		"Cannot return by reference a member of '%[1]s' because it was initialized to a value that cannot be returned by reference",
		"A member of '%[1]s' is returned by reference but was initialized to a value that cannot be returned by reference",
	},
	RefReturnParameter: {
		"Cannot return a parameter by reference '%[1]s' because it is not a ref parameter",
		"This returns a parameter by reference '%[1]s' but it is not a ref parameter",
	},
	RefReturnParameter2: {
		"Cannot return by reference a member of parameter '%[1]s' because it is not a ref or out parameter",
		"This returns by reference a member of parameter '%[1]s' that is not a ref or out parameter",
	},
	RefReturnScopedParameter: {
		"Cannot return a parameter by reference '%[1]s' because it is scoped to the current method",
		"This returns a parameter by reference '%[1]s' but it is scoped to the current method",
	},
	RefReturnScopedParameter2: {
		"Cannot return by reference a member of parameter '%[1]s' because it is scoped to the current method",
		"This returns by reference a member of parameter '%[1]s' but it is scoped to the current method",
	},
	RefReturnOnlyParameter: {
		"Cannot return a parameter by reference '%[1]s' through a ref parameter; it can only be returned in a return statement",
		"This returns a parameter by reference '%[1]s' through a ref parameter; but it can only safely be returned in a return statement",
	},
	RefReturnOnlyParameter2: {
		"Cannot return by reference a member of parameter '%[1]s' through a ref parameter; it can only be returned in a return statement",
		"This returns by reference a member of parameter '%[1]s' through a ref parameter; but it can only safely be returned in a return statement",
	},
	RefReturnStructThis: {
		"Struct members cannot return 'this' or other instance members by reference",
		"This returns 'this' or a member of 'this' by reference from a struct member",
	},
	RefReturnLvalueExpected: {
		err: "An expression cannot be used in this context because it may not be passed or returned by reference",
	},
	MismatchedRefEscapeInTernary: {
		"Branches of a ref ternary operator cannot refer to variables with incompatible declaration scopes",
		"The branches of the ref conditional operator refer to variables with incompatible declaration scopes",
	},
	RefAssignNarrower: {
		"Cannot ref-assign '%[2]s' to '%[1]s' because '%[2]s' has a narrower escape scope than '%[1]s'.",
		"This ref-assigns '%[2]s' to '%[1]s' but '%[2]s' has a narrower escape scope than '%[1]s'.",
	},
	RefLocalOrParamExpected: {
		err: "The left-hand side of a ref assignment must be a ref variable.",
	},
	RefLvalueExpected: {
		err: "A ref or out value must be an assignable variable",
	},
	AssignReadonlyThis: {
		err: "Cannot assign to 'this' because it is read-only",
	},
	BadSpecialByRefLocal: {
		err: "Parameters or locals of type '%[1]s' cannot be declared in async methods or async lambda expressions.",
	},
	BadSpecialByRefIterator: {
		err: "Parameters or locals of type '%[1]s' cannot be declared in iterators.",
	},
	SpecialByRefInLambda: {
		err: "Instance of type '%[1]s' cannot be used inside a nested function, query expression, iterator block or async method",
	},
	BadAsyncLocalRef: {
		err: "Async methods cannot have by-reference locals",
	},
	BadIteratorLocalRef: {
		err: "Iterators cannot have by-reference locals",
	},
	ArrayElementCantBeRefAny: {
		err: "Array elements cannot be of type '%[1]s'",
	},
	BadTypeArgument: {
		err: "The type '%[1]s' may not be used as a type argument",
	},
	CannotBeMadeNullable: {
		err: "'%[1]s' cannot be made nullable.",
	},
	InternalError: {
		err: "Internal Error: %[1]s",
	},
}

// Downgradable reports whether the kind has a warning form used in unsafe contexts.
func (k Kind) Downgradable() bool {
	return int(k) < len(catalogue) && catalogue[k].warn != ""
}

// Format returns the message for the kind at the given severity.
func (k Kind) Format(severity Severity, args ...string) string {
	if int(k) >= len(catalogue) {
		return k.String()
	}

	format := catalogue[k].err
	if severity == Warning && catalogue[k].warn != "" {
		format = catalogue[k].warn
	}

	as := make([]any, len(args))
	for i, a := range args {
		as[i] = a
	}

	return fmt.Sprintf(format, as...)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(catalogue) {
		return nil, fmt.Errorf("unknown diagnostic kind %d", k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	for i := range len(catalogue) {
		if Kind(i).String() == string(text) {
			*k = Kind(i)

			return nil
		}
	}

	return fmt.Errorf("unknown diagnostic kind %q", string(text))
}
