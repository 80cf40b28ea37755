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

package boundfile

import "errors"

var (
	// ErrSyntax is returned for malformed documents.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownType is returned for references to undeclared types.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownMember is returned for references to undeclared members.
	ErrUnknownMember = errors.New("unknown member")

	// ErrUnknownField is returned for references to undeclared fields.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownLocal is returned for names that resolve to no local or parameter in scope.
	ErrUnknownLocal = errors.New("unknown local")
)
