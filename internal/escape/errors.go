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

package escape

import (
	"errors"
	"fmt"

	"fillmore-labs.com/refescape/bound"
)

// ErrInternal is wrapped by errors signaling an inconsistent bound tree.
var ErrInternal = errors.New("internal analysis error")

// InternalAnalysisError is the first inconsistency found while analyzing a method.
type InternalAnalysisError struct {
	Pos bound.Pos
	Msg string
}

func (e *InternalAnalysisError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func (e *InternalAnalysisError) Unwrap() error {
	return ErrInternal
}

func newInternalError(pos bound.Pos, format string, args ...any) *InternalAnalysisError {
	return &InternalAnalysisError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
