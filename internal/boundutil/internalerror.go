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

package boundutil

import (
	"fmt"

	"fillmore-labs.com/refescape/bound"
	"fillmore-labs.com/refescape/diag"
	"fillmore-labs.com/refescape/internal/report"
)

// InternalError reports an internal error diagnostic.
// These errors indicate bugs in the analysis or an inconsistent bound tree rather than issues in the user's code.
func InternalError(bag *report.Bag, pos bound.Pos, format string, args ...any) {
	bag.Report(pos, diag.InternalError, diag.Error, fmt.Sprintf(format, args...))
}
