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

/*
Package settings reads refescape configuration files.

# Usage

Place a file .refescape.yaml (or .refescape.json) in the directory the analysis runs from:

	---
	version: ref-fields
	unsafe: strict
	generated: false
	escape: true
	boundary: true
	categorical: true
	concurrency: 4

Every setting is optional; only the settings present override the defaults. Unknown keys are rejected.
The JSON form uses the same keys, with the levels given as strings.
*/
package settings
