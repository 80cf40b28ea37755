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

// Refescape checks bound C# method bodies for by-ref-like values escaping their scope.
//
// Usage:
//
//	refescape check [flags] path...
//	refescape version
//
// Paths are bound files (.bound.yaml, .bound.yml or .bound.json) or directories containing them.
// The exit code is 0 when no errors were found, 1 when errors were reported and 2 for usage,
// I/O or decoding failures.
package main

import "os"

func main() {
	os.Exit(Main())
}
