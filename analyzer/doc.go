// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the exclusivity static analysis pass.
//
// # Overview
//
// Exclusivity reports overlapping accesses to the same variable when at least
// one of them modifies it. Passing two pointers to the same storage into a
// function that writes through one of them is the most common source.
//
// # Example
//
// Before:
//
//	func reverse(c sort.IntSlice) {
//	    for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
//	        swap(&c[i], &c[j]) // overlapping accesses to parameter 'c'
//	    }
//	}
//
// After applying the suggested fix:
//
//	func reverse(c sort.IntSlice) {
//	    for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
//	        c.Swap(i, j)
//	    }
//	}
//
// # Configuration
//
// Functions swapping their two pointer arguments are configured with -swap,
// the suggested collection method with -swap-method. Files with a Go version
// below -warn-below get their violations reported as warnings.
package analyzer
