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

// Package ir defines the access-marked intermediate representation checked by
// the exclusivity analysis.
//
// A [Function] is an arena of [Block]s, referenced by index, with block 0 as
// the entry. Every access to memory is bracketed by a [BeginAccess] and its
// paired [EndAccess]. Addresses are produced by a small, closed set of
// instructions; see [Project] for the transparent ones.
package ir
