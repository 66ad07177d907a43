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

package ir

// AccessKind is the kind of access a [BeginAccess] performs.
type AccessKind uint8

//go:generate go tool stringer -type AccessKind -linecomment
const (
	// Init initializes uninitialized memory.
	Init AccessKind = iota // initialization

	// Read reads memory without modifying it.
	Read // read

	// Modify reads and writes initialized memory.
	Modify // modification

	// Deinit destroys initialized memory.
	Deinit // deinitialization
)

// IsRead reports whether the access is a read. All other kinds are write-like.
func (i AccessKind) IsRead() bool { return i == Read }
