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

// ProjectOp selects the address computation of a [Project].
type ProjectOp uint8

//go:generate go tool stringer -type ProjectOp -linecomment
const (
	// ProjectBox is the address of the value stored in a box.
	ProjectBox ProjectOp = iota // project_box

	// Copy is a value-preserving copy of an address.
	Copy // copy

	// MarkUninitialized marks the address as not yet initialized.
	MarkUninitialized // mark_uninitialized

	// AddrCast reinterprets an address as another type.
	AddrCast // addr_cast

	// StructElement is the address of a stored struct field.
	StructElement // struct_element_addr

	// TupleElement is the address of a tuple element.
	TupleElement // tuple_element_addr

	// EnumPayload is the address of an enum case payload.
	EnumPayload // enum_payload_addr

	// RefTail is the address of the tail allocation of an object.
	RefTail // ref_tail_addr

	// TailAddr advances an address into a tail allocation.
	TailAddr // tail_addr

	// IndexAddr is the address of an element of a contiguous buffer.
	IndexAddr // index_addr
)
