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

package storage

import "fillmore-labs.com/exclusivity/internal/ir"

// Resolve returns the storage the address addr refers to.
//
// It walks backward through transparent projections. Global and stored
// property addresses are identified specially; allocations, arguments, nested
// accesses and pointer casts are roots. Any other producer is a malformed
// address and yields an error wrapping [ir.ErrContract].
func Resolve(addr ir.Value) (Storage, error) {
	for {
		switch v := addr.(type) {
		case *ir.Project:
			addr = v.X

		case *ir.GlobalAddr:
			return ForGlobal(v.Global), nil

		case *ir.RefFieldAddr:
			return ForField(UnderlyingObject(v.Object), v.Field), nil

		case *ir.Alloc, *ir.Param, *ir.BeginAccess, *ir.PointerToAddress:
			return ForValue(v), nil

		case nil:
			return Storage{}, ir.Errorf(nil, 0, "missing address")

		default:
			return Storage{}, ir.Errorf(nil, addr.Pos(), "unexpected address producer %s", addr)
		}
	}
}

// UnderlyingObject strips borrows from an object reference.
func UnderlyingObject(object ir.Value) ir.Value {
	for {
		b, ok := object.(*ir.BeginBorrow)
		if !ok {
			return object
		}

		object = b.X
	}
}
