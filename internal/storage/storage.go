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

import (
	"fmt"

	"fillmore-labs.com/exclusivity/internal/ir"
)

// Storage identifies a storage location. Storage values are comparable; two
// values are equal when they have the same kind and refer to the same root,
// global or object field.
//
// Construct Storage only with [ForValue], [ForGlobal] or [ForField].
type Storage struct {
	kind   Kind
	value  ir.Value   // Value: the root address
	global *ir.Global // Global
	object ir.Value   // Field: the underlying object
	field  *ir.Field  // Field
}

// ForValue returns the storage rooted at the address root.
func ForValue(root ir.Value) Storage { return Storage{kind: Value, value: root} }

// ForGlobal returns the storage of a global variable.
func ForGlobal(g *ir.Global) Storage { return Storage{kind: Global, global: g} }

// ForField returns the storage of a stored field of object.
func ForField(object ir.Value, field *ir.Field) Storage {
	return Storage{kind: Field, object: object, field: field}
}

// Kind returns the kind of storage.
func (s Storage) Kind() Kind { return s.kind }

// Root returns the address root of a [Value] storage.
func (s Storage) Root() ir.Value { return s.value }

// Global returns the global of a [Global] storage.
func (s Storage) Global() *ir.Global { return s.global }

// Object returns the underlying object of a [Field] storage.
func (s Storage) Object() ir.Value { return s.object }

// Field returns the field of a [Field] storage.
func (s Storage) Field() *ir.Field { return s.field }

// Decl returns the source declaration naming the storage, or nil.
func (s Storage) Decl() *ir.Decl {
	switch s.kind {
	case Global:
		return s.global.Decl

	case Field:
		return s.field.Decl

	case Value:
		switch v := s.value.(type) {
		case *ir.Alloc:
			return v.Decl

		case *ir.Param:
			return v.Decl
		}
	}

	return nil
}

func (s Storage) String() string {
	switch s.kind {
	case Value:
		return fmt.Sprintf("value(%s)", s.value.Name())

	case Global:
		return fmt.Sprintf("global(%s)", s.global.Name)

	case Field:
		return fmt.Sprintf("field(%s, #%d)", s.object.Name(), s.field.Index)

	default:
		return s.kind.String()
	}
}
