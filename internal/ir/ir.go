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

import (
	"go/token"
	"strconv"
)

// Function is a function body lowered for access checking.
type Function struct {
	Name   string
	Pos    token.Pos
	Params []*Param

	// Blocks is the block arena. Blocks[0] is the entry block; blocks
	// refer to each other by index.
	Blocks []Block
}

// Block is a basic block of a [Function].
type Block struct {
	Index        int
	Preds, Succs []int
	Instrs       []Instruction
}

// Value is anything an instruction can take as operand.
// Values are compared by identity.
type Value interface {
	Name() string
	Pos() token.Pos
	String() string
}

// Instruction is a member of a [Block].
type Instruction interface {
	Block() int
	Pos() token.Pos
	String() string
}

type node struct {
	id    int
	block int
	pos   token.Pos
}

// Name returns the register name of the value, like "%3".
func (n *node) Name() string { return "%" + strconv.Itoa(n.id) }

// Block returns the index of the containing block, or -1.
func (n *node) Block() int { return n.block }

// Pos returns the source position of the instruction or value.
func (n *node) Pos() token.Pos { return n.pos }

// Decl is a nameable source declaration.
type Decl struct {
	Kind string // e.g. "var", "parameter", "field"
	Name string
	Pos  token.Pos
}

// Global is a global variable.
type Global struct {
	Name string
	Decl *Decl
}

// Field is a stored property of an object, used as the projection of a [RefFieldAddr].
type Field struct {
	Index int
	Decl  *Decl
}

// Func identifies a called function.
type Func struct {
	Pkg  string // import path, may be empty
	Name string
}

// String returns the qualified name.
func (f *Func) String() string {
	if f.Pkg == "" {
		return f.Name
	}

	return f.Pkg + "." + f.Name
}

// Param is a function argument. It is a fully identified address root.
type Param struct {
	node
	Decl *Decl
}

// Opaque is a value not produced by any address producer.
type Opaque struct {
	node
	Comment string
}

// Alloc is a stack or heap allocated local.
type Alloc struct {
	node
	Decl *Decl
	Heap bool
}

// PointerToAddress casts a raw pointer to an address.
type PointerToAddress struct {
	node
	X Value
}

// GlobalAddr is the address of a global variable.
type GlobalAddr struct {
	node
	Global *Global
}

// RefFieldAddr is the address of a stored field of the object referenced by Object.
type RefFieldAddr struct {
	node
	Object Value
	Field  *Field
}

// Project is a transparent address computation: the storage accessed through
// it is identified with the storage of X.
type Project struct {
	node
	Op    ProjectOp
	X     Value
	Index Value // IndexAddr and TailAddr only
}

// BeginBorrow borrows an object reference for the duration of a scope.
type BeginBorrow struct {
	node
	X Value
}

// BeginAccess starts an access to the memory at Addr. The access lasts until
// the paired [EndAccess]. Its result is the accessed address.
type BeginAccess struct {
	node
	Kind AccessKind
	Addr Value
	Expr Expr // source expression, may be nil
}

// End returns the end of the accessing source expression.
func (a *BeginAccess) End() token.Pos {
	if a.Expr != nil {
		return a.Expr.End()
	}

	return a.pos
}

// EndAccess ends the access started by Begin.
type EndAccess struct {
	node
	Begin *BeginAccess
}

// Call calls a function.
type Call struct {
	node
	Callee *Func // nil for dynamic calls
	Args   []Value
	Expr   *CallExpr // source expression, may be nil
}

// Return exits the function.
type Return struct{ node }

// Unreachable terminates a block that does not return normally.
type Unreachable struct{ node }
