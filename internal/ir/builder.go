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

import "go/token"

// Builder constructs a [Function] block by block.
// Instructions are appended to the current block.
type Builder struct {
	fn     *Function
	cur    int
	nextID int
}

// NewBuilder returns a [Builder] for a new function with an empty entry block.
func NewBuilder(name string, pos token.Pos) *Builder {
	b := &Builder{fn: &Function{Name: name, Pos: pos}}
	b.NewBlock()

	return b
}

// Function returns the function built so far.
func (b *Builder) Function() *Function { return b.fn }

// NewBlock appends an empty block and returns its index.
// The current block is not changed.
func (b *Builder) NewBlock() int {
	i := len(b.fn.Blocks)
	b.fn.Blocks = append(b.fn.Blocks, Block{Index: i})

	return i
}

// SetBlock makes block i the current block.
func (b *Builder) SetBlock(i int) { b.cur = i }

// Current returns the index of the current block.
func (b *Builder) Current() int { return b.cur }

// Edge adds a control-flow edge.
func (b *Builder) Edge(from, to int) {
	b.fn.Blocks[from].Succs = append(b.fn.Blocks[from].Succs, to)
	b.fn.Blocks[to].Preds = append(b.fn.Blocks[to].Preds, from)
}

// Jump adds an edge from the current block to block to.
func (b *Builder) Jump(to int) { b.Edge(b.cur, to) }

// Branch adds edges from the current block to both targets.
func (b *Builder) Branch(then, els int) {
	b.Edge(b.cur, then)
	b.Edge(b.cur, els)
}

func (b *Builder) node(pos token.Pos) node {
	b.nextID++

	return node{id: b.nextID, block: -1, pos: pos}
}

func (b *Builder) emit(n *node, instr Instruction) {
	n.block = b.cur
	blk := &b.fn.Blocks[b.cur]
	blk.Instrs = append(blk.Instrs, instr)
}

// Param adds a function argument.
func (b *Builder) Param(decl *Decl, pos token.Pos) *Param {
	p := &Param{node: b.node(pos), Decl: decl}
	b.fn.Params = append(b.fn.Params, p)

	return p
}

// Opaque returns a value that is not an address.
func (b *Builder) Opaque(comment string, pos token.Pos) *Opaque {
	return &Opaque{node: b.node(pos), Comment: comment}
}

// Alloc emits a local allocation.
func (b *Builder) Alloc(decl *Decl, heap bool, pos token.Pos) *Alloc {
	v := &Alloc{node: b.node(pos), Decl: decl, Heap: heap}
	b.emit(&v.node, v)

	return v
}

// PointerToAddress emits a raw pointer to address cast.
func (b *Builder) PointerToAddress(x Value, pos token.Pos) *PointerToAddress {
	v := &PointerToAddress{node: b.node(pos), X: x}
	b.emit(&v.node, v)

	return v
}

// GlobalAddr emits the address of a global.
func (b *Builder) GlobalAddr(g *Global, pos token.Pos) *GlobalAddr {
	v := &GlobalAddr{node: b.node(pos), Global: g}
	b.emit(&v.node, v)

	return v
}

// RefFieldAddr emits the address of a stored field of an object.
func (b *Builder) RefFieldAddr(object Value, field *Field, pos token.Pos) *RefFieldAddr {
	v := &RefFieldAddr{node: b.node(pos), Object: object, Field: field}
	b.emit(&v.node, v)

	return v
}

// Project emits a transparent address projection.
func (b *Builder) Project(op ProjectOp, x Value, pos token.Pos) *Project {
	v := &Project{node: b.node(pos), Op: op, X: x}
	b.emit(&v.node, v)

	return v
}

// IndexAddr emits the address of element index of the buffer at x.
func (b *Builder) IndexAddr(x, index Value, pos token.Pos) *Project {
	v := &Project{node: b.node(pos), Op: IndexAddr, X: x, Index: index}
	b.emit(&v.node, v)

	return v
}

// BeginBorrow emits a borrow of an object reference.
func (b *Builder) BeginBorrow(x Value, pos token.Pos) *BeginBorrow {
	v := &BeginBorrow{node: b.node(pos), X: x}
	b.emit(&v.node, v)

	return v
}

// BeginAccess emits the start of an access.
func (b *Builder) BeginAccess(kind AccessKind, addr Value, expr Expr, pos token.Pos) *BeginAccess {
	v := &BeginAccess{node: b.node(pos), Kind: kind, Addr: addr, Expr: expr}
	b.emit(&v.node, v)

	return v
}

// EndAccess emits the end of the access started by begin.
func (b *Builder) EndAccess(begin *BeginAccess, pos token.Pos) *EndAccess {
	v := &EndAccess{node: b.node(pos), Begin: begin}
	b.emit(&v.node, v)

	return v
}

// Call emits a call.
func (b *Builder) Call(callee *Func, args []Value, expr *CallExpr, pos token.Pos) *Call {
	v := &Call{node: b.node(pos), Callee: callee, Args: args, Expr: expr}
	b.emit(&v.node, v)

	return v
}

// Return emits a function return.
func (b *Builder) Return(pos token.Pos) *Return {
	v := &Return{node: b.node(pos)}
	b.emit(&v.node, v)

	return v
}

// Unreachable emits a non-returning terminator.
func (b *Builder) Unreachable(pos token.Pos) *Unreachable {
	v := &Unreachable{node: b.node(pos)}
	b.emit(&v.node, v)

	return v
}
