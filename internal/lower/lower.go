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

package lower

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/exclusivity/internal/ir"
	"fillmore-labs.com/exclusivity/internal/storage"
)

// Lowerer translates the functions of one package.
type Lowerer struct {
	fset       *token.FileSet
	info       *types.Info
	pkg        *types.Package
	swapMethod string

	calls  map[token.Pos]*ast.CallExpr // by Lparen
	vars   map[token.Pos]*types.Var    // defined variables by position
	nodes  map[[2]token.Pos]ast.Node   // source ranges of lowered expressions
	params map[*types.Var]bool

	decls       map[types.Object]*ir.Decl
	globals     map[*ssa.Global]*ir.Global
	fields      map[*types.Var]*ir.Field
	collections typeutil.Map // types.Type → *ir.Decl
	mutable     map[*ir.Decl]bool
}

// New returns a [Lowerer] for the package pkg.
//
// swapMethod names the element swapping method of mutable collections,
// which must have the signature func(i, j int).
func New(fset *token.FileSet, info *types.Info, pkg *types.Package, in *inspector.Inspector, swapMethod string) *Lowerer {
	l := &Lowerer{
		fset:       fset,
		info:       info,
		pkg:        pkg,
		swapMethod: swapMethod,
		calls:      make(map[token.Pos]*ast.CallExpr),
		vars:       make(map[token.Pos]*types.Var),
		params:     make(map[*types.Var]bool),
		nodes:      make(map[[2]token.Pos]ast.Node),
		decls:      make(map[types.Object]*ir.Decl),
		globals:    make(map[*ssa.Global]*ir.Global),
		fields:     make(map[*types.Var]*ir.Field),
		mutable:    make(map[*ir.Decl]bool),
	}

	for c := range in.Root().Preorder((*ast.CallExpr)(nil), (*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		switch n := c.Node().(type) {
		case *ast.CallExpr:
			l.calls[n.Lparen] = n

		case *ast.FuncDecl:
			l.addParams(n.Recv)
			l.addParams(n.Type.Params)

		case *ast.FuncLit:
			l.addParams(n.Type.Params)
		}
	}

	for id, obj := range info.Defs {
		if v, ok := obj.(*types.Var); ok && !v.IsField() {
			l.vars[id.Pos()] = v
		}
	}

	return l
}

// Function lowers fn. It returns nil for functions without body.
func (l *Lowerer) Function(fn *ssa.Function) *ir.Function {
	if len(fn.Blocks) == 0 {
		return nil
	}

	f := &function{
		Lowerer:  l,
		fn:       fn,
		b:        ir.NewBuilder(fn.String(), fn.Pos()),
		addrs:    make(map[ssa.Value]ir.Value),
		objects:  make(map[ssa.Value]ir.Value),
		opaques:  make(map[ssa.Value]ir.Value),
		bases:    make(map[ssa.Value]ir.Value),
		elements: make(map[storage.Storage]ir.Value),
	}

	f.lower()

	return f.b.Function()
}

// function holds the state of lowering a single function.
type function struct {
	*Lowerer
	fn       *ssa.Function
	b        *ir.Builder
	addrs    map[ssa.Value]ir.Value       // values lowered as accessed addresses
	objects  map[ssa.Value]ir.Value       // values lowered as reference objects
	opaques  map[ssa.Value]ir.Value       // values lowered as non-addresses
	bases    map[ssa.Value]ir.Value       // backing arrays of unidentified slices
	elements map[storage.Storage]ir.Value // backing arrays of slices held in storage
}

func (f *function) lower() {
	for _, p := range f.fn.Params {
		var decl *ir.Decl
		if v, _ := p.Object().(*types.Var); v != nil {
			decl = f.decl(v)
		}

		param := f.b.Param(decl, p.Pos())
		f.addrs[p] = param
		f.objects[p] = param
	}

	for range f.fn.Blocks[1:] {
		f.b.NewBlock()
	}

	for _, blk := range f.fn.Blocks {
		for _, succ := range blk.Succs {
			f.b.Edge(blk.Index, succ.Index)
		}
	}

	for _, blk := range f.fn.Blocks {
		f.b.SetBlock(blk.Index)

	instrs:
		for _, instr := range blk.Instrs {
			switch instr := instr.(type) {
			case *ssa.Call:
				if !f.call(instr) {
					break instrs
				}

			case *ssa.Return:
				f.b.Return(instr.Pos())

			case *ssa.Panic:
				f.b.Unreachable(instr.Pos())
			}
		}
	}
}

func (l *Lowerer) addParams(fields *ast.FieldList) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			if v, ok := l.info.Defs[name].(*types.Var); ok {
				l.params[v] = true
			}
		}
	}
}

// decl returns the declaration of a variable or field.
func (l *Lowerer) decl(obj types.Object) *ir.Decl {
	if obj == nil || obj.Name() == "" || obj.Name() == "_" {
		return nil
	}

	if d, ok := l.decls[obj]; ok {
		return d
	}

	kind := "var"
	if v, ok := obj.(*types.Var); ok {
		switch {
		case v.IsField():
			kind = "field"

		case l.params[v]:
			kind = "parameter"
		}
	}

	d := &ir.Decl{Kind: kind, Name: obj.Name(), Pos: obj.Pos()}
	l.decls[obj] = d

	return d
}

// localDecl returns the declaration of the local variable defined at pos.
func (l *Lowerer) localDecl(pos token.Pos) *ir.Decl {
	v, ok := l.vars[pos]
	if !ok {
		return nil
	}

	return l.decl(v)
}
