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

	"golang.org/x/tools/go/ssa"

	"fillmore-labs.com/exclusivity/internal/ir"
)

// inout is an argument passed by address.
type inout struct {
	arg  int // index into the SSA call arguments
	expr ir.Expr
}

// call lowers c and reports whether control continues after it.
func (f *function) call(c *ssa.Call) bool {
	common := c.Common()
	if _, ok := common.Value.(*ssa.Builtin); ok {
		return true
	}

	if call, ok := f.calls[c.Pos()]; ok {
		f.emitCall(call, common, c.Pos())
	}

	if cantReturn(common) {
		f.b.Unreachable(c.Pos())

		return false
	}

	return true
}

// emitCall emits the call together with the formal accesses of its inout arguments.
func (f *function) emitCall(call *ast.CallExpr, common *ssa.CallCommon, pos token.Pos) {
	callee := common.StaticCallee()
	expr, inouts := f.callExpr(call, common)

	accesses := make([]*ir.BeginAccess, 0, len(inouts))
	args := make([]ir.Value, 0, len(inouts))

	for _, io := range inouts {
		kind := ir.Modify
		if readOnlyParam(callee, io.arg) {
			kind = ir.Read
		}

		a := f.b.BeginAccess(kind, f.address(common.Args[io.arg]), io.expr, io.expr.Pos())
		accesses = append(accesses, a)
		args = append(args, a)
	}

	f.b.Call(calleeFunc(callee), args, expr, pos)

	for i := len(accesses) - 1; i >= 0; i-- {
		f.b.EndAccess(accesses[i], call.Rparen)
	}
}

// callExpr builds the source expression of call and collects the arguments
// passed by address, including an implicit receiver.
func (f *function) callExpr(call *ast.CallExpr, common *ssa.CallCommon) (*ir.CallExpr, []inout) {
	expr := &ir.CallExpr{
		Fun:    f.text(call.Fun),
		Args:   make([]ir.Expr, 0, len(call.Args)),
		Rparen: call.Rparen,
	}

	var (
		inouts []inout
		offset int
	)

	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok && !common.IsInvoke() {
		if s, ok := f.info.Selections[sel]; ok && s.Kind() == types.MethodVal {
			offset = 1

			if f.implicitAddress(s) && len(common.Args) > 0 {
				inouts = append(inouts, inout{arg: 0, expr: f.text(sel.X)})
			}
		}
	}

	// arguments packed into a variadic slice have no SSA argument of their own
	packed := len(common.Args) - offset
	if sig := common.Signature(); sig.Variadic() && !call.Ellipsis.IsValid() {
		packed = sig.Params().Len() - 1
	}

	for i, arg := range call.Args {
		e := f.argExpr(arg)
		expr.Args = append(expr.Args, e)

		if io, ok := e.(*ir.InOutExpr); ok && i < packed && i+offset < len(common.Args) {
			inouts = append(inouts, inout{arg: i + offset, expr: io})
		}
	}

	return expr, inouts
}

// implicitAddress reports whether the method call takes the address of an
// addressable receiver value, like v.M() for func (*T) M().
func (f *function) implicitAddress(s *types.Selection) bool {
	fn, ok := s.Obj().(*types.Func)
	if !ok {
		return false
	}

	recv := fn.Signature().Recv()
	if recv == nil || s.Indirect() {
		return false
	}

	if _, ok := recv.Type().Underlying().(*types.Pointer); !ok {
		return false
	}

	_, ptr := s.Recv().Underlying().(*types.Pointer)

	return !ptr
}

// argExpr returns the source expression of a call argument.
func (f *function) argExpr(arg ast.Expr) ir.Expr {
	u, ok := ast.Unparen(arg).(*ast.UnaryExpr)
	if !ok || u.Op != token.AND {
		return f.text(arg)
	}

	if _, ok := ast.Unparen(u.X).(*ast.CompositeLit); ok {
		return f.text(arg)
	}

	return &ir.InOutExpr{Amp: u.OpPos, X: f.subExpr(u.X)}
}

// subExpr returns the source expression of an addressed operand.
func (f *function) subExpr(x ast.Expr) ir.Expr {
	ix, ok := ast.Unparen(x).(*ast.IndexExpr)
	if !ok {
		return f.text(x)
	}

	t := f.info.TypeOf(ix.X)
	if t == nil || !indexable(t) {
		return f.text(x)
	}

	return &ir.SubscriptExpr{
		Base:   f.text(ix.X),
		Index:  f.text(ix.Index),
		Decl:   f.collection(t),
		Rbrack: ix.Rbrack,
	}
}

func (l *Lowerer) text(e ast.Expr) *ir.TextExpr {
	l.nodes[[2]token.Pos{e.Pos(), e.End()}] = e

	return &ir.TextExpr{From: e.Pos(), To: e.End()}
}

func indexable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Slice, *types.Array:
		return true

	case *types.Pointer:
		_, ok := u.Elem().Underlying().(*types.Array)

		return ok
	}

	return false
}

func calleeFunc(fn *ssa.Function) *ir.Func {
	if fn == nil {
		return nil
	}

	if o := fn.Origin(); o != nil {
		fn = o
	}

	var path string
	if fn.Pkg != nil {
		path = fn.Pkg.Pkg.Path()
	}

	return &ir.Func{Pkg: path, Name: fn.Name()}
}
