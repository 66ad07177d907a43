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

package report

import "fillmore-labs.com/exclusivity/internal/ir"

// swapFix tries to rewrite swap(&c[i], &c[j]) into c.swapAt(i, j).
// It returns nil when the accesses do not match this pattern.
func (env *Env) swapFix(prior, access *ir.BeginAccess, swapCalls []*ir.Call) *Fix {
	if len(swapCalls) == 0 || env.Source == nil || env.MutableCollection == nil {
		return nil
	}

	// Arguments passed in-out are modifications.
	if prior.Kind.IsRead() || access.Kind.IsRead() {
		return nil
	}

	inout1, ok1 := prior.Expr.(*ir.InOutExpr)
	inout2, ok2 := access.Expr.(*ir.InOutExpr)

	if !ok1 || !ok2 {
		return nil
	}

	call := findSwapCall(swapCalls, inout1, inout2)
	if call == nil {
		return nil
	}

	sub1, ok1 := inout1.X.(*ir.SubscriptExpr)
	sub2, ok2 := inout2.X.(*ir.SubscriptExpr)

	if !ok1 || !ok2 {
		return nil
	}

	if sub1.Decl == nil || sub1.Decl != sub2.Decl || !env.MutableCollection(sub1.Decl) {
		return nil
	}

	// Approximate "same collection" by textual equality of the bases.
	base1, ok1 := env.text(sub1.Base)
	base2, ok2 := env.text(sub2.Base)

	if !ok1 || !ok2 || base1 != base2 {
		return nil
	}

	index1, ok1 := env.text(sub1.Index)
	index2, ok2 := env.text(sub2.Index)

	if !ok1 || !ok2 {
		return nil
	}

	method := env.SwapMethod
	if method == "" {
		method = "swapAt"
	}

	return &Fix{
		Pos:     call.Pos(),
		End:     call.End(),
		NewText: base1 + "." + method + "(" + index1 + ", " + index2 + ")",
		Message: "Call '" + method + "' instead",
	}
}

// findSwapCall returns the expression of the recorded swap call taking
// exactly arg1 and arg2 as its first two arguments.
func findSwapCall(swapCalls []*ir.Call, arg1, arg2 ir.Expr) *ir.CallExpr {
	for _, call := range swapCalls {
		ce := call.Expr
		if ce == nil || len(ce.Args) < 2 {
			continue
		}

		if ce.Args[0] == arg1 && ce.Args[1] == arg2 {
			return ce
		}
	}

	return nil
}

func (env *Env) text(e ir.Expr) (string, bool) {
	if e == nil {
		return "", false
	}

	return env.Source.Text(e.Pos(), e.End())
}
