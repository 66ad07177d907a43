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
	"bytes"
	"go/printer"
	"go/token"
	"go/types"

	"fillmore-labs.com/exclusivity/internal/ir"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// collection returns the subscript declaration of the indexable type t.
// All subscripts of identical types share one declaration.
func (l *Lowerer) collection(t types.Type) *ir.Decl {
	if d, ok := l.collections.At(t).(*ir.Decl); ok {
		return d
	}

	d := &ir.Decl{Kind: "subscript", Name: types.TypeString(t, types.RelativeTo(l.pkg))}
	l.collections.Set(t, d)
	l.mutable[d] = l.hasSwapMethod(t)

	return d
}

// MutableCollection reports whether the collection of the subscript decl
// has a method func(i, j int) swapping two elements.
func (l *Lowerer) MutableCollection(decl *ir.Decl) bool { return l.mutable[decl] }

func (l *Lowerer) hasSwapMethod(t types.Type) bool {
	if l.swapMethod == "" {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, true, l.pkg, l.swapMethod)

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig := fn.Signature()
	if sig.Results().Len() != 0 || sig.Params().Len() != 2 || sig.Variadic() {
		return false
	}

	for v := range sig.Params().Variables() {
		if b, ok := v.Type().Underlying().(*types.Basic); !ok || b.Kind() != types.Int {
			return false
		}
	}

	return true
}

// Text returns the source text of a lowered expression.
func (l *Lowerer) Text(pos, end token.Pos) (string, bool) {
	n, ok := l.nodes[[2]token.Pos{pos, end}]
	if !ok {
		return "", false
	}

	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, l.fset, n); err != nil {
		return "", false
	}

	return buf.String(), true
}
