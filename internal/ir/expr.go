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

// Expr is a source expression an instruction was lowered from.
// Expressions are compared by identity.
type Expr interface {
	Pos() token.Pos
	End() token.Pos
}

// InOutExpr passes the address of X, like &x.
type InOutExpr struct {
	Amp token.Pos
	X   Expr
}

func (e *InOutExpr) Pos() token.Pos { return e.Amp }

func (e *InOutExpr) End() token.Pos { return e.X.End() }

// SubscriptExpr is an element access Base[Index].
type SubscriptExpr struct {
	Base, Index Expr

	// Decl identifies the subscript being used. Two subscript expressions
	// using the same subscript share one Decl.
	Decl   *Decl
	Rbrack token.Pos
}

func (e *SubscriptExpr) Pos() token.Pos { return e.Base.Pos() }

func (e *SubscriptExpr) End() token.Pos { return e.Rbrack + 1 }

// CallExpr is a function call.
type CallExpr struct {
	Fun    Expr
	Args   []Expr
	Rparen token.Pos
}

func (e *CallExpr) Pos() token.Pos { return e.Fun.Pos() }

func (e *CallExpr) End() token.Pos { return e.Rparen + 1 }

// TextExpr is any other expression, known only by its source range.
type TextExpr struct {
	From, To token.Pos
}

func (e *TextExpr) Pos() token.Pos { return e.From }

func (e *TextExpr) End() token.Pos { return e.To }
