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

package report_test

import (
	"go/token"
	"testing"

	"fillmore-labs.com/exclusivity/internal/access"
	"fillmore-labs.com/exclusivity/internal/ir"
	. "fillmore-labs.com/exclusivity/internal/report"
)

// source hands out consecutive positions for text snippets.
type source struct {
	next  token.Pos
	texts map[[2]token.Pos]string
}

func newSource() *source { return &source{next: 1, texts: make(map[[2]token.Pos]string)} }

func (s *source) Text(pos, end token.Pos) (string, bool) {
	t, ok := s.texts[[2]token.Pos{pos, end}]

	return t, ok
}

func (s *source) expr(text string) *ir.TextExpr {
	e := &ir.TextExpr{From: s.next, To: s.next + token.Pos(len(text))}
	s.texts[[2]token.Pos{e.From, e.To}] = text
	s.next = e.To + 1

	return e
}

// subscript returns &base[index].
func (s *source) subscript(base, index string, decl *ir.Decl) *ir.InOutExpr {
	amp := s.next
	s.next++
	b := s.expr(base)
	i := s.expr(index)
	sub := &ir.SubscriptExpr{Base: b, Index: i, Decl: decl, Rbrack: i.To}

	return &ir.InOutExpr{Amp: amp, X: sub}
}

// buildSwap lowers swap(arg1, arg2) on the parameter c.
func buildSwap(t *testing.T, src *source, arg1, arg2 ir.Expr, decl *ir.Decl) *access.Result {
	t.Helper()

	b := ir.NewBuilder("f", 0)
	c := b.Param(decl, 0)
	a1 := b.BeginAccess(ir.Modify, b.IndexAddr(c, b.Opaque("i", 0), 0), arg1, arg1.Pos())
	a2 := b.BeginAccess(ir.Modify, b.IndexAddr(c, b.Opaque("j", 0), 0), arg2, arg2.Pos())
	ce := &ir.CallExpr{Fun: src.expr("swap"), Args: []ir.Expr{arg1, arg2}, Rparen: src.next}
	src.next++
	b.Call(&ir.Func{Name: "swap"}, []ir.Value{a1, a2}, ce, ce.Pos())
	b.EndAccess(a2, 0)
	b.EndAccess(a1, 0)
	b.Return(0)

	res, err := access.Walk(b.Function(), access.Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	return res
}

func TestEmitSwapFix(t *testing.T) {
	t.Parallel()

	cDecl := &ir.Decl{Kind: "parameter", Name: "c"}
	subDecl := &ir.Decl{Kind: "subscript", Name: "Ints"}
	otherDecl := &ir.Decl{Kind: "subscript", Name: "Other"}

	tests := []struct {
		name    string
		args    func(s *source) (ir.Expr, ir.Expr)
		decl    *ir.Decl
		mutable bool
		fix     string
	}{
		{
			name: "Fix",
			args: func(s *source) (ir.Expr, ir.Expr) {
				return s.subscript("c", "i", subDecl), s.subscript("c", "j", subDecl)
			},
			decl:    cDecl,
			mutable: true,
			fix:     "c.swapAt(i, j)",
		},
		{
			name: "DifferentBase",
			args: func(s *source) (ir.Expr, ir.Expr) {
				return s.subscript("c", "i", subDecl), s.subscript("d", "j", subDecl)
			},
			decl:    cDecl,
			mutable: true,
		},
		{
			name: "DifferentSubscript",
			args: func(s *source) (ir.Expr, ir.Expr) {
				return s.subscript("c", "i", subDecl), s.subscript("c", "j", otherDecl)
			},
			decl:    cDecl,
			mutable: true,
		},
		{
			name: "Immutable",
			args: func(s *source) (ir.Expr, ir.Expr) {
				return s.subscript("c", "i", subDecl), s.subscript("c", "j", subDecl)
			},
			decl: cDecl,
		},
		{
			name: "Unidentified",
			args: func(s *source) (ir.Expr, ir.Expr) {
				return s.subscript("c", "i", subDecl), s.subscript("c", "j", subDecl)
			},
			mutable: true,
		},
		{
			name: "NoSubscript",
			args: func(s *source) (ir.Expr, ir.Expr) {
				return &ir.InOutExpr{Amp: s.next, X: s.expr("c")}, s.subscript("c", "j", subDecl)
			},
			decl:    cDecl,
			mutable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource()
			arg1, arg2 := tt.args(src)
			res := buildSwap(t, src, arg1, arg2, tt.decl)

			env := Env{
				Source:            src,
				MutableCollection: func(d *ir.Decl) bool { return tt.mutable && d == subDecl },
			}

			diagnostics := Emit(res, env)
			if len(diagnostics) != 1 {
				t.Fatalf("Got %d diagnostics, expected 1", len(diagnostics))
			}

			d := diagnostics[0]

			switch {
			case tt.fix == "" && d.Fix != nil:
				t.Errorf("Got fix %q, expected none", d.Fix.NewText)

			case tt.fix != "" && d.Fix == nil:
				t.Errorf("Got no fix, expected %q", tt.fix)

			case tt.fix != "":
				if got := d.Fix.NewText; got != tt.fix {
					t.Errorf("Got fix %q, expected %q", got, tt.fix)
				}

				ce := res.SwapCalls[0].Expr
				if d.Fix.Pos != ce.Pos() || d.Fix.End != ce.End() {
					t.Errorf("Got fix range %d-%d, expected call range %d-%d", d.Fix.Pos, d.Fix.End, ce.Pos(), ce.End())
				}
			}
		})
	}
}

func TestEmitMessages(t *testing.T) {
	t.Parallel()

	g := &ir.Global{Name: "g", Decl: &ir.Decl{Kind: "var", Name: "g"}}

	b := ir.NewBuilder("f", 0)
	read := b.BeginAccess(ir.Read, b.GlobalAddr(g, 0), nil, 10)
	write := b.BeginAccess(ir.Modify, b.GlobalAddr(g, 0), nil, 20)
	b.EndAccess(write, 0)
	b.EndAccess(read, 0)

	raw := b.PointerToAddress(b.Opaque("p", 0), 0)
	w1 := b.BeginAccess(ir.Modify, raw, nil, 30)
	w2 := b.BeginAccess(ir.Init, raw, nil, 40)
	b.EndAccess(w2, 0)
	b.EndAccess(w1, 0)
	b.Return(0)

	res, err := access.Walk(b.Function(), access.Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	diagnostics := Emit(res, Env{Severity: Warning})

	tests := []struct {
		pos, note token.Pos
		message   string
	}{
		{20, 10, "overlapping accesses to var 'g'; modification requires exclusive access"},
		{30, 40, "overlapping accesses to an unidentified location; modification requires exclusive access"},
	}

	if len(diagnostics) != len(tests) {
		t.Fatalf("Got %d diagnostics, expected %d", len(diagnostics), len(tests))
	}

	for i, tt := range tests {
		d := diagnostics[i]

		if d.Pos != tt.pos || d.Severity != Warning {
			t.Errorf("Got %s at %d, expected warning at %d", d.Severity, d.Pos, tt.pos)
		}

		if got := d.Message(); got != tt.message {
			t.Errorf("Got message %q, expected %q", got, tt.message)
		}

		if len(d.Notes) != 1 || d.Notes[0].Pos != tt.note || d.Notes[0].Message() != "conflicting access is here" {
			t.Errorf("Got notes %+v, expected conflicting access at %d", d.Notes, tt.note)
		}

		if d.Fix != nil {
			t.Errorf("Got unexpected fix %q", d.Fix.NewText)
		}
	}
}

func TestPublish(t *testing.T) {
	t.Parallel()

	var got []MessageID

	sink := SinkFunc(func(d Diagnostic) { got = append(got, d.ID) })
	Publish(sink, []Diagnostic{{ID: AccessRequired}, {ID: AccessRequiredUnknown}})

	if len(got) != 2 || got[0] != AccessRequired || got[1] != AccessRequiredUnknown {
		t.Errorf("Got %v, expected messages in order", got)
	}
}
