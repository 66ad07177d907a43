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
	"go/types"

	"golang.org/x/tools/go/ssa"
)

// funcName identifies a function or method by package path, receiver type name and name.
type funcName struct {
	Path, Receiver, Name string
}

func (n funcName) String() string {
	var qualified string
	if n.Path != "" {
		qualified = n.Path + "."
	}

	if n.Receiver != "" {
		return "(" + qualified + n.Receiver + ")." + n.Name
	}

	return qualified + n.Name
}

// funcNameOf returns the name of the uninstantiated fn.
func funcNameOf(fn *types.Func) funcName {
	fn = fn.Origin()

	name := funcName{Name: fn.Name()}

	recv := fn.Signature().Recv()
	if recv == nil {
		if pkg := fn.Pkg(); pkg != nil {
			name.Path = pkg.Path()
		}

		return name
	}

	t := types.Unalias(recv.Type())
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		if pkg := obj.Pkg(); pkg != nil {
			name.Path = pkg.Path()
		}

		name.Receiver = obj.Name()

	case *types.Interface:
		name.Receiver = "interface"

	default:
		name.Receiver = "<invalid>"
	}

	return name
}

// noReturn lists functions that do not return to their caller.
var noReturn = map[funcName]struct{}{
	{Path: "log", Name: "Fatal"}:   {},
	{Path: "log", Name: "Fatalf"}:  {},
	{Path: "log", Name: "Fatalln"}: {},
	{Path: "log", Name: "Panic"}:   {},
	{Path: "log", Name: "Panicf"}:  {},
	{Path: "log", Name: "Panicln"}: {},

	{Path: "log", Receiver: "Logger", Name: "Fatal"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Fatalf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Fatalln"}: {},
	{Path: "log", Receiver: "Logger", Name: "Panic"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Panicf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Panicln"}: {},

	{Path: "os", Name: "Exit"}:        {},
	{Path: "syscall", Name: "Exit"}:   {},
	{Path: "runtime", Name: "Goexit"}: {},

	{Path: "testing", Receiver: "common", Name: "Fatal"}:   {},
	{Path: "testing", Receiver: "common", Name: "Fatalf"}:  {},
	{Path: "testing", Receiver: "common", Name: "FailNow"}: {},
	{Path: "testing", Receiver: "common", Name: "Skip"}:    {},
	{Path: "testing", Receiver: "common", Name: "Skipf"}:   {},
	{Path: "testing", Receiver: "common", Name: "SkipNow"}: {},

	{Path: "testing", Receiver: "TB", Name: "Fatal"}:   {},
	{Path: "testing", Receiver: "TB", Name: "Fatalf"}:  {},
	{Path: "testing", Receiver: "TB", Name: "FailNow"}: {},
	{Path: "testing", Receiver: "TB", Name: "Skip"}:    {},
	{Path: "testing", Receiver: "TB", Name: "Skipf"}:   {},
	{Path: "testing", Receiver: "TB", Name: "SkipNow"}: {},

	{Path: "k8s.io/klog/v2", Name: "Exit"}:   {},
	{Path: "k8s.io/klog/v2", Name: "Exitf"}:  {},
	{Path: "k8s.io/klog/v2", Name: "Fatal"}:  {},
	{Path: "k8s.io/klog/v2", Name: "Fatalf"}: {},
}

// cantReturn reports whether the callee of common is known not to return.
func cantReturn(common *ssa.CallCommon) bool {
	var fn *types.Func

	if common.IsInvoke() {
		fn = common.Method
	} else if callee := common.StaticCallee(); callee != nil {
		fn, _ = callee.Object().(*types.Func)
	}

	if fn == nil {
		return false
	}

	_, ok := noReturn[funcNameOf(fn)]

	return ok
}
