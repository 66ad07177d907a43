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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/mod/semver"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/ssa"

	"fillmore-labs.com/exclusivity/internal/astutil"
	"fillmore-labs.com/exclusivity/internal/check"
	"fillmore-labs.com/exclusivity/internal/config"
	"fillmore-labs.com/exclusivity/internal/lower"
	"fillmore-labs.com/exclusivity/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// ErrInvalidVersion is returned for an invalid warn-below version.
var ErrInvalidVersion = errors.New("invalid Go version")

// ErrNoFile is returned for functions outside the files of the pass.
var ErrNoFile = errors.New("function without file info")

// Run executes the exclusivity analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("exclusivity: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ssainfo, ok := p.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	if !ok {
		return nil, fmt.Errorf("exclusivity: %s %w", buildssa.Analyzer.Name, ErrResultMissing)
	}

	if r.WarnBelow != "" && !semver.IsValid(r.WarnBelow) {
		return nil, fmt.Errorf("exclusivity: %w %q", ErrInvalidVersion, r.WarnBelow)
	}

	if !r.Behavior.Enabled(config.StaticEnforcement) {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Exclusivity")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Remember the file of each function
	files := make(map[*token.File]astutil.CurrentFile)

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			return nil, fmt.Errorf("exclusivity: file %s: %w", file.Name.Name, ErrNoFile)
		}

		files[p.Fset.File(file.FileStart)] = currentFile
	}

	l := lower.New(p.Fset, p.TypesInfo, p.Pkg, in, r.SwapMethod)

	env := report.Env{
		Source:            l,
		MutableCollection: l.MutableCollection,
		SwapMethod:        r.SwapMethod,
	}

	for _, fn := range ssainfo.SrcFuncs {
		currentFile, ok := files[p.Fset.File(fn.Pos())]
		if !ok {
			return nil, fmt.Errorf("exclusivity: %s: %w", fn, ErrNoFile)
		}

		if r.skip(currentFile, fn) {
			continue
		}

		env.Severity = report.Error
		if r.compatMode(fileVersion(p, currentFile.File())) {
			env.Severity = report.Warning
		}

		diagnostics, err := r.checkFunc(ctx, l, fn, env, logger)
		if err != nil {
			return nil, fmt.Errorf("exclusivity: %w", err)
		}

		sink := report.SinkFunc(func(d report.Diagnostic) {
			if currentFile.NoLintComment(d.Pos) {
				return
			}

			p.Report(convert(d))
		})

		report.Publish(sink, diagnostics)
	}

	return nil, nil
}

// skip reports whether fn is excluded from analysis.
func (r *Options) skip(currentFile astutil.CurrentFile, fn *ssa.Function) bool {
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return true
	}

	if currentFile.NoLint() {
		return true
	}

	// Skip functions with nolint comment, including their closures
	for ; fn != nil; fn = fn.Parent() {
		if decl, ok := fn.Syntax().(*ast.FuncDecl); ok && astutil.DocHasNoLint(decl.Doc) {
			return true
		}
	}

	return false
}

func (r *Options) checkFunc(ctx context.Context, l *lower.Lowerer, fn *ssa.Function, env report.Env, logger *slog.Logger) ([]report.Diagnostic, error) {
	region := trace.StartRegion(ctx, "Lower")
	irfn := l.Function(fn)
	region.End()

	if irfn == nil {
		return nil, nil
	}

	defer trace.StartRegion(ctx, "Check").End()

	return check.Analyze(irfn, check.Options{
		Enabled: r.Behavior.Enabled(config.StaticEnforcement),
		IsSwap:  r.isSwap,
		Env:     env,
		Logger:  logger,
	})
}

// fileVersion returns the Go version of file, falling back to the package version.
func fileVersion(p *analysis.Pass, file *ast.File) string {
	if v, ok := p.TypesInfo.FileVersions[file]; ok && v != "" {
		return v
	}

	return p.Pkg.GoVersion()
}

// convert translates a diagnostic for the analysis framework.
func convert(d report.Diagnostic) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: d.Severity.String(),
		Message:  d.Message(),
	}

	for _, n := range d.Notes {
		diagnostic.Related = append(diagnostic.Related, analysis.RelatedInformation{
			Pos:     n.Pos,
			End:     n.End,
			Message: n.Message(),
		})
	}

	if fix := d.Fix; fix != nil {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   fix.Message,
			TextEdits: []analysis.TextEdit{{Pos: fix.Pos, End: fix.End, NewText: []byte(fix.NewText)}},
		}}
	}

	return diagnostic
}
