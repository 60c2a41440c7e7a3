// Staticlint multichecker for the keypairgen sources.
//
// Usage:
//
//	go run ./cmd/staticlint ./...
//
// It runs the go vet passes, staticcheck SA analyzers, a selection of
// simple/stylecheck/quickfix checks, errcheck, ineffassign and osexitcheck.
package main

import (
	"go/ast"
	"strings"

	"github.com/gordonklaus/ineffassign/pkg/ineffassign"
	"github.com/kisielk/errcheck/errcheck"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/asmdecl"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/atomicalign"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/cgocall"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/ctrlflow"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/directive"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/framepointer"
	"golang.org/x/tools/go/analysis/passes/httpmux"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/reflectvaluecompare"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/slog"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stdversion"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/testinggoroutine"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unsafeptr"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/unusedwrite"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

var vetAnalyzers = []*analysis.Analyzer{
	appends.Analyzer,
	asmdecl.Analyzer,
	assign.Analyzer,
	atomic.Analyzer,
	atomicalign.Analyzer,
	bools.Analyzer,
	buildssa.Analyzer,
	buildtag.Analyzer,
	cgocall.Analyzer,
	composite.Analyzer,
	copylock.Analyzer,
	ctrlflow.Analyzer,
	deepequalerrors.Analyzer,
	defers.Analyzer,
	directive.Analyzer,
	errorsas.Analyzer,
	framepointer.Analyzer,
	httpmux.Analyzer,
	httpresponse.Analyzer,
	ifaceassert.Analyzer,
	inspect.Analyzer,
	loopclosure.Analyzer,
	lostcancel.Analyzer,
	nilfunc.Analyzer,
	nilness.Analyzer,
	printf.Analyzer,
	reflectvaluecompare.Analyzer,
	shadow.Analyzer,
	shift.Analyzer,
	sigchanyzer.Analyzer,
	slog.Analyzer,
	sortslice.Analyzer,
	stdmethods.Analyzer,
	stdversion.Analyzer,
	stringintconv.Analyzer,
	structtag.Analyzer,
	testinggoroutine.Analyzer,
	tests.Analyzer,
	timeformat.Analyzer,
	unmarshal.Analyzer,
	unreachable.Analyzer,
	unsafeptr.Analyzer,
	unusedresult.Analyzer,
	unusedwrite.Analyzer,
}

// Prefix of staticcheck analyzers that are all enabled.
const saStaticCheckPrefix = "SA"

// Selected analyzers of the other honnef.co groups.
var customNamesHonnefAnalyzers = map[string]bool{
	"S1000":  true,
	"S1001":  true,
	"S1005":  true,
	"S1011":  true,
	"S1012":  true,
	"ST1003": true,
	"ST1005": true,
	"QF1002": true,
	"QF1003": true,
	"QF1004": true,
	"QF1012": true,
}

// osExitAstAnalyze reports direct os.Exit calls in main.main.
var osExitAstAnalyze = &analysis.Analyzer{
	Name: "osexitcheck",
	Doc:  "check for direct os.Exit call in main function of main package",
	Run:  osExitChecker,
}

func osExitChecker(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok || sel.Sel.Name != "Exit" {
					return true
				}
				if id, ok := sel.X.(*ast.Ident); ok && id.Name == "os" {
					pass.Reportf(call.Pos(), "direct os.Exit found in main/main")
				}
				return true
			})
		}
	}
	return nil, nil
}

func getStaticCheckAnalyzers(prefix string) []*analysis.Analyzer {
	var res []*analysis.Analyzer
	for _, v := range staticcheck.Analyzers {
		if strings.HasPrefix(v.Analyzer.Name, prefix) {
			res = append(res, v.Analyzer)
		}
	}
	return res
}

func getCustomHonnefAnalyzers(analyzers []*lint.Analyzer, names map[string]bool) []*analysis.Analyzer {
	var res []*analysis.Analyzer
	for _, v := range analyzers {
		if names[v.Analyzer.Name] {
			res = append(res, v.Analyzer)
		}
	}
	return res
}

func allAnalyzers() []*analysis.Analyzer {
	var honnef []*lint.Analyzer
	honnef = append(honnef, simple.Analyzers...)
	honnef = append(honnef, stylecheck.Analyzers...)
	honnef = append(honnef, quickfix.Analyzers...)

	var res []*analysis.Analyzer
	res = append(res, vetAnalyzers...)
	res = append(res, getStaticCheckAnalyzers(saStaticCheckPrefix)...)
	res = append(res, getCustomHonnefAnalyzers(honnef, customNamesHonnefAnalyzers)...)
	res = append(res, errcheck.Analyzer, ineffassign.Analyzer, osExitAstAnalyze)
	return res
}

func main() {
	multichecker.Main(allAnalyzers()...)
}
