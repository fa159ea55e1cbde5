package checker

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
)

// CheckTermination walks fd's body computing (reachable, terminates,
// passes) for every declaration, then enforces the function contract: a
// non-void function must terminate on every path.
func CheckTermination(fd *ast.FunctionDecl, voidName string) *diagnostics.DiagnosticError {
	checkBlock(fd.Body, true)
	if !blockTerminates(fd.Body) && !fd.IsVoid(voidName) {
		return diagnostics.NewError(diagnostics.ErrInvalidFunction, fd.Token,
			"function %q has a non-void return type but does not terminate on every path", fd.Name)
	}
	return nil
}

// reachableAfter implements reachable(prev) = true when prev is nil, or
// prev.reachable ∧ prev.passes ∧ ¬prev.terminates.
func reachableAfter(prev *ast.TerminationInfo) bool {
	if prev == nil {
		return true
	}
	return prev.Reachable && prev.Passes && !prev.Terminates
}

// blockTerminates is the logical-OR of terminates across a block's
// declarations, per §4.4.3's "block termination" rule.
func blockTerminates(b *ast.BlockStatement) bool {
	for _, d := range b.Declarations {
		if d.Info().Terminates {
			return true
		}
	}
	return false
}

// checkBlock visits every declaration of b in source order, attaching its
// termination triple. entryReachable is the reachability of the block's
// own entry point (true for a function body, or the enclosing branch's own
// reachability for a nested block).
func checkBlock(b *ast.BlockStatement, entryReachable bool) {
	var prev *ast.TerminationInfo
	for i, decl := range b.Declarations {
		reachable := entryReachable
		if i > 0 {
			reachable = reachableAfter(prev)
		}
		checkDeclaration(decl, reachable)
		prev = decl.Info()
	}
}

func checkDeclaration(d *ast.Declaration, reachable bool) {
	info := d.Info()
	if d.Kind == ast.DeclVariable {
		info.Reachable = reachable
		info.Terminates = false
		info.Passes = true
		return
	}
	checkStatement(d.Stmt, reachable)
	stmtInfo := d.Stmt.Info()
	info.Reachable = stmtInfo.Reachable
	info.Terminates = stmtInfo.Terminates
	info.Passes = stmtInfo.Passes
}

// checkStatement dispatches on the statement's concrete type via a Go type
// switch — the tagged-sum stand-in for the source's is_if()/is_while()
// virtual predicates — and fills in its TerminationInfo.
func checkStatement(s ast.Statement, reachable bool) {
	info := s.Info()
	info.Reachable = reachable

	switch stmt := s.(type) {
	case *ast.BlockStatement:
		checkBlock(stmt, reachable)
		info.Terminates = blockTerminates(stmt)
		info.Passes = true

	case *ast.ExpressionStatement:
		info.Terminates = false
		info.Passes = true

	case *ast.PassStatement:
		info.Reachable = true
		info.Terminates = false
		info.Passes = true

	case *ast.BreakStatement:
		info.Terminates = false
		info.Passes = false

	case *ast.ContinueStatement:
		info.Terminates = false
		info.Passes = false

	case *ast.ReturnStatement:
		info.Terminates = info.Reachable
		info.Passes = false

	case *ast.WhileStatement:
		checkBlock(stmt.Body, reachable)
		info.Terminates = blockTerminates(stmt.Body)
		info.Passes = true

	case *ast.ForStatement:
		checkBlock(stmt.Body, reachable)
		terminates := blockTerminates(stmt.Body)
		if stmt.Empty != nil {
			checkBlock(stmt.Empty, reachable)
			terminates = terminates && blockTerminates(stmt.Empty)
		}
		info.Terminates = terminates
		info.Passes = true

	case *ast.IfStatement:
		checkIf(stmt, reachable)
		info.Terminates = stmt.Info().Terminates
		info.Passes = true

	case *ast.SwitchStatement:
		checkSwitch(stmt, reachable)
		info.Terminates = stmt.Info().Terminates
		info.Passes = true

	default:
		info.Terminates = false
		info.Passes = true
	}
}

// checkIf AND-folds termination across the consequence, every elif branch,
// and the else branch (if present) — an if/elif chain terminates only when
// every non-empty branch terminates *and* an else exists. The source's
// analyze_if overwrites terminates with each elif's result in turn, so a
// later terminating elif hides an earlier non-terminating branch; this
// folds across all of them instead, so any non-terminating branch makes
// the whole if non-terminating.
func checkIf(is *ast.IfStatement, reachable bool) {
	checkBlock(is.Consequence, reachable)
	terminates := blockTerminates(is.Consequence)

	for _, elif := range is.Elifs {
		checkBlock(elif.Body, reachable)
		terminates = terminates && blockTerminates(elif.Body)
	}

	if is.Else == nil {
		is.Info().Terminates = false
		return
	}
	checkBlock(is.Else.Body, reachable)
	terminates = terminates && blockTerminates(is.Else.Body)
	is.Info().Terminates = terminates
}

// checkSwitch AND-folds termination across every non-fallthrough case and
// the default clause, which must be present. A fall-through (empty) case
// body is skipped when folding — it neither contributes a termination
// result nor forces the switch to be treated as non-terminating on its
// own account; it simply defers to whichever case it falls into, which
// this pass does not model explicitly (matching §4.4.3's note that
// break/continue/fall-through loop semantics are out of scope here).
func checkSwitch(ss *ast.SwitchStatement, reachable bool) {
	terminates := true
	for _, c := range ss.Cases {
		if c.IsFallthrough() {
			continue
		}
		checkBlock(c.Body, reachable)
		terminates = terminates && blockTerminates(c.Body)
	}

	if ss.Default == nil {
		ss.Info().Terminates = false
		return
	}
	if !ss.Default.IsFallthrough() {
		checkBlock(ss.Default.Body, reachable)
		terminates = terminates && blockTerminates(ss.Default.Body)
	}
	ss.Info().Terminates = terminates
}
