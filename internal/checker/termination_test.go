package checker

import (
	"testing"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.Token{Type: kind, Lexeme: lexeme}
}

func block(decls ...*ast.Declaration) *ast.BlockStatement {
	return &ast.BlockStatement{Token: tok(token.LBRACE, "{"), Declarations: decls}
}

func stmt(s ast.Statement) *ast.Declaration { return ast.NewStatementDecl(s) }

func returnStmt() *ast.Declaration {
	return stmt(&ast.ReturnStatement{Token: tok(token.RETURN, "return")})
}

func passStmt() *ast.Declaration {
	return stmt(&ast.PassStatement{Token: tok(token.PASS, "pass")})
}

func fn(name string, returnsVoid bool, body *ast.BlockStatement) *ast.FunctionDecl {
	var rt *ast.TypeInstance
	if !returnsVoid {
		rt = ast.NewTypeInstance(tok(token.IDENT_UPPER, "Int"), ast.CategoryUser, config.StarNamespace, nil)
	}
	return &ast.FunctionDecl{Token: tok(token.FUN, name), Name: name, ReturnType: rt, Body: body, Namespace: "ns"}
}

// Scenario: "Reject a non-terminating non-void function" — a function
// declared to return a value whose body falls off the end without a
// return on every path.
func TestCheckTerminationRejectsNonTerminatingNonVoidFunction(t *testing.T) {
	body := block(passStmt())
	fd := fn("f", false, body)

	err := CheckTermination(fd, config.VoidTypeName)
	if err == nil || err.Code != diagnostics.ErrInvalidFunction {
		t.Fatalf("expected InvalidFunction, got %v", err)
	}
}

// Scenario: "Accept an if/else that terminates on both paths".
func TestCheckTerminationAcceptsIfElseTerminatingOnBothPaths(t *testing.T) {
	is := &ast.IfStatement{
		Token:       tok(token.IF, "if"),
		Consequence: block(returnStmt()),
		Else:        &ast.ElseBranch{Token: tok(token.ELSE, "else"), Body: block(returnStmt())},
	}
	fd := fn("f", false, block(stmt(is)))

	if err := CheckTermination(fd, config.VoidTypeName); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckTerminationRejectsIfWithNoElse(t *testing.T) {
	is := &ast.IfStatement{
		Token:       tok(token.IF, "if"),
		Consequence: block(returnStmt()),
	}
	fd := fn("f", false, block(stmt(is)))

	err := CheckTermination(fd, config.VoidTypeName)
	if err == nil || err.Code != diagnostics.ErrInvalidFunction {
		t.Fatalf("expected InvalidFunction for an if missing an else, got %v", err)
	}
}

// Termination is folded across every branch: one non-terminating elif
// makes the whole if non-terminating, even when the consequence, an
// earlier elif, and the else all return.
func TestCheckTerminationIfFoldsAcrossAllElifs(t *testing.T) {
	is := &ast.IfStatement{
		Token:       tok(token.IF, "if"),
		Consequence: block(returnStmt()),
		Elifs: []*ast.ElifBranch{
			{Token: tok(token.ELIF, "elif"), Body: block(returnStmt())},
			{Token: tok(token.ELIF, "elif"), Body: block(passStmt())},
		},
		Else: &ast.ElseBranch{Token: tok(token.ELSE, "else"), Body: block(returnStmt())},
	}
	fd := fn("f", false, block(stmt(is)))

	err := CheckTermination(fd, config.VoidTypeName)
	if err == nil || err.Code != diagnostics.ErrInvalidFunction {
		t.Fatalf("expected InvalidFunction: the second elif does not terminate, got %v", err)
	}
}

// A switch with a default and every case terminating is accepted.
func TestCheckTerminationAcceptsSwitchWithTerminatingDefault(t *testing.T) {
	ss := &ast.SwitchStatement{
		Token:   tok(token.SWITCH, "switch"),
		Subject: nil,
		Cases: []*ast.CaseClause{
			{Token: tok(token.CASE, "case"), Body: block(returnStmt())},
		},
		Default: &ast.CaseClause{Token: tok(token.DEFAULT, "default"), Body: block(returnStmt())},
	}
	fd := fn("f", false, block(stmt(ss)))

	if err := CheckTermination(fd, config.VoidTypeName); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckTerminationRejectsSwitchWithNoDefault(t *testing.T) {
	ss := &ast.SwitchStatement{
		Token: tok(token.SWITCH, "switch"),
		Cases: []*ast.CaseClause{
			{Token: tok(token.CASE, "case"), Body: block(returnStmt())},
		},
	}
	fd := fn("f", false, block(stmt(ss)))

	err := CheckTermination(fd, config.VoidTypeName)
	if err == nil || err.Code != diagnostics.ErrInvalidFunction {
		t.Fatalf("expected InvalidFunction for a switch missing a default, got %v", err)
	}
}

// A fall-through (empty) case body is skipped, not treated as vacuously
// terminating nor as forcing non-termination on its own account.
func TestCheckTerminationSwitchSkipsFallthroughCase(t *testing.T) {
	ss := &ast.SwitchStatement{
		Token: tok(token.SWITCH, "switch"),
		Cases: []*ast.CaseClause{
			{Token: tok(token.CASE, "case"), Body: nil}, // fall-through
			{Token: tok(token.CASE, "case"), Body: block(returnStmt())},
		},
		Default: &ast.CaseClause{Token: tok(token.DEFAULT, "default"), Body: block(returnStmt())},
	}
	fd := fn("f", false, block(stmt(ss)))

	if err := CheckTermination(fd, config.VoidTypeName); err != nil {
		t.Fatalf("unexpected error: a fall-through case should not block acceptance: %v", err)
	}
}

// A void function's body may fall off the end without a return.
func TestCheckTerminationAcceptsEmptyVoidFunctionBody(t *testing.T) {
	fd := fn("f", true, block())

	if err := CheckTermination(fd, config.VoidTypeName); err != nil {
		t.Fatalf("unexpected error for a void function with an empty body: %v", err)
	}
}

// A switch containing only a default case, itself terminating, is
// accepted — the single-case boundary of the "must have a default" rule.
func TestCheckTerminationAcceptsSwitchWithOnlyDefault(t *testing.T) {
	ss := &ast.SwitchStatement{
		Token:   tok(token.SWITCH, "switch"),
		Default: &ast.CaseClause{Token: tok(token.DEFAULT, "default"), Body: block(returnStmt())},
	}
	fd := fn("f", false, block(stmt(ss)))

	if err := CheckTermination(fd, config.VoidTypeName); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// CheckTermination's contract only cares about whether the body terminates
// overall — block termination is the OR across declarations, so code
// placed after an unconditional return does not invalidate an otherwise
// terminating function.
func TestCheckTerminationToleratesCodeAfterReturn(t *testing.T) {
	fd := fn("f", false, block(returnStmt(), passStmt()))

	if err := CheckTermination(fd, config.VoidTypeName); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
