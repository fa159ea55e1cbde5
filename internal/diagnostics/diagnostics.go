// Package diagnostics holds the structured error taxonomy raised by the
// symbol tables, scopes, resolver, and declaration checkers.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/funxy/internal/token"
)

// ErrorCode names one category of the error taxonomy.
type ErrorCode string

const (
	ErrSymbolAlreadyDeclared ErrorCode = "SymbolAlreadyDeclared"
	ErrSymbolCanCollide      ErrorCode = "SymbolCanCollide"
	ErrSymbolNotFound        ErrorCode = "SymbolNotFound"
	ErrInvalidSymbol         ErrorCode = "InvalidSymbol"
	ErrInvalidType           ErrorCode = "InvalidType"
	ErrInvalidConstructor    ErrorCode = "InvalidConstructor"
	ErrInvalidFunction       ErrorCode = "InvalidFunction"
	ErrBranchError           ErrorCode = "BranchError"
	ErrCaseError             ErrorCode = "CaseError"
	ErrTypeError             ErrorCode = "TypeError"
)

// DiagnosticError is the single concrete error type raised anywhere in the
// semantic core. Wrapped realizes the propagation-and-rewrap policy: a
// resolver failure can be rewrapped as InvalidConstructor, then again as
// InvalidType, without losing the original cause.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	Wrapped *DiagnosticError
}

func (e *DiagnosticError) Error() string {
	if e == nil {
		return ""
	}
	if e.Token.Lexeme != "" {
		return fmt.Sprintf("%s: %s (at %q, line %d)", e.Code, e.Message, e.Token.Lexeme, e.Token.Line)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap allows errors.Is/errors.As to walk the wrap chain.
func (e *DiagnosticError) Unwrap() error {
	if e == nil || e.Wrapped == nil {
		return nil
	}
	return e.Wrapped
}

// NewError constructs a DiagnosticError with a formatted message.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap produces a new DiagnosticError under code that carries cause as its
// wrapped predecessor, for the propagate-and-rewrap error policy.
func Wrap(code ErrorCode, tok token.Token, cause *DiagnosticError, format string, args ...interface{}) *DiagnosticError {
	e := NewError(code, tok, format, args...)
	e.Wrapped = cause
	return e
}
