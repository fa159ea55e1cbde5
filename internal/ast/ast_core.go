package ast

import (
	"github.com/funvibe/funxy/internal/token"
)

// Node is the base interface for all AST nodes. There is no Visitor /
// Accept indirection here: the checkers that walk statements do it with a
// Go type switch, per the tagged-sum design this AST follows instead of
// virtual dispatch.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a member of the statement sum type: block, if, while, for,
// switch, break, continue, pass, return, or expression-statement.
type Statement interface {
	Node
	statementNode()
	Info() *TerminationInfo
}

// Expression is a minimal marker for the handful of places a statement
// holds an expression (an if's condition, a return's value). Expression
// analysis is out of scope; the termination checker never inspects a
// condition's shape, only whether a branch exists.
type Expression interface {
	Node
	expressionNode()
}

// TerminationInfo is the (reachable, terminates, passes) triple the
// termination checker attaches to every statement and declaration it
// visits. Zero value until that checker runs.
type TerminationInfo struct {
	Reachable  bool
	Terminates bool
	Passes     bool
}

func (ti *TerminationInfo) Info() *TerminationInfo { return ti }

// Validity is a type declaration's validation state.
type Validity int

const (
	Unknown Validity = iota
	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "Valid"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Visibility marks a declaration public or private.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// Category distinguishes the four type-instance shapes the resolver
// handles.
type Category int

const (
	CategoryUser Category = iota
	CategoryTuple
	CategoryList
	CategoryMap
)

func (c Category) String() string {
	switch c {
	case CategoryTuple:
		return "Tuple"
	case CategoryList:
		return "List"
	case CategoryMap:
		return "Map"
	default:
		return "User"
	}
}

// ConstructorKey identifies a constructor, or an overloadable type, by
// name and arity, per the spec's (name, arity) keying rule.
type ConstructorKey struct {
	Name  string
	Arity int
}

// genericExpression is a placeholder Expression used where a condition or
// a return value's shape does not matter to this package's checkers (they
// only ever ask "does this branch have a value/condition", never what it
// evaluates to).
type genericExpression struct {
	Token token.Token
}

func (e *genericExpression) expressionNode()       {}
func (e *genericExpression) TokenLiteral() string  { return e.Token.Lexeme }
func (e *genericExpression) GetToken() token.Token { return e.Token }

// NewExpression builds a placeholder Expression carrying tok, for callers
// (typically tests) that need *some* Expression value without caring
// about its internal shape.
func NewExpression(tok token.Token) Expression {
	return &genericExpression{Token: tok}
}
