// Package program holds the containers a parser would hand the driver: a
// compilation unit's imports and namespaces, and the declarations each
// namespace carries before any checker has run.
package program

import (
	"github.com/funvibe/funxy/internal/ast"
)

// Namespace is one namespace's declarations as the parser produced them,
// not yet installed into any scope's symbol tables.
type Namespace struct {
	Name      string
	Types     []*ast.TypeDecl
	Functions []*ast.FunctionDecl
	Variables []*ast.VariableDeclaration
}

// Import is a single import declaration: the importing namespace pulling
// in another namespace's public declarations. Import resolution itself
// (detecting and ordering the dependency graph) is an external
// orchestrator's job per §5 — the driver only consumes an already-ordered
// Unit.Namespaces slice.
type Import struct {
	Namespace string
	Target    string
}

// Unit is a single compilation unit: one source file's imports and
// namespaces, in the order the driver should process them.
type Unit struct {
	File       string
	Imports    []Import
	Namespaces []*Namespace
}
