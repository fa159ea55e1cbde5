// Package symbols implements the declaration and constructor symbol
// tables: per-namespace dictionaries keyed by (name, arity) for types and
// constructors, by name alone for functions and variables.
package symbols

import (
	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

// DeclKind distinguishes which kind of declaration owns a name in a
// namespace, used only to detect cross-kind name clashes.
type DeclKind int

const (
	KindType DeclKind = iota
	KindFunction
	KindVariable
)

func (k DeclKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindFunction:
		return "function"
	default:
		return "variable"
	}
}

// namespaceBundle is one namespace's local slice of the declaration table.
type namespaceBundle struct {
	types     map[ast.ConstructorKey]*ast.TypeDecl
	typeIDs   map[ast.ConstructorKey]arena.TypeDeclID
	functions map[string]*ast.FunctionDecl
	variables map[string]*ast.VariableDeclaration
	kindOf    map[string]DeclKind
}

func newBundle() *namespaceBundle {
	return &namespaceBundle{
		types:     make(map[ast.ConstructorKey]*ast.TypeDecl),
		typeIDs:   make(map[ast.ConstructorKey]arena.TypeDeclID),
		functions: make(map[string]*ast.FunctionDecl),
		variables: make(map[string]*ast.VariableDeclaration),
		kindOf:    make(map[string]DeclKind),
	}
}

// DeclTable is a declaration symbol table: one namespaceBundle per
// namespace name. It holds the arena that owns every TypeDecl it accepts,
// so a successful lookup can hand back the stable arena.TypeDeclID a
// TypeInstance's Resolved field points at.
type DeclTable struct {
	namespaces map[string]*namespaceBundle
	arena      *arena.Arena
}

// NewDeclTable returns an empty declaration table backed by ar.
func NewDeclTable(ar *arena.Arena) *DeclTable {
	return &DeclTable{namespaces: make(map[string]*namespaceBundle), arena: ar}
}

func (t *DeclTable) bundle(ns string) *namespaceBundle {
	b, ok := t.namespaces[ns]
	if !ok {
		b = newBundle()
		t.namespaces[ns] = b
	}
	return b
}

// InsertType inserts td under ns keyed by (name, arity), allocating a fresh
// arena handle for it. Fails with SymbolAlreadyDeclared if that key already
// exists, or SymbolCanCollide if the bare name is already bound to a
// different declaration kind.
func (t *DeclTable) InsertType(ns string, td *ast.TypeDecl) *diagnostics.DiagnosticError {
	return t.InsertTypeWithID(ns, td, t.arena.PutTypeDecl(td))
}

// InsertTypeWithID mirrors InsertType but attaches an arena handle the
// caller already allocated, rather than allocating a new one. The type
// checker needs this: while T's own constructors are being validated, T
// must not yet be visible to DeclTable.GetType (a constructor that
// references T by name has to fail ordinary resolution and fall through
// to the self-reference accommodation) even though T already needs a
// stable arena handle to attach to that self-referencing parameter. The
// driver allocates T's handle up front, runs the constructor checker
// against it directly (never through this table), and only calls
// InsertTypeWithID once T's validity is settled — win or lose.
func (t *DeclTable) InsertTypeWithID(ns string, td *ast.TypeDecl, id arena.TypeDeclID) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	key := td.Key()
	if _, exists := b.types[key]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, td.Token,
			"type %q with arity %d is already declared in namespace %q", td.Name, key.Arity, ns)
	}
	if kind, exists := b.kindOf[td.Name]; exists && kind != KindType {
		return diagnostics.NewError(diagnostics.ErrSymbolCanCollide, td.Token,
			"name %q is already declared as a %s in namespace %q", td.Name, kind, ns)
	}
	b.types[key] = td
	b.typeIDs[key] = id
	b.kindOf[td.Name] = KindType
	return nil
}

// GetType looks up a type by (name, arity) in ns only, returning its
// stable arena handle alongside the declaration itself.
func (t *DeclTable) GetType(ns, name string, arity int) (*ast.TypeDecl, arena.TypeDeclID, *diagnostics.DiagnosticError) {
	b, ok := t.namespaces[ns]
	if !ok {
		return nil, arena.NoTypeDecl, diagnostics.NewError(diagnostics.ErrSymbolNotFound, token.Token{}, "namespace %q not found", ns)
	}
	key := ast.ConstructorKey{Name: name, Arity: arity}
	td, ok := b.types[key]
	if !ok {
		return nil, arena.NoTypeDecl, diagnostics.NewError(diagnostics.ErrSymbolNotFound, token.Token{},
			"type %q with arity %d not found in namespace %q", name, arity, ns)
	}
	return td, b.typeIDs[key], nil
}

// TypeExists is the total form of GetType for a single namespace.
func (t *DeclTable) TypeExists(ns, name string, arity int) bool {
	b, ok := t.namespaces[ns]
	if !ok {
		return false
	}
	_, ok = b.types[ast.ConstructorKey{Name: name, Arity: arity}]
	return ok
}

// TypeExistsAnywhere is the tolerant form: it searches every namespace in
// the table, used to detect formal-parameter shadowing (spec §4.1/§4.4.2).
func (t *DeclTable) TypeExistsAnywhere(name string) bool {
	for _, b := range t.namespaces {
		for key := range b.types {
			if key.Name == name {
				return true
			}
		}
	}
	return false
}

// InsertFunction inserts fd under ns keyed by name.
func (t *DeclTable) InsertFunction(ns string, fd *ast.FunctionDecl) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	if _, exists := b.functions[fd.Name]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, fd.Token,
			"function %q is already declared in namespace %q", fd.Name, ns)
	}
	if kind, exists := b.kindOf[fd.Name]; exists && kind != KindFunction {
		return diagnostics.NewError(diagnostics.ErrSymbolCanCollide, fd.Token,
			"name %q is already declared as a %s in namespace %q", fd.Name, kind, ns)
	}
	b.functions[fd.Name] = fd
	b.kindOf[fd.Name] = KindFunction
	return nil
}

// GetFunction looks up a function by name in ns only.
func (t *DeclTable) GetFunction(ns, name string) (*ast.FunctionDecl, *diagnostics.DiagnosticError) {
	b, ok := t.namespaces[ns]
	if !ok {
		return nil, diagnostics.NewError(diagnostics.ErrSymbolNotFound, token.Token{}, "namespace %q not found", ns)
	}
	fd, ok := b.functions[name]
	if !ok {
		return nil, diagnostics.NewError(diagnostics.ErrSymbolNotFound, token.Token{},
			"function %q not found in namespace %q", name, ns)
	}
	return fd, nil
}

func (t *DeclTable) FunctionExists(ns, name string) bool {
	b, ok := t.namespaces[ns]
	if !ok {
		return false
	}
	_, ok = b.functions[name]
	return ok
}

// InsertVariable inserts vd under ns keyed by name.
func (t *DeclTable) InsertVariable(ns string, vd *ast.VariableDeclaration) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	name := vd.Name.Lexeme
	if _, exists := b.variables[name]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, vd.Token,
			"variable %q is already declared in namespace %q", name, ns)
	}
	if kind, exists := b.kindOf[name]; exists && kind != KindVariable {
		return diagnostics.NewError(diagnostics.ErrSymbolCanCollide, vd.Token,
			"name %q is already declared as a %s in namespace %q", name, kind, ns)
	}
	b.variables[name] = vd
	b.kindOf[name] = KindVariable
	return nil
}

func (t *DeclTable) VariableExists(ns, name string) bool {
	b, ok := t.namespaces[ns]
	if !ok {
		return false
	}
	_, ok = b.variables[name]
	return ok
}

// KindOf reports which declaration kind owns name in ns, if any.
func (t *DeclTable) KindOf(ns, name string) (DeclKind, bool) {
	b, ok := t.namespaces[ns]
	if !ok {
		return 0, false
	}
	k, ok := b.kindOf[name]
	return k, ok
}
