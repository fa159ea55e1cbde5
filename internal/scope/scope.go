// Package scope implements the lexically-nested scopes that wrap the
// declaration and constructor symbol tables. Scopes do not walk their own
// parent chain; parent-walking is the checker's job when it searches a
// holder namespace and then falls back to the global one.
package scope

import (
	"github.com/google/uuid"

	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/symbols"
)

// Scope owns one declaration table and one constructor table, plus a weak
// (index-based) reference to its enclosing scope and the source-line
// range it covers. Line ranges exist only for diagnostic attribution.
type Scope struct {
	ID        uuid.UUID
	Arena     *arena.Arena
	Decls     *symbols.DeclTable
	Cons      *symbols.ConsTable
	Parent    arena.ScopeID
	StartLine int
	EndLine   int
}

// New creates a root scope (no parent) spanning [startLine, endLine],
// backed by ar for type-declaration and parent-scope handles.
func New(ar *arena.Arena, startLine, endLine int) *Scope {
	return &Scope{
		ID:        uuid.New(),
		Arena:     ar,
		Decls:     symbols.NewDeclTable(ar),
		Cons:      symbols.NewConsTable(),
		Parent:    arena.NoScope,
		StartLine: startLine,
		EndLine:   endLine,
	}
}

// NewEnclosed creates a scope nested under parent.
func NewEnclosed(ar *arena.Arena, parent arena.ScopeID, startLine, endLine int) *Scope {
	s := New(ar, startLine, endLine)
	s.Parent = parent
	return s
}

// AddType inserts td into ns, then inserts each of its default and record
// constructors (and, when populated, its list/map constructor) under the
// same namespace — the add_type cascade described in §4.2.
//
// The driver does not use this cascade for a type under active validation.
// A constructor that refers to its own owner by name has to fail ordinary
// resolution and fall through to the self-reference accommodation (weak
// variant only) — which only happens while the owner is absent from Decls.
// So the driver allocates the owner's arena handle directly, runs the
// constructor checker against it without ever registering it, and only
// calls Decls.InsertTypeWithID once the type's validity is settled, win or
// lose. AddType remains the single-step convenience path for a type whose
// constructors are already known valid, or known not to reference it —
// tests, and types with no constructors to check.
func (s *Scope) AddType(ns string, td *ast.TypeDecl) *diagnostics.DiagnosticError {
	if err := s.Decls.InsertType(ns, td); err != nil {
		return err
	}
	for _, dc := range td.DefaultConstructors {
		if err := s.Cons.InsertDefault(ns, dc); err != nil {
			return err
		}
	}
	for _, rc := range td.RecordConstructors {
		if err := s.Cons.InsertRecord(ns, rc); err != nil {
			return err
		}
	}
	if td.ListCons != nil {
		if err := s.Cons.InsertList(ns, td.Name, td.ListCons); err != nil {
			return err
		}
	}
	if td.MapCons != nil {
		if err := s.Cons.InsertMap(ns, td.Name, td.MapCons); err != nil {
			return err
		}
	}
	return nil
}

// collides reports whether name is already bound to some declaration kind
// in ns — used by add_default_constructor (and siblings) to verify a
// constructor name does not collide with a namespace-level name.
func (s *Scope) collides(ns, name string) (symbols.DeclKind, bool) {
	return s.Decls.KindOf(ns, name)
}

// AddDefaultConstructor verifies c.Name does not collide with any known
// namespace name, function, or variable before inserting.
func (s *Scope) AddDefaultConstructor(ns string, c *ast.DefaultConstructor) *diagnostics.DiagnosticError {
	if kind, exists := s.collides(ns, c.Name); exists {
		return diagnostics.NewError(diagnostics.ErrSymbolCanCollide, c.Token,
			"constructor name %q collides with an existing %s in namespace %q", c.Name, kind, ns)
	}
	return s.Cons.InsertDefault(ns, c)
}

// AddRecordConstructor mirrors AddDefaultConstructor for record
// constructors.
func (s *Scope) AddRecordConstructor(ns string, c *ast.RecordConstructor) *diagnostics.DiagnosticError {
	if kind, exists := s.collides(ns, c.Name); exists {
		return diagnostics.NewError(diagnostics.ErrSymbolCanCollide, c.Token,
			"constructor name %q collides with an existing %s in namespace %q", c.Name, kind, ns)
	}
	return s.Cons.InsertRecord(ns, c)
}

// AddFunction inserts fd into ns.
func (s *Scope) AddFunction(ns string, fd *ast.FunctionDecl) *diagnostics.DiagnosticError {
	return s.Decls.InsertFunction(ns, fd)
}

// AddVariable inserts vd into ns.
func (s *Scope) AddVariable(ns string, vd *ast.VariableDeclaration) *diagnostics.DiagnosticError {
	return s.Decls.InsertVariable(ns, vd)
}

// Lookup resolves id against ar, the arena that owns every Scope in one
// compilation unit. Returns nil for arena.NoScope or a stale/out-of-range
// handle.
func Lookup(ar *arena.Arena, id arena.ScopeID) *Scope {
	if id == arena.NoScope {
		return nil
	}
	v := ar.Scope(id)
	if v == nil {
		return nil
	}
	s, _ := v.(*Scope)
	return s
}

// Parents returns the chain of scopes from s.Parent up to (and including)
// the root, stopping at arena.NoScope.
func Parents(ar *arena.Arena, s *Scope) []*Scope {
	var chain []*Scope
	cur := s.Parent
	for cur != arena.NoScope {
		p := Lookup(ar, cur)
		if p == nil {
			break
		}
		chain = append(chain, p)
		cur = p.Parent
	}
	return chain
}
