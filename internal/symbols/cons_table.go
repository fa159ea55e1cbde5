package symbols

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
)

// consBundle is one namespace's constructors, mirroring namespaceBundle
// for the four constructor flavors the weak-check variant supports.
type consBundle struct {
	defaults map[ast.ConstructorKey]*ast.DefaultConstructor
	records  map[ast.ConstructorKey]*ast.RecordConstructor
	lists    map[string]*ast.ListConstructor // keyed by owning type name; weak variant only
	maps     map[string]*ast.MapConstructor  // keyed by owning type name; weak variant only
}

func newConsBundle() *consBundle {
	return &consBundle{
		defaults: make(map[ast.ConstructorKey]*ast.DefaultConstructor),
		records:  make(map[ast.ConstructorKey]*ast.RecordConstructor),
		lists:    make(map[string]*ast.ListConstructor),
		maps:     make(map[string]*ast.MapConstructor),
	}
}

// ConsTable is the constructor symbol table: one consBundle per namespace.
type ConsTable struct {
	namespaces map[string]*consBundle
}

func NewConsTable() *ConsTable {
	return &ConsTable{namespaces: make(map[string]*consBundle)}
}

func (t *ConsTable) bundle(ns string) *consBundle {
	b, ok := t.namespaces[ns]
	if !ok {
		b = newConsBundle()
		t.namespaces[ns] = b
	}
	return b
}

// InsertDefault inserts dc keyed by (name, arity), failing with
// SymbolAlreadyDeclared on collision (spec P5 — constructor uniqueness).
func (t *ConsTable) InsertDefault(ns string, dc *ast.DefaultConstructor) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	key := dc.Key()
	if _, exists := b.defaults[key]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, dc.Token,
			"default constructor %q with arity %d already declared in namespace %q (check for a colliding import)", dc.Name, key.Arity, ns)
	}
	b.defaults[key] = dc
	return nil
}

func (t *ConsTable) DefaultExists(ns string, key ast.ConstructorKey) bool {
	b, ok := t.namespaces[ns]
	if !ok {
		return false
	}
	_, ok = b.defaults[key]
	return ok
}

// InsertRecord inserts rc keyed by (name, field count).
func (t *ConsTable) InsertRecord(ns string, rc *ast.RecordConstructor) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	key := rc.Key()
	if _, exists := b.records[key]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, rc.Token,
			"record constructor %q with arity %d already declared in namespace %q (check for a colliding import)", rc.Name, key.Arity, ns)
	}
	b.records[key] = rc
	return nil
}

func (t *ConsTable) RecordExists(ns string, key ast.ConstructorKey) bool {
	b, ok := t.namespaces[ns]
	if !ok {
		return false
	}
	_, ok = b.records[key]
	return ok
}

// InsertList installs the single List constructor for the owning type
// name. Weak variant only.
func (t *ConsTable) InsertList(ns, ownerName string, lc *ast.ListConstructor) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	if _, exists := b.lists[ownerName]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, lc.Token,
			"list constructor for %q already declared in namespace %q", ownerName, ns)
	}
	b.lists[ownerName] = lc
	return nil
}

// InsertMap installs the single Map constructor for the owning type name.
// Weak variant only.
func (t *ConsTable) InsertMap(ns, ownerName string, mc *ast.MapConstructor) *diagnostics.DiagnosticError {
	b := t.bundle(ns)
	if _, exists := b.maps[ownerName]; exists {
		return diagnostics.NewError(diagnostics.ErrSymbolAlreadyDeclared, mc.Token,
			"map constructor for %q already declared in namespace %q", ownerName, ns)
	}
	b.maps[ownerName] = mc
	return nil
}
