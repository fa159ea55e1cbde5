package scope

import (
	"testing"

	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

func ident(name string) token.Token {
	return token.Token{Type: token.IDENT_UPPER, Lexeme: name}
}

func TestNewRootScopeHasNoParent(t *testing.T) {
	ar := arena.New()
	s := New(ar, 1, 10)
	if s.Parent != arena.NoScope {
		t.Fatalf("expected root scope to have no parent, got %v", s.Parent)
	}
}

func TestNewEnclosedScopeLinksParentViaArena(t *testing.T) {
	ar := arena.New()
	root := New(ar, 1, 100)
	rootID := ar.PutScope(root)

	child := NewEnclosed(ar, rootID, 2, 50)
	if child.Parent != rootID {
		t.Fatalf("expected child's Parent to be root's handle")
	}
	chain := Parents(ar, child)
	if len(chain) != 1 || chain[0] != root {
		t.Fatalf("expected Parents to walk back to root, got %v", chain)
	}
}

func TestAddTypeCascadesConstructors(t *testing.T) {
	ar := arena.New()
	s := New(ar, 1, 10)
	td := ast.NewTypeDecl(ident("Maybe"), "Maybe", nil, "ns", ast.Public)
	td.DefaultConstructors = []*ast.DefaultConstructor{
		{Token: ident("Nothing"), Name: "Nothing"},
		{Token: ident("Just"), Name: "Just", Params: []*ast.TypeInstance{
			ast.NewTypeInstance(ident("a"), ast.CategoryUser, "*", nil),
		}},
	}

	if err := s.AddType("ns", td); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Cons.DefaultExists("ns", ast.ConstructorKey{Name: "Nothing", Arity: 0}) {
		t.Fatalf("expected Nothing/0 to be cascaded into the constructor table")
	}
	if !s.Cons.DefaultExists("ns", ast.ConstructorKey{Name: "Just", Arity: 1}) {
		t.Fatalf("expected Just/1 to be cascaded into the constructor table")
	}
}

func TestAddDefaultConstructorRejectsNameCollisionWithType(t *testing.T) {
	ar := arena.New()
	s := New(ar, 1, 10)
	td := ast.NewTypeDecl(ident("Pair"), "Pair", nil, "ns", ast.Public)
	if err := s.Decls.InsertType("ns", td); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := &ast.DefaultConstructor{Token: ident("Pair"), Name: "Pair"}
	err := s.AddDefaultConstructor("ns", c)
	if err == nil || err.Code != diagnostics.ErrSymbolCanCollide {
		t.Fatalf("expected SymbolCanCollide, got %v", err)
	}
}
