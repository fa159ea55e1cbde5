package checker

import (
	"testing"

	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

// P6 — shadowing exclusion extends across every namespace of the program,
// not just the one a type is declared in.
func TestCheckTypeRejectsShadowingAcrossNamespaces(t *testing.T) {
	sc := newRootScope()
	other := ast.NewTypeDecl(typeTok("Count"), "Count", nil, "other-ns", ast.Public)
	registerType(t, sc, "other-ns", other)

	box := ast.NewTypeDecl(typeTok("Box"), "Box", []token.Token{typeTok("Count")}, "ns", ast.Public)
	id := allocateOwner(sc, box)

	err := CheckType(sc, box, id, "ns", StageOne)
	if err == nil || err.Code != diagnostics.ErrInvalidType {
		t.Fatalf("expected InvalidType: Box's parameter shadows Count from another namespace, got %v", err)
	}
}

// Boundary: a zero-parameter type with no constructors at all is an
// opaque type, accepted outright.
func TestCheckTypeAcceptsOpaqueType(t *testing.T) {
	sc := newRootScope()
	td := ast.NewTypeDecl(typeTok("Unit"), "Unit", nil, "ns", ast.Public)
	id := allocateOwner(sc, td)

	if err := CheckType(sc, td, id, "ns", StageOne); err != nil {
		t.Fatalf("unexpected error for an opaque type: %v", err)
	}
	if td.Validity != ast.Valid {
		t.Fatalf("expected Valid, got %v", td.Validity)
	}
}

// A declared parameter that does not collide with any concrete type is
// accepted — shadowing exclusion must not over-trigger on unrelated names.
func TestCheckTypeAcceptsNonShadowingParameter(t *testing.T) {
	sc := newRootScope()
	td := ast.NewTypeDecl(typeTok("Wrapper"), "Wrapper", []token.Token{paramTok("item")}, "ns", ast.Public)
	id := allocateOwner(sc, td)

	if err := CheckType(sc, td, id, "ns", StageOne); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
