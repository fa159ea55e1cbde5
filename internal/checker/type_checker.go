package checker

import (
	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/scope"
)

// CheckType validates td end-to-end within namespace ns, then sets
// td.Validity. ownerID is td's own arena handle, allocated by the caller
// before td is registered anywhere — td is deliberately NOT yet visible via
// sc.Decls.GetType while its own constructors are checked, so a constructor
// naming td by name must fail ordinary resolution and fall through to the
// self-reference accommodation (weak variant only), which then attaches
// ownerID directly to that parameter.
func CheckType(sc *scope.Scope, td *ast.TypeDecl, ownerID arena.TypeDeclID, ns string, policy Policy) *diagnostics.DiagnosticError {
	for i, p := range td.Params {
		for _, q := range td.Params[:i] {
			if p.Equal(q) {
				td.Validity = ast.Invalid
				return diagnostics.NewError(diagnostics.ErrInvalidType, p,
					"type %q declares parameter %q more than once", td.Name, p.Lexeme)
			}
		}
	}

	for _, p := range td.Params {
		if sc.Decls.TypeExistsAnywhere(p.Lexeme) {
			td.Validity = ast.Invalid
			return diagnostics.NewError(diagnostics.ErrInvalidType, p,
				"parameter %q of type %q shadows a concrete type declared elsewhere in the program", p.Lexeme, td.Name)
		}
	}

	for _, dc := range td.DefaultConstructors {
		if err := CheckDefaultConstructor(sc, dc, td, ownerID, ns, policy); err != nil {
			td.Validity = ast.Invalid
			return diagnostics.Wrap(diagnostics.ErrInvalidType, dc.Token, err,
				"type %q: default constructor %q is invalid", td.Name, dc.Name)
		}
	}
	for _, rc := range td.RecordConstructors {
		if err := CheckRecordConstructor(sc, rc, td, ownerID, ns, policy); err != nil {
			td.Validity = ast.Invalid
			return diagnostics.Wrap(diagnostics.ErrInvalidType, rc.Token, err,
				"type %q: record constructor %q is invalid", td.Name, rc.Name)
		}
	}
	if policy.AllowContainers && td.ListCons != nil {
		if err := CheckListConstructor(sc, td.ListCons, td, ownerID, ns, policy); err != nil {
			td.Validity = ast.Invalid
			return diagnostics.Wrap(diagnostics.ErrInvalidType, td.ListCons.Token, err,
				"type %q: list constructor is invalid", td.Name)
		}
	}
	if policy.AllowContainers && td.MapCons != nil {
		if err := CheckMapConstructor(sc, td.MapCons, td, ownerID, ns, policy); err != nil {
			td.Validity = ast.Invalid
			return diagnostics.Wrap(diagnostics.ErrInvalidType, td.MapCons.Token, err,
				"type %q: map constructor is invalid", td.Name)
		}
	}

	td.Validity = ast.Valid
	return nil
}
