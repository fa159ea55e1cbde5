package checker

import (
	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/scope"
)

// CheckDefaultConstructor runs the three-step constructor check: uniqueness
// (inserting dc into ns's constructor table), parameter resolution in
// order, then classification — stopping at the first failure.
func CheckDefaultConstructor(sc *scope.Scope, dc *ast.DefaultConstructor, owner *ast.TypeDecl, ownerID arena.TypeDeclID, ns string, policy Policy) *diagnostics.DiagnosticError {
	if err := sc.AddDefaultConstructor(ns, dc); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, dc.Token, err,
			"default constructor %q is not unique in namespace %q", dc.Name, ns)
	}
	for _, param := range dc.Params {
		if err := resolveParam(sc, param, owner, ownerID, ns, policy); err != nil {
			return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, dc.Token, err,
				"constructor %q: parameter %q failed to resolve", dc.Name, param.Token.Lexeme)
		}
		if err := checkVisibility(sc, param, owner, policy); err != nil {
			return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, dc.Token, err,
				"constructor %q: parameter %q violates visibility", dc.Name, param.Token.Lexeme)
		}
		if err := classify(sc, param, owner, ns); err != nil {
			return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, dc.Token, err,
				"constructor %q: parameter %q is invalid", dc.Name, param.Token.Lexeme)
		}
	}
	return nil
}

// CheckRecordConstructor mirrors CheckDefaultConstructor for named fields.
func CheckRecordConstructor(sc *scope.Scope, rc *ast.RecordConstructor, owner *ast.TypeDecl, ownerID arena.TypeDeclID, ns string, policy Policy) *diagnostics.DiagnosticError {
	if err := sc.AddRecordConstructor(ns, rc); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, rc.Token, err,
			"record constructor %q is not unique in namespace %q", rc.Name, ns)
	}
	for _, field := range rc.Fields {
		if err := resolveParam(sc, field.Type, owner, ownerID, ns, policy); err != nil {
			return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, rc.Token, err,
				"constructor %q: field %q failed to resolve", rc.Name, field.Name.Lexeme)
		}
		if err := checkVisibility(sc, field.Type, owner, policy); err != nil {
			return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, rc.Token, err,
				"constructor %q: field %q violates visibility", rc.Name, field.Name.Lexeme)
		}
		if err := classify(sc, field.Type, owner, ns); err != nil {
			return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, rc.Token, err,
				"constructor %q: field %q is invalid", rc.Name, field.Name.Lexeme)
		}
	}
	return nil
}

// CheckListConstructor validates the single element type instance. Weak
// variant only; policy.AllowContainers must already be true by the time a
// ListConstructor exists on a TypeDecl.
func CheckListConstructor(sc *scope.Scope, lc *ast.ListConstructor, owner *ast.TypeDecl, ownerID arena.TypeDeclID, ns string, policy Policy) *diagnostics.DiagnosticError {
	if err := sc.Cons.InsertList(ns, owner.Name, lc); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, lc.Token, err,
			"list constructor for %q is not unique in namespace %q", owner.Name, ns)
	}
	if err := resolveParam(sc, lc.Element, owner, ownerID, ns, policy); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, lc.Token, err,
			"list constructor for %q: element type failed to resolve", owner.Name)
	}
	if err := checkVisibility(sc, lc.Element, owner, policy); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, lc.Token, err,
			"list constructor for %q: element type violates visibility", owner.Name)
	}
	return classify(sc, lc.Element, owner, ns)
}

// CheckMapConstructor validates the key and value type instances
// independently. The key determines nothing about the value: each is
// resolved from its own namespace and its own fields. A prior revision of
// this checker resolved the value using the key's fields by mistake —
// every call here must pass mc.Value, not mc.Key, to the value branch.
func CheckMapConstructor(sc *scope.Scope, mc *ast.MapConstructor, owner *ast.TypeDecl, ownerID arena.TypeDeclID, ns string, policy Policy) *diagnostics.DiagnosticError {
	if err := sc.Cons.InsertMap(ns, owner.Name, mc); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, mc.Token, err,
			"map constructor for %q is not unique in namespace %q", owner.Name, ns)
	}

	if err := resolveParam(sc, mc.Key, owner, ownerID, ns, policy); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, mc.Token, err,
			"map constructor for %q: key type failed to resolve", owner.Name)
	}
	if err := checkVisibility(sc, mc.Key, owner, policy); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, mc.Token, err,
			"map constructor for %q: key type violates visibility", owner.Name)
	}
	if err := classify(sc, mc.Key, owner, ns); err != nil {
		return err
	}

	if err := resolveParam(sc, mc.Value, owner, ownerID, ns, policy); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, mc.Token, err,
			"map constructor for %q: value type failed to resolve", owner.Name)
	}
	if err := checkVisibility(sc, mc.Value, owner, policy); err != nil {
		return diagnostics.Wrap(diagnostics.ErrInvalidConstructor, mc.Token, err,
			"map constructor for %q: value type violates visibility", owner.Name)
	}
	return classify(sc, mc.Value, owner, ns)
}
