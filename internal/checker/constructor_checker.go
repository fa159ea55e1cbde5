package checker

import (
	"github.com/funvibe/funxy/internal/arena"
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/resolver"
	"github.com/funvibe/funxy/internal/scope"
)

// resolveParam runs complex_check for a single constructor parameter
// against owner's type-parameter standins, applying the self-reference
// accommodation the weak variant allows when resolution otherwise fails.
// ownerID is owner's own arena handle, attached directly when
// self-reference applies.
func resolveParam(sc *scope.Scope, param *ast.TypeInstance, owner *ast.TypeDecl, ownerID arena.TypeDeclID, ns string, policy Policy) *diagnostics.DiagnosticError {
	err := resolver.ResolveComplex(sc, param, ns, owner.Params, policy.resolverPolicy())
	if err == nil {
		return nil
	}
	if policy.AllowSelfReference && err.Code == diagnostics.ErrInvalidType {
		if param.Token.Lexeme == owner.Name && len(param.Params) == owner.Arity() {
			param.Resolved = ownerID
			param.Parametrized = false
			return nil
		}
	}
	return err
}

func checkVisibility(sc *scope.Scope, param *ast.TypeInstance, owner *ast.TypeDecl, policy Policy) *diagnostics.DiagnosticError {
	if !policy.EnforceVisibility {
		return nil
	}
	resolvedTD := resolvedTypeDecl(sc, param)
	if resolvedTD == nil {
		return nil
	}
	if resolvedTD.Vis == ast.Private && owner.Vis == ast.Public {
		return diagnostics.NewError(diagnostics.ErrInvalidConstructor, param.Token,
			"parameter %q resolves to private type %q, but owning type %q is public", param.Token.Lexeme, resolvedTD.Name, owner.Name)
	}
	return nil
}

// classify applies the constructor checker's final step: a parameter
// whose resolved type is owner itself, attached in owner's own namespace,
// is trivially valid; otherwise the constructor fails only if the
// parameter's resolved type is already known Invalid.
func classify(sc *scope.Scope, param *ast.TypeInstance, owner *ast.TypeDecl, ns string) *diagnostics.DiagnosticError {
	resolvedTD := resolvedTypeDecl(sc, param)
	if resolvedTD == nil {
		return nil
	}
	if resolvedTD == owner && param.Namespace == ns {
		return nil
	}
	if resolvedTD.Validity == ast.Invalid {
		return diagnostics.NewError(diagnostics.ErrInvalidConstructor, param.Token,
			"parameter %q depends on invalid type %q", param.Token.Lexeme, resolvedTD.Name)
	}
	return nil
}

func resolvedTypeDecl(sc *scope.Scope, param *ast.TypeInstance) *ast.TypeDecl {
	if param.IsAbstract() || param.Builtin {
		return nil
	}
	resolvedTD, _ := sc.Arena.TypeDecl(param.Resolved).(*ast.TypeDecl)
	return resolvedTD
}
