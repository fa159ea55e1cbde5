// Package resolver implements the Type Instance Resolver: given an
// unresolved type instance, a scope, a holder namespace, and the standins
// (formal type parameters) visible at the resolution site, it decides
// whether the instance denotes a concrete type, a formal parameter, or an
// error, mutating the instance in place.
package resolver

import (
	"github.com/funvibe/funxy/internal/ast"
	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/scope"
	"github.com/funvibe/funxy/internal/token"
)

// ParametricShape documents which of the two return shapes the original
// source's simple_check used — a plain Boolean (stage_one/lax) or a pair
// of standin/descendant bits (weak). Our implementation always mutates
// Parametrized on the node itself, so this exists for fidelity to the
// source's variant taxonomy rather than to change behavior.
type ParametricShape int

const (
	BoolOnly ParametricShape = iota
	StandinAndDescendant
)

// Policy parameterizes the resolver so one implementation serves every
// checker variant instead of three parallel copies.
type Policy struct {
	// AllowContainers lets Tuple/List/Map category instances resolve to a
	// synthesized built-in handle (weak variant). stage_one/lax reject them.
	AllowContainers bool
	ParametricShape ParametricShape
}

func isStandin(tok token.Token, standins []token.Token) bool {
	for _, s := range standins {
		if s.Equal(tok) {
			return true
		}
	}
	return false
}

// ResolveSimple operates within a single namespace ns. It attempts to
// attach instance's resolved type pointer (or mark it abstract/builtin),
// recursing into child parameters left-to-right and short-circuiting on
// the first failure.
func ResolveSimple(sc *scope.Scope, instance *ast.TypeInstance, ns string, standins []token.Token, policy Policy) *diagnostics.DiagnosticError {
	switch instance.Category {
	case ast.CategoryUser:
		td, id, err := sc.Decls.GetType(ns, instance.Token.Lexeme, len(instance.Params))
		if err == nil {
			parametrized := false
			for _, child := range instance.Params {
				if cerr := ResolveSimple(sc, child, ns, standins, policy); cerr != nil {
					return cerr
				}
				if child.Parametrized {
					parametrized = true
				}
			}
			instance.Resolved = id
			instance.Parametrized = parametrized
			_ = td
			return nil
		}
		if len(instance.Params) == 0 && isStandin(instance.Token, standins) {
			instance.Parametrized = true
			return nil
		}
		return diagnostics.NewError(diagnostics.ErrInvalidType, instance.Token,
			"undeclared type %q in namespace %q", instance.Token.Lexeme, ns)

	case ast.CategoryTuple, ast.CategoryList, ast.CategoryMap:
		if !policy.AllowContainers {
			return diagnostics.NewError(diagnostics.ErrInvalidType, instance.Token,
				"%s type instances are not permitted by this checker variant", instance.Category)
		}
		parametrized := false
		for _, child := range instance.Params {
			if cerr := ResolveSimple(sc, child, ns, standins, policy); cerr != nil {
				return cerr
			}
			if child.Parametrized {
				parametrized = true
			}
		}
		instance.Parametrized = parametrized
		instance.Builtin = true
		return nil
	}
	return diagnostics.NewError(diagnostics.ErrInvalidType, instance.Token, "unknown type instance category")
}

// ResolveComplex dispatches on instance's attached namespace: "*" tries
// the holder namespace first and falls back to the global namespace on
// InvalidType, propagating the last failure; an explicit namespace is
// tried once, and an abstract result from an explicit namespace is
// rejected (abstract type instances may not carry an explicit namespace).
func ResolveComplex(sc *scope.Scope, instance *ast.TypeInstance, holderNS string, standins []token.Token, policy Policy) *diagnostics.DiagnosticError {
	if instance.Namespace == config.StarNamespace {
		err := ResolveSimple(sc, instance, holderNS, standins, policy)
		if err == nil {
			return nil
		}
		if err.Code != diagnostics.ErrInvalidType {
			return err
		}
		return ResolveSimple(sc, instance, config.StarNamespace, standins, policy)
	}

	if err := ResolveSimple(sc, instance, instance.Namespace, standins, policy); err != nil {
		return err
	}
	if instance.IsAbstract() {
		return diagnostics.NewError(diagnostics.ErrInvalidType, instance.Token,
			"abstract type instance %q may not carry an explicit namespace %q", instance.Token.Lexeme, instance.Namespace)
	}
	return nil
}
