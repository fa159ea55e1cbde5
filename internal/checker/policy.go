// Package checker implements the Constructor Checker, the Type Checker,
// and the Termination Checker. A single Policy record parameterizes the
// constructor/type checking pair so one implementation serves the three
// variants the source shipped separately (stage_one, lax, weak) instead
// of replicating them.
package checker

import "github.com/funvibe/funxy/internal/resolver"

// Policy selects a checker variant.
type Policy struct {
	// AllowContainers: weak variant handles Tuple/List/Map categories and
	// installs list/map constructors; stage_one/lax reject them outright.
	AllowContainers bool
	// AllowSelfReference: weak variant accepts a parameter that syntactically
	// matches its owning type (same name and arity) even when resolution
	// otherwise fails, supporting recursive data types.
	AllowSelfReference bool
	// EnforceVisibility: weak variant fails a constructor whose parameter
	// resolves to a private type while the owning type is public.
	EnforceVisibility bool
	// ParametricShape documents which return shape the source's
	// simple_check used for this variant. See resolver.ParametricShape.
	ParametricShape resolver.ParametricShape
}

// StageOne is the strictest variant: User-category instances only,
// tolerant of unresolved instances that match formal parameters, no
// self-reference, no visibility enforcement.
var StageOne = Policy{
	AllowContainers:    false,
	AllowSelfReference: false,
	EnforceVisibility:  false,
	ParametricShape:    resolver.BoolOnly,
}

// Lax is behaviorally identical to StageOne in this implementation — the
// source's lax variant differs from stage_one only in bookkeeping details
// that do not change accept/reject outcomes for the rules this spec
// names.
var Lax = StageOne

// Weak is the full variant: containers, self-reference, and visibility
// all apply, and simple_check returns the two-bit parametric indicator.
var Weak = Policy{
	AllowContainers:    true,
	AllowSelfReference: true,
	EnforceVisibility:  true,
	ParametricShape:    resolver.StandinAndDescendant,
}

func (p Policy) resolverPolicy() resolver.Policy {
	return resolver.Policy{AllowContainers: p.AllowContainers, ParametricShape: p.ParametricShape}
}
