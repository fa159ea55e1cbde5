// Package driver sequences the checker passes over a compilation unit in
// the order §5 mandates: within a namespace, types before functions before
// variables (constructors are implicit in type registration); within a
// type, default constructors before record before list before map.
//
// This generalizes the teacher's internal/pipeline.Pipeline — a single
// *PipelineContext threaded through an ordered slice of Processors,
// continuing past a stage's errors so later stages still run — from a
// one-dimensional lex/parse/analyze pipeline to the two-dimensional
// (namespace x declaration-kind) pass this spec requires. Run does not
// resolve the import graph; it assumes unit.Namespaces already arrives in
// topological order, exactly as an external orchestrator would provide.
package driver

import (
	"log"

	"github.com/google/uuid"

	"github.com/funvibe/funxy/internal/checker"
	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/program"
	"github.com/funvibe/funxy/internal/scope"
)

// Run checks every namespace of unit in order, using policy for the
// constructor/type checker variant, and returns every diagnostic produced
// — it does not stop at the first namespace, type, or function that
// fails, matching the teacher pipeline's "continue on error to collect
// diagnostics from all stages."
func Run(unit *program.Unit, rootScope *scope.Scope, policy checker.Policy) []*diagnostics.DiagnosticError {
	runID := uuid.New()
	logf("driver[%s]: checking unit %q (%d namespaces)", runID, unit.File, len(unit.Namespaces))

	var errs []*diagnostics.DiagnosticError

	for _, ns := range unit.Namespaces {
		logf("driver[%s]: namespace %q: checking %d types", runID, ns.Name, len(ns.Types))

		// Each type gets an arena handle up front, but is only registered
		// into Decls — made visible to GetType — after CheckType returns,
		// win or lose. A constructor that names its own owner by itself
		// must fail ordinary resolution and fall through to the
		// self-reference accommodation (weak variant only); pre-registering
		// the header would let it resolve trivially under every policy,
		// including stage_one, which must reject recursive types outright.
		for _, td := range ns.Types {
			ownerID := rootScope.Arena.PutTypeDecl(td)
			if err := checker.CheckType(rootScope, td, ownerID, ns.Name, policy); err != nil {
				errs = append(errs, err)
			}
			if err := rootScope.Decls.InsertTypeWithID(ns.Name, td, ownerID); err != nil {
				errs = append(errs, err)
			}
		}

		logf("driver[%s]: namespace %q: checking %d functions", runID, ns.Name, len(ns.Functions))
		for _, fd := range ns.Functions {
			if err := rootScope.AddFunction(ns.Name, fd); err != nil {
				errs = append(errs, err)
				continue
			}
			if err := checker.CheckTermination(fd, config.VoidTypeName); err != nil {
				errs = append(errs, err)
			}
		}

		for _, vd := range ns.Variables {
			if err := rootScope.AddVariable(ns.Name, vd); err != nil {
				errs = append(errs, err)
			}
		}
	}

	logf("driver[%s]: done, %d diagnostics", runID, len(errs))
	return errs
}

// logf suppresses the driver's progress logging under config.IsTestMode, so
// a test suite exercising many units in sequence doesn't drown in noise.
func logf(format string, args ...interface{}) {
	if config.IsTestMode {
		return
	}
	log.Printf(format, args...)
}
