package sema

import (
	"pact/internal/ast"
	"pact/internal/diag"
)

// Options configure a semantic pass over a unit.
type Options struct {
	Reporter diag.Reporter
}

// Result stores semantic artefacts produced by the checker.
type Result struct {
	Kind ast.ModuleKind
}

// Check runs the structural validators over one compilation unit: pattern
// shape first, then declaration context. Both walk the same immutable tree
// independently and append to the shared reporter; neither stops on the
// first violation.
func Check(builder *ast.Builder, unitID ast.UnitID, opts Options) Result {
	res := Result{}
	if builder == nil || unitID == ast.NoUnitID {
		return res
	}
	res.Kind = ResolveModuleKind(builder, unitID)

	ValidatePatternShapes(builder, unitID, opts.Reporter)
	ValidateDeclContext(builder, unitID, opts.Reporter)
	return res
}
