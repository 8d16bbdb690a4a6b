package sema

import (
	"pact/internal/ast"
)

// ResolveModuleKind projects the module kind out of a parsed unit. The parser
// guarantees exactly one header per unit, so this is a pure projection with
// no failure mode; the kind is threaded read-only through the validators.
func ResolveModuleKind(builder *ast.Builder, unitID ast.UnitID) ast.ModuleKind {
	return builder.Units.Get(unitID).Kind
}
