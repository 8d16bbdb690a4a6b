package sema

import (
	"fmt"

	"pact/internal/ast"
	"pact/internal/diag"
)

// declAllowTable is the single source of truth for which declaration kinds a
// module kind admits. Extending the language means adding a row here, not a
// conditional somewhere in the walk.
var declAllowTable = map[ast.DeclKind]map[ast.ModuleKind]bool{
	ast.DeclStorage: {
		ast.ModuleScript:    false,
		ast.ModuleLibrary:   false,
		ast.ModuleContract:  true,
		ast.ModulePredicate: false,
	},
	// Ordinary declarations are allowed everywhere.
	ast.DeclStruct: nil,
	ast.DeclEnum:   nil,
	ast.DeclFn:     nil,
	ast.DeclConst:  nil,
}

// declAllowedIn reports whether a declaration kind is permitted in a module
// kind. A nil row means "allowed everywhere".
func declAllowedIn(declKind ast.DeclKind, moduleKind ast.ModuleKind) bool {
	row, ok := declAllowTable[declKind]
	if !ok || row == nil {
		return true
	}
	return row[moduleKind]
}

// ValidateDeclContext checks every top-level declaration of the unit against
// the allow table for the unit's module kind. Traversal continues after a
// violation; each illegal declaration produces its own diagnostic whose
// primary span covers the declaration's full textual extent.
func ValidateDeclContext(builder *ast.Builder, unitID ast.UnitID, reporter diag.Reporter) {
	unit := builder.Units.Get(unitID)
	kind := unit.Kind

	for _, declID := range unit.Decls {
		decl := builder.Decls.Get(declID)
		if declAllowedIn(decl.Kind, kind) {
			continue
		}
		diag.ReportError(reporter, diag.SemaDeclNotAllowedInModule, decl.Span,
			fmt.Sprintf("Declaring %s in a %s is not allowed", decl.Kind, kind)).
			WithNote(unit.KindSpan, fmt.Sprintf("unit is declared as a %s here", kind)).
			Emit()
	}
}
