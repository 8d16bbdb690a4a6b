package ast

// ModuleKind classifies a compilation unit. Exactly one kind is declared per
// unit, in the header, before any other declaration.
type ModuleKind uint8

const (
	ModuleScript ModuleKind = iota
	ModuleLibrary
	ModuleContract
	ModulePredicate
)

func (k ModuleKind) String() string {
	switch k {
	case ModuleScript:
		return "script"
	case ModuleLibrary:
		return "library"
	case ModuleContract:
		return "contract"
	case ModulePredicate:
		return "predicate"
	}
	return "unknown"
}
