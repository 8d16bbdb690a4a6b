package driver

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/lexer"
	"pact/internal/parser"
	"pact/internal/sema"
	"pact/internal/source"
)

// CheckResult содержит результат проверки одной единицы компиляции.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Unit    ast.UnitID
	Kind    ast.ModuleKind
	Bag     *diag.Bag
}

// CheckFile загружает файл с диска и прогоняет полный конвейер:
// лексер → парсер → структурные валидаторы.
func CheckFile(fs *source.FileSet, path string, maxDiagnostics int) (CheckResult, error) {
	fileID, err := fs.Load(path)
	if err != nil {
		return CheckResult{Path: path}, err
	}
	res := checkLoaded(fs, fileID, maxDiagnostics)
	res.Path = path
	return res, nil
}

// CheckSource проверяет виртуальный файл (stdin, тесты).
func CheckSource(fs *source.FileSet, name string, content []byte, maxDiagnostics int) CheckResult {
	fileID := fs.AddVirtual(name, content)
	res := checkLoaded(fs, fileID, maxDiagnostics)
	res.Path = name
	return res
}

func checkLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) CheckResult {
	bag := diag.NewBag(maxDiagnostics)
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{
		Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
	})

	builder := ast.NewBuilder(ast.Hints{})
	parseRes := parser.ParseUnit(lx, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	var kind ast.ModuleKind
	if parseRes.Unit != ast.NoUnitID {
		semaRes := sema.Check(builder, parseRes.Unit, sema.Options{
			Reporter: &diag.BagReporter{Bag: bag},
		})
		kind = semaRes.Kind
	}

	return CheckResult{
		FileID:  fileID,
		Builder: builder,
		Unit:    parseRes.Unit,
		Kind:    kind,
		Bag:     bag,
	}
}
