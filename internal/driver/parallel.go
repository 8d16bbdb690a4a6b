package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pact/internal/diag"
	"pact/internal/source"
)

// SourceExt is the file extension of pact source files.
const SourceExt = ".pact"

// CheckDirOptions настраивают параллельную проверку директории.
type CheckDirOptions struct {
	MaxDiagnostics int
	Jobs           int
	Cache          *DiskCache // nil — без кэша
}

// listSourceFiles возвращает отсортированный список всех *.pact файлов в директории.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет все *.pact файлы в директории параллельно.
// Единицы компиляции независимы: каждая горутина владеет своим Bag и
// Builder, единственная точка синхронизации — сбор результатов.
func CheckDir(ctx context.Context, dir string, opts CheckDirOptions) (*source.FileSet, []CheckResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагружаем все файлы: FileSet не потокобезопасен для записи.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}

	// Результаты: индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if opts.Cache != nil {
				if cached, ok := opts.Cache.Lookup(file.Hash); ok {
					results[i] = cached.toResult(path, fileID, maxDiagnostics)
					return nil
				}
			}

			res := checkLoaded(fileSet, fileID, maxDiagnostics)
			res.Path = path
			results[i] = res

			if opts.Cache != nil {
				opts.Cache.Store(file.Hash, res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// MergeBags собирает диагностики всех результатов в один Bag и сортирует его
// по span — единый поток для рендера.
func MergeBags(results []CheckResult) *diag.Bag {
	total := 0
	for _, res := range results {
		if res.Bag != nil {
			total += res.Bag.Len()
		}
	}
	merged := diag.NewBag(max(total, 1))
	for _, res := range results {
		if res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	return merged
}

// HasErrors reports whether any per-unit bag contains an error diagnostic.
func HasErrors(results []CheckResult) bool {
	for _, res := range results {
		if res.Bag != nil && res.Bag.HasErrors() {
			return true
		}
	}
	return false
}
