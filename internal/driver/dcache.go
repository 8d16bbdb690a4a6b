package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/source"
)

// Current schema version - increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки по хэшу содержимого файла.
// AST не кэшируется — только диагностики; этого достаточно, чтобы
// не перепроверять неизменившиеся файлы.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NewDiskCache returns a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

type DiskNote struct {
	StartByte uint32
	EndByte   uint32
	Message   string
}

type DiskDiagnostic struct {
	Severity  uint8
	Code      uint16
	Message   string
	StartByte uint32
	EndByte   uint32
	NoSpan    bool
	Notes     []DiskNote
}

type DiskPayload struct {
	Schema      uint16
	Kind        uint8
	Diagnostics []DiskDiagnostic
}

// toResult восстанавливает CheckResult из кэша. Span-ы привязываются к
// текущему FileID; AST отсутствует (Builder nil).
func (p *DiskPayload) toResult(path string, fileID source.FileID, maxDiagnostics int) CheckResult {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range p.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
		}
		if !cd.NoSpan {
			d.Primary = source.Span{File: fileID, Start: cd.StartByte, End: cd.EndByte}
		}
		for _, note := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: note.StartByte, End: note.EndByte},
				Msg:  note.Message,
			})
		}
		bag.Add(d)
	}
	return CheckResult{
		Path:   path,
		FileID: fileID,
		Kind:   ast.ModuleKind(p.Kind),
		Bag:    bag,
	}
}

func (c *DiskCache) path(hash [32]byte) string {
	name := hex.EncodeToString(hash[:]) + ".msgpack"
	return filepath.Join(c.dir, name)
}

// Lookup возвращает закэшированный результат для хэша содержимого файла.
func (c *DiskCache) Lookup(hash [32]byte) (*DiskPayload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.path(hash))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload DiskPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Store записывает результат проверки под хэшем содержимого файла.
// Ошибки записи не фатальны: кэш — только ускорение.
func (c *DiskCache) Store(hash [32]byte, res CheckResult) {
	payload := DiskPayload{
		Schema: diskCacheSchemaVersion,
		Kind:   uint8(res.Kind),
	}
	if res.Bag != nil {
		for _, d := range res.Bag.Items() {
			cd := DiskDiagnostic{
				Severity:  uint8(d.Severity),
				Code:      uint16(d.Code),
				Message:   d.Message,
				StartByte: d.Primary.Start,
				EndByte:   d.Primary.End,
				NoSpan:    d.Primary == (source.Span{}),
			}
			for _, note := range d.Notes {
				cd.Notes = append(cd.Notes, DiskNote{
					StartByte: note.Span.Start,
					EndByte:   note.Span.End,
					Message:   note.Msg,
				})
			}
			payload.Diagnostics = append(payload.Diagnostics, cd)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.CreateTemp(c.dir, "cache-*")
	if err != nil {
		return
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return
	}
	// Атомарная замена, чтобы параллельные читатели не видели обрезанный файл.
	_ = os.Rename(f.Name(), c.path(hash))
}
