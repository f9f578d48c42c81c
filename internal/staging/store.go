package staging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rickgao/stock-etl/internal/model"
)

// Store is a directory of raw batch files.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the staging directory path.
func (s *Store) Dir() string {
	return s.dir
}

// BatchFileName returns the artifact name for a batch generated at ts.
// Second granularity: retries within the same second reuse the name.
func BatchFileName(ts time.Time) string {
	return "stock_data_" + ts.UTC().Format("20060102_150405") + ".json"
}

// WriteBatch persists one batch as a JSON array and returns the file path.
func (s *Store) WriteBatch(records []model.TickRecord, ts time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode batch: %w", err)
	}

	path := filepath.Join(s.dir, BatchFileName(ts))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write batch file: %w", err)
	}

	return path, nil
}

// Files lists every artifact currently staged, in directory enumeration
// order (lexical). An absent directory is an empty staging area, not an
// error.
func (s *Store) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list staging dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Read decodes one staged batch file.
func (s *Store) Read(name string) ([]model.TickRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var records []model.TickRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode batch file %s: %w", name, err)
	}
	return records, nil
}

// ReadAll concatenates every staged batch, preserving file enumeration order
// then in-file order.
func (s *Store) ReadAll() ([]model.TickRecord, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	var all []model.TickRecord
	for _, name := range files {
		records, err := s.Read(name)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}
