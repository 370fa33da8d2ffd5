package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// JSONStore writes JSON exports under a root directory.
type JSONStore struct {
	Root string // e.g. "out"
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

// WriteJSON writes v as indented JSON with a trailing newline, creating
// parent directories as needed.
func (s *JSONStore) WriteJSON(rel string, v any) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	b = append(b, '\n')
	return os.WriteFile(path, b, 0o644)
}
