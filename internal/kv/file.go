package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists all keys as a single JSON object on disk, the closest analog
// to per-install browser storage. Writes go through a temp file + rename so a
// crash mid-write never leaves a truncated store behind.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kv file: %w", err)
	}

	if err := json.Unmarshal(data, &f.values); err != nil {
		// Corrupt store: start over rather than refusing to boot.
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value

	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("marshal kv file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create kv dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write kv file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace kv file: %w", err)
	}
	return nil
}
