package charcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const jsonFormatVersion = 1

type jsonDocument struct {
	Version int   `json:"version"`
	Entries Cache `json:"entries"`
}

type jsonBackend struct{}

func (jsonBackend) name() string { return "json" }

func (jsonBackend) read(_ context.Context, path string) (Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("parse cache file: file is empty")
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse cache file: %w", err)
	}
	if doc.Version != jsonFormatVersion {
		return nil, fmt.Errorf("parse cache file: unsupported format version %d", doc.Version)
	}
	return doc.Entries, nil
}

// write replaces the file atomically via a temp file.
func (jsonBackend) write(_ context.Context, path string, cache Cache) error {
	data, err := json.MarshalIndent(jsonDocument{Version: jsonFormatVersion, Entries: cache}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (jsonBackend) remove(path string) (bool, error) {
	return removeFiles(path)
}

// removeFiles deletes path and reports whether it existed. Extra paths are
// removed best-effort alongside it.
func removeFiles(path string, extras ...string) (bool, error) {
	err := os.Remove(path)
	removed := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("remove cache file: %w", err)
	}
	for _, extra := range extras {
		if err := os.Remove(extra); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("remove %s: %w", filepath.Base(extra), err)
		}
	}
	return removed, nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	return nil
}
