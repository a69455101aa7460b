// Package cachestore implements the resolution cache on the local
// filesystem, one JSON file per cache key, plus an in-memory variant.
package cachestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ResolutionCache using a file-per-key strategy.
// The directory it is rooted at already encodes the target distribution, so
// resolutions for different targets never share files.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
// An uncreatable directory is the one cache failure callers must not
// tolerate; everything later degrades to cache misses.
func New(dir string) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	return &Store{dir: cleanDir}, nil
}

// cacheRecord is the on-disk shape of one resolution. A null target encodes
// confirmed absence in the target distribution.
type cacheRecord struct {
	Source     string    `json:"source"`
	Target     *string   `json:"target"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Get retrieves the cached resolution for a key.
// Returns nil, nil if not found.
func (s *Store) Get(key string) (*domain.CacheEntry, error) {
	//nolint:gosec // Path is constructed from trusted directory and sanitized key
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var record cacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error())
	}

	entry := &domain.CacheEntry{Source: record.Source, ResolvedAt: record.ResolvedAt}
	if record.Target != nil {
		entry.Target = *record.Target
		entry.Found = true
	}

	return entry, nil
}

// Put stores a resolution, overwriting any previous entry for the key.
func (s *Store) Put(key string, entry domain.CacheEntry) error {
	record := cacheRecord{Source: entry.Source, ResolvedAt: entry.ResolvedAt}
	if entry.Found {
		target := entry.Target
		record.Target = &target
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := s.atomicWriteFile(s.entryPath(key), data); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

// Clear removes every cached resolution. A directory that no longer exists
// counts as cleared.
func (s *Store) Clear() error {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
	}

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != domain.CacheFileExt {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, dirEntry.Name())); err != nil {
			return zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
		}
	}

	return nil
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, key+domain.CacheFileExt)
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// and renaming it. A failed write never leaves a partial final file behind.
func (s *Store) atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(s.dir, "resolution-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
