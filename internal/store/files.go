// ABOUTME: File-backed Store keeping one Markdown file per article
// ABOUTME: Article "Python" lives at <dir>/Python.md; listing strips the extension

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EntryExt is the file extension of stored articles.
const EntryExt = ".md"

// FileStore implements Store on a directory of Markdown files.
//
// Lookups are exact byte matches on the file name, so on case-insensitive
// filesystems (the macOS and Windows defaults) GetEntry also finds case variants.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates a FileStore rooted at dir, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	logger := slog.Default().With("component", "store")

	if dir == "" {
		return nil, errors.New("entries directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating entries directory: %w", err)
	}

	logger.Info("file store initialized", "dir", dir)
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the directory holding the entry files.
func (s *FileStore) Dir() string {
	return s.dir
}

// ListEntries returns the names of all .md files in the directory, sorted.
func (s *FileStore) ListEntries(ctx context.Context) ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading entries directory: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if !e.Type().IsRegular() {
			continue
		}
		name, ok := strings.CutSuffix(e.Name(), EntryExt)
		if !ok || name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetEntry reads <dir>/<name>.md. A missing file is reported as not found.
func (s *FileStore) GetEntry(ctx context.Context, name string) (string, bool, error) {
	if err := ValidateName(name); err != nil {
		// No file can exist under an invalid name.
		return "", false, nil
	}

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading entry %q: %w", name, err)
	}
	return string(data), true, nil
}

// SaveEntry writes the normalized body to <dir>/<name>.md, replacing any existing file.
// Concurrent saves to one name resolve to the last rename.
func (s *FileStore) SaveEntry(ctx context.Context, name, body string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if err := s.writeAtomic(s.path(name), []byte(NormalizeNewlines(body))); err != nil {
		return fmt.Errorf("writing entry %q: %w", name, err)
	}
	s.logger.Debug("entry saved", "name", name)
	return nil
}

// writeAtomic writes data to a temp file in the entries directory and renames it
// over path, so readers see either the old or the new body, never a partial one.
// Temp files start with a dot and lack the .md suffix, so ListEntries skips them.
func (s *FileStore) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".entry-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+EntryExt)
}
