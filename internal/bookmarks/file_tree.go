// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bookmarks

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

// FileTree is a bookmark tree stored as an indented JSON array. Writes are
// atomic: the tree is written to a temporary file which then replaces the
// original.
//
// FileTree remembers the digest of the content it last read or wrote, so
// edits made by someone else can be told apart from its own.
type FileTree struct {
	path string

	mu     sync.Mutex
	digest [sha256.Size]byte

	logger *logger.Logger
}

// NewFileTree returns a tree backed by the file at path. The file does not
// have to exist yet.
func NewFileTree(path string, logger *logger.Logger) (*FileTree, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve bookmarks file path: %w", err)
	}
	return &FileTree{path: abs, logger: logger}, nil
}

// Path returns the absolute file location.
func (t *FileTree) Path() string {
	return t.path
}

// Read loads the tree. A missing file is an empty tree.
func (t *FileTree) Read(_ context.Context) ([]models.Bookmark, error) {
	data, err := t.readFile()
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.digest = sha256.Sum256(data)
	t.mu.Unlock()

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tree []models.Bookmark
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}
	return tree, nil
}

// Write replaces the tree.
func (t *FileTree) Write(_ context.Context, tree []models.Bookmark) error {
	if tree == nil {
		tree = []models.Bookmark{}
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create bookmarks directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(t.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp bookmarks file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp bookmarks file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp bookmarks file: %w", err)
	}

	// Record the digest before the rename so a watcher never sees the new
	// content as a foreign edit.
	t.mu.Lock()
	previous := t.digest
	t.digest = sha256.Sum256(data)
	t.mu.Unlock()

	if err := os.Rename(tmp.Name(), t.path); err != nil {
		t.mu.Lock()
		t.digest = previous
		t.mu.Unlock()
		return fmt.Errorf("replace bookmarks file: %w", err)
	}

	t.logger.Debug().
		Str("func", "FileTree.Write").
		Str("path", t.path).
		Int("bookmarks", models.CountBookmarks(tree)).
		Msg("bookmarks file written")
	return nil
}

// Changed reports whether the file content differs from what the tree last
// read or wrote.
func (t *FileTree) Changed() (bool, error) {
	data, err := t.readFile()
	if err != nil {
		return false, err
	}
	sum := sha256.Sum256(data)

	t.mu.Lock()
	defer t.mu.Unlock()
	return sum != t.digest, nil
}

func (t *FileTree) readFile() ([]byte, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}
	return data, nil
}
