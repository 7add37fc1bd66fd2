// Package adapter contains storage, source and process adapters for snapr.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"

	m "snapr.dev/pkg/snapr/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the stores
// rely on. It hides direct `os` access so the domain logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps store logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the xxhash fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindProjectRoot searches for go.mod file walking up the directory tree.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// Lock serializes writers of one path inside the process. The returned
	// function releases the lock.
	Lock(path m.Path) func()

	// WriteFileAtomic writes content next to path and renames it into place.
	// A non-empty expectedHash must match the current fingerprint of path
	// right before the rename, otherwise m.ErrConcurrentWrite is returned.
	WriteFileAtomic(path m.Path, content []byte, expectedHash string) error

	// Remove deletes a file. Missing files are not an error.
	Remove(path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance. All
// stores of one process should share a single instance so that Lock is
// effective.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{locks: make(map[string]*sync.Mutex)}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the xxhash fingerprint of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return formatDigest(h.Sum64()), nil
}

// Fingerprint returns the xxhash fingerprint of content, in the same form as
// HashFile.
func Fingerprint(content []byte) string {
	return formatDigest(xxhash.Sum64(content))
}

func formatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindProjectRoot searches for go.mod file walking up the directory tree.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := filepath.Dir(string(startPath))

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// Lock acquires the in-process lock for path.
func (a *LocalSourceFSAdapter) Lock(path m.Path) func() {
	key := filepath.Clean(string(path))
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}

	a.mu.Lock()

	l, ok := a.locks[key]
	if !ok {
		l = &sync.Mutex{}
		a.locks[key] = l
	}

	a.mu.Unlock()

	l.Lock()

	return l.Unlock
}

// WriteFileAtomic writes content to a temporary file in the target directory,
// syncs it and renames it over path.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte, expectedHash string) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	perm := os.FileMode(filePerm)
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if expectedHash != "" {
		current, err := a.HashFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("fingerprint %s: %w", target, err)
		}

		if current != expectedHash {
			return fmt.Errorf("%s changed on disk (fingerprint %q, expected %q): %w",
				target, current, expectedHash, m.ErrConcurrentWrite)
		}
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename into %s: %w", target, err)
	}

	committed = true

	return nil
}

// Remove deletes the file at path; a missing file is ignored.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	err := os.Remove(string(path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
