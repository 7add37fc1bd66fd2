package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"

	m "snapr.dev/pkg/snapr/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.snap"), "x\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "b.snap"), "y\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(nestedDir, "b.snap")) {
			t.Fatalf("Walk() unexpectedly visited nested file when recursive is false")
		}

		if !containsPath(visited, filepath.Join(root, "a.snap")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "b.snap")
		writeTestFile(t, child, "y\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "a.snap")
	content := []byte("---\ntest: TestA\n---\n1\n")
	writeTestBytes(t, path, content)

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if want := formatDigest(xxhash.Sum64(content)); hash != want {
		t.Fatalf("HashFile() = %s, want %s", hash, want)
	}

	if Fingerprint(content) != hash {
		t.Fatalf("Fingerprint() = %s, want %s", Fingerprint(content), hash)
	}
}

func TestLocalSourceFSAdapter_WriteFileAtomic(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		path := filepath.Join(t.TempDir(), "__snapshots__", "TestA", "sub.snap")
		if err := adapter.WriteFileAtomic(m.Path(path), []byte("hello\n"), ""); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		if got := readFileString(t, path); got != "hello\n" {
			t.Fatalf("content = %q, want %q", got, "hello\n")
		}
	})

	t.Run("keeps permissions and leaves no temp files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		dir := t.TempDir()
		path := filepath.Join(dir, "x_test.go")
		writeTestFile(t, path, "package x\n")

		if err := os.Chmod(path, 0o600); err != nil {
			t.Fatalf("chmod: %v", err)
		}

		if err := adapter.WriteFileAtomic(m.Path(path), []byte("package y\n"), Fingerprint([]byte("package x\n"))); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}

		if info.Mode().Perm() != 0o600 {
			t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}

		if len(entries) != 1 {
			t.Fatalf("expected only the target file, got %d entries", len(entries))
		}
	})

	t.Run("fingerprint mismatch reports concurrent write", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		path := filepath.Join(t.TempDir(), "x_test.go")
		writeTestFile(t, path, "package x // edited elsewhere\n")

		err := adapter.WriteFileAtomic(m.Path(path), []byte("package y\n"), Fingerprint([]byte("package x\n")))
		if !errors.Is(err, m.ErrConcurrentWrite) {
			t.Fatalf("WriteFileAtomic() error = %v, want ErrConcurrentWrite", err)
		}

		if got := readFileString(t, path); got != "package x // edited elsewhere\n" {
			t.Fatalf("file was modified: %q", got)
		}
	})
}

func TestLocalSourceFSAdapter_Lock(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "counter"))

	var (
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			unlock := adapter.Lock(path)
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
}

func TestLocalSourceFSAdapter_Remove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "a.snap.new")
	writeTestFile(t, path, "x\n")

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Remove() did not delete file, stat err=%v", err)
	}

	if err := adapter.Remove(m.Path(path)); err != nil {
		t.Fatalf("Remove() on missing file error = %v", err)
	}
}

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	goModDir := filepath.Join(root, "project")
	mustMkdir(t, goModDir)
	writeTestFile(t, filepath.Join(goModDir, "go.mod"), "module example.com/project\n")

	subDir := filepath.Join(goModDir, "sub", "pkg")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := adapter.FindProjectRoot(m.Path(filepath.Join(subDir, "file_test.go")))
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}

	if got != m.Path(goModDir) {
		t.Fatalf("FindProjectRoot() = %s, want %s", got, goModDir)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath("/tmp/project", "/tmp/project/sub/__snapshots__/TestA.snap")
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if want := filepath.Join("sub", "__snapshots__", "TestA.snap"); string(rel) != want {
		t.Fatalf("RelPath() = %s, want %s", rel, want)
	}

	joined := adapter.JoinPath("/tmp", "project", "TestA.snap")
	if want := filepath.Join("/tmp", "project", "TestA.snap"); string(joined) != want {
		t.Fatalf("JoinPath() = %s, want %s", joined, want)
	}

	info, err := adapter.FileInfo(m.Path(t.TempDir()))
	if err != nil || !info.IsDir() {
		t.Fatalf("FileInfo() = %v, %v; want directory", info, err)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFileString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
