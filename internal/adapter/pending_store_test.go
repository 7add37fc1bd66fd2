package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	m "snapr.dev/pkg/snapr/internal/model"
)

func newTestPendingStore() *LocalPendingStore {
	store := NewLocalPendingStore(NewLocalSourceFSAdapter(), "")
	store.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return store
}

func TestLocalPendingStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestPendingStore()

	id := m.Identity{Dir: m.Path(t.TempDir()), Test: "TestUser/admin", Ordinal: 2}
	old := m.Contents("1")

	saved, err := store.Save(ctx, m.PendingSnapshot{
		Identity: id,
		Metadata: m.Metadata{Test: id.Test, Ordinal: 2, Format: m.FormatDebug, Kind: m.KindFile},
		Contents: "2",
		Old:      &old,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	wantPath := filepath.Join(string(id.Dir), "__snapshots__", "TestUser", "admin.2.snap.new")
	if string(saved.Path) != wantPath {
		t.Fatalf("Path = %s, want %s", saved.Path, wantPath)
	}

	if saved.RunID != store.RunID() || saved.Digest != Fingerprint([]byte("2")) {
		t.Fatalf("run metadata not stamped: %+v", saved)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got.Contents != "2" || got.Old == nil || *got.Old != "1" || got.Identity != id {
		t.Fatalf("Get() = %+v", got)
	}

	if !got.CreatedAt.Equal(saved.CreatedAt) || got.RunID != saved.RunID {
		t.Fatalf("Get() run metadata = %s %s, want %s %s", got.RunID, got.CreatedAt, saved.RunID, saved.CreatedAt)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := store.Get(ctx, id); !errors.Is(err, m.ErrNotFound) {
		t.Fatalf("Get() after delete error = %v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() of missing pending error = %v", err)
	}
}

func TestLocalPendingStore_SaveInlineAnchor(t *testing.T) {
	ctx := context.Background()
	store := newTestPendingStore()

	id := m.Identity{Dir: m.Path(t.TempDir()), Test: "TestInline", Ordinal: 1}
	anchor := &m.Anchor{File: "demo_test.go", Line: 7, Column: 20, Start: 90, End: 94, Literal: `"42"`, Indent: "\t"}

	if _, err := store.Save(ctx, m.PendingSnapshot{
		Identity: id,
		Metadata: m.Metadata{Test: id.Test, Ordinal: 1, Kind: m.KindInline},
		Contents: "43",
		Anchor:   anchor,
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if !got.IsInline() || *got.Anchor != *anchor {
		t.Fatalf("Anchor = %+v, want %+v", got.Anchor, anchor)
	}
}

func TestLocalPendingStore_SaveTwiceLastWriterWins(t *testing.T) {
	ctx := context.Background()
	store := newTestPendingStore()
	id := m.Identity{Dir: m.Path(t.TempDir()), Test: "TestA", Ordinal: 1}

	for _, contents := range []m.Contents{"first", "second"} {
		if _, err := store.Save(ctx, m.PendingSnapshot{Identity: id, Metadata: m.Metadata{Test: "TestA", Ordinal: 1}, Contents: contents}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got.Contents != "second" {
		t.Fatalf("Contents = %q, want second", got.Contents)
	}
}

func TestLocalPendingStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestPendingStore()
	root := t.TempDir()

	ids := []m.Identity{
		{Dir: m.Path(filepath.Join(root, "b")), Test: "TestB", Ordinal: 1},
		{Dir: m.Path(filepath.Join(root, "a")), Test: "TestA/sub", Ordinal: 1},
		{Dir: m.Path(filepath.Join(root, "a")), Test: "TestA", Name: "json"},
		{Dir: m.Path(root), Test: "TestRoot", Ordinal: 3},
	}

	for _, id := range ids {
		md := m.Metadata{Test: id.Test, Ordinal: id.Ordinal, Name: id.Name}
		if _, err := store.Save(ctx, m.PendingSnapshot{Identity: id, Metadata: md, Contents: "x"}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	writeTestFile(t, filepath.Join(root, "a", "__snapshots__", "TestA.snap"), "accepted\n")
	writeTestFile(t, filepath.Join(root, "a", "stray.snap.new"), "not in a snapshot dir\n")
	writeTestFile(t, filepath.Join(root, "vendor", "x", "__snapshots__", "TestV.snap.new"), "---\ntest: TestV\n---\nx\n")

	pendings, err := store.List(ctx, []m.Path{m.Path(root), m.Path(filepath.Join(root, "a"))})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var keys []string
	for _, p := range pendings {
		keys = append(keys, p.Identity.Key())
	}

	want := []string{
		filepath.ToSlash(filepath.Join(root, "TestRoot.3")),
		filepath.ToSlash(filepath.Join(root, "a", "TestA", "sub")),
		filepath.ToSlash(filepath.Join(root, "a", "TestA@json")),
		filepath.ToSlash(filepath.Join(root, "b", "TestB")),
	}

	if len(keys) != len(want) {
		t.Fatalf("List() keys = %v, want %v", keys, want)
	}

	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("List() keys = %v, want %v", keys, want)
		}
	}
}

func TestLocalPendingStore_ListMissingRoot(t *testing.T) {
	store := newTestPendingStore()

	_, err := store.List(context.Background(), []m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
	if !errors.Is(err, m.ErrIO) {
		t.Fatalf("List() error = %v, want ErrIO", err)
	}
}
