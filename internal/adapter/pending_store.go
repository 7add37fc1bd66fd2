package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	m "snapr.dev/pkg/snapr/internal/model"
)

// PendingStore persists candidate snapshots awaiting review as
// "<reference>.new" files.
type PendingStore interface {
	// Path returns the pending file path for id.
	Path(id m.Identity) m.Path

	// Save records pending, stamping run metadata, and returns what was written.
	Save(ctx context.Context, pending m.PendingSnapshot) (m.PendingSnapshot, error)

	// Get loads the pending snapshot for id, or returns m.ErrNotFound.
	Get(ctx context.Context, id m.Identity) (*m.PendingSnapshot, error)

	// Delete removes the pending snapshot for id. A missing file is not an error.
	Delete(ctx context.Context, id m.Identity) error

	// List returns every pending snapshot below roots, sorted by key.
	List(ctx context.Context, roots []m.Path) ([]m.PendingSnapshot, error)
}

type pendingHeader struct {
	m.Metadata `yaml:",inline"`
	RunID      string    `yaml:"run_id"`
	CreatedAt  time.Time `yaml:"created_at"`
	Digest     string    `yaml:"digest"`
	Inline     *m.Anchor `yaml:"inline,omitempty"`
	Old        *string   `yaml:"old,omitempty"`
}

// LocalPendingStore is the filesystem-backed PendingStore.
type LocalPendingStore struct {
	fs          SourceFSAdapter
	snapshotDir string
	runID       string
	now         func() time.Time
}

// NewLocalPendingStore constructs a LocalPendingStore. Every pending snapshot
// saved through it carries the same run marker.
func NewLocalPendingStore(fs SourceFSAdapter, snapshotDir string) *LocalPendingStore {
	if snapshotDir == "" {
		snapshotDir = DefaultSnapshotDir
	}

	return &LocalPendingStore{fs: fs, snapshotDir: snapshotDir, runID: newRunID(), now: time.Now}
}

// newRunID returns a time-ordered run marker.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// RunID returns the marker stamped on pending snapshots saved by this store.
func (s *LocalPendingStore) RunID() string {
	return s.runID
}

// Path returns the reference path with a ".new" suffix.
func (s *LocalPendingStore) Path(id m.Identity) m.Path {
	return referencePath(s.fs, s.snapshotDir, id) + pendingExt
}

// Save writes pending atomically. Saving the same identity again replaces the
// previous candidate and refreshes its run metadata.
func (s *LocalPendingStore) Save(ctx context.Context, pending m.PendingSnapshot) (m.PendingSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return m.PendingSnapshot{}, err
	}

	pending.Path = s.Path(pending.Identity)
	pending.RunID = s.runID
	pending.CreatedAt = s.now().UTC()
	pending.Digest = Fingerprint([]byte(pending.Contents))

	header := pendingHeader{
		Metadata:  pending.Metadata,
		RunID:     pending.RunID,
		CreatedAt: pending.CreatedAt,
		Digest:    pending.Digest,
		Inline:    pending.Anchor,
	}

	if pending.Old != nil {
		old := string(*pending.Old)
		header.Old = &old
	}

	data, err := encodeSnapshotFile(header, pending.Contents)
	if err != nil {
		return m.PendingSnapshot{}, err
	}

	unlock := s.fs.Lock(pending.Path)
	defer unlock()

	if err := s.fs.WriteFileAtomic(pending.Path, data, ""); err != nil {
		return m.PendingSnapshot{}, fmt.Errorf("write pending %s: %w: %w", pending.Path, m.ErrIO, err)
	}

	slog.Debug("recorded pending snapshot", "path", pending.Path, "identity", pending.Identity.String())

	return pending, nil
}

// Get reads the pending file for id.
func (s *LocalPendingStore) Get(ctx context.Context, id m.Identity) (*m.PendingSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.read(s.Path(id), id.Dir)
}

// Delete removes the pending file for id.
func (s *LocalPendingStore) Delete(ctx context.Context, id m.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(id)

	unlock := s.fs.Lock(path)
	defer unlock()

	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("remove pending %s: %w: %w", path, m.ErrIO, err)
	}

	return nil
}

// List walks roots for pending files and decodes them concurrently.
func (s *LocalPendingStore) List(ctx context.Context, roots []m.Path) ([]m.PendingSnapshot, error) {
	paths, err := s.scan(roots)
	if err != nil {
		return nil, err
	}

	results := make([]*m.PendingSnapshot, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			dir, ok := s.identityDir(path)
			if !ok {
				return nil
			}

			pending, err := s.read(path, dir)
			if err != nil {
				slog.Warn("skipping unreadable pending snapshot", "path", path, "error", err)
				return nil
			}

			if pending.Metadata.Test == "" || s.Path(pending.Identity) != path {
				slog.Warn("skipping pending snapshot with inconsistent header", "path", path)
				return nil
			}

			results[i] = pending

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pendings := make([]m.PendingSnapshot, 0, len(results))

	for _, p := range results {
		if p != nil {
			pendings = append(pendings, *p)
		}
	}

	sort.SliceStable(pendings, func(i, j int) bool {
		return pendings[i].Identity.Key() < pendings[j].Identity.Key()
	})

	return pendings, nil
}

// scan collects pending file paths below roots, skipping duplicates and the
// directories a Go build ignores.
func (s *LocalPendingStore) scan(roots []m.Path) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var paths []m.Path

	for _, root := range roots {
		err := s.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				base := filepath.Base(path)
				if path != string(root) && (base == ".git" || base == "vendor" || base == "node_modules") {
					return filepath.SkipDir
				}

				return nil
			}

			if !strings.HasSuffix(path, snapExt+pendingExt) || !s.inSnapshotDir(path) {
				return nil
			}

			p := m.Path(path)
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				paths = append(paths, p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w: %w", root, m.ErrIO, err)
		}
	}

	return paths, nil
}

func (s *LocalPendingStore) inSnapshotDir(path string) bool {
	_, ok := s.identityDir(m.Path(path))
	return ok
}

// identityDir recovers the test directory from a pending path: everything
// before the first snapshot directory component.
func (s *LocalPendingStore) identityDir(path m.Path) (m.Path, bool) {
	slashed := filepath.ToSlash(string(path))
	marker := "/" + s.snapshotDir + "/"

	if strings.HasPrefix(slashed, s.snapshotDir+"/") {
		return ".", true
	}

	idx := strings.Index(slashed, marker)
	if idx < 0 {
		return "", false
	}

	if idx == 0 {
		return "/", true
	}

	return m.Path(filepath.FromSlash(slashed[:idx])), true
}

func (s *LocalPendingStore) read(path, dir m.Path) (*m.PendingSnapshot, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, m.ErrNotFound)
		}

		return nil, fmt.Errorf("read pending %s: %w: %w", path, m.ErrIO, err)
	}

	var header pendingHeader

	contents, err := decodeSnapshotFile(data, &header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	pending := &m.PendingSnapshot{
		Identity:  m.IdentityFromMetadata(dir, header.Metadata),
		Metadata:  header.Metadata,
		Contents:  contents,
		Anchor:    header.Inline,
		RunID:     header.RunID,
		CreatedAt: header.CreatedAt,
		Digest:    header.Digest,
		Path:      path,
	}

	if header.Old != nil {
		old := m.Contents(*header.Old)
		pending.Old = &old
	}

	return pending, nil
}
