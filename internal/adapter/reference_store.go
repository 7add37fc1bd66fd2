package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "snapr.dev/pkg/snapr/internal/model"
)

// DefaultSnapshotDir is the directory, next to the test sources, that holds
// reference and pending files.
const DefaultSnapshotDir = "__snapshots__"

const (
	snapExt    = ".snap"
	pendingExt = ".new"
)

// ReferenceStore persists accepted snapshots: standalone reference files and
// inline literals in Go test sources.
type ReferenceStore interface {
	// Path returns the reference file path for id.
	Path(id m.Identity) m.Path

	// Load reads the reference for id. It returns nil, nil when none exists.
	Load(ctx context.Context, id m.Identity) (*m.Snapshot, error)

	// Store atomically replaces the reference file for id.
	Store(ctx context.Context, id m.Identity, snapshot m.Snapshot) error

	// LocateInline resolves the MatchInline literal covering at.File:at.Line
	// and returns its full anchor and current contents.
	LocateInline(ctx context.Context, at m.Anchor) (m.Anchor, m.Contents, error)

	// WriteInline replaces the literal described by anchor with contents and
	// returns the anchor of the new literal.
	WriteInline(ctx context.Context, anchor m.Anchor, contents m.Contents) (m.Anchor, error)
}

// LocalReferenceStore is the filesystem-backed ReferenceStore.
type LocalReferenceStore struct {
	fs          SourceFSAdapter
	goFiles     GoFileAdapter
	snapshotDir string
}

// NewLocalReferenceStore constructs a LocalReferenceStore. An empty
// snapshotDir selects DefaultSnapshotDir.
func NewLocalReferenceStore(fs SourceFSAdapter, goFiles GoFileAdapter, snapshotDir string) *LocalReferenceStore {
	if snapshotDir == "" {
		snapshotDir = DefaultSnapshotDir
	}

	return &LocalReferenceStore{fs: fs, goFiles: goFiles, snapshotDir: snapshotDir}
}

// Path returns <Dir>/<snapshotDir>/<stem>.snap.
func (s *LocalReferenceStore) Path(id m.Identity) m.Path {
	return referencePath(s.fs, s.snapshotDir, id)
}

func referencePath(fs SourceFSAdapter, snapshotDir string, id m.Identity) m.Path {
	return fs.JoinPath(string(id.Dir), snapshotDir, filepath.FromSlash(id.Stem())+snapExt)
}

// Load reads and decodes the reference file for id.
func (s *LocalReferenceStore) Load(ctx context.Context, id m.Identity) (*m.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(id)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil //nolint:nilnil // A missing reference is not an error.
		}

		return nil, fmt.Errorf("read reference %s: %w: %w", path, m.ErrIO, err)
	}

	var md m.Metadata

	contents, err := decodeSnapshotFile(data, &md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &m.Snapshot{Metadata: md, Contents: contents}, nil
}

// Store writes the reference file for id through a temp file and rename.
func (s *LocalReferenceStore) Store(ctx context.Context, id m.Identity, snapshot m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(id)

	data, err := encodeSnapshotFile(snapshot.Metadata, snapshot.Contents)
	if err != nil {
		return err
	}

	unlock := s.fs.Lock(path)
	defer unlock()

	if err := s.fs.WriteFileAtomic(path, data, ""); err != nil {
		return fmt.Errorf("write reference %s: %w: %w", path, m.ErrIO, err)
	}

	slog.Debug("stored reference", "path", path, "identity", id.String())

	return nil
}

// LocateInline parses at.File and reads the literal on at.Line.
func (s *LocalReferenceStore) LocateInline(ctx context.Context, at m.Anchor) (m.Anchor, m.Contents, error) {
	src, err := s.fs.ReadFile(at.File)
	if err != nil {
		return m.Anchor{}, "", fmt.Errorf("read %s: %w: %w", at.File, m.ErrIO, err)
	}

	anchor, err := s.goFiles.FindInlineLiteral(ctx, string(at.File), src, at.Line)
	if err != nil {
		return m.Anchor{}, "", err
	}

	contents, err := ParseInlineLiteral(anchor.Literal)
	if err != nil {
		return m.Anchor{}, "", fmt.Errorf("%s:%d: %w", at.File, anchor.Line, err)
	}

	return anchor, contents, nil
}

// WriteInline splices the rendered literal into the source file. The span
// must still hold anchor.Literal on anchor.Line, otherwise m.ErrAnchorDrift is
// returned and the file is left untouched. A write that races with another
// writer is retried once.
func (s *LocalReferenceStore) WriteInline(ctx context.Context, anchor m.Anchor, contents m.Contents) (m.Anchor, error) {
	unlock := s.fs.Lock(anchor.File)
	defer unlock()

	updated, err := s.writeInline(ctx, anchor, contents)
	if errors.Is(err, m.ErrConcurrentWrite) {
		slog.Debug("inline write raced, retrying", "file", anchor.File, "line", anchor.Line)

		updated, err = s.writeInline(ctx, anchor, contents)
		if errors.Is(err, m.ErrConcurrentWrite) {
			return m.Anchor{}, fmt.Errorf("%w: %w", m.ErrIO, err)
		}
	}

	return updated, err
}

func (s *LocalReferenceStore) writeInline(ctx context.Context, anchor m.Anchor, contents m.Contents) (m.Anchor, error) {
	if err := ctx.Err(); err != nil {
		return m.Anchor{}, err
	}

	src, err := s.fs.ReadFile(anchor.File)
	if err != nil {
		return m.Anchor{}, fmt.Errorf("read %s: %w: %w", anchor.File, m.ErrIO, err)
	}

	if err := checkAnchor(src, anchor); err != nil {
		return m.Anchor{}, err
	}

	literal := RenderInlineLiteral(contents, anchor.Indent)
	if literal == anchor.Literal {
		return anchor, nil
	}

	var buf strings.Builder

	buf.Grow(len(src) - len(anchor.Literal) + len(literal))
	buf.Write(src[:anchor.Start])
	buf.WriteString(literal)
	buf.Write(src[anchor.End:])

	if err := s.fs.WriteFileAtomic(anchor.File, []byte(buf.String()), Fingerprint(src)); err != nil {
		if errors.Is(err, m.ErrConcurrentWrite) {
			return m.Anchor{}, err
		}

		return m.Anchor{}, fmt.Errorf("write %s: %w: %w", anchor.File, m.ErrIO, err)
	}

	slog.Debug("rewrote inline snapshot", "file", anchor.File, "line", anchor.Line)

	updated := anchor
	updated.End = anchor.Start + len(literal)
	updated.Literal = literal

	return updated, nil
}

// checkAnchor verifies that src still holds the anchored literal.
func checkAnchor(src []byte, anchor m.Anchor) error {
	if anchor.Start < 0 || anchor.End < anchor.Start || anchor.End > len(src) {
		return fmt.Errorf("%s:%d: span %d..%d outside file: %w",
			anchor.File, anchor.Line, anchor.Start, anchor.End, m.ErrAnchorDrift)
	}

	if string(src[anchor.Start:anchor.End]) != anchor.Literal {
		return fmt.Errorf("%s:%d: literal changed: %w", anchor.File, anchor.Line, m.ErrAnchorDrift)
	}

	if line := 1 + strings.Count(string(src[:anchor.Start]), "\n"); line != anchor.Line {
		return fmt.Errorf("%s: literal moved from line %d to %d: %w", anchor.File, anchor.Line, line, m.ErrAnchorDrift)
	}

	return nil
}
