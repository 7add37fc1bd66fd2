// Package snap is the test-side API of snapr: it serializes values, compares
// them with their accepted snapshot and records pending candidates for review.
//
//	func TestUser(t *testing.T) {
//		s := snap.New(t)
//		s.Match(loadUser())
//		s.MatchInline(countUsers(), "3")
//	}
//
// Failing assertions leave a pending snapshot next to the reference. Accept or
// reject it with the snapr command, or set SNAPR_UPDATE=force to accept new
// values directly.
package snap

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"snapr.dev/pkg/snapr/internal/adapter"
	"snapr.dev/pkg/snapr/internal/domain"
	m "snapr.dev/pkg/snapr/internal/model"
	"snapr.dev/pkg/snapr/pkg/value"
)

// TB is the part of testing.TB a Snapshotter needs.
type TB interface {
	Helper()
	Name() string
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

// Snapshotter asserts values of one test. Unnamed snapshots are numbered in
// call order, so create one Snapshotter per test.
type Snapshotter struct {
	t    TB
	opts options

	mu      sync.Mutex
	ordinal int
}

// New returns a Snapshotter for t. Options given here apply to every
// assertion and override SNAPR_* settings.
func New(t TB, opts ...Option) *Snapshotter {
	t.Helper()

	file, _, _ := callerSite(1)

	defaults, err := loadSettings(projectRoot(file))
	if err != nil {
		t.Fatalf("snapr: %v", err)
	}

	return &Snapshotter{t: t, opts: defaults.with(opts)}
}

// Match compares v with the next numbered snapshot of the test and reports
// whether it matched.
func (s *Snapshotter) Match(v any, opts ...Option) bool {
	s.t.Helper()

	file, line, fn := callerSite(1)

	return s.assert(site{file: file, line: line, fn: fn}, "", v, opts)
}

// MatchNamed compares v with the snapshot called name.
func (s *Snapshotter) MatchNamed(name string, v any, opts ...Option) bool {
	s.t.Helper()

	file, line, fn := callerSite(1)

	return s.assert(site{file: file, line: line, fn: fn}, name, v, opts)
}

// MatchText compares a string verbatim, without serialization.
func (s *Snapshotter) MatchText(text string, opts ...Option) bool {
	s.t.Helper()

	file, line, fn := callerSite(1)
	opts = append([]Option{WithFormat(FormatText)}, opts...)

	return s.assert(site{file: file, line: line, fn: fn}, "", text, opts)
}

// MatchInline compares v with the string literal passed as the last
// argument. The literal is read back from the calling source file so that
// accepting a new value can rewrite it in place; an empty literal is a new
// snapshot.
func (s *Snapshotter) MatchInline(v any, literal string, opts ...Option) bool {
	s.t.Helper()

	file, line, fn := callerSite(1)
	at := site{file: file, line: line, fn: fn, inline: true}

	if !filepath.IsAbs(file) {
		s.t.Errorf("snapr: inline snapshot needs the source of %s (built with -trimpath?); literal %q", file, literal)
		return false
	}

	return s.assert(at, "", v, opts)
}

type site struct {
	file   string
	line   int
	fn     string
	inline bool
}

func (s *Snapshotter) assert(at site, name string, v any, opts []Option) bool {
	s.t.Helper()

	o := s.opts.with(opts)
	id := s.identity(at, name, o)

	kind := m.KindFile
	if at.inline {
		kind = m.KindInline
	}

	req := domain.CheckRequest{
		Identity: id,
		Metadata: m.Metadata{
			Source:     sourceName(at.file),
			Expression: o.expression,
			Package:    id.Package,
			Test:       id.Test,
			Ordinal:    id.Ordinal,
			Name:       id.Name,
			Format:     o.format,
			Kind:       kind,
		},
		Actual:        serialize(v, o.format),
		Mode:          o.mode,
		RecordPending: o.recordPending,
	}

	if at.inline {
		req.Inline = &m.Anchor{File: m.Path(at.file), Line: at.line}
	}

	outcome, err := engineFor(o.snapshotDir).checker.RunAndCheck(context.Background(), req)
	if err != nil {
		s.t.Errorf("snapr: %s: %v", id, err)
		return false
	}

	if outcome.Kind == m.Match {
		return true
	}

	switch o.mode {
	case m.ModeCompare:
		s.t.Errorf("%s", domain.RenderOutcome(outcome))
	case m.ModePending:
		s.t.Logf("%s", domain.RenderOutcome(outcome))
	case m.ModeForce:
		if outcome.Pending != "" {
			s.t.Logf("snapr: recorded %s for review (inline snapshots are not rewritten during tests)", outcome.Pending)
		} else {
			s.t.Logf("snapr: accepted %s", id.Key())
		}
	}

	return false
}

func (s *Snapshotter) identity(at site, name string, o options) m.Identity {
	dir := o.dir
	if dir == "" {
		dir = filepath.Dir(at.file)
	}

	id := m.Identity{
		Dir:     m.Path(dir),
		Package: packagePath(at.fn),
		Test:    s.t.Name(),
		Name:    name,
	}

	if name == "" {
		s.mu.Lock()
		s.ordinal++
		id.Ordinal = s.ordinal
		s.mu.Unlock()
	}

	return id
}

func serialize(v any, format Format) m.Contents {
	switch format {
	case m.FormatText:
		switch x := v.(type) {
		case string:
			return m.Contents(x)
		case []byte:
			return m.Contents(x)
		case fmt.Stringer:
			return m.Contents(x.String())
		}

		return m.Contents(value.Serialize(value.From(v)))
	case m.FormatYAML:
		return m.Contents(value.SerializeYAML(value.From(v)))
	}

	return m.Contents(value.Serialize(value.From(v)))
}

// callerSite returns the file, line and function name skip frames above its
// caller.
func callerSite(skip int) (string, int, string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0, ""
	}

	var fn string
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}

	return file, line, fn
}

// packagePath extracts the import path from a function name such as
// "example.com/mod/pkg.TestUser.func1".
func packagePath(fn string) string {
	slash := strings.LastIndex(fn, "/")

	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}

	return fn[:slash+1+dot]
}

func sourceName(file string) string {
	root := projectRoot(file)
	if root == "" {
		return filepath.Base(file)
	}

	rel, err := sharedFS.RelPath(root, m.Path(file))
	if err != nil {
		return filepath.Base(file)
	}

	return filepath.ToSlash(string(rel))
}

func projectRoot(file string) m.Path {
	if file == "" {
		return ""
	}

	root, err := sharedFS.FindProjectRoot(m.Path(file))
	if err != nil {
		return ""
	}

	return root
}

// engine is the checker wiring for one snapshot directory name. All engines
// share one filesystem adapter so writers of a file serialize on one lock.
type engine struct {
	checker domain.Checker
}

var (
	sharedFS      = adapter.NewLocalSourceFSAdapter()
	sharedGoFiles = adapter.NewLocalGoFileAdapter()

	enginesMu sync.Mutex
	engines   = make(map[string]*engine)
)

func engineFor(snapshotDir string) *engine {
	if snapshotDir == "" {
		snapshotDir = adapter.DefaultSnapshotDir
	}

	enginesMu.Lock()
	defer enginesMu.Unlock()

	if e, ok := engines[snapshotDir]; ok {
		return e
	}

	refs := adapter.NewLocalReferenceStore(sharedFS, sharedGoFiles, snapshotDir)
	pending := adapter.NewLocalPendingStore(sharedFS, snapshotDir)
	e := &engine{checker: domain.NewChecker(refs, pending, domain.NewReviewer(refs, pending))}
	engines[snapshotDir] = e

	return e
}
