package snap_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapr.dev/pkg/snapr/pkg/snap"
)

// recorder is a snap.TB that records failures instead of failing the test.
type recorder struct {
	name string

	mu     sync.Mutex
	errors []string
	logs   []string
}

func (r *recorder) Helper()      {}
func (r *recorder) Name() string { return r.name }

func (r *recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
}

func (r *recorder) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

type user struct {
	Name  string
	Admin bool
	Tags  []string
}

func newRecorder(t *testing.T) *recorder {
	t.Setenv("SNAPR_UPDATE", "")
	t.Setenv("SNAPR_RECORD_PENDING", "")

	return &recorder{name: t.Name()}
}

func TestMatch_NewSnapshotFailsAndRecordsPending(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	s := snap.New(rec, snap.WithDir(dir))

	ok := s.Match(user{Name: "ann", Tags: []string{"x"}})

	assert.False(t, ok)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "new snapshot")
	assert.Contains(t, rec.errors[0], "+ user {")

	pending := filepath.Join(dir, "__snapshots__", "TestMatch_NewSnapshotFailsAndRecordsPending.snap.new")
	assert.FileExists(t, pending)
}

func TestMatch_ForceThenCompare(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	forced := snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce))
	forced.Match(user{Name: "ann"})

	assert.Empty(t, rec.errors)

	reference := filepath.Join(dir, "__snapshots__", "TestMatch_ForceThenCompare.snap")
	data, err := os.ReadFile(reference)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test: TestMatch_ForceThenCompare\n")
	assert.Contains(t, string(data), "snapshot_kind: file\n")
	assert.Contains(t, string(data), "  Name: \"ann\",\n")

	s := snap.New(rec, snap.WithDir(dir))
	assert.True(t, s.Match(user{Name: "ann"}))
	assert.Empty(t, rec.errors)

	assert.False(t, snap.New(rec, snap.WithDir(dir)).Match(user{Name: "bob"}))
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "does not match")
	assert.Contains(t, rec.errors[0], "-  Name: \"ann\",")
	assert.Contains(t, rec.errors[0], "+  Name: \"bob\",")
}

func TestMatch_OrdinalsAndNames(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	s := snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce))
	s.Match(1)
	s.Match(2)
	s.MatchNamed("json", `{"a":1}`)
	s.Match(3)

	snapshots := filepath.Join(dir, "__snapshots__")
	for _, name := range []string{
		"TestMatch_OrdinalsAndNames.snap",
		"TestMatch_OrdinalsAndNames.2.snap",
		"TestMatch_OrdinalsAndNames.3.snap",
		"TestMatch_OrdinalsAndNames@json.snap",
	} {
		assert.FileExists(t, filepath.Join(snapshots, name))
	}

	// A fresh Snapshotter starts numbering again.
	again := snap.New(rec, snap.WithDir(dir))
	assert.True(t, again.Match(1))
	assert.True(t, again.Match(2))
}

func TestMatch_Subtests(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty input", func(t *testing.T) {
		rec := newRecorder(t)
		snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce)).Match([]int{})
	})

	assert.FileExists(t, filepath.Join(dir, "__snapshots__", "TestMatch_Subtests", "empty_input.snap"))
}

func TestMatch_PendingModeNeverFails(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)
	t.Setenv("SNAPR_UPDATE", "pending")

	ok := snap.New(rec, snap.WithDir(dir)).Match("value")

	assert.False(t, ok)
	assert.Empty(t, rec.errors)
	require.Len(t, rec.logs, 1)
	assert.FileExists(t, filepath.Join(dir, "__snapshots__", "TestMatch_PendingModeNeverFails.snap.new"))
}

func TestMatch_RecordPendingDisabled(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)
	t.Setenv("SNAPR_RECORD_PENDING", "false")

	snap.New(rec, snap.WithDir(dir)).Match("value")

	require.Len(t, rec.errors, 1)
	assert.NoFileExists(t, filepath.Join(dir, "__snapshots__", "TestMatch_RecordPendingDisabled.snap.new"))
}

func TestMatch_InvalidMode(t *testing.T) {
	rec := newRecorder(t)
	t.Setenv("SNAPR_UPDATE", "sometimes")

	snap.New(rec, snap.WithDir(t.TempDir()))

	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "SNAPR_UPDATE")
}

func TestMatchText(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce)).MatchText("plain\ntext")

	data, err := os.ReadFile(filepath.Join(dir, "__snapshots__", "TestMatchText.snap"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "---\nplain\ntext\n"))
	assert.Contains(t, string(data), "format: text\n")
}

func TestMatch_YAMLFormat(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce)).
		Match(map[string]int{"b": 2, "a": 1}, snap.WithFormat(snap.FormatYAML), snap.WithExpression("counts"))

	data, err := os.ReadFile(filepath.Join(dir, "__snapshots__", "TestMatch_YAMLFormat.snap"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "expression: counts\n")
	assert.Contains(t, string(data), "---\na: 1\nb: 2\n")
}

func TestMatch_ConcurrentDistinctIdentities(t *testing.T) {
	dir := t.TempDir()

	t.Run("group", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			i := i
			t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
				t.Parallel()

				rec := &recorder{name: t.Name()}
				snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce)).Match(i)

				if len(rec.errors) != 0 {
					t.Errorf("unexpected failures: %v", rec.errors)
				}
			})
		}
	})

	for i := 0; i < 8; i++ {
		path := filepath.Join(dir, "__snapshots__", "TestMatch_ConcurrentDistinctIdentities", "group", fmt.Sprintf("case%d.snap", i))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(data), fmt.Sprintf("---\n%d\n", i)))
	}
}

func TestMatchInline(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	s := snap.New(rec, snap.WithDir(dir))

	assert.True(t, s.MatchInline(42, "42"))
	assert.True(t, s.MatchInline([]int{1, 2}, `
		[
		  1,
		  2,
		]
	`))
	assert.True(t, s.MatchInline("two\nlines", `
		"""
		  two
		  lines
		"""
	`))
	assert.Empty(t, rec.errors)
}

func TestMatchInline_MismatchIsRecordedNotRewritten(t *testing.T) {
	dir := t.TempDir()
	rec := newRecorder(t)

	source, err := os.ReadFile("snap_test.go")
	require.NoError(t, err)

	s := snap.New(rec, snap.WithDir(dir), snap.WithMode(snap.ModeForce))
	assert.False(t, s.MatchInline(43, "42"))

	after, err := os.ReadFile("snap_test.go")
	require.NoError(t, err)
	assert.Equal(t, string(source), string(after))

	require.Len(t, rec.logs, 1)
	assert.Contains(t, rec.logs[0], "recorded")
	assert.FileExists(t, filepath.Join(dir, "__snapshots__", "TestMatchInline_MismatchIsRecordedNotRewritten.snap.new"))
}
