package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"snapr.dev/pkg/snapr/internal/adapter"
	"snapr.dev/pkg/snapr/internal/controller"
	m "snapr.dev/pkg/snapr/internal/model"
)

// ListArgs selects the pending snapshots to show.
type ListArgs struct {
	Paths []m.Path
}

// DecideArgs applies one decision to a selection of pending snapshots. An
// empty Keys selects everything below Paths.
type DecideArgs struct {
	Paths    []m.Path
	Keys     []string
	Decision m.Decision
}

// ReviewArgs selects the pending snapshots for an interactive review.
type ReviewArgs struct {
	Paths []m.Path
	Keys  []string
}

// ShowArgs selects one pending snapshot by key.
type ShowArgs struct {
	Paths []m.Path
	Key   string
}

// TestArgs configures a test run that records pending snapshots.
type TestArgs struct {
	WorkDir    string
	Packages   []string
	GoTestArgs []string
	Review     bool
	Accept     bool
	Output     io.Writer
}

// ErrNoSuchSnapshot is returned by Show when no pending snapshot has the key.
var ErrNoSuchSnapshot = errors.New("no pending snapshot with that key")

// Workflow drives the snapr commands.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Decide(ctx context.Context, args DecideArgs) (m.ReviewReport, error)
	Review(ctx context.Context, args ReviewArgs) (m.ReviewReport, error)
	Show(ctx context.Context, args ShowArgs) error
	Test(ctx context.Context, args TestArgs) error
}

type workflow struct {
	Reviewer
	adapter.TestRunnerAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(reviewer Reviewer, testRunner adapter.TestRunnerAdapter, ui controller.UI) Workflow {
	return &workflow{
		Reviewer:          reviewer,
		TestRunnerAdapter: testRunner,
		UI:                ui,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	pendings, err := w.Reviewer.List(ctx, ResolveRoots(args.Paths))
	if err != nil {
		slog.Error("Failed to list pending snapshots", "error", err)
		return err
	}

	return w.DisplayPending(ctx, pendings)
}

func (w *workflow) Decide(ctx context.Context, args DecideArgs) (m.ReviewReport, error) {
	pendings, err := w.selectPending(ctx, args.Paths, args.Keys)
	if err != nil {
		return m.ReviewReport{}, err
	}

	report := w.ApplyAll(ctx, pendings, args.Decision)

	if err := w.DisplayReport(ctx, report); err != nil {
		return report, fmt.Errorf("display: %w", err)
	}

	return report, report.Err()
}

func (w *workflow) Review(ctx context.Context, args ReviewArgs) (m.ReviewReport, error) {
	pendings, err := w.selectPending(ctx, args.Paths, args.Keys)
	if err != nil {
		return m.ReviewReport{}, err
	}

	if len(pendings) == 0 {
		return m.ReviewReport{}, w.DisplayPending(ctx, nil)
	}

	items := make([]controller.ReviewItem, 0, len(pendings))

	for _, p := range pendings {
		diff, err := w.DiffFor(ctx, p.Identity)
		if err != nil {
			return m.ReviewReport{}, fmt.Errorf("render %s: %w", p.Identity.Key(), err)
		}

		items = append(items, controller.ReviewItem{Pending: p, Diff: diff})
	}

	decisions, err := w.UI.Review(ctx, items)
	if err != nil {
		slog.Error("Review session failed", "error", err)
		return m.ReviewReport{}, err
	}

	var report m.ReviewReport

	batch := make(inlineBatch)

	for i, p := range pendings {
		decision := m.DecisionSkip
		if i < len(decisions) {
			decision = decisions[i]
		}

		err := batch.apply(ctx, w.Reviewer, p, decision)
		if err != nil {
			slog.Error("review failed", "identity", p.Identity.Key(), "decision", decision.String(), "error", err)
		}

		report.Record(p.Identity, decision, err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return report, fmt.Errorf("display: %w", err)
	}

	return report, report.Err()
}

func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	pendings, err := w.selectPending(ctx, args.Paths, []string{args.Key})
	if err != nil {
		return err
	}

	if len(pendings) == 0 {
		return fmt.Errorf("%s: %w", args.Key, ErrNoSuchSnapshot)
	}

	for _, p := range pendings {
		diff, err := w.DiffFor(ctx, p.Identity)
		if err != nil {
			return err
		}

		if err := w.DisplayDiff(ctx, diff); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	testErr := w.RunGoTest(ctx, adapter.TestRunRequest{
		WorkDir:  args.WorkDir,
		Packages: args.Packages,
		Mode:     m.ModePending.String(),
		Args:     args.GoTestArgs,
	}, args.Output)
	if testErr != nil {
		slog.Error("go test failed", "error", testErr)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	roots := PackageRoots(args.WorkDir, args.Packages)

	var err error

	switch {
	case args.Accept:
		_, err = w.Decide(ctx, DecideArgs{Paths: roots, Decision: m.DecisionAccept})
	case args.Review:
		_, err = w.Review(ctx, ReviewArgs{Paths: roots})
	default:
		err = w.List(ctx, ListArgs{Paths: roots})
	}

	if testErr != nil {
		return errors.Join(fmt.Errorf("go test: %w", testErr), err)
	}

	return err
}

// selectPending lists pending snapshots below paths and keeps those matching
// one of keys.
func (w *workflow) selectPending(ctx context.Context, paths []m.Path, keys []string) ([]m.PendingSnapshot, error) {
	pendings, err := w.Reviewer.List(ctx, ResolveRoots(paths))
	if err != nil {
		slog.Error("Failed to list pending snapshots", "error", err)
		return nil, err
	}

	if len(keys) == 0 {
		return pendings, nil
	}

	selected := pendings[:0:0]

	for _, p := range pendings {
		if MatchesKey(p.Identity, keys) {
			selected = append(selected, p)
		}
	}

	return selected, nil
}

// MatchesKey reports whether id is named by one of keys. A key is either the
// full identity key or the test-local form "TestName#N" / "TestName@name".
func MatchesKey(id m.Identity, keys []string) bool {
	full := id.Key()
	local := id.String()

	for _, k := range keys {
		k = strings.TrimPrefix(k, "./")
		if k == full || k == local || (id.Name == "" && k == id.Test && id.Ordinal <= 1) {
			return true
		}
	}

	return false
}

// ResolveRoots turns Go-style path patterns into directories to scan:
// "./..." and "pkg/..." become "." and "pkg". No paths means ".".
func ResolveRoots(paths []m.Path) []m.Path {
	if len(paths) == 0 {
		return []m.Path{"."}
	}

	roots := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		s := strings.TrimSuffix(string(p), "...")
		s = strings.TrimSuffix(s, "/")

		if s == "" {
			s = "."
		}

		roots = append(roots, m.Path(s))
	}

	return roots
}

// PackageRoots maps 'go test' package patterns to the directories holding
// their snapshots, relative to the current directory.
func PackageRoots(workDir string, packages []string) []m.Path {
	if len(packages) == 0 {
		packages = []string{"./..."}
	}

	roots := make([]m.Path, 0, len(packages))

	for _, p := range packages {
		if !strings.HasPrefix(p, ".") && !strings.HasPrefix(p, "/") {
			// Import paths cannot be mapped without the go tool; scan the module.
			p = "./..."
		}

		if workDir != "" && !strings.HasPrefix(p, "/") {
			p = strings.TrimSuffix(workDir, "/") + "/" + strings.TrimPrefix(p, "./")
		}

		roots = append(roots, m.Path(p))
	}

	return ResolveRoots(roots)
}
