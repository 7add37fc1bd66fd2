package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"snapr.dev/pkg/snapr/internal/adapter"
	m "snapr.dev/pkg/snapr/internal/model"
)

// Reviewer is the only component that mutates references and source files.
// It promotes or discards pending snapshots, one identity at a time.
type Reviewer interface {
	// List returns the pending snapshots below roots in review order.
	List(ctx context.Context, roots []m.Path) ([]m.PendingSnapshot, error)
	// Accept promotes the pending snapshot for id. Accepting an identity with
	// nothing pending is a no-op.
	Accept(ctx context.Context, id m.Identity) error
	// Reject discards the pending snapshot for id.
	Reject(ctx context.Context, id m.Identity) error
	// Skip leaves the pending snapshot for id untouched.
	Skip(ctx context.Context, id m.Identity) error
	// Apply dispatches decision to Accept, Reject or Skip.
	Apply(ctx context.Context, id m.Identity, decision m.Decision) error
	// AcceptAll accepts every pending snapshot below roots.
	AcceptAll(ctx context.Context, roots []m.Path) (m.ReviewReport, error)
	// RejectAll rejects every pending snapshot below roots.
	RejectAll(ctx context.Context, roots []m.Path) (m.ReviewReport, error)
	// ApplyAll applies decision to each pending snapshot, in review order,
	// collecting failures instead of stopping at the first one.
	ApplyAll(ctx context.Context, pendings []m.PendingSnapshot, decision m.Decision) m.ReviewReport
	// DiffFor renders the pending snapshot for id against its reference.
	DiffFor(ctx context.Context, id m.Identity) (string, error)
}

type reviewer struct {
	refs    adapter.ReferenceStore
	pending adapter.PendingStore
}

// NewReviewer creates a Reviewer over the given stores.
func NewReviewer(refs adapter.ReferenceStore, pending adapter.PendingStore) Reviewer {
	return &reviewer{refs: refs, pending: pending}
}

func (r *reviewer) List(ctx context.Context, roots []m.Path) ([]m.PendingSnapshot, error) {
	pendings, err := r.pending.List(ctx, roots)
	if err != nil {
		return nil, fmt.Errorf("list pending snapshots: %w", err)
	}

	return ReviewOrder(pendings), nil
}

func (r *reviewer) Accept(ctx context.Context, id m.Identity) error {
	p, err := r.pending.Get(ctx, id)
	if errors.Is(err, m.ErrNotFound) {
		slog.Debug("nothing pending to accept", "identity", id.Key())
		return nil
	}

	if err != nil {
		return err
	}

	if !p.IsInline() {
		snapshot := m.Snapshot{Metadata: p.Metadata, Contents: p.Contents}
		if err := r.refs.Store(ctx, id, snapshot); err != nil {
			return fmt.Errorf("accept %s: %w", id.Key(), err)
		}

		return r.pending.Delete(ctx, id)
	}

	old := *p.Anchor

	updated, err := r.refs.WriteInline(ctx, old, p.Contents)
	if err != nil {
		return fmt.Errorf("accept %s: %w", id.Key(), err)
	}

	if err := r.pending.Delete(ctx, id); err != nil {
		return err
	}

	// The literal is written; stale sibling anchors surface as drift when
	// they are accepted.
	if err := r.rebase(ctx, id, old, updated); err != nil {
		slog.Error("accepted inline snapshot but could not rebase its siblings", "identity", id.Key(), "error", err)
	}

	return nil
}

// rebase shifts the anchors of other pending inline snapshots in the same
// file that sit after the rewritten span.
func (r *reviewer) rebase(ctx context.Context, accepted m.Identity, old, updated m.Anchor) error {
	byteDelta := updated.End - old.End
	lineDelta := strings.Count(updated.Literal, "\n") - strings.Count(old.Literal, "\n")

	if byteDelta == 0 && lineDelta == 0 {
		return nil
	}

	siblings, err := r.pending.List(ctx, []m.Path{accepted.Dir})
	if err != nil {
		return fmt.Errorf("rebase pending anchors: %w", err)
	}

	for _, s := range siblings {
		if !s.IsInline() || !sameFile(s.Anchor.File, old.File) || s.Anchor.Start < old.End {
			continue
		}

		shifted := s.Anchor.Shift(byteDelta, lineDelta)
		s.Anchor = &shifted

		if _, err := r.pending.Save(ctx, s); err != nil {
			return fmt.Errorf("rebase %s: %w", s.Identity.Key(), err)
		}

		slog.Debug("rebased pending anchor", "identity", s.Identity.Key(), "bytes", byteDelta, "lines", lineDelta)
	}

	return nil
}

func sameFile(a, b m.Path) bool {
	return filepath.Clean(string(a)) == filepath.Clean(string(b))
}

func (r *reviewer) Reject(ctx context.Context, id m.Identity) error {
	return r.pending.Delete(ctx, id)
}

func (r *reviewer) Skip(ctx context.Context, id m.Identity) error {
	return ctx.Err()
}

func (r *reviewer) Apply(ctx context.Context, id m.Identity, decision m.Decision) error {
	switch decision {
	case m.DecisionAccept:
		return r.Accept(ctx, id)
	case m.DecisionReject:
		return r.Reject(ctx, id)
	case m.DecisionSkip:
		return r.Skip(ctx, id)
	}

	return fmt.Errorf("unknown decision %d", decision)
}

func (r *reviewer) AcceptAll(ctx context.Context, roots []m.Path) (m.ReviewReport, error) {
	pendings, err := r.List(ctx, roots)
	if err != nil {
		return m.ReviewReport{}, err
	}

	return r.ApplyAll(ctx, pendings, m.DecisionAccept), nil
}

func (r *reviewer) RejectAll(ctx context.Context, roots []m.Path) (m.ReviewReport, error) {
	pendings, err := r.List(ctx, roots)
	if err != nil {
		return m.ReviewReport{}, err
	}

	return r.ApplyAll(ctx, pendings, m.DecisionReject), nil
}

func (r *reviewer) ApplyAll(ctx context.Context, pendings []m.PendingSnapshot, decision m.Decision) m.ReviewReport {
	var report m.ReviewReport

	batch := make(inlineBatch)

	for _, p := range ReviewOrder(pendings) {
		err := batch.apply(ctx, r, p, decision)
		if err != nil {
			slog.Error("review failed", "identity", p.Identity.Key(), "decision", decision.String(), "error", err)
		}

		report.Record(p.Identity, decision, err)
	}

	return report
}

func (r *reviewer) DiffFor(ctx context.Context, id m.Identity) (string, error) {
	p, err := r.pending.Get(ctx, id)
	if err != nil {
		return "", err
	}

	reference := p.Old

	if !p.IsInline() {
		snapshot, err := r.refs.Load(ctx, id)
		if err != nil {
			return "", err
		}

		reference = nil
		if snapshot != nil {
			reference = &snapshot.Contents
		}
	}

	return RenderPending(*p, reference), nil
}

// inlineSite is the position of an inline literal when the batch started.
type inlineSite struct {
	file  string
	start int
}

// inlineBatch remembers the inline literals accepted during one batch. An
// assertion that runs several times, for instance inside a loop, records one
// pending snapshot per run at the same site; only the first is written and
// the others are discarded.
type inlineBatch map[inlineSite]m.Contents

func (b inlineBatch) apply(ctx context.Context, r Reviewer, p m.PendingSnapshot, decision m.Decision) error {
	if decision != m.DecisionAccept || !p.IsInline() {
		return r.Apply(ctx, p.Identity, decision)
	}

	site := inlineSite{file: filepath.Clean(string(p.Anchor.File)), start: p.Anchor.Start}

	first, seen := b[site]
	if !seen {
		if err := r.Apply(ctx, p.Identity, m.DecisionAccept); err != nil {
			return err
		}

		b[site] = p.Contents

		return nil
	}

	if err := r.Apply(ctx, p.Identity, m.DecisionReject); err != nil {
		return err
	}

	if Normalize(first) != Normalize(p.Contents) {
		return fmt.Errorf("%s:%d: %w", p.Anchor.File, p.Anchor.Line, m.ErrConflictingInline)
	}

	slog.Debug("dropped duplicate inline snapshot", "identity", p.Identity.Key(), "file", p.Anchor.File, "line", p.Anchor.Line)

	return nil
}

// ReviewOrder returns pendings in the order a batch must process them: file
// snapshots by key, then inline snapshots grouped by source file with the
// furthest literal first, so that rewriting one literal never moves a literal
// that is still to be processed.
func ReviewOrder(pendings []m.PendingSnapshot) []m.PendingSnapshot {
	ordered := append([]m.PendingSnapshot(nil), pendings...)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		if a.IsInline() != b.IsInline() {
			return !a.IsInline()
		}

		if !a.IsInline() {
			return a.Identity.Key() < b.Identity.Key()
		}

		fa, fb := filepath.Clean(string(a.Anchor.File)), filepath.Clean(string(b.Anchor.File))
		if fa != fb {
			return fa < fb
		}

		if a.Anchor.Start != b.Anchor.Start {
			return a.Anchor.Start > b.Anchor.Start
		}

		return a.Identity.Key() < b.Identity.Key()
	})

	return ordered
}
