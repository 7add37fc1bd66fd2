package domain

import (
	"context"
	"fmt"
	"log/slog"

	"snapr.dev/pkg/snapr/internal/adapter"
	m "snapr.dev/pkg/snapr/internal/model"
)

// CheckRequest describes one snapshot assertion.
type CheckRequest struct {
	Identity m.Identity
	Metadata m.Metadata
	Actual   m.Contents
	// Inline points at the MatchInline call (File and Line) for inline
	// assertions and is nil for file snapshots.
	Inline *m.Anchor
	Mode   m.Mode
	// RecordPending controls whether non-matching outcomes leave a pending
	// snapshot behind. Force mode always records.
	RecordPending bool
}

// Checker runs one assertion end to end: load the reference, compare, and
// record or accept the candidate according to the mode.
type Checker interface {
	RunAndCheck(ctx context.Context, req CheckRequest) (m.Outcome, error)
}

type checker struct {
	refs     adapter.ReferenceStore
	pending  adapter.PendingStore
	reviewer Reviewer
}

// NewChecker creates a Checker. Force-mode acceptance goes through reviewer.
func NewChecker(refs adapter.ReferenceStore, pending adapter.PendingStore, reviewer Reviewer) Checker {
	return &checker{refs: refs, pending: pending, reviewer: reviewer}
}

func (c *checker) RunAndCheck(ctx context.Context, req CheckRequest) (m.Outcome, error) {
	reference, anchor, err := c.reference(ctx, req)
	if err != nil {
		return m.Outcome{}, err
	}

	outcome := Compare(req.Actual, reference)
	outcome.Identity = req.Identity
	outcome.Metadata = req.Metadata
	outcome.Anchor = anchor

	if outcome.Kind == m.Match {
		if err := c.pending.Delete(ctx, req.Identity); err != nil {
			slog.Warn("could not remove stale pending snapshot", "identity", req.Identity.Key(), "error", err)
		}

		return outcome, nil
	}

	if !req.RecordPending && req.Mode != m.ModeForce {
		return outcome, nil
	}

	saved, err := c.pending.Save(ctx, m.PendingSnapshot{
		Identity: req.Identity,
		Metadata: req.Metadata,
		Contents: req.Actual,
		Old:      reference,
		Anchor:   anchor,
	})
	if err != nil {
		return outcome, fmt.Errorf("record pending snapshot: %w", err)
	}

	outcome.Pending = saved.Path

	if req.Mode == m.ModeForce && anchor == nil {
		if err := c.reviewer.Accept(ctx, req.Identity); err != nil {
			return outcome, fmt.Errorf("force accept: %w", err)
		}

		outcome.Pending = ""
	}

	return outcome, nil
}

// reference loads the accepted value for req. For inline assertions it also
// returns the resolved anchor. An empty inline literal counts as no reference
// unless the actual value is empty too.
func (c *checker) reference(ctx context.Context, req CheckRequest) (*m.Contents, *m.Anchor, error) {
	if req.Inline != nil {
		anchor, contents, err := c.refs.LocateInline(ctx, *req.Inline)
		if err != nil {
			return nil, nil, fmt.Errorf("locate inline snapshot: %w", err)
		}

		if contents == "" && Normalize(req.Actual) != "" {
			return nil, &anchor, nil
		}

		return &contents, &anchor, nil
	}

	snapshot, err := c.refs.Load(ctx, req.Identity)
	if err != nil {
		return nil, nil, fmt.Errorf("load reference: %w", err)
	}

	if snapshot == nil {
		return nil, nil, nil
	}

	return &snapshot.Contents, nil, nil
}
