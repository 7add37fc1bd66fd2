package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "snapr.dev/pkg/snapr/internal/adapter/mocks"
	"snapr.dev/pkg/snapr/internal/domain"
	domainmocks "snapr.dev/pkg/snapr/internal/domain/mocks"
	m "snapr.dev/pkg/snapr/internal/model"
)

func fileRequest(actual m.Contents, mode m.Mode) domain.CheckRequest {
	id := m.Identity{Dir: "pkg", Test: "TestUser", Ordinal: 1}

	return domain.CheckRequest{
		Identity:      id,
		Metadata:      m.Metadata{Test: "TestUser", Ordinal: 1, Kind: m.KindFile},
		Actual:        actual,
		Mode:          mode,
		RecordPending: true,
	}
}

func TestChecker_RunAndCheck_Match(t *testing.T) {
	// Arrange
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)
	reviewer := domainmocks.NewMockReviewer(t)

	req := fileRequest("1", m.ModeCompare)

	refs.EXPECT().Load(ctx, req.Identity).Return(&m.Snapshot{Contents: "1\n"}, nil)
	pending.EXPECT().Delete(ctx, req.Identity).Return(nil)

	checker := domain.NewChecker(refs, pending, reviewer)

	// Act
	outcome, err := checker.RunAndCheck(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, m.Match, outcome.Kind)
	assert.False(t, outcome.Failed())
	assert.Empty(t, outcome.Pending)
}

func TestChecker_RunAndCheck_MatchIgnoresStaleDeleteFailure(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	req := fileRequest("1", m.ModeCompare)

	refs.EXPECT().Load(ctx, req.Identity).Return(&m.Snapshot{Contents: "1"}, nil)
	pending.EXPECT().Delete(ctx, req.Identity).Return(errors.New("read-only"))

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.Match, outcome.Kind)
}

func TestChecker_RunAndCheck_NewSnapshotRecordsPending(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	req := fileRequest("1", m.ModeCompare)

	refs.EXPECT().Load(ctx, req.Identity).Return(nil, nil)
	pending.EXPECT().Save(ctx, mock.MatchedBy(func(p m.PendingSnapshot) bool {
		return p.Identity == req.Identity && p.Contents == "1" && p.Old == nil && p.Anchor == nil
	})).Return(m.PendingSnapshot{Path: "pkg/__snapshots__/TestUser.snap.new"}, nil)

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.NewSnapshot, outcome.Kind)
	assert.True(t, outcome.Failed())
	assert.Equal(t, m.Path("pkg/__snapshots__/TestUser.snap.new"), outcome.Pending)
}

func TestChecker_RunAndCheck_MismatchKeepsReference(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	req := fileRequest("2", m.ModePending)

	refs.EXPECT().Load(ctx, req.Identity).Return(&m.Snapshot{Contents: "1"}, nil)
	pending.EXPECT().Save(ctx, mock.MatchedBy(func(p m.PendingSnapshot) bool {
		return p.Contents == "2" && p.Old != nil && *p.Old == "1"
	})).Return(m.PendingSnapshot{Path: "x.snap.new"}, nil)

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.Mismatch, outcome.Kind)
	require.NotNil(t, outcome.Reference)
	assert.Equal(t, m.Contents("1"), *outcome.Reference)
}

func TestChecker_RunAndCheck_NoRecordPending(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	req := fileRequest("2", m.ModeCompare)
	req.RecordPending = false

	refs.EXPECT().Load(ctx, req.Identity).Return(&m.Snapshot{Contents: "1"}, nil)

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.Mismatch, outcome.Kind)
	assert.Empty(t, outcome.Pending)
	pending.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChecker_RunAndCheck_ForceAcceptsFileSnapshot(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)
	reviewer := domainmocks.NewMockReviewer(t)

	req := fileRequest("2", m.ModeForce)
	req.RecordPending = false

	refs.EXPECT().Load(ctx, req.Identity).Return(&m.Snapshot{Contents: "1"}, nil)
	pending.EXPECT().Save(ctx, mock.Anything).Return(m.PendingSnapshot{Path: "x.snap.new"}, nil)
	reviewer.EXPECT().Accept(ctx, req.Identity).Return(nil)

	outcome, err := domain.NewChecker(refs, pending, reviewer).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.Mismatch, outcome.Kind)
	assert.Empty(t, outcome.Pending)
}

func TestChecker_RunAndCheck_ForceAcceptFailure(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)
	reviewer := domainmocks.NewMockReviewer(t)

	req := fileRequest("2", m.ModeForce)
	testErr := errors.New("disk full")

	refs.EXPECT().Load(ctx, req.Identity).Return(nil, nil)
	pending.EXPECT().Save(ctx, mock.Anything).Return(m.PendingSnapshot{Path: "x.snap.new"}, nil)
	reviewer.EXPECT().Accept(ctx, req.Identity).Return(testErr)

	_, err := domain.NewChecker(refs, pending, reviewer).RunAndCheck(ctx, req)

	require.ErrorIs(t, err, testErr)
}

func TestChecker_RunAndCheck_ForceInlineOnlyRecordsPending(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)
	reviewer := domainmocks.NewMockReviewer(t)

	at := m.Anchor{File: "pkg/user_test.go", Line: 12}
	anchor := m.Anchor{File: "pkg/user_test.go", Line: 12, Column: 21, Start: 200, End: 203, Literal: `"1"`, Indent: "\t"}

	req := fileRequest("2", m.ModeForce)
	req.Inline = &at

	refs.EXPECT().LocateInline(ctx, at).Return(anchor, m.Contents("1"), nil)
	pending.EXPECT().Save(ctx, mock.MatchedBy(func(p m.PendingSnapshot) bool {
		return p.Anchor != nil && *p.Anchor == anchor && p.Old != nil && *p.Old == "1"
	})).Return(m.PendingSnapshot{Path: "x.snap.new"}, nil)

	outcome, err := domain.NewChecker(refs, pending, reviewer).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.Mismatch, outcome.Kind)
	assert.Equal(t, m.Path("x.snap.new"), outcome.Pending)
	require.NotNil(t, outcome.Anchor)
	assert.Equal(t, anchor, *outcome.Anchor)
	reviewer.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
}

func TestChecker_RunAndCheck_EmptyInlineLiteralIsNew(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	at := m.Anchor{File: "pkg/user_test.go", Line: 3}
	anchor := m.Anchor{File: "pkg/user_test.go", Line: 3, Start: 40, End: 42, Literal: `""`}

	req := fileRequest("hello", m.ModeCompare)
	req.Inline = &at

	refs.EXPECT().LocateInline(ctx, at).Return(anchor, m.Contents(""), nil)
	pending.EXPECT().Save(ctx, mock.MatchedBy(func(p m.PendingSnapshot) bool {
		return p.Old == nil && p.Anchor != nil
	})).Return(m.PendingSnapshot{Path: "x.snap.new"}, nil)

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.NewSnapshot, outcome.Kind)
}

func TestChecker_RunAndCheck_EmptyInlineLiteralMatchesEmptyValue(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	at := m.Anchor{File: "pkg/user_test.go", Line: 3}
	anchor := m.Anchor{File: "pkg/user_test.go", Line: 3, Start: 40, End: 42, Literal: `""`}

	req := fileRequest("", m.ModeCompare)
	req.Inline = &at

	refs.EXPECT().LocateInline(ctx, at).Return(anchor, m.Contents(""), nil)
	pending.EXPECT().Delete(ctx, req.Identity).Return(nil)

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, m.Match, outcome.Kind)
	pending.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChecker_RunAndCheck_LocateInlineError(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	at := m.Anchor{File: "pkg/user_test.go", Line: 3}
	req := fileRequest("x", m.ModeCompare)
	req.Inline = &at

	refs.EXPECT().LocateInline(ctx, at).Return(m.Anchor{}, m.Contents(""), m.ErrNoInlineLiteral)

	_, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.ErrorIs(t, err, m.ErrNoInlineLiteral)
}

func TestChecker_RunAndCheck_SaveError(t *testing.T) {
	ctx := context.Background()
	refs := adaptermocks.NewMockReferenceStore(t)
	pending := adaptermocks.NewMockPendingStore(t)

	req := fileRequest("x", m.ModeCompare)

	refs.EXPECT().Load(ctx, req.Identity).Return(nil, nil)
	pending.EXPECT().Save(ctx, mock.Anything).Return(m.PendingSnapshot{}, m.ErrIO)

	outcome, err := domain.NewChecker(refs, pending, domainmocks.NewMockReviewer(t)).RunAndCheck(ctx, req)

	require.ErrorIs(t, err, m.ErrIO)
	assert.Equal(t, m.NewSnapshot, outcome.Kind)
}
