package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeCompare},
		{"compare", ModeCompare},
		{"no", ModeCompare},
		{"force", ModeForce},
		{"Always", ModeForce},
		{"overwrite", ModeForce},
		{"pending", ModePending},
		{" new ", ModePending},
		{"record", ModePending},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMode("sometimes")
	assert.Error(t, err)
}

func TestOutcome_Failed(t *testing.T) {
	assert.False(t, Outcome{Kind: Match}.Failed())
	assert.True(t, Outcome{Kind: NewSnapshot}.Failed())
	assert.True(t, Outcome{Kind: Mismatch}.Failed())
}

func TestReviewReport(t *testing.T) {
	var report ReviewReport

	a := Identity{Dir: "p", Test: "TestA", Ordinal: 1}
	b := Identity{Dir: "p", Test: "TestB", Ordinal: 1}
	c := Identity{Dir: "p", Test: "TestC", Ordinal: 1}

	report.Record(a, DecisionAccept, nil)
	report.Record(b, DecisionSkip, nil)
	report.Record(c, DecisionAccept, ErrAnchorDrift)

	assert.Equal(t, []Identity{a}, report.Accepted)
	assert.Equal(t, []Identity{b}, report.Skipped)
	require.Len(t, report.Failures, 1)

	err := report.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAnchorDrift))
	assert.Contains(t, err.Error(), "p/TestC")

	assert.NoError(t, ReviewReport{}.Err())
}
