package model

import (
	"fmt"
	"strings"
)

// OutcomeKind classifies the result of comparing a value with its reference.
type OutcomeKind int

const (
	// Match means the value equals the reference.
	Match OutcomeKind = iota
	// NewSnapshot means no reference existed yet.
	NewSnapshot
	// Mismatch means the value differs from the reference.
	Mismatch
)

func (k OutcomeKind) String() string {
	switch k {
	case Match:
		return "match"
	case NewSnapshot:
		return "new"
	case Mismatch:
		return "mismatch"
	}

	return "unknown"
}

// Outcome is the result of one snapshot assertion.
type Outcome struct {
	Kind      OutcomeKind
	Identity  Identity
	Metadata  Metadata
	Reference *Contents
	Actual    Contents
	Anchor    *Anchor
	Pending   Path
}

// Failed reports whether the outcome should fail a test in compare mode.
func (o Outcome) Failed() bool {
	return o.Kind != Match
}

// Mode selects how an assertion reacts to a non-matching outcome.
type Mode int

const (
	// ModeCompare records a pending snapshot and fails the assertion.
	ModeCompare Mode = iota
	// ModeForce accepts the new value as if it had been reviewed.
	ModeForce
	// ModePending records a pending snapshot and never fails.
	ModePending
)

func (m Mode) String() string {
	switch m {
	case ModeCompare:
		return "compare"
	case ModeForce:
		return "force"
	case ModePending:
		return "pending"
	}

	return "unknown"
}

// ParseMode parses the SNAPR_UPDATE values. The aliases "no", "always" and
// "new" are accepted as well.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compare", "no":
		return ModeCompare, nil
	case "force", "always", "overwrite":
		return ModeForce, nil
	case "pending", "new", "record":
		return ModePending, nil
	}

	return ModeCompare, fmt.Errorf("unknown update mode %q", s)
}

// Decision is a reviewer's verdict on one pending snapshot.
type Decision int

const (
	// DecisionSkip leaves the pending snapshot in place.
	DecisionSkip Decision = iota
	// DecisionAccept promotes the pending snapshot to the reference.
	DecisionAccept
	// DecisionReject discards the pending snapshot.
	DecisionReject
)

func (d Decision) String() string {
	switch d {
	case DecisionAccept:
		return "accept"
	case DecisionReject:
		return "reject"
	case DecisionSkip:
		return "skip"
	}

	return "unknown"
}
