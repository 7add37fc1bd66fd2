package model

import "errors"

var (
	// ErrAnchorDrift is returned when an inline anchor no longer matches the source file.
	ErrAnchorDrift = errors.New("anchor drift")
	// ErrIO wraps filesystem failures surfaced to callers.
	ErrIO = errors.New("io failure")
	// ErrConcurrentWrite signals that a file changed between read and write.
	ErrConcurrentWrite = errors.New("concurrent write lost")
	// ErrNotFound is returned when a pending snapshot does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflictingInline is returned when one inline assertion recorded
	// different values in a single run, for instance inside a loop.
	ErrConflictingInline = errors.New("conflicting values for one inline snapshot")
	// ErrNoInlineLiteral is returned when no MatchInline literal exists at a line.
	ErrNoInlineLiteral = errors.New("no inline snapshot literal")
)
