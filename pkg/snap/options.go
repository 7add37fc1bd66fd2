package snap

import m "snapr.dev/pkg/snapr/internal/model"

// Format selects how a value is turned into snapshot contents.
type Format = m.Format

// Mode selects what an assertion does with a value that does not match.
type Mode = m.Mode

const (
	// FormatDebug is the canonical debug tree format.
	FormatDebug = m.FormatDebug
	// FormatYAML renders the value tree as YAML.
	FormatYAML = m.FormatYAML
	// FormatText stores strings verbatim.
	FormatText = m.FormatText

	// ModeCompare records a pending snapshot and fails the test.
	ModeCompare = m.ModeCompare
	// ModeForce accepts new values immediately. Inline snapshots are only
	// recorded as pending since test runs never edit source files.
	ModeForce = m.ModeForce
	// ModePending records a pending snapshot without failing the test.
	ModePending = m.ModePending
)

// Option configures a Snapshotter or a single assertion.
type Option func(*options)

type options struct {
	format        Format
	expression    string
	mode          Mode
	snapshotDir   string
	dir           string
	recordPending bool
}

// WithFormat selects the serialization format.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithExpression records a description of the asserted value in the
// snapshot header.
func WithExpression(expr string) Option {
	return func(o *options) {
		o.expression = expr
	}
}

// WithMode overrides the mode from SNAPR_UPDATE.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithSnapshotDir overrides the name of the snapshot directory.
func WithSnapshotDir(name string) Option {
	return func(o *options) {
		o.snapshotDir = name
	}
}

// WithDir stores file snapshots below dir instead of the directory of the
// calling test file.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithRecordPending controls whether a failing comparison leaves a pending
// snapshot for review.
func WithRecordPending(record bool) Option {
	return func(o *options) {
		o.recordPending = record
	}
}

func (o options) with(opts []Option) options {
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
