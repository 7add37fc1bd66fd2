// Package model defines the data structures shared by the snapshot engine.
package model

// Path represents a file system path.
type Path string

// SnapshotKind tells where a reference lives.
type SnapshotKind string

const (
	// KindFile is a standalone .snap reference file.
	KindFile SnapshotKind = "file"
	// KindInline is a string literal embedded in a Go test file.
	KindInline SnapshotKind = "inline"
)

// Anchor is the precise location of an inline snapshot literal.
//
// Start and End are byte offsets into File covering the whole literal
// expression (a single string literal or a "+" chain of literals).
// Literal holds the exact source text of that span when it was recorded and
// is used to detect drift before the span is rewritten.
type Anchor struct {
	File    Path   `yaml:"file"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Literal string `yaml:"literal"`
	Indent  string `yaml:"indent"`
}

// Shift returns a copy of the anchor moved by the given byte and line deltas.
func (a Anchor) Shift(bytes, lines int) Anchor {
	a.Start += bytes
	a.End += bytes
	a.Line += lines

	return a
}
