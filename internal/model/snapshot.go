package model

import "time"

// Contents is the canonical serialized form of a test value.
type Contents string

// Format names the serializer that produced a snapshot.
type Format string

const (
	// FormatDebug is the canonical debug tree format.
	FormatDebug Format = "debug"
	// FormatYAML renders the value tree as YAML.
	FormatYAML Format = "yaml"
	// FormatText stores a string verbatim.
	FormatText Format = "text"
)

// Metadata is the header stored above the contents of a snapshot file.
// The yaml keys are part of the on-disk format and must not change.
type Metadata struct {
	Source     string       `yaml:"source,omitempty"`
	Expression string       `yaml:"expression,omitempty"`
	Package    string       `yaml:"package,omitempty"`
	Test       string       `yaml:"test,omitempty"`
	Ordinal    int          `yaml:"ordinal,omitempty"`
	Name       string       `yaml:"name,omitempty"`
	Format     Format       `yaml:"format,omitempty"`
	Kind       SnapshotKind `yaml:"snapshot_kind,omitempty"`
}

// Snapshot is an accepted reference value.
type Snapshot struct {
	Metadata Metadata
	Contents Contents
}

// PendingSnapshot is a candidate value awaiting review.
type PendingSnapshot struct {
	Identity  Identity
	Metadata  Metadata
	Contents  Contents
	Old       *Contents
	Anchor    *Anchor
	RunID     string
	CreatedAt time.Time
	Digest    string
	Path      Path
}

// IsInline reports whether accepting the pending snapshot rewrites source.
func (p PendingSnapshot) IsInline() bool {
	return p.Anchor != nil
}

// IdentityFromMetadata rebuilds the identity recorded in a header.
func IdentityFromMetadata(dir Path, md Metadata) Identity {
	return Identity{
		Dir:     dir,
		Package: md.Package,
		Test:    md.Test,
		Ordinal: md.Ordinal,
		Name:    md.Name,
	}
}
