package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Identity correlates one snapshot assertion across runs.
//
// Dir is the directory of the test source file, Test is the full test name as
// reported by testing.T.Name (subtests included). A snapshot is either
// auto-numbered (Ordinal, 1-based, assigned in call order within one test) or
// explicitly named (Name).
type Identity struct {
	Dir     Path
	Package string
	Test    string
	Ordinal int
	Name    string
}

// Stem returns the collision-free file stem for the identity.
//
// Every "/"-separated test component is escaped so that only [A-Za-z0-9_-]
// remain literal; subtests map to sub-directories. Ordinals greater than one
// are appended as ".N" and names as "@name". Since "." "@" and "%" never
// survive escaping, distinct identities never share a stem.
func (id Identity) Stem() string {
	parts := strings.Split(id.Test, "/")
	for i, part := range parts {
		parts[i] = escapeComponent(part)
	}

	stem := strings.Join(parts, "/")

	switch {
	case id.Name != "":
		stem += "@" + escapeComponent(id.Name)
	case id.Ordinal > 1:
		stem += "." + strconv.Itoa(id.Ordinal)
	}

	return stem
}

// Key returns a stable, human readable key: the test directory joined with
// the stem, using forward slashes.
func (id Identity) Key() string {
	return filepath.ToSlash(filepath.Join(string(id.Dir), id.Stem()))
}

// String implements fmt.Stringer.
func (id Identity) String() string {
	if id.Name != "" {
		return fmt.Sprintf("%s@%s", id.Test, id.Name)
	}

	return fmt.Sprintf("%s#%d", id.Test, id.ordinal())
}

func (id Identity) ordinal() int {
	if id.Ordinal < 1 {
		return 1
	}

	return id.Ordinal
}

func escapeComponent(s string) string {
	if s == "" {
		return "%"
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSafeByte(c) {
			b.WriteByte(c)
			continue
		}

		fmt.Fprintf(&b, "%%%02X", c)
	}

	return b.String()
}

func isSafeByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}

	return false
}
