package domain

import (
	"strings"

	m "snapr.dev/pkg/snapr/internal/model"
)

// Normalize makes contents insensitive to platform line endings and trailing
// whitespace: CRLF and CR become LF, trailing blanks are cut from every line
// and trailing empty lines are dropped.
func Normalize(c m.Contents) m.Contents {
	s := strings.ReplaceAll(string(c), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}

	return m.Contents(strings.Join(lines[:end], "\n"))
}

// Compare classifies actual against reference. A nil reference yields a
// NewSnapshot outcome; otherwise both sides are normalized before comparing.
func Compare(actual m.Contents, reference *m.Contents) m.Outcome {
	outcome := m.Outcome{Actual: actual, Reference: reference}

	switch {
	case reference == nil:
		outcome.Kind = m.NewSnapshot
	case Normalize(actual) == Normalize(*reference):
		outcome.Kind = m.Match
	default:
		outcome.Kind = m.Mismatch
	}

	return outcome
}
