package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapr.dev/pkg/snapr/internal/domain"
	m "snapr.dev/pkg/snapr/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   m.Contents
		want m.Contents
	}{
		{"empty", "", ""},
		{"plain", "a\nb", "a\nb"},
		{"crlf", "a\r\nb\r\n", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"trailing blanks", "a  \nb\t\n", "a\nb"},
		{"trailing empty lines", "a\n\n\n", "a"},
		{"leading blanks kept", "  a\n\tb", "  a\n\tb"},
		{"inner empty line kept", "a\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Normalize(tt.in))
		})
	}
}

func TestCompare(t *testing.T) {
	t.Run("nil reference is new", func(t *testing.T) {
		outcome := domain.Compare("1", nil)
		assert.Equal(t, m.NewSnapshot, outcome.Kind)
		assert.Nil(t, outcome.Reference)
		assert.Equal(t, m.Contents("1"), outcome.Actual)
	})

	t.Run("equal after normalization matches", func(t *testing.T) {
		ref := m.Contents("a\r\nb  \r\n")
		outcome := domain.Compare("a\nb", &ref)
		assert.Equal(t, m.Match, outcome.Kind)
	})

	t.Run("different is mismatch", func(t *testing.T) {
		ref := m.Contents("a\nb")
		outcome := domain.Compare("a\nc", &ref)
		assert.Equal(t, m.Mismatch, outcome.Kind)
		require.NotNil(t, outcome.Reference)
		assert.Equal(t, ref, *outcome.Reference)
	})

	t.Run("empty reference is not a match for content", func(t *testing.T) {
		ref := m.Contents("")
		assert.Equal(t, m.Mismatch, domain.Compare("x", &ref).Kind)
		assert.Equal(t, m.Match, domain.Compare("\n", &ref).Kind)
	})
}
