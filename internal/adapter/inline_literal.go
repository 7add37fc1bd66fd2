package adapter

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	m "snapr.dev/pkg/snapr/internal/model"
)

// RenderInlineLiteral returns Go source for a literal holding contents.
//
// Single-line contents are double-quoted. Multi-line contents become a raw
// string block whose lines sit one tab deeper than indent, the indentation of
// the call line. Contents a block cannot reproduce exactly are double-quoted.
func RenderInlineLiteral(contents m.Contents, indent string) string {
	s := string(contents)
	if !blockRenderable(s) {
		return strconv.Quote(s)
	}

	var b strings.Builder

	b.WriteString("`\n")

	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			b.WriteString(indent)
			b.WriteString("\t")
			b.WriteString(strings.ReplaceAll(line, "`", "` + \"`\" + `"))
		}

		b.WriteString("\n")
	}

	b.WriteString(indent)
	b.WriteString("`")

	return b.String()
}

// ParseInlineLiteral evaluates a literal expression as written in source and
// returns the snapshot contents it holds. Raw string blocks are normalized
// with NormalizeInline; double-quoted values are taken verbatim.
func ParseInlineLiteral(literal string) (m.Contents, error) {
	expr, err := parser.ParseExpr(literal)
	if err != nil {
		return "", fmt.Errorf("parse inline literal: %w", err)
	}

	var b strings.Builder
	if err := concatLiteral(expr, &b); err != nil {
		return "", err
	}

	if !strings.HasPrefix(strings.TrimLeft(literal, "( \t"), "`") {
		return m.Contents(b.String()), nil
	}

	return NormalizeInline(b.String()), nil
}

func concatLiteral(expr ast.Expr, b *strings.Builder) error {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.STRING {
			return fmt.Errorf("inline literal: unexpected %s: %w", e.Kind, m.ErrNoInlineLiteral)
		}

		s, err := strconv.Unquote(e.Value)
		if err != nil {
			return fmt.Errorf("unquote inline literal: %w", err)
		}

		b.WriteString(s)

		return nil
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return fmt.Errorf("inline literal: unexpected operator %s: %w", e.Op, m.ErrNoInlineLiteral)
		}

		if err := concatLiteral(e.X, b); err != nil {
			return err
		}

		return concatLiteral(e.Y, b)
	case *ast.ParenExpr:
		return concatLiteral(e.X, b)
	}

	return fmt.Errorf("inline literal: unexpected expression: %w", m.ErrNoInlineLiteral)
}

// NormalizeInline undoes the block layout of RenderInlineLiteral: the leading
// newline, the blank last line and the common indentation are removed.
func NormalizeInline(s string) m.Contents {
	if !strings.HasPrefix(s, "\n") {
		return m.Contents(s)
	}

	lines := strings.Split(s[1:], "\n")

	if last := lines[len(lines)-1]; strings.TrimLeft(last, " \t") == "" {
		lines = lines[:len(lines)-1]
	}

	prefix, found := commonIndent(lines)

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, prefix):
			lines[i] = line[len(prefix):]
		case found && strings.TrimLeft(line, " \t") == "":
			lines[i] = ""
		}
	}

	return m.Contents(strings.Join(lines, "\n"))
}

// commonIndent returns the longest blank prefix shared by all non-blank lines.
func commonIndent(lines []string) (string, bool) {
	var (
		prefix string
		found  bool
	)

	for _, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}

		n := 0
		for n < len(prefix) && n < len(indent) && prefix[n] == indent[n] {
			n++
		}

		prefix = prefix[:n]
	}

	return prefix, found
}

// blockRenderable reports whether NormalizeInline(block(s)) == s.
func blockRenderable(s string) bool {
	if !strings.Contains(s, "\n") || strings.HasSuffix(s, "\n") {
		return false
	}

	unindented := false

	for _, line := range strings.Split(s, "\n") {
		if strings.TrimRight(line, " \t") != line {
			return false
		}

		for _, r := range line {
			if r != '\t' && !unicode.IsPrint(r) {
				return false
			}
		}

		if line != "" && line[0] != ' ' && line[0] != '\t' {
			unindented = true
		}
	}

	return unindented
}
