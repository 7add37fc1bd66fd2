package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	m "snapr.dev/pkg/snapr/internal/model"
)

// InlineFunc is the name of the assertion whose last argument holds an
// inline snapshot literal.
const InlineFunc = "MatchInline"

// GoFileAdapter encapsulates Go-specific parsing so the stores can locate
// inline snapshot literals without knowing about go/ast.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// FindInlineLiteral locates the literal argument of the MatchInline call
	// that spans line and returns its anchor.
	FindInlineLiteral(ctx context.Context, filename string, src []byte, line int) (m.Anchor, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(ctx context.Context, fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
}

// FindInlineLiteral walks the file for MatchInline calls covering line. When
// calls nest, the one starting closest to line wins.
func (a *LocalGoFileAdapter) FindInlineLiteral(ctx context.Context, filename string, src []byte, line int) (m.Anchor, error) {
	fset := token.NewFileSet()

	file, err := a.Parse(ctx, fset, filename, src)
	if err != nil {
		return m.Anchor{}, fmt.Errorf("parse %s: %w", filename, err)
	}

	var (
		best      *ast.CallExpr
		bestStart int
	)

	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || !isInlineCall(call) {
			return true
		}

		start := fset.Position(call.Pos()).Line
		end := fset.Position(call.End()).Line

		if line < start || line > end {
			return true
		}

		if best == nil || start > bestStart {
			best, bestStart = call, start
		}

		return true
	})

	if best == nil {
		return m.Anchor{}, fmt.Errorf("%s:%d: %w", filename, line, m.ErrNoInlineLiteral)
	}

	lit := best.Args[len(best.Args)-1]
	if !isStringChain(lit) {
		return m.Anchor{}, fmt.Errorf("%s:%d: last argument is not a string literal: %w", filename, line, m.ErrNoInlineLiteral)
	}

	pos := fset.Position(lit.Pos())
	start := pos.Offset
	end := fset.Position(lit.End()).Offset

	return m.Anchor{
		File:    m.Path(filename),
		Line:    pos.Line,
		Column:  pos.Column,
		Start:   start,
		End:     end,
		Literal: string(src[start:end]),
		Indent:  lineIndent(src, fset.Position(best.Pos()).Offset),
	}, nil
}

func isInlineCall(call *ast.CallExpr) bool {
	if len(call.Args) == 0 {
		return false
	}

	switch fn := call.Fun.(type) {
	case *ast.SelectorExpr:
		return fn.Sel.Name == InlineFunc
	case *ast.Ident:
		return fn.Name == InlineFunc
	}

	return false
}

// isStringChain reports whether expr is a string literal or a "+" chain of
// string literals, optionally parenthesized.
func isStringChain(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Kind == token.STRING
	case *ast.BinaryExpr:
		return e.Op == token.ADD && isStringChain(e.X) && isStringChain(e.Y)
	case *ast.ParenExpr:
		return isStringChain(e.X)
	}

	return false
}

// lineIndent returns the leading blanks of the line containing offset.
func lineIndent(src []byte, offset int) string {
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}

	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return string(src[start:end])
}
