// Package controller presents pending snapshots and collects review decisions.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "snapr.dev/pkg/snapr/internal/model"
)

// ReviewItem is one pending snapshot presented for review together with its
// rendered diff.
type ReviewItem struct {
	Pending m.PendingSnapshot
	Diff    string
}

// UI defines how the CLI talks to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayPending lists pending snapshots.
	DisplayPending(ctx context.Context, pendings []m.PendingSnapshot) error
	// DisplayDiff prints the rendered diff of one pending snapshot.
	DisplayDiff(ctx context.Context, diff string) error
	// DisplayReport summarizes a batch review.
	DisplayReport(ctx context.Context, report m.ReviewReport) error
	// Review asks for a decision on every item. The result has one decision
	// per item; items left when the user quits are skipped.
	Review(ctx context.Context, items []ReviewItem) ([]m.Decision, error)
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
