package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "snapr.dev/pkg/snapr/internal/model"
)

// SimpleUI implements UI using the cobra command's streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPending prints a table of pending snapshots.
func (s *SimpleUI) DisplayPending(ctx context.Context, pendings []m.PendingSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(pendings) == 0 {
		s.printf("no pending snapshots\n")
		return nil
	}

	s.printf("%s", renderPendingTable(pendings))

	return nil
}

func renderPendingTable(pendings []m.PendingSnapshot) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Snapshot", "Kind", "Source", "Recorded"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, p := range pendings {
		table.Append([]string{p.Identity.Key(), kindLabel(p), sourceLabel(p), recordedLabel(p)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(pendings)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func kindLabel(p m.PendingSnapshot) string {
	if p.IsInline() {
		return string(m.KindInline)
	}

	return string(m.KindFile)
}

func sourceLabel(p m.PendingSnapshot) string {
	if p.Anchor != nil {
		return fmt.Sprintf("%s:%d", filepath.Base(string(p.Anchor.File)), p.Anchor.Line)
	}

	return p.Metadata.Source
}

func recordedLabel(p m.PendingSnapshot) string {
	if p.CreatedAt.IsZero() {
		return ""
	}

	return p.CreatedAt.Local().Format("2006-01-02 15:04:05")
}

// DisplayDiff prints a diff as is.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", diff)

	return nil
}

// DisplayReport prints review totals followed by every failure.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.ReviewReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", summarizeReport(report))

	for _, f := range report.Failures {
		s.printf("  failed %s: %v\n", f.Identity.Key(), f.Err)
	}

	return nil
}

func summarizeReport(report m.ReviewReport) string {
	return fmt.Sprintf("accepted %d, rejected %d, skipped %d, failed %d\n",
		len(report.Accepted), len(report.Rejected), len(report.Skipped), len(report.Failures))
}

// Review prompts for each item on the command's input. End of input skips
// the remaining items.
func (s *SimpleUI) Review(ctx context.Context, items []ReviewItem) ([]m.Decision, error) {
	decisions := make([]m.Decision, len(items))
	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	var sticky *m.Decision

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return decisions, err
		}

		if sticky != nil {
			decisions[i] = *sticky
			continue
		}

		s.printf("\n[%d/%d] %s", i+1, len(items), item.Diff)

		decision, all, quit := s.prompt(scanner)
		if quit {
			break
		}

		decisions[i] = decision

		if all {
			sticky = &decision
		}
	}

	return decisions, nil
}

// prompt reads answers until one is valid. It reports whether the answer
// applies to all remaining items and whether the user quit.
func (s *SimpleUI) prompt(scanner *bufio.Scanner) (m.Decision, bool, bool) {
	for {
		s.printf("accept (a), reject (r), skip (s), accept all (A), reject all (R), quit (q)? ")

		if !scanner.Scan() {
			s.printf("\n")
			return m.DecisionSkip, false, true
		}

		switch answer := strings.TrimSpace(scanner.Text()); answer {
		case "a", "accept":
			return m.DecisionAccept, false, false
		case "r", "reject":
			return m.DecisionReject, false, false
		case "s", "skip", "":
			return m.DecisionSkip, false, false
		case "A":
			return m.DecisionAccept, true, false
		case "R":
			return m.DecisionReject, true, false
		case "q", "quit":
			return m.DecisionSkip, false, true
		default:
			s.printf("unknown answer %q\n", answer)
		}
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
