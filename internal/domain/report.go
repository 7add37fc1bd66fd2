package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "snapr.dev/pkg/snapr/internal/model"
)

const diffContext = 3

// RenderDiff returns a unified diff from reference to actual. Both sides are
// normalized first so the diff never shows line-ending noise.
func RenderDiff(reference, actual m.Contents) string {
	diff := difflib.UnifiedDiff{
		A:        splitLines(Normalize(reference)),
		B:        splitLines(Normalize(actual)),
		FromFile: "reference",
		ToFile:   "actual",
		Context:  diffContext,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("diff unavailable: %v\n", err)
	}

	return text
}

func splitLines(c m.Contents) []string {
	if c == "" {
		return nil
	}

	return difflib.SplitLines(string(c))
}

// RenderOutcome renders a failed assertion: what was compared, the diff and
// how to resolve it.
func RenderOutcome(o m.Outcome) string {
	var b strings.Builder

	switch o.Kind {
	case m.Match:
		fmt.Fprintf(&b, "snapshot %s matches\n", o.Identity.Key())
		return b.String()
	case m.NewSnapshot:
		fmt.Fprintf(&b, "new snapshot %s\n", o.Identity.Key())
	case m.Mismatch:
		fmt.Fprintf(&b, "snapshot %s does not match\n", o.Identity.Key())
	}

	writeHeader(&b, o.Metadata, o.Anchor)

	b.WriteString("\n")

	if o.Reference == nil {
		b.WriteString("+new results\n")
		b.WriteString(indentBlock(string(o.Actual), "+ "))
	} else {
		b.WriteString(RenderDiff(*o.Reference, o.Actual))
	}

	b.WriteString("\n")

	if o.Pending != "" {
		fmt.Fprintf(&b, "pending snapshot written to %s\n", o.Pending)
	}

	b.WriteString("review with `snapr review`, or run `snapr accept` / `snapr reject`\n")
	b.WriteString("set SNAPR_UPDATE=force to accept new results immediately\n")

	return b.String()
}

// RenderPending renders a pending snapshot for review: its header and the
// diff against the reference it would replace.
func RenderPending(p m.PendingSnapshot, reference *m.Contents) string {
	var b strings.Builder

	fmt.Fprintf(&b, "snapshot %s\n", p.Identity.Key())
	writeHeader(&b, p.Metadata, p.Anchor)

	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "  recorded:   %s (run %s)\n", p.CreatedAt.Local().Format("2006-01-02 15:04:05"), p.RunID)
	}

	b.WriteString("\n")

	if reference == nil {
		b.WriteString("+new results\n")
		b.WriteString(indentBlock(string(p.Contents), "+ "))

		return b.String()
	}

	b.WriteString(RenderDiff(*reference, p.Contents))

	return b.String()
}

func writeHeader(b *strings.Builder, md m.Metadata, anchor *m.Anchor) {
	switch {
	case anchor != nil:
		fmt.Fprintf(b, "  source:     %s:%d\n", anchor.File, anchor.Line)
	case md.Source != "":
		fmt.Fprintf(b, "  source:     %s\n", md.Source)
	}

	if md.Expression != "" {
		fmt.Fprintf(b, "  expression: %s\n", md.Expression)
	}
}

func indentBlock(s, prefix string) string {
	if s == "" {
		return prefix + "\n"
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n") + "\n"
}
