package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "snapr.dev/pkg/snapr/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Lines used by the header and the help footer.
	chromeHeight = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// TUI implements UI using Bubble Tea for interactive review and lipgloss for
// coloured output.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, simple: NewSimpleUI(cmd)}
}

// DisplayPending prints the pending table.
func (t *TUI) DisplayPending(ctx context.Context, pendings []m.PendingSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(pendings) == 0 {
		t.printf("%s\n", mutedStyle.Render("no pending snapshots"))
		return nil
	}

	t.printf("%s\n%s", titleStyle.Render("Pending snapshots"), renderPendingTable(pendings))

	return nil
}

// DisplayDiff prints a coloured diff.
func (t *TUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s", colorizeDiff(diff))

	return nil
}

// DisplayReport prints coloured review totals.
func (t *TUI) DisplayReport(ctx context.Context, report m.ReviewReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s", titleStyle.Render(summarizeReport(report)))

	for _, f := range report.Failures {
		t.printf("  %s %s: %v\n", failStyle.Render("failed"), f.Identity.Key(), f.Err)
	}

	return nil
}

// Review runs a full screen review session.
func (t *TUI) Review(ctx context.Context, items []ReviewItem) ([]m.Decision, error) {
	if len(items) == 0 {
		return nil, nil
	}

	out := t.cmd.OutOrStdout()
	width, height := terminalSize(out)
	model := newReviewModel(items, width, height)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return model.decisions, fmt.Errorf("review session: %w", err)
	}

	rm, ok := final.(reviewModel)
	if !ok {
		return model.decisions, nil
	}

	return rm.decisions, nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return defaultWidth, defaultHeight
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

type reviewKeyMap struct {
	Accept    key.Binding
	Reject    key.Binding
	Skip      key.Binding
	AcceptAll key.Binding
	RejectAll key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Reject, k.Skip, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.Reject, k.Skip},
		{k.AcceptAll, k.RejectAll},
		{k.Up, k.Down, k.Quit},
	}
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Accept:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
		Reject:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reject")),
		Skip:      key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "skip")),
		AcceptAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "accept all")),
		RejectAll: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reject all")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// reviewModel is the Bubble Tea model of a review session.
type reviewModel struct {
	items     []ReviewItem
	decisions []m.Decision
	index     int
	viewport  viewport.Model
	help      help.Model
	keys      reviewKeyMap
	quitting  bool
}

func newReviewModel(items []ReviewItem, width, height int) reviewModel {
	rm := reviewModel{
		items:     items,
		decisions: make([]m.Decision, len(items)),
		viewport:  viewport.New(width, viewportHeight(height)),
		help:      help.New(),
		keys:      newReviewKeyMap(),
	}
	rm.help.Width = width
	rm.showCurrent()

	return rm
}

func viewportHeight(height int) int {
	if h := height - chromeHeight; h > 1 {
		return h
	}

	return 1
}

func (rm *reviewModel) showCurrent() {
	if rm.index < len(rm.items) {
		rm.viewport.SetContent(colorizeDiff(rm.items[rm.index].Diff))
		rm.viewport.GotoTop()
	}
}

func (rm reviewModel) Init() tea.Cmd {
	return nil
}

func (rm reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.viewport.Width = msg.Width
		rm.viewport.Height = viewportHeight(msg.Height)
		rm.help.Width = msg.Width

		return rm, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, rm.keys.Quit):
			rm.quitting = true
			return rm, tea.Quit
		case key.Matches(msg, rm.keys.Accept):
			return rm.decide(m.DecisionAccept, false)
		case key.Matches(msg, rm.keys.Reject):
			return rm.decide(m.DecisionReject, false)
		case key.Matches(msg, rm.keys.Skip):
			return rm.decide(m.DecisionSkip, false)
		case key.Matches(msg, rm.keys.AcceptAll):
			return rm.decide(m.DecisionAccept, true)
		case key.Matches(msg, rm.keys.RejectAll):
			return rm.decide(m.DecisionReject, true)
		}
	}

	var cmd tea.Cmd

	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

// decide records d for the current item, or for every remaining item when
// all is set, and advances.
func (rm reviewModel) decide(d m.Decision, all bool) (tea.Model, tea.Cmd) {
	end := rm.index + 1
	if all {
		end = len(rm.items)
	}

	for ; rm.index < end; rm.index++ {
		rm.decisions[rm.index] = d
	}

	if rm.index >= len(rm.items) {
		rm.quitting = true
		return rm, tea.Quit
	}

	rm.showCurrent()

	return rm, nil
}

func (rm reviewModel) View() string {
	if rm.quitting || rm.index >= len(rm.items) {
		return ""
	}

	item := rm.items[rm.index]

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		titleStyle.Render(fmt.Sprintf("Reviewing %d/%d", rm.index+1, len(rm.items))),
		item.Pending.Identity.Key())
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(rm.viewport.Width, 1))))
	b.WriteString("\n")
	b.WriteString(rm.viewport.View())
	b.WriteString("\n")
	b.WriteString(rm.help.View(rm.keys))

	return b.String()
}
