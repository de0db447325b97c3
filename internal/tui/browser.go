// Package tui provides the interactive version-history browser for
// promptforge.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptforge/promptforge/internal/versions"
	"github.com/promptforge/promptforge/pkg/models"
)

// Browser is a bubbletea model that shows a prompt's version history on
// the left and the positional diff of the selected version against the
// current version on the right. Versions can be promoted or deleted
// without leaving the browser.
type Browser struct {
	mgr      *versions.Manager
	userID   string
	promptID string

	history  *models.VersionHistory
	selected int
	diffPane viewport.Model
	width    int
	height   int
	status   string
	err      error

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	itemStyle     lipgloss.Style
	currentStyle  lipgloss.Style
	addStyle      lipgloss.Style
	removeStyle   lipgloss.Style
	contextStyle  lipgloss.Style
	statusStyle   lipgloss.Style
}

// NewBrowser creates a Browser for one prompt's history.
func NewBrowser(mgr *versions.Manager, userID, promptID string) *Browser {
	return &Browser{
		mgr:      mgr,
		userID:   userID,
		promptID: promptID,
		diffPane: viewport.New(80, 20),
		width:    100,
		height:   30,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")),
		itemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		currentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),
		addStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		removeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		contextStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	b.reload()
	return nil
}

// reload refreshes the history and the diff pane.
func (b *Browser) reload() {
	history, err := b.mgr.GetHistory(b.userID, b.promptID)
	if err != nil {
		b.err = err
		return
	}
	b.history = history
	if b.selected >= len(history.Versions) {
		b.selected = len(history.Versions) - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
	b.refreshDiff()
}

// refreshDiff renders the diff of the selected version against the
// current version into the right-hand pane.
func (b *Browser) refreshDiff() {
	if b.history == nil || b.history.CurrentVersion == nil {
		return
	}
	sel := b.history.Versions[b.selected]

	if sel.ID == b.history.CurrentVersion.ID {
		b.diffPane.SetContent(b.contextStyle.Render("This is the current version.") + "\n\n" + sel.Content)
		return
	}

	entries := versions.Diff(b.history.CurrentVersion.Content, sel.Content)
	var sb strings.Builder
	for _, e := range entries {
		switch e.Type {
		case models.DiffAdded:
			sb.WriteString(b.addStyle.Render(fmt.Sprintf("+%4d %s", e.LineNumber, e.Content)))
		case models.DiffRemoved:
			sb.WriteString(b.removeStyle.Render(fmt.Sprintf("-%4d %s", e.LineNumber, e.Content)))
		default:
			sb.WriteString(b.contextStyle.Render(fmt.Sprintf(" %4d %s", e.LineNumber, e.Content)))
		}
		sb.WriteString("\n")
	}
	b.diffPane.SetContent(sb.String())
	b.diffPane.GotoTop()
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.diffPane.Width = b.width - listWidth - 3
		b.diffPane.Height = b.height - 4
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.selected > 0 {
				b.selected--
				b.refreshDiff()
			}
		case "down", "j":
			if b.history != nil && b.selected < len(b.history.Versions)-1 {
				b.selected++
				b.refreshDiff()
			}
		case "enter", "p":
			b.promoteSelected()
		case "d":
			b.deleteSelected()
		case "pgup":
			b.diffPane.HalfPageUp()
		case "pgdown", " ":
			b.diffPane.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	b.diffPane, cmd = b.diffPane.Update(msg)
	return b, cmd
}

func (b *Browser) promoteSelected() {
	if b.history == nil {
		return
	}
	sel := b.history.Versions[b.selected]
	if _, err := b.mgr.SetCurrentVersion(b.userID, sel.ID); err != nil {
		b.status = err.Error()
		return
	}
	b.status = fmt.Sprintf("version %d is now current", sel.VersionNumber)
	b.reload()
}

func (b *Browser) deleteSelected() {
	if b.history == nil {
		return
	}
	sel := b.history.Versions[b.selected]
	if err := b.mgr.DeleteVersion(b.userID, sel.ID); err != nil {
		b.status = err.Error()
		return
	}
	b.status = fmt.Sprintf("deleted version %d", sel.VersionNumber)
	b.reload()
}

const listWidth = 34

// View implements tea.Model.
func (b *Browser) View() string {
	if b.err != nil {
		return fmt.Sprintf("error: %v\n\npress q to quit\n", b.err)
	}
	if b.history == nil {
		return "loading...\n"
	}

	var list strings.Builder
	list.WriteString(b.titleStyle.Render(fmt.Sprintf("Versions (%d)", b.history.TotalVersions)))
	list.WriteString("\n")
	for i, v := range b.history.Versions {
		marker := "  "
		if v.IsCurrent {
			marker = "* "
		}
		line := fmt.Sprintf("%sv%-3d %s", marker, v.VersionNumber, truncateLine(v.Title, listWidth-10))
		switch {
		case i == b.selected:
			line = b.selectedStyle.Render(line)
		case v.IsCurrent:
			line = b.currentStyle.Render(line)
		default:
			line = b.itemStyle.Render(line)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	left := lipgloss.NewStyle().Width(listWidth).Render(list.String())
	right := b.diffPane.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	help := b.contextStyle.Render("j/k: select  enter: promote  d: delete  space: scroll diff  q: quit")
	status := ""
	if b.status != "" {
		status = b.statusStyle.Render(b.status) + "\n"
	}

	return body + "\n" + status + help + "\n"
}

func truncateLine(s string, n int) string {
	if n < 4 {
		n = 4
	}
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

// Run starts the browser and blocks until the user quits.
func Run(mgr *versions.Manager, userID, promptID string) error {
	p := tea.NewProgram(NewBrowser(mgr, userID, promptID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
