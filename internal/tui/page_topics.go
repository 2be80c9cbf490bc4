package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stateprimer/primer/internal/paginator"
)

// TopicsPage lists every topic in the catalog. Enter opens the detail page
// for the topic under the cursor.
type TopicsPage struct {
	nav  *Navigator
	keys KeyMap

	snap      paginator.Snapshot
	cursor    int
	showHelp  bool
	showStats bool
}

// NewTopicsPage creates the topic list page.
func NewTopicsPage(nav *Navigator) *TopicsPage {
	return &TopicsPage{
		nav:  nav,
		keys: DefaultKeyMap(),
		snap: nav.Snapshot(),
	}
}

func (p *TopicsPage) ID() string { return "topics" }

func (p *TopicsPage) Init() tea.Cmd {
	p.snap = p.nav.Snapshot()
	p.clampCursor()
	return nil
}

func (p *TopicsPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		p.snap = paginator.Snapshot(msg)
		// Keep the list cursor on the current topic so returning from the
		// detail page lands where the user left off.
		if _, ok := p.snap.Current(); ok {
			p.cursor = p.snap.Index
		}
		p.clampCursor()
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil, nil
}

func (p *TopicsPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	k := p.keys

	// An open overlay captures keys until dismissed.
	if p.showHelp {
		if key.Matches(msg, k.Help) || key.Matches(msg, k.Back) || key.Matches(msg, k.Quit) {
			p.showHelp = false
		}
		return nil, nil
	}
	if p.showStats {
		if key.Matches(msg, k.Stats) || key.Matches(msg, k.Back) || key.Matches(msg, k.Quit) {
			p.showStats = false
		}
		return nil, nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit, nil

	case key.Matches(msg, k.Help):
		p.showHelp = true

	case key.Matches(msg, k.Stats):
		p.showStats = true

	case key.Matches(msg, k.Travel):
		return nil, &PageNav{PageID: "travel"}

	case key.Matches(msg, k.Up):
		p.moveCursor(-1)

	case key.Matches(msg, k.Down):
		p.moveCursor(1)

	case key.Matches(msg, k.Enter):
		if p.cursor >= 0 && p.cursor < len(p.snap.Topics) {
			p.nav.Select(p.snap.Topics[p.cursor].ID)
			return nil, &PageNav{PageID: "detail"}
		}
	}
	return nil, nil
}

func (p *TopicsPage) moveCursor(delta int) {
	if len(p.snap.Topics) == 0 {
		return
	}
	next := p.cursor + delta
	if next < 0 {
		next = 0
	} else if next >= len(p.snap.Topics) {
		next = len(p.snap.Topics) - 1
	}
	p.cursor = next
}

func (p *TopicsPage) clampCursor() {
	if p.cursor >= len(p.snap.Topics) {
		p.cursor = max(0, len(p.snap.Topics)-1)
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *TopicsPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	if p.showHelp {
		return p.renderHelp(width, height)
	}
	if p.showStats {
		return renderStatsOverlay(p.nav, p.snap, width, height)
	}

	title := titleStyle.Render("State Patterns Primer")

	var body string
	if len(p.snap.Topics) == 0 {
		body = helpStyle.Render("No topics found. Check the catalog file.")
	} else {
		lines := make([]string, 0, len(p.snap.Topics))
		for i, tp := range p.snap.Topics {
			line := fmt.Sprintf("%d. %s", i+1, tp.Title)
			if i == p.cursor {
				line = selectedItemStyle.Render("> " + line)
			} else {
				line = itemStyle.Render("  " + line)
			}
			summary := summaryStyle.Render("     " + firstLine(tp.Summary, width-6))
			lines = append(lines, line, summary)
		}
		body = strings.Join(lines, "\n")
	}

	status := p.renderStatus(width)
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body)

	gap := height - lipgloss.Height(content) - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, status)
}

func (p *TopicsPage) renderStatus(width int) string {
	hints := []string{
		p.keys.Up.Help().Key + "/" + p.keys.Down.Help().Key + " move",
		"enter open",
		"t travel demo",
		"s stats",
		"? help",
		"q quit",
	}
	return statusStyle.Width(width).Render(" " + strings.Join(hints, " • "))
}

func (p *TopicsPage) renderHelp(width, height int) string {
	content := `Topic List

NAVIGATION:
  up/down or k/j - Move selection
  Enter          - Open the selected topic

PAGES:
  t              - Travel recommendations demo
  s              - Per-topic visit counts

GENERAL:
  ?              - Toggle this help
  esc            - Close overlay / go back
  q/Ctrl+C       - Quit`

	modal := modalStyle.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

// firstLine truncates s to its first line, capped at width runes.
func firstLine(s string, width int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if width <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return s
}
