package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stateprimer/primer/internal/paginator"
)

// DetailPage renders the current topic with paging controls. It reads only
// snapshots; all mutation goes through the navigator's intents.
type DetailPage struct {
	nav  *Navigator
	keys KeyMap

	snap     paginator.Snapshot
	showHelp bool
}

// NewDetailPage creates the topic detail page.
func NewDetailPage(nav *Navigator) *DetailPage {
	return &DetailPage{
		nav:  nav,
		keys: DefaultKeyMap(),
		snap: nav.Snapshot(),
	}
}

func (p *DetailPage) ID() string { return "detail" }

func (p *DetailPage) Init() tea.Cmd {
	p.snap = p.nav.Snapshot()
	return nil
}

func (p *DetailPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		p.snap = paginator.Snapshot(msg)
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil, nil
}

func (p *DetailPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	k := p.keys

	if p.showHelp {
		if key.Matches(msg, k.Help) || key.Matches(msg, k.Back) || key.Matches(msg, k.Quit) {
			p.showHelp = false
		}
		return nil, nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit, nil

	case key.Matches(msg, k.Help):
		p.showHelp = true

	case key.Matches(msg, k.Back):
		return nil, &PageNav{PageID: "topics"}

	case key.Matches(msg, k.Next):
		p.nav.Advance()

	case key.Matches(msg, k.Prev):
		p.nav.Retreat()
	}
	return nil, nil
}

func (p *DetailPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}

	if p.showHelp {
		return p.renderHelp(width, height)
	}

	cur, ok := p.snap.Current()
	if !ok {
		placeholder := helpStyle.Render("Topic not found.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, placeholder)
	}

	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	position := summaryStyle.Render(fmt.Sprintf("Topic %d of %d", p.snap.Index+1, len(p.snap.Topics)))
	title := titleStyle.Render(cur.Title)
	summary := itemStyle.Width(contentWidth).Render(cur.Summary)

	var highlights []string
	for _, hl := range cur.Highlights {
		highlights = append(highlights, highlightStyle.Render("  • ")+itemStyle.Render(hl))
	}

	sections := []string{position, title, "", summary}
	if len(highlights) > 0 {
		sections = append(sections, "", strings.Join(highlights, "\n"))
	}
	if cur.CodeHint != "" {
		code := codeBoxStyle.Width(min(contentWidth, 72)).Render(strings.TrimRight(cur.CodeHint, "\n"))
		sections = append(sections, "", code)
	}
	sections = append(sections, "", p.renderPager())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	status := p.renderStatus(width)

	gap := height - lipgloss.Height(content) - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, status)
}

// renderPager shows the prev/next controls, dimmed at the boundaries.
func (p *DetailPage) renderPager() string {
	prev := "← previous"
	if p.snap.CanRetreat() {
		prev = highlightStyle.Render(prev)
	} else {
		prev = dimStyle.Render(prev)
	}

	next := "next →"
	if p.snap.CanAdvance() {
		next = highlightStyle.Render(next)
	} else {
		next = dimStyle.Render(next)
	}

	return prev + "    " + next
}

func (p *DetailPage) renderStatus(width int) string {
	hints := []string{
		"→/l/n next",
		"←/h/p previous",
		"esc back to list",
		"? help",
		"q quit",
	}
	return statusStyle.Width(width).Render(" " + strings.Join(hints, " • "))
}

func (p *DetailPage) renderHelp(width, height int) string {
	content := `Topic Detail

PAGING:
  right/l/n - Next topic (ignored on the last one)
  left/h/p  - Previous topic (ignored on the first one)

GENERAL:
  esc       - Back to the topic list
  ?         - Toggle this help
  q/Ctrl+C  - Quit`

	modal := modalStyle.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
