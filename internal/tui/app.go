package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stateprimer/primer/internal/paginator"
)

// App is the top-level Bubble Tea model that routes between pages. It owns
// the snapshot subscription: every published snapshot re-renders the active
// page, and the listen command is re-armed after each delivery.
type App struct {
	nav        *Navigator
	pages      map[string]Page
	activePage string
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(nav *Navigator, pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		nav:        nav,
		pages:      pageMap,
		activePage: firstID,
	}
}

// SetStartPage overrides which page the app opens on.
func (a *App) SetStartPage(id string) {
	if _, ok := a.pages[id]; ok {
		a.activePage = id
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.nav.Listen()}
	if p, ok := a.pages[a.activePage]; ok {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case SnapshotMsg:
		a.nav.Observe(paginator.Snapshot(msg))
		// Deliver to the active page below, then wait for the next one.
		cmd, nav := a.updateActive(msg)
		return a.applyNav(nav, tea.Batch(cmd, a.nav.Listen()))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	cmd, nav := a.updateActive(msg)
	return a.applyNav(nav, cmd)
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}

func (a *App) updateActive(msg tea.Msg) (tea.Cmd, *PageNav) {
	p, ok := a.pages[a.activePage]
	if !ok {
		return nil, nil
	}
	return p.Update(msg)
}

func (a *App) applyNav(nav *PageNav, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if nav == nil {
		return a, cmd
	}
	if _, exists := a.pages[nav.PageID]; !exists {
		return a, cmd
	}
	a.activePage = nav.PageID
	initCmd := a.pages[a.activePage].Init()
	return a, tea.Batch(cmd, initCmd)
}
