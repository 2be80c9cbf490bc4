package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stateprimer/primer/internal/catalog"
	"github.com/stateprimer/primer/internal/paginator"
)

func testNavigator(t *testing.T, n int) *Navigator {
	t.Helper()

	topics := make([]catalog.Topic, n)
	for i := range topics {
		topics[i] = catalog.Topic{
			ID:      fmt.Sprintf("t%d", i),
			Title:   fmt.Sprintf("Topic %d", i),
			Summary: "summary",
		}
	}
	c, err := catalog.New(topics)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	nav := NewNavigator(paginator.New(c), nil)
	t.Cleanup(nav.Close)
	return nav
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTopicsPageCursorClampsAtBounds(t *testing.T) {
	t.Parallel()

	p := NewTopicsPage(testNavigator(t, 3))

	p.Update(keyRune('k')) // up at index 0
	if p.cursor != 0 {
		t.Fatalf("cursor = %d after up at top, want 0", p.cursor)
	}

	for i := 0; i < 5; i++ {
		p.Update(keyRune('j'))
	}
	if p.cursor != 2 {
		t.Fatalf("cursor = %d after repeated down, want 2", p.cursor)
	}
}

func TestTopicsPageEnterSelectsAndNavigates(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 3)
	p := NewTopicsPage(nav)

	p.Update(keyRune('j'))
	_, pageNav := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if pageNav == nil || pageNav.PageID != "detail" {
		t.Fatalf("enter returned nav %+v, want detail", pageNav)
	}
	if cur, _ := nav.Snapshot().Current(); cur.ID != "t1" {
		t.Fatalf("current topic = %q, want t1", cur.ID)
	}
}

func TestTopicsPageFollowsSnapshots(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 4)
	p := NewTopicsPage(nav)

	nav.Advance()
	nav.Advance()
	p.Update(SnapshotMsg(nav.Snapshot()))

	if p.cursor != 2 {
		t.Fatalf("cursor = %d after snapshot at index 2, want 2", p.cursor)
	}
}

func TestTopicsPageEmptyCatalogPlaceholder(t *testing.T) {
	t.Parallel()

	p := NewTopicsPage(testNavigator(t, 0))

	out := p.View(80, 24)
	if !strings.Contains(out, "No topics found") {
		t.Fatal("empty-catalog view is missing the placeholder")
	}

	// Enter with nothing selected must not navigate.
	if _, pageNav := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); pageNav != nil {
		t.Fatalf("enter on empty catalog navigated to %q", pageNav.PageID)
	}
}

func TestDetailPagePagingIntents(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 3)
	p := NewDetailPage(nav)

	p.Update(keyRune('n'))
	if got := nav.Snapshot().Index; got != 1 {
		t.Fatalf("index = %d after next, want 1", got)
	}

	p.Update(keyRune('n'))
	p.Update(keyRune('n')) // boundary no-op
	if got := nav.Snapshot().Index; got != 2 {
		t.Fatalf("index = %d after paging past the end, want 2", got)
	}

	p.Update(keyRune('p'))
	if got := nav.Snapshot().Index; got != 1 {
		t.Fatalf("index = %d after previous, want 1", got)
	}
}

func TestDetailPageEscReturnsToList(t *testing.T) {
	t.Parallel()

	p := NewDetailPage(testNavigator(t, 2))

	_, pageNav := p.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if pageNav == nil || pageNav.PageID != "topics" {
		t.Fatalf("esc returned nav %+v, want topics", pageNav)
	}
}

func TestDetailPageRendersCurrentTopic(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 3)
	nav.Select("t2")

	p := NewDetailPage(nav)
	p.Init()

	out := p.View(80, 30)
	if !strings.Contains(out, "Topic 2") {
		t.Fatal("detail view does not show the selected topic title")
	}
	if !strings.Contains(out, "3 of 3") {
		t.Fatal("detail view does not show the position indicator")
	}
}

func TestTravelPageEscReturnsToList(t *testing.T) {
	t.Parallel()

	p := NewTravelPage()

	_, pageNav := p.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if pageNav == nil || pageNav.PageID != "topics" {
		t.Fatalf("esc returned nav %+v, want topics", pageNav)
	}

	out := p.View(80, 40)
	if !strings.Contains(out, "Kyoto") {
		t.Fatal("travel view is missing its static content")
	}
}

func TestAppRoutesBetweenPages(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 3)
	app := NewApp(nav, NewTopicsPage(nav), NewDetailPage(nav), NewTravelPage())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if app.activePage != "topics" {
		t.Fatalf("start page = %q, want topics", app.activePage)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.activePage != "detail" {
		t.Fatalf("active page = %q after enter, want detail", app.activePage)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if app.activePage != "topics" {
		t.Fatalf("active page = %q after esc, want topics", app.activePage)
	}
}

func TestAppSetStartPage(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 1)
	app := NewApp(nav, NewTopicsPage(nav), NewTravelPage())

	app.SetStartPage("travel")
	if app.activePage != "travel" {
		t.Fatalf("active page = %q, want travel", app.activePage)
	}

	app.SetStartPage("missing")
	if app.activePage != "travel" {
		t.Fatal("unknown start page changed the active page")
	}
}

func TestNavigatorCountsVisits(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 3)

	nav.Observe(nav.Snapshot())
	nav.Advance()
	nav.Observe(nav.Snapshot())
	nav.Retreat()
	nav.Observe(nav.Snapshot())

	if got := nav.Visits("t0"); got != 2 {
		t.Fatalf("visits(t0) = %d, want 2", got)
	}
	if got := nav.Visits("t1"); got != 1 {
		t.Fatalf("visits(t1) = %d, want 1", got)
	}
}

func TestStatsOverlayRendersAllTopics(t *testing.T) {
	t.Parallel()

	nav := testNavigator(t, 2)
	nav.Observe(nav.Snapshot())

	out := renderStatsOverlay(nav, nav.Snapshot(), 100, 40)
	if !strings.Contains(out, "Topic Visits") {
		t.Fatal("stats overlay is missing its title")
	}
	for _, want := range []string{"Topic 0", "Topic 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats overlay legend is missing %q", want)
		}
	}
}
