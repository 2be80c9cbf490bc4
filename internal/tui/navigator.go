package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stateprimer/primer/internal/paginator"
	"github.com/stateprimer/primer/internal/session"
)

// SnapshotMsg carries a freshly published pagination snapshot into the
// program loop.
type SnapshotMsg paginator.Snapshot

// Navigator is the pages' handle on the state holder. It forwards intents
// to the paginator, records them in the optional session history, and owns
// the single subscription the program loop listens on. History failures are
// swallowed: persistence is best-effort and never blocks navigation.
type Navigator struct {
	pager   *paginator.Paginator
	history *session.History

	updates <-chan paginator.Snapshot
	cancel  func()

	// visits counts how often each topic has been the current one,
	// derived from observed snapshots.
	visits map[string]int
}

// NewNavigator wraps a paginator and an optional (nil-able) history.
func NewNavigator(pager *paginator.Paginator, history *session.History) *Navigator {
	updates, cancel := pager.Subscribe()
	return &Navigator{
		pager:   pager,
		history: history,
		updates: updates,
		cancel:  cancel,
		visits:  make(map[string]int),
	}
}

// Snapshot returns the current pagination state.
func (n *Navigator) Snapshot() paginator.Snapshot {
	return n.pager.Snapshot()
}

// Select issues a select-by-id intent.
func (n *Navigator) Select(id string) {
	n.pager.SelectByID(id)
	n.record(session.OpSelect, id)
}

// Advance issues an advance intent.
func (n *Navigator) Advance() {
	n.pager.Advance()
	n.record(session.OpAdvance, "")
}

// Retreat issues a retreat intent.
func (n *Navigator) Retreat() {
	n.pager.Retreat()
	n.record(session.OpRetreat, "")
}

// Listen returns a command that blocks until the paginator publishes a
// snapshot. The app re-arms it after every delivery.
func (n *Navigator) Listen() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-n.updates
		if !ok {
			return nil
		}
		return SnapshotMsg(snap)
	}
}

// Observe records a delivered snapshot for visit accounting.
func (n *Navigator) Observe(snap paginator.Snapshot) {
	if cur, ok := snap.Current(); ok {
		n.visits[cur.ID]++
	}
}

// Visits returns the visit count for a topic id.
func (n *Navigator) Visits(id string) int {
	return n.visits[id]
}

// Close cancels the subscription and closes the history.
func (n *Navigator) Close() {
	n.cancel()
	if n.history != nil {
		_ = n.history.Close()
	}
}

func (n *Navigator) record(op, topicID string) {
	if n.history == nil {
		return
	}
	_, _ = n.history.Append(op, topicID)
}
