// Package paginator holds the current position over an ordered topic
// catalog and exposes safe navigation intents. Every operation is total:
// invalid lookups and boundary navigation are silent no-ops, and the
// published snapshot always satisfies 0 <= index < len(topics) while the
// catalog is non-empty.
package paginator

import (
	"sync"

	"github.com/stateprimer/primer/internal/catalog"
	"github.com/stateprimer/primer/internal/stream"
)

// Snapshot is an immutable view of the pagination state: the fixed topic
// sequence plus the current index. Navigation flags are derived on read,
// never stored, so a snapshot can never carry stale flags.
type Snapshot struct {
	Topics []catalog.Topic
	Index  int
}

// Current returns the topic at the current index. ok is false when the
// catalog is empty or the index is out of range.
func (s Snapshot) Current() (catalog.Topic, bool) {
	if s.Index < 0 || s.Index >= len(s.Topics) {
		return catalog.Topic{}, false
	}
	return s.Topics[s.Index], true
}

// CanAdvance reports whether a topic exists after the current one.
func (s Snapshot) CanAdvance() bool {
	return s.Index < len(s.Topics)-1
}

// CanRetreat reports whether a topic exists before the current one.
func (s Snapshot) CanRetreat() bool {
	return s.Index > 0
}

// Paginator owns the live snapshot. It is safe for concurrent use: each
// intent replaces the snapshot wholesale and notifies subscribers under one
// critical section, so observers never see a half-applied update.
type Paginator struct {
	mu   sync.Mutex
	snap Snapshot
	feed *stream.Latest[Snapshot]
}

// New creates a paginator over the catalog, positioned at the first topic.
func New(c *catalog.Catalog) *Paginator {
	snap := Snapshot{Topics: c.Topics()}
	return &Paginator{
		snap: snap,
		feed: stream.NewLatest(snap),
	}
}

// Snapshot returns the current state.
func (p *Paginator) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Subscribe returns a channel that immediately yields the current snapshot
// and then every replacement, plus a cancel func that stops notifications.
func (p *Paginator) Subscribe() (<-chan Snapshot, func()) {
	return p.feed.Subscribe()
}

// SelectByID moves to the first topic whose id equals id. An unknown id
// leaves the state unchanged.
func (p *Paginator) SelectByID(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, tp := range p.snap.Topics {
		if tp.ID == id {
			p.replace(i)
			return
		}
	}
}

// Advance moves to the next topic, or does nothing at the last one.
func (p *Paginator) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap.CanAdvance() {
		p.replace(p.snap.Index + 1)
	}
}

// Retreat moves to the previous topic, or does nothing at the first one.
func (p *Paginator) Retreat() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snap.CanRetreat() {
		p.replace(p.snap.Index - 1)
	}
}

// replace installs a new snapshot at index and notifies subscribers.
// Callers hold p.mu.
func (p *Paginator) replace(index int) {
	p.snap = Snapshot{Topics: p.snap.Topics, Index: index}
	p.feed.Publish(p.snap)
}

// Close terminates all subscriptions.
func (p *Paginator) Close() {
	p.feed.Close()
}
