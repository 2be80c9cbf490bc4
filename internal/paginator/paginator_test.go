package paginator

import (
	"fmt"
	"testing"

	"github.com/stateprimer/primer/internal/catalog"
)

func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()

	topics := make([]catalog.Topic, n)
	for i := range topics {
		topics[i] = catalog.Topic{
			ID:    fmt.Sprintf("t%d", i),
			Title: fmt.Sprintf("Topic %d", i),
		}
	}
	c, err := catalog.New(topics)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestNewStartsAtFirstTopic(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 3))
	snap := p.Snapshot()

	cur, ok := snap.Current()
	if !ok {
		t.Fatal("Current() reported no topic for a non-empty catalog")
	}
	if cur.ID != "t0" {
		t.Fatalf("initial topic = %q, want t0", cur.ID)
	}
	if snap.CanRetreat() {
		t.Fatal("CanRetreat() = true at index 0")
	}
	if !snap.CanAdvance() {
		t.Fatal("CanAdvance() = false with topics remaining")
	}
}

func TestDerivedFlagsMatchIndex(t *testing.T) {
	t.Parallel()

	const n = 4
	p := New(testCatalog(t, n))

	for i := 0; i < n; i++ {
		snap := p.Snapshot()
		if got, want := snap.CanRetreat(), i > 0; got != want {
			t.Fatalf("index %d: CanRetreat() = %v, want %v", i, got, want)
		}
		if got, want := snap.CanAdvance(), i < n-1; got != want {
			t.Fatalf("index %d: CanAdvance() = %v, want %v", i, got, want)
		}
		p.Advance()
	}
}

func TestBoundaryNavigationIsIdempotent(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 2))

	p.Retreat()
	if got := p.Snapshot().Index; got != 0 {
		t.Fatalf("Retreat at start moved index to %d", got)
	}

	p.Advance()
	p.Advance() // already at the end
	if got := p.Snapshot().Index; got != 1 {
		t.Fatalf("Advance at end moved index to %d", got)
	}
}

func TestSelectByIDRoundTrip(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 3))
	p.Advance()

	cur, _ := p.Snapshot().Current()
	p.SelectByID(cur.ID)
	if got := p.Snapshot().Index; got != 1 {
		t.Fatalf("SelectByID of current topic moved index to %d", got)
	}
}

func TestMonotonicBoundedWalk(t *testing.T) {
	t.Parallel()

	const n = 6
	p := New(testCatalog(t, n))

	for i := 0; i < n-1; i++ {
		p.Advance()
	}
	if got := p.Snapshot().Index; got != n-1 {
		t.Fatalf("after %d advances index = %d, want %d", n-1, got, n-1)
	}

	p.Advance()
	if got := p.Snapshot().Index; got != n-1 {
		t.Fatalf("extra Advance moved index to %d", got)
	}
}

func TestEmptyCatalog(t *testing.T) {
	t.Parallel()

	c, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	p := New(c)
	snap := p.Snapshot()

	if _, ok := snap.Current(); ok {
		t.Fatal("Current() reported a topic for an empty catalog")
	}
	if snap.CanAdvance() || snap.CanRetreat() {
		t.Fatal("navigation flags set for an empty catalog")
	}

	// All intents stay no-ops.
	p.Advance()
	p.Retreat()
	p.SelectByID("anything")
	if got := p.Snapshot().Index; got != 0 {
		t.Fatalf("index moved to %d on an empty catalog", got)
	}
}

func TestScriptedScenario(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 5))

	p.SelectByID("t2")
	snap := p.Snapshot()
	if snap.Index != 2 {
		t.Fatalf("after SelectByID(t2) index = %d, want 2", snap.Index)
	}
	if cur, _ := snap.Current(); cur.ID != "t2" {
		t.Fatalf("current topic = %q, want t2", cur.ID)
	}
	if !snap.CanRetreat() || !snap.CanAdvance() {
		t.Fatal("mid-catalog position should allow both directions")
	}

	p.Advance()
	if got := p.Snapshot().Index; got != 3 {
		t.Fatalf("index = %d, want 3", got)
	}

	p.Advance()
	snap = p.Snapshot()
	if snap.Index != 4 || snap.CanAdvance() {
		t.Fatalf("index = %d CanAdvance = %v, want 4 false", snap.Index, snap.CanAdvance())
	}

	p.Advance() // no-op at the end
	if got := p.Snapshot().Index; got != 4 {
		t.Fatalf("index = %d after boundary Advance, want 4", got)
	}

	p.SelectByID("unknown") // silent no-op
	if got := p.Snapshot().Index; got != 4 {
		t.Fatalf("index = %d after unknown SelectByID, want 4", got)
	}

	for i := 0; i < 4; i++ {
		p.Retreat()
	}
	snap = p.Snapshot()
	if snap.Index != 0 || snap.CanRetreat() {
		t.Fatalf("index = %d CanRetreat = %v, want 0 false", snap.Index, snap.CanRetreat())
	}

	p.Retreat() // no-op at the start
	if got := p.Snapshot().Index; got != 0 {
		t.Fatalf("index = %d after boundary Retreat, want 0", got)
	}
}

func TestSubscribeYieldsCurrentSnapshotImmediately(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 3))
	p.Advance()

	sub, cancel := p.Subscribe()
	defer cancel()

	snap := <-sub
	if snap.Index != 1 {
		t.Fatalf("initial subscription snapshot index = %d, want 1", snap.Index)
	}

	p.Advance()
	snap = <-sub
	if snap.Index != 2 {
		t.Fatalf("notified snapshot index = %d, want 2", snap.Index)
	}
}

func TestNoOpIntentsDoNotNotify(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 2))
	sub, cancel := p.Subscribe()
	defer cancel()
	<-sub

	p.Retreat()            // boundary no-op
	p.SelectByID("absent") // unknown id no-op

	select {
	case snap := <-sub:
		t.Fatalf("no-op intent published a snapshot (index %d)", snap.Index)
	default:
	}
}

func TestSnapshotIsImmutableForObservers(t *testing.T) {
	t.Parallel()

	p := New(testCatalog(t, 3))
	snap := p.Snapshot()

	p.Advance()
	if snap.Index != 0 {
		t.Fatalf("held snapshot changed: index = %d", snap.Index)
	}
	if got := p.Snapshot().Index; got != 1 {
		t.Fatalf("live snapshot index = %d, want 1", got)
	}
}
