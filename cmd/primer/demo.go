package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stateprimer/primer/internal/stream"
)

// runDemo runs one of the runnable stream examples on stdout. The demos are
// the executable counterpart to docs/cold-vs-hot.md.
func runDemo(kind string) error {
	switch kind {
	case "cold":
		runColdDemo()
		return nil
	case "hot":
		return runHotDemo()
	default:
		return fmt.Errorf("unknown demo %q (want cold or hot)", kind)
	}
}

// runColdDemo shows that every collector re-runs the producer and gets its
// own sequence from the start.
func runColdDemo() {
	producerLog := log.New(os.Stdout, "producer:  ", 0)

	nums := stream.NewCold(func(emit func(int)) {
		producerLog.Println("started (a cold stream runs once per collector)")
		for i := 1; i <= 3; i++ {
			emit(i)
		}
		producerLog.Println("finished")
	})

	for _, name := range []string{"collector A", "collector B"} {
		collectorLog := log.New(os.Stdout, name+": ", 0)
		collectorLog.Println("collecting")
		nums.Collect(func(v int) {
			collectorLog.Printf("received %d", v)
		})
	}
}

// runHotDemo shows that subscribers share one emission sequence and that a
// late subscriber starts from the current value, not the beginning.
func runHotDemo() error {
	counter := stream.NewLatest(0)

	var g errgroup.Group

	subscriber := func(name string, after time.Duration) {
		g.Go(func() error {
			time.Sleep(after)
			subLog := log.New(os.Stdout, name+": ", 0)
			sub, cancel := counter.Subscribe()
			defer cancel()
			subLog.Println("subscribed (first delivery is the current value)")
			for v := range sub {
				subLog.Printf("received %d", v)
			}
			subLog.Println("stream closed")
			return nil
		})
	}

	subscriber("subscriber A", 0)
	subscriber("subscriber B", 120*time.Millisecond)

	g.Go(func() error {
		pubLog := log.New(os.Stdout, "publisher:    ", 0)
		for i := 1; i <= 5; i++ {
			time.Sleep(50 * time.Millisecond)
			pubLog.Printf("publishing %d (emits whether or not anyone listens)", i)
			counter.Publish(i)
		}
		time.Sleep(50 * time.Millisecond)
		counter.Close()
		return nil
	})

	return g.Wait()
}
