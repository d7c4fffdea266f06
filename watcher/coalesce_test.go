package watcher

import (
	"fmt"
	"testing"
	"time"
)

func Test_Coalescer_BatchesAfterQuietPeriod(t *testing.T) {
	c := newCoalescer(20 * time.Millisecond)

	c.add("/p/a.res", OpWrite)
	c.add("/p/b.res", OpCreate)

	select {
	case batch := <-c.batches():
		if len(batch) != 2 {
			t.Fatalf("expected 2 events, got %d", len(batch))
		}
		// Batches are delivered sorted by path.
		if batch[0].Path != "/p/a.res" || batch[1].Path != "/p/b.res" {
			t.Errorf("unexpected order: %v", batch)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}
}

func Test_Coalescer_CollapsesSamePath(t *testing.T) {
	c := newCoalescer(20 * time.Millisecond)

	c.add("/p/a.res", OpCreate)
	c.add("/p/a.res", OpWrite)
	c.add("/p/a.res", OpRemove)

	select {
	case batch := <-c.batches():
		if len(batch) != 1 {
			t.Fatalf("expected 1 coalesced event, got %d", len(batch))
		}
		if batch[0].Op != OpRemove {
			t.Errorf("expected latest op to win, got %v", batch[0].Op)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}
}

func Test_Coalescer_TimerResetsOnNewActivity(t *testing.T) {
	c := newCoalescer(50 * time.Millisecond)

	c.add("/p/a.res", OpWrite)
	time.Sleep(25 * time.Millisecond)
	c.add("/p/b.res", OpWrite)

	select {
	case <-c.batches():
		// Both events must arrive in a single batch because the second add
		// reset the quiet timer before the first flush fired.
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}

	select {
	case extra := <-c.batches():
		t.Fatalf("expected a single batch, got extra %v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_Coalescer_AddNotBlockedBySlowConsumer(t *testing.T) {
	c := newCoalescer(time.Millisecond)

	// Nobody reads batches(); well past the channel's buffer capacity,
	// flushes stall on the send but every add must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 40; i++ {
			c.add(fmt.Sprintf("/p/f%02d.res", i), OpWrite)
			time.Sleep(3 * time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("add blocked behind a stalled flush")
	}
}
