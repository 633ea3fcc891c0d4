package queue

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hellostack/portal/internal/core/domain"
	"github.com/hellostack/portal/internal/core/ports"
)

type recordingProcessor struct {
	mu   sync.Mutex
	seen []string
	done chan struct{}
	want int
	fn   func(ports.Event) error
}

func newRecordingProcessor(want int) *recordingProcessor {
	return &recordingProcessor{done: make(chan struct{}), want: want}
}

func (p *recordingProcessor) Process(_ context.Context, event ports.Event) error {
	defer func() {
		p.mu.Lock()
		p.seen = append(p.seen, event.SignIn.IdentityID)
		if len(p.seen) == p.want {
			close(p.done)
		}
		p.mu.Unlock()
	}()
	if p.fn != nil {
		return p.fn(event)
	}
	return nil
}

func (p *recordingProcessor) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.seen...)
}

func signInEvent(key, id string) ports.Event {
	return ports.Event{Key: key, SignIn: &domain.SignInEvent{IdentityID: id}}
}

func TestDispatcher_PreservesOrderPerKey(t *testing.T) {
	const n = 50
	proc := newRecordingProcessor(n)
	d := NewDispatcher(4, proc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(signInEvent("identity-1", strconv.Itoa(i)))
	}

	seen := proc.wait(t)
	cancel()
	d.Wait()

	for i, id := range seen {
		if id != strconv.Itoa(i) {
			t.Fatalf("event %d = %s, out of order: %v", i, id, seen)
		}
	}
}

func TestDispatcher_ContainsFailures(t *testing.T) {
	proc := newRecordingProcessor(3)
	proc.fn = func(e ports.Event) error {
		switch e.SignIn.IdentityID {
		case "panic":
			panic("handler bug")
		case "fail":
			return errors.New("processing failed")
		}
		return nil
	}
	d := NewDispatcher(1, proc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(signInEvent("k", "panic"))
	d.Enqueue(signInEvent("k", "fail"))
	d.Enqueue(signInEvent("k", "ok"))

	seen := proc.wait(t)
	cancel()
	d.Wait()

	if seen[len(seen)-1] != "ok" {
		t.Errorf("worker stopped after failure, seen %v", seen)
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := NewDispatcher(1, newRecordingProcessor(0), zerolog.Nop())
	drops := 0
	d.OnDrop(func() { drops++ })

	// Not started: the buffer fills and further events are dropped.
	for i := 0; i < channelBuffer+3; i++ {
		d.Enqueue(signInEvent("k", strconv.Itoa(i)))
	}
	if drops != 3 {
		t.Errorf("drops = %d, want 3", drops)
	}
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, newRecordingProcessor(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}

func TestDispatcher_ShardIndexStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingProcessor(0), zerolog.Nop())
	for _, key := range []string{"", "a", "identity-42", "버그"} {
		first := d.shardIndex(key)
		if first < 0 || first >= 8 {
			t.Fatalf("shardIndex(%q) = %d out of range", key, first)
		}
		if again := d.shardIndex(key); again != first {
			t.Errorf("shardIndex(%q) not stable: %d then %d", key, first, again)
		}
	}
}

func TestDispatcher_WaitReturnsAfterCancel(t *testing.T) {
	d := NewDispatcher(2, newRecordingProcessor(0), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}
