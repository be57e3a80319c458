package events

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPublishCallsMatchingSubscriber(t *testing.T) {
	bus := NewBus(nil)
	var called atomic.Bool

	bus.Subscribe(func(e Event) {
		if e.Type != PredictionFailed {
			t.Errorf("expected PredictionFailed, got %s", e.Type)
		}
		called.Store(true)
	}, PredictionFailed)

	bus.Publish(Event{Type: PredictionFailed, HardwareID: "R1", Message: "missing key"})

	if !called.Load() {
		t.Error("subscriber was not called")
	}
}

func TestSubscriberIgnoresUnmatchedTypes(t *testing.T) {
	bus := NewBus(nil)
	var called atomic.Bool

	bus.Subscribe(func(e Event) {
		called.Store(true)
	}, PredictionFailed)

	bus.Publish(Event{Type: Overstressed, Message: "over"})

	if called.Load() {
		t.Error("subscriber should not have been called for Overstressed")
	}
}

func TestWildcardSubscriberReceivesAll(t *testing.T) {
	bus := NewBus(nil)
	var count atomic.Int32

	bus.Subscribe(func(e Event) {
		count.Add(1)
	})

	bus.Publish(Event{Type: PredictionFailed, Message: "a"})
	bus.Publish(Event{Type: Overstressed, Message: "b"})
	bus.Publish(Event{Type: RunComplete, Message: "c"})

	if count.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", count.Load())
	}
}

func TestPublishSetsTimestamp(t *testing.T) {
	bus := NewBus(nil)
	var got time.Time

	bus.Subscribe(func(e Event) {
		got = e.Timestamp
	})

	bus.Publish(Event{Type: PredictionFailed, Message: "ts"})

	if got.IsZero() {
		t.Error("timestamp was not set")
	}
}

func TestPublishPreservesExplicitTimestamp(t *testing.T) {
	bus := NewBus(nil)
	explicit := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var got time.Time

	bus.Subscribe(func(e Event) {
		got = e.Timestamp
	})

	bus.Publish(Event{Type: PredictionFailed, Message: "ts", Timestamp: explicit})

	if !got.Equal(explicit) {
		t.Errorf("expected %v, got %v", explicit, got)
	}
}

func TestConcurrentPublishSubscribe(t *testing.T) {
	bus := NewBus(nil)
	var count atomic.Int32
	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe(func(e Event) {
				count.Add(1)
			}, PredictionFailed)
		}()
	}
	wg.Wait()

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(Event{Type: PredictionFailed, Message: "concurrent"})
		}()
	}
	wg.Wait()

	expected := int32(10 * 100)
	if count.Load() != expected {
		t.Errorf("expected %d, got %d", expected, count.Load())
	}
}

func TestPanicInSubscriberDoesNotCrash(t *testing.T) {
	bus := NewBus(nil)
	var secondCalled atomic.Bool

	bus.Subscribe(func(e Event) {
		panic("bad subscriber")
	}, PredictionFailed)

	bus.Subscribe(func(e Event) {
		secondCalled.Store(true)
	}, PredictionFailed)

	bus.Publish(Event{Type: PredictionFailed, Message: "panic test"})

	if !secondCalled.Load() {
		t.Error("second subscriber should still be called after first panics")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(nil)
	var first, second atomic.Int32

	stop := bus.Subscribe(func(e Event) { first.Add(1) })
	bus.Subscribe(func(e Event) { second.Add(1) })

	bus.Publish(Event{Type: RunStarted, RunID: "run-1"})
	stop()
	stop()
	bus.Publish(Event{Type: RunComplete, RunID: "run-1"})

	if first.Load() != 1 {
		t.Errorf("unsubscribed handler called %d times, want 1", first.Load())
	}
	if second.Load() != 2 {
		t.Errorf("remaining handler called %d times, want 2", second.Load())
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
