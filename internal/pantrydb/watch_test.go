package pantrydb

import (
	"context"
	"testing"
)

func newTestFeed[T any]() *Feed[T] {
	_, cancel := context.WithCancel(context.Background())
	return &Feed[T]{
		updates: make(chan []T, 1),
		cancel:  cancel,
	}
}

func TestFeedPublish(t *testing.T) {
	t.Run("delivers the full snapshot", func(t *testing.T) {
		feed := newTestFeed[string]()
		feed.publish([]string{"a", "b"})

		got := <-feed.Updates()
		if len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Fatalf("unexpected snapshot: %v", got)
		}
	})

	t.Run("coalesces when the consumer lags", func(t *testing.T) {
		feed := newTestFeed[int]()
		feed.publish([]int{1})
		feed.publish([]int{1, 2})
		feed.publish([]int{1, 2, 3})

		got := <-feed.Updates()
		if len(got) != 3 {
			t.Fatalf("expected only the latest snapshot, got %v", got)
		}
		select {
		case stale := <-feed.Updates():
			t.Fatalf("expected no stale snapshot, got %v", stale)
		default:
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		feed := newTestFeed[int]()
		feed.Stop()
		feed.Stop()
	})
}
