package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ProSnigdho/MyFridgeAI/internal/llm"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
)

type fakeScanner struct {
	text      string
	err       error
	release   chan struct{}
	started   chan struct{}
	startOnce sync.Once
}

func (f *fakeScanner) ScanImage(_ context.Context, _ []byte) (string, error) {
	if f.started != nil {
		f.startOnce.Do(func() { close(f.started) })
	}
	if f.release != nil {
		<-f.release
	}
	return f.text, f.err
}

type fakeWriter struct {
	batches [][]pantrydb.NewInventoryItem
	err     error
}

func (f *fakeWriter) CreateBatch(_ context.Context, userID string, items []pantrydb.NewInventoryItem) ([]pantrydb.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, items)
	created := make([]pantrydb.InventoryItem, len(items))
	for i, item := range items {
		created[i] = pantrydb.InventoryItem{
			ID:            fmt.Sprintf("item-%d", i),
			Name:          item.Name,
			Quantity:      item.Quantity,
			ShelfLifeDays: item.ShelfLifeDays,
			CreatedAt:     time.Now(),
			OwnerID:       userID,
		}
	}
	return created, nil
}

type fakeArchiver struct {
	wrote chan string
}

func (f *fakeArchiver) WriteJPEG(_ context.Context, path string, _ []byte) (string, error) {
	f.wrote <- path
	return "https://example.com/" + path, nil
}

var testImage = []byte{0xff, 0xd8, 0xff}

func TestIngest(t *testing.T) {
	t.Run("commits full batch with defaults for unparsable fields", func(t *testing.T) {
		scanner := &fakeScanner{
			text: `[{"name":"Milk","qty":"1 liter","expiry":"3 days"},
				{"name":"Eggs","qty":"12 pcs","expiry":10},
				{"name":"Cheese","expiry":"unknown"}]`,
		}
		writer := &fakeWriter{}
		pipeline := New(scanner, writer, nil)

		created, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 3 {
			t.Fatalf("expected 3 items, got %d", len(created))
		}
		if len(writer.batches) != 1 {
			t.Fatalf("expected a single batch, got %d", len(writer.batches))
		}
		batch := writer.batches[0]
		if batch[0].ShelfLifeDays != 3 || batch[1].ShelfLifeDays != 10 {
			t.Fatalf("unexpected shelf lives: %d, %d", batch[0].ShelfLifeDays, batch[1].ShelfLifeDays)
		}
		if batch[2].ShelfLifeDays != pantrydb.DefaultShelfLifeDays {
			t.Fatalf("expected default shelf life, got %d", batch[2].ShelfLifeDays)
		}
		if batch[2].Quantity != pantrydb.DefaultQuantity {
			t.Fatalf("expected default quantity, got %q", batch[2].Quantity)
		}
		for _, item := range created {
			if item.CreatedAt.IsZero() {
				t.Fatalf("item %s returned without its write time", item.Name)
			}
		}
	})

	t.Run("malformed response writes nothing", func(t *testing.T) {
		scanner := &fakeScanner{text: "I can't see any food here."}
		writer := &fakeWriter{}
		pipeline := New(scanner, writer, nil)

		_, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if !errors.Is(err, llm.ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
		if len(writer.batches) != 0 {
			t.Fatal("expected no writes on total failure")
		}
	})

	t.Run("service failure writes nothing", func(t *testing.T) {
		scanner := &fakeScanner{err: errors.New("rpc deadline exceeded")}
		writer := &fakeWriter{}
		pipeline := New(scanner, writer, nil)

		_, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
		if len(writer.batches) != 0 {
			t.Fatal("expected no writes on service failure")
		}
	})

	t.Run("empty array is no items detected", func(t *testing.T) {
		scanner := &fakeScanner{text: "[]"}
		writer := &fakeWriter{}
		pipeline := New(scanner, writer, nil)

		_, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if !errors.Is(err, ErrNoItemsDetected) {
			t.Fatalf("expected ErrNoItemsDetected, got %v", err)
		}
		if len(writer.batches) != 0 {
			t.Fatal("expected no writes when nothing is detected")
		}
	})

	t.Run("nameless records are dropped, rest commit", func(t *testing.T) {
		scanner := &fakeScanner{text: `[{"qty":"2 pcs"},{"name":"Butter"}]`}
		writer := &fakeWriter{}
		pipeline := New(scanner, writer, nil)

		created, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != 1 || created[0].Name != "Butter" {
			t.Fatalf("expected only Butter, got %+v", created)
		}
	})

	t.Run("all records dropped is no items detected", func(t *testing.T) {
		scanner := &fakeScanner{text: `[{"qty":"2 pcs"},"stray string"]`}
		writer := &fakeWriter{}
		pipeline := New(scanner, writer, nil)

		_, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if !errors.Is(err, ErrNoItemsDetected) {
			t.Fatalf("expected ErrNoItemsDetected, got %v", err)
		}
	})

	t.Run("empty image is a capture failure", func(t *testing.T) {
		pipeline := New(&fakeScanner{}, &fakeWriter{}, nil)
		_, err := pipeline.Ingest(t.Context(), "user1", nil)
		if !errors.Is(err, ErrCaptureFailed) {
			t.Fatalf("expected ErrCaptureFailed, got %v", err)
		}
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		scanner := &fakeScanner{text: `[{"name":"Milk"}]`}
		writer := &fakeWriter{err: errors.New("unavailable")}
		pipeline := New(scanner, writer, nil)

		_, err := pipeline.Ingest(t.Context(), "user1", testImage)
		if err == nil {
			t.Fatal("expected an error from the store")
		}
	})

	t.Run("second capture for same user is rejected while in flight", func(t *testing.T) {
		scanner := &fakeScanner{
			text:    "[]",
			release: make(chan struct{}),
			started: make(chan struct{}),
		}
		pipeline := New(scanner, &fakeWriter{}, nil)

		done := make(chan error, 1)
		go func() {
			_, err := pipeline.Ingest(context.Background(), "user1", testImage)
			done <- err
		}()
		<-scanner.started

		if _, err := pipeline.Ingest(t.Context(), "user1", testImage); !errors.Is(err, ErrBusy) {
			t.Fatalf("expected ErrBusy, got %v", err)
		}

		close(scanner.release)
		if err := <-done; !errors.Is(err, ErrNoItemsDetected) {
			t.Fatalf("expected first capture to finish normally, got %v", err)
		}

		// The guard is per capture, not permanent.
		if _, err := pipeline.Ingest(t.Context(), "user1", testImage); errors.Is(err, ErrBusy) {
			t.Fatal("expected guard to release after completion")
		}
	})

	t.Run("successful capture is archived", func(t *testing.T) {
		scanner := &fakeScanner{text: `[{"name":"Milk"}]`}
		captures := &fakeArchiver{wrote: make(chan string, 1)}
		pipeline := New(scanner, &fakeWriter{}, captures)

		if _, err := pipeline.Ingest(t.Context(), "user1", testImage); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		select {
		case path := <-captures.wrote:
			if path == "" {
				t.Fatal("expected a capture path")
			}
		case <-time.After(time.Second):
			t.Fatal("expected capture to be archived")
		}
	})
}

func TestParseShelfLife(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`7`, 7},
		{`7.9`, 7},
		{`"10 days"`, 10},
		{`"  14 days left"`, 14},
		{`"3"`, 3},
		{`"unknown"`, pantrydb.DefaultShelfLifeDays},
		{`""`, pantrydb.DefaultShelfLifeDays},
		{`null`, pantrydb.DefaultShelfLifeDays},
		{`-3`, 0},
		{`{"days":3}`, pantrydb.DefaultShelfLifeDays},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := parseShelfLife(json.RawMessage(tc.raw)); got != tc.want {
				t.Fatalf("parseShelfLife(%s): expected %d, got %d", tc.raw, tc.want, got)
			}
		})
	}
}
