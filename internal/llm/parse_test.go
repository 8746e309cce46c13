package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractArray(t *testing.T) {
	t.Run("array wrapped in prose and code fences", func(t *testing.T) {
		records, err := ExtractArray("Sure! ```json\n[{\"name\":\"Milk\"}]\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		var record struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(records[0], &record); err != nil {
			t.Fatalf("decoding record: %v", err)
		}
		if record.Name != "Milk" {
			t.Fatalf("expected Milk, got %q", record.Name)
		}
	})

	t.Run("no bracketed region is malformed", func(t *testing.T) {
		_, err := ExtractArray("I found nothing in the image.")
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("empty array is success, not malformed", func(t *testing.T) {
		records, err := ExtractArray("[]")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if records == nil {
			t.Fatal("expected non-nil empty slice")
		}
		if len(records) != 0 {
			t.Fatalf("expected empty slice, got %d records", len(records))
		}
	})

	t.Run("multi-line array is scanned greedily", func(t *testing.T) {
		raw := "Here you go:\n[\n  {\"name\": \"Eggs\"},\n  {\"name\": \"Butter\", \"qty\": \"[200g]\"}\n]\nEnjoy!"
		records, err := ExtractArray(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("unbalanced json is malformed", func(t *testing.T) {
		_, err := ExtractArray("[{\"name\": \"Milk\"")
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("bracketed non-json is malformed", func(t *testing.T) {
		_, err := ExtractArray("The items are [milk, eggs and butter].")
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})
}
