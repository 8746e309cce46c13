// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package ingest converts fridge photographs into inventory items: it
// submits the image to the vision model, parses the response, normalizes
// each detected record and commits the batch to the inventory store.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ProSnigdho/MyFridgeAI/internal/llm"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
)

var (
	// ErrCaptureFailed reports that no usable image was provided.
	ErrCaptureFailed = errors.New("ingest: capture failed")

	// ErrBusy reports that a capture is already in flight for the user.
	// The second capture is rejected, not queued.
	ErrBusy = errors.New("ingest: capture already in flight")

	// ErrServiceUnavailable reports that the extraction service call failed.
	ErrServiceUnavailable = errors.New("ingest: extraction service unavailable")

	// ErrNoItemsDetected reports a valid response with nothing in it. This
	// is user feedback ("no food found"), distinct from a malformed
	// response ("try again").
	ErrNoItemsDetected = errors.New("ingest: no items detected")
)

type scanner interface {
	ScanImage(ctx context.Context, imageJPEG []byte) (string, error)
}

type itemWriter interface {
	CreateBatch(ctx context.Context, userID string, items []pantrydb.NewInventoryItem) ([]pantrydb.InventoryItem, error)
}

type archiver interface {
	WriteJPEG(ctx context.Context, path string, data []byte) (string, error)
}

// Pipeline orchestrates image capture ingestion. At most one ingestion runs
// per user at a time.
type Pipeline struct {
	scanner  scanner
	items    itemWriter
	captures archiver

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a pipeline. captures may be nil to disable photo archival.
func New(scanner scanner, items itemWriter, captures archiver) *Pipeline {
	return &Pipeline{
		scanner:  scanner,
		items:    items,
		captures: captures,
		inFlight: map[string]struct{}{},
	}
}

// Ingest runs one capture for the user and returns the created items.
//
// A malformed response or a failed service call writes nothing. Individual
// records that fail normalization are dropped from the batch while the rest
// commit; detection noise is expected from a best-effort vision model.
func (p *Pipeline) Ingest(ctx context.Context, userID string, imageJPEG []byte) ([]pantrydb.InventoryItem, error) {
	if len(imageJPEG) == 0 {
		return nil, ErrCaptureFailed
	}
	if !p.begin(userID) {
		return nil, ErrBusy
	}
	defer p.end(userID)

	rawText, err := p.scanner.ScanImage(ctx, imageJPEG)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	records, err := llm.ExtractArray(rawText)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoItemsDetected
	}

	items := normalizeRecords(ctx, records)
	if len(items) == 0 {
		return nil, ErrNoItemsDetected
	}

	created, err := p.items.CreateBatch(ctx, userID, items)
	if err != nil {
		return nil, fmt.Errorf("ingest: committing batch: %w", err)
	}

	p.archive(ctx, userID, imageJPEG)
	return created, nil
}

func (p *Pipeline) begin(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.inFlight[userID]; ok {
		return false
	}
	p.inFlight[userID] = struct{}{}
	return true
}

func (p *Pipeline) end(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, userID)
}

// archive stores the capture for later reference. It is fire-and-forget:
// a storage failure is logged and never fails the ingestion, and the write
// outlives the originating request.
func (p *Pipeline) archive(ctx context.Context, userID string, imageJPEG []byte) {
	if p.captures == nil {
		return
	}
	path := fmt.Sprintf("captures/%s/%s.jpg", userID, uuid.NewString())
	go func() {
		ctx := context.WithoutCancel(ctx)
		if _, err := p.captures.WriteJPEG(ctx, path, imageJPEG); err != nil {
			slog.ErrorContext(ctx, "ingest: archiving capture", "path", path, "error", err)
		}
	}()
}

// detectedRecord is one entry of the vision model's response array.
type detectedRecord struct {
	Name   string          `json:"name"`
	Qty    string          `json:"qty"`
	Expiry json.RawMessage `json:"expiry"`
}

// normalizeRecords turns raw response records into store writes. Records
// that cannot be normalized are dropped from the batch; missing fields get
// the documented defaults.
func normalizeRecords(ctx context.Context, records []json.RawMessage) []pantrydb.NewInventoryItem {
	items := make([]pantrydb.NewInventoryItem, 0, len(records))
	for _, raw := range records {
		var record detectedRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			slog.DebugContext(ctx, "ingest: dropping undecodable record", "error", err)
			continue
		}
		if strings.TrimSpace(record.Name) == "" {
			slog.DebugContext(ctx, "ingest: dropping record without name")
			continue
		}
		quantity := record.Qty
		if strings.TrimSpace(quantity) == "" {
			quantity = pantrydb.DefaultQuantity
		}
		items = append(items, pantrydb.NewInventoryItem{
			Name:          record.Name,
			Quantity:      quantity,
			ShelfLifeDays: parseShelfLife(record.Expiry),
		})
	}
	return items
}

// parseShelfLife reads the expiry field of a detected record. The model is
// asked for a day count but answers vary: a JSON number, a string like
// "10 days", or something unusable. Anything without a leading integer
// falls back to the default shelf life.
func parseShelfLife(raw json.RawMessage) int {
	if len(raw) == 0 || string(raw) == "null" {
		return pantrydb.DefaultShelfLifeDays
	}

	var days float64
	if err := json.Unmarshal(raw, &days); err == nil {
		if days < 0 {
			return 0
		}
		return int(days)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return pantrydb.DefaultShelfLifeDays
	}
	return leadingInt(text)
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return pantrydb.DefaultShelfLifeDays
	}
	days := 0
	for _, c := range s[:end] {
		days = days*10 + int(c-'0')
		if days > 3650 {
			return 3650
		}
	}
	return days
}
