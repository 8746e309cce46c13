// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package pantrydb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Feed is a live subscription to a collection. Every change to the
// underlying query delivers the full current ordered slice, never a delta,
// so consumers replace their working copy wholesale. Two rapid writes may be
// observed as a single coalesced snapshot.
//
// Stop must be called when the consumer goes away; it is safe to call more
// than once.
type Feed[T any] struct {
	updates chan []T
	cancel  context.CancelFunc
	once    sync.Once
}

// Updates returns the channel of full snapshots. The channel is closed after
// Stop, or when the underlying listener fails.
func (f *Feed[T]) Updates() <-chan []T {
	return f.updates
}

// Stop cancels the subscription and releases the underlying listener.
func (f *Feed[T]) Stop() {
	f.once.Do(f.cancel)
}

// publish delivers items, replacing a not-yet-consumed snapshot if the
// consumer is lagging behind.
func (f *Feed[T]) publish(items []T) {
	for {
		select {
		case f.updates <- items:
			return
		default:
		}
		select {
		case <-f.updates:
		default:
		}
	}
}

// Watch subscribes to a query, decoding each document with decode and
// pushing full ordered snapshots into the returned feed. Documents that fail
// to decode fail the whole snapshot; the error is logged and the feed is
// closed, since a partially decoded view is worse than none.
func Watch[T any](ctx context.Context, query firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) *Feed[T] {
	ctx, cancel := context.WithCancel(ctx)
	feed := &Feed[T]{
		updates: make(chan []T, 1),
		cancel:  cancel,
	}

	go func() {
		defer close(feed.updates)

		snaps := query.Snapshots(ctx)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					slog.ErrorContext(ctx, "pantrydb: snapshot listener failed", "error", err)
				}
				return
			}
			items, err := collectDocuments(snap.Documents, decode)
			if err != nil {
				slog.ErrorContext(ctx, "pantrydb: decoding snapshot", "error", err)
				return
			}
			feed.publish(items)
		}
	}()

	return feed
}

// collectDocuments drains a document iterator in query order.
func collectDocuments[T any](docs *firestore.DocumentIterator, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	defer docs.Stop()

	items := []T{}
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("pantrydb: fetching document: %w", err)
		}
		item, err := decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}
