// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package watchinventory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/expiry"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(inventory *pantrydb.InventoryStore) *Handler {
	return &Handler{inventory: inventory}
}

type Handler struct {
	inventory *pantrydb.InventoryStore
}

// WatchInventory streams the user's inventory as server-sent events. Every
// store change delivers the complete annotated snapshot, never a delta, so
// the client replaces its working copy wholesale. The subscription ends
// with the request; a dropped connection stops the underlying listener.
func (h *Handler) WatchInventory(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	feed := h.inventory.Subscribe(r.Context(), session.UserID)
	defer feed.Stop()

	for items := range feed.Updates() {
		now := time.Now()
		payload, err := json.Marshal(map[string]any{
			"items":   expiry.Annotate(items, now),
			"summary": expiry.Summarize(items, now),
		})
		if err != nil {
			slog.ErrorContext(r.Context(), "watchinventory: encoding snapshot", "error", err)
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return
		}
		flusher.Flush()
	}
}
