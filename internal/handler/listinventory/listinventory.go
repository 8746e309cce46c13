// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package listinventory

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
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

// ListInventory returns the user's items newest first, each annotated with
// remaining shelf life, plus the stat-card summary. The shelf-life state is
// derived fresh on every read so countdowns stay correct across sessions.
// An optional q parameter filters by name prefix, and limit caps results.
func (h *Handler) ListInventory(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	opts, err := listOptions(r.URL.Query())
	if err != nil {
		web.BadRequest(w, err)
		return
	}

	items, err := h.inventory.List(r.Context(), session.UserID, opts)
	if err != nil {
		web.Error(r, w, err)
		return
	}

	now := time.Now()
	web.JSON(w, http.StatusOK, map[string]any{
		"items":   expiry.Annotate(items, now),
		"summary": expiry.Summarize(items, now),
	})
}

func listOptions(query url.Values) (pantrydb.ListOptions, error) {
	opts := pantrydb.ListOptions{NamePrefix: query.Get("q")}
	raw := query.Get("limit")
	if raw == "" {
		return opts, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return pantrydb.ListOptions{}, fmt.Errorf("listinventory: parsing limit: %w", err)
	}
	if limit < 0 {
		return pantrydb.ListOptions{}, errors.New("listinventory: limit must be non-negative")
	}
	opts.Limit = limit
	return opts, nil
}
