// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package deleteitem

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(inventory *pantrydb.InventoryStore) *Handler {
	return &Handler{inventory: inventory}
}

type Handler struct {
	inventory *pantrydb.InventoryStore
}

// DeleteItem marks an item as used by removing it. Deleting an already
// removed item succeeds, so a stale view cannot surface an error.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	if err := h.inventory.Delete(r.Context(), session.UserID, chi.URLParam(r, "id")); err != nil {
		web.Error(r, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
