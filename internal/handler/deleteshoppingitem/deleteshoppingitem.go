// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package deleteshoppingitem

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(shopping *pantrydb.ShoppingListStore) *Handler {
	return &Handler{shopping: shopping}
}

type Handler struct {
	shopping *pantrydb.ShoppingListStore
}

// DeleteShoppingItem removes an entry regardless of checked state. Items
// already promoted to the inventory are unaffected.
func (h *Handler) DeleteShoppingItem(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	if err := h.shopping.Delete(r.Context(), session.UserID, chi.URLParam(r, "id")); err != nil {
		web.Error(r, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
