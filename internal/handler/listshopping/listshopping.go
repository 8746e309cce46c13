// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package listshopping

import (
	"net/http"

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

// ListShopping returns the user's shopping list, newest first.
func (h *Handler) ListShopping(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	items, err := h.shopping.List(r.Context(), session.UserID)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"items": items})
}
