// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package checkshoppingitem

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

type request struct {
	Checked bool `json:"checked"`
}

// CheckShoppingItem toggles an entry's checked state. Checking off an entry
// also puts a matching item into the inventory with default quantity and
// shelf life; unchecking only flips the flag back and leaves the inventory
// alone.
func (h *Handler) CheckShoppingItem(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	var req request
	if err := web.Decode(r, &req); err != nil {
		web.BadRequest(w, err)
		return
	}

	item, err := h.shopping.SetChecked(r.Context(), session.UserID, chi.URLParam(r, "id"), req.Checked)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusOK, item)
}
