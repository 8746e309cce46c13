// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package addshoppingitem

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

type request struct {
	Name string `json:"name" validate:"required"`
}

// AddShoppingItem appends an unchecked entry to the shopping list.
func (h *Handler) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
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

	item, err := h.shopping.Create(r.Context(), session.UserID, req.Name)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusCreated, item)
}
