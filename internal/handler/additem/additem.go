// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package additem

import (
	"net/http"

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

type request struct {
	Name          string `json:"name" validate:"required"`
	Quantity      string `json:"quantity"`
	ShelfLifeDays *int   `json:"shelfLifeDays" validate:"omitempty,gte=0"`
}

// AddItem creates a single inventory item from manual entry. Quantity and
// shelf life fall back to the documented defaults when omitted.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
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

	shelfLife := pantrydb.DefaultShelfLifeDays
	if req.ShelfLifeDays != nil {
		shelfLife = *req.ShelfLifeDays
	}

	item, err := h.inventory.Create(r.Context(), session.UserID, pantrydb.NewInventoryItem{
		Name:          req.Name,
		Quantity:      req.Quantity,
		ShelfLifeDays: shelfLife,
	})
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusCreated, item)
}
