// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package updatename

import (
	"net/http"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(profiles *pantrydb.ProfileStore) *Handler {
	return &Handler{profiles: profiles}
}

type Handler struct {
	profiles *pantrydb.ProfileStore
}

type request struct {
	Name string `json:"name" validate:"required"`
}

// UpdateName sets the display name on the profile copy.
func (h *Handler) UpdateName(w http.ResponseWriter, r *http.Request) {
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

	if err := h.profiles.UpdateName(r.Context(), session.UserID, req.Name); err != nil {
		web.Error(r, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
