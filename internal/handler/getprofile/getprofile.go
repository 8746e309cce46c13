// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package getprofile

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

// GetProfile returns the user's profile copy. The email and verification
// state come from the token, not the store, so they are always current.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	profile, err := h.profiles.Get(r.Context(), session.UserID)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"name":     profile.Name,
		"email":    session.Email,
		"verified": session.Verified,
	})
}
