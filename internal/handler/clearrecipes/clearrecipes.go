// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package clearrecipes

import (
	"net/http"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/recipecache"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(cache *recipecache.Cache) *Handler {
	return &Handler{cache: cache}
}

type Handler struct {
	cache *recipecache.Cache
}

// ClearRecipes empties the user's recipe cache.
func (h *Handler) ClearRecipes(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	if err := h.cache.Clear(r.Context(), session.UserID); err != nil {
		web.Error(r, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
