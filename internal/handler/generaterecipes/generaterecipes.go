// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package generaterecipes

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

// GenerateRecipes asks the suggestion service for recipes matching the
// current pantry and appends them to the user's cache. Only one generation
// runs per user at a time; concurrent requests get a busy response.
func (h *Handler) GenerateRecipes(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	created, err := h.cache.Regenerate(r.Context(), session.UserID)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusCreated, map[string]any{"recipes": created})
}
