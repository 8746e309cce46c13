// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package listrecipes

import (
	"net/http"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

func NewHandler(recipes *pantrydb.RecipeStore) *Handler {
	return &Handler{recipes: recipes}
}

type Handler struct {
	recipes *pantrydb.RecipeStore
}

// ListRecipes returns the user's cached recipes, newest first. The cache
// survives restarts and an empty pantry; it only empties on explicit clear.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	recipes, err := h.recipes.List(r.Context(), session.UserID)
	if err != nil {
		web.Error(r, w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}
