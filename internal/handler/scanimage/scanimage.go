// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package scanimage

import (
	"io"
	"net/http"
	"time"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/expiry"
	"github.com/ProSnigdho/MyFridgeAI/internal/ingest"
	"github.com/ProSnigdho/MyFridgeAI/internal/web"
)

// maxImageBytes caps uploads at a size comfortably above phone camera JPEGs.
const maxImageBytes = 12 << 20

func NewHandler(pipeline *ingest.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

type Handler struct {
	pipeline *ingest.Pipeline
}

// ScanImage runs one capture through the ingestion pipeline. The request
// body is the raw JPEG. The response lists the created items with their
// derived shelf-life state so the scanner screen can render immediately.
func (h *Handler) ScanImage(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		web.Unauthenticated(w)
		return
	}

	imageJPEG, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
	if err != nil {
		web.BadRequest(w, err)
		return
	}

	created, err := h.pipeline.Ingest(r.Context(), session.UserID, imageJPEG)
	if err != nil {
		web.Error(r, w, err)
		return
	}

	web.JSON(w, http.StatusCreated, map[string]any{
		"items": expiry.Annotate(created, time.Now()),
	})
}
