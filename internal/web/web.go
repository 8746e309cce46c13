// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package web holds the JSON plumbing shared by the API handlers: request
// decoding with validation, response writing, and the mapping from the
// core's error taxonomy to HTTP statuses and stable machine codes.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ProSnigdho/MyFridgeAI/internal/ingest"
	"github.com/ProSnigdho/MyFridgeAI/internal/llm"
	"github.com/ProSnigdho/MyFridgeAI/internal/recipecache"
)

var validate = validator.New()

// Decode reads and validates a JSON request body.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("web: decoding request body: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("web: validating request body: %w", err)
	}
	return nil
}

// JSON writes v as a JSON response.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("web: encoding response", "error", err)
	}
}

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// Error maps a core error to its HTTP status and machine code. The codes
// are stable so the UI can tell "no food found" from "try again" without
// string matching.
func Error(r *http.Request, w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "store_error"
	switch {
	case errors.Is(err, ingest.ErrCaptureFailed):
		status, code = http.StatusBadRequest, "capture_failed"
	case errors.Is(err, ingest.ErrBusy), errors.Is(err, recipecache.ErrBusy):
		status, code = http.StatusConflict, "busy"
	case errors.Is(err, ingest.ErrNoItemsDetected):
		status, code = http.StatusUnprocessableEntity, "no_items_detected"
	case errors.Is(err, recipecache.ErrEmptyPantry):
		status, code = http.StatusUnprocessableEntity, "empty_pantry"
	case errors.Is(err, llm.ErrMalformed):
		status, code = http.StatusBadGateway, "malformed_response"
	case errors.Is(err, ingest.ErrServiceUnavailable), errors.Is(err, recipecache.ErrServiceUnavailable):
		status, code = http.StatusBadGateway, "service_unavailable"
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "web: request failed", "path", r.URL.Path, "error", err)
	}
	JSON(w, status, errorBody{Code: code, Error: err.Error()})
}

// BadRequest reports an invalid request body.
func BadRequest(w http.ResponseWriter, err error) {
	JSON(w, http.StatusBadRequest, errorBody{Code: "invalid_request", Error: err.Error()})
}

// Unauthenticated reports a missing session. The auth middleware normally
// prevents this from being reached.
func Unauthenticated(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, errorBody{Code: "unauthenticated", Error: "unauthenticated"})
}
