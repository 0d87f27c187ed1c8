// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the techblog server.
// Handlers are grouped by concern (API, public pages, demo mirror) and
// receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"techblog/internal/cache"
	"techblog/internal/memstore"
	"techblog/internal/query"
	"techblog/internal/storage"
	"techblog/internal/store"
)

// API groups the JSON API handlers and their dependencies.
// storageClient may be nil when S3 is not configured; responseCache may
// be nil when Valkey is not configured (both degrade gracefully).
type API struct {
	posts         *store.PostStore
	comments      *store.CommentStore
	categories    *store.CategoryStore
	settings      *store.SettingStore
	analytics     *store.AnalyticsStore
	mirror        *memstore.Mirror
	responseCache *cache.ResponseCache
	storageClient *storage.Client
}

// NewAPI creates the API handler group with the given dependencies.
func NewAPI(posts *store.PostStore, comments *store.CommentStore, categories *store.CategoryStore, settings *store.SettingStore, analytics *store.AnalyticsStore, mirror *memstore.Mirror, responseCache *cache.ResponseCache, storageClient *storage.Client) *API {
	return &API{
		posts:         posts,
		comments:      comments,
		categories:    categories,
		settings:      settings,
		analytics:     analytics,
		mirror:        mirror,
		responseCache: responseCache,
		storageClient: storageClient,
	}
}

// envelope is the JSON response shape shared by every API endpoint.
// Listings carry their pagination block alongside data.
type envelope struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
}

// writeJSON marshals v and writes it with the given status. Marshal
// failures fall back to a plain 500 since the response is already broken.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshal response failed", "error", err)
		http.Error(w, `{"success":false,"message":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// marshalEnvelope marshals an envelope for handlers that need the raw
// bytes (to cache them). On failure it writes the 500 fallback and
// returns ok=false.
func marshalEnvelope(w http.ResponseWriter, e envelope) ([]byte, bool) {
	body, err := json.Marshal(e)
	if err != nil {
		slog.Error("marshal response failed", "error", err)
		http.Error(w, `{"success":false,"message":"Internal server error"}`, http.StatusInternalServerError)
		return nil, false
	}
	return body, true
}

// respondData writes a successful envelope carrying data.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondMessage writes a successful envelope carrying data and a
// human-readable message.
func respondMessage(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

// respondError writes a failed envelope with a message.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondStoreError maps store errors onto the API's status codes:
// validation lists become 400 with the message list, ErrNotFound becomes
// 404, ErrAlreadyApproved becomes 409, and anything else is a 500
// persistence failure.
func respondStoreError(w http.ResponseWriter, err error, notFoundMessage string) {
	var verrs store.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  verrs,
		})
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, store.ErrAlreadyApproved):
		respondError(w, http.StatusConflict, "Comment is already approved")
	default:
		slog.Error("store operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save data")
	}
}

// decodeBody decodes a JSON request body into v, answering 400 on
// malformed input. Returns false when the response was already written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// MethodNotAllowed is chi's fallback for known paths with unsupported
// methods, kept inside the JSON envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// NotFound answers unknown API paths inside the JSON envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Endpoint not found")
}

// Health returns a simple JSON health check response.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// invalidate flushes the response cache after a write. Safe on a nil
// cache.
func (a *API) invalidate(r *http.Request) {
	a.responseCache.InvalidateAll(r.Context())
}
