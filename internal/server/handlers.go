// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/noldarim/portfolio/internal/archive"
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"
)

// MessageLister backs the admin message listing.
type MessageLister interface {
	ListRecent(ctx context.Context, limit int) ([]archive.ContactMessage, error)
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	store    *content.Store
	sender   contact.Sender
	renderer *Renderer
	messages MessageLister
}

// NewHandlers creates the handler set. messages may be nil.
func NewHandlers(store *content.Store, sender contact.Sender, renderer *Renderer, messages MessageLister) *Handlers {
	return &Handlers{store: store, sender: sender, renderer: renderer, messages: messages}
}

// --- helpers ---

type errorBody struct {
	Error   string          `json:"error"`
	Context string          `json:"context,omitempty"`
	Missing []contact.Field `json:"missing,omitempty"`
}

// ContactResponse is the body of POST /api/v1/contact.
type ContactResponse struct {
	Status  contact.Status `json:"status"`
	Message string         `json:"message"`
	Fields  *contact.Form  `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLog().Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// decodeForm reads the three fields from a JSON or form-encoded body.
func decodeForm(r *http.Request) (contact.Form, error) {
	var form contact.Form
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return form, err
		}
		return form, nil
	}
	if err := r.ParseForm(); err != nil {
		return form, err
	}
	for _, f := range contact.Fields {
		_ = form.Set(f, r.PostForm.Get(string(f)))
	}
	return form, nil
}

// Index handles GET /
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, newPageData(h.store.Snapshot()))
}

// Health handles GET /healthz
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GetContent handles GET /api/v1/content
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Version", strconv.Itoa(h.store.Version()))
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// SubmitContact handles POST /api/v1/contact. Each request is one delivery
// attempt; there is no per-visitor dedup.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "request_too_large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_body", Context: err.Error()})
		return
	}

	if err := form.Validate(); err != nil {
		var verr *contact.ValidationError
		errors.As(err, &verr)
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing_fields", Context: err.Error(), Missing: verr.Missing})
		return
	}

	ctx := archive.WithRequestID(r.Context(), GetRequestID(r.Context()))
	if err := contact.Deliver(ctx, h.sender, form); err != nil {
		writeJSON(w, http.StatusBadGateway, ContactResponse{
			Status:  contact.StatusError,
			Message: contact.FailureMessage,
			Fields:  &form,
		})
		return
	}
	writeJSON(w, http.StatusOK, ContactResponse{
		Status:  contact.StatusSuccess,
		Message: contact.SuccessMessage,
	})
}

// ListMessages handles GET /api/v1/messages
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	const maxLimit = 500
	limit := archive.DefaultListLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = min(parsed, maxLimit)
		}
	}

	msgs, err := h.messages.ListRecent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to load messages", Context: err.Error()})
		return
	}
	if msgs == nil {
		msgs = []archive.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}
