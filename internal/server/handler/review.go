// Package handler provides the HTTP handlers for the review API.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wikimentor/wiki-mentor/internal/config"
	"github.com/wikimentor/wiki-mentor/internal/core"
)

// errorResponse is the uniform error body for the API.
type errorResponse struct {
	Detail string `json:"detail"`
}

// ReviewHandler serves the content review endpoints.
type ReviewHandler struct {
	reviewer core.Reviewer
	logger   *slog.Logger
}

// NewReviewHandler creates a handler backed by the given reviewer.
func NewReviewHandler(reviewer core.Reviewer, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		logger:   logger,
	}
}

// Review handles POST /api/review. It validates the submission, runs
// the review and writes the combined response. Any failure past
// validation is surfaced as a single generic server error; there are no
// retries and no partial results.
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	var sub core.ContentSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(sub.Content) == "" {
		h.writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	h.logger.Info("review request received", "title", sub.Title)

	resp, err := h.reviewer.Review(r.Context(), sub)
	if err != nil {
		h.logger.Error("failed to process review", "title", sub.Title, "error", err)
		h.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing review: %s", err))
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /api/health.
func (h *ReviewHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": config.ServiceName,
	})
}

// Root handles GET / with static service metadata.
func (h *ReviewHandler) Root(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": config.ServiceName + " API",
		"version": config.Version,
		"endpoints": map[string]string{
			"review": "/api/review",
			"health": "/api/health",
		},
	})
}

func (h *ReviewHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *ReviewHandler) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, errorResponse{Detail: detail})
}
