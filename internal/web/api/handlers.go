// Package api implements the JSON endpoints of the review server.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmaia/critic/internal/ai"
	"github.com/rmaia/critic/internal/analyzer"
)

// Handlers holds dependencies for the REST API handlers.
type Handlers struct {
	Analyzer  *analyzer.Analyzer
	Reviewer  *ai.Reviewer
	AITimeout time.Duration
	Logger    zerolog.Logger
}

// Review handles POST /api/review. Each request is reviewed in full
// and the result returned inline; nothing is stored server-side.
func (h *Handlers) Review(w http.ResponseWriter, r *http.Request) {
	req, lang, err := decodeReviewRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.Analyzer.Review(r.Context(), req.Code, lang)

	if req.IncludeAI && h.Reviewer.Available() {
		timeout := h.AITimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		suggestions, err := h.Reviewer.Suggest(ctx, req.Code, result.Language, result.Issues)
		cancel()
		if err != nil {
			// Suggestions are best effort; the review stands on its own.
			h.Logger.Warn().Err(err).Msg("ai suggestions failed")
		} else {
			result.AISuggestions = suggestions
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// Health handles GET /api/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"gemini_available": h.Reviewer.Available(),
		"agents":           h.Analyzer.Scanners(),
	})
}
