package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rmaia/critic/pkg/types"
)

// ReviewRequest is the JSON body for POST /api/review.
type ReviewRequest struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	IncludeAI bool   `json:"include_ai"`
}

// decodeReviewRequest reads and validates the request body.
func decodeReviewRequest(r *http.Request) (*ReviewRequest, types.Language, error) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, types.LanguageUnknown, fmt.Errorf("invalid JSON: %w", err)
	}

	if strings.TrimSpace(req.Code) == "" {
		return nil, types.LanguageUnknown, fmt.Errorf("code is required")
	}

	lang, err := types.ParseLanguage(req.Language)
	if err != nil {
		return nil, types.LanguageUnknown, err
	}

	return &req, lang, nil
}
