package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"nanosite/internal/openrouter"
	"nanosite/internal/relay"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}

type generateResponse struct {
	Images []string `json:"images"`
}

// Generate relays one prompt+image pair to the model and returns every image
// reference extracted from the response. Validation and the credential check
// both short-circuit before any network call.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	// A malformed body leaves the fields empty and fails validation below.
	_ = json.NewDecoder(r.Body).Decode(&req)

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		a.error(w, http.StatusBadRequest, "Prompt is required.")
		return
	}
	if !strings.HasPrefix(req.Image, "data:image") {
		a.error(w, http.StatusBadRequest, "Image upload is required.")
		return
	}
	if a.Config.OpenRouterAPIKey == "" {
		a.error(w, http.StatusInternalServerError, "Missing OpenRouter API key.")
		return
	}

	images, err := a.Relay.Generate(r.Context(), prompt, req.Image)
	if err != nil {
		var statusErr *openrouter.StatusError
		switch {
		case errors.Is(err, openrouter.ErrMissingAPIKey):
			a.error(w, http.StatusInternalServerError, "Missing OpenRouter API key.")
		case errors.As(err, &statusErr):
			a.json(w, statusErr.StatusCode, map[string]string{
				"error":   "Upstream request failed.",
				"details": statusErr.Body,
			})
		case errors.Is(err, relay.ErrNoImages):
			a.error(w, http.StatusBadGateway, "No images returned from the model.")
		default:
			a.Logger.Error().Err(err).Msg("generate failed")
			a.error(w, http.StatusInternalServerError, "Unexpected server error.")
		}
		return
	}

	a.json(w, http.StatusOK, generateResponse{Images: images})
}
