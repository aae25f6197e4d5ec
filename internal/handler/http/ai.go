package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

func (h *Handler) generateDescription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeSuggestionRequest(w, r)
	if !ok {
		return
	}

	description, err := h.services.SuggestionService.GenerateDescription(ctx, req.Title)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DescriptionResponse{Description: description}, http.StatusOK)
}

func (h *Handler) improveTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeSuggestionRequest(w, r)
	if !ok {
		return
	}

	improvedTitle, err := h.services.SuggestionService.ImproveTitle(ctx, req.Title)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TitleResponse{Title: improvedTitle}, http.StatusOK)
}

func (h *Handler) generateSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeSuggestionRequest(w, r)
	if !ok {
		return
	}

	suggestion, err := h.services.SuggestionService.GenerateSuggestions(ctx, req.Title, req.Description)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, suggestion, http.StatusOK)
}

// decodeSuggestionRequest decodes the shared AI request body and enforces the
// presence of a title. On failure it writes the error response and returns
// ok=false.
func (h *Handler) decodeSuggestionRequest(w http.ResponseWriter, r *http.Request) (models.SuggestionRequest, bool) {
	log := logger.FromRequest(r)

	var req models.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return models.SuggestionRequest{}, false
	}

	if strings.TrimSpace(req.Title) == "" {
		log.Err(service.ErrTitleRequired).Send()
		utils.WriteError(w, service.ErrTitleRequired.Error(), http.StatusBadRequest)
		return models.SuggestionRequest{}, false
	}

	return req, true
}
