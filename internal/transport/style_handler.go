package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stylevault/internal/domain"
	"stylevault/internal/middleware"
	"stylevault/internal/repository"
)

// SaveInspirationRequest represents the inspiration image set payload
type SaveInspirationRequest struct {
	Images []string `json:"images" validate:"required,min=1"`
}

// StyleHandler handles HTTP requests for style analysis and inspiration sets
type StyleHandler struct {
	styles repository.StyleRepository
	logger *zap.Logger
}

// NewStyleHandler creates a new StyleHandler
func NewStyleHandler(styles repository.StyleRepository, logger *zap.Logger) *StyleHandler {
	return &StyleHandler{
		styles: styles,
		logger: logger,
	}
}

// RegisterRoutes registers all style analysis and inspiration routes
func (h *StyleHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/style-analysis/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.GetAnalysis)
		r.Put("/", h.SaveAnalysis)
	})
	r.Route("/inspiration/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.GetInspiration)
		r.Put("/", h.SaveInspiration)
	})
}

// GetAnalysis handles fetching the style analysis; null until one is saved.
func (h *StyleHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	analysis, err := h.styles.GetAnalysis(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithJSON(w, http.StatusOK, nil)
			return
		}
		h.logger.Error("Failed to fetch style analysis", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch style analysis")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, analysis)
}

// SaveAnalysis handles overwriting the style analysis
func (h *StyleHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var analysis domain.StyleAnalysis

	if err := json.NewDecoder(r.Body).Decode(&analysis); err != nil {
		h.logger.Debug("Style analysis decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")

	if err := h.styles.SaveAnalysis(r.Context(), userID, &analysis); err != nil {
		h.logger.Error("Failed to save style analysis", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save style analysis")
		return
	}

	h.logger.Info("Style analysis saved", zap.String("user_id", userID))
	middleware.RespondWithJSON(w, http.StatusOK, &analysis)
}

// GetInspiration handles fetching the saved inspiration image set
func (h *StyleHandler) GetInspiration(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	inspiration, err := h.styles.GetInspiration(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithJSON(w, http.StatusOK, nil)
			return
		}
		h.logger.Error("Failed to fetch inspiration", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch inspiration")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, inspiration)
}

// SaveInspiration handles storing a new inspiration image set
func (h *StyleHandler) SaveInspiration(w http.ResponseWriter, r *http.Request) {
	var req SaveInspirationRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Inspiration validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")

	inspiration, err := h.styles.SaveInspiration(r.Context(), userID, req.Images)
	if err != nil {
		h.logger.Error("Failed to save inspiration", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save inspiration")
		return
	}

	h.logger.Info("Inspiration saved",
		zap.String("user_id", userID),
		zap.Int("images", len(inspiration.Images)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, inspiration)
}
