package transport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stylevault/internal/domain"
	"stylevault/internal/middleware"
	"stylevault/internal/repository"
)

// SocialHandler handles HTTP requests for social connection flags
type SocialHandler struct {
	social repository.SocialRepository
	logger *zap.Logger
}

// NewSocialHandler creates a new SocialHandler
func NewSocialHandler(social repository.SocialRepository, logger *zap.Logger) *SocialHandler {
	return &SocialHandler{
		social: social,
		logger: logger,
	}
}

// RegisterRoutes registers all social connection routes
func (h *SocialHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/social/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.Get)
		r.Put("/", h.Save)
	})
}

// Get handles fetching the connection flags; a user who never saved any
// gets the all-disconnected default.
func (h *SocialHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	connections, err := h.social.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch social connections", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch social connections")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, connections)
}

// Save handles overwriting the connection flags. The record is
// current-state-only; there is nothing to merge.
func (h *SocialHandler) Save(w http.ResponseWriter, r *http.Request) {
	var connections domain.SocialConnections

	if err := json.NewDecoder(r.Body).Decode(&connections); err != nil {
		h.logger.Debug("Social connections decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")

	if err := h.social.Save(r.Context(), userID, connections); err != nil {
		h.logger.Error("Failed to save social connections", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save social connections")
		return
	}

	h.logger.Info("Social connections saved",
		zap.String("user_id", userID),
		zap.Bool("instagram", connections.Instagram),
		zap.Bool("tiktok", connections.TikTok),
		zap.Bool("pinterest", connections.Pinterest),
	)
	middleware.RespondWithJSON(w, http.StatusOK, connections)
}
