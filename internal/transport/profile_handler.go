package transport

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stylevault/internal/domain"
	"stylevault/internal/middleware"
	"stylevault/internal/repository"
)

// ProfileRequest represents the profile save payload
type ProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ProfileHandler handles HTTP requests for user profiles
type ProfileHandler struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles repository.ProfileRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// RegisterRoutes registers all profile routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/profile/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.Get)
		r.Put("/", h.Save)
	})
}

// Get handles fetching the user's profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "profile not found")
			return
		}
		h.logger.Error("Failed to fetch profile", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, profile)
}

// Save handles overwriting the user's profile
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Profile validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")
	profile := &domain.Profile{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.profiles.Save(r.Context(), userID, profile); err != nil {
		h.logger.Error("Failed to save profile", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	h.logger.Info("Profile saved", zap.String("user_id", userID))
	middleware.RespondWithJSON(w, http.StatusOK, profile)
}
