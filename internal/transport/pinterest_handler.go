package transport

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stylevault/internal/middleware"
	"stylevault/internal/pinterest"
	"stylevault/internal/service"
)

// PinterestCallbackRequest represents the OAuth redirect result posted back
// by the frontend
type PinterestCallbackRequest struct {
	Code        string `json:"code" validate:"required"`
	State       string `json:"state" validate:"required"`
	RedirectURI string `json:"redirectUri"`
}

// AuthURLResponse carries the consent-screen URL for the frontend redirect
type AuthURLResponse struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}

// PinterestHandler handles HTTP requests for the Pinterest integration
type PinterestHandler struct {
	pinterest service.PinterestService
	logger    *zap.Logger
}

// NewPinterestHandler creates a new PinterestHandler
func NewPinterestHandler(pinterestService service.PinterestService, logger *zap.Logger) *PinterestHandler {
	return &PinterestHandler{
		pinterest: pinterestService,
		logger:    logger,
	}
}

// RegisterRoutes registers all Pinterest routes. The auth-url and callback
// routes act on the authenticated subject rather than a path parameter.
func (h *PinterestHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/pinterest", func(r chi.Router) {
		r.Get("/auth-url", h.AuthURL)
		r.Post("/callback", h.Callback)

		r.Group(func(r chi.Router) {
			r.Use(selfOnly)
			r.Get("/boards/{userID}", h.Boards)
			r.Get("/pins/{userID}/{boardID}", h.Pins)
			r.Delete("/disconnect/{userID}", h.Disconnect)
		})
	})
}

// AuthURL handles starting the authorization-code flow
func (h *PinterestHandler) AuthURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	authURL, state, err := h.pinterest.AuthURL(r.Context(), userID, r.URL.Query().Get("redirectUri"))
	if err != nil {
		if errors.Is(err, service.ErrPinterestNotConfigured) {
			middleware.RespondWithError(w, http.StatusInternalServerError, "pinterest app credentials not configured")
			return
		}
		h.logger.Error("Failed to build Pinterest auth URL", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to generate pinterest auth url")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, AuthURLResponse{AuthURL: authURL, State: state})
}

// Callback handles completing the authorization-code flow
func (h *PinterestHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req PinterestCallbackRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Pinterest callback validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stateUserID, err := h.pinterest.CompleteAuth(r.Context(), req.Code, req.State, req.RedirectURI)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOAuthState) {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid or expired state")
			return
		}
		if errors.Is(err, service.ErrPinterestNotConfigured) {
			middleware.RespondWithError(w, http.StatusInternalServerError, "pinterest app credentials not configured")
			return
		}
		h.logger.Error("Pinterest token exchange failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadGateway, "failed to exchange code for token")
		return
	}

	// The state must belong to the caller; a stolen state is useless.
	if stateUserID != userID {
		h.logger.Warn("Pinterest state user mismatch",
			zap.String("user_id", userID),
			zap.String("state_user_id", stateUserID),
		)
		middleware.RespondWithError(w, http.StatusForbidden, "state does not belong to this user")
		return
	}

	h.logger.Info("Pinterest connected", zap.String("user_id", userID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"userId":  userID,
	})
}

// Boards handles listing the connected account's boards
func (h *PinterestHandler) Boards(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	boards, err := h.pinterest.Boards(r.Context(), userID)
	if err != nil {
		h.respondPinterestError(w, err, "failed to fetch pinterest boards")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"boards": boards})
}

// Pins handles listing the pins on one board
func (h *PinterestHandler) Pins(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	boardID := chi.URLParam(r, "boardID")

	pins, err := h.pinterest.Pins(r.Context(), userID, boardID)
	if err != nil {
		h.respondPinterestError(w, err, "failed to fetch pinterest pins")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"pins": pins})
}

// Disconnect handles removing the stored Pinterest credentials
func (h *PinterestHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.pinterest.Disconnect(r.Context(), userID); err != nil {
		h.logger.Error("Failed to disconnect Pinterest", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to disconnect pinterest")
		return
	}

	h.logger.Info("Pinterest disconnected", zap.String("user_id", userID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// respondPinterestError maps integration failures: a missing connection is
// 401, an upstream Pinterest status is forwarded as-is.
func (h *PinterestHandler) respondPinterestError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, service.ErrPinterestNotConnected) {
		middleware.RespondWithError(w, http.StatusUnauthorized, "pinterest not connected")
		return
	}

	var apiErr *pinterest.APIError
	if errors.As(err, &apiErr) {
		middleware.RespondWithError(w, apiErr.StatusCode, message)
		return
	}

	h.logger.Error("Pinterest request failed", zap.Error(err))
	middleware.RespondWithError(w, http.StatusBadGateway, message)
}
