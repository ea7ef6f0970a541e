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

// WishlistHandler handles HTTP requests for the user's wishlist
type WishlistHandler struct {
	wishlists repository.WishlistRepository
	logger    *zap.Logger
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlists repository.WishlistRepository, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlists: wishlists,
		logger:    logger,
	}
}

// RegisterRoutes registers all wishlist routes
func (h *WishlistHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/wishlist/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.Get)
		r.Put("/", h.Save)
	})
}

// Get handles fetching the wishlist; missing wishlists read as empty.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	wishlist, err := h.wishlists.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch wishlist", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch wishlist")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, wishlist)
}

// Save handles overwriting the wishlist
func (h *WishlistHandler) Save(w http.ResponseWriter, r *http.Request) {
	var wishlist domain.Wishlist

	if err := json.NewDecoder(r.Body).Decode(&wishlist); err != nil {
		h.logger.Debug("Wishlist decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")

	if err := h.wishlists.Save(r.Context(), userID, wishlist); err != nil {
		h.logger.Error("Failed to save wishlist", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save wishlist")
		return
	}

	h.logger.Info("Wishlist saved",
		zap.String("user_id", userID),
		zap.Int("items", len(wishlist)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, wishlist)
}
