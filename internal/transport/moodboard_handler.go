package transport

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stylevault/internal/domain"
	"stylevault/internal/middleware"
	"stylevault/internal/moodboard"
	"stylevault/internal/service"
)

// CreateMoodboardRequest represents the moodboard creation payload. The
// selection must be non-empty; the service fills the remaining outfit slots.
type CreateMoodboardRequest struct {
	SelectedItems     []WardrobeItemInput `json:"selectedItems" validate:"required,min=1,dive"`
	InspirationImages []string            `json:"inspirationImages"`
}

// MoodboardHandler handles HTTP requests for moodboards
type MoodboardHandler struct {
	moodboards service.MoodboardService
	logger     *zap.Logger
}

// NewMoodboardHandler creates a new MoodboardHandler
func NewMoodboardHandler(moodboards service.MoodboardService, logger *zap.Logger) *MoodboardHandler {
	return &MoodboardHandler{
		moodboards: moodboards,
		logger:     logger,
	}
}

// RegisterRoutes registers all moodboard routes
func (h *MoodboardHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/moodboards/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Post("/quick", h.QuickCreate)
		r.Delete("/", h.DeleteAll)
	})
}

// List handles fetching the user's moodboards
func (h *MoodboardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	boards, err := h.moodboards.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch moodboards", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch moodboards")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, boards)
}

// Create handles generating a moodboard around the user's selection
func (h *MoodboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMoodboardRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Moodboard validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")

	selected := make([]domain.WardrobeItem, 0, len(req.SelectedItems))
	for _, item := range req.SelectedItems {
		selected = append(selected, item.toDomain())
	}

	board, err := h.moodboards.Create(r.Context(), userID, selected, req.InspirationImages)
	if err != nil {
		if errors.Is(err, moodboard.ErrEmptySelection) {
			middleware.RespondWithError(w, http.StatusBadRequest, "at least one wardrobe item must be selected")
			return
		}
		h.logger.Error("Failed to create moodboard", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create moodboard")
		return
	}

	h.logger.Info("Moodboard created",
		zap.String("user_id", userID),
		zap.String("name", board.Name),
		zap.Int("selected", len(board.UserSelectedItems)),
		zap.Int("generated", len(board.AIGeneratedItems)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, board)
}

// QuickCreate handles building a complete outfit with no prior selection
func (h *MoodboardHandler) QuickCreate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	board, err := h.moodboards.QuickCreate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, moodboard.ErrInsufficientInventory) {
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, "not enough wardrobe items to create a complete outfit")
			return
		}
		h.logger.Error("Failed to quick-create moodboard", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create moodboard")
		return
	}

	h.logger.Info("Quick moodboard created",
		zap.String("user_id", userID),
		zap.String("name", board.Name),
		zap.Int("items", board.ItemCount),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, board)
}

// DeleteAll handles clearing the user's moodboard collection. The backend
// contract only supports whole-collection delete.
func (h *MoodboardHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.moodboards.DeleteAll(r.Context(), userID); err != nil {
		h.logger.Error("Failed to delete moodboards", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete moodboards")
		return
	}

	h.logger.Info("Moodboards cleared", zap.String("user_id", userID))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
