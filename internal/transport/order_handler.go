package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stylevault/internal/domain"
	"stylevault/internal/middleware"
	"stylevault/internal/repository"
	"stylevault/internal/service"
)

// AddOrderRequest represents a single order append payload. Item prices are
// trusted; the order total is not — it is recomputed server side.
type AddOrderRequest struct {
	ID     string              `json:"id"`
	Date   string              `json:"date" validate:"required"`
	Items  []WardrobeItemInput `json:"items" validate:"required,min=1,dive"`
	Status string              `json:"status"`
}

// WardrobeItemInput represents one wardrobe item on the wire
type WardrobeItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Brand    string  `json:"brand" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Color    string  `json:"color" validate:"required"`
	Size     string  `json:"size"`
	Image    string  `json:"image"`
	Date     string  `json:"date"`
}

// ImportCSVRequest represents a CSV wardrobe import payload
type ImportCSVRequest struct {
	CSV string `json:"csv" validate:"required"`
}

// ImportCSVResponse reports what an import stored and which rows failed
type ImportCSVResponse struct {
	Orders        []domain.Order `json:"orders"`
	ItemsImported int            `json:"itemsImported"`
	Errors        []string       `json:"errors"`
}

// OrderHandler handles HTTP requests for order history
type OrderHandler struct {
	orders   repository.OrderRepository
	wardrobe service.WardrobeService
	logger   *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders repository.OrderRepository, wardrobe service.WardrobeService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		wardrobe: wardrobe,
		logger:   logger,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router, selfOnly func(http.Handler) http.Handler) {
	r.Route("/orders/{userID}", func(r chi.Router) {
		r.Use(selfOnly)
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Post("/import", h.ImportCSV)
	})
}

// List handles fetching the user's order history
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	orders, err := h.orders.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// Add handles appending one order to the user's history
func (h *OrderHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddOrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")
	order := req.toOrder()

	if err := h.orders.Append(r.Context(), userID, order); err != nil {
		h.logger.Error("Failed to save order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save order")
		return
	}

	h.logger.Info("Order saved",
		zap.String("user_id", userID),
		zap.Int("items", len(order.Items)),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// ImportCSV handles a CSV wardrobe import. Partial success is a normal
// outcome: a 200 response may still carry row errors.
func (h *OrderHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	var req ImportCSVRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Import validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := chi.URLParam(r, "userID")

	result, err := h.wardrobe.ImportCSV(r.Context(), userID, req.CSV)
	if err != nil {
		h.logger.Error("CSV import failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to import wardrobe")
		return
	}

	response := ImportCSVResponse{
		Orders:        result.Orders,
		ItemsImported: result.ItemsImported,
		Errors:        result.RowErrors,
	}
	if response.Orders == nil {
		response.Orders = []domain.Order{}
	}
	if response.Errors == nil {
		response.Errors = []string{}
	}

	status := http.StatusOK
	if result.ItemsImported == 0 {
		// Nothing importable: structural failure or every row rejected.
		status = http.StatusBadRequest
	}

	h.logger.Info("CSV import finished",
		zap.String("user_id", userID),
		zap.Int("items", result.ItemsImported),
		zap.Int("row_errors", len(result.RowErrors)),
	)
	middleware.RespondWithJSON(w, status, response)
}

func (req AddOrderRequest) toOrder() domain.Order {
	order := domain.Order{
		ID:     req.ID,
		Date:   req.Date,
		Status: req.Status,
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusDelivered
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, item.toDomain())
		order.Total += item.Price
	}
	return order
}

func (in WardrobeItemInput) toDomain() domain.WardrobeItem {
	return domain.WardrobeItem{
		Name:     in.Name,
		Brand:    in.Brand,
		Category: in.Category,
		Price:    in.Price,
		Color:    in.Color,
		Size:     in.Size,
		Image:    in.Image,
		Date:     in.Date,
	}
}
