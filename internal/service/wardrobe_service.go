package service

import (
	"context"
	"fmt"

	"stylevault/internal/csvimport"
	"stylevault/internal/domain"
	"stylevault/internal/repository"
)

// ImportResult reports one CSV import. Partial success is a first-class
// outcome: a file may yield stored orders and row errors at the same time.
type ImportResult struct {
	Orders        []domain.Order
	ItemsImported int
	RowErrors     []string
}

// WardrobeService defines the interface for wardrobe import logic.
type WardrobeService interface {
	// ImportCSV parses the raw CSV text, groups the surviving items into
	// dated orders and appends them to the user's order history.
	ImportCSV(ctx context.Context, userID, csvText string) (*ImportResult, error)
}

type wardrobeService struct {
	orders repository.OrderRepository
}

// NewWardrobeService creates a new instance of WardrobeService.
func NewWardrobeService(orders repository.OrderRepository) WardrobeService {
	return &wardrobeService{orders: orders}
}

func (s *wardrobeService) ImportCSV(ctx context.Context, userID, csvText string) (*ImportResult, error) {
	parsed := csvimport.Parse(csvText)

	result := &ImportResult{
		ItemsImported: len(parsed.Items),
		RowErrors:     parsed.Errors,
	}
	if len(parsed.Items) == 0 {
		// Structural failure or every row rejected; nothing to persist.
		return result, nil
	}

	orders := csvimport.ConvertItemsToOrders(parsed.Items)
	if err := s.orders.Append(ctx, userID, orders...); err != nil {
		return nil, fmt.Errorf("failed to store imported orders: %w", err)
	}

	result.Orders = orders
	return result, nil
}
