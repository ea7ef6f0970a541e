package csvimport

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"stylevault/internal/domain"
)

// ConvertItemsToOrders groups parsed items into per-date orders so a CSV
// import lands in the same shape as seeded purchase history.
//
// Buckets are keyed by each item's date (today when absent) and emitted in
// first-insertion order; item order inside a bucket matches the input. Totals
// are recomputed from item prices.
func ConvertItemsToOrders(items []domain.WardrobeItem) []domain.Order {
	var dates []string
	byDate := make(map[string][]domain.WardrobeItem)

	today := time.Now().Format("2006-01-02")
	for _, item := range items {
		date := item.Date
		if date == "" {
			date = today
		}
		if _, seen := byDate[date]; !seen {
			dates = append(dates, date)
		}
		byDate[date] = append(byDate[date], item)
	}

	batch := time.Now().UnixMilli()
	orders := make([]domain.Order, 0, len(dates))
	for seq, date := range dates {
		order := domain.Order{
			// The random suffix keeps ids unique even when two imports land
			// in the same millisecond.
			ID:     fmt.Sprintf("csv-%d-%d-%s", batch, seq, uuid.NewString()[:8]),
			Date:   date,
			Status: domain.OrderStatusDelivered,
		}

		for _, item := range byDate[date] {
			if item.Size == "" {
				item.Size = "N/A"
			}
			if item.Image == "" {
				item.Image = domain.PlaceholderImage
			}
			// The order carries the date; the stored item does not repeat it.
			item.Date = ""

			order.Items = append(order.Items, item)
			order.Total += item.Price
		}

		orders = append(orders, order)
	}

	return orders
}
