package domain

// OrderStatusDelivered is the only status the platform records. It is a
// display label, not a state machine.
const OrderStatusDelivered = "delivered"

// Order is a dated bundle of wardrobe items representing one purchase or
// import batch. Total is always recomputed from the items, never trusted
// from the wire.
type Order struct {
	ID     string         `json:"id"`
	Date   string         `json:"date"`
	Items  []WardrobeItem `json:"items"`
	Total  float64        `json:"total"`
	Status string         `json:"status"`
}
