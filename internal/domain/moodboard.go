package domain

import "time"

// Moodboard is a generated outfit bundle combining user-chosen and
// auto-selected wardrobe items.
//
// WardrobeItems is always UserSelectedItems followed by AIGeneratedItems.
// Records written before the substreams existed carry only WardrobeItems;
// readers must treat the substreams as optional.
type Moodboard struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	CreatedAt         time.Time      `json:"createdAt"`
	InspirationImages []string       `json:"inspirationImages"`
	WardrobeItems     []WardrobeItem `json:"wardrobeItems"`
	UserSelectedItems []WardrobeItem `json:"userSelectedItems,omitempty"`
	AIGeneratedItems  []WardrobeItem `json:"aiGeneratedItems,omitempty"`
	TotalValue        float64        `json:"totalValue"`
	ItemCount         int            `json:"itemCount"`
	Categories        []string       `json:"categories"`
	DominantBrand     string         `json:"dominantBrand"`
}
