package domain

import "time"

// Profile holds the user-editable account details. The identity provider
// owns authentication; this is display data only.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SocialConnections is the current-state-only record of linked social
// accounts. It carries no history and is fully overwritten on every save.
type SocialConnections struct {
	Instagram bool `json:"instagram"`
	TikTok    bool `json:"tiktok"`
	Pinterest bool `json:"pinterest"`
}

// Wishlist is the set of recommendation ids the user has hearted.
type Wishlist []int64

// Inspiration is the user's saved set of inspiration image URLs or data URIs.
type Inspiration struct {
	Images    []string  `json:"images"`
	UpdatedAt time.Time `json:"updatedAt"`
}
