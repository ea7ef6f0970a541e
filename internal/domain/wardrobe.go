package domain

// Wardrobe categories the moodboard generator keys on. The category field is
// an open set; imports may carry values outside this list.
const (
	CategoryTops        = "Tops"
	CategoryBottoms     = "Bottoms"
	CategoryDresses     = "Dresses"
	CategoryOuterwear   = "Outerwear"
	CategoryShoes       = "Shoes"
	CategoryAccessories = "Accessories"
	CategoryJewelry     = "Jewelry"
)

// PlaceholderImage is substituted when an imported item carries no image URL.
const PlaceholderImage = "https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?w=300&h=300&fit=crop"

// WardrobeItem is a single garment or accessory record.
type WardrobeItem struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Color    string  `json:"color"`
	Size     string  `json:"size,omitempty"`
	Image    string  `json:"image,omitempty"`
	Date     string  `json:"date,omitempty"`
}

// SameGarment reports whether two items refer to the same garment.
// Identity is the (name, brand) pair, compared case-sensitively.
func (w WardrobeItem) SameGarment(other WardrobeItem) bool {
	return w.Name == other.Name && w.Brand == other.Brand
}
