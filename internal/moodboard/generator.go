package moodboard

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"stylevault/internal/domain"
)

var (
	// ErrEmptySelection is returned when the primary path is called without
	// any user-selected items. It is raised before any random draw.
	ErrEmptySelection = errors.New("at least one selected wardrobe item is required")

	// ErrInsufficientInventory is returned when quick-create cannot anchor an
	// outfit on either a dress or a top/bottom pair.
	ErrInsufficientInventory = errors.New("not enough wardrobe items to build a complete outfit")
)

// Rand is the source of randomness the generator draws from. *math/rand.Rand
// satisfies it; tests inject deterministic or counting implementations.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// styleLabels are the name templates a board name is drawn from.
var styleLabels = []string{
	"Luxury Edit",
	"Capsule Collection",
	"Styled Wardrobe",
	"Fashion Curation",
	"Designer Mix",
	"Elevated Style",
	"Signature Look",
	"Curated Edit",
}

// Generator completes outfits out of a wardrobe inventory. It is stateless
// apart from its random source and safe for sequential reuse.
type Generator struct {
	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// NewDefaultGenerator returns a generator backed by a time-seeded PRNG.
func NewDefaultGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate builds a moodboard around the user's selection, filling category
// gaps from the rest of the inventory. Items already selected are never
// picked again; availability is the set difference by (name, brand).
//
// The returned board's WardrobeItems is always the selection followed by the
// generated items, in that order.
func (g *Generator) Generate(inventory, selected []domain.WardrobeItem) (domain.Moodboard, error) {
	if len(selected) == 0 {
		return domain.Moodboard{}, ErrEmptySelection
	}

	available := subtractSelected(inventory, selected)
	generated := g.completeOutfit(available, selectionFlags(selected))

	return g.assemble(selected, generated), nil
}

// QuickCreate builds a complete outfit from scratch. It anchors on either a
// dress or a top/bottom pair (50/50 when both are possible), then applies the
// same shoes, outerwear and accessory rules as Generate.
func (g *Generator) QuickCreate(inventory []domain.WardrobeItem) (domain.Moodboard, error) {
	dresses := filterCategory(inventory, domain.CategoryDresses)
	tops := filterCategory(inventory, domain.CategoryTops)
	bottoms := filterCategory(inventory, domain.CategoryBottoms)

	if len(dresses) == 0 && len(tops) == 0 && len(bottoms) == 0 {
		return domain.Moodboard{}, ErrInsufficientInventory
	}

	// Coin-flip the anchor only when both options can actually produce items.
	useDress := len(dresses) > 0
	if useDress && len(tops)+len(bottoms) > 0 {
		useDress = g.rng.Float64() > 0.5
	}

	var anchor []domain.WardrobeItem
	if useDress {
		anchor = append(anchor, dresses[g.rng.Intn(len(dresses))])
	} else {
		if len(tops) > 0 {
			anchor = append(anchor, tops[g.rng.Intn(len(tops))])
		}
		if len(bottoms) > 0 {
			anchor = append(anchor, bottoms[g.rng.Intn(len(bottoms))])
		}
	}

	available := subtractSelected(inventory, anchor)
	generated := g.completeOutfit(available, selectionFlags(anchor))

	return g.assemble(nil, append(anchor, generated...)), nil
}

// categoryFlags records which outfit slots the selection already covers.
type categoryFlags struct {
	dress, top, bottom, shoes, outerwear, accessory bool
}

func selectionFlags(selected []domain.WardrobeItem) categoryFlags {
	var f categoryFlags
	for _, item := range selected {
		switch item.Category {
		case domain.CategoryDresses:
			f.dress = true
		case domain.CategoryTops:
			f.top = true
		case domain.CategoryBottoms:
			f.bottom = true
		case domain.CategoryShoes:
			f.shoes = true
		case domain.CategoryOuterwear:
			f.outerwear = true
		case domain.CategoryAccessories, domain.CategoryJewelry:
			f.accessory = true
		}
	}
	return f
}

// completeOutfit applies the five gap-filling rules in fixed order. The
// category pools are disjoint, so an item picked by one rule can never be
// offered to a later one.
func (g *Generator) completeOutfit(available []domain.WardrobeItem, has categoryFlags) []domain.WardrobeItem {
	tops := filterCategory(available, domain.CategoryTops)
	bottoms := filterCategory(available, domain.CategoryBottoms)
	shoes := filterCategory(available, domain.CategoryShoes)
	outerwear := filterCategory(available, domain.CategoryOuterwear)
	accessories := filterAccessories(available)

	var generated []domain.WardrobeItem

	if !has.dress && !has.top && len(tops) > 0 {
		generated = append(generated, tops[g.rng.Intn(len(tops))])
	}
	if !has.dress && !has.bottom && len(bottoms) > 0 {
		generated = append(generated, bottoms[g.rng.Intn(len(bottoms))])
	}
	if !has.shoes && len(shoes) > 0 {
		generated = append(generated, shoes[g.rng.Intn(len(shoes))])
	}
	// Outerwear is optional; a 60% gate keeps boards from always carrying a
	// coat.
	if !has.outerwear && len(outerwear) > 0 && g.rng.Float64() > 0.4 {
		generated = append(generated, outerwear[g.rng.Intn(len(outerwear))])
	}
	if !has.accessory && len(accessories) > 0 {
		count := g.rng.Intn(3) + 1
		if count > len(accessories) {
			count = len(accessories)
		}
		shuffled := append([]domain.WardrobeItem(nil), accessories...)
		g.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		generated = append(generated, shuffled[:count]...)
	}

	return generated
}

// assemble computes the aggregate metadata and the generated display name.
func (g *Generator) assemble(selected, generated []domain.WardrobeItem) domain.Moodboard {
	combined := make([]domain.WardrobeItem, 0, len(selected)+len(generated))
	combined = append(combined, selected...)
	combined = append(combined, generated...)

	categories := categorySet(combined)

	var total float64
	for _, item := range combined {
		total += item.Price
	}

	label := styleLabels[g.rng.Intn(len(styleLabels))]
	name := label
	if len(categories) <= 2 {
		name = strings.Join(categories, " & ") + " " + label
	}

	return domain.Moodboard{
		Name:              name,
		WardrobeItems:     combined,
		UserSelectedItems: selected,
		AIGeneratedItems:  generated,
		TotalValue:        total,
		ItemCount:         len(combined),
		Categories:        categories,
		DominantBrand:     dominantBrand(combined),
	}
}

// subtractSelected returns the inventory items not present in selected,
// matched by the (name, brand) garment identity.
func subtractSelected(inventory, selected []domain.WardrobeItem) []domain.WardrobeItem {
	var available []domain.WardrobeItem
	for _, item := range inventory {
		taken := false
		for _, sel := range selected {
			if item.SameGarment(sel) {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, item)
		}
	}
	return available
}

func filterCategory(items []domain.WardrobeItem, category string) []domain.WardrobeItem {
	var out []domain.WardrobeItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func filterAccessories(items []domain.WardrobeItem) []domain.WardrobeItem {
	var out []domain.WardrobeItem
	for _, item := range items {
		if item.Category == domain.CategoryAccessories || item.Category == domain.CategoryJewelry {
			out = append(out, item)
		}
	}
	return out
}

// categorySet deduplicates categories preserving first-appearance order.
func categorySet(items []domain.WardrobeItem) []string {
	var categories []string
	seen := make(map[string]bool)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// dominantBrand returns the most frequent brand. Ties break toward the brand
// that appeared first in the list.
func dominantBrand(items []domain.WardrobeItem) string {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		if counts[item.Brand] == 0 {
			order = append(order, item.Brand)
		}
		counts[item.Brand]++
	}

	best, bestCount := "", 0
	for _, brand := range order {
		if counts[brand] > bestCount {
			best, bestCount = brand, counts[brand]
		}
	}
	if best == "" {
		return "Mixed Brands"
	}
	return best
}
