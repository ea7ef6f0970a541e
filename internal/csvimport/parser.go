package csvimport

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"stylevault/internal/domain"
)

// Result carries the surviving items plus every row-level error from one
// import. Errors and successes are independent; a file may yield both.
type Result struct {
	Items  []domain.WardrobeItem
	Errors []string
}

// Header synonyms, matched case-insensitively after trimming. The synonym
// sets are disjoint, so each header cell binds at most one logical field.
var (
	nameVariants     = []string{"name", "item", "product", "item name", "product name"}
	brandVariants    = []string{"brand", "designer", "maker"}
	categoryVariants = []string{"category", "type", "item type", "product type"}
	priceVariants    = []string{"price", "cost", "amount"}
	colorVariants    = []string{"color", "colour"}
	sizeVariants     = []string{"size"}
	imageVariants    = []string{"image", "image url", "photo", "picture", "img"}
	dateVariants     = []string{"date", "purchase date", "date purchased", "order date"}
)

// columns maps logical fields to header column indexes; -1 means unresolved.
type columns struct {
	name, brand, category, price, color, size, image, date int
}

// Parse converts raw comma-separated text into wardrobe items.
//
// The first line is the header; its cells are resolved against the synonym
// sets above. Rows that cannot be parsed are skipped and reported with their
// 1-based position in the file (the header counts as row 1); the batch never
// aborts on a bad row. Parse itself never panics.
func Parse(text string) Result {
	var res Result

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		res.Errors = append(res.Errors, "CSV file must contain at least a header row and one data row")
		return res
	}

	// The header is split on bare commas; quoted header cells are not
	// supported.
	header := strings.Split(lines[0], ",")
	cols := resolveColumns(header)

	if missing := cols.missingRequired(); len(missing) > 0 {
		res.Errors = append(res.Errors, "Missing required columns: "+strings.Join(missing, ", "))
		return res
	}

	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		item, err := parseRow(line, len(header), cols, i+1)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		res.Items = append(res.Items, item)
	}

	return res
}

// resolveColumns binds each header cell to a logical field. The first column
// matching a synonym wins; later duplicates are ignored.
func resolveColumns(header []string) columns {
	cols := columns{
		name: -1, brand: -1, category: -1, price: -1,
		color: -1, size: -1, image: -1, date: -1,
	}

	for i, raw := range header {
		cell := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case cols.name < 0 && slices.Contains(nameVariants, cell):
			cols.name = i
		case cols.brand < 0 && slices.Contains(brandVariants, cell):
			cols.brand = i
		case cols.category < 0 && slices.Contains(categoryVariants, cell):
			cols.category = i
		case cols.price < 0 && slices.Contains(priceVariants, cell):
			cols.price = i
		case cols.color < 0 && slices.Contains(colorVariants, cell):
			cols.color = i
		case cols.size < 0 && slices.Contains(sizeVariants, cell):
			cols.size = i
		case cols.image < 0 && slices.Contains(imageVariants, cell):
			cols.image = i
		case cols.date < 0 && slices.Contains(dateVariants, cell):
			cols.date = i
		}
	}

	return cols
}

func (c columns) missingRequired() []string {
	var missing []string
	if c.name < 0 {
		missing = append(missing, "name")
	}
	if c.brand < 0 {
		missing = append(missing, "brand")
	}
	if c.category < 0 {
		missing = append(missing, "category")
	}
	if c.price < 0 {
		missing = append(missing, "price")
	}
	if c.color < 0 {
		missing = append(missing, "color")
	}
	return missing
}

// parseRow extracts one item from a data row. Any panic while parsing is
// converted into a row error so a corrupt row can never abort the batch.
func parseRow(line string, headerLen int, cols columns, rowNum int) (item domain.WardrobeItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Row %d: %v", rowNum, r)
		}
	}()

	values := splitFields(line)
	if len(values) < headerLen {
		return item, fmt.Errorf("Row %d: Insufficient columns", rowNum)
	}

	item = domain.WardrobeItem{
		Name:     strings.TrimSpace(values[cols.name]),
		Brand:    strings.TrimSpace(values[cols.brand]),
		Category: strings.TrimSpace(values[cols.category]),
		Price:    parsePrice(values[cols.price]),
		Color:    strings.TrimSpace(values[cols.color]),
	}

	if cols.size >= 0 {
		item.Size = strings.TrimSpace(values[cols.size])
	}
	if cols.image >= 0 {
		item.Image = strings.TrimSpace(values[cols.image])
	}
	if cols.date >= 0 {
		item.Date = strings.TrimSpace(values[cols.date])
	}

	if item.Name == "" || item.Brand == "" || item.Category == "" || item.Color == "" {
		return domain.WardrobeItem{}, fmt.Errorf("Row %d: Missing required field values", rowNum)
	}

	return item, nil
}

// splitFields tokenizes one row with quote awareness: a quote toggles quote
// mode, a doubled quote inside quotes emits a literal quote, and commas only
// terminate fields outside quote mode.
func splitFields(line string) []string {
	var fields []string
	var current strings.Builder

	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, current.String())

	return fields
}

// parsePrice strips everything that is not a digit or dot from the raw token
// and parses what is left. Unparseable prices become 0; price leniency is
// deliberate and never produces a row error.
func parsePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
