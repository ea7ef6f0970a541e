package csvimport

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseValidCSV(t *testing.T) {
	csv := "Name,Brand,Category,Price,Color,Size\n" +
		"Silk Blouse,Equipment,Tops,228.00,Ivory,S\n" +
		"Leather Boots,Acne Studios,Shoes,450,Black,38\n"

	res := Parse(csv)

	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}

	first := res.Items[0]
	if first.Name != "Silk Blouse" || first.Brand != "Equipment" || first.Category != "Tops" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if first.Price != 228.00 {
		t.Errorf("expected price 228.00, got %v", first.Price)
	}
	if first.Size != "S" {
		t.Errorf("expected size S, got %q", first.Size)
	}
}

func TestParseHeaderSynonyms(t *testing.T) {
	csv := "Item,Designer,Type,Cost,Colour\n" +
		"Wool Coat,Max Mara,Outerwear,1200,Camel\n"

	res := Parse(csv)

	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	if res.Items[0].Brand != "Max Mara" || res.Items[0].Color != "Camel" {
		t.Errorf("synonym columns not resolved: %+v", res.Items[0])
	}
}

func TestParseDuplicateHeaderFirstMatchWins(t *testing.T) {
	csv := "name,item,brand,category,price,color\n" +
		"Real Name,Alias,Chanel,Accessories,95,Black\n"

	res := Parse(csv)

	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d (errors: %v)", len(res.Items), res.Errors)
	}
	if res.Items[0].Name != "Real Name" {
		t.Errorf("expected first matching column to win, got name %q", res.Items[0].Name)
	}
}

func TestParseMissingRequiredColumns(t *testing.T) {
	csv := "Name,Brand,Color\n" +
		"Something,Someone,Red\n"

	res := Parse(csv)

	if len(res.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(res.Items))
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	if !strings.Contains(res.Errors[0], "category") || !strings.Contains(res.Errors[0], "price") {
		t.Errorf("error should name the missing columns: %q", res.Errors[0])
	}
}

func TestParseTooFewLines(t *testing.T) {
	res := Parse("Name,Brand,Category,Price,Color\n")

	if len(res.Items) != 0 || len(res.Errors) != 1 {
		t.Fatalf("expected structural error only, got items=%d errors=%v", len(res.Items), res.Errors)
	}
}

func TestParseQuotedFieldWithComma(t *testing.T) {
	csv := "Name,Brand,Category,Price,Color\n" +
		`Loafers,"Gucci, Inc.",Shoes,790,Brown` + "\n"

	res := Parse(csv)

	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
	if res.Items[0].Brand != "Gucci, Inc." {
		t.Errorf("quoted comma split the field: %q", res.Items[0].Brand)
	}
}

func TestParseEscapedQuotes(t *testing.T) {
	csv := "Name,Brand,Category,Price,Color\n" +
		`"The ""Classic"" Tee",Everlane,Tops,30,White` + "\n"

	res := Parse(csv)

	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", res.Errors)
	}
	if res.Items[0].Name != `The "Classic" Tee` {
		t.Errorf("escaped quotes mishandled: %q", res.Items[0].Name)
	}
}

func TestParsePriceStripping(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`"$1,234.56"`, 1234.56},
		{"$89.99", 89.99},
		{"free", 0},
		{"EUR 120", 120},
	}

	for _, tc := range cases {
		csv := "Name,Brand,Category,Price,Color\n" +
			fmt.Sprintf("Bag,Celine,Accessories,%s,Tan\n", tc.raw)

		res := Parse(csv)
		if len(res.Items) != 1 {
			t.Fatalf("price %q: expected 1 item, got errors %v", tc.raw, res.Errors)
		}
		if res.Items[0].Price != tc.want {
			t.Errorf("price %q: expected %v, got %v", tc.raw, tc.want, res.Items[0].Price)
		}
	}
}

func TestParseRowErrors(t *testing.T) {
	csv := "Name,Brand,Category,Price,Color\n" +
		"Valid Top,COS,Tops,45,Blue\n" +
		"Too,Few\n" +
		",Missing,Name,10,Red\n"

	res := Parse(csv)

	if len(res.Items) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(res.Items))
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", res.Errors)
	}
	// Row numbers are 1-based and count the header.
	if !strings.HasPrefix(res.Errors[0], "Row 3:") {
		t.Errorf("expected error for row 3, got %q", res.Errors[0])
	}
	if !strings.HasPrefix(res.Errors[1], "Row 4:") {
		t.Errorf("expected error for row 4, got %q", res.Errors[1])
	}
}

func TestParseSkipsEmptyLines(t *testing.T) {
	csv := "Name,Brand,Category,Price,Color\n" +
		"Top,COS,Tops,45,Blue\n" +
		"\n" +
		"Skirt,Arket,Bottoms,60,Green\n"

	res := Parse(csv)

	if len(res.Items) != 2 || len(res.Errors) != 0 {
		t.Fatalf("blank line should be skipped silently: items=%d errors=%v", len(res.Items), res.Errors)
	}
}

func TestProperty_ItemsPlusErrorsEqualsDataRows(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every non-empty data row becomes an item or an error", prop.ForAll(
		func(names []string, badRows int) bool {
			if badRows < 0 {
				badRows = -badRows
			}
			badRows = badRows % 4

			var sb strings.Builder
			sb.WriteString("Name,Brand,Category,Price,Color\n")

			rows := 0
			for _, name := range names {
				name = strings.Map(func(r rune) rune {
					if r == ',' || r == '"' || r == '\n' || r == '\r' {
						return -1
					}
					return r
				}, name)
				if strings.TrimSpace(name) == "" {
					continue
				}
				fmt.Fprintf(&sb, "%s,BrandX,Tops,10,Blue\n", name)
				rows++
			}
			for i := 0; i < badRows; i++ {
				sb.WriteString("only,two\n")
				rows++
			}

			if rows == 0 {
				return true
			}

			res := Parse(sb.String())
			return len(res.Items)+len(res.Errors) == rows
		},
		gen.SliceOf(gen.AlphaString()),
		gen.Int(),
	))

	properties.TestingRun(t)
}
