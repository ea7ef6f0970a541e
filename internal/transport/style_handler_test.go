package transport

import (
	"net/http"
	"testing"

	"stylevault/internal/domain"
)

func TestSocialConnectionsDefault(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/social/user-1", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var connections domain.SocialConnections
	decodeBody(t, w, &connections)
	if connections.Instagram || connections.TikTok || connections.Pinterest {
		t.Errorf("fresh user must read all-disconnected, got %+v", connections)
	}
}

func TestSocialConnectionsRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/api/social/user-1", "user-1", map[string]bool{
		"instagram": true,
		"pinterest": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on save, got %d: %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/api/social/user-1", "user-1", nil)
	var connections domain.SocialConnections
	decodeBody(t, w, &connections)
	if !connections.Instagram || !connections.Pinterest || connections.TikTok {
		t.Errorf("unexpected connections: %+v", connections)
	}
}

func TestWishlistRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/wishlist/user-1", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var wishlist []int64
	decodeBody(t, w, &wishlist)
	if len(wishlist) != 0 {
		t.Errorf("expected empty wishlist, got %v", wishlist)
	}

	w = api.do(t, http.MethodPut, "/api/wishlist/user-1", "user-1", []int64{1718000000001, 1718000000002})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on save, got %d", w.Code)
	}

	w = api.do(t, http.MethodGet, "/api/wishlist/user-1", "user-1", nil)
	decodeBody(t, w, &wishlist)
	if len(wishlist) != 2 || wishlist[1] != 1718000000002 {
		t.Errorf("unexpected wishlist: %v", wishlist)
	}
}

func TestStyleAnalysisNullUntilSaved(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/style-analysis/user-1", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected null body before first save, got %q", body)
	}
}

func TestStyleAnalysisRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	payload := domain.StyleAnalysis{
		DominantStyles: []domain.StyleShare{
			{Name: "Minimalist", Percentage: 60},
			{Name: "Classic", Percentage: 40},
		},
		ColorPalette: []domain.ColorShare{
			{Name: "Black", Hex: "#000000", Percentage: 50},
			{Name: "Ivory", Hex: "#FFFFF0", Percentage: 50},
		},
	}

	w := api.do(t, http.MethodPut, "/api/style-analysis/user-1", "user-1", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on save, got %d: %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodGet, "/api/style-analysis/user-1", "user-1", nil)
	var analysis domain.StyleAnalysis
	decodeBody(t, w, &analysis)
	if len(analysis.DominantStyles) != 2 || analysis.DominantStyles[0].Name != "Minimalist" {
		t.Errorf("unexpected analysis: %+v", analysis)
	}
}

func TestInspirationRoundTrip(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/inspiration/user-1", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected null body before first save, got %q", body)
	}

	w = api.do(t, http.MethodPut, "/api/inspiration/user-1", "user-1", map[string][]string{
		"images": {"https://example.com/a.jpg", "https://example.com/b.jpg"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on save, got %d: %s", w.Code, w.Body.String())
	}

	var inspiration domain.Inspiration
	decodeBody(t, w, &inspiration)
	if len(inspiration.Images) != 2 || inspiration.UpdatedAt.IsZero() {
		t.Errorf("unexpected inspiration: %+v", inspiration)
	}
}

func TestInspirationSaveValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPut, "/api/inspiration/user-1", "user-1", map[string][]string{
		"images": {},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty image set, got %d", w.Code)
	}
}
