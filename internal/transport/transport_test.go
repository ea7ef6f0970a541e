package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"stylevault/internal/middleware"
	"stylevault/internal/moodboard"
	"stylevault/internal/repository"
	"stylevault/internal/service"
)

const testJWTSecret = "test-secret"

// testAPI wires the full authenticated router against miniredis, mirroring
// the production middleware chain.
type testAPI struct {
	router *chi.Mux
	client *redis.Client
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()

	orders := repository.NewOrderRepository(client)
	moodboards := repository.NewMoodboardRepository(client)
	profiles := repository.NewProfileRepository(client)
	socials := repository.NewSocialRepository(client)
	wishlists := repository.NewWishlistRepository(client)
	styles := repository.NewStyleRepository(client)

	wardrobeService := service.NewWardrobeService(orders)
	moodboardService := service.NewMoodboardService(orders, moodboards, styles, moodboard.NewDefaultGenerator())

	selfOnly := middleware.RequireSelf(logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(testJWTSecret, logger))

		NewProfileHandler(profiles, logger).RegisterRoutes(r, selfOnly)
		NewOrderHandler(orders, wardrobeService, logger).RegisterRoutes(r, selfOnly)
		NewMoodboardHandler(moodboardService, logger).RegisterRoutes(r, selfOnly)
		NewSocialHandler(socials, logger).RegisterRoutes(r, selfOnly)
		NewWishlistHandler(wishlists, logger).RegisterRoutes(r, selfOnly)
		NewStyleHandler(styles, logger).RegisterRoutes(r, selfOnly)
	})

	return &testAPI{router: r, client: client}
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (api *testAPI) do(t *testing.T, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken(t, userID))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/orders/user-1", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestCrossUserAccessForbidden(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/orders/user-2", "user-1", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for another user's path, got %d", w.Code)
	}
}
