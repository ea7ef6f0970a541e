package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"stylevault/internal/domain"
	"stylevault/internal/moodboard"
	"stylevault/internal/repository"
)

type moodboardFixture struct {
	service    *moodboardService
	orders     repository.OrderRepository
	moodboards repository.MoodboardRepository
	styles     repository.StyleRepository
}

func newMoodboardFixture(t *testing.T) *moodboardFixture {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	orders := repository.NewOrderRepository(client)
	moodboards := repository.NewMoodboardRepository(client)
	styles := repository.NewStyleRepository(client)

	generator := moodboard.NewGenerator(rand.New(rand.NewSource(42)))
	svc := NewMoodboardService(orders, moodboards, styles, generator).(*moodboardService)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	return &moodboardFixture{service: svc, orders: orders, moodboards: moodboards, styles: styles}
}

func seedWardrobe(t *testing.T, f *moodboardFixture, userID string) {
	t.Helper()

	order := domain.Order{
		ID:     "csv-1-0-aaaaaaaa",
		Date:   "2024-01-05",
		Status: domain.OrderStatusDelivered,
		Items: []domain.WardrobeItem{
			{Name: "Silk Blouse", Brand: "Equipment", Category: domain.CategoryTops, Price: 228},
			{Name: "Wide-Leg Trousers", Brand: "COS", Category: domain.CategoryBottoms, Price: 99},
			{Name: "Leather Boots", Brand: "Acne Studios", Category: domain.CategoryShoes, Price: 450},
			{Name: "Gold Hoops", Brand: "Mejuri", Category: domain.CategoryJewelry, Price: 88},
		},
		Total: 865,
	}
	if err := f.orders.Append(context.Background(), userID, order); err != nil {
		t.Fatal(err)
	}
}

func TestMoodboardServiceCreateStampsAndPersists(t *testing.T) {
	ctx := context.Background()
	f := newMoodboardFixture(t)
	seedWardrobe(t, f, "user-1")

	selected := []domain.WardrobeItem{
		{Name: "Silk Blouse", Brand: "Equipment", Category: domain.CategoryTops, Price: 228},
	}

	board, err := f.service.Create(ctx, "user-1", selected, []string{"https://example.com/pin.jpg"})
	if err != nil {
		t.Fatal(err)
	}

	wantID := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	if board.ID != wantID {
		t.Errorf("expected id %d, got %d", wantID, board.ID)
	}
	if board.CreatedAt.IsZero() {
		t.Errorf("CreatedAt must be stamped")
	}
	if len(board.InspirationImages) != 1 {
		t.Errorf("explicit inspiration must pass through, got %v", board.InspirationImages)
	}

	stored, err := f.moodboards.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].ID != board.ID {
		t.Errorf("board must be appended to the collection, got %+v", stored)
	}
}

func TestMoodboardServiceCreateEmptySelection(t *testing.T) {
	ctx := context.Background()
	f := newMoodboardFixture(t)
	seedWardrobe(t, f, "user-1")

	_, err := f.service.Create(ctx, "user-1", nil, nil)
	if !errors.Is(err, moodboard.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}

	stored, err := f.moodboards.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 0 {
		t.Errorf("nothing must be persisted on failure, got %+v", stored)
	}
}

func TestMoodboardServiceCreateFallsBackToSavedInspiration(t *testing.T) {
	ctx := context.Background()
	f := newMoodboardFixture(t)
	seedWardrobe(t, f, "user-1")

	if _, err := f.styles.SaveInspiration(ctx, "user-1", []string{"https://example.com/saved.jpg"}); err != nil {
		t.Fatal(err)
	}

	selected := []domain.WardrobeItem{
		{Name: "Gold Hoops", Brand: "Mejuri", Category: domain.CategoryJewelry, Price: 88},
	}

	board, err := f.service.Create(ctx, "user-1", selected, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(board.InspirationImages) != 1 || board.InspirationImages[0] != "https://example.com/saved.jpg" {
		t.Errorf("expected saved inspiration fallback, got %v", board.InspirationImages)
	}
}

func TestMoodboardServiceCreateNoInspirationAnywhere(t *testing.T) {
	ctx := context.Background()
	f := newMoodboardFixture(t)
	seedWardrobe(t, f, "user-1")

	selected := []domain.WardrobeItem{
		{Name: "Leather Boots", Brand: "Acne Studios", Category: domain.CategoryShoes, Price: 450},
	}

	board, err := f.service.Create(ctx, "user-1", selected, nil)
	if err != nil {
		t.Fatal(err)
	}
	if board.InspirationImages == nil || len(board.InspirationImages) != 0 {
		t.Errorf("expected empty non-nil inspiration list, got %#v", board.InspirationImages)
	}
}

func TestMoodboardServiceQuickCreate(t *testing.T) {
	ctx := context.Background()
	f := newMoodboardFixture(t)
	seedWardrobe(t, f, "user-1")

	board, err := f.service.QuickCreate(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(board.UserSelectedItems) != 0 {
		t.Errorf("quick-create carries no user selection, got %v", board.UserSelectedItems)
	}
	if board.ItemCount == 0 {
		t.Errorf("quick-create must produce a non-empty outfit")
	}

	stored, err := f.moodboards.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 {
		t.Errorf("expected one stored board, got %d", len(stored))
	}
}

func TestMoodboardServiceQuickCreateEmptyWardrobe(t *testing.T) {
	f := newMoodboardFixture(t)

	_, err := f.service.QuickCreate(context.Background(), "user-1")
	if !errors.Is(err, moodboard.ErrInsufficientInventory) {
		t.Fatalf("expected ErrInsufficientInventory, got %v", err)
	}
}

func TestMoodboardServiceDeleteAll(t *testing.T) {
	ctx := context.Background()
	f := newMoodboardFixture(t)
	seedWardrobe(t, f, "user-1")

	if _, err := f.service.QuickCreate(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	if err := f.service.DeleteAll(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}

	boards, err := f.service.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(boards) != 0 {
		t.Errorf("expected empty collection after delete, got %+v", boards)
	}
}
