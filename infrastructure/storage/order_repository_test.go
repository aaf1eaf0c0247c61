package storage

import (
	"context"
	"log/slog"
	"testing"
	"tienda-live/domain"
	"tienda-live/errors"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewOrderRepository(SetupTestDB(t), log)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, number := range []string{"ORD-000001-001", "ORD-000002-002", "ORD-000003-003"} {
		req.NoError(repo.Create(ctx, domain.Order{
			ID:           number,
			Number:       number,
			StoreID:      "7",
			CustomerName: "Ana",
			Status:       domain.OrderPending,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}
	req.NoError(repo.Create(ctx, domain.Order{Number: "ORD-999999-999", StoreID: "8", CreatedAt: base}))

	t.Run("should list newest first and respect the limit", func(t *testing.T) {
		orders, err := repo.ListByStore(ctx, "7", 2)
		req.NoError(err)
		req.Len(orders, 2)
		req.Equal("ORD-000003-003", orders[0].Number)
		req.Equal("ORD-000002-002", orders[1].Number)
	})

	t.Run("should return the previous state on status change", func(t *testing.T) {
		at := base.Add(time.Hour)
		previous, err := repo.UpdateStatus(ctx, "ORD-000001-001", domain.OrderShipped, at)
		req.NoError(err)
		req.Equal(domain.OrderPending, previous.Status)

		current, err := repo.GetByNumber(ctx, "ORD-000001-001")
		req.NoError(err)
		req.Equal(domain.OrderShipped, current.Status)
		req.True(at.Equal(current.UpdatedAt))
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		_, err := repo.GetByNumber(ctx, "ORD-404")
		req.ErrorIs(err, errors.ErrOrderNotFound)
		_, err = repo.UpdateStatus(ctx, "ORD-404", domain.OrderShipped, base)
		req.ErrorIs(err, errors.ErrOrderNotFound)
	})
}

func TestReviewRepository(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewReviewRepository(SetupTestDB(t), log)
	ctx := context.Background()
	now := time.Now().UTC()

	req.NoError(repo.Create(ctx, domain.Review{ID: "r1", StoreID: "7", Comment: "Muy bueno", CreatedAt: now}))
	req.NoError(repo.Create(ctx, domain.Review{ID: "r2", StoreID: "7", Comment: "Excelente", CreatedAt: now.Add(time.Second)}))

	pending, err := repo.ListPending(ctx, "7")
	req.NoError(err)
	req.Len(pending, 2)
	req.Equal(domain.ReviewID("r1"), pending[0].ID)

	// When one review is approved
	approved, err := repo.Approve(ctx, "r1")
	req.NoError(err)
	req.True(approved.Approved)

	// Then it leaves the pending list
	pending, err = repo.ListPending(ctx, "7")
	req.NoError(err)
	req.Len(pending, 1)
	req.Equal(domain.ReviewID("r2"), pending[0].ID)

	_, err = repo.Approve(ctx, "missing")
	req.ErrorIs(err, errors.ErrReviewNotFound)
}

func TestConfigRepository(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewConfigRepository(SetupTestDB(t), log)
	ctx := context.Background()

	_, err := repo.Get(ctx, "7")
	req.ErrorIs(err, errors.ErrConfigNotFound)

	cfg := domain.StoreConfig{StoreID: "7"}
	cfg.Apply(map[string]any{"color_primario": "#ff0000"}, time.Now())
	req.NoError(repo.Save(ctx, cfg))

	stored, err := repo.Get(ctx, "7")
	req.NoError(err)
	req.Equal("#ff0000", stored.Fields["color_primario"])
}

func TestOrderRepository_Store_Prefix_Is_Exact(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewOrderRepository(SetupTestDB(t), log)
	reviews := NewReviewRepository(SetupTestDB(t), log)
	ctx := context.Background()
	now := time.Now().UTC()

	// Given orders and reviews of stores "1" and "1:x"
	req.NoError(repo.Create(ctx, domain.Order{Number: "ORD-000001-001", StoreID: "1", CreatedAt: now}))
	req.NoError(repo.Create(ctx, domain.Order{Number: "ORD-000002-002", StoreID: "1:x", CreatedAt: now}))
	req.NoError(reviews.Create(ctx, domain.Review{ID: "r1", StoreID: "1", Comment: "Muy bueno", CreatedAt: now}))
	req.NoError(reviews.Create(ctx, domain.Review{ID: "r2", StoreID: "1:x", Comment: "Excelente", CreatedAt: now}))

	// When store "1" is listed
	orders, err := repo.ListByStore(ctx, "1", 0)
	req.NoError(err)
	pending, err := reviews.ListPending(ctx, "1")
	req.NoError(err)

	// Then nothing of store "1:x" comes back
	req.Len(orders, 1)
	req.Equal("ORD-000001-001", orders[0].Number)
	req.Len(pending, 1)
	req.Equal(domain.ReviewID("r1"), pending[0].ID)
}
