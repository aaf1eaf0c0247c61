package storage

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// SetupTestDB opens a throwaway badger instance.
func SetupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newPromotion(storeID domain.StoreID, code string, usageCap *int) domain.Promotion {
	pct := decimal.NewFromInt(10)
	return domain.NewPromotion(domain.Promotion{
		StoreID:    storeID,
		Title:      "Promo " + code,
		Code:       code,
		Percentage: &pct,
		Active:     true,
		UsageCap:   usageCap,
	}, time.Now())
}

func intPtr(i int) *int { return &i }

func TestPromotionRepository_Create_And_FindByCode(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewPromotionRepository(SetupTestDB(t), log, 3)
	ctx := context.Background()

	// Given a promotion with a code
	created, err := repo.Create(ctx, newPromotion("7", "promo10", nil))
	req.NoError(err)
	req.NotEmpty(created.ID)

	t.Run("should find the code whatever its case", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "7", "Promo10")
		req.NoError(err)
		req.Equal(created.ID, found.ID)
		req.True(decimal.NewFromInt(10).Equal(*found.Percentage))
	})

	t.Run("should scope codes by store", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, "8", "PROMO10")
		req.ErrorIs(err, errors.ErrPromotionNotFound)
	})

	t.Run("should refuse a duplicate code in the same store", func(t *testing.T) {
		_, err := repo.Create(ctx, newPromotion("7", "PROMO10", nil))
		req.ErrorIs(err, errors.ErrCodeAlreadyExists)
	})

	t.Run("should accept the same code in another store", func(t *testing.T) {
		_, err := repo.Create(ctx, newPromotion("8", "PROMO10", nil))
		req.NoError(err)
	})
}

func TestPromotionRepository_Update_Moves_Code(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewPromotionRepository(SetupTestDB(t), log, 3)
	ctx := context.Background()

	created, err := repo.Create(ctx, newPromotion("7", "OLD", nil))
	req.NoError(err)

	// When the code is renamed
	created.Code = "NEW"
	req.NoError(repo.Update(ctx, created))

	// Then only the new code resolves
	_, err = repo.FindByCode(ctx, "7", "OLD")
	req.ErrorIs(err, errors.ErrPromotionNotFound)
	found, err := repo.FindByCode(ctx, "7", "NEW")
	req.NoError(err)
	req.Equal(created.ID, found.ID)

	// And updating an unknown promotion fails
	req.ErrorIs(repo.Update(ctx, domain.Promotion{ID: "missing"}), errors.ErrPromotionNotFound)
}

func TestPromotionRepository_Delete_And_List(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewPromotionRepository(SetupTestDB(t), log, 3)
	ctx := context.Background()

	low := newPromotion("7", "LOW", nil)
	high := newPromotion("7", "HIGH", nil)
	high.Priority = 5
	low, err := repo.Create(ctx, low)
	req.NoError(err)
	high, err = repo.Create(ctx, high)
	req.NoError(err)

	list, err := repo.ListByStore(ctx, "7")
	req.NoError(err)
	req.Len(list, 2)
	req.Equal(high.ID, list[0].ID)

	deleted, err := repo.Delete(ctx, low.ID)
	req.NoError(err)
	req.Equal("LOW", deleted.Code)

	list, err = repo.ListByStore(ctx, "7")
	req.NoError(err)
	req.Len(list, 1)
	_, err = repo.FindByCode(ctx, "7", "LOW")
	req.ErrorIs(err, errors.ErrPromotionNotFound)

	_, err = repo.Delete(ctx, low.ID)
	req.ErrorIs(err, errors.ErrPromotionNotFound)
}

func TestPromotionRepository_Atomically(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repo := NewPromotionRepository(SetupTestDB(t), log, 3)
	ctx := context.Background()
	p, err := repo.Create(ctx, newPromotion("7", "ONCE", intPtr(1)))
	req.NoError(err)

	t.Run("should discard everything when fn fails", func(t *testing.T) {
		err := repo.Atomically(ctx, func(tx contract.IPromotionTx) error {
			_, err := tx.AppendRedemption(domain.Redemption{PromotionID: p.ID, CustomerPhone: "555", Code: p.Code})
			req.NoError(err)
			return errors.ErrInvalidState
		})
		req.ErrorIs(err, errors.ErrInvalidState)

		count, err := repo.CountRedemptions(ctx, p.ID, "")
		req.NoError(err)
		req.Zero(count)
	})

	t.Run("should commit the record and the counter together", func(t *testing.T) {
		err := repo.Atomically(ctx, func(tx contract.IPromotionTx) error {
			if _, err := tx.AppendRedemption(domain.Redemption{PromotionID: p.ID, CustomerPhone: "555", Code: p.Code}); err != nil {
				return err
			}
			usage, err := tx.IncrementUsage(p.ID)
			req.Equal(1, usage)
			return err
		})
		req.NoError(err)

		count, err := repo.CountRedemptions(ctx, p.ID, "555")
		req.NoError(err)
		req.Equal(1, count)
		stored, err := repo.Get(ctx, p.ID)
		req.NoError(err)
		req.Equal(1, stored.UsageCount)
	})

	t.Run("should refuse to go over the cap", func(t *testing.T) {
		err := repo.Atomically(ctx, func(tx contract.IPromotionTx) error {
			_, err := tx.IncrementUsage(p.ID)
			return err
		})
		req.ErrorIs(err, errors.ErrCapExceeded)
	})
}

func TestPromotionRepository_Concurrent_Increments_Respect_Cap(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	// Every goroutine may conflict with every other one
	repo := NewPromotionRepository(SetupTestDB(t), log, 50)
	ctx := context.Background()
	p, err := repo.Create(ctx, newPromotion("7", "RUSH", intPtr(3)))
	req.NoError(err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Atomically(ctx, func(tx contract.IPromotionTx) error {
				if _, err := tx.AppendRedemption(domain.Redemption{PromotionID: p.ID, Code: p.Code}); err != nil {
					return err
				}
				_, err := tx.IncrementUsage(p.ID)
				return err
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	stored, err := repo.Get(ctx, p.ID)
	req.NoError(err)
	req.Equal(3, succeeded)
	req.Equal(3, stored.UsageCount)
	redemptions, err := repo.ListRedemptions(ctx, p.ID)
	req.NoError(err)
	req.Len(redemptions, 3)
}

func TestPromotionRepository_Keys_Do_Not_Collide_On_Separator(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	t.Run("should count only the redemptions of the exact customer", func(t *testing.T) {
		req := require.New(t)
		repo := NewPromotionRepository(SetupTestDB(t), log, 3)
		p, err := repo.Create(ctx, newPromotion("7", "UNICO", nil))
		req.NoError(err)

		// Given a redemption by customer "555:1"
		err = repo.Atomically(ctx, func(tx contract.IPromotionTx) error {
			_, err := tx.AppendRedemption(domain.Redemption{PromotionID: p.ID, CustomerPhone: "555:1", Code: p.Code})
			return err
		})
		req.NoError(err)

		// When customer "555" is counted
		count, err := repo.CountRedemptions(ctx, p.ID, "555")
		req.NoError(err)

		// Then the other customer's redemption is not seen
		req.Zero(count)
		count, err = repo.CountRedemptions(ctx, p.ID, "555:1")
		req.NoError(err)
		req.Equal(1, count)
		stored, err := repo.Get(ctx, p.ID)
		req.NoError(err)
		req.Equal(domain.ReasonValid, stored.Evaluate(time.Now(), "555", 0))
	})

	t.Run("should list only the promotions of the exact store", func(t *testing.T) {
		req := require.New(t)
		repo := NewPromotionRepository(SetupTestDB(t), log, 3)

		// Given promotions in stores "1" and "1:x"
		_, err := repo.Create(ctx, newPromotion("1", "UNO", nil))
		req.NoError(err)
		_, err = repo.Create(ctx, newPromotion("1:x", "OTRO", nil))
		req.NoError(err)

		// When store "1" is listed
		list, err := repo.ListByStore(ctx, "1")
		req.NoError(err)

		// Then only its own promotion comes back
		req.Len(list, 1)
		req.Equal("UNO", list[0].Code)
	})
}
