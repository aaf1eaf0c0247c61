//go:generate go run go.uber.org/mock/mockgen -source=repositories.go -destination=../mocks/mock_repositories.go -package=mocks
package contract

import (
	"context"
	"tienda-live/domain"
	"tienda-live/domain/search"
	"time"
)

// IPromotionRepository stores promotions and their redemptions.
// Lookups of a missing promotion return errors.ErrPromotionNotFound.
type IPromotionRepository interface {
	Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error)
	Update(ctx context.Context, p domain.Promotion) error
	Delete(ctx context.Context, id domain.PromotionID) (domain.Promotion, error)
	Get(ctx context.Context, id domain.PromotionID) (domain.Promotion, error)
	ListByStore(ctx context.Context, storeID domain.StoreID) ([]domain.Promotion, error)
	FindByCode(ctx context.Context, storeID domain.StoreID, code string) (domain.Promotion, error)
	CountRedemptions(ctx context.Context, id domain.PromotionID, customer string) (int, error)
	ListRedemptions(ctx context.Context, id domain.PromotionID) ([]domain.Redemption, error)
	// Atomically runs fn in one transaction. Nothing fn wrote is visible
	// unless fn returns nil and the commit succeeds.
	Atomically(ctx context.Context, fn func(tx IPromotionTx) error) error
}

// IPromotionTx is the transactional view used by a redemption.
type IPromotionTx interface {
	Get(id domain.PromotionID) (domain.Promotion, error)
	CountRedemptions(id domain.PromotionID, customer string) (int, error)
	AppendRedemption(r domain.Redemption) (domain.RedemptionID, error)
	// IncrementUsage adds one use only while the counter is below the cap
	// and returns the new counter, or errors.ErrCapExceeded.
	IncrementUsage(id domain.PromotionID) (int, error)
	// RemoveRedemption and DecrementUsage undo one use, for orders that could not be stored.
	RemoveRedemption(r domain.Redemption) error
	DecrementUsage(id domain.PromotionID) (int, error)
}

type IOrderRepository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByNumber(ctx context.Context, number string) (domain.Order, error)
	// UpdateStatus returns the order as it was before the change.
	UpdateStatus(ctx context.Context, number string, status domain.OrderStatus, at time.Time) (domain.Order, error)
	ListByStore(ctx context.Context, storeID domain.StoreID, limit int) ([]domain.Order, error)
}

type IReviewRepository interface {
	Create(ctx context.Context, r domain.Review) error
	Approve(ctx context.Context, id domain.ReviewID) (domain.Review, error)
	Delete(ctx context.Context, id domain.ReviewID) error
	ListPending(ctx context.Context, storeID domain.StoreID) ([]domain.Review, error)
	// ListApproved returns the published reviews, newest first.
	ListApproved(ctx context.Context, storeID domain.StoreID) ([]domain.Review, error)
}

type IConfigRepository interface {
	Get(ctx context.Context, storeID domain.StoreID) (domain.StoreConfig, error)
	Save(ctx context.Context, cfg domain.StoreConfig) error
}

// IOrderIndex is the full-text index over orders.
type IOrderIndex interface {
	Index(ctx context.Context, o domain.Order) error
	// Search returns the matching order numbers, best first, and the total hit count.
	Search(ctx context.Context, storeID domain.StoreID, q search.Query) ([]string, uint64, error)
}
