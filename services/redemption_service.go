package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"tienda-live/observability"
	"time"
)

// RedemptionService validates and consumes discount codes.
//
// A redemption is one storage transaction: the code is evaluated again, the
// record is appended and the usage counter is bumped only while it is below
// the cap. Concurrent redemptions of the same code inside this process are
// also queued on a per-promotion lock, so the storage transaction rarely
// has to retry.
type RedemptionService struct {
	log        *slog.Logger
	repository contract.IPromotionRepository
	gateway    contract.IGateway
	metrics    *observability.Metrics
	locks      *keyedMutex
	now        func() time.Time
}

func NewRedemptionService(
	log *slog.Logger,
	repository contract.IPromotionRepository,
	gateway contract.IGateway,
	metrics *observability.Metrics,
) *RedemptionService {
	return &RedemptionService{
		log:        log,
		repository: repository,
		gateway:    gateway,
		metrics:    metrics,
		locks:      newKeyedMutex(),
		now:        time.Now,
	}
}

func (s *RedemptionService) Validate(ctx context.Context, storeID domain.StoreID, code string, customer string) (domain.Validation, error) {
	code = domain.NormalizeCode(code)
	if storeID == "" || code == "" {
		return domain.Validation{}, fmt.Errorf("%w: store and code are required", errors.ErrInvalidRequest)
	}

	promotion, err := s.repository.FindByCode(ctx, storeID, code)
	if errors.Is(err, errors.ErrPromotionNotFound) {
		return domain.Validation{Reason: domain.ReasonNotFound}, nil
	}
	if err != nil {
		return domain.Validation{}, err
	}

	customer = strings.TrimSpace(customer)
	used := 0
	if customer != "" {
		if used, err = s.repository.CountRedemptions(ctx, promotion.ID, customer); err != nil {
			return domain.Validation{}, err
		}
	}

	return domain.Validation{
		Reason:             promotion.Evaluate(s.now(), customer, used),
		Promotion:          &promotion,
		Discount:           promotion.Discount(),
		ApplicableProducts: promotion.ApplicableProducts,
	}, nil
}

func (s *RedemptionService) Redeem(ctx context.Context, promotionID domain.PromotionID, r domain.Redemption) (domain.Redemption, error) {
	if promotionID == "" {
		return domain.Redemption{}, fmt.Errorf("%w: promotion is required", errors.ErrInvalidRequest)
	}
	unlock, err := s.locks.Lock(ctx, string(promotionID))
	if err != nil {
		return domain.Redemption{}, err
	}
	defer unlock()

	now := s.now()
	r.PromotionID = promotionID
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}

	var (
		promotion domain.Promotion
		usage     int
	)
	err = s.repository.Atomically(ctx, func(tx contract.IPromotionTx) error {
		p, err := tx.Get(promotionID)
		if err != nil {
			return err
		}
		if !p.HasCode() {
			return fmt.Errorf("%w: promotion %s has no code", errors.ErrInvalidState, promotionID)
		}
		if r.Code != "" && domain.NormalizeCode(r.Code) != p.Code {
			return fmt.Errorf("%w: code %q does not belong to promotion %s", errors.ErrInvalidRequest, r.Code, promotionID)
		}
		used := 0
		if r.CustomerPhone != "" {
			if used, err = tx.CountRedemptions(promotionID, r.CustomerPhone); err != nil {
				return err
			}
		}
		if reason := p.Evaluate(now, r.CustomerPhone, used); reason != domain.ReasonValid {
			return fmt.Errorf("%w: %s", reason.Err(), reason)
		}

		r.Code = p.Code
		id, err := tx.AppendRedemption(r)
		if err != nil {
			return err
		}
		if usage, err = tx.IncrementUsage(promotionID); err != nil {
			return err
		}
		r.ID = id
		promotion = p
		return nil
	})
	if err != nil {
		s.metrics.Redemption(redemptionOutcome(err))
		s.log.Debug("Redemption refused", "promotion", promotionID, "customer", r.CustomerPhone, "error", err)
		return domain.Redemption{}, err
	}

	s.metrics.Redemption("ok")
	s.log.Info("Discount code redeemed", "promotion", promotionID, "code", r.Code, "order", r.OrderID, "usage", usage)
	s.gateway.NotifyStoreAdmins(ctx, promotion.StoreID, event.DiscountCodeUsed, event.Fields{
		"eventoId":          promotionID,
		"codigo":            r.Code,
		"ordenId":           r.OrderID,
		"clienteTelefono":   r.CustomerPhone,
		"descuentoAplicado": r.DiscountApplied,
		"usosActuales":      usage,
		"limiteUso":         promotion.UsageCap,
	})
	return r, nil
}

// Release undoes a redemption whose order could not be stored: the record is
// removed and the use is given back to the code and to the customer.
func (s *RedemptionService) Release(ctx context.Context, r domain.Redemption) error {
	if r.PromotionID == "" || r.ID == "" {
		return fmt.Errorf("%w: redemption is required", errors.ErrInvalidRequest)
	}
	unlock, err := s.locks.Lock(ctx, string(r.PromotionID))
	if err != nil {
		return err
	}
	defer unlock()

	var usage int
	err = s.repository.Atomically(ctx, func(tx contract.IPromotionTx) error {
		if err := tx.RemoveRedemption(r); err != nil {
			return err
		}
		var err error
		usage, err = tx.DecrementUsage(r.PromotionID)
		return err
	})
	if err != nil {
		return err
	}
	s.metrics.Redemption("released")
	s.log.Warn("Discount code redemption released", "promotion", r.PromotionID, "redemption", r.ID, "order", r.OrderID, "usage", usage)
	return nil
}

func redemptionOutcome(err error) string {
	switch {
	case errors.Is(err, errors.ErrCapExceeded):
		return "exhausted"
	case errors.Is(err, errors.ErrCustomerCapExceeded):
		return "customer-exhausted"
	case errors.Is(err, errors.ErrInvalidState):
		return "invalid"
	case errors.Is(err, errors.ErrPromotionNotFound):
		return "not-found"
	case errors.Is(err, errors.ErrInvalidRequest):
		return "mismatch"
	default:
		return "error"
	}
}
