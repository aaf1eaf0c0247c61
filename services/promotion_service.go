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
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type IPromotionService interface {
	Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error)
	Update(ctx context.Context, id domain.PromotionID, patch PromotionPatch) (domain.Promotion, []string, error)
	Delete(ctx context.Context, id domain.PromotionID) error
	Get(ctx context.Context, id domain.PromotionID) (domain.Promotion, error)
	List(ctx context.Context, storeID domain.StoreID, filter PromotionFilter) ([]domain.Promotion, error)
}

// PromotionPatch holds the fields to change. Nil fields are left untouched.
type PromotionPatch struct {
	Title              *string
	Description        *string
	Type               *string
	Code               *string
	Percentage         *decimal.Decimal
	Amount             *decimal.Decimal
	ApplicableProducts []string
	Priority           *int
	Active             *bool
	StartsAt           *time.Time
	EndsAt             *time.Time
	UsageCap           *int
	PerCustomerCap     *int
}

// apply returns the names of the changed fields, as clients know them.
func (patch PromotionPatch) apply(p *domain.Promotion) []string {
	var fields []string
	set := func(name string, ok bool, assign func()) {
		if ok {
			assign()
			fields = append(fields, name)
		}
	}
	set("titulo", patch.Title != nil, func() { p.Title = strings.TrimSpace(*patch.Title) })
	set("descripcion", patch.Description != nil, func() { p.Description = *patch.Description })
	set("tipo", patch.Type != nil, func() { p.Type = *patch.Type })
	set("codigo_descuento", patch.Code != nil, func() { p.Code = domain.NormalizeCode(*patch.Code) })
	set("descuento_porcentaje", patch.Percentage != nil, func() { p.Percentage = patch.Percentage })
	set("descuento_monto", patch.Amount != nil, func() { p.Amount = patch.Amount })
	set("productos_aplicables", patch.ApplicableProducts != nil, func() { p.ApplicableProducts = patch.ApplicableProducts })
	set("prioridad", patch.Priority != nil, func() { p.Priority = *patch.Priority })
	set("activo", patch.Active != nil, func() { p.Active = *patch.Active })
	set("fecha_inicio", patch.StartsAt != nil, func() { p.StartsAt = patch.StartsAt })
	set("fecha_fin", patch.EndsAt != nil, func() { p.EndsAt = patch.EndsAt })
	set("limite_uso", patch.UsageCap != nil, func() { p.UsageCap = patch.UsageCap })
	set("limite_por_cliente", patch.PerCustomerCap != nil, func() { p.PerCustomerCap = patch.PerCustomerCap })
	return fields
}

type PromotionFilter struct {
	ActiveOnly bool
	Type       string
	Limit      int
}

type PromotionService struct {
	log        *slog.Logger
	repository contract.IPromotionRepository
	gateway    contract.IGateway
	now        func() time.Time
}

func NewPromotionService(log *slog.Logger, repository contract.IPromotionRepository, gateway contract.IGateway) *PromotionService {
	return &PromotionService{log: log, repository: repository, gateway: gateway, now: time.Now}
}

func (s *PromotionService) Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.StoreID == "" || p.Title == "" {
		return domain.Promotion{}, fmt.Errorf("%w: store and title are required", errors.ErrInvalidRequest)
	}
	p = domain.NewPromotion(p, s.now())
	if err := checkPromotion(p); err != nil {
		return domain.Promotion{}, err
	}

	created, err := s.repository.Create(ctx, p)
	if err != nil {
		return domain.Promotion{}, err
	}
	s.log.Info("Promotion created", "store", created.StoreID, "promotion", created.ID, "code", created.Code)
	s.gateway.NotifyStore(ctx, created.StoreID, event.PromotionCreated, event.Fields{
		"eventoId": created.ID,
		"titulo":   created.Title,
		"tipo":     created.Type,
	})
	return created, nil
}

func (s *PromotionService) Update(ctx context.Context, id domain.PromotionID, patch PromotionPatch) (domain.Promotion, []string, error) {
	current, err := s.repository.Get(ctx, id)
	if err != nil {
		return domain.Promotion{}, nil, err
	}
	fields := patch.apply(&current)
	if len(fields) == 0 {
		return domain.Promotion{}, nil, errors.ErrNoFieldsToUpdate
	}
	if current.Title == "" {
		return domain.Promotion{}, nil, fmt.Errorf("%w: title can not be empty", errors.ErrInvalidRequest)
	}
	if err := checkPromotion(current); err != nil {
		return domain.Promotion{}, nil, err
	}
	current.UpdatedAt = s.now()

	if err := s.repository.Update(ctx, current); err != nil {
		return domain.Promotion{}, nil, err
	}
	s.gateway.NotifyStore(ctx, current.StoreID, event.PromotionUpdated, event.Fields{
		"eventoId": current.ID,
		"campos":   fields,
	})
	return current, fields, nil
}

// Delete keeps the redemptions already recorded for the promotion.
func (s *PromotionService) Delete(ctx context.Context, id domain.PromotionID) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.gateway.NotifyStore(ctx, deleted.StoreID, event.PromotionDeleted, event.Fields{
		"eventoId": deleted.ID,
		"titulo":   deleted.Title,
	})
	return nil
}

func (s *PromotionService) Get(ctx context.Context, id domain.PromotionID) (domain.Promotion, error) {
	return s.repository.Get(ctx, id)
}

func (s *PromotionService) List(ctx context.Context, storeID domain.StoreID, filter PromotionFilter) ([]domain.Promotion, error) {
	promotions, err := s.repository.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	promotions = lo.Filter(promotions, func(p domain.Promotion, _ int) bool {
		if filter.ActiveOnly && !(p.Active && p.InWindow(now)) {
			return false
		}
		return filter.Type == "" || p.Type == filter.Type
	})
	if filter.Limit > 0 && len(promotions) > filter.Limit {
		promotions = promotions[:filter.Limit]
	}
	return promotions, nil
}

func checkPromotion(p domain.Promotion) error {
	if p.Percentage != nil && (p.Percentage.IsNegative() || p.Percentage.GreaterThan(decimal.NewFromInt(100))) {
		return fmt.Errorf("%w: percentage must be between 0 and 100", errors.ErrInvalidRequest)
	}
	if p.Amount != nil && p.Amount.IsNegative() {
		return fmt.Errorf("%w: amount can not be negative", errors.ErrInvalidRequest)
	}
	if p.UsageCap != nil && *p.UsageCap < 0 {
		return fmt.Errorf("%w: usage limit can not be negative", errors.ErrInvalidRequest)
	}
	if p.PerCustomerCap != nil && *p.PerCustomerCap < 0 {
		return fmt.Errorf("%w: per customer limit can not be negative", errors.ErrInvalidRequest)
	}
	if p.StartsAt != nil && p.EndsAt != nil && p.EndsAt.Before(*p.StartsAt) {
		return fmt.Errorf("%w: window ends before it starts", errors.ErrInvalidRequest)
	}
	return nil
}
