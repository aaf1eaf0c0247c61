package domain

import (
	"strings"
	"tienda-live/errors"
	"time"

	"github.com/shopspring/decimal"
)

type PromotionID string

// DefaultPerCustomerCap is applied to new promotions that do not set their own per-customer limit.
const DefaultPerCustomerCap = 1

// Promotion is a store event that may carry a discount code.
// A nil PerCustomerCap means unlimited; NewPromotion fills the default.
type Promotion struct {
	ID                 PromotionID      `json:"id"`
	StoreID            StoreID          `json:"tienda_id"`
	Title              string           `json:"titulo"`
	Description        string           `json:"descripcion,omitempty"`
	Type               string           `json:"tipo"`
	Code               string           `json:"codigo_descuento,omitempty"`
	Percentage         *decimal.Decimal `json:"descuento_porcentaje,omitempty"`
	Amount             *decimal.Decimal `json:"descuento_monto,omitempty"`
	ApplicableProducts []string         `json:"productos_aplicables,omitempty"`
	Priority           int              `json:"prioridad"`
	Active             bool             `json:"activo"`
	StartsAt           *time.Time       `json:"fecha_inicio,omitempty"`
	EndsAt             *time.Time       `json:"fecha_fin,omitempty"`
	UsageCap           *int             `json:"limite_uso,omitempty"`
	PerCustomerCap     *int             `json:"limite_por_cliente,omitempty"`
	UsageCount         int              `json:"usos_actuales"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func NewPromotion(p Promotion, now time.Time) Promotion {
	if p.Type == "" {
		p.Type = "promocion"
	}
	if p.PerCustomerCap == nil {
		limit := DefaultPerCustomerCap
		p.PerCustomerCap = &limit
	}
	p.Code = NormalizeCode(p.Code)
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

// NormalizeCode makes code lookups case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Reason string

const (
	ReasonNotFound          Reason = "not-found"
	ReasonInactive          Reason = "inactive"
	ReasonOutsideWindow     Reason = "outside-window"
	ReasonExhausted         Reason = "exhausted"
	ReasonCustomerExhausted Reason = "customer-exhausted"
	ReasonValid             Reason = "valid"
)

// Err maps a failing reason onto the error taxonomy. Valid returns nil.
func (r Reason) Err() error {
	switch r {
	case ReasonValid:
		return nil
	case ReasonNotFound:
		return errors.ErrPromotionNotFound
	case ReasonInactive, ReasonOutsideWindow:
		return errors.ErrInvalidState
	case ReasonExhausted:
		return errors.ErrCapExceeded
	case ReasonCustomerExhausted:
		return errors.ErrCustomerCapExceeded
	default:
		return errors.ErrInvalidState
	}
}

// Evaluate runs the validity checks in order and stops at the first failure.
// customerRedemptions is only looked at when a customer is given.
func (p Promotion) Evaluate(now time.Time, customer string, customerRedemptions int) Reason {
	if !p.Active {
		return ReasonInactive
	}
	if !p.InWindow(now) {
		return ReasonOutsideWindow
	}
	if p.UsageCap != nil && p.UsageCount >= *p.UsageCap {
		return ReasonExhausted
	}
	if customer != "" && p.PerCustomerCap != nil && customerRedemptions >= *p.PerCustomerCap {
		return ReasonCustomerExhausted
	}
	return ReasonValid
}

// InWindow compares calendar days: a code ending yesterday is expired today,
// a code ending today is still usable. Missing bounds are open.
func (p Promotion) InWindow(now time.Time) bool {
	today := dateOf(now, now.Location())
	if p.StartsAt != nil && today.Before(dateOf(*p.StartsAt, now.Location())) {
		return false
	}
	if p.EndsAt != nil && today.After(dateOf(*p.EndsAt, now.Location())) {
		return false
	}
	return true
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func (p Promotion) HasCode() bool { return p.Code != "" }

func (p Promotion) Discount() Discount {
	switch {
	case p.Percentage != nil && p.Percentage.IsPositive():
		return Discount{Kind: DiscountPercentage, Value: *p.Percentage}
	case p.Amount != nil && p.Amount.IsPositive():
		return Discount{Kind: DiscountFixedAmount, Value: *p.Amount}
	default:
		return Discount{Kind: DiscountNone, Value: decimal.Zero}
	}
}

// AppliesTo reports whether productID is in scope. An empty list covers the whole catalog.
func (p Promotion) AppliesTo(productID string) bool {
	if len(p.ApplicableProducts) == 0 {
		return true
	}
	for _, id := range p.ApplicableProducts {
		if id == productID {
			return true
		}
	}
	return false
}

type DiscountKind string

const (
	DiscountNone        DiscountKind = "ninguno"
	DiscountPercentage  DiscountKind = "porcentaje"
	DiscountFixedAmount DiscountKind = "monto"
)

type Discount struct {
	Kind  DiscountKind    `json:"tipo"`
	Value decimal.Decimal `json:"valor"`
}

// Apply returns the amount taken off base, never more than base itself.
func (d Discount) Apply(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	var off decimal.Decimal
	switch d.Kind {
	case DiscountPercentage:
		off = base.Mul(d.Value).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixedAmount:
		off = d.Value
	default:
		return decimal.Zero
	}
	if off.GreaterThan(base) {
		return base
	}
	return off
}

// Validation is the outcome of checking a code for a store and an optional customer.
type Validation struct {
	Reason             Reason     `json:"motivo"`
	Promotion          *Promotion `json:"evento,omitempty"`
	Discount           Discount   `json:"descuento"`
	ApplicableProducts []string   `json:"productos_aplicables,omitempty"`
}

func (v Validation) Valid() bool { return v.Reason == ReasonValid }

type RedemptionID string

// Redemption is the append-only fact of one code applied to one order.
type Redemption struct {
	ID              RedemptionID    `json:"id"`
	PromotionID     PromotionID     `json:"evento_id"`
	OrderID         string          `json:"orden_id"`
	CustomerPhone   string          `json:"cliente_telefono,omitempty"`
	Code            string          `json:"codigo_usado"`
	DiscountApplied decimal.Decimal `json:"descuento_aplicado"`
	CreatedAt       time.Time       `json:"created_at"`
}
