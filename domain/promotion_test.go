package domain

import (
	"testing"
	"tienda-live/errors"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func activePromotion() Promotion {
	return NewPromotion(Promotion{
		ID:         "promo-1",
		StoreID:    "5",
		Title:      "Promo",
		Code:       " promo10 ",
		Percentage: lo.ToPtr(decimal.NewFromInt(10)),
		Active:     true,
	}, time.Now())
}

func TestPromotion_NewPromotion_Defaults(t *testing.T) {
	req := require.New(t)

	p := activePromotion()

	req.Equal("PROMO10", p.Code)
	req.Equal("promocion", p.Type)
	req.NotNil(p.PerCustomerCap)
	req.Equal(DefaultPerCustomerCap, *p.PerCustomerCap)
}

func TestPromotion_Evaluate_Order(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		mutate   func(p *Promotion)
		customer string
		count    int
		expected Reason
	}{
		{name: "valid without bounds", mutate: func(p *Promotion) {}, expected: ReasonValid},
		{name: "inactive wins over everything", mutate: func(p *Promotion) {
			p.Active = false
			p.EndsAt = &yesterday
			p.UsageCap = lo.ToPtr(0)
		}, expected: ReasonInactive},
		{name: "ended yesterday", mutate: func(p *Promotion) { p.EndsAt = &yesterday }, expected: ReasonOutsideWindow},
		{name: "ends today is still valid", mutate: func(p *Promotion) {
			end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
			p.EndsAt = &end
		}, expected: ReasonValid},
		{name: "starts tomorrow", mutate: func(p *Promotion) { p.StartsAt = &tomorrow }, expected: ReasonOutsideWindow},
		{name: "window before cap", mutate: func(p *Promotion) {
			p.StartsAt = &tomorrow
			p.UsageCap = lo.ToPtr(1)
			p.UsageCount = 1
		}, expected: ReasonOutsideWindow},
		{name: "cap reached", mutate: func(p *Promotion) {
			p.UsageCap = lo.ToPtr(2)
			p.UsageCount = 2
		}, expected: ReasonExhausted},
		{name: "cap before customer cap", mutate: func(p *Promotion) {
			p.UsageCap = lo.ToPtr(2)
			p.UsageCount = 2
		}, customer: "555", count: 3, expected: ReasonExhausted},
		{name: "customer cap reached", mutate: func(p *Promotion) {}, customer: "555", count: 1, expected: ReasonCustomerExhausted},
		{name: "customer count ignored without customer", mutate: func(p *Promotion) {}, count: 5, expected: ReasonValid},
		{name: "unlimited per customer", mutate: func(p *Promotion) { p.PerCustomerCap = nil }, customer: "555", count: 50, expected: ReasonValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			p := activePromotion()
			tt.mutate(&p)
			req.Equal(tt.expected, p.Evaluate(now, tt.customer, tt.count))
		})
	}
}

func TestPromotion_No_End_Date_Never_Expires(t *testing.T) {
	req := require.New(t)
	p := activePromotion()

	req.Equal(ReasonValid, p.Evaluate(time.Now().AddDate(50, 0, 0), "", 0))
}

func TestReason_Err(t *testing.T) {
	req := require.New(t)

	req.NoError(ReasonValid.Err())
	req.ErrorIs(ReasonNotFound.Err(), errors.ErrPromotionNotFound)
	req.ErrorIs(ReasonInactive.Err(), errors.ErrInvalidState)
	req.ErrorIs(ReasonOutsideWindow.Err(), errors.ErrInvalidState)
	req.ErrorIs(ReasonExhausted.Err(), errors.ErrCapExceeded)
	req.ErrorIs(ReasonCustomerExhausted.Err(), errors.ErrCustomerCapExceeded)
}

func TestDiscount_Apply(t *testing.T) {
	req := require.New(t)
	base := decimal.RequireFromString("80.00")

	percent := Discount{Kind: DiscountPercentage, Value: decimal.NewFromInt(10)}
	req.True(decimal.RequireFromString("8").Equal(percent.Apply(base)))

	fixed := Discount{Kind: DiscountFixedAmount, Value: decimal.NewFromInt(100)}
	req.True(base.Equal(fixed.Apply(base)), "a fixed discount never exceeds the base")

	req.True(decimal.Zero.Equal(Discount{Kind: DiscountNone}.Apply(base)))
	req.True(decimal.Zero.Equal(percent.Apply(decimal.Zero)))
}

func TestPromotion_Discount_Prefers_Percentage(t *testing.T) {
	req := require.New(t)
	p := activePromotion()
	p.Amount = lo.ToPtr(decimal.NewFromInt(3))

	req.Equal(DiscountPercentage, p.Discount().Kind)

	p.Percentage = nil
	req.Equal(DiscountFixedAmount, p.Discount().Kind)
}

func TestPromotion_AppliesTo(t *testing.T) {
	req := require.New(t)
	p := activePromotion()

	req.True(p.AppliesTo("any"))

	p.ApplicableProducts = []string{"12", "13"}
	req.True(p.AppliesTo("13"))
	req.False(p.AppliesTo("14"))
}
