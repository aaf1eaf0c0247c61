package storage

import (
	"tienda-live/domain"
	"time"

	"github.com/shopspring/decimal"
)

type promotionModel struct {
	ID                 string           `gorm:"primarykey;size:36"`
	StoreID            string           `gorm:"size:64;not null;index:idx_promotion_store_code"`
	Title              string           `gorm:"size:200;not null"`
	Description        string           `gorm:"size:1000"`
	Type               string           `gorm:"size:32;not null"`
	Code               string           `gorm:"size:64;index:idx_promotion_store_code"`
	Percentage         *decimal.Decimal `gorm:"type:numeric(5,2)"`
	Amount             *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ApplicableProducts []string         `gorm:"serializer:json"`
	Priority           int              `gorm:"not null;default:0"`
	Active             bool             `gorm:"not null"`
	StartsAt           *time.Time
	EndsAt             *time.Time
	UsageCap           *int
	PerCustomerCap     *int
	UsageCount         int `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (promotionModel) TableName() string { return "promotions" }

type redemptionModel struct {
	ID              string          `gorm:"primarykey;size:36"`
	PromotionID     string          `gorm:"size:36;not null;index:idx_redemption_customer"`
	OrderID         string          `gorm:"size:64"`
	CustomerPhone   string          `gorm:"size:32;index:idx_redemption_customer"`
	Code            string          `gorm:"size:64;not null"`
	DiscountApplied decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time
}

func (redemptionModel) TableName() string { return "redemptions" }

func toPromotionModel(p domain.Promotion) promotionModel {
	return promotionModel{
		ID:                 string(p.ID),
		StoreID:            p.StoreID.String(),
		Title:              p.Title,
		Description:        p.Description,
		Type:               p.Type,
		Code:               p.Code,
		Percentage:         p.Percentage,
		Amount:             p.Amount,
		ApplicableProducts: p.ApplicableProducts,
		Priority:           p.Priority,
		Active:             p.Active,
		StartsAt:           p.StartsAt,
		EndsAt:             p.EndsAt,
		UsageCap:           p.UsageCap,
		PerCustomerCap:     p.PerCustomerCap,
		UsageCount:         p.UsageCount,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (m promotionModel) toDomain() domain.Promotion {
	return domain.Promotion{
		ID:                 domain.PromotionID(m.ID),
		StoreID:            domain.StoreID(m.StoreID),
		Title:              m.Title,
		Description:        m.Description,
		Type:               m.Type,
		Code:               m.Code,
		Percentage:         m.Percentage,
		Amount:             m.Amount,
		ApplicableProducts: m.ApplicableProducts,
		Priority:           m.Priority,
		Active:             m.Active,
		StartsAt:           m.StartsAt,
		EndsAt:             m.EndsAt,
		UsageCap:           m.UsageCap,
		PerCustomerCap:     m.PerCustomerCap,
		UsageCount:         m.UsageCount,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toRedemptionModel(r domain.Redemption) redemptionModel {
	return redemptionModel{
		ID:              string(r.ID),
		PromotionID:     string(r.PromotionID),
		OrderID:         r.OrderID,
		CustomerPhone:   r.CustomerPhone,
		Code:            r.Code,
		DiscountApplied: r.DiscountApplied,
		CreatedAt:       r.CreatedAt,
	}
}

func (m redemptionModel) toDomain() domain.Redemption {
	return domain.Redemption{
		ID:              domain.RedemptionID(m.ID),
		PromotionID:     domain.PromotionID(m.PromotionID),
		OrderID:         m.OrderID,
		CustomerPhone:   m.CustomerPhone,
		Code:            m.Code,
		DiscountApplied: m.DiscountApplied,
		CreatedAt:       m.CreatedAt,
	}
}
