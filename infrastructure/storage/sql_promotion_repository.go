package storage

import (
	"context"
	"fmt"
	"log/slog"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// OpenPostgres opens the SQL promotion store and migrates its tables.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&promotionModel{}, &redemptionModel{}); err != nil {
		return fmt.Errorf("failed to migrate promotion tables: %w", err)
	}
	return nil
}

// SQLPromotionRepository is the relational promotion store.
// A redemption locks the promotion row (SELECT ... FOR UPDATE where the
// dialect has it) and bumps the counter with a conditional UPDATE, so the
// cap holds even across several server instances.
type SQLPromotionRepository struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewSQLPromotionRepository(db *gorm.DB, log *slog.Logger) *SQLPromotionRepository {
	return &SQLPromotionRepository{db: db, log: log}
}

func (r *SQLPromotionRepository) Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error) {
	if p.ID == "" {
		p.ID = domain.PromotionID(uuid.NewString())
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCodeFree(tx, p); err != nil {
			return err
		}
		model := toPromotionModel(p)
		return tx.Create(&model).Error
	})
	if err != nil {
		return domain.Promotion{}, persistence(err, errors.ErrCodeAlreadyExists)
	}
	return p, nil
}

func (r *SQLPromotionRepository) Update(ctx context.Context, p domain.Promotion) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current promotionModel
		if err := tx.First(&current, "id = ?", string(p.ID)).Error; err != nil {
			return notFound(err, errors.ErrPromotionNotFound)
		}
		p.StoreID = domain.StoreID(current.StoreID)
		if p.Code != current.Code {
			if err := ensureCodeFree(tx, p); err != nil {
				return err
			}
		}
		model := toPromotionModel(p)
		return tx.Select("*").Omit("created_at", "usage_count").Updates(&model).Error
	})
	return persistence(err, errors.ErrPromotionNotFound, errors.ErrCodeAlreadyExists)
}

func (r *SQLPromotionRepository) Delete(ctx context.Context, id domain.PromotionID) (domain.Promotion, error) {
	var deleted promotionModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "id = ?", string(id)).Error; err != nil {
			return notFound(err, errors.ErrPromotionNotFound)
		}
		return tx.Delete(&promotionModel{}, "id = ?", string(id)).Error
	})
	if err != nil {
		return domain.Promotion{}, persistence(err, errors.ErrPromotionNotFound)
	}
	return deleted.toDomain(), nil
}

func (r *SQLPromotionRepository) Get(ctx context.Context, id domain.PromotionID) (domain.Promotion, error) {
	var m promotionModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", string(id)).Error; err != nil {
		return domain.Promotion{}, persistence(notFound(err, errors.ErrPromotionNotFound), errors.ErrPromotionNotFound)
	}
	return m.toDomain(), nil
}

func (r *SQLPromotionRepository) ListByStore(ctx context.Context, storeID domain.StoreID) ([]domain.Promotion, error) {
	var models []promotionModel
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID.String()).
		Order("priority DESC").Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, persistence(err)
	}
	return lo.Map(models, func(m promotionModel, _ int) domain.Promotion { return m.toDomain() }), nil
}

func (r *SQLPromotionRepository) FindByCode(ctx context.Context, storeID domain.StoreID, code string) (domain.Promotion, error) {
	var m promotionModel
	err := r.db.WithContext(ctx).
		First(&m, "store_id = ? AND code = ?", storeID.String(), domain.NormalizeCode(code)).Error
	if err != nil {
		return domain.Promotion{}, persistence(notFound(err, errors.ErrPromotionNotFound), errors.ErrPromotionNotFound)
	}
	return m.toDomain(), nil
}

func (r *SQLPromotionRepository) CountRedemptions(ctx context.Context, id domain.PromotionID, customer string) (int, error) {
	n, err := countSQLRedemptions(r.db.WithContext(ctx), id, customer)
	return n, persistence(err)
}

func (r *SQLPromotionRepository) ListRedemptions(ctx context.Context, id domain.PromotionID) ([]domain.Redemption, error) {
	var models []redemptionModel
	err := r.db.WithContext(ctx).Where("promotion_id = ?", string(id)).Order("created_at").Find(&models).Error
	if err != nil {
		return nil, persistence(err)
	}
	return lo.Map(models, func(m redemptionModel, _ int) domain.Redemption { return m.toDomain() }), nil
}

func (r *SQLPromotionRepository) Atomically(ctx context.Context, fn func(tx contract.IPromotionTx) error) error {
	lockRows := r.db.Dialector.Name() == "postgres"
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&sqlPromotionTx{db: tx, lockRows: lockRows})
	})
	return persistence(err,
		errors.ErrPromotionNotFound, errors.ErrInvalidState,
		errors.ErrCapExceeded, errors.ErrCustomerCapExceeded, errors.ErrInvalidRequest)
}

func ensureCodeFree(tx *gorm.DB, p domain.Promotion) error {
	if !p.HasCode() {
		return nil
	}
	var count int64
	err := tx.Model(&promotionModel{}).
		Where("store_id = ? AND code = ? AND id <> ?", p.StoreID.String(), p.Code, string(p.ID)).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", errors.ErrCodeAlreadyExists, p.Code)
	}
	return nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func countSQLRedemptions(db *gorm.DB, id domain.PromotionID, customer string) (int, error) {
	q := db.Model(&redemptionModel{}).Where("promotion_id = ?", string(id))
	if customer != "" {
		q = q.Where("customer_phone = ?", customer)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

type sqlPromotionTx struct {
	db       *gorm.DB
	lockRows bool
}

func (t *sqlPromotionTx) Get(id domain.PromotionID) (domain.Promotion, error) {
	q := t.db
	if t.lockRows {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m promotionModel
	if err := q.First(&m, "id = ?", string(id)).Error; err != nil {
		return domain.Promotion{}, notFound(err, errors.ErrPromotionNotFound)
	}
	return m.toDomain(), nil
}

func (t *sqlPromotionTx) CountRedemptions(id domain.PromotionID, customer string) (int, error) {
	return countSQLRedemptions(t.db, id, customer)
}

func (t *sqlPromotionTx) AppendRedemption(red domain.Redemption) (domain.RedemptionID, error) {
	if red.ID == "" {
		red.ID = domain.RedemptionID(uuid.NewString())
	}
	model := toRedemptionModel(red)
	if err := t.db.Create(&model).Error; err != nil {
		return "", err
	}
	return red.ID, nil
}

func (t *sqlPromotionTx) IncrementUsage(id domain.PromotionID) (int, error) {
	res := t.db.Model(&promotionModel{}).
		Where("id = ? AND (usage_cap IS NULL OR usage_count < usage_cap)", string(id)).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := t.Get(id); err != nil {
			return 0, err
		}
		return 0, errors.ErrCapExceeded
	}
	var m promotionModel
	if err := t.db.Select("usage_count").First(&m, "id = ?", string(id)).Error; err != nil {
		return 0, err
	}
	return m.UsageCount, nil
}

func (t *sqlPromotionTx) RemoveRedemption(red domain.Redemption) error {
	res := t.db.Delete(&redemptionModel{}, "id = ? AND promotion_id = ?", string(red.ID), string(red.PromotionID))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: unknown redemption %s", errors.ErrInvalidRequest, red.ID)
	}
	return nil
}

func (t *sqlPromotionTx) DecrementUsage(id domain.PromotionID) (int, error) {
	err := t.db.Model(&promotionModel{}).
		Where("id = ? AND usage_count > 0", string(id)).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count - 1"),
			"updated_at":  time.Now().UTC(),
		}).Error
	if err != nil {
		return 0, err
	}
	p, err := t.Get(id)
	if err != nil {
		return 0, err
	}
	return p.UsageCount, nil
}
