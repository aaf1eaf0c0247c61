package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Key layout:
//
//	promo:{id}                                    -> Promotion
//	promo-store:{storeID}:{id}                    -> nil
//	promo-code:{storeID}:{CODE}                   -> id
//	redemption:{promotionID}:{id}                 -> Redemption
//	redemption-customer:{promotionID}:{phone}:{id} -> nil
//
// Store ids, codes and phones go through keyPart.
const (
	promoPrefix              = "promo:"
	promoStorePrefix         = "promo-store:"
	promoCodePrefix          = "promo-code:"
	redemptionPrefix         = "redemption:"
	redemptionCustomerPrefix = "redemption-customer:"
)

func promoKey(id domain.PromotionID) string { return promoPrefix + string(id) }

func promoStoreKey(storeID domain.StoreID, id domain.PromotionID) string {
	return promoStorePrefixOf(storeID) + string(id)
}

func promoCodeKey(storeID domain.StoreID, code string) string {
	return fmt.Sprintf("%s%s:%s", promoCodePrefix, keyPart(storeID.String()), keyPart(domain.NormalizeCode(code)))
}

func redemptionKey(id domain.PromotionID, rid domain.RedemptionID) string {
	return redemptionPrefixOf(id) + string(rid)
}

func redemptionPrefixOf(id domain.PromotionID) string {
	return fmt.Sprintf("%s%s:", redemptionPrefix, keyPart(string(id)))
}

func redemptionCustomerKey(id domain.PromotionID, customer string, rid domain.RedemptionID) string {
	return redemptionCustomerPrefixOf(id, customer) + string(rid)
}

func promoStorePrefixOf(storeID domain.StoreID) string {
	return fmt.Sprintf("%s%s:", promoStorePrefix, keyPart(storeID.String()))
}

func redemptionCustomerPrefixOf(id domain.PromotionID, customer string) string {
	return fmt.Sprintf("%s%s:%s:", redemptionCustomerPrefix, keyPart(string(id)), keyPart(customer))
}

// PromotionRepository keeps promotions and their redemptions in badger.
// Redemptions rely on badger's optimistic transactions: two transactions
// touching the same promotion can not both commit, the loser is retried.
type PromotionRepository struct {
	db         *badger.DB
	log        *slog.Logger
	maxRetries int
}

func NewPromotionRepository(db *badger.DB, log *slog.Logger, maxRetries int) *PromotionRepository {
	return &PromotionRepository{db: db, log: log, maxRetries: maxRetries}
}

func (r *PromotionRepository) Create(_ context.Context, p domain.Promotion) (domain.Promotion, error) {
	if p.ID == "" {
		p.ID = domain.PromotionID(uuid.NewString())
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		if p.HasCode() {
			taken, err := exists(txn, promoCodeKey(p.StoreID, p.Code))
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: %s", errors.ErrCodeAlreadyExists, p.Code)
			}
			if err := txn.Set([]byte(promoCodeKey(p.StoreID, p.Code)), []byte(p.ID)); err != nil {
				return err
			}
		}
		if err := txn.Set([]byte(promoStoreKey(p.StoreID, p.ID)), nil); err != nil {
			return err
		}
		return setJSON(txn, promoKey(p.ID), p)
	})
	if err != nil {
		return domain.Promotion{}, persistence(err, errors.ErrCodeAlreadyExists)
	}
	return p, nil
}

// Update replaces a promotion, moving its code index when the code changed.
func (r *PromotionRepository) Update(_ context.Context, p domain.Promotion) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		var current domain.Promotion
		if err := getJSON(txn, promoKey(p.ID), &current, errors.ErrPromotionNotFound); err != nil {
			return err
		}
		p.StoreID = current.StoreID
		p.UsageCount = current.UsageCount
		p.CreatedAt = current.CreatedAt
		if current.Code != p.Code {
			if p.HasCode() {
				taken, err := exists(txn, promoCodeKey(p.StoreID, p.Code))
				if err != nil {
					return err
				}
				if taken {
					return fmt.Errorf("%w: %s", errors.ErrCodeAlreadyExists, p.Code)
				}
				if err := txn.Set([]byte(promoCodeKey(p.StoreID, p.Code)), []byte(p.ID)); err != nil {
					return err
				}
			}
			if current.HasCode() {
				if err := txn.Delete([]byte(promoCodeKey(current.StoreID, current.Code))); err != nil {
					return err
				}
			}
		}
		return setJSON(txn, promoKey(p.ID), p)
	})
	return persistence(err, errors.ErrPromotionNotFound, errors.ErrCodeAlreadyExists)
}

// Delete removes the promotion and its indexes. Redemptions stay as history.
func (r *PromotionRepository) Delete(_ context.Context, id domain.PromotionID) (domain.Promotion, error) {
	var deleted domain.Promotion
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, promoKey(id), &deleted, errors.ErrPromotionNotFound); err != nil {
			return err
		}
		if deleted.HasCode() {
			if err := txn.Delete([]byte(promoCodeKey(deleted.StoreID, deleted.Code))); err != nil {
				return err
			}
		}
		if err := txn.Delete([]byte(promoStoreKey(deleted.StoreID, id))); err != nil {
			return err
		}
		return txn.Delete([]byte(promoKey(id)))
	})
	if err != nil {
		return domain.Promotion{}, persistence(err, errors.ErrPromotionNotFound)
	}
	return deleted, nil
}

func (r *PromotionRepository) Get(_ context.Context, id domain.PromotionID) (domain.Promotion, error) {
	var p domain.Promotion
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, promoKey(id), &p, errors.ErrPromotionNotFound)
	})
	return p, persistence(err, errors.ErrPromotionNotFound)
}

// ListByStore returns the promotions of a store, highest priority first, newest first on ties.
func (r *PromotionRepository) ListByStore(_ context.Context, storeID domain.StoreID) ([]domain.Promotion, error) {
	var promotions []domain.Promotion
	prefix := promoStorePrefixOf(storeID)
	err := r.db.View(func(txn *badger.Txn) error {
		for _, key := range keysWithPrefix(txn, prefix, 0) {
			id := domain.PromotionID(strings.TrimPrefix(key, prefix))
			var p domain.Promotion
			if err := getJSON(txn, promoKey(id), &p, errors.ErrPromotionNotFound); err != nil {
				r.log.Warn("Dangling promotion index", "key", key, "error", err)
				continue
			}
			promotions = append(promotions, p)
		}
		return nil
	})
	if err != nil {
		return nil, persistence(err)
	}
	sort.SliceStable(promotions, func(i, j int) bool {
		if promotions[i].Priority != promotions[j].Priority {
			return promotions[i].Priority > promotions[j].Priority
		}
		return promotions[i].CreatedAt.After(promotions[j].CreatedAt)
	})
	return promotions, nil
}

func (r *PromotionRepository) FindByCode(_ context.Context, storeID domain.StoreID, code string) (domain.Promotion, error) {
	var p domain.Promotion
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(promoCodeKey(storeID, code)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrPromotionNotFound
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getJSON(txn, promoKey(domain.PromotionID(id)), &p, errors.ErrPromotionNotFound)
	})
	return p, persistence(err, errors.ErrPromotionNotFound)
}

// CountRedemptions counts all redemptions of a promotion, or only a customer's when given.
func (r *PromotionRepository) CountRedemptions(_ context.Context, id domain.PromotionID, customer string) (int, error) {
	var count int
	err := r.db.View(func(txn *badger.Txn) error {
		count = countRedemptions(txn, id, customer)
		return nil
	})
	return count, persistence(err)
}

func (r *PromotionRepository) ListRedemptions(_ context.Context, id domain.PromotionID) ([]domain.Redemption, error) {
	var redemptions []domain.Redemption
	prefix := redemptionPrefixOf(id)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			var red domain.Redemption
			if err := getJSON(txn, string(it.Item().Key()), &red, errors.ErrPersistence); err != nil {
				return err
			}
			redemptions = append(redemptions, red)
		}
		return nil
	})
	if err != nil {
		return nil, persistence(err)
	}
	sort.SliceStable(redemptions, func(i, j int) bool {
		return redemptions[i].CreatedAt.Before(redemptions[j].CreatedAt)
	})
	return redemptions, nil
}

// Atomically runs fn in a read-write transaction and commits it.
// A commit conflict means another redemption touched the same promotion
// meanwhile: fn is run again on fresh data, up to maxRetries times.
func (r *PromotionRepository) Atomically(ctx context.Context, fn func(tx contract.IPromotionTx) error) error {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		txn := r.db.NewTransaction(true)
		if err := fn(&promotionTx{txn: txn}); err != nil {
			txn.Discard()
			return persistence(err,
				errors.ErrPromotionNotFound, errors.ErrInvalidState,
				errors.ErrCapExceeded, errors.ErrCustomerCapExceeded, errors.ErrInvalidRequest)
		}
		err := txn.Commit()
		if errors.Is(err, badger.ErrConflict) && attempt < r.maxRetries {
			r.log.Debug("Redemption conflict, retrying", "attempt", attempt+1)
			continue
		}
		return persistence(err)
	}
}

func countRedemptions(txn *badger.Txn, id domain.PromotionID, customer string) int {
	if customer == "" {
		return countPrefix(txn, redemptionPrefixOf(id))
	}
	return countPrefix(txn, redemptionCustomerPrefixOf(id, customer))
}

type promotionTx struct {
	txn *badger.Txn
}

func (t *promotionTx) Get(id domain.PromotionID) (domain.Promotion, error) {
	var p domain.Promotion
	err := getJSON(t.txn, promoKey(id), &p, errors.ErrPromotionNotFound)
	return p, err
}

func (t *promotionTx) CountRedemptions(id domain.PromotionID, customer string) (int, error) {
	return countRedemptions(t.txn, id, customer), nil
}

func (t *promotionTx) AppendRedemption(red domain.Redemption) (domain.RedemptionID, error) {
	if red.ID == "" {
		red.ID = domain.RedemptionID(uuid.NewString())
	}
	if err := setJSON(t.txn, redemptionKey(red.PromotionID, red.ID), red); err != nil {
		return "", err
	}
	if red.CustomerPhone != "" {
		if err := t.txn.Set([]byte(redemptionCustomerKey(red.PromotionID, red.CustomerPhone, red.ID)), nil); err != nil {
			return "", err
		}
	}
	return red.ID, nil
}

func (t *promotionTx) IncrementUsage(id domain.PromotionID) (int, error) {
	p, err := t.Get(id)
	if err != nil {
		return 0, err
	}
	if p.UsageCap != nil && p.UsageCount >= *p.UsageCap {
		return p.UsageCount, errors.ErrCapExceeded
	}
	p.UsageCount++
	p.UpdatedAt = time.Now().UTC()
	if err := setJSON(t.txn, promoKey(id), p); err != nil {
		return 0, err
	}
	return p.UsageCount, nil
}

func (t *promotionTx) RemoveRedemption(red domain.Redemption) error {
	var stored domain.Redemption
	notFound := fmt.Errorf("%w: unknown redemption %s", errors.ErrInvalidRequest, red.ID)
	if err := getJSON(t.txn, redemptionKey(red.PromotionID, red.ID), &stored, notFound); err != nil {
		return err
	}
	if stored.CustomerPhone != "" {
		if err := t.txn.Delete([]byte(redemptionCustomerKey(stored.PromotionID, stored.CustomerPhone, stored.ID))); err != nil {
			return err
		}
	}
	return t.txn.Delete([]byte(redemptionKey(red.PromotionID, red.ID)))
}

func (t *promotionTx) DecrementUsage(id domain.PromotionID) (int, error) {
	p, err := t.Get(id)
	if err != nil {
		return 0, err
	}
	if p.UsageCount > 0 {
		p.UsageCount--
	}
	p.UpdatedAt = time.Now().UTC()
	if err := setJSON(t.txn, promoKey(id), p); err != nil {
		return 0, err
	}
	return p.UsageCount, nil
}
