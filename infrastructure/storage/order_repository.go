package storage

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"tienda-live/domain"
	"tienda-live/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	orderPrefix      = "order:"
	orderStorePrefix = "order-store:"
)

func orderKey(number string) string { return orderPrefix + number }

// orderStoreKey sorts newest first: the timestamp is inverted.
func orderStoreKey(storeID domain.StoreID, createdAt time.Time, number string) string {
	return fmt.Sprintf("%s%019d:%s", orderStorePrefixOf(storeID), math.MaxInt64-createdAt.UnixNano(), keyPart(number))
}

func orderStorePrefixOf(storeID domain.StoreID) string {
	return fmt.Sprintf("%s%s:", orderStorePrefix, keyPart(storeID.String()))
}

type OrderRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewOrderRepository(db *badger.DB, log *slog.Logger) *OrderRepository {
	return &OrderRepository{db: db, log: log}
}

func (r *OrderRepository) Create(_ context.Context, o domain.Order) error {
	return persistence(r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(orderStoreKey(o.StoreID, o.CreatedAt, o.Number)), nil); err != nil {
			return err
		}
		return setJSON(txn, orderKey(o.Number), o)
	}))
}

func (r *OrderRepository) GetByNumber(_ context.Context, number string) (domain.Order, error) {
	var o domain.Order
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, orderKey(number), &o, errors.ErrOrderNotFound)
	})
	return o, persistence(err, errors.ErrOrderNotFound)
}

func (r *OrderRepository) UpdateStatus(_ context.Context, number string, status domain.OrderStatus, at time.Time) (domain.Order, error) {
	var previous domain.Order
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, orderKey(number), &previous, errors.ErrOrderNotFound); err != nil {
			return err
		}
		updated := previous
		updated.Status = status
		updated.UpdatedAt = at
		return setJSON(txn, orderKey(number), updated)
	})
	if err != nil {
		return domain.Order{}, persistence(err, errors.ErrOrderNotFound)
	}
	return previous, nil
}

// ListByStore returns the latest orders of a store, newest first. A zero limit lists them all.
func (r *OrderRepository) ListByStore(_ context.Context, storeID domain.StoreID, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	prefix := orderStorePrefixOf(storeID)
	err := r.db.View(func(txn *badger.Txn) error {
		for _, key := range keysWithPrefix(txn, prefix, limit) {
			number := fromKeyPart(key[strings.LastIndex(key, ":")+1:])
			var o domain.Order
			if err := getJSON(txn, orderKey(number), &o, errors.ErrOrderNotFound); err != nil {
				r.log.Warn("Dangling order index", "key", key, "error", err)
				continue
			}
			orders = append(orders, o)
		}
		return nil
	})
	return orders, persistence(err)
}
