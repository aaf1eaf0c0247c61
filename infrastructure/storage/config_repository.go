package storage

import (
	"context"
	"log/slog"
	"tienda-live/domain"
	"tienda-live/errors"

	"github.com/dgraph-io/badger/v4"
)

const configPrefix = "config:"

type ConfigRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConfigRepository(db *badger.DB, log *slog.Logger) *ConfigRepository {
	return &ConfigRepository{db: db, log: log}
}

// Get returns errors.ErrConfigNotFound for a store that never saved a configuration.
func (r *ConfigRepository) Get(_ context.Context, storeID domain.StoreID) (domain.StoreConfig, error) {
	var cfg domain.StoreConfig
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, configPrefix+storeID.String(), &cfg, errors.ErrConfigNotFound)
	})
	return cfg, persistence(err, errors.ErrConfigNotFound)
}

func (r *ConfigRepository) Save(_ context.Context, cfg domain.StoreConfig) error {
	return persistence(r.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, configPrefix+cfg.StoreID.String(), cfg)
	}))
}
