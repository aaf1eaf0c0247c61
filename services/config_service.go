package services

import (
	"context"
	"log/slog"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"time"
)

type IConfigService interface {
	Get(ctx context.Context, storeID domain.StoreID) (domain.StoreConfig, error)
	Update(ctx context.Context, storeID domain.StoreID, changes map[string]any) (domain.StoreConfig, []string, error)
}

type ConfigService struct {
	log        *slog.Logger
	repository contract.IConfigRepository
	gateway    contract.IGateway
	now        func() time.Time
}

func NewConfigService(log *slog.Logger, repository contract.IConfigRepository, gateway contract.IGateway) *ConfigService {
	return &ConfigService{log: log, repository: repository, gateway: gateway, now: time.Now}
}

// Get falls back on the default storefront and stores it for next time.
func (s *ConfigService) Get(ctx context.Context, storeID domain.StoreID) (domain.StoreConfig, error) {
	cfg, err := s.repository.Get(ctx, storeID)
	if !errors.Is(err, errors.ErrConfigNotFound) {
		return cfg, err
	}
	cfg = domain.DefaultStoreConfig(storeID, s.now())
	if err := s.repository.Save(ctx, cfg); err != nil {
		return domain.StoreConfig{}, err
	}
	s.log.Debug("Default configuration created", "store", storeID)
	return cfg, nil
}

func (s *ConfigService) Update(ctx context.Context, storeID domain.StoreID, changes map[string]any) (domain.StoreConfig, []string, error) {
	cfg, err := s.Get(ctx, storeID)
	if err != nil {
		return domain.StoreConfig{}, nil, err
	}
	fields := cfg.Apply(changes, s.now())
	if len(fields) == 0 {
		return domain.StoreConfig{}, nil, errors.ErrNoFieldsToUpdate
	}
	if err := s.repository.Save(ctx, cfg); err != nil {
		return domain.StoreConfig{}, nil, err
	}

	s.gateway.NotifyStore(ctx, storeID, event.ConfigUpdated, event.Fields{
		"tiendaId": storeID,
		"campos":   fields,
	})
	return cfg, fields, nil
}
