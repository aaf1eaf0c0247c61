package services

import (
	"context"
	"log/slog"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"tienda-live/mocks"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConfigService(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the default configuration on first read", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIConfigRepository(ctrl)
		svc := NewConfigService(logs.GetLoggerFromLevel(slog.LevelDebug), repo, mocks.NewMockIGateway(ctrl))

		repo.EXPECT().Get(gomock.Any(), domain.StoreID("1")).Return(domain.StoreConfig{}, errors.ErrConfigNotFound)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cfg, err := svc.Get(ctx, "1")

		req.NoError(err)
		req.Equal(domain.StoreID("1"), cfg.StoreID)
		req.Equal("moderno", cfg.Fields["estilo_layout"])
	})

	t.Run("should save the known fields and notify the store", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIConfigRepository(ctrl)
		gateway := mocks.NewMockIGateway(ctrl)
		svc := NewConfigService(logs.GetLoggerFromLevel(slog.LevelDebug), repo, gateway)

		repo.EXPECT().Get(gomock.Any(), domain.StoreID("1")).
			Return(domain.StoreConfig{StoreID: "1", Fields: map[string]any{"eslogan": "old"}, UpdatedAt: time.Now()}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().NotifyStore(gomock.Any(), domain.StoreID("1"), event.ConfigUpdated, event.Fields{
			"tiendaId": domain.StoreID("1"),
			"campos":   []string{"color_primario", "eslogan"},
		})

		cfg, fields, err := svc.Update(ctx, "1", map[string]any{"eslogan": "new", "color_primario": "#000", "hack": true})

		req.NoError(err)
		req.Equal([]string{"color_primario", "eslogan"}, fields)
		req.Equal("new", cfg.Fields["eslogan"])
		req.NotContains(cfg.Fields, "hack")
	})

	t.Run("should refuse an update without known fields", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockIConfigRepository(ctrl)
		svc := NewConfigService(logs.GetLoggerFromLevel(slog.LevelDebug), repo, mocks.NewMockIGateway(ctrl))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.StoreConfig{StoreID: "1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := svc.Update(ctx, "1", map[string]any{"hack": true})

		req.ErrorIs(err, errors.ErrNoFieldsToUpdate)
	})
}
