package index

import (
	"context"
	"log/slog"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/search"

	"github.com/blugelabs/bluge"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T) *OrderIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewOrderIndex(writer, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestOrderIndex_Search(t *testing.T) {
	req := require.New(t)
	index := newIndex(t)
	ctx := context.Background()

	orders := []domain.Order{
		{Number: "ORD-111111-001", StoreID: "7", CustomerName: "Maria Lopez", CustomerAddress: "Calle Sol 5", Status: domain.OrderPending},
		{Number: "ORD-222222-002", StoreID: "7", CustomerName: "Pedro Gomez", CustomerAddress: "Avenida Luna", Status: domain.OrderShipped},
		{Number: "ORD-333333-003", StoreID: "8", CustomerName: "Maria Perez", Status: domain.OrderPending},
	}
	for _, o := range orders {
		req.NoError(index.Index(ctx, o))
	}

	t.Run("should match customer names within one store", func(t *testing.T) {
		numbers, total, err := index.Search(ctx, "7", search.NewSearchQuery("maria"))
		req.NoError(err)
		req.Equal(uint64(1), total)
		req.Equal([]string{"ORD-111111-001"}, numbers)
	})

	t.Run("should filter on status", func(t *testing.T) {
		numbers, total, err := index.Search(ctx, "7", search.NewSearchQuery("--estado enviada"))
		req.NoError(err)
		req.Equal(uint64(1), total)
		req.Equal([]string{"ORD-222222-002"}, numbers)
	})

	t.Run("should find an exact order number", func(t *testing.T) {
		numbers, _, err := index.Search(ctx, "7", search.NewSearchQuery("ord-222222-002"))
		req.NoError(err)
		req.NotEmpty(numbers)
		req.Equal("ORD-222222-002", numbers[0])
	})

	t.Run("should replace a re-indexed order", func(t *testing.T) {
		updated := orders[0]
		updated.Status = domain.OrderDelivered
		req.NoError(index.Index(ctx, updated))

		_, total, err := index.Search(ctx, "7", search.NewSearchQuery("--estado pendiente"))
		req.NoError(err)
		req.Zero(total)
	})
}
