package index

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"tienda-live/domain"
	"tienda-live/domain/search"

	"github.com/blugelabs/bluge"
)

const (
	fieldStore   = "tienda_id"
	fieldStatus  = "estado"
	fieldContent = "content"
	fieldNumber  = "numero_orden"
)

// OrderIndex is the full-text index of orders, one document per order number.
// Re-indexing an order replaces its previous document.
type OrderIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewOrderIndex(writer *bluge.Writer, log *slog.Logger) *OrderIndex {
	return &OrderIndex{writer: writer, log: log}
}

func (i *OrderIndex) Index(_ context.Context, o domain.Order) error {
	doc := bluge.NewDocument(o.Number).
		AddField(bluge.NewKeywordField(fieldStore, o.StoreID.String())).
		AddField(bluge.NewKeywordField(fieldStatus, string(o.Status))).
		AddField(bluge.NewKeywordField(fieldNumber, o.Number).StoreValue()).
		AddField(bluge.NewTextField(fieldContent, orderText(o)))

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("failed to index order %s: %w", o.Number, err)
	}
	return nil
}

func (i *OrderIndex) Search(ctx context.Context, storeID domain.StoreID, q search.Query) ([]string, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(storeID.String()).SetField(fieldStore))
	if q.Status != "" {
		query.AddMust(bluge.NewTermQuery(q.Status).SetField(fieldStatus))
	}
	if q.Terms != "" {
		terms := bluge.NewBooleanQuery().
			AddShould(bluge.NewMatchQuery(q.Terms).SetField(fieldContent)).
			AddShould(bluge.NewTermQuery(strings.ToUpper(q.Terms)).SetField(fieldNumber).SetBoost(5)).
			SetMinShould(1)
		query.AddMust(terms)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	request := bluge.NewTopNSearch(limit, query).WithStandardAggregations()
	dmi, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("order search failed: %w", err)
	}

	var numbers []string
	match, err := dmi.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldNumber {
				numbers = append(numbers, string(value))
				return false
			}
			return true
		})
		if visitErr != nil {
			return nil, 0, visitErr
		}
		match, err = dmi.Next()
	}
	if err != nil {
		return nil, 0, fmt.Errorf("order search iteration failed: %w", err)
	}

	total := dmi.Aggregations().Count()
	i.log.Debug("Order search", "tienda", storeID, "terms", q.Terms, "estado", q.Status, "total", total)
	return numbers, total, nil
}

func orderText(o domain.Order) string {
	parts := []string{o.Number, o.CustomerName, o.CustomerPhone, o.CustomerAddress, o.Notes, o.DiscountCode}
	for _, item := range o.Items {
		parts = append(parts, item.ProductID, item.Notes)
	}
	return strings.Join(parts, " ")
}
