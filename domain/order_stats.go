package domain

import (
	"fmt"
	"sort"
	"tienda-live/errors"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderPeriod string

const (
	PeriodAll   OrderPeriod = ""
	PeriodToday OrderPeriod = "hoy"
	PeriodWeek  OrderPeriod = "semana"
	PeriodMonth OrderPeriod = "mes"
)

const (
	DefaultOrderPageSize = 50
	noTopProduct         = "N/A"
)

// OrderFilter narrows the order list of a store. Page starts at 1.
type OrderFilter struct {
	Status OrderStatus
	Period OrderPeriod
	Limit  int
	Page   int
}

func ParseOrderPeriod(s string) (OrderPeriod, error) {
	period := OrderPeriod(s)
	if !lo.Contains([]OrderPeriod{PeriodAll, PeriodToday, PeriodWeek, PeriodMonth}, period) {
		return "", fmt.Errorf("%w: unknown period %q", errors.ErrInvalidRequest, s)
	}
	return period, nil
}

func (f OrderFilter) Match(o Order, now time.Time) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	today := dateOf(now, now.Location())
	switch f.Period {
	case PeriodToday:
		return dateOf(o.CreatedAt, now.Location()).Equal(today)
	case PeriodWeek:
		return !o.CreatedAt.Before(today.AddDate(0, 0, -7))
	case PeriodMonth:
		return !o.CreatedAt.Before(today.AddDate(0, 0, -30))
	default:
		return true
	}
}

// Apply keeps the matching orders and cuts the requested page out of them.
// orders must already be newest first.
func (f OrderFilter) Apply(orders []Order, now time.Time) []Order {
	limit, page := f.Limit, f.Page
	if limit <= 0 {
		limit = DefaultOrderPageSize
	}
	if page <= 0 {
		page = 1
	}
	matching := lo.Filter(orders, func(o Order, _ int) bool { return f.Match(o, now) })
	start := (page - 1) * limit
	if start >= len(matching) {
		return []Order{}
	}
	return matching[start:min(start+limit, len(matching))]
}

type TopProduct struct {
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad_vendida"`
}

// OrderStats feeds the store dashboard. Cancelled orders never count as sales.
type OrderStats struct {
	StoreID      StoreID             `json:"tienda_id"`
	Total        int                 `json:"total_ordenes"`
	Pending      int                 `json:"ordenes_pendientes"`
	Today        int                 `json:"ordenes_hoy"`
	SalesToday   decimal.Decimal     `json:"ventas_hoy"`
	SalesMonth   decimal.Decimal     `json:"ventas_mes"`
	AverageOrder decimal.Decimal     `json:"orden_promedio"`
	TopProduct   TopProduct          `json:"producto_mas_vendido"`
	ByStatus     map[OrderStatus]int `json:"por_estado"`
	Timestamp    time.Time           `json:"timestamp"`
}

func NewOrderStats(storeID StoreID, orders []Order, now time.Time) OrderStats {
	stats := OrderStats{
		StoreID:      storeID,
		Total:        len(orders),
		SalesToday:   decimal.Zero,
		SalesMonth:   decimal.Zero,
		AverageOrder: decimal.Zero,
		TopProduct:   TopProduct{ProductID: noTopProduct},
		ByStatus:     make(map[OrderStatus]int, len(orderStatuses)),
		Timestamp:    now.UTC(),
	}
	for _, status := range orderStatuses {
		stats.ByStatus[status] = 0
	}

	today := dateOf(now, now.Location())
	sold := map[string]int{}
	revenue, counted := decimal.Zero, 0
	for _, o := range orders {
		stats.ByStatus[o.Status]++
		created := o.CreatedAt.In(now.Location())
		isToday := dateOf(created, now.Location()).Equal(today)
		if o.Status == OrderPending {
			stats.Pending++
		}
		if isToday {
			stats.Today++
		}
		if o.Status == OrderCancelled {
			continue
		}
		revenue = revenue.Add(o.Total)
		counted++
		if isToday {
			stats.SalesToday = stats.SalesToday.Add(o.Total)
		}
		if created.Year() == now.Year() && created.Month() == now.Month() {
			stats.SalesMonth = stats.SalesMonth.Add(o.Total)
		}
		for _, item := range o.Items {
			sold[item.ProductID] += item.Quantity
		}
	}
	if counted > 0 {
		stats.AverageOrder = revenue.Div(decimal.NewFromInt(int64(counted))).Round(2)
	}

	products := lo.Keys(sold)
	sort.Strings(products)
	for _, id := range products {
		if sold[id] > stats.TopProduct.Quantity {
			stats.TopProduct = TopProduct{ProductID: id, Quantity: sold[id]}
		}
	}
	return stats
}
