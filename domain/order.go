package domain

import (
	"fmt"
	"strconv"
	"tienda-live/errors"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pendiente"
	OrderConfirmed OrderStatus = "confirmada"
	OrderPreparing OrderStatus = "preparando"
	OrderShipped   OrderStatus = "enviada"
	OrderDelivered OrderStatus = "entregada"
	OrderCancelled OrderStatus = "cancelada"
)

var orderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing, OrderShipped, OrderDelivered, OrderCancelled,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !lo.Contains(orderStatuses, status) {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidStatus, s)
	}
	return status, nil
}

const DefaultPaymentMethod = "efectivo"

type OrderItem struct {
	ProductID string          `json:"producto_id"`
	VariantID string          `json:"variante_id,omitempty"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Notes     string          `json:"notas,omitempty"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"numero_orden"`
	StoreID         StoreID         `json:"tienda_id"`
	CustomerName    string          `json:"cliente_nombre"`
	CustomerPhone   string          `json:"cliente_telefono,omitempty"`
	CustomerAddress string          `json:"cliente_direccion,omitempty"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"descuento"`
	DiscountCode    string          `json:"codigo_descuento,omitempty"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"estado"`
	Notes           string          `json:"notas,omitempty"`
	PaymentMethod   string          `json:"metodo_pago"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ItemsTotal sums the item subtotals, optionally restricted to the products a promotion covers.
func (o Order) ItemsTotal(in func(productID string) bool) decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if in == nil || in(item.ProductID) {
			total = total.Add(item.Subtotal())
		}
	}
	return total
}

// OrderNumberGenerator produces ORD-{last 6 digits of the ms timestamp}-{3 random digits}.
type OrderNumberGenerator struct {
	suffix func() string
}

func NewOrderNumberGenerator() (OrderNumberGenerator, error) {
	suffix, err := nanoid.CustomASCII("0123456789", 3)
	if err != nil {
		return OrderNumberGenerator{}, err
	}
	return OrderNumberGenerator{suffix: suffix}, nil
}

func (g OrderNumberGenerator) Next(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("ORD-%s-%s", ms, g.suffix())
}
