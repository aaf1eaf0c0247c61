package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/domain/search"
	"tienda-live/errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IOrderService interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (domain.Order, error)
	UpdateStatus(ctx context.Context, number string, status string) (domain.Order, error)
	Get(ctx context.Context, number string) (domain.Order, error)
	Search(ctx context.Context, storeID domain.StoreID, input string) ([]domain.Order, uint64, error)
	Notify(ctx context.Context, cmd NotifyOrderCommand) (domain.Order, error)
	List(ctx context.Context, storeID domain.StoreID, filter domain.OrderFilter) ([]domain.Order, error)
	Stats(ctx context.Context, storeID domain.StoreID) (domain.OrderStats, error)
}

type CreateOrderCommand struct {
	StoreID         domain.StoreID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []domain.OrderItem
	DiscountCode    string
	Notes           string
	PaymentMethod   string
}

// NotifyOrderCommand is a message written by the store for one order.
// ToCustomers targets the store customers and the order followers instead of the store room.
type NotifyOrderCommand struct {
	Number      string
	Kind        string
	Message     string
	ToCustomers bool
}

type OrderService struct {
	log        *slog.Logger
	orders     contract.IOrderRepository
	index      contract.IOrderIndex
	redemption contract.IRedemptionService
	gateway    contract.IGateway
	numbers    domain.OrderNumberGenerator
	now        func() time.Time
}

func NewOrderService(
	log *slog.Logger,
	orders contract.IOrderRepository,
	index contract.IOrderIndex,
	redemption contract.IRedemptionService,
	gateway contract.IGateway,
	numbers domain.OrderNumberGenerator,
) *OrderService {
	return &OrderService{
		log:        log,
		orders:     orders,
		index:      index,
		redemption: redemption,
		gateway:    gateway,
		numbers:    numbers,
		now:        time.Now,
	}
}

// Create prices the order, applies and consumes the discount code if any,
// stores it and warns the store admins.
func (s *OrderService) Create(ctx context.Context, cmd CreateOrderCommand) (domain.Order, error) {
	if cmd.StoreID == "" || strings.TrimSpace(cmd.CustomerName) == "" {
		return domain.Order{}, fmt.Errorf("%w: store and customer name are required", errors.ErrInvalidRequest)
	}
	if len(cmd.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: an order needs at least one item", errors.ErrInvalidRequest)
	}
	for _, item := range cmd.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return domain.Order{}, fmt.Errorf("%w: invalid item %q", errors.ErrInvalidRequest, item.ProductID)
		}
	}

	now := s.now()
	order := domain.Order{
		ID:              uuid.NewString(),
		Number:          s.numbers.Next(now),
		StoreID:         cmd.StoreID,
		CustomerName:    strings.TrimSpace(cmd.CustomerName),
		CustomerPhone:   strings.TrimSpace(cmd.CustomerPhone),
		CustomerAddress: cmd.CustomerAddress,
		Items:           cmd.Items,
		Discount:        decimal.Zero,
		Status:          domain.OrderPending,
		Notes:           cmd.Notes,
		PaymentMethod:   cmd.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.DefaultPaymentMethod
	}
	order.Subtotal = order.ItemsTotal(nil)

	var redemption domain.Redemption
	if code := domain.NormalizeCode(cmd.DiscountCode); code != "" {
		var err error
		if redemption, err = s.applyCode(ctx, order, code); err != nil {
			return domain.Order{}, err
		}
		order.Discount = redemption.DiscountApplied
		order.DiscountCode = code
	}
	order.Total = order.Subtotal.Sub(order.Discount)

	if err := s.orders.Create(ctx, order); err != nil {
		if redemption.ID != "" {
			s.release(ctx, order, redemption)
		}
		return domain.Order{}, err
	}
	s.reindex(ctx, order)

	s.log.Info("Order created", "store", order.StoreID, "order", order.Number, "total", order.Total)
	s.gateway.NotifyStoreAdmins(ctx, order.StoreID, event.NewOrder, event.Fields{
		"orden": order,
		"tipo":  "nueva_orden",
	})
	return order, nil
}

func (s *OrderService) applyCode(ctx context.Context, order domain.Order, code string) (domain.Redemption, error) {
	validation, err := s.redemption.Validate(ctx, order.StoreID, code, order.CustomerPhone)
	if err != nil {
		return domain.Redemption{}, err
	}
	if !validation.Valid() {
		return domain.Redemption{}, fmt.Errorf("%w: %s", validation.Reason.Err(), validation.Reason)
	}

	promotion := validation.Promotion
	return s.redemption.Redeem(ctx, promotion.ID, domain.Redemption{
		OrderID:         order.ID,
		CustomerPhone:   order.CustomerPhone,
		Code:            code,
		DiscountApplied: validation.Discount.Apply(order.ItemsTotal(promotion.AppliesTo)),
	})
}

// release gives the code back when the order it paid for was never stored.
// It runs even if the request was cancelled meanwhile.
func (s *OrderService) release(ctx context.Context, order domain.Order, redemption domain.Redemption) {
	if err := s.redemption.Release(context.WithoutCancel(ctx), redemption); err != nil {
		s.log.Error("Order lost after its discount code was redeemed", "order", order.Number, "code", order.DiscountCode, "redemption", redemption.ID, "error", err)
	}
}

func (s *OrderService) UpdateStatus(ctx context.Context, number string, status string) (domain.Order, error) {
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, err
	}
	now := s.now()
	previous, err := s.orders.UpdateStatus(ctx, number, next, now)
	if err != nil {
		return domain.Order{}, err
	}

	updated := previous
	updated.Status = next
	updated.UpdatedAt = now
	s.reindex(ctx, updated)

	data := event.Fields{
		"ordenId":        updated.ID,
		"numeroOrden":    updated.Number,
		"estadoAnterior": previous.Status,
		"nuevoEstado":    next,
		"clienteNombre":  updated.CustomerName,
		"tipo":           "cambio_estado",
	}
	s.gateway.NotifyStore(ctx, updated.StoreID, event.OrderUpdated, data)
	s.gateway.NotifyOrder(ctx, updated.StoreID, updated.Number, event.OrderUpdated, data)
	return updated, nil
}

func (s *OrderService) Get(ctx context.Context, number string) (domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

// Search lists the latest orders of the store when the input holds no criteria.
func (s *OrderService) Search(ctx context.Context, storeID domain.StoreID, input string) ([]domain.Order, uint64, error) {
	query := search.NewSearchQuery(input)
	if query.IsEmpty() {
		orders, err := s.orders.ListByStore(ctx, storeID, query.Limit)
		if err != nil {
			return nil, 0, err
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		return orders, uint64(len(orders)), nil
	}

	numbers, total, err := s.index.Search(ctx, storeID, query)
	if err != nil {
		return nil, 0, err
	}
	orders := make([]domain.Order, 0, len(numbers))
	for _, number := range numbers {
		order, err := s.orders.GetByNumber(ctx, number)
		if errors.Is(err, errors.ErrOrderNotFound) {
			s.log.Warn("Indexed order missing from storage", "order", number)
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, nil
}

func (s *OrderService) Notify(ctx context.Context, cmd NotifyOrderCommand) (domain.Order, error) {
	order, err := s.orders.GetByNumber(ctx, cmd.Number)
	if err != nil {
		return domain.Order{}, err
	}
	kind := cmd.Kind
	if kind == "" {
		kind = "info"
	}
	data := event.Fields{
		"ordenId":     order.ID,
		"numeroOrden": order.Number,
		"tipo":        kind,
		"mensaje":     cmd.Message,
	}
	if cmd.ToCustomers {
		s.gateway.NotifyStoreCustomers(ctx, order.StoreID, event.CustomNotification, data)
		s.gateway.NotifyOrder(ctx, order.StoreID, order.Number, event.CustomNotification, data)
		return order, nil
	}
	s.gateway.NotifyStore(ctx, order.StoreID, event.CustomNotification, data)
	return order, nil
}

// List pages through the orders of a store, newest first.
func (s *OrderService) List(ctx context.Context, storeID domain.StoreID, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orders.ListByStore(ctx, storeID, 0)
	if err != nil {
		return nil, err
	}
	return filter.Apply(orders, s.now()), nil
}

func (s *OrderService) Stats(ctx context.Context, storeID domain.StoreID) (domain.OrderStats, error) {
	orders, err := s.orders.ListByStore(ctx, storeID, 0)
	if err != nil {
		return domain.OrderStats{}, err
	}
	return domain.NewOrderStats(storeID, orders, s.now()), nil
}

// reindex never fails the write: storage is the source of truth.
func (s *OrderService) reindex(ctx context.Context, order domain.Order) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, order); err != nil {
		s.log.Warn("Order not indexed", "order", order.Number, "error", err)
	}
}
