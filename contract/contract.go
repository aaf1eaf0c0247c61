//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"tienda-live/domain"
	"tienda-live/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives notifications. Consume must not block the caller.
type EventSink interface {
	Consume(ctx context.Context, n event.Notification) error
}

type IRegistry interface {
	Register(connectionID domain.ConnectionID, sink EventSink)
	Join(room domain.RoomKey, connectionID domain.ConnectionID) bool
	Leave(room domain.RoomKey, connectionID domain.ConnectionID)
	Disconnect(connectionID domain.ConnectionID) []domain.RoomKey
	SizeOf(room domain.RoomKey) int
	Sinks(room domain.RoomKey) []EventSink
	Stats() domain.ConnectionStats
}

// IGateway is how business code pushes notifications. It never fails the caller.
type IGateway interface {
	NotifyStore(ctx context.Context, storeID domain.StoreID, eventName string, data event.Fields)
	NotifyStoreAdmins(ctx context.Context, storeID domain.StoreID, eventName string, data event.Fields)
	NotifyStoreCustomers(ctx context.Context, storeID domain.StoreID, eventName string, data event.Fields)
	NotifyOrder(ctx context.Context, storeID domain.StoreID, orderNumber string, eventName string, data event.Fields)
}

// IRelay carries notifications between server instances sharing the same rooms.
type IRelay interface {
	Publish(ctx context.Context, n event.Notification) error
	Subscribe(ctx context.Context, handle func(n event.Notification)) error
}

// IReviewModerator censors a review and guesses its language.
type IReviewModerator interface {
	Moderate(text string) (censored string, changed bool, language string)
}

// IRedemptionService checks and consumes discount codes.
type IRedemptionService interface {
	// Validate never fails on an unknown code: it reports ReasonNotFound instead.
	Validate(ctx context.Context, storeID domain.StoreID, code string, customer string) (domain.Validation, error)
	// Redeem records one use of the promotion. Both the record and the
	// counter increment commit together or not at all.
	Redeem(ctx context.Context, promotionID domain.PromotionID, r domain.Redemption) (domain.Redemption, error)
	// Release gives back a use taken by Redeem.
	Release(ctx context.Context, r domain.Redemption) error
}
