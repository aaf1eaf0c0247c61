package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrPromotionNotFound    = fmt.Errorf("discount code not found")
	ErrOrderNotFound        = fmt.Errorf("order not found")
	ErrReviewNotFound       = fmt.Errorf("review not found")
	ErrConfigNotFound       = fmt.Errorf("store configuration not found")
	ErrInvalidState         = fmt.Errorf("discount code is not usable")
	ErrCapExceeded          = fmt.Errorf("discount code usage limit reached")
	ErrCustomerCapExceeded  = fmt.Errorf("discount code usage limit reached for customer")
	ErrTransportUnavailable = fmt.Errorf("no live connection")
	ErrPersistence          = fmt.Errorf("persistence failure")
	ErrInvalidStatus        = fmt.Errorf("invalid order status")
	ErrInvalidRequest       = fmt.Errorf("invalid request")
	ErrNoFieldsToUpdate     = fmt.Errorf("no fields to update")
	ErrCodeAlreadyExists    = fmt.Errorf("discount code already exists for store")
	ErrSinkFull             = fmt.Errorf("connection buffer full")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
	ErrNotConnected         = fmt.Errorf("not connected")
	ErrConnectionFailed     = fmt.Errorf("connection failed after the maximum number of attempts")
)

// Is and As let callers match sentinels without importing both error packages.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
