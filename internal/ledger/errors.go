package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is the family of "referenced record is missing" failures.
var ErrNotFound = errors.New("not found")

var (
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrDeliveryNotFound = fmt.Errorf("delivery %w or already confirmed", ErrNotFound)
)

// ValidationError is malformed input, rejected before the store is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError is a sale asking for more than is on hand.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, only %d available", e.ProductID, e.Requested, e.Available)
}

// StoreError wraps a persistence failure. The operation had no effect and
// may be retried as a whole.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store failure: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsBusiness reports whether err is an expected business outcome rather
// than a failure of the store.
func IsBusiness(err error) bool {
	var (
		verr *ValidationError
		serr *InsufficientStockError
	)
	return errors.Is(err, ErrNotFound) || errors.As(err, &verr) || errors.As(err, &serr)
}

// Message renders err the way it is shown to the person at the counter.
func Message(err error) string {
	var (
		verr *ValidationError
		serr *InsufficientStockError
	)
	switch {
	case errors.Is(err, ErrDeliveryNotFound):
		return "Delivery not found or already confirmed."
	case errors.Is(err, ErrProductNotFound):
		return "Product not found"
	case errors.As(err, &serr):
		return fmt.Sprintf("Insufficient stock. Only %d available.", serr.Available)
	case errors.As(err, &verr):
		return verr.Error()
	case err == nil:
		return ""
	}
	return "The operation could not be completed. Please try again."
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
