package internal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrItemNotReady        = errors.New("item is not ready")
	ErrPaymentRequired     = errors.New("payment required")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateTag        = errors.New("duplicate tag")

	ErrAlreadyExists        = errors.New("already exists")
	ErrOrderVoided          = errors.New("order is voided")
	ErrForbidden            = errors.New("forbidden")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidCartLine      = errors.New("invalid cart line")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrNothingToSettle      = errors.New("nothing to settle")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidAccount       = errors.New("invalid account pair")
)

// OpError attaches the references needed to render a message to a sentinel error.
type OpError struct {
	Op         string
	CustomerID string
	OrderID    string
	TagID      string
	Err        error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.CustomerID != "" {
		fmt.Fprintf(&b, " customer=%s", e.CustomerID)
	}
	if e.OrderID != "" {
		fmt.Fprintf(&b, " order=%s", e.OrderID)
	}
	if e.TagID != "" {
		fmt.Fprintf(&b, " tag=%s", e.TagID)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func customerError(op, customerID string, err error) error {
	return &OpError{Op: op, CustomerID: customerID, Err: err}
}

func orderError(op, orderID string, err error) error {
	return &OpError{Op: op, OrderID: orderID, Err: err}
}

func tagError(op, orderID, tagID string, err error) error {
	return &OpError{Op: op, OrderID: orderID, TagID: tagID, Err: err}
}
