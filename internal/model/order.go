package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "Unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "PartiallyPaid"
	PaymentStatusPaid          PaymentStatus = "Paid"
	PaymentStatusVoid          PaymentStatus = "Void"
)

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "Cash"
	PaymentMethodUnpaid        PaymentMethod = "Unpaid"
	PaymentMethodDeductBalance PaymentMethod = "DeductBalance"
)

type ItemStatus string

const (
	ItemStatusIn       ItemStatus = "In"
	ItemStatusCleaned  ItemStatus = "Cleaned"
	ItemStatusPickedUp ItemStatus = "PickedUp"
)

type Order struct {
	ID            string          `json:"orderID"`
	CustomerID    string          `json:"customerID"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Outstanding is the amount still due on the order. A voided order owes nothing.
func (o Order) Outstanding() decimal.Decimal {
	if o.IsVoid() {
		return decimal.Zero
	}
	return o.TotalAmount.Sub(o.PaidAmount)
}

func (o Order) IsVoid() bool {
	return o.PaymentStatus == PaymentStatusVoid
}

func (o Order) IsSettled() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

type OrderItem struct {
	TagID    string          `json:"tagID"`
	OrderID  string          `json:"orderID"`
	ItemType string          `json:"itemType"`
	Price    decimal.Decimal `json:"price"`
	Color    string          `json:"color"`
	Pattern  string          `json:"pattern"`
	Note     string          `json:"note"`
	Status   ItemStatus      `json:"status"`
}

type CheckoutInput struct {
	CustomerID string        `json:"customerID"`
	Method     PaymentMethod `json:"method"`
	Lines      []CartLine    `json:"lines"`
	// RequireFullBalance makes a DeductBalance checkout fail instead of degrading
	// to PartiallyPaid/Unpaid when the balance does not cover the total.
	RequireFullBalance bool `json:"requireFullBalance"`
}

type CheckoutResult struct {
	Order   Order       `json:"order"`
	Items   []OrderItem `json:"items"`
	Receipt Receipt     `json:"receipt"`
}

type Receipt struct {
	Customer CustomerCopy `json:"customerCopy"`
	Store    StoreCopy    `json:"storeCopy"`
}

type CustomerCopy struct {
	OrderID      string          `json:"orderID"`
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	Method       PaymentMethod   `json:"method"`
	Total        decimal.Decimal `json:"total"`
	Paid         decimal.Decimal `json:"paid"`
	OldBalance   decimal.Decimal `json:"oldBalance"`
	Deduction    decimal.Decimal `json:"deduction"`
	NewBalance   decimal.Decimal `json:"newBalance"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	IssuedAt     time.Time       `json:"issuedAt"`
}

type StoreCopy struct {
	OrderID string      `json:"orderID"`
	Items   []OrderItem `json:"items"`
}

type PickupRequest struct {
	OrderID string   `json:"orderID"`
	TagIDs  []string `json:"tagIDs"`
	// CollectDue lets the gate settle the outstanding amount before release.
	CollectDue bool `json:"collectDue"`
}

type ItemResult struct {
	TagID   string     `json:"tagID"`
	OrderID string     `json:"orderID"`
	Status  ItemStatus `json:"status"`
	Changed bool       `json:"changed"`
	Err     error      `json:"-"`
	Message string     `json:"error,omitempty"`
}

type BatchResult struct {
	Items []ItemResult `json:"items"`
}

// Succeeded counts items that ended in the requested state.
func (r BatchResult) Succeeded() int {
	n := 0
	for _, i := range r.Items {
		if i.Err == nil {
			n++
		}
	}
	return n
}

func (r BatchResult) Failed() []ItemResult {
	var failed []ItemResult
	for _, i := range r.Items {
		if i.Err != nil {
			failed = append(failed, i)
		}
	}
	return failed
}
