package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

const (
	BalanceChangeTopUp        = "TopUp"
	BalanceChangeOrderPayment = "OrderPayment"
	BalanceChangeVoidRefund   = "VoidRefund"
)

type Customer struct {
	ID        string          `json:"ID"`
	Name      string          `json:"name"`
	Mobile    string          `json:"mobile"`
	HomePhone string          `json:"homePhone"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	Notes     string          `json:"notes"`
}

type CustomerInput struct {
	ID        string `json:"ID"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	HomePhone string `json:"homePhone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// Operator is the identity supplied by the session provider for every core call.
type Operator struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (o Operator) IsAdmin() bool {
	return o.Role == RoleAdmin
}

type BalanceHistory struct {
	CustomerID   string          `json:"customerID"`
	ChangeAmount decimal.Decimal `json:"changeAmount"`
	NewBalance   decimal.Decimal `json:"newBalance"`
	Type         string          `json:"type"`
	OperatorID   string          `json:"operatorID"`
	Date         time.Time       `json:"date"`
}

type BalanceChange struct {
	CustomerID string
	Amount     decimal.Decimal
	OperatorID string
	Type       string
}

type TopUpInput struct {
	Amount decimal.Decimal `json:"amount"`
}

type TopUpResult struct {
	CustomerID  string          `json:"customerID"`
	OldBalance  decimal.Decimal `json:"oldBalance"`
	NewBalance  decimal.Decimal `json:"newBalance"`
	ReferenceID string          `json:"referenceID"`
	EntryID     string          `json:"entryID"`
}
