package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountCash               = "Cash"
	AccountLaundryRevenue     = "Laundry Revenue"
	AccountUnearnedRevenue    = "Unearned Revenue"
	AccountAccountsReceivable = "Accounts Receivable"
)

const (
	DescriptionCashSale       = "Cash sale"
	DescriptionBalancePayment = "Balance payment"
	DescriptionReceivable     = "Outstanding receivable"
	DescriptionTopUp          = "Top-up"
	DescriptionSettlement     = "Settlement"
	DescriptionVoidReversal   = "Void reversal"
)

const TopUpReferencePrefix = "TOPUP-"

type LedgerEntry struct {
	ID            string          `json:"ID"`
	Date          time.Time       `json:"date"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID"`
}

type ItemTypeTotal struct {
	ItemType string          `json:"itemType"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type ClosingReport struct {
	Date            string          `json:"date"`
	OrderCount      int             `json:"orderCount"`
	OrderAmount     decimal.Decimal `json:"orderAmount"`
	Breakdown       []ItemTypeTotal `json:"breakdown"`
	Revenue         decimal.Decimal `json:"revenue"`
	VoidReversals   decimal.Decimal `json:"voidReversals"`
	NetRevenue      decimal.Decimal `json:"netRevenue"`
	CashInflow      decimal.Decimal `json:"cashInflow"`
	CashSales       decimal.Decimal `json:"cashSales"`
	TopUps          decimal.Decimal `json:"topUps"`
	DuesCollected   decimal.Decimal `json:"duesCollected"`
	CashRefunds     decimal.Decimal `json:"cashRefunds"`
	NetCashInDrawer decimal.Decimal `json:"netCashInDrawer"`
	VoidedOrders    []string        `json:"voidedOrders"`
}
