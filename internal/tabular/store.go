// Package tabular stores rows in named tables addressed by the value of their first
// column. It is the shape of the spreadsheet the shop ran on: Customers, Orders,
// OrderItems, BalanceHistory and Ledger sheets with positional columns.
package tabular

import (
	"context"
	"errors"
)

const (
	TableCustomers      = "Customers"
	TableOrders         = "Orders"
	TableOrderItems     = "OrderItems"
	TableBalanceHistory = "BalanceHistory"
	TableLedger         = "Ledger"
)

var ErrUnknownTable = errors.New("tabular: unknown table")
var ErrUnknownColumn = errors.New("tabular: unknown column")
var ErrKeyNotFound = errors.New("tabular: key not found")

// Schema lists the header of every table. Column order is the storage order.
var Schema = map[string][]string{
	TableCustomers:      {"ID", "Name", "Mobile", "HomePhone", "Address", "Balance", "Notes"},
	TableOrders:         {"OrderID", "CustomerID", "TotalAmount", "PaidAmount", "PaymentStatus", "IsVoid", "Date", "CreatedBy"},
	TableOrderItems:     {"TagID", "OrderID", "ItemType", "Price", "Color", "Pattern", "Note", "Status"},
	TableBalanceHistory: {"CustomerID", "ChangeAmount", "NewBalance", "Type", "OperatorID", "Date"},
	TableLedger:         {"Date", "Account_Debit", "Account_Credit", "Amount", "Description", "ReferenceID", "EntryID"},
}

// Tables in the order they are created.
var Tables = []string{TableCustomers, TableOrders, TableOrderItems, TableBalanceHistory, TableLedger}

type Row []string

// Get returns the cell at column i, or "" when the row is short.
func (r Row) Get(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

type OpKind int

const (
	OpAppend OpKind = iota
	OpUpdateCell
)

// Op is one buffered write. Updates address the row by key, never by position.
type Op struct {
	Kind   OpKind
	Table  string
	Row    Row
	Key    string
	Column string
	Value  string
}

func Append(table string, row Row) Op {
	return Op{Kind: OpAppend, Table: table, Row: row}
}

func UpdateCell(table, key, column, value string) Op {
	return Op{Kind: OpUpdateCell, Table: table, Key: key, Column: column, Value: value}
}

type Store interface {
	// Read returns all data rows of a table, header excluded.
	Read(ctx context.Context, table string) ([]Row, error)
	// Apply performs every op or none of them.
	Apply(ctx context.Context, ops []Op) error
}

// ColumnIndex resolves a header name to its position.
func ColumnIndex(table, column string) (int, error) {
	header, ok := Schema[table]
	if !ok {
		return 0, ErrUnknownTable
	}
	for i, h := range header {
		if h == column {
			return i, nil
		}
	}
	return 0, ErrUnknownColumn
}

// KeyColumn is the column that identifies a row: the first one, except for the
// ledger whose rows are keyed by EntryID.
func KeyColumn(table string) int {
	if table == TableLedger {
		return 6
	}
	return 0
}
