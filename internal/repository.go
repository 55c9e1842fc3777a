package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/migrations"
	"github.com/DrGermanius/LaundryPOS/internal/model"
)

const (
	customerFields = "id, name, mobile, home_phone, address, balance, notes"
	orderFields    = "order_id, customer_id, total_amount, paid_amount, payment_status, created_at, created_by"
	itemFields     = "tag_id, order_id, item_type, price, color, pattern, note, status"
	historyFields  = "customer_id, change_amount, new_balance, type, operator_id, created_at"
	ledgerFields   = "entry_id, created_at, account_debit, account_credit, amount, description, reference_id"

	pgUniqueViolation = "23505"
)

// ITx is the write side of the store. Everything done through one ITx commits or
// rolls back together.
type ITx interface {
	GetCustomer(context.Context, string) (model.Customer, error)
	UpdateCustomerBalance(context.Context, string, decimal.Decimal) error
	AddBalanceHistory(context.Context, model.BalanceHistory) error
	AddLedgerEntry(context.Context, model.LedgerEntry) error
	CreateOrder(context.Context, model.Order) error
	AddOrderItems(context.Context, []model.OrderItem) error
	GetOrder(context.Context, string) (model.Order, error)
	UpdateOrderPayment(context.Context, string, decimal.Decimal, model.PaymentStatus) error
	GetOrderItems(context.Context, string) ([]model.OrderItem, error)
	UpdateItemStatus(context.Context, string, model.ItemStatus) error
	GetLedgerEntriesByReference(context.Context, string) ([]model.LedgerEntry, error)
}

type IRepository interface {
	RunInTx(context.Context, func(context.Context, ITx) error) error

	CreateCustomer(context.Context, model.Customer) error
	GetCustomer(context.Context, string) (model.Customer, error)
	SearchCustomers(context.Context, string) ([]model.Customer, error)
	GetBalanceHistory(context.Context, string) ([]model.BalanceHistory, error)

	GetOrder(context.Context, string) (model.Order, error)
	GetOrdersCreatedBetween(context.Context, time.Time, time.Time) ([]model.Order, error)
	GetOrderItems(context.Context, string) ([]model.OrderItem, error)
	GetItems(context.Context, []string) ([]model.OrderItem, error)
	GetItemsNotPickedUp(context.Context) ([]model.OrderItem, error)
	LastOrderSequence(context.Context, string) (int, error)

	GetLedgerEntriesByReference(context.Context, string) ([]model.LedgerEntry, error)
	GetLedgerEntriesBetween(context.Context, time.Time, time.Time) ([]model.LedgerEntry, error)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	if err = Migrate(conn); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func Migrate(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// MigrateDown rolls back the latest migration.
func MigrateDown(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	return goose.Down(db, ".")
}

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	return goose.SetDialect("postgres")
}

func (r Repository) RunInTx(ctx context.Context, fn func(context.Context, ITx) error) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err = fn(ctx, pgTx{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.Logger.Errorf("rollback failed: %s", rbErr.Error())
		}
		return err
	}

	return tx.Commit()
}

func (r Repository) CreateCustomer(ctx context.Context, c model.Customer) error {
	_, err := r.Conn.ExecContext(ctx, "INSERT INTO customers ("+customerFields+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		c.ID, c.Name, c.Mobile, c.HomePhone, c.Address, c.Balance, c.Notes)
	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

func (r Repository) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	return getCustomer(ctx, r.Conn, "SELECT "+customerFields+" FROM customers WHERE id = $1", id)
}

func (r Repository) SearchCustomers(ctx context.Context, q string) ([]model.Customer, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+customerFields+" FROM customers WHERE name ILIKE $1 OR mobile LIKE $1 OR home_phone LIKE $1 OR upper(id) = upper($2) ORDER BY name",
		"%"+q+"%", q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		err = rows.Scan(&c.ID, &c.Name, &c.Mobile, &c.HomePhone, &c.Address, &c.Balance, &c.Notes)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r Repository) GetBalanceHistory(ctx context.Context, customerID string) ([]model.BalanceHistory, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+historyFields+" FROM balance_history WHERE customer_id = $1 ORDER BY id", customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.BalanceHistory
	for rows.Next() {
		var h model.BalanceHistory
		err = rows.Scan(&h.CustomerID, &h.ChangeAmount, &h.NewBalance, &h.Type, &h.OperatorID, &h.Date)
		if err != nil {
			return nil, err
		}
		history = append(history, h)
	}

	return history, rows.Err()
}

func (r Repository) GetOrder(ctx context.Context, id string) (model.Order, error) {
	return getOrder(ctx, r.Conn, "SELECT "+orderFields+" FROM orders WHERE order_id = $1", id)
}

func (r Repository) GetOrdersCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders WHERE created_at >= $1 AND created_at < $2 ORDER BY order_id", start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r Repository) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return queryItems(ctx, r.Conn, "SELECT "+itemFields+" FROM order_items WHERE order_id = $1 ORDER BY tag_id", orderID)
}

func (r Repository) GetItems(ctx context.Context, tagIDs []string) ([]model.OrderItem, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(tagIDs))
	args := make([]interface{}, len(tagIDs))
	for i, id := range tagIDs {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	return queryItems(ctx, r.Conn, "SELECT "+itemFields+" FROM order_items WHERE tag_id IN ("+strings.Join(placeholders, ", ")+") ORDER BY tag_id", args...)
}

func (r Repository) GetItemsNotPickedUp(ctx context.Context) ([]model.OrderItem, error) {
	return queryItems(ctx, r.Conn, "SELECT "+itemFields+" FROM order_items WHERE status <> $1 ORDER BY tag_id", model.ItemStatusPickedUp)
}

func (r Repository) LastOrderSequence(ctx context.Context, day string) (int, error) {
	var seq int
	err := r.Conn.QueryRowContext(ctx, "SELECT COALESCE(MAX(CAST(split_part(order_id, '-', 2) AS INTEGER)), 0) FROM orders WHERE order_id LIKE $1", day+"-%").Scan(&seq)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (r Repository) GetLedgerEntriesByReference(ctx context.Context, ref string) ([]model.LedgerEntry, error) {
	return queryLedger(ctx, r.Conn, "SELECT "+ledgerFields+" FROM ledger WHERE reference_id = $1 ORDER BY created_at", ref)
}

func (r Repository) GetLedgerEntriesBetween(ctx context.Context, start, end time.Time) ([]model.LedgerEntry, error) {
	return queryLedger(ctx, r.Conn, "SELECT "+ledgerFields+" FROM ledger WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at", start, end)
}

type pgTx struct {
	q querier
}

func (t pgTx) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	return getCustomer(ctx, t.q, "SELECT "+customerFields+" FROM customers WHERE id = $1 FOR UPDATE", id)
}

func (t pgTx) UpdateCustomerBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	return execOne(ctx, t.q, "UPDATE customers SET balance = $1 WHERE id = $2", balance, id)
}

func (t pgTx) AddBalanceHistory(ctx context.Context, h model.BalanceHistory) error {
	_, err := t.q.ExecContext(ctx, "INSERT INTO balance_history ("+historyFields+") VALUES ($1, $2, $3, $4, $5, $6)",
		h.CustomerID, h.ChangeAmount, h.NewBalance, h.Type, h.OperatorID, h.Date)
	return err
}

func (t pgTx) AddLedgerEntry(ctx context.Context, e model.LedgerEntry) error {
	_, err := t.q.ExecContext(ctx, "INSERT INTO ledger ("+ledgerFields+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		e.ID, e.Date, e.DebitAccount, e.CreditAccount, e.Amount, e.Description, e.ReferenceID)
	return err
}

func (t pgTx) CreateOrder(ctx context.Context, o model.Order) error {
	_, err := t.q.ExecContext(ctx, "INSERT INTO orders ("+orderFields+", is_void) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		o.ID, o.CustomerID, o.TotalAmount, o.PaidAmount, o.PaymentStatus, o.CreatedAt, o.CreatedBy, o.IsVoid())
	if isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return err
}

func (t pgTx) AddOrderItems(ctx context.Context, items []model.OrderItem) error {
	for _, i := range items {
		_, err := t.q.ExecContext(ctx, "INSERT INTO order_items ("+itemFields+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
			i.TagID, i.OrderID, i.ItemType, i.Price, i.Color, i.Pattern, i.Note, i.Status)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateTag, i.TagID)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t pgTx) GetOrder(ctx context.Context, id string) (model.Order, error) {
	return getOrder(ctx, t.q, "SELECT "+orderFields+" FROM orders WHERE order_id = $1 FOR UPDATE", id)
}

func (t pgTx) UpdateOrderPayment(ctx context.Context, id string, paid decimal.Decimal, status model.PaymentStatus) error {
	return execOne(ctx, t.q, "UPDATE orders SET paid_amount = $1, payment_status = $2, is_void = $3 WHERE order_id = $4",
		paid, status, status == model.PaymentStatusVoid, id)
}

func (t pgTx) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return queryItems(ctx, t.q, "SELECT "+itemFields+" FROM order_items WHERE order_id = $1 ORDER BY tag_id FOR UPDATE", orderID)
}

func (t pgTx) UpdateItemStatus(ctx context.Context, tagID string, status model.ItemStatus) error {
	return execOne(ctx, t.q, "UPDATE order_items SET status = $1 WHERE tag_id = $2", status, tagID)
}

func (t pgTx) GetLedgerEntriesByReference(ctx context.Context, ref string) ([]model.LedgerEntry, error) {
	return queryLedger(ctx, t.q, "SELECT "+ledgerFields+" FROM ledger WHERE reference_id = $1 ORDER BY created_at", ref)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func getCustomer(ctx context.Context, q querier, query, id string) (model.Customer, error) {
	var c model.Customer
	err := q.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Mobile, &c.HomePhone, &c.Address, &c.Balance, &c.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func getOrder(ctx context.Context, q querier, query, id string) (model.Order, error) {
	o, err := scanOrder(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrNotFound
	}
	return o, err
}

func scanOrder(s scanner) (model.Order, error) {
	var o model.Order
	err := s.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.PaidAmount, &o.PaymentStatus, &o.CreatedAt, &o.CreatedBy)
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func queryItems(ctx context.Context, q querier, query string, args ...interface{}) ([]model.OrderItem, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var i model.OrderItem
		err = rows.Scan(&i.TagID, &i.OrderID, &i.ItemType, &i.Price, &i.Color, &i.Pattern, &i.Note, &i.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	return items, rows.Err()
}

func queryLedger(ctx context.Context, q querier, query string, args ...interface{}) ([]model.LedgerEntry, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		err = rows.Scan(&e.ID, &e.Date, &e.DebitAccount, &e.CreditAccount, &e.Amount, &e.Description, &e.ReferenceID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func execOne(ctx context.Context, q querier, query string, args ...interface{}) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
