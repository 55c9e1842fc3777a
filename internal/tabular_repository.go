package internal

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
	"github.com/DrGermanius/LaundryPOS/internal/tabular"
)

const tabularTimeLayout = time.RFC3339Nano

// TabularRepository keeps the shop's data in a tabular.Store using the sheet layout
// the shop already works with. Transactions are serialized by a process-wide mutex and
// their writes are buffered until the callback returns, then applied as one batch.
type TabularRepository struct {
	store  tabular.Store
	logger *zap.SugaredLogger
	mu     sync.Mutex
}

func NewTabularRepository(store tabular.Store, logger *zap.SugaredLogger) *TabularRepository {
	return &TabularRepository{store: store, logger: logger}
}

func (r *TabularRepository) RunInTx(ctx context.Context, fn func(context.Context, ITx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &tabularTx{repo: r}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return r.store.Apply(ctx, tx.ops)
}

func (r *TabularRepository) CreateCustomer(ctx context.Context, c model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.GetCustomer(ctx, c.ID); err == nil {
		return ErrAlreadyExists
	}
	return r.store.Apply(ctx, []tabular.Op{tabular.Append(tabular.TableCustomers, customerRow(c))})
}

func (r *TabularRepository) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	rows, err := r.store.Read(ctx, tabular.TableCustomers)
	if err != nil {
		return model.Customer{}, err
	}
	for _, row := range rows {
		if row.Get(0) == id {
			return customerFromRow(row)
		}
	}
	return model.Customer{}, ErrNotFound
}

func (r *TabularRepository) SearchCustomers(ctx context.Context, q string) ([]model.Customer, error) {
	rows, err := r.store.Read(ctx, tabular.TableCustomers)
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	var customers []model.Customer
	for _, row := range rows {
		c, err := customerFromRow(row)
		if err != nil {
			return nil, err
		}
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Mobile, q) || strings.Contains(c.HomePhone, q) ||
			strings.EqualFold(c.ID, q) {
			customers = append(customers, c)
		}
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

func (r *TabularRepository) GetBalanceHistory(ctx context.Context, customerID string) ([]model.BalanceHistory, error) {
	rows, err := r.store.Read(ctx, tabular.TableBalanceHistory)
	if err != nil {
		return nil, err
	}

	var history []model.BalanceHistory
	for _, row := range rows {
		if row.Get(0) != customerID {
			continue
		}
		h, err := historyFromRow(row)
		if err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, nil
}

func (r *TabularRepository) GetOrder(ctx context.Context, id string) (model.Order, error) {
	orders, err := r.orders(ctx, func(o model.Order) bool { return o.ID == id })
	if err != nil {
		return model.Order{}, err
	}
	if len(orders) == 0 {
		return model.Order{}, ErrNotFound
	}
	return orders[0], nil
}

func (r *TabularRepository) GetOrdersCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	return r.orders(ctx, func(o model.Order) bool {
		return !o.CreatedAt.Before(start) && o.CreatedAt.Before(end)
	})
}

func (r *TabularRepository) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return r.items(ctx, func(i model.OrderItem) bool { return i.OrderID == orderID })
}

func (r *TabularRepository) GetItems(ctx context.Context, tagIDs []string) ([]model.OrderItem, error) {
	wanted := make(map[string]bool, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = true
	}
	return r.items(ctx, func(i model.OrderItem) bool { return wanted[i.TagID] })
}

func (r *TabularRepository) GetItemsNotPickedUp(ctx context.Context) ([]model.OrderItem, error) {
	return r.items(ctx, func(i model.OrderItem) bool { return i.Status != model.ItemStatusPickedUp })
}

func (r *TabularRepository) LastOrderSequence(ctx context.Context, day string) (int, error) {
	rows, err := r.store.Read(ctx, tabular.TableOrders)
	if err != nil {
		return 0, err
	}

	last := 0
	for _, row := range rows {
		id := row.Get(0)
		if !strings.HasPrefix(id, day+"-") {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(id, day+"-"))
		if err != nil {
			continue
		}
		if seq > last {
			last = seq
		}
	}
	return last, nil
}

func (r *TabularRepository) GetLedgerEntriesByReference(ctx context.Context, ref string) ([]model.LedgerEntry, error) {
	return r.ledger(ctx, func(e model.LedgerEntry) bool { return e.ReferenceID == ref })
}

func (r *TabularRepository) GetLedgerEntriesBetween(ctx context.Context, start, end time.Time) ([]model.LedgerEntry, error) {
	return r.ledger(ctx, func(e model.LedgerEntry) bool {
		return !e.Date.Before(start) && e.Date.Before(end)
	})
}

func (r *TabularRepository) orders(ctx context.Context, keep func(model.Order) bool) ([]model.Order, error) {
	rows, err := r.store.Read(ctx, tabular.TableOrders)
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	for _, row := range rows {
		o, err := orderFromRow(row)
		if err != nil {
			return nil, err
		}
		if keep(o) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *TabularRepository) items(ctx context.Context, keep func(model.OrderItem) bool) ([]model.OrderItem, error) {
	rows, err := r.store.Read(ctx, tabular.TableOrderItems)
	if err != nil {
		return nil, err
	}

	var items []model.OrderItem
	for _, row := range rows {
		i, err := itemFromRow(row)
		if err != nil {
			return nil, err
		}
		if keep(i) {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].TagID < items[b].TagID })
	return items, nil
}

func (r *TabularRepository) ledger(ctx context.Context, keep func(model.LedgerEntry) bool) ([]model.LedgerEntry, error) {
	rows, err := r.store.Read(ctx, tabular.TableLedger)
	if err != nil {
		return nil, err
	}

	var entries []model.LedgerEntry
	for _, row := range rows {
		e, err := ledgerFromRow(row)
		if err != nil {
			return nil, err
		}
		if keep(e) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// tabularTx reads committed state and buffers its writes.
type tabularTx struct {
	repo *TabularRepository
	ops  []tabular.Op
}

func (t *tabularTx) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	return t.repo.GetCustomer(ctx, id)
}

func (t *tabularTx) UpdateCustomerBalance(_ context.Context, id string, balance decimal.Decimal) error {
	t.ops = append(t.ops, tabular.UpdateCell(tabular.TableCustomers, id, "Balance", balance.String()))
	return nil
}

func (t *tabularTx) AddBalanceHistory(_ context.Context, h model.BalanceHistory) error {
	t.ops = append(t.ops, tabular.Append(tabular.TableBalanceHistory, tabular.Row{
		h.CustomerID, h.ChangeAmount.String(), h.NewBalance.String(), h.Type, h.OperatorID, formatTime(h.Date),
	}))
	return nil
}

func (t *tabularTx) AddLedgerEntry(_ context.Context, e model.LedgerEntry) error {
	t.ops = append(t.ops, tabular.Append(tabular.TableLedger, tabular.Row{
		formatTime(e.Date), e.DebitAccount, e.CreditAccount, e.Amount.String(), e.Description, e.ReferenceID, e.ID,
	}))
	return nil
}

func (t *tabularTx) CreateOrder(ctx context.Context, o model.Order) error {
	if _, err := t.repo.GetOrder(ctx, o.ID); err == nil {
		return ErrAlreadyExists
	}
	t.ops = append(t.ops, tabular.Append(tabular.TableOrders, tabular.Row{
		o.ID, o.CustomerID, o.TotalAmount.String(), o.PaidAmount.String(), string(o.PaymentStatus),
		formatBool(o.IsVoid()), formatTime(o.CreatedAt), o.CreatedBy,
	}))
	return nil
}

func (t *tabularTx) AddOrderItems(ctx context.Context, items []model.OrderItem) error {
	tagIDs := make([]string, len(items))
	for i, item := range items {
		tagIDs[i] = item.TagID
	}
	existing, err := t.repo.GetItems(ctx, tagIDs)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, existing[0].TagID)
	}

	for _, i := range items {
		t.ops = append(t.ops, tabular.Append(tabular.TableOrderItems, tabular.Row{
			i.TagID, i.OrderID, i.ItemType, i.Price.String(), i.Color, i.Pattern, i.Note, string(i.Status),
		}))
	}
	return nil
}

func (t *tabularTx) GetOrder(ctx context.Context, id string) (model.Order, error) {
	return t.repo.GetOrder(ctx, id)
}

func (t *tabularTx) UpdateOrderPayment(_ context.Context, id string, paid decimal.Decimal, status model.PaymentStatus) error {
	t.ops = append(t.ops,
		tabular.UpdateCell(tabular.TableOrders, id, "PaidAmount", paid.String()),
		tabular.UpdateCell(tabular.TableOrders, id, "PaymentStatus", string(status)),
		tabular.UpdateCell(tabular.TableOrders, id, "IsVoid", formatBool(status == model.PaymentStatusVoid)),
	)
	return nil
}

func (t *tabularTx) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	return t.repo.GetOrderItems(ctx, orderID)
}

func (t *tabularTx) UpdateItemStatus(_ context.Context, tagID string, status model.ItemStatus) error {
	t.ops = append(t.ops, tabular.UpdateCell(tabular.TableOrderItems, tagID, "Status", string(status)))
	return nil
}

func (t *tabularTx) GetLedgerEntriesByReference(ctx context.Context, ref string) ([]model.LedgerEntry, error) {
	return t.repo.GetLedgerEntriesByReference(ctx, ref)
}

func customerRow(c model.Customer) tabular.Row {
	return tabular.Row{c.ID, c.Name, c.Mobile, c.HomePhone, c.Address, c.Balance.String(), c.Notes}
}

func customerFromRow(row tabular.Row) (model.Customer, error) {
	balance, err := parseDecimal(row.Get(5))
	if err != nil {
		return model.Customer{}, fmt.Errorf("customer %s balance: %w", row.Get(0), err)
	}
	return model.Customer{
		ID:        row.Get(0),
		Name:      row.Get(1),
		Mobile:    row.Get(2),
		HomePhone: row.Get(3),
		Address:   row.Get(4),
		Balance:   balance,
		Notes:     row.Get(6),
	}, nil
}

func orderFromRow(row tabular.Row) (model.Order, error) {
	total, err := parseDecimal(row.Get(2))
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s total: %w", row.Get(0), err)
	}
	paid, err := parseDecimal(row.Get(3))
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s paid: %w", row.Get(0), err)
	}
	createdAt, err := parseTime(row.Get(6))
	if err != nil {
		return model.Order{}, fmt.Errorf("order %s date: %w", row.Get(0), err)
	}

	status := model.PaymentStatus(row.Get(4))
	if strings.EqualFold(row.Get(5), "TRUE") {
		status = model.PaymentStatusVoid
	}

	return model.Order{
		ID:            row.Get(0),
		CustomerID:    row.Get(1),
		TotalAmount:   total,
		PaidAmount:    paid,
		PaymentStatus: status,
		CreatedAt:     createdAt,
		CreatedBy:     row.Get(7),
	}, nil
}

func itemFromRow(row tabular.Row) (model.OrderItem, error) {
	price, err := parseDecimal(row.Get(3))
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("item %s price: %w", row.Get(0), err)
	}
	return model.OrderItem{
		TagID:    row.Get(0),
		OrderID:  row.Get(1),
		ItemType: row.Get(2),
		Price:    price,
		Color:    row.Get(4),
		Pattern:  row.Get(5),
		Note:     row.Get(6),
		Status:   model.ItemStatus(row.Get(7)),
	}, nil
}

func historyFromRow(row tabular.Row) (model.BalanceHistory, error) {
	change, err := parseDecimal(row.Get(1))
	if err != nil {
		return model.BalanceHistory{}, err
	}
	newBalance, err := parseDecimal(row.Get(2))
	if err != nil {
		return model.BalanceHistory{}, err
	}
	date, err := parseTime(row.Get(5))
	if err != nil {
		return model.BalanceHistory{}, err
	}
	return model.BalanceHistory{
		CustomerID:   row.Get(0),
		ChangeAmount: change,
		NewBalance:   newBalance,
		Type:         row.Get(3),
		OperatorID:   row.Get(4),
		Date:         date,
	}, nil
}

func ledgerFromRow(row tabular.Row) (model.LedgerEntry, error) {
	date, err := parseTime(row.Get(0))
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("ledger entry %s date: %w", row.Get(6), err)
	}
	amount, err := parseDecimal(row.Get(3))
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("ledger entry %s amount: %w", row.Get(6), err)
	}
	return model.LedgerEntry{
		ID:            row.Get(6),
		Date:          date,
		DebitAccount:  row.Get(1),
		CreditAccount: row.Get(2),
		Amount:        amount,
		Description:   row.Get(4),
		ReferenceID:   row.Get(5),
	}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(tabularTimeLayout, s)
}

func formatTime(t time.Time) string {
	return t.Format(tabularTimeLayout)
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
