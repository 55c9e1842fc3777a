package internal

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

type IOrderEngine interface {
	Checkout(ctx context.Context, in model.CheckoutInput, operator model.Operator) (model.CheckoutResult, error)
	Settle(ctx context.Context, orderID string, operator model.Operator) (model.Order, error)
	Void(ctx context.Context, orderID string, operator model.Operator) (model.Order, error)
	MarkReady(ctx context.Context, tagIDs []string, operator model.Operator) (model.BatchResult, error)
	GetOrder(ctx context.Context, orderID string) (model.Order, []model.OrderItem, error)
	InProcessItems(ctx context.Context) ([]model.OrderItem, error)
}

// OrderEngine owns the order lifecycle. Mutations of an existing order hold that
// order's lock; a balance mutation nested inside takes the customer lock after it.
type OrderEngine struct {
	repo    IRepository
	balance IBalanceService
	ledger  ILedger
	ids     IOrderIDSource
	clock   *Clock
	locks   *keyedMutex
	strict  bool
	logger  *zap.SugaredLogger
}

type OrderEngineOption func(*OrderEngine)

// WithStrictBalance makes every DeductBalance checkout require a balance that covers
// the whole total.
func WithStrictBalance(strict bool) OrderEngineOption {
	return func(e *OrderEngine) {
		e.strict = strict
	}
}

func NewOrderEngine(repo IRepository, balance IBalanceService, ledger ILedger, ids IOrderIDSource, clock *Clock, logger *zap.SugaredLogger, opts ...OrderEngineOption) *OrderEngine {
	e := &OrderEngine{
		repo:    repo,
		balance: balance,
		ledger:  ledger,
		ids:     ids,
		clock:   clock,
		locks:   newKeyedMutex(),
		logger:  logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *OrderEngine) Checkout(ctx context.Context, in model.CheckoutInput, operator model.Operator) (model.CheckoutResult, error) {
	if len(in.Lines) == 0 {
		return model.CheckoutResult{}, customerError("checkout", in.CustomerID, ErrEmptyCart)
	}
	for i, l := range in.Lines {
		if err := l.Validate(); err != nil {
			return model.CheckoutResult{}, customerError("checkout", in.CustomerID, fmt.Errorf("%w: line %d: %s", ErrInvalidCartLine, i+1, err))
		}
	}
	switch in.Method {
	case model.PaymentMethodCash, model.PaymentMethodUnpaid, model.PaymentMethodDeductBalance:
	default:
		return model.CheckoutResult{}, customerError("checkout", in.CustomerID, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, in.Method))
	}

	total := model.CartTotal(in.Lines)
	orderID, err := e.ids.Next(ctx)
	if err != nil {
		return model.CheckoutResult{}, err
	}
	items := ExpandCart(in.Lines, orderID)
	if err = checkUniqueTags(items); err != nil {
		return model.CheckoutResult{}, err
	}

	now := e.clock.Now()
	order := model.Order{
		ID:          orderID,
		CustomerID:  in.CustomerID,
		TotalAmount: total,
		PaidAmount:  decimal.Zero,
		CreatedBy:   operator.ID,
		CreatedAt:   now,
	}
	receipt := model.CustomerCopy{
		OrderID:    orderID,
		CustomerID: in.CustomerID,
		Method:     in.Method,
		Total:      total,
		Deduction:  decimal.Zero,
		IssuedAt:   now,
	}
	strict := e.strict || in.RequireFullBalance

	err = e.balance.WithCustomer(ctx, in.CustomerID, func(ctx context.Context, tx ITx, c model.Customer) error {
		receipt.CustomerName = c.Name
		receipt.OldBalance = c.Balance
		receipt.NewBalance = c.Balance

		deduction := decimal.Zero
		switch in.Method {
		case model.PaymentMethodCash:
			order.PaidAmount = total
		case model.PaymentMethodDeductBalance:
			if strict && c.Balance.LessThan(total) {
				return customerError("checkout", c.ID, ErrInsufficientBalance)
			}
			deduction = decimal.Min(c.Balance, total)
			order.PaidAmount = deduction
		}
		order.PaymentStatus = paymentStatus(order.PaidAmount, total)

		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := tx.AddOrderItems(ctx, items); err != nil {
			return err
		}

		if deduction.IsPositive() {
			nb, err := e.balance.Apply(ctx, tx, c, model.BalanceChange{
				CustomerID: c.ID,
				Amount:     deduction.Neg(),
				OperatorID: operator.ID,
				Type:       model.BalanceChangeOrderPayment,
			})
			if err != nil {
				return err
			}
			receipt.Deduction = deduction
			receipt.NewBalance = nb
		}
		return e.postCheckout(ctx, tx, order, in.Method)
	})
	if err != nil {
		e.logger.Errorf("checkout for customer %s failed: %s", in.CustomerID, err.Error())
		return model.CheckoutResult{}, err
	}

	receipt.Paid = order.PaidAmount
	receipt.Outstanding = order.Outstanding()
	e.logger.Infow("order created", "order", order.ID, "customer", order.CustomerID, "total", total.String(), "status", order.PaymentStatus, "pieces", len(items), "operator", operator.ID)

	return model.CheckoutResult{
		Order: order,
		Items: items,
		Receipt: model.Receipt{
			Customer: receipt,
			Store:    model.StoreCopy{OrderID: order.ID, Items: items},
		},
	}, nil
}

// postCheckout books the revenue of a new order. An Unpaid order books nothing until
// it is settled.
func (e *OrderEngine) postCheckout(ctx context.Context, tx ITx, o model.Order, method model.PaymentMethod) error {
	post := func(debit string, amount decimal.Decimal, desc string) error {
		if !amount.IsPositive() {
			return nil
		}
		_, err := e.ledger.Post(ctx, tx, debit, model.AccountLaundryRevenue, amount, desc, o.ID)
		return err
	}

	switch method {
	case model.PaymentMethodCash:
		return post(model.AccountCash, o.TotalAmount, model.DescriptionCashSale)
	case model.PaymentMethodDeductBalance:
		if err := post(model.AccountUnearnedRevenue, o.PaidAmount, model.DescriptionBalancePayment); err != nil {
			return err
		}
		if o.PaymentStatus == model.PaymentStatusPartiallyPaid {
			return post(model.AccountAccountsReceivable, o.Outstanding(), model.DescriptionReceivable)
		}
	}
	return nil
}

func paymentStatus(paid, total decimal.Decimal) model.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return model.PaymentStatusPaid
	case paid.IsPositive():
		return model.PaymentStatusPartiallyPaid
	default:
		return model.PaymentStatusUnpaid
	}
}

// Settle collects the outstanding amount of an order in cash.
func (e *OrderEngine) Settle(ctx context.Context, orderID string, operator model.Operator) (model.Order, error) {
	unlock := e.locks.Lock(orderID)
	defer unlock()

	return e.settleLocked(ctx, orderID, operator)
}

// settleLocked expects the caller to hold the order lock.
func (e *OrderEngine) settleLocked(ctx context.Context, orderID string, operator model.Operator) (model.Order, error) {
	var settled model.Order
	err := e.repo.RunInTx(ctx, func(ctx context.Context, tx ITx) error {
		o, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return orderError("settle", orderID, ErrNotFound)
			}
			return err
		}
		if o.IsVoid() {
			return orderError("settle", orderID, ErrOrderVoided)
		}
		due := o.Outstanding()
		if !due.IsPositive() {
			return orderError("settle", orderID, ErrNothingToSettle)
		}

		// a partially paid order already booked its revenue against the receivable
		credit := model.AccountLaundryRevenue
		if o.PaymentStatus == model.PaymentStatusPartiallyPaid {
			credit = model.AccountAccountsReceivable
		}
		if _, err = e.ledger.Post(ctx, tx, model.AccountCash, credit, due, model.DescriptionSettlement, o.ID); err != nil {
			return err
		}
		if err = tx.UpdateOrderPayment(ctx, o.ID, o.TotalAmount, model.PaymentStatusPaid); err != nil {
			return err
		}

		o.PaidAmount = o.TotalAmount
		o.PaymentStatus = model.PaymentStatusPaid
		settled = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	e.logger.Infow("order settled", "order", settled.ID, "amount", settled.TotalAmount.String(), "operator", operator.ID)
	return settled, nil
}

// Void cancels an order. Every posting made under the order is reversed and the part
// paid from the customer's balance is returned to it.
func (e *OrderEngine) Void(ctx context.Context, orderID string, operator model.Operator) (model.Order, error) {
	if !operator.IsAdmin() {
		return model.Order{}, orderError("void", orderID, ErrForbidden)
	}

	unlock := e.locks.Lock(orderID)
	defer unlock()

	o, err := e.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Order{}, orderError("void", orderID, ErrNotFound)
		}
		return model.Order{}, err
	}
	if o.IsVoid() {
		return model.Order{}, orderError("void", orderID, ErrOrderVoided)
	}

	entries, err := e.ledger.EntriesForReference(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}
	refund := decimal.Zero
	for _, entry := range entries {
		if entry.DebitAccount == model.AccountUnearnedRevenue {
			refund = refund.Add(entry.Amount)
		}
	}

	reverse := func(ctx context.Context, tx ITx) error {
		for _, entry := range entries {
			if _, err := e.ledger.Post(ctx, tx, entry.CreditAccount, entry.DebitAccount, entry.Amount, model.DescriptionVoidReversal, orderID); err != nil {
				return err
			}
		}
		return tx.UpdateOrderPayment(ctx, orderID, o.PaidAmount, model.PaymentStatusVoid)
	}

	if refund.IsPositive() {
		_, err = e.balance.ApplyBalanceChange(ctx, model.BalanceChange{
			CustomerID: o.CustomerID,
			Amount:     refund,
			OperatorID: operator.ID,
			Type:       model.BalanceChangeVoidRefund,
		}, func(ctx context.Context, tx ITx, _ decimal.Decimal) error {
			return reverse(ctx, tx)
		})
	} else {
		err = e.repo.RunInTx(ctx, reverse)
	}
	if err != nil {
		e.logger.Errorf("void of order %s failed: %s", orderID, err.Error())
		return model.Order{}, err
	}

	o.PaymentStatus = model.PaymentStatusVoid
	e.logger.Infow("order voided", "order", orderID, "reversals", len(entries), "refund", refund.String(), "operator", operator.ID)
	return o, nil
}

// MarkReady moves items from In to Cleaned. Items already Cleaned are left as they are;
// items of a voided order are refused with ErrOrderVoided.
func (e *OrderEngine) MarkReady(ctx context.Context, tagIDs []string, operator model.Operator) (model.BatchResult, error) {
	tagIDs = uniqueStrings(tagIDs)
	byOrder, results, err := e.groupTags(ctx, tagIDs)
	if err != nil {
		return model.BatchResult{}, err
	}

	for _, orderID := range sortedKeys(byOrder) {
		unlock := e.locks.Lock(orderID)
		err = e.repo.RunInTx(ctx, func(ctx context.Context, tx ITx) error {
			o, err := tx.GetOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if o.IsVoid() {
				for _, tag := range byOrder[orderID] {
					r := results[tag]
					r.Err = tagError("mark ready", orderID, tag, ErrOrderVoided)
					results[tag] = r
				}
				return nil
			}
			items, err := tx.GetOrderItems(ctx, orderID)
			if err != nil {
				return err
			}
			current := indexItems(items)
			for _, tag := range byOrder[orderID] {
				r := results[tag]
				it := current[tag]
				r.Status = it.Status
				switch it.Status {
				case model.ItemStatusIn:
					if err = tx.UpdateItemStatus(ctx, tag, model.ItemStatusCleaned); err != nil {
						return err
					}
					r.Status = model.ItemStatusCleaned
					r.Changed = true
				case model.ItemStatusCleaned:
				default:
					r.Err = tagError("mark ready", orderID, tag, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, it.Status, model.ItemStatusCleaned))
				}
				results[tag] = r
			}
			return nil
		})
		unlock()
		if err != nil {
			return model.BatchResult{}, err
		}
	}

	res := collectResults(tagIDs, results)
	e.logger.Infow("items marked ready", "requested", len(tagIDs), "ok", res.Succeeded(), "operator", operator.ID)
	return res, nil
}

// groupTags looks the tags up and groups the known ones by order. Unknown tags get a
// failed result straight away.
func (e *OrderEngine) groupTags(ctx context.Context, tagIDs []string) (map[string][]string, map[string]model.ItemResult, error) {
	items, err := e.repo.GetItems(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	found := indexItems(items)

	byOrder := make(map[string][]string)
	results := make(map[string]model.ItemResult, len(tagIDs))
	for _, tag := range tagIDs {
		it, ok := found[tag]
		if !ok {
			results[tag] = model.ItemResult{TagID: tag, Err: tagError("lookup", "", tag, ErrNotFound)}
			continue
		}
		byOrder[it.OrderID] = append(byOrder[it.OrderID], tag)
		results[tag] = model.ItemResult{TagID: tag, OrderID: it.OrderID, Status: it.Status}
	}
	return byOrder, results, nil
}

func (e *OrderEngine) GetOrder(ctx context.Context, orderID string) (model.Order, []model.OrderItem, error) {
	o, err := e.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Order{}, nil, orderError("get order", orderID, ErrNotFound)
		}
		return model.Order{}, nil, err
	}
	items, err := e.repo.GetOrderItems(ctx, orderID)
	if err != nil {
		return model.Order{}, nil, err
	}
	return o, items, nil
}

// InProcessItems lists every item still in the shop.
func (e *OrderEngine) InProcessItems(ctx context.Context) ([]model.OrderItem, error) {
	return e.repo.GetItemsNotPickedUp(ctx)
}

func indexItems(items []model.OrderItem) map[string]model.OrderItem {
	m := make(map[string]model.OrderItem, len(items))
	for _, it := range items {
		m[it.TagID] = it
	}
	return m
}

func collectResults(tagIDs []string, results map[string]model.ItemResult) model.BatchResult {
	res := model.BatchResult{Items: make([]model.ItemResult, 0, len(tagIDs))}
	for _, tag := range tagIDs {
		r := results[tag]
		if r.Err != nil {
			r.Message = r.Err.Error()
		}
		res.Items = append(res.Items, r)
	}
	return res
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
