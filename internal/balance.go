package internal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

type IBalanceService interface {
	WithCustomer(ctx context.Context, customerID string, fn func(context.Context, ITx, model.Customer) error) error
	Apply(ctx context.Context, tx ITx, c model.Customer, change model.BalanceChange) (decimal.Decimal, error)
	ApplyBalanceChange(ctx context.Context, change model.BalanceChange, then func(context.Context, ITx, decimal.Decimal) error) (decimal.Decimal, error)
	TopUp(ctx context.Context, customerID string, amount decimal.Decimal, operator model.Operator) (model.TopUpResult, error)
	GetBalance(ctx context.Context, customerID string) (decimal.Decimal, error)
	GetBalanceHistory(ctx context.Context, customerID string) ([]model.BalanceHistory, error)
}

// BalanceService is the only writer of customer balances. Every change is applied
// under the customer's lock, together with its BalanceHistory record, inside one
// transaction that also carries the caller's ledger posting.
type BalanceService struct {
	repo   IRepository
	ledger ILedger
	clock  *Clock
	locks  *keyedMutex
	logger *zap.SugaredLogger
}

func NewBalanceService(repo IRepository, ledger ILedger, clock *Clock, logger *zap.SugaredLogger) *BalanceService {
	return &BalanceService{
		repo:   repo,
		ledger: ledger,
		clock:  clock,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

// WithCustomer holds the customer's balance lock and runs fn in one transaction with
// the customer row read under that lock.
func (s *BalanceService) WithCustomer(ctx context.Context, customerID string, fn func(context.Context, ITx, model.Customer) error) error {
	unlock := s.locks.Lock(customerID)
	defer unlock()

	return s.repo.RunInTx(ctx, func(ctx context.Context, tx ITx) error {
		c, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return customerError("balance", customerID, ErrNotFound)
			}
			return err
		}
		return fn(ctx, tx, c)
	})
}

// Apply mutates the balance of c by change.Amount and records the history row. It must
// run inside WithCustomer for the same customer.
func (s *BalanceService) Apply(ctx context.Context, tx ITx, c model.Customer, change model.BalanceChange) (decimal.Decimal, error) {
	if change.Amount.IsZero() {
		return decimal.Zero, customerError("balance change", c.ID, ErrInvalidAmount)
	}

	newBalance := c.Balance.Add(change.Amount)
	if newBalance.IsNegative() {
		return decimal.Zero, customerError("balance change", c.ID, ErrInsufficientBalance)
	}

	if err := tx.UpdateCustomerBalance(ctx, c.ID, newBalance); err != nil {
		return decimal.Zero, err
	}

	err := tx.AddBalanceHistory(ctx, model.BalanceHistory{
		CustomerID:   c.ID,
		ChangeAmount: change.Amount,
		NewBalance:   newBalance,
		Type:         change.Type,
		OperatorID:   change.OperatorID,
		Date:         s.clock.Now(),
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger.Infow("balance changed", "customer", c.ID, "change", change.Amount.String(), "balance", newBalance.String(), "type", change.Type, "operator", change.OperatorID)
	return newBalance, nil
}

// ApplyBalanceChange applies change atomically; then runs in the same transaction and
// is where the caller posts the matching ledger entry.
func (s *BalanceService) ApplyBalanceChange(ctx context.Context, change model.BalanceChange, then func(context.Context, ITx, decimal.Decimal) error) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := s.WithCustomer(ctx, change.CustomerID, func(ctx context.Context, tx ITx, c model.Customer) error {
		nb, err := s.Apply(ctx, tx, c, change)
		if err != nil {
			return err
		}
		if then != nil {
			if err = then(ctx, tx, nb); err != nil {
				return err
			}
		}
		newBalance = nb
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

func (s *BalanceService) TopUp(ctx context.Context, customerID string, amount decimal.Decimal, operator model.Operator) (model.TopUpResult, error) {
	if !operator.IsAdmin() {
		return model.TopUpResult{}, customerError("top-up", customerID, ErrForbidden)
	}
	if !amount.IsPositive() {
		return model.TopUpResult{}, customerError("top-up", customerID, ErrInvalidAmount)
	}

	res := model.TopUpResult{
		CustomerID:  customerID,
		ReferenceID: model.TopUpReferencePrefix + uuid.NewString(),
	}
	change := model.BalanceChange{
		CustomerID: customerID,
		Amount:     amount,
		OperatorID: operator.ID,
		Type:       model.BalanceChangeTopUp,
	}

	newBalance, err := s.ApplyBalanceChange(ctx, change, func(ctx context.Context, tx ITx, _ decimal.Decimal) error {
		entryID, err := s.ledger.Post(ctx, tx, model.AccountCash, model.AccountUnearnedRevenue, amount, model.DescriptionTopUp, res.ReferenceID)
		res.EntryID = entryID
		return err
	})
	if err != nil {
		s.logger.Errorf("top-up for customer %s failed: %s", customerID, err.Error())
		return model.TopUpResult{}, err
	}

	res.NewBalance = newBalance
	res.OldBalance = newBalance.Sub(amount)
	return res, nil
}

func (s *BalanceService) GetBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	c, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return decimal.Zero, customerError("balance", customerID, ErrNotFound)
		}
		return decimal.Zero, err
	}
	return c.Balance, nil
}

func (s *BalanceService) GetBalanceHistory(ctx context.Context, customerID string) ([]model.BalanceHistory, error) {
	return s.repo.GetBalanceHistory(ctx, customerID)
}
