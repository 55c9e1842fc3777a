package internal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

type ILedger interface {
	Post(ctx context.Context, tx ITx, debit, credit string, amount decimal.Decimal, description, ref string) (string, error)
	EntriesForReference(ctx context.Context, ref string) ([]model.LedgerEntry, error)
	EntriesInRange(ctx context.Context, start, end time.Time) ([]model.LedgerEntry, error)
}

// Ledger is the append-only journal of double-entry postings. Entries are only ever
// added; a correction is a new offsetting entry.
type Ledger struct {
	repo   IRepository
	clock  *Clock
	logger *zap.SugaredLogger
}

func NewLedger(repo IRepository, clock *Clock, logger *zap.SugaredLogger) *Ledger {
	return &Ledger{repo: repo, clock: clock, logger: logger}
}

// Post appends one entry as part of tx and returns its id.
func (l *Ledger) Post(ctx context.Context, tx ITx, debit, credit string, amount decimal.Decimal, description, ref string) (string, error) {
	if !amount.IsPositive() {
		return "", &OpError{Op: "ledger post " + ref, Err: ErrInvalidAmount}
	}
	if debit == "" || credit == "" || debit == credit {
		return "", &OpError{Op: "ledger post " + ref, Err: ErrInvalidAccount}
	}

	e := model.LedgerEntry{
		ID:            uuid.NewString(),
		Date:          l.clock.Now(),
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        amount,
		Description:   description,
		ReferenceID:   ref,
	}
	if err := tx.AddLedgerEntry(ctx, e); err != nil {
		return "", err
	}

	l.logger.Infow("ledger posting", "entry", e.ID, "debit", debit, "credit", credit, "amount", amount.String(), "ref", ref)
	return e.ID, nil
}

func (l *Ledger) EntriesForReference(ctx context.Context, ref string) ([]model.LedgerEntry, error) {
	return l.repo.GetLedgerEntriesByReference(ctx, ref)
}

// EntriesInRange returns entries dated on any day from startDate to endDate inclusive.
func (l *Ledger) EntriesInRange(ctx context.Context, startDate, endDate time.Time) ([]model.LedgerEntry, error) {
	start := l.clock.StartOfDay(startDate)
	end := l.clock.StartOfDay(endDate).AddDate(0, 0, 1)
	return l.repo.GetLedgerEntriesBetween(ctx, start, end)
}
