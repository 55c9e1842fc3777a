package internal

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

type IClosingAggregator interface {
	ClosingReport(ctx context.Context, date time.Time) (model.ClosingReport, error)
}

// ClosingAggregator builds the end-of-day report from the ledger and the orders taken
// that day. It only reads, so the same date always yields the same report.
type ClosingAggregator struct {
	repo   IRepository
	ledger ILedger
	clock  *Clock
	logger *zap.SugaredLogger
}

func NewClosingAggregator(repo IRepository, ledger ILedger, clock *Clock, logger *zap.SugaredLogger) *ClosingAggregator {
	return &ClosingAggregator{repo: repo, ledger: ledger, clock: clock, logger: logger}
}

func (a *ClosingAggregator) ClosingReport(ctx context.Context, date time.Time) (model.ClosingReport, error) {
	start := a.clock.StartOfDay(date)
	report := model.ClosingReport{
		Date:            start.Format("2006-01-02"),
		OrderAmount:     decimal.Zero,
		Revenue:         decimal.Zero,
		VoidReversals:   decimal.Zero,
		CashInflow:      decimal.Zero,
		CashSales:       decimal.Zero,
		TopUps:          decimal.Zero,
		DuesCollected:   decimal.Zero,
		CashRefunds:     decimal.Zero,
		NetRevenue:      decimal.Zero,
		NetCashInDrawer: decimal.Zero,
	}
	voided := make(map[string]bool)

	entries, err := a.ledger.EntriesInRange(ctx, start, start)
	if err != nil {
		return model.ClosingReport{}, err
	}
	for _, e := range entries {
		addEntry(&report, e)
		if e.Description == model.DescriptionVoidReversal {
			voided[e.ReferenceID] = true
		}
	}

	orders, err := a.repo.GetOrdersCreatedBetween(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return model.ClosingReport{}, err
	}
	breakdown := make(map[string]*model.ItemTypeTotal)
	for _, o := range orders {
		if o.IsVoid() {
			voided[o.ID] = true
			continue
		}
		report.OrderCount++
		report.OrderAmount = report.OrderAmount.Add(o.TotalAmount)

		items, err := a.repo.GetOrderItems(ctx, o.ID)
		if err != nil {
			return model.ClosingReport{}, err
		}
		for _, it := range items {
			t, ok := breakdown[it.ItemType]
			if !ok {
				t = &model.ItemTypeTotal{ItemType: it.ItemType, Amount: decimal.Zero}
				breakdown[it.ItemType] = t
			}
			t.Quantity++
			t.Amount = t.Amount.Add(it.Price)
		}
	}

	report.Breakdown = make([]model.ItemTypeTotal, 0, len(breakdown))
	for _, t := range breakdown {
		report.Breakdown = append(report.Breakdown, *t)
	}
	sort.Slice(report.Breakdown, func(i, j int) bool {
		return report.Breakdown[i].ItemType < report.Breakdown[j].ItemType
	})

	report.VoidedOrders = make([]string, 0, len(voided))
	for id := range voided {
		report.VoidedOrders = append(report.VoidedOrders, id)
	}
	sort.Strings(report.VoidedOrders)

	report.NetRevenue = report.Revenue.Sub(report.VoidReversals)
	report.NetCashInDrawer = report.CashSales.Add(report.TopUps).Add(report.DuesCollected).Sub(report.CashRefunds)

	a.logger.Infow("closing report built", "date", a.clock.Day(start), "entries", len(entries), "orders", report.OrderCount, "netCash", report.NetCashInDrawer.String())
	return report, nil
}

// addEntry classifies one posting by its account pair.
func addEntry(r *model.ClosingReport, e model.LedgerEntry) {
	switch {
	case e.CreditAccount == model.AccountLaundryRevenue:
		r.Revenue = r.Revenue.Add(e.Amount)
	case e.DebitAccount == model.AccountLaundryRevenue:
		r.VoidReversals = r.VoidReversals.Add(e.Amount)
	}

	if e.CreditAccount == model.AccountCash {
		r.CashRefunds = r.CashRefunds.Add(e.Amount)
	}
	if e.DebitAccount != model.AccountCash {
		return
	}
	r.CashInflow = r.CashInflow.Add(e.Amount)
	switch e.CreditAccount {
	case model.AccountLaundryRevenue:
		if e.Description == model.DescriptionSettlement {
			r.DuesCollected = r.DuesCollected.Add(e.Amount)
		} else {
			r.CashSales = r.CashSales.Add(e.Amount)
		}
	case model.AccountUnearnedRevenue:
		r.TopUps = r.TopUps.Add(e.Amount)
	case model.AccountAccountsReceivable:
		r.DuesCollected = r.DuesCollected.Add(e.Amount)
	}
}
