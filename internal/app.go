package internal

import "go.uber.org/zap"

// NewServices wires the core over one repository. All services share the clock, and
// the pickup gate shares the order engine's locks.
func NewServices(repo IRepository, clock *Clock, strictBalance bool, logger *zap.SugaredLogger) Services {
	ledger := NewLedger(repo, clock, logger)
	balance := NewBalanceService(repo, ledger, clock, logger)
	orders := NewOrderEngine(repo, balance, ledger, NewOrderIDSource(repo, clock), clock, logger, WithStrictBalance(strictBalance))

	return Services{
		Customers: NewCustomerService(repo, logger),
		Balance:   balance,
		Orders:    orders,
		Pickup:    NewPickupGate(repo, orders, logger),
		Closing:   NewClosingAggregator(repo, ledger, clock, logger),
	}
}
