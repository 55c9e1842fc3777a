package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

type ICustomerService interface {
	Create(ctx context.Context, in model.CustomerInput) (model.Customer, error)
	Get(ctx context.Context, customerID string) (model.Customer, error)
	Search(ctx context.Context, query string) ([]model.Customer, error)
}

type CustomerService struct {
	repo   IRepository
	logger *zap.SugaredLogger
}

func NewCustomerService(repo IRepository, logger *zap.SugaredLogger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

// Create registers a customer with a zero balance. Balances only move through top-ups
// and orders afterwards.
func (s *CustomerService) Create(ctx context.Context, in model.CustomerInput) (model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Customer{}, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = "C-" + strings.ToUpper(uuid.NewString()[:8])
	}

	c := model.Customer{
		ID:        id,
		Name:      name,
		Mobile:    strings.TrimSpace(in.Mobile),
		HomePhone: strings.TrimSpace(in.HomePhone),
		Address:   strings.TrimSpace(in.Address),
		Balance:   decimal.Zero,
		Notes:     in.Notes,
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return model.Customer{}, customerError("create customer", id, ErrAlreadyExists)
		}
		return model.Customer{}, err
	}

	s.logger.Infow("customer created", "customer", c.ID)
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, customerID string) (model.Customer, error) {
	c, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Customer{}, customerError("get customer", customerID, ErrNotFound)
		}
		return model.Customer{}, err
	}
	return c, nil
}

// Search matches the query as a substring of the name or a phone number, or as the
// whole customer id regardless of case.
func (s *CustomerService) Search(ctx context.Context, query string) ([]model.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidInput)
	}
	return s.repo.SearchCustomers(ctx, query)
}
