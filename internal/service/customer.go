package service

import (
	"context"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customer-registry/internal/errors"
	"github.com/umalmyha/customer-registry/internal/model"
	"github.com/umalmyha/customer-registry/internal/repository"
)

// CustomerService represents customer service behavior
type CustomerService interface {
	FindAll(context.Context) ([]model.Customer, error)
	FindByName(context.Context, string) (*model.Customer, error)
	Create(context.Context, model.Customer) error
	DeleteByName(context.Context, string) error
}

type customerService struct {
	customerRps repository.CustomerRepository
}

// NewCustomerService builds new customerService
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{customerRps: customerRps}
}

func (s *customerService) FindAll(ctx context.Context) ([]model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

// FindByName returns EntryNotFoundErr if customer with provided name is absent
func (s *customerService) FindByName(ctx context.Context, name string) (*model.Customer, error) {
	c, err := s.customerRps.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewCustomerNotFoundErr(name)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, c model.Customer) error {
	if err := s.customerRps.Create(ctx, c); err != nil {
		return err
	}

	logrus.WithField("customer", c.Name).Debug("customer has been created")
	return nil
}

func (s *customerService) DeleteByName(ctx context.Context, name string) error {
	if err := s.customerRps.DeleteByName(ctx, name); err != nil {
		return err
	}

	logrus.WithField("customer", name).Debug("customer has been deleted")
	return nil
}
