package repository

import (
	"context"
	"sync"

	apperrors "github.com/umalmyha/customer-registry/internal/errors"
	"github.com/umalmyha/customer-registry/internal/model"
)

// CustomerRepository represents customer registry behavior
type CustomerRepository interface {
	FindByName(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]model.Customer, error)
	Create(context.Context, model.Customer) error
	DeleteByName(context.Context, string) error
}

// memoryCustomerRepository keeps customers in insertion order.
// Customers are stored and returned by value, so callers never share memory with the registry.
type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []model.Customer
}

// NewMemoryCustomerRepository builds empty in-memory customer registry
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{customers: make([]model.Customer, 0)}
}

func (r *memoryCustomerRepository) FindByName(_ context.Context, name string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(name)
	if idx < 0 {
		return nil, nil
	}

	c := r.customers[idx]
	return &c, nil
}

func (r *memoryCustomerRepository) FindAll(context.Context) ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.Customer, len(r.customers))
	copy(snapshot, r.customers)
	return snapshot, nil
}

func (r *memoryCustomerRepository) Create(_ context.Context, c model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(c.Name) >= 0 {
		return apperrors.NewCustomerExistsErr(c.Name)
	}

	r.customers = append(r.customers, c)
	return nil
}

func (r *memoryCustomerRepository) DeleteByName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(name)
	if idx < 0 {
		return apperrors.NewCustomerNotFoundErr(name)
	}

	r.customers = append(r.customers[:idx], r.customers[idx+1:]...)
	return nil
}

// indexOf must be called with lock held
func (r *memoryCustomerRepository) indexOf(name string) int {
	for i := range r.customers {
		if r.customers[i].Name == name {
			return i
		}
	}
	return -1
}
