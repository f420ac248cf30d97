package services

import (
	"context"
	"fmt"

	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/pkg/pagination"
)

type CustomerService struct {
	store      customer.Store
	dispatcher domain.EventDispatcher
}

func NewCustomerService(store customer.Store, dispatcher domain.EventDispatcher) *CustomerService {
	return &CustomerService{store: store, dispatcher: dispatcher}
}

// Create stores a new customer and notifies CustomerCreatedEvent. A
// handler failure is returned wrapped in domain.ErrDispatch together with the
// stored customer.
func (s *CustomerService) Create(ctx context.Context, name string, address *customer.Address) (*customer.Customer, error) {
	var (
		c   *customer.Customer
		err error
	)

	if address != nil {
		c, err = customer.CreateWithAddress(name, *address)
	} else {
		c, err = customer.Create(name)
	}
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(customer.NewCreatedEvent(*c)); err != nil {
		return c, fmt.Errorf("%w: %s: %w", domain.ErrDispatch, customer.CreatedEventName, err)
	}

	return c, nil
}

func (s *CustomerService) ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(customer.NewAddressChangedEvent(*c)); err != nil {
		return c, fmt.Errorf("%w: %s: %w", domain.ErrDispatch, customer.AddressChangedEventName, err)
	}

	return c, nil
}

func (s *CustomerService) Activate(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Activate(); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, pager *pagination.Pager) ([]customer.Customer, error) {
	return s.store.List(ctx, pager)
}
