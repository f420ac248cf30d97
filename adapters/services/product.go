package services

import (
	"context"
	"fmt"

	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/google/uuid"
)

type ProductService struct {
	store      product.Store
	dispatcher domain.EventDispatcher
}

func NewProductService(store product.Store, dispatcher domain.EventDispatcher) *ProductService {
	return &ProductService{store: store, dispatcher: dispatcher}
}

func (s *ProductService) Create(ctx context.Context, name string, price float64) (*product.Product, error) {
	p, err := product.New(uuid.NewString(), name, price)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(product.NewCreatedEvent(*p)); err != nil {
		return p, fmt.Errorf("%w: %s: %w", domain.ErrDispatch, product.CreatedEventName, err)
	}

	return p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	return s.store.List(ctx, pager)
}

// IncreasePrices raises the price of the given products. Every product is
// loaded and validated before any is written.
func (s *ProductService) IncreasePrices(ctx context.Context, ids []string, percentage float64) ([]product.Product, error) {
	products := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.store.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	if err := product.IncreasePrices(products, percentage); err != nil {
		return nil, err
	}

	updated := make([]product.Product, 0, len(products))
	for _, p := range products {
		if err := s.store.Update(ctx, p); err != nil {
			return nil, err
		}

		updated = append(updated, *p)
	}

	return updated, nil
}
