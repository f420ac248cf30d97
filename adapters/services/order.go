package services

import (
	"context"

	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/google/uuid"
)

type OrderService struct {
	orders    checkout.Store
	customers customer.Store
	products  product.Store
}

func NewOrderService(orders checkout.Store, customers customer.Store, products product.Store) *OrderService {
	return &OrderService{orders: orders, customers: customers, products: products}
}

// PlaceOrder prices the requested lines from the product catalogue, then
// stores the order and credits the customer's reward points atomically.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string, lines []checkout.LineRequest) (*checkout.Order, error) {
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items, err := s.items(ctx, lines)
	if err != nil {
		return nil, err
	}

	o, err := checkout.PlaceOrder(c, items)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Place(ctx, o, c); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *OrderService) ChangeItems(ctx context.Context, id string, lines []checkout.LineRequest) (*checkout.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.items(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := o.ChangeItems(items); err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*checkout.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context, pager *pagination.Pager) ([]checkout.Order, error) {
	return s.orders.List(ctx, pager)
}

func (s *OrderService) items(ctx context.Context, lines []checkout.LineRequest) ([]checkout.OrderItem, error) {
	items := make([]checkout.OrderItem, 0, len(lines))
	for _, line := range lines {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := checkout.NewOrderItem(uuid.NewString(), p.Name, p.Price, p.ID, line.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
