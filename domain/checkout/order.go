package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/pkg/pagination"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidOrder = errors.New("invalid order")
)

type Store interface {
	Create(ctx context.Context, o *Order) error
	// Place stores a new order together with the reward points of its
	// customer. Either both are written or neither is.
	Place(ctx context.Context, o *Order, c *customer.Customer) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Order, error)
}

// LineRequest asks for quantity units of a product.
type LineRequest struct {
	ProductID string
	Quantity  int
}

type Service interface {
	PlaceOrder(ctx context.Context, customerID string, lines []LineRequest) (*Order, error)
	ChangeItems(ctx context.Context, id string, lines []LineRequest) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Order, error)
}

type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
} // @name checkout.OrderItem

func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{ID: id, ProductID: productID, Name: name, Price: price, Quantity: quantity}

	return item, item.Validate()
}

func (i OrderItem) Validate() error {
	switch {
	case i.ID == "":
		return fmt.Errorf("%w: item id is required", ErrInvalidOrder)
	case i.ProductID == "":
		return fmt.Errorf("%w: item product id is required", ErrInvalidOrder)
	case i.Quantity <= 0:
		return fmt.Errorf("%w: item quantity must be greater than zero", ErrInvalidOrder)
	case i.Price < 0:
		return fmt.Errorf("%w: item price must be greater or equal to zero", ErrInvalidOrder)
	}

	return nil
}

func (i OrderItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
} // @name checkout.Order

func New(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{ID: id, CustomerID: customerID, Items: items}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	switch {
	case o.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidOrder)
	case o.CustomerID == "":
		return fmt.Errorf("%w: customer id is required", ErrInvalidOrder)
	case len(o.Items) == 0:
		return fmt.Errorf("%w: items are required", ErrInvalidOrder)
	}

	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (o *Order) ChangeItems(items []OrderItem) error {
	previous := o.Items
	o.Items = items
	if err := o.Validate(); err != nil {
		o.Items = previous
		return err
	}

	return nil
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Total()
	}

	return total
}
