package checkout

import (
	"errors"

	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/google/uuid"
)

// Total sums the totals of orders.
func Total(orders []Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}

	return total
}

// PlaceOrder creates an order for c and credits half of its total as
// reward points.
func PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if c == nil {
		return nil, errors.New("customer is required")
	}

	o, err := New(uuid.NewString(), c.ID, items)
	if err != nil {
		return nil, err
	}

	c.AddRewardPoints(int(o.Total() / 2))

	return o, nil
}
