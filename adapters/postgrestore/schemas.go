package postgrestore

import (
	"database/sql"

	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/domain/product"
)

type CustomerSchema struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Street       sql.NullString `db:"street"`
	Number       sql.NullInt64  `db:"street_number"`
	Zipcode      sql.NullString `db:"zipcode"`
	City         sql.NullString `db:"city"`
	Active       bool           `db:"active"`
	RewardPoints int            `db:"reward_points"`
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID,
		Name:         c.Name,
		Active:       c.Active,
		RewardPoints: c.RewardPoints,
	}

	if c.Address != nil {
		s.Street = sql.NullString{String: c.Address.Street, Valid: true}
		s.Number = sql.NullInt64{Int64: int64(c.Address.Number), Valid: true}
		s.Zipcode = sql.NullString{String: c.Address.Zip, Valid: true}
		s.City = sql.NullString{String: c.Address.City, Valid: true}
	}

	return s
}

func (s *CustomerSchema) ToDomainCustomer() *customer.Customer {
	if s == nil {
		return nil
	}

	c := &customer.Customer{
		ID:           s.ID,
		Name:         s.Name,
		Active:       s.Active,
		RewardPoints: s.RewardPoints,
	}

	if s.Street.Valid {
		c.Address = &customer.Address{
			Street: s.Street.String,
			Number: int(s.Number.Int64),
			Zip:    s.Zipcode.String,
			City:   s.City.String,
		}
	}

	return c
}

type ProductSchema struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}

func (s *ProductSchema) ToDomainProduct() *product.Product {
	if s == nil {
		return nil
	}

	return &product.Product{
		ID:    s.ID,
		Name:  s.Name,
		Price: s.Price,
	}
}

type OrderSchema struct {
	ID         string  `db:"id"`
	CustomerID string  `db:"customer_id"`
	Total      float64 `db:"total"`
}

type OrderItemSchema struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
	Line      int     `db:"line"`
}

func (s *OrderItemSchema) ToDomainOrderItem() checkout.OrderItem {
	return checkout.OrderItem{
		ID:        s.ID,
		ProductID: s.ProductID,
		Name:      s.Name,
		Price:     s.Price,
		Quantity:  s.Quantity,
	}
}

func (s *OrderSchema) ToDomainOrder(items []OrderItemSchema) *checkout.Order {
	o := &checkout.Order{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      make([]checkout.OrderItem, 0, len(items)),
	}

	for i := range items {
		o.Items = append(o.Items, items[i].ToDomainOrderItem())
	}

	return o
}
