package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ddd-commerce/backend/pkg/pagination"
)

var (
	ErrNotFound        = errors.New("customer not found")
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrAddressRequired = errors.New("address is mandatory to activate a customer")
)

type Store interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Customer, error)
}

type Service interface {
	Create(ctx context.Context, name string, address *Address) (*Customer, error)
	ChangeAddress(ctx context.Context, id string, address Address) (*Customer, error)
	Activate(ctx context.Context, id string) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Customer, error)
}

type Address struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
} // @name customer.Address

func NewAddress(street string, number int, zip, city string) (Address, error) {
	a := Address{Street: street, Number: number, Zip: zip, City: city}

	return a, a.Validate()
}

func (a Address) Validate() error {
	switch {
	case a.Street == "":
		return fmt.Errorf("%w: street is required", ErrInvalidAddress)
	case a.Number <= 0:
		return fmt.Errorf("%w: number must be positive", ErrInvalidAddress)
	case a.Zip == "":
		return fmt.Errorf("%w: zip is required", ErrInvalidAddress)
	case a.City == "":
		return fmt.Errorf("%w: city is required", ErrInvalidAddress)
	}

	return nil
}

func (a Address) String() string {
	return fmt.Sprintf("%s %d, %s %s", a.Street, a.Number, a.Zip, a.City)
}

type Customer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      *Address `json:"address,omitempty"`
	Active       bool     `json:"active"`
	RewardPoints int      `json:"reward_points"`
} // @name customer.Customer

func New(id, name string) (*Customer, error) {
	c := &Customer{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidCustomer)
	}

	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}

	return nil
}

func (c *Customer) ChangeName(name string) error {
	previous := c.Name
	c.Name = name
	if err := c.Validate(); err != nil {
		c.Name = previous
		return err
	}

	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.Address = &address

	return nil
}

func (c *Customer) Activate() error {
	if c.Address == nil {
		return ErrAddressRequired
	}

	c.Active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.Active = false
}

func (c *Customer) AddRewardPoints(points int) {
	c.RewardPoints += points
}
