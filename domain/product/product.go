package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/ddd-commerce/backend/pkg/pagination"
)

var (
	ErrNotFound       = errors.New("product not found")
	ErrInvalidProduct = errors.New("invalid product")
)

type Store interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Product, error)
}

type Service interface {
	Create(ctx context.Context, name string, price float64) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Product, error)
	IncreasePrices(ctx context.Context, ids []string, percentage float64) ([]Product, error)
}

type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
} // @name product.Product

func New(id, name string, price float64) (*Product, error) {
	p := &Product{ID: id, Name: name, Price: price}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("%w: price must be greater or equal to zero", ErrInvalidProduct)
	}

	return nil
}

func (p *Product) ChangeName(name string) error {
	previous := p.Name
	p.Name = name
	if err := p.Validate(); err != nil {
		p.Name = previous
		return err
	}

	return nil
}

func (p *Product) ChangePrice(price float64) error {
	previous := p.Price
	p.Price = price
	if err := p.Validate(); err != nil {
		p.Price = previous
		return err
	}

	return nil
}

// IncreasePrices raises the price of every product by percentage percent.
func IncreasePrices(products []*Product, percentage float64) error {
	for _, p := range products {
		if err := p.ChangePrice(p.Price*percentage/100 + p.Price); err != nil {
			return err
		}
	}

	return nil
}
