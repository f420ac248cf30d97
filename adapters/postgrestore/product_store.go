package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/jmoiron/sqlx"
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO products (id, name, price) VALUES (:id, :name, :price)`,
		ProductSchema{ID: p.ID, Name: p.Name, Price: p.Price})
	if err != nil {
		return fmt.Errorf("cannot create product '%s': %w", p.ID, err)
	}

	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	res, err := s.db.NamedExecContext(ctx,
		`UPDATE products SET name = :name, price = :price WHERE id = :id`,
		ProductSchema{ID: p.ID, Name: p.Name, Price: p.Price})
	if err != nil {
		return fmt.Errorf("cannot update product '%s': %w", p.ID, err)
	}

	return expectAffected(res, product.ErrNotFound)
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var result ProductSchema
	err := s.db.GetContext(ctx, &result,
		s.db.Rebind(`SELECT id, name, price FROM products WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("cannot get product '%s': %w", id, err)
	}

	return result.ToDomainProduct(), nil
}

func (s *ProductStore) List(ctx context.Context, pager *pagination.Pager) ([]product.Product, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM products`); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	var results []ProductSchema
	offset, limit := pager.Do()
	err := s.db.SelectContext(ctx, &results,
		s.db.Rebind(`SELECT id, name, price FROM products ORDER BY id LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	products := make([]product.Product, 0, len(results))
	for i := range results {
		products = append(products, *results[i].ToDomainProduct())
	}

	return products, nil
}
