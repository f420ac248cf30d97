package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/jmoiron/sqlx"
)

type CustomerStore struct {
	db *sqlx.DB
}

func NewCustomerStore(db *sqlx.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO customers
		(id, name, street, street_number, zipcode, city, active, reward_points)
		VALUES (:id, :name, :street, :street_number, :zipcode, :city, :active, :reward_points)`,
		NewCustomerSchema(c))
	if err != nil {
		return fmt.Errorf("cannot create customer '%s': %w", c.ID, err)
	}

	return nil
}

func (s *CustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	res, err := s.db.NamedExecContext(ctx, `UPDATE customers SET
		name = :name, street = :street, street_number = :street_number, zipcode = :zipcode,
		city = :city, active = :active, reward_points = :reward_points
		WHERE id = :id`,
		NewCustomerSchema(c))
	if err != nil {
		return fmt.Errorf("cannot update customer '%s': %w", c.ID, err)
	}

	return expectAffected(res, customer.ErrNotFound)
}

func (s *CustomerStore) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	var result CustomerSchema
	err := s.db.GetContext(ctx, &result, s.db.Rebind(`SELECT
		id, name, street, street_number, zipcode, city, active, reward_points
		FROM customers WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("cannot get customer '%s': %w", id, err)
	}

	return result.ToDomainCustomer(), nil
}

func (s *CustomerStore) List(ctx context.Context, pager *pagination.Pager) ([]customer.Customer, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM customers`); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	var results []CustomerSchema
	offset, limit := pager.Do()
	err := s.db.SelectContext(ctx, &results, s.db.Rebind(`SELECT
		id, name, street, street_number, zipcode, city, active, reward_points
		FROM customers ORDER BY id LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	customers := make([]customer.Customer, 0, len(results))
	for i := range results {
		customers = append(customers, *results[i].ToDomainCustomer())
	}

	return customers, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
