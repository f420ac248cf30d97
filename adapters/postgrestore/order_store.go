package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/jmoiron/sqlx"
)

type OrderStore struct {
	db *sqlx.DB
}

func NewOrderStore(db *sqlx.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create stores the order and its items in one transaction.
func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		return createOrder(ctx, tx, o)
	})
}

// Place stores the order and the customer's reward points in one
// transaction.
func (s *OrderStore) Place(ctx context.Context, o *checkout.Order, c *customer.Customer) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := createOrder(ctx, tx, o); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE customers SET reward_points = ? WHERE id = ?`), c.RewardPoints, c.ID)
		if err != nil {
			return fmt.Errorf("cannot credit reward points to customer '%s': %w", c.ID, err)
		}

		return expectAffected(res, customer.ErrNotFound)
	})
}

// Update replaces the items of the order and refreshes its total.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx,
			`UPDATE orders SET customer_id = :customer_id, total = :total WHERE id = :id`,
			OrderSchema{ID: o.ID, CustomerID: o.CustomerID, Total: o.Total()})
		if err != nil {
			return fmt.Errorf("cannot update order '%s': %w", o.ID, err)
		}

		if err := expectAffected(res, checkout.ErrNotFound); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM order_items WHERE order_id = ?`), o.ID); err != nil {
			return fmt.Errorf("cannot clear items of order '%s': %w", o.ID, err)
		}

		return insertItems(ctx, tx, o)
	})
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*checkout.Order, error) {
	var result OrderSchema
	err := s.db.GetContext(ctx, &result,
		s.db.Rebind(`SELECT id, customer_id, total FROM orders WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("cannot get order '%s': %w", id, err)
	}

	items, err := s.items(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	return result.ToDomainOrder(items[id]), nil
}

func (s *OrderStore) List(ctx context.Context, pager *pagination.Pager) ([]checkout.Order, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM orders`); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	pager.SetTotal(total)

	var results []OrderSchema
	offset, limit := pager.Do()
	err := s.db.SelectContext(ctx, &results,
		s.db.Rebind(`SELECT id, customer_id, total FROM orders ORDER BY id LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	if len(results) == 0 {
		return []checkout.Order{}, nil
	}

	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}

	items, err := s.items(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]checkout.Order, 0, len(results))
	for i := range results {
		orders = append(orders, *results[i].ToDomainOrder(items[results[i].ID]))
	}

	return orders, nil
}

func (s *OrderStore) items(ctx context.Context, orderIDs []string) (map[string][]OrderItemSchema, error) {
	query, args, err := sqlx.In(`SELECT id, order_id, product_id, name, price, quantity, line
		FROM order_items WHERE order_id IN (?) ORDER BY order_id, line`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	var rows []OrderItemSchema
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("cannot get order items: %w", err)
	}

	byOrder := make(map[string][]OrderItemSchema, len(orderIDs))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row)
	}

	return byOrder, nil
}

func (s *OrderStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func createOrder(ctx context.Context, tx *sqlx.Tx, o *checkout.Order) error {
	_, err := tx.NamedExecContext(ctx,
		`INSERT INTO orders (id, customer_id, total) VALUES (:id, :customer_id, :total)`,
		OrderSchema{ID: o.ID, CustomerID: o.CustomerID, Total: o.Total()})
	if err != nil {
		return fmt.Errorf("cannot create order '%s': %w", o.ID, err)
	}

	return insertItems(ctx, tx, o)
}

func insertItems(ctx context.Context, tx *sqlx.Tx, o *checkout.Order) error {
	for i, item := range o.Items {
		_, err := tx.NamedExecContext(ctx, `INSERT INTO order_items
			(id, order_id, product_id, name, price, quantity, line)
			VALUES (:id, :order_id, :product_id, :name, :price, :quantity, :line)`,
			OrderItemSchema{
				ID:        item.ID,
				OrderID:   o.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Line:      i,
			})
		if err != nil {
			return fmt.Errorf("cannot store item '%s' of order '%s': %w", item.ID, o.ID, err)
		}
	}

	return nil
}
