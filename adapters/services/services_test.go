package services_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ddd-commerce/backend/adapters/event"
	"github.com/ddd-commerce/backend/adapters/inmemstore"
	"github.com/ddd-commerce/backend/adapters/postgrestore"
	"github.com/ddd-commerce/backend/adapters/services"
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []domain.Event
	err    error
}

func (r *recorder) Handle(e domain.Event) error {
	r.events = append(r.events, e)
	return r.err
}

// failingUpdateStore fails every customer update.
type failingUpdateStore struct {
	customer.Store
	err error
}

func (s *failingUpdateStore) Update(context.Context, *customer.Customer) error {
	return s.err
}

// staleCustomerStore returns a customer that is not in the database.
type staleCustomerStore struct {
	customer.Store
	customer *customer.Customer
}

func (s *staleCustomerStore) GetByID(context.Context, string) (*customer.Customer, error) {
	c := *s.customer
	return &c, nil
}

func newDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

var address = customer.Address{Street: "Street 1", Number: 1, Zip: "Zip 1", City: "City 1"}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()

	t.Run("it should store the customer and notify CustomerCreatedEvent", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		rec := &recorder{}
		ed.Register(customer.CreatedEventName, rec)
		store := postgrestore.NewCustomerStore(newDB(t))

		c, err := services.NewCustomerService(store, ed).Create(ctx, "Customer 1", &address)
		require.NoError(t, err)

		found, err := store.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c, found)

		require.Len(t, rec.events, 1)
		assert.Equal(t, customer.CreatedEventName, rec.events[0].EventName())
		assert.Equal(t, *c, rec.events[0].Payload())
	})

	t.Run("it should not notify when the customer is invalid", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		rec := &recorder{}
		ed.Register(customer.CreatedEventName, rec)

		_, err := services.NewCustomerService(postgrestore.NewCustomerStore(newDB(t)), ed).Create(ctx, "", nil)

		assert.ErrorIs(t, err, customer.ErrInvalidCustomer)
		assert.Empty(t, rec.events)
	})

	t.Run("it should keep the customer when a handler fails", func(t *testing.T) {
		errBoom := errors.New("boom")
		ed := event.NewEventDispatcher()
		ed.Register(customer.CreatedEventName, &recorder{err: errBoom})
		store := postgrestore.NewCustomerStore(newDB(t))

		c, err := services.NewCustomerService(store, ed).Create(ctx, "Customer 1", nil)

		assert.ErrorIs(t, err, domain.ErrDispatch)
		assert.ErrorIs(t, err, errBoom)
		require.NotNil(t, c)

		_, err = store.GetByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("it should change the address and notify CustomerAddressChangedEvent", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		rec := &recorder{}
		ed.Register(customer.AddressChangedEventName, rec)
		store := postgrestore.NewCustomerStore(newDB(t))
		svc := services.NewCustomerService(store, ed)

		c, err := svc.Create(ctx, "Customer 1", nil)
		require.NoError(t, err)

		moved := customer.Address{Street: "Street 2", Number: 2, Zip: "Zip 2", City: "City 2"}
		updated, err := svc.ChangeAddress(ctx, c.ID, moved)
		require.NoError(t, err)
		assert.Equal(t, &moved, updated.Address)

		require.Len(t, rec.events, 1)
		assert.Equal(t, customer.AddressChangedPayload{
			ID:      c.ID,
			Name:    "Customer 1",
			Address: "Street 2 2, Zip 2 City 2",
		}, rec.events[0].Payload())

		found, err := store.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, &moved, found.Address)
	})

	t.Run("it should not notify for an invalid address", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		rec := &recorder{}
		ed.Register(customer.AddressChangedEventName, rec)
		svc := services.NewCustomerService(postgrestore.NewCustomerStore(newDB(t)), ed)

		c, err := svc.Create(ctx, "Customer 1", nil)
		require.NoError(t, err)

		_, err = svc.ChangeAddress(ctx, c.ID, customer.Address{})
		assert.ErrorIs(t, err, customer.ErrInvalidAddress)

		_, err = svc.ChangeAddress(ctx, "unknown", address)
		assert.ErrorIs(t, err, customer.ErrNotFound)

		assert.Empty(t, rec.events)
	})

	t.Run("it should activate a customer with an address", func(t *testing.T) {
		svc := services.NewCustomerService(postgrestore.NewCustomerStore(newDB(t)), event.NewEventDispatcher())

		bare, err := svc.Create(ctx, "Customer 1", nil)
		require.NoError(t, err)
		_, err = svc.Activate(ctx, bare.ID)
		assert.ErrorIs(t, err, customer.ErrAddressRequired)

		c, err := svc.Create(ctx, "Customer 2", &address)
		require.NoError(t, err)
		activated, err := svc.Activate(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, activated.Active)

		pager := pagination.NewPager(1, 10)
		list, err := svc.List(ctx, pager)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestProductService(t *testing.T) {
	ctx := context.Background()

	t.Run("it should store the product and notify ProductCreatedEvent", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		rec := &recorder{}
		ed.Register(product.CreatedEventName, rec)
		svc := services.NewProductService(postgrestore.NewProductStore(newDB(t)), ed)

		p, err := svc.Create(ctx, "Product 1", 10)
		require.NoError(t, err)

		found, err := svc.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, found)

		require.Len(t, rec.events, 1)
		assert.Equal(t, *p, rec.events[0].Payload())
	})

	t.Run("it should increase the price of every product", func(t *testing.T) {
		svc := services.NewProductService(postgrestore.NewProductStore(newDB(t)), event.NewEventDispatcher())

		p1, err := svc.Create(ctx, "Product 1", 10)
		require.NoError(t, err)
		p2, err := svc.Create(ctx, "Product 2", 20)
		require.NoError(t, err)

		updated, err := svc.IncreasePrices(ctx, []string{p1.ID, p2.ID}, 100)
		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, 20.0, updated[0].Price)
		assert.Equal(t, 40.0, updated[1].Price)

		found, err := svc.GetByID(ctx, p2.ID)
		require.NoError(t, err)
		assert.Equal(t, 40.0, found.Price)
	})

	t.Run("it should write nothing when a product is missing", func(t *testing.T) {
		svc := services.NewProductService(postgrestore.NewProductStore(newDB(t)), event.NewEventDispatcher())

		p, err := svc.Create(ctx, "Product 1", 10)
		require.NoError(t, err)

		_, err = svc.IncreasePrices(ctx, []string{p.ID, "unknown"}, 100)
		assert.ErrorIs(t, err, product.ErrNotFound)

		found, err := svc.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 10.0, found.Price)
	})
}

func TestOrderService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*services.OrderService, *customer.Customer, *product.Product, customer.Store) {
		db := newDB(t)
		customers := postgrestore.NewCustomerStore(db)
		products := postgrestore.NewProductStore(db)
		ed := event.NewEventDispatcher()

		c, err := services.NewCustomerService(customers, ed).Create(ctx, "Customer 1", &address)
		require.NoError(t, err)
		p, err := services.NewProductService(products, ed).Create(ctx, "Product 1", 50)
		require.NoError(t, err)

		return services.NewOrderService(postgrestore.NewOrderStore(db), customers, products), c, p, customers
	}

	t.Run("it should place an order and credit half its total", func(t *testing.T) {
		svc, c, p, customers := setup(t)

		o, err := svc.PlaceOrder(ctx, c.ID, []checkout.LineRequest{{ProductID: p.ID, Quantity: 3}})
		require.NoError(t, err)
		assert.Equal(t, 150.0, o.Total())
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Product 1", o.Items[0].Name)
		assert.Equal(t, 50.0, o.Items[0].Price)

		found, err := customers.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 75, found.RewardPoints)

		stored, err := svc.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, o, stored)
	})

	t.Run("it should replace the items of an order", func(t *testing.T) {
		svc, c, p, _ := setup(t)

		o, err := svc.PlaceOrder(ctx, c.ID, []checkout.LineRequest{{ProductID: p.ID, Quantity: 1}})
		require.NoError(t, err)

		changed, err := svc.ChangeItems(ctx, o.ID, []checkout.LineRequest{{ProductID: p.ID, Quantity: 4}})
		require.NoError(t, err)
		assert.Equal(t, 200.0, changed.Total())

		list, err := svc.List(ctx, pagination.NewPager(1, 10))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 200.0, list[0].Total())
	})

	t.Run("it should credit points in the same write as the order", func(t *testing.T) {
		db := newDB(t)
		customers := postgrestore.NewCustomerStore(db)
		products := postgrestore.NewProductStore(db)
		ed := event.NewEventDispatcher()

		c, err := services.NewCustomerService(customers, ed).Create(ctx, "Customer 1", &address)
		require.NoError(t, err)
		p, err := services.NewProductService(products, ed).Create(ctx, "Product 1", 50)
		require.NoError(t, err)

		failing := &failingUpdateStore{Store: customers, err: errors.New("db down")}
		svc := services.NewOrderService(postgrestore.NewOrderStore(db), failing, products)

		o, err := svc.PlaceOrder(ctx, c.ID, []checkout.LineRequest{{ProductID: p.ID, Quantity: 2}})
		require.NoError(t, err)

		_, err = svc.GetByID(ctx, o.ID)
		assert.NoError(t, err)

		found, err := customers.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, found.RewardPoints)
	})

	t.Run("it should store nothing when the customer write fails", func(t *testing.T) {
		db := newDB(t)
		products := postgrestore.NewProductStore(db)
		p, err := services.NewProductService(products, event.NewEventDispatcher()).Create(ctx, "Product 1", 50)
		require.NoError(t, err)

		ghost, _ := customer.New("ghost", "Customer 1")
		orders := postgrestore.NewOrderStore(db)
		svc := services.NewOrderService(orders, &staleCustomerStore{customer: ghost}, products)

		_, err = svc.PlaceOrder(ctx, ghost.ID, []checkout.LineRequest{{ProductID: p.ID, Quantity: 2}})
		assert.ErrorIs(t, err, customer.ErrNotFound)

		list, err := orders.List(ctx, pagination.NewPager(1, 10))
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("it should fail for unknown references", func(t *testing.T) {
		svc, c, p, _ := setup(t)

		_, err := svc.PlaceOrder(ctx, "unknown", []checkout.LineRequest{{ProductID: p.ID, Quantity: 1}})
		assert.ErrorIs(t, err, customer.ErrNotFound)

		_, err = svc.PlaceOrder(ctx, c.ID, []checkout.LineRequest{{ProductID: "unknown", Quantity: 1}})
		assert.ErrorIs(t, err, product.ErrNotFound)

		_, err = svc.PlaceOrder(ctx, c.ID, []checkout.LineRequest{{ProductID: p.ID, Quantity: 0}})
		assert.ErrorIs(t, err, checkout.ErrInvalidOrder)

		_, err = svc.ChangeItems(ctx, "unknown", []checkout.LineRequest{{ProductID: p.ID, Quantity: 1}})
		assert.ErrorIs(t, err, checkout.ErrNotFound)
	})
}

func TestCsvToEntities(t *testing.T) {
	toProduct := func(record []string) (interface{}, error) {
		price, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, err
		}

		return product.New("id-"+record[0], record[0], price)
	}

	t.Run("it should skip the header and map every record", func(t *testing.T) {
		r := strings.NewReader("name,price\nProduct 1, 10\nProduct 2,20.5\n")

		entities, err := services.NewCSVService().CsvToEntities(r, toProduct)
		require.NoError(t, err)
		require.Len(t, entities, 2)
		assert.Equal(t, 20.5, entities[1].(*product.Product).Price)
	})

	t.Run("it should name the failing line", func(t *testing.T) {
		r := strings.NewReader("name,price\nProduct 1,10\nProduct 2,abc\n")

		_, err := services.NewCSVService().CsvToEntities(r, toProduct)
		assert.ErrorContains(t, err, "line 3")
	})

	t.Run("it should accept an empty input", func(t *testing.T) {
		entities, err := services.NewCSVService().CsvToEntities(strings.NewReader(""), toProduct)
		assert.NoError(t, err)
		assert.Empty(t, entities)
	})
}
