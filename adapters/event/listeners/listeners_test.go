package listeners_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ddd-commerce/backend/adapters/event"
	"github.com/ddd-commerce/backend/adapters/event/listeners"
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/domain/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakePublisher struct {
	mu        sync.Mutex
	published []pubsub.Message
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, channel string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	p.published = append(p.published, pubsub.Message{Channel: channel, Payload: message.(string)})

	return nil
}

func (p *fakePublisher) Subscribe(context.Context, string) pubsub.Subscription {
	return nil
}

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core).Sugar(), logs
}

func newCustomer(t *testing.T) customer.Customer {
	t.Helper()

	c, err := customer.CreateWithAddress("Joao da silva",
		customer.Address{Street: "Avenida teste", Number: 1410, Zip: "31300-310", City: "BH"})
	require.NoError(t, err)

	return *c
}

func TestCustomerCreatedListeners(t *testing.T) {
	logger, logs := newObservedLogger()
	c := newCustomer(t)

	ed := event.NewEventDispatcher()
	first := listeners.NewCustomerCreatedLogListener(logger)
	second := listeners.NewCustomerCreatedWelcomeListener(logger)
	ed.Register(customer.CreatedEventName, first)
	ed.Register(customer.CreatedEventName, second)

	handlers := ed.Handlers()[customer.CreatedEventName]
	require.Len(t, handlers, 2)
	assert.Same(t, first, handlers[0])
	assert.Same(t, second, handlers[1])

	require.NoError(t, ed.Notify(customer.NewCreatedEvent(c)))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "customer created", entries[0].Message)
	assert.Equal(t, c.ID, entries[0].ContextMap()["customer_id"])
	assert.Equal(t, "sending welcome notice", entries[1].Message)
	assert.Equal(t, "Joao da silva", entries[1].ContextMap()["name"])
}

func TestCustomerAddressChangedListener(t *testing.T) {
	logger, logs := newObservedLogger()
	c := newCustomer(t)

	ed := event.NewEventDispatcher()
	ed.Register(customer.AddressChangedEventName, listeners.NewCustomerAddressChangedLogListener(logger))

	require.NoError(t, ed.Notify(customer.NewAddressChangedEvent(c)))

	entries := logs.FilterMessage("customer address changed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Avenida teste 1410, 31300-310 BH", entries[0].ContextMap()["address"])
}

func TestListenersIgnoreForeignPayloads(t *testing.T) {
	logger, logs := newObservedLogger()

	for _, h := range []domain.EventHandler{
		listeners.NewCustomerCreatedLogListener(logger),
		listeners.NewCustomerCreatedWelcomeListener(logger),
		listeners.NewCustomerAddressChangedLogListener(logger),
		listeners.NewProductCreatedEmailListener(logger),
	} {
		assert.NoError(t, h.Handle(domain.NewEvent("X", "not a domain payload")))
	}

	assert.Zero(t, logs.Len())
}

func TestProductCreatedEmailListener(t *testing.T) {
	logger, logs := newObservedLogger()
	p, err := product.New("p1", "Product 1", 10)
	require.NoError(t, err)

	require.NoError(t, listeners.NewProductCreatedEmailListener(logger).Handle(product.NewCreatedEvent(*p)))

	entries := logs.FilterMessage("sending product created email").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ContextMap()["product_id"])
}

func TestPublishEventListener(t *testing.T) {
	t.Run("it should publish the encoded event", func(t *testing.T) {
		publisher := &fakePublisher{}
		c := newCustomer(t)
		e := customer.NewAddressChangedEvent(c)

		require.NoError(t, listeners.NewPublishEventListener(publisher, "events").Handle(e))

		require.Len(t, publisher.published, 1)
		assert.Equal(t, "events", publisher.published[0].Channel)

		decoded, err := listeners.DecodePublishedEvent(publisher.published[0].Payload)
		require.NoError(t, err)
		assert.Equal(t, customer.AddressChangedEventName, decoded.Name)
		assert.True(t, e.OccurredAt().Equal(decoded.OccurredAt))
		assert.Equal(t, map[string]interface{}{
			"id":      c.ID,
			"name":    "Joao da silva",
			"address": "Avenida teste 1410, 31300-310 BH",
		}, decoded.Payload)
	})

	t.Run("it should return the publish failure", func(t *testing.T) {
		errDown := errors.New("redis down")
		publisher := &fakePublisher{err: errDown}

		err := listeners.NewPublishEventListener(publisher, "events").Handle(domain.NewEvent("X", nil))

		assert.ErrorIs(t, err, errDown)
	})

	t.Run("it should reject malformed messages", func(t *testing.T) {
		_, err := listeners.DecodePublishedEvent("{")
		assert.Error(t, err)
	})
}

func TestRegister(t *testing.T) {
	logger, _ := newObservedLogger()

	t.Run("without publisher", func(t *testing.T) {
		ed := event.NewEventDispatcher()
		listeners.Register(ed, logger, nil, "events")

		handlers := ed.Handlers()
		assert.Len(t, handlers[customer.CreatedEventName], 2)
		assert.Len(t, handlers[customer.AddressChangedEventName], 1)
		assert.Len(t, handlers[product.CreatedEventName], 1)
	})

	t.Run("with publisher", func(t *testing.T) {
		publisher := &fakePublisher{}
		ed := event.NewEventDispatcher()
		listeners.Register(ed, logger, publisher, "events")

		handlers := ed.Handlers()
		assert.Len(t, handlers[customer.CreatedEventName], 3)
		assert.Len(t, handlers[customer.AddressChangedEventName], 2)
		assert.Len(t, handlers[product.CreatedEventName], 2)

		require.NoError(t, ed.Notify(customer.NewCreatedEvent(newCustomer(t))))
		assert.Len(t, publisher.published, 1)
	})
}
