package listeners

import (
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/domain/pubsub"
	"go.uber.org/zap"
)

// Register subscribes the default listeners to dispatcher. When publisher is
// not nil every domain event is also forwarded to channel.
func Register(dispatcher domain.EventDispatcher, logger *zap.SugaredLogger, publisher pubsub.Service, channel string) {
	dispatcher.Register(customer.CreatedEventName, NewCustomerCreatedLogListener(logger))
	dispatcher.Register(customer.CreatedEventName, NewCustomerCreatedWelcomeListener(logger))
	dispatcher.Register(customer.AddressChangedEventName, NewCustomerAddressChangedLogListener(logger))
	dispatcher.Register(product.CreatedEventName, NewProductCreatedEmailListener(logger))

	if publisher == nil {
		return
	}

	forward := NewPublishEventListener(publisher, channel)
	for _, name := range []string{
		customer.CreatedEventName,
		customer.AddressChangedEventName,
		product.CreatedEventName,
	} {
		dispatcher.Register(name, forward)
	}
}
