package listeners

import (
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/customer"
	"go.uber.org/zap"
)

// CustomerCreatedLogListener records every new customer in the application
// log.
type CustomerCreatedLogListener struct {
	logger *zap.SugaredLogger
}

func NewCustomerCreatedLogListener(logger *zap.SugaredLogger) *CustomerCreatedLogListener {
	return &CustomerCreatedLogListener{logger: logger}
}

func (l *CustomerCreatedLogListener) Handle(event domain.Event) error {
	c, ok := event.Payload().(customer.Customer)
	if !ok {
		return nil
	}

	l.logger.Infow("customer created",
		zap.String("event", event.EventName()),
		zap.String("customer_id", c.ID),
		zap.String("name", c.Name),
		zap.Time("occurred_at", event.OccurredAt()),
	)

	return nil
}

// CustomerCreatedWelcomeListener announces the welcome notice for a new
// customer.
type CustomerCreatedWelcomeListener struct {
	logger *zap.SugaredLogger
}

func NewCustomerCreatedWelcomeListener(logger *zap.SugaredLogger) *CustomerCreatedWelcomeListener {
	return &CustomerCreatedWelcomeListener{logger: logger}
}

func (l *CustomerCreatedWelcomeListener) Handle(event domain.Event) error {
	c, ok := event.Payload().(customer.Customer)
	if !ok {
		return nil
	}

	l.logger.Infow("sending welcome notice",
		zap.String("customer_id", c.ID),
		zap.String("name", c.Name),
	)

	return nil
}
