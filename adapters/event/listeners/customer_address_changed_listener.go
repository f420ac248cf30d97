package listeners

import (
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/customer"
	"go.uber.org/zap"
)

type CustomerAddressChangedLogListener struct {
	logger *zap.SugaredLogger
}

func NewCustomerAddressChangedLogListener(logger *zap.SugaredLogger) *CustomerAddressChangedLogListener {
	return &CustomerAddressChangedLogListener{logger: logger}
}

func (l *CustomerAddressChangedLogListener) Handle(event domain.Event) error {
	payload, ok := event.Payload().(customer.AddressChangedPayload)
	if !ok {
		return nil
	}

	l.logger.Infow("customer address changed",
		zap.String("customer_id", payload.ID),
		zap.String("name", payload.Name),
		zap.String("address", payload.Address),
	)

	return nil
}
