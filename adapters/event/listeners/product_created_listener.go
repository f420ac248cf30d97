package listeners

import (
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/product"
	"go.uber.org/zap"
)

type ProductCreatedEmailListener struct {
	logger *zap.SugaredLogger
}

func NewProductCreatedEmailListener(logger *zap.SugaredLogger) *ProductCreatedEmailListener {
	return &ProductCreatedEmailListener{logger: logger}
}

func (l *ProductCreatedEmailListener) Handle(event domain.Event) error {
	p, ok := event.Payload().(product.Product)
	if !ok {
		return nil
	}

	l.logger.Infow("sending product created email",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Float64("price", p.Price),
	)

	return nil
}
