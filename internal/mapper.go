package internal

import (
	"github.com/ddd-commerce/backend/adapters/httpserver/model"
	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
)

type Mapper interface {
	ToAddress(request model.AddressRequest) customer.Address
	ToLineRequests(request []model.OrderLineRequest) []checkout.LineRequest
	ToOrderResponses(orders []checkout.Order) []model.OrderResponse
}
