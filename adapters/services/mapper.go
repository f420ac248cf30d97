package services

import (
	"sync"

	"github.com/ddd-commerce/backend/adapters/httpserver/model"
	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
)

var (
	mapperInstance *mapper
	onceMapper     sync.Once
)

type mapper struct{}

func NewMapperService() *mapper {
	onceMapper.Do(func() {
		mapperInstance = &mapper{}
	})
	return mapperInstance
}

func (s *mapper) ToAddress(request model.AddressRequest) customer.Address {
	return customer.Address{
		Street: request.Street,
		Number: request.Number,
		Zip:    request.Zip,
		City:   request.City,
	}
}

func (s *mapper) ToLineRequests(request []model.OrderLineRequest) []checkout.LineRequest {
	lines := make([]checkout.LineRequest, 0, len(request))
	for _, r := range request {
		lines = append(lines, checkout.LineRequest{
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
		})
	}
	return lines
}

func (s *mapper) ToOrderResponses(orders []checkout.Order) []model.OrderResponse {
	responses := make([]model.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, model.NewOrderResponse(o))
	}
	return responses
}
