package model

import (
	"context"

	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/ddd-commerce/backend/pkg/validation"
)

type OrderLineRequest struct {
	ProductID string `json:"product_id" mod:"trim" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
} // @name model.OrderLineRequest

type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id" mod:"trim" validate:"required"`
	Items      []OrderLineRequest `json:"items" mod:"dive" validate:"required,min=1,dive"`
} // @name model.PlaceOrderRequest

func (r *PlaceOrderRequest) Validate(ctx context.Context) error {
	if err := validation.Transform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().StructCtx(ctx, r)
}

type ChangeOrderItemsRequest struct {
	ID    string             `param:"id" json:"-" validate:"required"`
	Items []OrderLineRequest `json:"items" mod:"dive" validate:"required,min=1,dive"`
} // @name model.ChangeOrderItemsRequest

func (r *ChangeOrderItemsRequest) Validate(ctx context.Context) error {
	if err := validation.Transform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().StructCtx(ctx, r)
}

type GetOrderRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetOrderRequest) Validate(ctx context.Context) error {
	return validation.Validate().StructCtx(ctx, r)
}

type OrderResponse struct {
	checkout.Order
	Total float64 `json:"total"`
} // @name model.OrderResponse

func NewOrderResponse(o checkout.Order) OrderResponse {
	return OrderResponse{Order: o, Total: o.Total()}
}

type ListOrdersResponse struct {
	Orders     []OrderResponse  `json:"orders"`
	Pagination pagination.Pager `json:"pagination"`
} // @name model.ListOrdersResponse
