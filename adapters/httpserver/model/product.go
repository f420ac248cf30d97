package model

import (
	"context"

	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/ddd-commerce/backend/pkg/validation"
)

type CreateProductRequest struct {
	Name  string  `json:"name" mod:"trim" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gte=0"`
} // @name model.CreateProductRequest

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	if err := validation.Transform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().StructCtx(ctx, r)
}

type GetProductRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetProductRequest) Validate(ctx context.Context) error {
	return validation.Validate().StructCtx(ctx, r)
}

type IncreasePriceRequest struct {
	ProductIDs []string `json:"product_ids" validate:"required,min=1,dive,required"`
	Percentage float64  `json:"percentage" validate:"gt=0"`
} // @name model.IncreasePriceRequest

func (r *IncreasePriceRequest) Validate(ctx context.Context) error {
	return validation.Validate().StructCtx(ctx, r)
}

type ListProductsResponse struct {
	Products   []product.Product `json:"products"`
	Pagination pagination.Pager  `json:"pagination"`
} // @name model.ListProductsResponse
