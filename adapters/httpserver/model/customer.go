package model

import (
	"context"

	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/ddd-commerce/backend/pkg/validation"
)

type AddressRequest struct {
	Street string `json:"street" mod:"trim" validate:"required,max=255"`
	Number int    `json:"number" validate:"required,min=1"`
	Zip    string `json:"zip" mod:"trim" validate:"required,max=32"`
	City   string `json:"city" mod:"trim" validate:"required,max=255"`
} // @name model.AddressRequest

type CreateCustomerRequest struct {
	Name    string          `json:"name" mod:"trim" validate:"required,max=255"`
	Address *AddressRequest `json:"address" validate:"omitempty"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	if err := validation.Transform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().StructCtx(ctx, r)
}

type GetCustomerRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetCustomerRequest) Validate(ctx context.Context) error {
	return validation.Validate().StructCtx(ctx, r)
}

type ChangeAddressRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	AddressRequest
} // @name model.ChangeAddressRequest

func (r *ChangeAddressRequest) Validate(ctx context.Context) error {
	if err := validation.Transform().Struct(ctx, r); err != nil {
		return err
	}

	return validation.Validate().StructCtx(ctx, r)
}

type ListCustomersResponse struct {
	Customers  []customer.Customer `json:"customers"`
	Pagination pagination.Pager    `json:"pagination"`
} // @name model.ListCustomersResponse
