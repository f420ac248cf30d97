package apperror

import (
	"net/http"
)

const (
	BindingCode          = "400001"
	ValidationCode       = "400002"
	InvalidEntityCode    = "400003"
	CustomerNotFoundCode = "404004"
	ProductNotFoundCode  = "404005"
	OrderNotFoundCode    = "404006"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

func ErrInvalidEntity(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidEntityCode, "Invalid entity")
}

// 404 Not Found
func ErrCustomerNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, CustomerNotFoundCode, "Customer not found")
}

func ErrProductNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, ProductNotFoundCode, "Product not found")
}

func ErrOrderNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, OrderNotFoundCode, "Order not found")
}
