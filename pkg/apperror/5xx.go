package apperror

import "net/http"

const (
	InternalServerCode = "500001"
	EventDispatchCode  = "500002"
)

// 500 Internal Server Error
func ErrInternalServer(err error) Error {
	return NewError(err, http.StatusInternalServerError, InternalServerCode, "Internal Server Error")
}

// ErrEventDispatch reports a change that was stored but whose event
// handlers failed.
func ErrEventDispatch(err error) Error {
	return NewError(err, http.StatusInternalServerError, EventDispatchCode, "Event handler failed")
}
