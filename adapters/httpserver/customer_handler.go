package httpserver

import (
	"github.com/ddd-commerce/backend/adapters/httpserver/model"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/pkg/apperror"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// CreateCustomer godoc
// @Summary CreateCustomer
// @Description Create a customer and notify CustomerCreatedEvent
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	var address *customer.Address
	if req.Address != nil {
		a := s.MapperService.ToAddress(*req.Address)
		address = &a
	}

	created, err := s.CustomerService.Create(ctx, req.Name, address)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, created)
}

// ListCustomers godoc
// @Summary ListCustomers
// @Tags customer
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=model.ListCustomersResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req pagination.Paging
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	pager := req.Pager()
	customers, err := s.CustomerService.List(ctx, pager)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.ListCustomersResponse{
		Customers:  customers,
		Pagination: *pager,
	})
}

// GetCustomer godoc
// @Summary GetCustomer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	found, err := s.CustomerService.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, found)
}

// ChangeCustomerAddress godoc
// @Summary ChangeCustomerAddress
// @Description Change the address of a customer and notify CustomerAddressChangedEvent
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.ChangeAddressRequest true "Change address request"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/address [put]
func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeAddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	updated, err := s.CustomerService.ChangeAddress(ctx, req.ID, s.MapperService.ToAddress(req.AddressRequest))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, updated)
}

// ActivateCustomer godoc
// @Summary ActivateCustomer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/activate [post]
func (s *Server) ActivateCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	activated, err := s.CustomerService.Activate(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, activated)
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
	router.POST("/:id/activate", s.ActivateCustomer)
}
