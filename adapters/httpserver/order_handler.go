package httpserver

import (
	"github.com/ddd-commerce/backend/adapters/httpserver/model"
	"github.com/ddd-commerce/backend/pkg/apperror"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// PlaceOrder godoc
// @Summary PlaceOrder
// @Description Place an order and credit reward points to the customer
// @Tags order
// @Accept json
// @Produce json
// @Param payload body model.PlaceOrderRequest true "Place order request"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.PlaceOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	o, err := s.OrderService.PlaceOrder(ctx, req.CustomerID, s.MapperService.ToLineRequests(req.Items))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewOrderResponse(*o))
}

// ListOrders godoc
// @Summary ListOrders
// @Tags order
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=model.ListOrdersResponse}
// @Router /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
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
	orders, err := s.OrderService.List(ctx, pager)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.ListOrdersResponse{
		Orders:     s.MapperService.ToOrderResponses(orders),
		Pagination: *pager,
	})
}

// GetOrder godoc
// @Summary GetOrder
// @Tags order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	o, err := s.OrderService.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewOrderResponse(*o))
}

// ChangeOrderItems godoc
// @Summary ChangeOrderItems
// @Tags order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body model.ChangeOrderItemsRequest true "Change items request"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id}/items [put]
func (s *Server) ChangeOrderItems(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeOrderItemsRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	o, err := s.OrderService.ChangeItems(ctx, req.ID, s.MapperService.ToLineRequests(req.Items))
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.NewOrderResponse(*o))
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.PlaceOrder)
	router.GET("", s.ListOrders)
	router.GET("/:id", s.GetOrder)
	router.PUT("/:id/items", s.ChangeOrderItems)
}
