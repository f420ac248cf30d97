package httpserver

import (
	"github.com/ddd-commerce/backend/adapters/httpserver/model"
	"github.com/ddd-commerce/backend/pkg/apperror"
	"github.com/ddd-commerce/backend/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// CreateProduct godoc
// @Summary CreateProduct
// @Description Create a product and notify ProductCreatedEvent
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.CreateProductRequest true "Create product request"
// @Success 200 {object} model.SuccessResponse{data=product.Product}
// @Failure 400 {object} model.ErrorResponse
// @Router /products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	created, err := s.ProductService.Create(ctx, req.Name, req.Price)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, created)
}

// ListProducts godoc
// @Summary ListProducts
// @Tags product
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} model.SuccessResponse{data=model.ListProductsResponse}
// @Router /products [get]
func (s *Server) ListProducts(c echo.Context) error {
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
	products, err := s.ProductService.List(ctx, pager)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, model.ListProductsResponse{
		Products:   products,
		Pagination: *pager,
	})
}

// GetProduct godoc
// @Summary GetProduct
// @Tags product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.SuccessResponse{data=product.Product}
// @Failure 404 {object} model.ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.GetProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	found, err := s.ProductService.GetByID(ctx, req.ID)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, found)
}

// IncreaseProductPrices godoc
// @Summary IncreaseProductPrices
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.IncreasePriceRequest true "Increase price request"
// @Success 200 {object} model.SuccessResponse{data=[]product.Product}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /products/increase-price [post]
func (s *Server) IncreaseProductPrices(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.IncreasePriceRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	products, err := s.ProductService.IncreasePrices(ctx, req.ProductIDs, req.Percentage)
	if err != nil {
		return s.domainError(c, err)
	}

	return s.success(c, products)
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.GET("", s.ListProducts)
	router.POST("/increase-price", s.IncreaseProductPrices)
	router.GET("/:id", s.GetProduct)
}
