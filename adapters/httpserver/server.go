package httpserver

import (
	"net/http"
	"strings"

	"github.com/ddd-commerce/backend/adapters/httpserver/model"
	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/checkout"
	"github.com/ddd-commerce/backend/domain/customer"
	"github.com/ddd-commerce/backend/domain/product"
	"github.com/ddd-commerce/backend/internal"
	"github.com/ddd-commerce/backend/pkg/apperror"
	"github.com/ddd-commerce/backend/pkg/config"
	"github.com/ddd-commerce/backend/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// internal services
	MapperService internal.Mapper

	// services
	CustomerService customer.Service
	ProductService  product.Service
	OrderService    checkout.Service
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
	}

	s.router.HideBanner = true

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))

	s.RegisterCustomerRoutes(s.router.Group("/api/customers"))
	s.RegisterProductRoutes(s.router.Group("/api/products"))
	s.RegisterOrderRoutes(s.router.Group("/api/orders"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

// domainError translates domain and service errors into application errors.
func (s *Server) domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, customer.ErrNotFound):
		return s.error(c, apperror.ErrCustomerNotFound(err))
	case errors.Is(err, product.ErrNotFound):
		return s.error(c, apperror.ErrProductNotFound(err))
	case errors.Is(err, checkout.ErrNotFound):
		return s.error(c, apperror.ErrOrderNotFound(err))
	case errors.Is(err, customer.ErrInvalidCustomer),
		errors.Is(err, customer.ErrInvalidAddress),
		errors.Is(err, customer.ErrAddressRequired),
		errors.Is(err, product.ErrInvalidProduct),
		errors.Is(err, checkout.ErrInvalidOrder):
		return s.error(c, apperror.ErrInvalidEntity(err))
	case errors.Is(err, domain.ErrDispatch):
		return s.error(c, apperror.ErrEventDispatch(err))
	}

	return s.error(c, apperror.ErrInternalServer(err))
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    apperror.InternalServerCode,
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
