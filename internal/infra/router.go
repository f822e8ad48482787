package infra

import (
	"errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/handlers"
	"github.com/umalmyha/customers-console/internal/middleware"
	"github.com/umalmyha/customers-console/internal/service"
	"github.com/umalmyha/customers-console/internal/validation"
	"net/http"
)

func Router(customerSvc service.CustomerService, validator echo.Validator, pageSize int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator
	e.HTTPErrorHandler = ErrorHandler(e)

	// Middleware
	e.Use(echoMw.Recover())
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc, pageSize)
	agentHandler := handlers.NewAgentHTTPHandler(customerSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	api.POST("/agent/ask", agentHandler.Ask)
	api.POST("/cache/invalidate", customerHandler.InvalidateCache)

	return e
}

// ErrorHandler translates domain errors into http statuses before echo writes them
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			pldErr        *validation.PayloadError
			validationErr *apperrors.ValidationErr
			notFoundErr   *apperrors.NotFoundErr
			transientErr  *apperrors.TransientErr
		)

		switch {
		case errors.As(err, &pldErr):
			err = c.JSON(http.StatusBadRequest, pldErr)
		case errors.As(err, &validationErr):
			err = c.JSON(http.StatusBadRequest, validationErr)
		case errors.As(err, &notFoundErr):
			e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error()), c)
			return
		case errors.As(err, &transientErr):
			logrus.WithError(err).Error("customers backend request failed")
			e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusBadGateway, "customers backend is unavailable"), c)
			return
		default:
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		if err != nil {
			logrus.WithError(err).Error("failed to write error response")
		}
	}
}
