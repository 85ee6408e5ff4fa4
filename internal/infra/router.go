package infra

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customer-registry/docs" // swagger spec
	"github.com/umalmyha/customer-registry/internal/handlers"
	"github.com/umalmyha/customer-registry/internal/service"
	"github.com/umalmyha/customer-registry/internal/validation"
)

// Router builds echo instance with customer routes
func Router(customerSvc service.CustomerService, validator *validation.Validator, swagger bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e)
	e.Validator = validation.Echo(validator)
	e.Binder = handlers.NewMsgpackBinder()

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"requestId": v.RequestID,
			}).Info("http request")
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	// customers
	customersAPI := e.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/:name", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.DELETE("/:name", customerHandler.DeleteByName)

	// docs
	if swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}
