package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customer-registry/internal/errors"
	"github.com/umalmyha/customer-registry/internal/validation"
)

// HTTPErrorHandler translates business and payload errors into responses, the rest is passed to echo default handler
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request().Method,
			"uri":       c.Request().RequestURI,
			"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
		})

		if c.Response().Committed {
			entry.Errorf("error occurred after response was committed - %v", err)
			return
		}

		var (
			notFoundErr *apperrors.EntryNotFoundErr
			existsErr   *apperrors.EntryExistsErr
			pldErr      *validation.PayloadError
		)

		var sendErr error
		switch {
		case errors.As(err, &notFoundErr):
			entry.Info(err.Error())
			sendErr = c.JSON(http.StatusNotFound, notFoundErr)
		case errors.As(err, &existsErr):
			entry.Info(err.Error())
			sendErr = c.JSON(http.StatusConflict, existsErr)
		case errors.As(err, &pldErr):
			entry.Infof("invalid payload - %v", err)
			sendErr = c.JSON(http.StatusBadRequest, pldErr)
		default:
			entry.Errorf("error occurred on http request processing - %v", err)
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		if sendErr != nil {
			entry.Errorf("failed to send error response - %v", sendErr)
		}
	}
}
