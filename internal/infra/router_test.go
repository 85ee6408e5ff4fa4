package infra

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customer-registry/internal/config"
	"github.com/umalmyha/customer-registry/internal/repository"
	"github.com/umalmyha/customer-registry/internal/service"
	"github.com/umalmyha/customer-registry/internal/validation"
)

func newTestRouter(t *testing.T, swagger bool) *echo.Echo {
	t.Helper()

	validator, err := validation.NewEnglish()
	require.NoError(t, err, "failed to build validator")

	customerSvc := service.NewCustomerService(repository.NewMemoryCustomerRepository())
	return Router(customerSvc, validator, swagger)
}

func serve(app *echo.Echo, method, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestRouterCustomerRoutes(t *testing.T) {
	app := newTestRouter(t, false)

	rec := serve(app, http.MethodPost, "/customers", `{"name":"customerA","mailAddress":"example1@mail.com","category":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), "request id must be generated")

	rec = serve(app, http.MethodGet, "/customers/customerA", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"name":"customerA","mailAddress":"example1@mail.com","category":1}`, rec.Body.String())

	rec = serve(app, http.MethodPost, "/customers", `{"name":"customerA","mailAddress":"example2@mail.com","category":2}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(app, http.MethodDelete, "/customers/customerA", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodDelete, "/customers/customerA", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{
		"reason":"A customer with name customerA does not exist",
		"hint":"Consider calling GET /customers to receive a list of all available customers"
	}`, rec.Body.String())

	t.Log("unknown routes are handled by echo")
	{
		rec := serve(app, http.MethodPut, "/customers/customerA", "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestRouterSwagger(t *testing.T) {
	t.Log("swagger doc is served when enabled")
	{
		rec := serve(newTestRouter(t, true), http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "/customers/{name}")
	}

	t.Log("swagger is not mounted when disabled")
	{
		rec := serve(newTestRouter(t, false), http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestLogger(t *testing.T) {
	require.NoError(t, Logger(config.LogCfg{Level: "debug", Format: "json"}))
	require.NoError(t, Logger(config.LogCfg{Level: "info", Format: "text"}))
	require.Error(t, Logger(config.LogCfg{Level: "loud", Format: "text"}), "unknown level must be rejected")
	require.Error(t, Logger(config.LogCfg{Level: "info", Format: "xml"}), "unknown format must be rejected")
}
