package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-registry/internal/model"
	"github.com/umalmyha/customer-registry/internal/service"
)

type newCustomer struct {
	Name        string         `json:"name" msgpack:"name" validate:"required"`
	MailAddress string         `json:"mailAddress" msgpack:"mailAddress"`
	Category    model.Category `json:"category" msgpack:"category"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Get gets customer
// @Summary     Get single customer by name
// @Description Returns single customer with provided name
// @Tags        customers
// @Produce     json
// @Produce     application/msgpack
// @Param       name   path     string true "Customer name"
// @Success     200    {object} model.Customer
// @Failure     404    {object} errors.ErrorResponse
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{name} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	customer, err := h.customerSvc.FindByName(c.Request().Context(), nameParam(c))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, customer)
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers in order of creation
// @Tags        customers
// @Produce     json
// @Produce     application/msgpack
// @Success     200    {array}  model.Customer
// @Failure     500    {object} echo.HTTPError
// @Router      /customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, customers)
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer, name must be unique
// @Tags        customers
// @Accept      json
// @Accept      application/msgpack
// @Param       newCustomer body     newCustomer true "Data for new customer"
// @Success     201         "Successful status code"
// @Failure     400         {object} echo.HTTPError
// @Failure     409         {object} errors.ErrorResponse
// @Failure     500         {object} echo.HTTPError
// @Router      /customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	err := h.customerSvc.Create(c.Request().Context(), model.Customer{
		Name:        nc.Name,
		MailAddress: nc.MailAddress,
		Category:    nc.Category,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// DeleteByName deletes customer
// @Summary     Delete customer by name
// @Description Deletes customer with provided name
// @Tags        customers
// @Param       name   path     string true "Customer name"
// @Success     200    "Successful status code"
// @Failure     404    {object} errors.ErrorResponse
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{name} [delete]
func (h *CustomerHTTPHandler) DeleteByName(c echo.Context) error {
	if err := h.customerSvc.DeleteByName(c.Request().Context(), nameParam(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func nameParam(c echo.Context) string {
	name := c.Param("name")
	// router matches on raw path when it is present, so params stay escaped
	if c.Request().URL.RawPath == "" {
		return name
	}

	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}
