package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customers-console/internal/filter"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/pagination"
	"github.com/umalmyha/customers-console/internal/service"
	"math"
	"net/http"
	"time"
)

type identifier struct {
	ID string `validate:"required,number"`
}

type listQuery struct {
	Search          string `query:"search"`
	Status          string `query:"status"`
	MinPrincipal    string `query:"minPrincipal"`
	MaxPrincipal    string `query:"maxPrincipal"`
	MaxInterestRate string `query:"maxInterestRate"`
	Page            int    `query:"page" validate:"min=0"`
	PageSize        int    `query:"pageSize" validate:"min=0,max=100"`
	Reload          bool   `query:"reload"`
}

// customer is the JSON shape of model.Customer, unavailable numbers are null
type customer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Principal      *float64 `json:"principal"`
	InterestRate   *float64 `json:"interestRate"`
	TimePeriod     *float64 `json:"timePeriod"`
	Status         string   `json:"status"`
	InterestAmount *float64 `json:"interestAmount"`
	TotalAmount    *float64 `json:"totalAmount"`
	JoinDate       string   `json:"joinDate"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zipCode"`
	DateOfBirth    string   `json:"dateOfBirth"`
}

type customerPage struct {
	Customers  []customer `json:"customers"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalCount int        `json:"totalCount"`
	TotalPages int        `json:"totalPages"`
	FetchedAt  time.Time  `json:"fetchedAt"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
	pageSize    int
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler, pageSize is used when request has none
func NewCustomerHTTPHandler(customerSvc service.CustomerService, pageSize int) *CustomerHTTPHandler {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &CustomerHTTPHandler{
		customerSvc: customerSvc,
		pageSize:    pageSize,
	}
}

// GetAll returns one page of filtered customers
// @Summary     Get customers page
// @Description Returns page of cached customer list filtered by provided predicates. Non-numeric bounds are ignored.
// @Tags        customers
// @Produce     json
// @Param       search          query    string  false "Term matched against name, email and id"
// @Param       status          query    string  false "Status, case insensitive"
// @Param       minPrincipal    query    string  false "Minimal principal"
// @Param       maxPrincipal    query    string  false "Maximal principal"
// @Param       maxInterestRate query    string  false "Maximal interest rate"
// @Param       page            query    int     false "Page number starting from 1"
// @Param       pageSize        query    int     false "Page size"
// @Param       reload          query    bool    false "Bypass cache"
// @Success     200             {object} customerPage
// @Failure     400             {object} echo.HTTPError
// @Failure     502             {object} echo.HTTPError
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	var q listQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	snapshot, err := h.customerSvc.FindAll(c.Request().Context(), q.Reload)
	if err != nil {
		return err
	}

	filtered := filter.Apply(snapshot.Customers, filter.Predicates{
		Term:            q.Search,
		Status:          q.Status,
		MinPrincipal:    q.MinPrincipal,
		MaxPrincipal:    q.MaxPrincipal,
		MaxInterestRate: q.MaxInterestRate,
	})

	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = h.pageSize
	}

	page := q.Page
	if page == 0 {
		page = 1
	}

	rows := pagination.Page(filtered, pageSize, page)
	res := customerPage{
		Customers:  make([]customer, 0, len(rows)),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: len(filtered),
		TotalPages: pagination.TotalPages(len(filtered), pageSize),
		FetchedAt:  snapshot.FetchedAt,
	}
	for _, r := range rows {
		res.Customers = append(res.Customers, toCustomer(r))
	}

	return c.JSON(http.StatusOK, &res)
}

// Get returns customer
// @Summary     Get customer by id
// @Description Looks customer up on the backend
// @Tags        customers
// @Produce     json
// @Param       id  path     string true "Customer id" Format(number)
// @Success     200 {object} customer
// @Failure     400 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Failure     502 {object} echo.HTTPError
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	cust, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	res := toCustomer(cust)
	return c.JSON(http.StatusOK, &res)
}

// Post creates new customer
// @Summary     Create customer
// @Description Creates new customer, cached list is invalidated
// @Tags        customers
// @Accept      json
// @Param       customerForm body model.CustomerForm true "Customer data"
// @Success     201 "Successful status code"
// @Failure     400 {object} echo.HTTPError
// @Failure     502 {object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var form model.CustomerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&form); err != nil {
		return err
	}

	if err := h.customerSvc.Create(c.Request().Context(), form.Merge(model.Customer{Status: model.StatusActive})); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// Put updates customer
// @Summary     Update customer
// @Description Updates customer with provided id, cached list is invalidated
// @Tags        customers
// @Accept      json
// @Param       id           path string            true "Customer id" Format(number)
// @Param       customerForm body model.CustomerForm true "Customer data"
// @Success     204 "Successful status code"
// @Failure     400 {object} echo.HTTPError
// @Failure     502 {object} echo.HTTPError
// @Router      /api/customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	var form model.CustomerForm
	if err := (&echo.DefaultBinder{}).BindBody(c, &form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&form); err != nil {
		return err
	}

	if err := h.customerSvc.Update(c.Request().Context(), id, form.Merge(model.Customer{ID: id})); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id, cached list is invalidated
// @Tags        customers
// @Param       id  path string true "Customer id" Format(number)
// @Success     204 "Successful status code"
// @Failure     400 {object} echo.HTTPError
// @Failure     502 {object} echo.HTTPError
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// InvalidateCache drops cached customer list
// @Summary     Invalidate cache
// @Description Forces next read of customer list to reach the backend
// @Tags        cache
// @Success     204 "Successful status code"
// @Failure     500 {object} echo.HTTPError
// @Router      /api/cache/invalidate [post]
func (h *CustomerHTTPHandler) InvalidateCache(c echo.Context) error {
	if err := h.customerSvc.InvalidateCache(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toCustomer(c model.Customer) customer {
	return customer{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Principal:      number(c.Principal),
		InterestRate:   number(c.InterestRate),
		TimePeriod:     number(c.TimePeriod),
		Status:         c.Status,
		InterestAmount: number(c.InterestAmount),
		TotalAmount:    number(c.TotalAmount),
		JoinDate:       c.JoinDate,
		Address:        c.Address,
		City:           c.City,
		State:          c.State,
		ZipCode:        c.ZipCode,
		DateOfBirth:    c.DateOfBirth,
	}
}

// number maps values JSON can't carry to null
func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
