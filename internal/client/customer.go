// Package client talks to the remote customers API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseRoute is path prefix of customer endpoints
const DefaultBaseRoute = "Spr/customers"

const (
	getAllPath     = "/getAllCustomers"
	getByIDPath    = "/getCustomerById?id="
	updateByIDPath = "/updateCustomerById?id="
	insertPath     = "/insertCustomer"
	deleteByIDPath = "/deleteCustomerById/"
	askAgentPath   = "/askAgent"
)

const maxErrorBodyLen = 512

// CustomerAPI is the remote customers backend
type CustomerAPI interface {
	GetAll(context.Context) ([]model.WireRecord, error)
	GetByID(context.Context, string) (model.WireRecord, error)
	Update(context.Context, string, model.UpdatePayload) error
	Insert(context.Context, model.CreatePayload) error
	DeleteByID(context.Context, string) error
	AskAgent(context.Context, string) (model.AgentAnswer, error)
}

// StatusError is returned when backend replies with non 2xx status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected response status %d", e.Code)
	}
	return fmt.Sprintf("unexpected response status %d: %s", e.Code, e.Body)
}

type httpCustomerAPI struct {
	httpClient *http.Client
	apiURL     string
}

// NewHTTPCustomerAPI builds client for backend at baseURL, route is appended to it
func NewHTTPCustomerAPI(httpClient *http.Client, baseURL, route string) CustomerAPI {
	if route == "" {
		route = DefaultBaseRoute
	}
	return &httpCustomerAPI{
		httpClient: httpClient,
		apiURL:     strings.TrimRight(baseURL, "/") + "/" + strings.Trim(route, "/"),
	}
}

func (a *httpCustomerAPI) GetAll(ctx context.Context) ([]model.WireRecord, error) {
	var records []model.WireRecord
	if err := a.doJSON(ctx, http.MethodGet, a.apiURL+getAllPath, nil, &records); err != nil {
		return nil, apperrors.NewTransientErr("get all customers", err)
	}
	return records, nil
}

func (a *httpCustomerAPI) GetByID(ctx context.Context, id string) (model.WireRecord, error) {
	var record model.WireRecord
	err := a.doJSON(ctx, http.MethodGet, a.apiURL+getByIDPath+url.QueryEscape(id), nil, &record)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, apperrors.NewNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", id))
		}
		return nil, apperrors.NewTransientErr("get customer by id", err)
	}

	if record == nil {
		return nil, apperrors.NewNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", id))
	}
	return record, nil
}

func (a *httpCustomerAPI) Update(ctx context.Context, id string, p model.UpdatePayload) error {
	if err := a.doText(ctx, http.MethodPut, a.apiURL+updateByIDPath+url.QueryEscape(id), p); err != nil {
		return apperrors.NewTransientErr("update customer", err)
	}
	return nil
}

func (a *httpCustomerAPI) Insert(ctx context.Context, p model.CreatePayload) error {
	if err := a.doText(ctx, http.MethodPost, a.apiURL+insertPath, p); err != nil {
		return apperrors.NewTransientErr("insert customer", err)
	}
	return nil
}

func (a *httpCustomerAPI) DeleteByID(ctx context.Context, id string) error {
	if err := a.doText(ctx, http.MethodDelete, a.apiURL+deleteByIDPath+url.PathEscape(id), nil); err != nil {
		return apperrors.NewTransientErr("delete customer", err)
	}
	return nil
}

func (a *httpCustomerAPI) AskAgent(ctx context.Context, question string) (model.AgentAnswer, error) {
	var answer model.AgentAnswer
	if err := a.doJSON(ctx, http.MethodPost, a.apiURL+askAgentPath, &model.AgentQuestion{Question: question}, &answer); err != nil {
		return model.AgentAnswer{}, apperrors.NewTransientErr("ask agent", err)
	}
	return answer, nil
}

// doJSON sends request and decodes JSON response body into out
func (a *httpCustomerAPI) doJSON(ctx context.Context, method, target string, body, out any) error {
	res, err := a.do(ctx, method, target, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body - %w", err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body - %w", err)
	}
	return nil
}

// doText sends request whose plain text response only signals success
func (a *httpCustomerAPI) doText(ctx context.Context, method, target string, body any) error {
	res, err := a.do(ctx, method, target, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

func (a *httpCustomerAPI) do(ctx context.Context, method, target string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body - %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request - %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logrus.WithFields(logrus.Fields{"method": method, "url": target}).Debug("calling customers api")

	started := time.Now()
	res, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"url":      target,
		"status":   res.StatusCode,
		"duration": time.Since(started),
	}).Debug("customers api responded")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		defer res.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyLen))
		return nil, &StatusError{Code: res.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	return res, nil
}
