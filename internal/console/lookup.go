package console

import (
	"context"
	"fmt"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/service"
	"strings"
)

// Tone is the badge colour of a customer status
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
	ToneNeutral Tone = "neutral"
)

// StatusTone classifies status for display, unknown statuses are neutral
func StatusTone(status string) Tone {
	switch strings.ToLower(status) {
	case "completed", model.StatusActive:
		return ToneSuccess
	case "processed", model.StatusPending:
		return ToneWarning
	case model.StatusInactive:
		return ToneError
	default:
		return ToneNeutral
	}
}

type LookupView struct {
	Customer *model.Customer
	Interest float64
	Total    float64
	Tone     Tone
	State    State
}

// LookupScreen finds a single customer by id
type LookupScreen struct {
	screen
	customerSvc service.CustomerService
	customer    *model.Customer
}

func NewLookupScreen(customerSvc service.CustomerService) *LookupScreen {
	s := &LookupScreen{customerSvc: customerSvc}
	s.init(0)
	return s
}

// Search validates id before any request is made
func (s *LookupScreen) Search(ctx context.Context, id string) {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if id == "" {
		s.failLocked("Please enter a customer ID", apperrors.NewValidationErr("id", "customer id is empty"))
		s.mu.Unlock()
		return
	}

	if !model.IsDigits(id) {
		s.failLocked("Customer ID must contain only numbers", apperrors.NewValidationErr("id", "customer id is not numeric"))
		s.mu.Unlock()
		return
	}

	s.customer = nil
	s.beginLocked()
	s.state.Message = ""
	s.mu.Unlock()

	c, err := s.customerSvc.FindByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch {
	case service.IsNotFound(err):
		s.failLocked(fmt.Sprintf("No Record found With This Id: %q", id), err)
	case err != nil:
		s.failLocked(fmt.Sprintf("Error: %s", err.Error()), err)
	default:
		s.customer = &c
		s.succeedLocked("")
	}
}

func (s *LookupScreen) View() LookupView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := LookupView{State: s.state}
	if s.customer == nil {
		return v
	}

	c := *s.customer
	v.Customer = &c
	v.Interest = model.InterestAmount(c.Principal, c.InterestRate, c.TimePeriod)
	v.Total = model.TotalAmount(c.Principal, v.Interest)
	v.Tone = StatusTone(c.Status)
	return v
}
