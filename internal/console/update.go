package console

import (
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/service"
	"strings"
	"time"
)

type UpdateView struct {
	Customer   *model.Customer
	Form       model.CustomerForm
	Interest   float64
	Total      float64
	Unsaved    bool
	ReloadList bool
	State      State
}

// UpdateScreen loads a customer into an editable form and saves it back
type UpdateScreen struct {
	screen
	customerSvc service.CustomerService
	validator   formValidator
	customer    *model.Customer
	form        model.CustomerForm
	unsaved     bool
	reloadList  bool
}

func NewUpdateScreen(customerSvc service.CustomerService, validator formValidator, messageTTL time.Duration) *UpdateScreen {
	s := &UpdateScreen{customerSvc: customerSvc, validator: validator}
	s.init(messageTTL)
	return s
}

// Load looks customer up with a short timeout falling back to the full list
func (s *UpdateScreen) Load(ctx context.Context, id string) {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if !model.IsDigits(id) {
		s.failLocked("Please enter a valid customer ID", apperrors.NewValidationErr("id", "customer id must be numeric"))
		s.mu.Unlock()
		return
	}

	s.customer = nil
	s.reloadList = false
	s.cancelClearLocked()
	s.state = State{Status: Loading}
	s.mu.Unlock()

	c, err := s.customerSvc.LookupForUpdate(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch {
	case service.IsNotFound(err):
		s.failLocked(fmt.Sprintf("Customer with ID %q not found.", id), err)
	case err != nil:
		s.failLocked("Could not load customer data. Please check your connection.", err)
	default:
		if c.ID == "" {
			c.ID = id
		}
		s.customer = &c
		s.form = model.FormOf(c)
		s.unsaved = false
		s.idleLocked()
	}
}

// Edit replaces form values, the interest preview follows them
func (s *UpdateScreen) Edit(form model.CustomerForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return
	}
	s.form = form
	s.unsaved = true
}

// Submit validates the form, merges it into the loaded customer and saves it.
// Derived amounts are left to the backend.
func (s *UpdateScreen) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.customer == nil || s.state.Status == Loading {
		s.mu.Unlock()
		return
	}
	s.reloadList = false

	if err := s.validator.Validate(&s.form); err != nil {
		s.failLocked(err.Error(), err)
		s.mu.Unlock()
		return
	}

	updated := s.form.Merge(*s.customer)
	s.beginLocked()
	s.mu.Unlock()

	err := s.customerSvc.Update(ctx, updated.ID, updated)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if err != nil && !service.IsCacheStale(err) {
		logrus.WithFields(logrus.Fields{"id": updated.ID, "error": err}).Error("failed to update customer")
		s.failLocked("Failed to update customer.", err)
		return
	}

	s.customer = &updated
	s.unsaved = false
	s.reloadList = true
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": updated.ID, "error": err}).Warn("customer updated, cached list is outdated")
		s.succeedStaleLocked("Customer updated successfully!", err)
		return
	}
	s.succeedLocked("Customer updated successfully!")
}

// Reset forgets loaded customer together with form and messages
func (s *UpdateScreen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer = nil
	s.form = model.CustomerForm{}
	s.unsaved = false
	s.reloadList = false
	s.idleLocked()
}

func (s *UpdateScreen) View() UpdateView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := UpdateView{
		Form:       s.form,
		Unsaved:    s.unsaved,
		ReloadList: s.reloadList,
		State:      s.state,
	}
	if s.customer != nil {
		c := *s.customer
		v.Customer = &c
		v.Interest, v.Total = s.form.Preview()
	}
	return v
}
