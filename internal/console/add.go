package console

import (
	"context"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/service"
	"time"
)

// AddScreen creates new customers
type AddScreen struct {
	screen
	customerSvc service.CustomerService
	validator   formValidator
}

func NewAddScreen(customerSvc service.CustomerService, validator formValidator, messageTTL time.Duration) *AddScreen {
	s := &AddScreen{customerSvc: customerSvc, validator: validator}
	s.init(messageTTL)
	return s
}

func (s *AddScreen) Submit(ctx context.Context, form model.CustomerForm) {
	s.mu.Lock()
	if s.closed || s.state.Status == Loading {
		s.mu.Unlock()
		return
	}

	if err := s.validator.Validate(&form); err != nil {
		s.failLocked(err.Error(), err)
		s.mu.Unlock()
		return
	}

	s.beginLocked()
	s.mu.Unlock()

	c := form.Merge(model.Customer{Status: model.StatusActive})
	err := s.customerSvc.Create(ctx, c)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch {
	case service.IsCacheStale(err):
		logrus.WithError(err).Warn("customer added, cached list is outdated")
		s.succeedStaleLocked("Customer added successfully!", err)
	case err != nil:
		logrus.WithError(err).Error("failed to add customer")
		s.failLocked("Failed to add customer.", err)
	default:
		s.succeedLocked("Customer added successfully!")
	}
}
