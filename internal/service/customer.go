package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/cache"
	"github.com/umalmyha/customers-console/internal/client"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/mapper"
	"github.com/umalmyha/customers-console/internal/model"
	"time"
)

// DefaultLookupTimeout bounds detail lookup made before editing a customer
const DefaultLookupTimeout = 3 * time.Second

type CustomerService interface {
	FindAll(context.Context, bool) (cache.Snapshot, error)
	Fetch(context.Context) (cache.Snapshot, error)
	Cached(context.Context) (cache.Snapshot, bool, error)
	FindByID(context.Context, string) (model.Customer, error)
	LookupForUpdate(context.Context, string) (model.Customer, error)
	Create(context.Context, model.Customer) error
	Update(context.Context, string, model.Customer) error
	DeleteByID(context.Context, string) error
	InvalidateCache(context.Context) error
	AskAgent(context.Context, string) (model.AgentAnswer, error)
}

type customerService struct {
	customerAPI   client.CustomerAPI
	customerCache cache.CustomerListCache
	lookupTimeout time.Duration
	now           func() time.Time
}

func NewCustomerService(customerAPI client.CustomerAPI, customerCache cache.CustomerListCache, lookupTimeout time.Duration) CustomerService {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	return &customerService{
		customerAPI:   customerAPI,
		customerCache: customerCache,
		lookupTimeout: lookupTimeout,
		now:           time.Now,
	}
}

// FindAll serves cached list when present, otherwise fetches it from backend.
// Unreadable cache is treated as empty.
func (s *customerService) FindAll(ctx context.Context, forceReload bool) (cache.Snapshot, error) {
	if !forceReload {
		snapshot, ok, err := s.customerCache.Read(ctx)
		if err != nil {
			logrus.WithError(err).Warn("failed to read customers from cache, fetching from backend")
		}
		if ok && err == nil {
			return snapshot, nil
		}
	}
	return s.Fetch(ctx)
}

// Fetch always calls backend, only successful fetch populates the cache
func (s *customerService) Fetch(ctx context.Context) (cache.Snapshot, error) {
	records, err := s.customerAPI.GetAll(ctx)
	if err != nil {
		return cache.Snapshot{}, err
	}

	now := s.now()
	snapshot := cache.Snapshot{Customers: mapper.ToCanonicalList(records, now), FetchedAt: now}
	if err := s.customerCache.Write(ctx, snapshot); err != nil {
		logrus.WithError(err).Warn("failed to write customers to cache")
	}

	logrus.WithField("count", len(snapshot.Customers)).Debug("customers fetched")
	return snapshot, nil
}

func (s *customerService) Cached(ctx context.Context) (cache.Snapshot, bool, error) {
	return s.customerCache.Read(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id string) (model.Customer, error) {
	record, err := s.customerAPI.GetByID(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}
	return mapper.ToCanonical(record, s.now()), nil
}

// LookupForUpdate gives the detail lookup a short timeout. On any failure the full
// list is fetched and searched locally, a failed fallback is reported as not found.
func (s *customerService) LookupForUpdate(ctx context.Context, id string) (model.Customer, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	c, err := s.FindByID(lookupCtx, id)
	if err == nil {
		return c, nil
	}

	logrus.WithFields(logrus.Fields{"id": id, "error": err}).Warn("customer lookup failed, searching full list")

	snapshot, err := s.Fetch(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": id, "error": err}).Warn("customer list fallback failed")
		return model.Customer{}, apperrors.NewNotFoundErr(fmt.Sprintf("Customer with ID %q not found.", id))
	}

	for _, candidate := range snapshot.Customers {
		if model.SameID(candidate.ID, id) {
			return candidate, nil
		}
	}
	return model.Customer{}, apperrors.NewNotFoundErr(fmt.Sprintf("Customer with ID %q not found.", id))
}

func (s *customerService) Create(ctx context.Context, c model.Customer) error {
	if err := s.customerAPI.Insert(ctx, mapper.ToCreatePayload(c)); err != nil {
		return err
	}
	return s.invalidateAfter(ctx, "create")
}

func (s *customerService) Update(ctx context.Context, id string, c model.Customer) error {
	if err := s.customerAPI.Update(ctx, id, mapper.ToUpdatePayload(c)); err != nil {
		return err
	}
	return s.invalidateAfter(ctx, "update")
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	if err := s.customerAPI.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.invalidateAfter(ctx, "delete")
}

func (s *customerService) InvalidateCache(ctx context.Context) error {
	if err := s.customerCache.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate customers cache - %w", err)
	}
	logrus.Info("customers cache invalidated on request")
	return nil
}

func (s *customerService) AskAgent(ctx context.Context, question string) (model.AgentAnswer, error) {
	if question == "" {
		return model.AgentAnswer{}, apperrors.NewValidationErr("question", "question must not be empty")
	}
	return s.customerAPI.AskAgent(ctx, question)
}

// invalidateAfter drops cached list once a mutation succeeded remotely. A stale cache
// must not outlive the mutation, so invalidation failure is reported to the caller.
func (s *customerService) invalidateAfter(ctx context.Context, op string) error {
	if err := s.customerCache.Invalidate(ctx); err != nil {
		logrus.WithFields(logrus.Fields{"op": op, "error": err}).Error("customers cache invalidation failed")
		return apperrors.NewCacheStaleErr(op, err)
	}
	logrus.WithField("op", op).Debug("customers cache invalidated")
	return nil
}

// IsCacheStale reports whether mutation went through remotely but cached list is outdated
func IsCacheStale(err error) bool {
	var stale *apperrors.CacheStaleErr
	return errors.As(err, &stale)
}

// IsNotFound reports whether err means the customer does not exist
func IsNotFound(err error) bool {
	var notFound *apperrors.NotFoundErr
	return errors.As(err, &notFound)
}
