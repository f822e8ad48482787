package console

import (
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/filter"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/pagination"
	"github.com/umalmyha/customers-console/internal/service"
	"time"
)

// ListView is everything the list screen renders
type ListView struct {
	Rows       []model.Customer
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
	FetchedAt  time.Time
	Predicates filter.Predicates
	Stale      bool
	State      State
}

// ListScreen shows the paginated, filtered customer list. It keeps its own working
// copy of the list, so a delete is reflected immediately without waiting for a refetch.
type ListScreen struct {
	screen
	customerSvc service.CustomerService
	all         []model.Customer
	filtered    []model.Customer
	predicates  filter.Predicates
	cursor      *pagination.Cursor
	fetchedAt   time.Time
	stale       bool
	now         func() time.Time
}

func NewListScreen(customerSvc service.CustomerService, pageSize int, messageTTL time.Duration) *ListScreen {
	l := &ListScreen{
		customerSvc: customerSvc,
		cursor:      pagination.NewCursor(pageSize),
		now:         time.Now,
	}
	l.init(messageTTL)
	return l
}

// Open shows cached list when there is one, otherwise loads it
func (l *ListScreen) Open(ctx context.Context, forceReload bool) {
	if !forceReload {
		snapshot, ok, err := l.customerSvc.Cached(ctx)
		if err == nil && ok && len(snapshot.Customers) > 0 {
			l.mu.Lock()
			defer l.mu.Unlock()
			if !l.closed {
				l.applyLocked(snapshot.Customers, snapshot.FetchedAt)
			}
			return
		}
	}
	l.Load(ctx, forceReload)
}

// Load reads the list through the cache, forceReload always asks the backend.
// Overlapping loads are not fenced, the last one to complete wins.
func (l *ListScreen) Load(ctx context.Context, forceReload bool) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.beginLocked()
	l.mu.Unlock()

	snapshot, err := l.customerSvc.FindAll(ctx, forceReload)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}

	if err != nil {
		logrus.WithError(err).Error("failed to load customers")
		l.failLocked("Failed to load customers.", err)
		return
	}

	l.applyLocked(snapshot.Customers, snapshot.FetchedAt)
	l.state.Status = Succeeded
}

// Search filters the working list and goes back to the first page.
// Nothing happens while the list is empty.
func (l *ListScreen) Search(p filter.Predicates) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.predicates = p
	if len(l.all) == 0 {
		return
	}
	l.searchLocked()
}

func (l *ListScreen) ClearSearch() {
	l.Search(filter.Predicates{})
}

func (l *ListScreen) Next() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor.Next()
}

func (l *ListScreen) Previous() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor.Previous()
}

func (l *ListScreen) GoTo(page int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor.GoTo(page)
}

// Delete removes customer remotely. Only after the backend confirmed it the record
// is dropped from the working list and the page is clamped to the new last page.
func (l *ListScreen) Delete(ctx context.Context, id string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.beginLocked()
	l.mu.Unlock()

	err := l.customerSvc.DeleteByID(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}

	if err != nil && !service.IsCacheStale(err) {
		logrus.WithFields(logrus.Fields{"id": id, "error": err}).Error("failed to delete customer")
		l.failLocked("Failed to delete customer.", err)
		return
	}

	l.all = withoutID(l.all, id)
	l.filtered = withoutID(l.filtered, id)
	l.cursor.SetCount(len(l.filtered))
	l.fetchedAt = l.now()

	msg := fmt.Sprintf("Record deleted successfully with ID: %s", id)
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": id, "error": err}).Warn("customer deleted, cached list is outdated")
		l.stale = true
		l.succeedStaleLocked(msg+".", err)
		return
	}
	l.succeedLocked(msg)
}

// MarkStale flags that the shared list changed elsewhere
func (l *ListScreen) MarkStale() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stale = true
}

// MarkStaleIfNewer flags the list stale when shared cache was dropped or holds
// a snapshot fetched after the one on screen. Own loads are ignored this way.
func (l *ListScreen) MarkStaleIfNewer(fetchedAt time.Time, present bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if present && !fetchedAt.After(l.fetchedAt) {
		return
	}
	l.stale = true
}

// Watch follows shared cache changes until changes is closed or ctx is done
func (l *ListScreen) Watch(ctx context.Context, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}

			snapshot, present, err := l.customerSvc.Cached(ctx)
			if err != nil {
				logrus.WithError(err).Warn("failed to read customers cache")
				continue
			}
			l.MarkStaleIfNewer(snapshot.FetchedAt, present)
		}
	}
}

func (l *ListScreen) View() ListView {
	l.mu.Lock()
	defer l.mu.Unlock()

	page := pagination.Page(l.filtered, l.cursor.PageSize(), l.cursor.Page())
	rows := make([]model.Customer, len(page))
	copy(rows, page)

	return ListView{
		Rows:       rows,
		Page:       l.cursor.Page(),
		PageSize:   l.cursor.PageSize(),
		TotalPages: l.cursor.TotalPages(),
		TotalCount: len(l.filtered),
		FetchedAt:  l.fetchedAt,
		Predicates: l.predicates,
		Stale:      l.stale,
		State:      l.state,
	}
}

func (l *ListScreen) applyLocked(customers []model.Customer, fetchedAt time.Time) {
	l.all = customers
	l.fetchedAt = fetchedAt
	l.stale = false

	if l.predicates.IsEmpty() {
		l.filtered = l.all
		l.cursor.SetCount(len(l.filtered))
		return
	}
	l.searchLocked()
}

func (l *ListScreen) searchLocked() {
	l.filtered = filter.Apply(l.all, l.predicates)
	l.cursor.SetCount(len(l.filtered))
	l.cursor.Reset()
}

// withoutID returns new slice, customers may be shared with the cache
func withoutID(customers []model.Customer, id string) []model.Customer {
	res := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if !model.SameID(c.ID, id) {
			res = append(res, c)
		}
	}
	return res
}
