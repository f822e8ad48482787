package console

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/customers-console/internal/cache"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	apiMocks "github.com/umalmyha/customers-console/internal/client/mocks"
	"github.com/umalmyha/customers-console/internal/filter"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/service"
	svcMocks "github.com/umalmyha/customers-console/internal/service/mocks"
)

const testMessageTTL = 30 * time.Millisecond

func testCustomers(n int) []model.Customer {
	customers := make([]model.Customer, n)
	for i := range customers {
		customers[i] = model.Customer{
			ID:           strconv.Itoa(i + 1),
			Name:         "Customer " + strconv.Itoa(i+1),
			Principal:    float64(1000 * (i + 1)),
			InterestRate: 5,
			TimePeriod:   2,
			Status:       model.StatusActive,
		}
	}
	return customers
}

type listScreenTestSuite struct {
	suite.Suite
	ctx         context.Context
	customerSvc *svcMocks.CustomerService
	list        *ListScreen
}

func (s *listScreenTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.customerSvc = svcMocks.NewCustomerService(s.T())
	s.list = NewListScreen(s.customerSvc, 10, testMessageTTL)
}

func (s *listScreenTestSuite) TearDownTest() {
	s.list.Close()
}

func (s *listScreenTestSuite) openWith(customers []model.Customer) {
	snapshot := cache.Snapshot{Customers: customers, FetchedAt: time.Now()}
	s.customerSvc.On("Cached", s.ctx).Return(snapshot, true, nil).Once()
	s.list.Open(s.ctx, false)
}

func (s *listScreenTestSuite) TestOpenUsesCachedList() {
	s.openWith(testCustomers(23))

	view := s.list.View()
	s.Assert().Equal(3, view.TotalPages)
	s.Assert().Equal(23, view.TotalCount)
	s.Assert().Len(view.Rows, 10)
	s.Assert().False(view.FetchedAt.IsZero())
	s.customerSvc.AssertNotCalled(s.T(), "FindAll", mock.Anything, mock.Anything)
}

func (s *listScreenTestSuite) TestOpenLoadsWhenCacheIsEmpty() {
	s.customerSvc.On("Cached", s.ctx).Return(cache.Snapshot{}, false, nil).Once()
	s.customerSvc.On("FindAll", s.ctx, false).
		Return(cache.Snapshot{Customers: testCustomers(3), FetchedAt: time.Now()}, nil).Once()

	s.list.Open(s.ctx, false)

	view := s.list.View()
	s.Assert().Equal(Succeeded, view.State.Status)
	s.Assert().Len(view.Rows, 3)
	s.Assert().Equal(1, view.TotalPages)
}

func (s *listScreenTestSuite) TestOpenForceReload() {
	s.customerSvc.On("FindAll", s.ctx, true).
		Return(cache.Snapshot{Customers: testCustomers(2), FetchedAt: time.Now()}, nil).Once()

	s.list.Open(s.ctx, true)

	s.Assert().Len(s.list.View().Rows, 2)
	s.customerSvc.AssertNotCalled(s.T(), "Cached", mock.Anything)
}

func (s *listScreenTestSuite) TestLoadFailure() {
	s.customerSvc.On("FindAll", s.ctx, true).Return(cache.Snapshot{}, errors.New("connection refused")).Once()

	s.list.Load(s.ctx, true)

	state := s.list.State()
	s.Assert().Equal(Failed, state.Status)
	s.Assert().Equal("Failed to load customers.", state.Message)
	s.Assert().Error(state.Err)
}

func (s *listScreenTestSuite) TestSearchResetsPage() {
	s.openWith(testCustomers(23))
	s.Require().True(s.list.GoTo(3))

	s.list.Search(filter.Predicates{MinPrincipal: "5000", MaxPrincipal: "16000"})

	view := s.list.View()
	s.Assert().Equal(1, view.Page, "search must go back to first page")
	s.Assert().Equal(12, view.TotalCount)
	s.Assert().Equal(2, view.TotalPages)
	s.Assert().Equal("5", view.Rows[0].ID)

	s.list.ClearSearch()
	s.Assert().Equal(23, s.list.View().TotalCount)
}

func (s *listScreenTestSuite) TestSearchOnEmptyListIsNoop() {
	s.list.Search(filter.Predicates{Term: "john"})

	view := s.list.View()
	s.Assert().Empty(view.Rows)
	s.Assert().Equal(0, view.TotalPages)
	s.Assert().Equal("john", view.Predicates.Term, "predicates are kept for the next load")
}

func (s *listScreenTestSuite) TestNavigation() {
	s.openWith(testCustomers(23))

	s.Assert().False(s.list.GoTo(4), "page 4 does not exist")
	s.Assert().Equal(1, s.list.View().Page)
	s.Assert().False(s.list.Previous())
	s.Assert().True(s.list.Next())
	s.Assert().True(s.list.GoTo(3))
	s.Assert().Len(s.list.View().Rows, 3)
}

func (s *listScreenTestSuite) TestDeleteRemovesRecordAndClampsPage() {
	s.openWith(testCustomers(21))
	s.Require().True(s.list.GoTo(3))

	s.customerSvc.On("DeleteByID", s.ctx, "21").Return(nil).Once()
	s.list.Delete(s.ctx, "21")

	view := s.list.View()
	s.Assert().Equal(Succeeded, view.State.Status)
	s.Assert().Equal("Record deleted successfully with ID: 21", view.State.Message)
	s.Assert().Equal(20, view.TotalCount)
	s.Assert().Equal(2, view.TotalPages)
	s.Assert().Equal(2, view.Page, "page must be clamped to the new last page")

	s.T().Log("success message is cleared after a while")
	{
		s.Assert().Eventually(func() bool {
			return s.list.State().Message == ""
		}, time.Second, 5*time.Millisecond)
		s.Assert().Equal(Succeeded, s.list.State().Status)
	}
}

func (s *listScreenTestSuite) TestDeleteRepeatedReplacesMessageTimer() {
	s.list = NewListScreen(s.customerSvc, 10, 80*time.Millisecond)
	s.openWith(testCustomers(5))

	s.customerSvc.On("DeleteByID", s.ctx, "1").Return(nil).Once()
	s.customerSvc.On("DeleteByID", s.ctx, "2").Return(nil).Once()

	s.list.Delete(s.ctx, "1")
	time.Sleep(50 * time.Millisecond)
	s.list.Delete(s.ctx, "2")
	time.Sleep(50 * time.Millisecond)

	s.Assert().Equal("Record deleted successfully with ID: 2", s.list.State().Message,
		"first timer must not clear message of the second delete")
	s.Assert().Eventually(func() bool {
		return s.list.State().Message == ""
	}, time.Second, 5*time.Millisecond)
}

func (s *listScreenTestSuite) TestDeleteFailureKeepsList() {
	s.openWith(testCustomers(5))
	s.customerSvc.On("DeleteByID", s.ctx, "3").Return(errors.New("503")).Once()

	s.list.Delete(s.ctx, "3")

	view := s.list.View()
	s.Assert().Equal(Failed, view.State.Status)
	s.Assert().Equal("Failed to delete customer.", view.State.Message)
	s.Assert().Equal(5, view.TotalCount, "nothing must be removed before backend confirmed delete")
}

func (s *listScreenTestSuite) TestDeleteDoesNotTouchSharedSlice() {
	customers := testCustomers(3)
	s.openWith(customers)
	s.customerSvc.On("DeleteByID", s.ctx, "1").Return(nil).Once()

	s.list.Delete(s.ctx, "1")

	s.Assert().Equal("1", customers[0].ID, "cached slice must stay intact")
	s.Assert().Equal(2, s.list.View().TotalCount)
}

func (s *listScreenTestSuite) TestClosedScreenDiscardsCompletion() {
	s.openWith(testCustomers(3))
	s.customerSvc.On("DeleteByID", s.ctx, "2").Run(func(mock.Arguments) {
		s.list.Close()
	}).Return(nil).Once()

	s.list.Delete(s.ctx, "2")

	view := s.list.View()
	s.Assert().Equal(3, view.TotalCount, "completion after close must be ignored")
	s.Assert().Empty(view.State.Message)
}

func (s *listScreenTestSuite) TestMarkStale() {
	s.openWith(testCustomers(1))
	s.list.MarkStale()
	s.Assert().True(s.list.View().Stale)

	s.openWith(testCustomers(1))
	s.Assert().False(s.list.View().Stale, "fresh list is not stale")
}

// delete of an id the backend returned as a number, going through the real service and cache
func (s *listScreenTestSuite) TestDeleteInvalidatesSharedCache() {
	api := apiMocks.NewCustomerAPI(s.T())
	customerCache := cache.NewMemoryCustomerListCache()
	list := NewListScreen(service.NewCustomerService(api, customerCache, time.Second), 10, testMessageTTL)
	defer list.Close()

	api.On("GetAll", s.ctx).Return([]model.WireRecord{
		{model.WireID: 6.0, model.WireName: "Ann"},
		{model.WireID: 7.0, model.WireName: "Bob"},
	}, nil).Once()
	api.On("DeleteByID", s.ctx, "7").Return(nil).Once()

	list.Open(s.ctx, false)
	s.Require().Equal(2, list.View().TotalCount)

	list.Delete(s.ctx, "7")

	_, ok, _ := customerCache.Read(s.ctx)
	s.Assert().False(ok, "delete must invalidate the shared cache")

	view := list.View()
	s.Require().Len(view.Rows, 1)
	s.Assert().Equal("6", view.Rows[0].ID)
}

func (s *listScreenTestSuite) TestDeleteWithOutdatedCache() {
	s.openWith(testCustomers(3))
	s.customerSvc.On("DeleteByID", s.ctx, "2").Return(apperrors.NewCacheStaleErr("delete", errors.New("redis down"))).Once()

	s.list.Delete(s.ctx, "2")

	view := s.list.View()
	s.Assert().Equal(Succeeded, view.State.Status, "record is gone on backend")
	s.Assert().Equal("Record deleted successfully with ID: 2. Cached list could not be refreshed, reload it.", view.State.Message)
	s.Assert().Error(view.State.Err)
	s.Assert().Equal(2, view.TotalCount, "record must be dropped locally")
	s.Assert().True(view.Stale, "cached list still holds deleted record")
}

func (s *listScreenTestSuite) TestWatchSharedCache() {
	api := apiMocks.NewCustomerAPI(s.T())
	customerCache := cache.NewMemoryCustomerListCache()
	list := NewListScreen(service.NewCustomerService(api, customerCache, time.Second), 10, testMessageTTL)
	defer list.Close()

	api.On("GetAll", s.ctx).Return([]model.WireRecord{
		{model.WireID: 6.0, model.WireName: "Ann"},
	}, nil)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	changes, unsubscribe := customerCache.Subscribe()
	watched := make(chan struct{})
	go func() {
		list.Watch(ctx, changes)
		close(watched)
	}()

	s.T().Log("own loads are not reported as changes")
	{
		for i := 0; i < 10; i++ {
			list.Load(s.ctx, true)
			time.Sleep(5 * time.Millisecond)
			s.Require().False(list.View().Stale, "fresh list must not be stale after load %d", i)
		}
	}

	s.T().Log("newer snapshot written elsewhere")
	{
		newer := cache.Snapshot{Customers: testCustomers(2), FetchedAt: time.Now().Add(time.Minute)}
		s.Require().NoError(customerCache.Write(s.ctx, newer))
		s.Assert().Eventually(func() bool { return list.View().Stale }, time.Second, 5*time.Millisecond)
	}

	s.T().Log("reload absorbs the change")
	{
		list.Load(s.ctx, true)
		time.Sleep(5 * time.Millisecond)
		s.Assert().False(list.View().Stale)
	}

	s.T().Log("invalidated elsewhere")
	{
		s.Require().NoError(customerCache.Invalidate(s.ctx))
		s.Assert().Eventually(func() bool { return list.View().Stale }, time.Second, 5*time.Millisecond)
	}

	unsubscribe()
	<-watched
}

func TestListScreenTestSuite(t *testing.T) {
	suite.Run(t, new(listScreenTestSuite))
}
