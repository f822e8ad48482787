package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	svcMocks "github.com/umalmyha/customers-console/internal/service/mocks"
)

func TestStatusTone(t *testing.T) {
	cases := map[string]Tone{
		"active":    ToneSuccess,
		"Completed": ToneSuccess,
		"pending":   ToneWarning,
		"PROCESSED": ToneWarning,
		"inactive":  ToneError,
		"archived":  ToneNeutral,
		"":          ToneNeutral,
	}
	for status, tone := range cases {
		assert.Equal(t, tone, StatusTone(status), "status %q", status)
	}
}

func TestLookupRejectsInvalidID(t *testing.T) {
	customerSvc := svcMocks.NewCustomerService(t)
	screen := NewLookupScreen(customerSvc)
	ctx := context.Background()

	screen.Search(ctx, "  ")
	assert.Equal(t, "Please enter a customer ID", screen.State().Message)

	screen.Search(ctx, "12a")
	state := screen.State()
	assert.Equal(t, Failed, state.Status)
	assert.Equal(t, "Customer ID must contain only numbers", state.Message)

	var validationErr *apperrors.ValidationErr
	assert.True(t, errors.As(state.Err, &validationErr))
	customerSvc.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestLookupFound(t *testing.T) {
	customerSvc := svcMocks.NewCustomerService(t)
	screen := NewLookupScreen(customerSvc)
	ctx := context.Background()

	customerSvc.On("FindByID", ctx, "42").Return(model.Customer{
		ID: "42", Name: "John", Principal: 2000, InterestRate: 5, TimePeriod: 3, Status: "pending",
	}, nil).Once()

	screen.Search(ctx, "42")

	view := screen.View()
	require.NotNil(t, view.Customer)
	assert.Equal(t, Succeeded, view.State.Status)
	assert.Equal(t, "John", view.Customer.Name)
	assert.InDelta(t, 300, view.Interest, 1e-9)
	assert.InDelta(t, 2300, view.Total, 1e-9)
	assert.Equal(t, ToneWarning, view.Tone)
}

func TestLookupFailures(t *testing.T) {
	customerSvc := svcMocks.NewCustomerService(t)
	screen := NewLookupScreen(customerSvc)
	ctx := context.Background()

	t.Log("not found")
	{
		customerSvc.On("FindByID", ctx, "7").Return(model.Customer{}, apperrors.NewNotFoundErr("missing")).Once()
		screen.Search(ctx, "7")
		assert.Equal(t, `No Record found With This Id: "7"`, screen.State().Message)
		assert.Nil(t, screen.View().Customer)
	}

	t.Log("backend failure")
	{
		customerSvc.On("FindByID", ctx, "8").Return(model.Customer{}, errors.New("backend not responding")).Once()
		screen.Search(ctx, "8")
		assert.Equal(t, "Error: backend not responding", screen.State().Message)
	}
}
