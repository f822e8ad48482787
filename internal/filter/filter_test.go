package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customers-console/internal/model"
)

func testCustomers() []model.Customer {
	return []model.Customer{
		{ID: "1", Name: "John Walls", Email: "john@mail.com", Principal: 500, InterestRate: 4, Status: "active"},
		{ID: "12", Name: "Ann Smith", Email: "ann@corp.io", Principal: 1500, InterestRate: 7.5, Status: "Pending"},
		{ID: "23", Name: "Bob Stone", Email: "", Principal: 5000, InterestRate: 12, Status: "inactive"},
		{ID: "31", Name: "Kate Johnson", Email: "kate@MAIL.com", Principal: 6000, InterestRate: 3, Status: "active"},
	}
}

func ids(customers []model.Customer) []string {
	res := make([]string, 0, len(customers))
	for _, c := range customers {
		res = append(res, c.ID)
	}
	return res
}

func TestApplyEmptyPredicatesIsIdentity(t *testing.T) {
	customers := testCustomers()
	require.True(t, Predicates{}.IsEmpty())
	assert.Equal(t, customers, Apply(customers, Predicates{}))
	assert.Empty(t, Apply(nil, Predicates{}))
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		p    Predicates
		want []string
	}{
		{"term matches name case-insensitively", Predicates{Term: "JOHN"}, []string{"1", "31"}},
		{"term matches email", Predicates{Term: "mail.com"}, []string{"1", "31"}},
		{"term matches id substring", Predicates{Term: "3"}, []string{"23", "31"}},
		{"status equality ignores case", Predicates{Status: "PENDING"}, []string{"12"}},
		{"status is not substring", Predicates{Status: "act"}, []string{}},
		{"principal range inclusive", Predicates{MinPrincipal: "1000", MaxPrincipal: "5000"}, []string{"12", "23"}},
		{"min principal only", Predicates{MinPrincipal: "5000"}, []string{"23", "31"}},
		{"max interest rate", Predicates{MaxInterestRate: "7.5"}, []string{"1", "12", "31"}},
		{"non-numeric rate ignored", Predicates{MaxInterestRate: "abc"}, []string{"1", "12", "23", "31"}},
		{"non-numeric principal bounds ignored", Predicates{MinPrincipal: "x", MaxPrincipal: "-"}, []string{"1", "12", "23", "31"}},
		{"numeric prefix used as bound", Predicates{MaxPrincipal: "1500usd"}, []string{"1", "12"}},
		{"all combined", Predicates{Term: "o", Status: "active", MinPrincipal: "600"}, []string{"31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(testCustomers(), tt.p)))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	customers := testCustomers()
	before := testCustomers()

	_ = Apply(customers, Predicates{Term: "ann", MinPrincipal: "100"})
	assert.Equal(t, before, customers)
}

func TestApplyUnavailablePrincipal(t *testing.T) {
	customers := []model.Customer{{ID: "1", Principal: math.NaN(), InterestRate: math.NaN()}}

	assert.Len(t, Apply(customers, Predicates{Term: "1"}), 1, "NaN fields must not affect other predicates")
	assert.Empty(t, Apply(customers, Predicates{MinPrincipal: "0"}), "unavailable principal never satisfies a bound")
	assert.Empty(t, Apply(customers, Predicates{MaxInterestRate: "100"}), "unavailable rate never satisfies a bound")
}
