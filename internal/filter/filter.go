// Package filter narrows customer list down by search predicates
package filter

import (
	"github.com/umalmyha/customers-console/internal/model"
	"math"
	"strings"
)

// Predicates is a set of search constraints combined with AND.
// Numeric bounds are kept as raw input, blank or non-numeric bound imposes no constraint.
type Predicates struct {
	Term            string `json:"search" query:"search"`
	Status          string `json:"status" query:"status"`
	MinPrincipal    string `json:"minPrincipal" query:"minPrincipal"`
	MaxPrincipal    string `json:"maxPrincipal" query:"maxPrincipal"`
	MaxInterestRate string `json:"maxInterestRate" query:"maxInterestRate"`
}

// IsEmpty reports whether no predicate is set
func (p Predicates) IsEmpty() bool {
	return p == Predicates{}
}

// Apply returns customers matching all predicates in input order, input is not modified
func Apply(customers []model.Customer, p Predicates) []model.Customer {
	m := newMatcher(p)

	filtered := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if m.match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

type matcher struct {
	term     string
	rawTerm  string
	status   string
	minPrinc float64
	maxPrinc float64
	maxRate  float64
}

func newMatcher(p Predicates) matcher {
	return matcher{
		term:     strings.ToLower(p.Term),
		rawTerm:  p.Term,
		status:   strings.ToLower(p.Status),
		minPrinc: bound(p.MinPrincipal),
		maxPrinc: bound(p.MaxPrincipal),
		maxRate:  bound(p.MaxInterestRate),
	}
}

func (m matcher) match(c model.Customer) bool {
	return m.matchTerm(c) && m.matchStatus(c) && m.matchPrincipal(c) && m.matchRate(c)
}

// ids are digit strings, so term is compared against them as typed
func (m matcher) matchTerm(c model.Customer) bool {
	if m.rawTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), m.term) ||
		strings.Contains(strings.ToLower(c.Email), m.term) ||
		strings.Contains(model.NormalizeID(c.ID), m.rawTerm)
}

func (m matcher) matchStatus(c model.Customer) bool {
	return m.status == "" || strings.ToLower(c.Status) == m.status
}

func (m matcher) matchPrincipal(c model.Customer) bool {
	if !math.IsNaN(m.minPrinc) && !(c.Principal >= m.minPrinc) {
		return false
	}
	if !math.IsNaN(m.maxPrinc) && !(c.Principal <= m.maxPrinc) {
		return false
	}
	return true
}

func (m matcher) matchRate(c model.Customer) bool {
	return math.IsNaN(m.maxRate) || c.InterestRate <= m.maxRate
}

// bound parses raw input, NaN means no constraint
func bound(raw string) float64 {
	if raw == "" {
		return math.NaN()
	}
	return model.ParseFloat(raw)
}
