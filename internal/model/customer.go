package model

import (
	"math"
	"strconv"
	"strings"
)

// Status values known to the console. The set is open, the backend may send anything.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Customer is the canonical in-memory customer loan record.
// Numeric fields hold NaN when the backend value is missing or not a number.
type Customer struct {
	ID             string  `json:"id" msgpack:"id"`
	Name           string  `json:"name" msgpack:"name"`
	Email          string  `json:"email" msgpack:"email"`
	Phone          string  `json:"phone" msgpack:"phone"`
	Principal      float64 `json:"principal" msgpack:"principal"`
	InterestRate   float64 `json:"interestRate" msgpack:"interestRate"`
	TimePeriod     float64 `json:"timePeriod" msgpack:"timePeriod"`
	Status         string  `json:"status" msgpack:"status"`
	InterestAmount float64 `json:"interestAmount" msgpack:"interestAmount"`
	TotalAmount    float64 `json:"totalAmount" msgpack:"totalAmount"`
	JoinDate       string  `json:"joinDate" msgpack:"joinDate"`
	Address        string  `json:"address" msgpack:"address"`
	City           string  `json:"city" msgpack:"city"`
	State          string  `json:"state" msgpack:"state"`
	ZipCode        string  `json:"zipCode" msgpack:"zipCode"`
	DateOfBirth    string  `json:"dateOfBirth" msgpack:"dateOfBirth"`
}

// Recompute derives interest and total amounts from principal, rate and time
func (c *Customer) Recompute() {
	c.InterestAmount = InterestAmount(c.Principal, c.InterestRate, c.TimePeriod)
	c.TotalAmount = TotalAmount(c.Principal, c.InterestAmount)
}

// InterestAmount is simple interest, rate is a percentage per time period
func InterestAmount(principal, rate, time float64) float64 {
	return principal * (rate / 100) * time
}

// TotalAmount is principal plus interest
func TotalAmount(principal, interest float64) float64 {
	return principal + interest
}

// NormalizeID converts identifier of any wire type to its string form.
func NormalizeID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case interface{ String() string }:
		return v.String()
	default:
		return ""
	}
}

// SameID compares identifiers tolerating string vs number mismatch
func SameID(a, b any) bool {
	return NormalizeID(a) == NormalizeID(b)
}

// IsDigits reports whether s is a non-empty string of ASCII digits
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

// Available reports whether numeric value carries a real number
func Available(v float64) bool {
	return !math.IsNaN(v)
}
