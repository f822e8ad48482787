// Package mapper translates customers between the backend wire shape and the canonical model
package mapper

import (
	"github.com/umalmyha/customers-console/internal/model"
	"time"
)

const joinDateLayout = "2006-01-02"

// ToCanonical maps backend record to customer. Numeric fields which are missing
// or not numbers become NaN, they are never defaulted to zero.
func ToCanonical(w model.WireRecord, now time.Time) model.Customer {
	status := w.String(model.WireStatus)
	if status == "" {
		status = model.StatusActive
	}

	joinDate := w.String(model.WireJoinDate)
	if joinDate == "" {
		joinDate = now.Format(joinDateLayout)
	}

	return model.Customer{
		ID:             model.NormalizeID(w[model.WireID]),
		Name:           w.String(model.WireName),
		Principal:      model.ParseFloat(w[model.WirePrincipal]),
		InterestRate:   model.ParseFloat(w[model.WireRate]),
		TimePeriod:     model.ParseFloat(w[model.WireTime]),
		InterestAmount: model.ParseFloat(w[model.WireInterestAmount]),
		TotalAmount:    model.ParseFloat(w[model.WireTotalAmount]),
		Status:         status,
		JoinDate:       joinDate,
		Address:        w.String(model.WireAddress),
	}
}

// ToCanonicalList maps every record of the list keeping order
func ToCanonicalList(records []model.WireRecord, now time.Time) []model.Customer {
	customers := make([]model.Customer, 0, len(records))
	for _, w := range records {
		customers = append(customers, ToCanonical(w, now))
	}
	return customers
}

// ToWire builds the full backend representation of customer
func ToWire(c model.Customer) model.WireRecord {
	return model.WireRecord{
		model.WireID:             c.ID,
		model.WireName:           c.Name,
		model.WirePrincipal:      c.Principal,
		model.WireRate:           c.InterestRate,
		model.WireTime:           c.TimePeriod,
		model.WireInterestAmount: c.InterestAmount,
		model.WireTotalAmount:    c.TotalAmount,
		model.WireAddress:        c.Address,
	}
}

// ToCreatePayload renames customer fields into insert endpoint keys
func ToCreatePayload(c model.Customer) model.CreatePayload {
	return model.CreatePayload{
		CustomerName:    c.Name,
		CustomerAddress: c.Address,
		PrincipalAmount: c.Principal,
		Rate:            c.InterestRate,
		Time:            c.TimePeriod,
	}
}

// ToUpdatePayload renames customer fields into update endpoint keys
func ToUpdatePayload(c model.Customer) model.UpdatePayload {
	return model.UpdatePayload{
		CustomerName:    c.Name,
		CustomerAddress: c.Address,
		PrincipalAmount: c.Principal,
		InterestRate:    c.InterestRate,
		Time:            c.TimePeriod,
	}
}
