package model

// CustomerForm is the editable part of a customer, shared by the add and update flows
type CustomerForm struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Address      string  `json:"address" validate:"required"`
	Principal    float64 `json:"principal" validate:"min=1000"`
	InterestRate float64 `json:"interestRate" validate:"min=0.1"`
	TimePeriod   float64 `json:"timePeriod" validate:"min=1"`
}

// FormOf extracts editable fields of customer. Unavailable numbers become zero
// so the form shows an empty value rather than NaN.
func FormOf(c Customer) CustomerForm {
	return CustomerForm{
		Name:         c.Name,
		Address:      c.Address,
		Principal:    orZero(c.Principal),
		InterestRate: orZero(c.InterestRate),
		TimePeriod:   orZero(c.TimePeriod),
	}
}

// Merge overrides editable fields of c with form values, everything else is kept
func (f CustomerForm) Merge(c Customer) Customer {
	c.Name = f.Name
	c.Address = f.Address
	c.Principal = f.Principal
	c.InterestRate = f.InterestRate
	c.TimePeriod = f.TimePeriod
	return c
}

// Preview computes interest and total for the current form values
func (f CustomerForm) Preview() (interest, total float64) {
	interest = InterestAmount(f.Principal, f.InterestRate, f.TimePeriod)
	return interest, TotalAmount(f.Principal, interest)
}

func orZero(v float64) float64 {
	if !Available(v) {
		return 0
	}
	return v
}
