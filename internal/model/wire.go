package model

// Keys of the backend customer representation
const (
	WireID             = "customerId"
	WireName           = "customerName"
	WirePrincipal      = "principalAmount"
	WireRate           = "rate"
	WireTime           = "time"
	WireInterestAmount = "rateofInterstAmount"
	WireTotalAmount    = "totalAmount"
	WireAddress        = "customerAddress"
	WireStatus         = "status"
	WireJoinDate       = "joinDate"
)

// WireRecord is the backend's raw customer object
type WireRecord map[string]any

// String returns value under key when it is a string
func (w WireRecord) String(key string) string {
	s, _ := w[key].(string)
	return s
}

// CreatePayload is the body expected by the insert endpoint
type CreatePayload struct {
	CustomerName    string  `json:"customerName"`
	CustomerAddress string  `json:"customerAddress"`
	PrincipalAmount float64 `json:"principalAmount"`
	Rate            float64 `json:"rate"`
	Time            float64 `json:"time"`
}

// UpdatePayload is the body expected by the update endpoint
type UpdatePayload struct {
	CustomerName    string  `json:"customerName"`
	CustomerAddress string  `json:"customerAddress"`
	PrincipalAmount float64 `json:"principalAmount"`
	InterestRate    float64 `json:"interestRate"`
	Time            float64 `json:"time"`
}

// AgentQuestion is the body of the agent query
type AgentQuestion struct {
	Question string `json:"question"`
}

// AgentAnswer is the reply of the agent
type AgentAnswer struct {
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}
