package entity

// SendReceipt is the per-token status of a multicast send.
type SendReceipt struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DispatchOutcome aggregates a multicast send. One attempt per call; no retry
// state is modeled.
type DispatchOutcome struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Responses    []SendReceipt `json:"responses"`
}
