package usecase

import (
	"context"

	"twashell/internal/domain/entity"
)

// DispatchInput addresses one send. Token takes precedence over Tokens when
// both are present, matching the gateway's check order.
type DispatchInput struct {
	Token   string            `json:"token,omitempty"`
	Tokens  []string          `json:"tokens,omitempty"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// DispatchResult mirrors the provider acknowledgment: MessageID for a single
// send, the aggregate fields for a multicast.
type DispatchResult struct {
	Success      bool                 `json:"success"`
	MessageID    string               `json:"messageId,omitempty"`
	SuccessCount int                  `json:"successCount,omitempty"`
	FailureCount int                  `json:"failureCount,omitempty"`
	Responses    []entity.SendReceipt `json:"responses,omitempty"`
}

// DispatchUsecase forwards a notification to the push provider's send API.
type DispatchUsecase interface {
	// Dispatch performs one send attempt. Provider-level failures return an
	// AppError carrying the underlying detail.
	Dispatch(ctx context.Context, input *DispatchInput) (*DispatchResult, error)
}
