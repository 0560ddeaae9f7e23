// Package service defines interfaces for the platform and provider
// capabilities the use cases depend on.
package service

import (
	"context"

	"twashell/internal/domain/entity"
)

// Messenger is the push provider's send API.
type Messenger interface {
	// Send delivers one message to a single registration token and returns the
	// provider message ID.
	Send(ctx context.Context, token, title, body string, data map[string]string) (string, error)

	// SendMulticast delivers one message to up to 500 tokens and reports
	// per-token results. One attempt per call.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*entity.DispatchOutcome, error)
}
