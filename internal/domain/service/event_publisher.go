package service

import (
	"context"
	"time"
)

// TelemetryEvent records a notification lifecycle observation for async
// processing.
type TelemetryEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	EventType  string            `json:"event_type"` // e.g. notification_close, dispatch
	Tag        string            `json:"tag,omitempty"`
	Title      string            `json:"title,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTelemetryEvent publishes a telemetry event for async processing
	PublishTelemetryEvent(ctx context.Context, event *TelemetryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
