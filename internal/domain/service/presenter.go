package service

import (
	"context"

	"twashell/internal/domain/entity"
)

// NotificationPresenter shows notifications on the platform surface.
type NotificationPresenter interface {
	// Show presents a notification. A second Show with the same tag replaces
	// the first.
	Show(ctx context.Context, title string, opts *entity.PresentOptions) error

	// Close dismisses the presented notification with the given tag, if any.
	Close(ctx context.Context, tag string) error
}
