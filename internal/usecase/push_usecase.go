package usecase

import (
	"context"

	"twashell/internal/domain/entity"
)

// PushUsecase receives background push/message events, presents notifications
// and routes user interaction back to the application.
type PushUsecase interface {
	// HandleBackgroundMessage presents a provider message received while the
	// application is backgrounded.
	HandleBackgroundMessage(ctx context.Context, payload *entity.PushPayload) error

	// HandlePush handles a generic push event. A payload that fails to parse
	// yields a default notification rather than a failed event.
	HandlePush(ctx context.Context, raw []byte) error

	// HandleNotificationClick closes the notification and routes the click:
	// the close action does nothing further; any other action focuses an open
	// same-origin client or opens a new window. Errors are captured and
	// logged, never propagated.
	HandleNotificationClick(ctx context.Context, event *entity.ClickEvent) error

	// HandleNotificationClose is a side-effect-free telemetry hook.
	HandleNotificationClose(ctx context.Context, event *entity.CloseEvent)
}
