package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/service"
	"twashell/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultTitle = "새 알림"
	defaultBody  = "새로운 메시지가 도착했습니다."

	defaultIcon = "/icons/icon-192x192.svg"

	// Notification replacement tags
	tagFCM     = "fcm-notification"
	tagPush    = "push-notification"
	tagDefault = "default-notification"
)

// vibrationPattern is the fixed pattern attached to presented notifications.
var vibrationPattern = []int{200, 100, 200}

type pushService struct {
	logger    *slog.Logger
	origin    string
	presenter service.NotificationPresenter
	clients   service.ClientRegistry
	publisher service.EventPublisher
}

// NewPushService creates the push reception and notification presenter service.
func NewPushService(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	presenter service.NotificationPresenter,
	clients service.ClientRegistry,
	publisher service.EventPublisher,
) usecase.PushUsecase {
	origin := ""
	if appCfg != nil {
		origin = appCfg.Origin
	}

	return &pushService{
		logger:    logger,
		origin:    origin,
		presenter: presenter,
		clients:   clients,
		publisher: publisher,
	}
}

// HandleBackgroundMessage presents a provider message received while the
// application is backgrounded.
func (s *pushService) HandleBackgroundMessage(ctx context.Context, payload *entity.PushPayload) error {
	title := defaultTitle
	body := defaultBody
	if payload != nil && payload.Notification != nil {
		if payload.Notification.Title != "" {
			title = payload.Notification.Title
		}
		if payload.Notification.Body != "" {
			body = payload.Notification.Body
		}
	}

	data := map[string]string{}
	if payload != nil && payload.Data != nil {
		data = payload.Data
	}

	opts := &entity.PresentOptions{
		Body:               body,
		Icon:               defaultIcon,
		Badge:              defaultIcon,
		Tag:                tagFCM,
		Data:               data,
		RequireInteraction: true,
		Silent:             false,
		Vibrate:            vibrationPattern,
		Actions: []entity.NotificationAction{
			{Action: "open", Title: "열기", Icon: defaultIcon},
			{Action: "close", Title: "닫기"},
		},
	}

	return s.presenter.Show(ctx, title, opts)
}

// HandlePush handles a generic push event, covering push sources other than
// the provider path. A payload that fails to parse yields the default
// notification instead of a failed event.
func (s *pushService) HandlePush(ctx context.Context, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}

	var payload entity.PushPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Warn("push payload parse failed, presenting default notification",
			slog.Any("error", err),
		)

		return s.presenter.Show(ctx, defaultTitle, &entity.PresentOptions{
			Body: defaultBody,
			Icon: defaultIcon,
			Tag:  tagDefault,
		})
	}

	// Title/body resolution checks the nested notification block, then the
	// flat top-level fields, then the defaults.
	var title, body, icon string
	if payload.Notification != nil {
		title = payload.Notification.Title
		body = payload.Notification.Body
		icon = payload.Notification.Icon
	}
	if title == "" {
		title = payload.Title
	}
	if body == "" {
		body = payload.Body
	}
	if title == "" {
		title = defaultTitle
	}
	if body == "" {
		body = defaultBody
	}
	if icon == "" {
		icon = defaultIcon
	}

	tag := tagPush
	if payload.Tag != "" {
		tag = payload.Tag
	}

	// Without an explicit data block the flat payload fields travel as the
	// notification data, so click routing still sees what the sender set.
	data := payload.Data
	if len(data) == 0 {
		data = flattenPayload(&payload)
	}

	opts := &entity.PresentOptions{
		Body:               body,
		Icon:               icon,
		Badge:              defaultIcon,
		Tag:                tag,
		Data:               data,
		RequireInteraction: true,
		Silent:             false,
		Vibrate:            vibrationPattern,
	}

	return s.presenter.Show(ctx, title, opts)
}

func flattenPayload(payload *entity.PushPayload) map[string]string {
	fields := map[string]string{}
	if payload.Title != "" {
		fields["title"] = payload.Title
	}
	if payload.Body != "" {
		fields["body"] = payload.Body
	}
	if payload.Tag != "" {
		fields["tag"] = payload.Tag
	}
	if len(fields) == 0 {
		return nil
	}

	return fields
}

// HandleNotificationClick closes the notification and routes the click. Any
// error is captured and logged so the event is never left pending.
func (s *pushService) HandleNotificationClick(ctx context.Context, event *entity.ClickEvent) error {
	if err := s.presenter.Close(ctx, event.Notification.Options.Tag); err != nil {
		s.logger.Warn("failed to close notification", slog.Any("error", err))
	}

	if event.Action == "close" {
		return nil
	}

	if err := s.routeClick(ctx, event); err != nil {
		s.logger.Error("notification click handling failed", slog.Any("error", err))
	}

	return nil
}

// routeClick focuses an existing same-origin window, or opens a new one at
// the notification's data URL.
func (s *pushService) routeClick(ctx context.Context, event *entity.ClickEvent) error {
	clients, err := s.clients.MatchAll(ctx, true)
	if err != nil {
		return err
	}

	for _, client := range clients {
		if s.origin != "" && !strings.Contains(client.URL(), s.origin) {
			continue
		}

		return client.Focus(ctx)
	}

	if !s.clients.CanOpenWindow() {
		return nil
	}

	url := event.Notification.Options.Data["url"]
	if url == "" {
		url = "/"
	}
	_, err = s.clients.OpenWindow(ctx, url)

	return err
}

// HandleNotificationClose publishes a telemetry event when a publisher is
// configured. No behavior is required here.
func (s *pushService) HandleNotificationClose(ctx context.Context, event *entity.CloseEvent) {
	if s.publisher == nil {
		return
	}

	telemetry := &service.TelemetryEvent{
		EventID:    uuid.New().String(),
		EventType:  "notification_close",
		Tag:        event.Notification.Options.Tag,
		Title:      event.Notification.Title,
		Data:       event.Notification.Options.Data,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishTelemetryEvent(ctx, telemetry); err != nil {
		s.logger.Warn("failed to publish close telemetry", slog.Any("error", err))
	}
}
