package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"twashell/config"
	"twashell/internal/domain/entity"
	domainservice "twashell/internal/domain/service"
	"twashell/internal/infra/platform"
	mockSvc "twashell/internal/mocks/service"
	"twashell/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushService(t *testing.T) (
	usecase.PushUsecase,
	*mockSvc.MockNotificationPresenter,
	*platform.MemoryClientRegistry,
	*mockSvc.MockEventPublisher,
) {
	presenter := mockSvc.NewMockNotificationPresenter(t)
	registry := platform.NewMemoryClientRegistry()
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPushService(
		logger,
		&config.AppConfig{URL: "https://app.example.com", Origin: "app.example.com"},
		presenter,
		registry,
		publisher,
	)

	return service, presenter, registry, publisher
}

func TestPushService_HandleBackgroundMessage_AppliesDefaults(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	var shown *entity.PresentOptions
	presenter.EXPECT().
		Show(ctx, "새 알림", mock.Anything).
		Run(func(_ context.Context, _ string, opts *entity.PresentOptions) {
			shown = opts
		}).
		Return(nil)

	require.NoError(t, service.HandleBackgroundMessage(ctx, &entity.PushPayload{}))

	require.NotNil(t, shown)
	assert.Equal(t, "새로운 메시지가 도착했습니다.", shown.Body)
	assert.Equal(t, "fcm-notification", shown.Tag)
	assert.True(t, shown.RequireInteraction)
	assert.Equal(t, []int{200, 100, 200}, shown.Vibrate)
	require.Len(t, shown.Actions, 2)
	assert.Equal(t, "open", shown.Actions[0].Action)
	assert.Equal(t, "열기", shown.Actions[0].Title)
	assert.Equal(t, "close", shown.Actions[1].Action)
	assert.Equal(t, "닫기", shown.Actions[1].Title)
}

func TestPushService_HandleBackgroundMessage_UsesProvidedFields(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	presenter.EXPECT().Show(ctx, "주문 완료", mock.Anything).Return(nil)

	payload := &entity.PushPayload{
		Notification: &entity.NotificationFields{Title: "주문 완료", Body: "주문이 접수되었습니다."},
		Data:         map[string]string{"url": "/orders/42"},
	}

	require.NoError(t, service.HandleBackgroundMessage(ctx, payload))
}

func TestPushService_HandlePush_EmptyPayloadIsIgnored(t *testing.T) {
	service, _, _, _ := createTestPushService(t)

	require.NoError(t, service.HandlePush(context.Background(), nil))
}

func TestPushService_HandlePush_MalformedPayloadShowsDefault(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	var shown *entity.PresentOptions
	presenter.EXPECT().
		Show(ctx, "새 알림", mock.Anything).
		Run(func(_ context.Context, _ string, opts *entity.PresentOptions) {
			shown = opts
		}).
		Return(nil)

	require.NoError(t, service.HandlePush(ctx, []byte("not json at all")))

	require.NotNil(t, shown)
	assert.Equal(t, "새로운 메시지가 도착했습니다.", shown.Body)
	assert.Equal(t, "default-notification", shown.Tag)
}

func TestPushService_HandlePush_NestedFieldsTakePrecedence(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	var shown *entity.PresentOptions
	presenter.EXPECT().
		Show(ctx, "nested title", mock.Anything).
		Run(func(_ context.Context, _ string, opts *entity.PresentOptions) {
			shown = opts
		}).
		Return(nil)

	raw := []byte(`{"notification":{"title":"nested title","body":"nested body"},"title":"flat title","body":"flat body"}`)
	require.NoError(t, service.HandlePush(ctx, raw))

	require.NotNil(t, shown)
	assert.Equal(t, "nested body", shown.Body)
	assert.Equal(t, "push-notification", shown.Tag)
}

func TestPushService_HandlePush_FlatFieldsAndCustomTag(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	var shown *entity.PresentOptions
	presenter.EXPECT().
		Show(ctx, "flat title", mock.Anything).
		Run(func(_ context.Context, _ string, opts *entity.PresentOptions) {
			shown = opts
		}).
		Return(nil)

	raw := []byte(`{"title":"flat title","body":"flat body","tag":"order-42"}`)
	require.NoError(t, service.HandlePush(ctx, raw))

	require.NotNil(t, shown)
	assert.Equal(t, "flat body", shown.Body)
	assert.Equal(t, "order-42", shown.Tag)
	assert.Equal(t, "/icons/icon-192x192.svg", shown.Icon)
}

func TestPushService_HandlePush_FlatFieldsCarriedAsDataFallback(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	var shown *entity.PresentOptions
	presenter.EXPECT().
		Show(ctx, "flat title", mock.Anything).
		Run(func(_ context.Context, _ string, opts *entity.PresentOptions) {
			shown = opts
		}).
		Return(nil)

	raw := []byte(`{"title":"flat title","body":"flat body","tag":"order-42"}`)
	require.NoError(t, service.HandlePush(ctx, raw))

	require.NotNil(t, shown)
	assert.Equal(t, map[string]string{
		"title": "flat title",
		"body":  "flat body",
		"tag":   "order-42",
	}, shown.Data)
}

func TestPushService_HandlePush_ExplicitDataWinsOverFlatFields(t *testing.T) {
	service, presenter, _, _ := createTestPushService(t)

	ctx := context.Background()
	var shown *entity.PresentOptions
	presenter.EXPECT().
		Show(ctx, "flat title", mock.Anything).
		Run(func(_ context.Context, _ string, opts *entity.PresentOptions) {
			shown = opts
		}).
		Return(nil)

	raw := []byte(`{"title":"flat title","data":{"url":"/orders/42"}}`)
	require.NoError(t, service.HandlePush(ctx, raw))

	require.NotNil(t, shown)
	assert.Equal(t, map[string]string{"url": "/orders/42"}, shown.Data)
}

func TestPushService_HandleNotificationClick_CloseActionOnlyDismisses(t *testing.T) {
	service, presenter, registry, _ := createTestPushService(t)

	ctx := context.Background()
	window := registry.AddWindow("https://app.example.com/home", true)
	presenter.EXPECT().Close(ctx, "fcm-notification").Return(nil)

	event := &entity.ClickEvent{
		Action: "close",
		Notification: entity.PresentedNotification{
			Title:   "새 알림",
			Options: entity.PresentOptions{Tag: "fcm-notification"},
		},
	}

	require.NoError(t, service.HandleNotificationClick(ctx, event))
	assert.False(t, window.Focused())
}

func TestPushService_HandleNotificationClick_FocusesSameOriginWindow(t *testing.T) {
	service, presenter, registry, _ := createTestPushService(t)

	ctx := context.Background()
	other := registry.AddWindow("https://elsewhere.example.net/", true)
	window := registry.AddWindow("https://app.example.com/home", true)
	presenter.EXPECT().Close(ctx, "push-notification").Return(nil)

	event := &entity.ClickEvent{
		Notification: entity.PresentedNotification{
			Options: entity.PresentOptions{Tag: "push-notification"},
		},
	}

	require.NoError(t, service.HandleNotificationClick(ctx, event))
	assert.True(t, window.Focused())
	assert.False(t, other.Focused())
	assert.Len(t, registry.Windows(), 2)
}

func TestPushService_HandleNotificationClick_OpensWindowWhenNoClient(t *testing.T) {
	service, presenter, registry, _ := createTestPushService(t)

	ctx := context.Background()
	presenter.EXPECT().Close(ctx, "push-notification").Return(nil)

	event := &entity.ClickEvent{
		Notification: entity.PresentedNotification{
			Options: entity.PresentOptions{
				Tag:  "push-notification",
				Data: map[string]string{"url": "/orders/42"},
			},
		},
	}

	require.NoError(t, service.HandleNotificationClick(ctx, event))

	windows := registry.Windows()
	require.Len(t, windows, 1)
	assert.Equal(t, "/orders/42", windows[0].URL())
	assert.True(t, windows[0].Focused())
}

func TestPushService_HandleNotificationClick_OpensRootWithoutDataURL(t *testing.T) {
	service, presenter, registry, _ := createTestPushService(t)

	ctx := context.Background()
	presenter.EXPECT().Close(ctx, "").Return(nil)

	require.NoError(t, service.HandleNotificationClick(ctx, &entity.ClickEvent{}))

	windows := registry.Windows()
	require.Len(t, windows, 1)
	assert.Equal(t, "/", windows[0].URL())
}

func TestPushService_HandleNotificationClick_SwallowsRoutingErrors(t *testing.T) {
	service, presenter, registry, _ := createTestPushService(t)

	ctx := context.Background()
	registry.SetCanOpenWindow(false)
	presenter.EXPECT().Close(ctx, "push-notification").Return(errors.New("already closed"))

	event := &entity.ClickEvent{
		Notification: entity.PresentedNotification{
			Options: entity.PresentOptions{Tag: "push-notification"},
		},
	}

	require.NoError(t, service.HandleNotificationClick(ctx, event))
	assert.Empty(t, registry.Windows())
}

func TestPushService_HandleNotificationClose_PublishesTelemetry(t *testing.T) {
	service, _, _, publisher := createTestPushService(t)

	ctx := context.Background()
	var published *domainservice.TelemetryEvent
	publisher.EXPECT().
		PublishTelemetryEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *domainservice.TelemetryEvent) {
			published = event
		}).
		Return(nil)

	event := &entity.CloseEvent{
		Notification: entity.PresentedNotification{
			Title:   "새 알림",
			Options: entity.PresentOptions{Tag: "fcm-notification"},
		},
	}

	service.HandleNotificationClose(ctx, event)

	require.NotNil(t, published)
	assert.Equal(t, "notification_close", published.EventType)
	assert.Equal(t, "fcm-notification", published.Tag)
	assert.NotEmpty(t, published.EventID)
}

func TestPushService_HandleNotificationClose_NoPublisherIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewPushService(logger, nil, mockSvc.NewMockNotificationPresenter(t), platform.NewMemoryClientRegistry(), nil)

	service.HandleNotificationClose(context.Background(), &entity.CloseEvent{})
}
