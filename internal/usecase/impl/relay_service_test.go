package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"twashell/internal/domain/entity"
	"twashell/internal/infra/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRelayService() (*platform.MessageBus, *relayService) {
	bus := platform.NewMessageBus()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return bus, NewRelayService(logger, bus).(*relayService)
}

func TestRelayService_AwaitNext_ResolvesWithFirstMessage(t *testing.T) {
	bus, service := createTestRelayService()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() {
		// Give AwaitNext time to register its handler.
		time.Sleep(10 * time.Millisecond)
		bus.Publish(&entity.PushPayload{Title: "first"})
		bus.Publish(&entity.PushPayload{Title: "second"})
	}()

	payload, err := service.AwaitNext(ctx)

	require.NoError(t, err)
	assert.Equal(t, "first", payload.Title)
}

func TestRelayService_AwaitNext_CancelledContext(t *testing.T) {
	_, service := createTestRelayService()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	payload, err := service.AwaitNext(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, payload)
}

func TestRelayService_AwaitNext_NilSourceBlocksUntilContextDone(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewRelayService(logger, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	payload, err := service.AwaitNext(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, payload)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRelayService_Subscribe_ReceivesSubsequentMessages(t *testing.T) {
	bus, service := createTestRelayService()

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Second)
	defer cancelCtx()

	messages, cancel := service.Subscribe(ctx)
	defer cancel()

	bus.Publish(&entity.PushPayload{Title: "one"})
	bus.Publish(&entity.PushPayload{Title: "two"})

	first := <-messages
	second := <-messages
	assert.Equal(t, "one", first.Title)
	assert.Equal(t, "two", second.Title)
}

func TestRelayService_Subscribe_CancelStopsDelivery(t *testing.T) {
	bus, service := createTestRelayService()

	messages, cancel := service.Subscribe(context.Background())
	cancel()

	bus.Publish(&entity.PushPayload{Title: "late"})

	select {
	case payload := <-messages:
		t.Fatalf("unexpected message after cancel: %v", payload)
	case <-time.After(20 * time.Millisecond):
	}
}
