package impl

import (
	"context"
	"log/slog"
	"sync"

	"twashell/internal/domain/entity"
	"twashell/internal/domain/service"
	"twashell/internal/usecase"
)

// subscribeBuffer bounds how many undelivered foreground messages a
// subscription holds before dropping.
const subscribeBuffer = 16

type relayService struct {
	logger *slog.Logger
	source service.MessageSource
}

// NewRelayService creates the foreground message relay. source may be nil in
// a context where the messaging subsystem was never initialized; AwaitNext
// then never resolves, preserving the documented contract.
func NewRelayService(logger *slog.Logger, source service.MessageSource) usecase.RelayUsecase {
	return &relayService{
		logger: logger,
		source: source,
	}
}

// AwaitNext registers a one-shot listener and resolves with the first
// foreground message.
func (s *relayService) AwaitNext(ctx context.Context) (*entity.PushPayload, error) {
	if s.source == nil {
		<-ctx.Done()

		return nil, ctx.Err()
	}

	var once sync.Once
	received := make(chan *entity.PushPayload, 1)
	unsubscribe := s.source.OnMessage(func(payload *entity.PushPayload) {
		once.Do(func() {
			received <- payload
		})
	})
	defer unsubscribe()

	select {
	case payload := <-received:
		return payload, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Subscribe keeps listening across deliveries by re-registering internally,
// so subsequent messages are not silently dropped.
func (s *relayService) Subscribe(ctx context.Context) (<-chan *entity.PushPayload, func()) {
	messages := make(chan *entity.PushPayload, subscribeBuffer)
	if s.source == nil {
		return messages, func() {}
	}

	var once sync.Once
	done := make(chan struct{})
	unsubscribe := s.source.OnMessage(func(payload *entity.PushPayload) {
		select {
		case <-done:
		case messages <- payload:
		default:
			s.logger.Warn("foreground subscription buffer full, dropping message")
		}
	})

	cancel := func() {
		once.Do(func() {
			close(done)
			unsubscribe()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	return messages, cancel
}
