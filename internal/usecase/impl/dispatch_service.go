package impl

import (
	"context"
	"log/slog"

	domainerrors "twashell/internal/domain/errors"
	"twashell/internal/domain/service"
	"twashell/internal/usecase"
)

type dispatchService struct {
	logger    *slog.Logger
	messenger service.Messenger
}

// NewDispatchService creates the dispatch gateway service. messenger may be
// nil when provider credentials are not configured; dispatch then reports the
// configuration error on invocation.
func NewDispatchService(logger *slog.Logger, messenger service.Messenger) usecase.DispatchUsecase {
	return &dispatchService{
		logger:    logger,
		messenger: messenger,
	}
}

// Dispatch performs one send attempt. Token addressing takes precedence over
// the token list when both are present.
func (s *dispatchService) Dispatch(ctx context.Context, input *usecase.DispatchInput) (*usecase.DispatchResult, error) {
	if s.messenger == nil {
		return nil, domainerrors.ErrProviderNotConfigured
	}

	if input.Token != "" {
		messageID, err := s.messenger.Send(ctx, input.Token, input.Title, input.Message, input.Data)
		if err != nil {
			s.logger.Error("single send failed", slog.Any("error", err))

			return nil, domainerrors.ErrDispatchFailed.WithDetails(err.Error())
		}

		s.logger.Info("notification dispatched", slog.String("message_id", messageID))

		return &usecase.DispatchResult{
			Success:   true,
			MessageID: messageID,
		}, nil
	}

	outcome, err := s.messenger.SendMulticast(ctx, input.Tokens, input.Title, input.Message, input.Data)
	if err != nil {
		s.logger.Error("multicast send failed", slog.Any("error", err))

		return nil, domainerrors.ErrDispatchFailed.WithDetails(err.Error())
	}

	s.logger.Info("multicast dispatched",
		slog.Int("success_count", outcome.SuccessCount),
		slog.Int("failure_count", outcome.FailureCount),
	)

	return &usecase.DispatchResult{
		Success:      true,
		SuccessCount: outcome.SuccessCount,
		FailureCount: outcome.FailureCount,
		Responses:    outcome.Responses,
	}, nil
}
