package impl

import (
	"context"
	"fmt"
	"log/slog"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/repository"
	"twashell/internal/domain/service"
	"twashell/internal/usecase"
)

type tokenService struct {
	logger   *slog.Logger
	vapidKey string
	prompter service.PermissionPrompter
	source   service.TokenSource
	store    repository.TokenStore
}

// NewTokenService creates the token acquisition service. source may be nil
// when the messaging subsystem is unavailable; acquisition then reports a
// failure result instead of attempting a prompt.
func NewTokenService(
	logger *slog.Logger,
	firebaseCfg *config.FirebaseConfig,
	prompter service.PermissionPrompter,
	source service.TokenSource,
	store repository.TokenStore,
) usecase.TokenUsecase {
	vapidKey := ""
	if firebaseCfg != nil {
		vapidKey = firebaseCfg.VAPIDKey
	}

	return &tokenService{
		logger:   logger,
		vapidKey: vapidKey,
		prompter: prompter,
		source:   source,
		store:    store,
	}
}

// AcquireToken requests permission and, when granted, a registration token
// scoped to the active worker registration. Every failure mode surfaces as a
// result, never as a returned error.
func (s *tokenService) AcquireToken(ctx context.Context) *usecase.TokenAcquisition {
	if s.source == nil {
		return &usecase.TokenAcquisition{
			Success: false,
			Error:   "Firebase messaging not initialized",
		}
	}

	if s.vapidKey == "" {
		return &usecase.TokenAcquisition{
			Success: false,
			Error:   "VAPID key not configured",
		}
	}

	permission, err := s.prompter.RequestPermission(ctx)
	if err != nil {
		return &usecase.TokenAcquisition{
			Success: false,
			Error:   fmt.Sprintf("Permission request failed: %v", err),
		}
	}

	switch permission {
	case entity.PermissionGranted:
		return s.acquireGranted(ctx)

	case entity.PermissionDenied:
		// A token may be retained only while permission is granted.
		if err := s.store.Clear(ctx); err != nil {
			s.logger.Warn("failed to clear token after denial", slog.Any("error", err))
		}

		return &usecase.TokenAcquisition{
			Success:    false,
			Permission: entity.PermissionDenied,
			Error:      "Permission denied by user",
		}

	default:
		return &usecase.TokenAcquisition{
			Success:    false,
			Permission: entity.PermissionDefault,
			Error:      "Permission is default",
		}
	}
}

// acquireGranted runs the token request against the active registration.
func (s *tokenService) acquireGranted(ctx context.Context) *usecase.TokenAcquisition {
	// Use the existing registration only; acquisition never creates one.
	registrationID, err := s.source.ActiveRegistration(ctx)
	if err != nil {
		s.logger.Warn("worker registration lookup failed", slog.Any("error", err))
	} else if registrationID == "" {
		s.logger.Warn("no worker registration found")
	}

	token, err := s.source.Token(ctx, s.vapidKey, registrationID)
	if err != nil {
		return &usecase.TokenAcquisition{
			Success:    false,
			Permission: entity.PermissionGranted,
			Error:      fmt.Sprintf("FCM token error: %v", err),
		}
	}
	if token == "" {
		return &usecase.TokenAcquisition{
			Success:    false,
			Permission: entity.PermissionGranted,
			Error:      "FCM token generation failed",
		}
	}

	if err := s.store.Set(ctx, token); err != nil {
		return &usecase.TokenAcquisition{
			Success:    false,
			Permission: entity.PermissionGranted,
			Error:      fmt.Sprintf("failed to persist token: %v", err),
		}
	}

	s.logger.Info("registration token acquired")

	return &usecase.TokenAcquisition{
		Success:    true,
		Permission: entity.PermissionGranted,
		Token:      token,
	}
}

// CurrentToken returns the persisted token.
func (s *tokenService) CurrentToken(ctx context.Context) (string, error) {
	return s.store.Get(ctx)
}

// ClearToken empties the token slot.
func (s *tokenService) ClearToken(ctx context.Context) error {
	return s.store.Clear(ctx)
}
