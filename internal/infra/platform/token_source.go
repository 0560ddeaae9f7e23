package platform

import (
	"context"

	"twashell/config"
	"twashell/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type localTokenSource struct {
	registrationID string
}

// NewLocalTokenSource creates a token source that mints opaque tokens scoped
// to the configured worker registration.
func NewLocalTokenSource(cfg *config.PlatformConfig) service.TokenSource {
	registrationID := ""
	if cfg != nil {
		registrationID = cfg.RegistrationID
	}

	return &localTokenSource{registrationID: registrationID}
}

func (s *localTokenSource) ActiveRegistration(_ context.Context) (string, error) {
	return s.registrationID, nil
}

func (s *localTokenSource) Token(_ context.Context, vapidKey, registrationID string) (string, error) {
	if vapidKey == "" {
		return "", errors.New("vapid key required to scope token request")
	}

	// Tokens are opaque to everything downstream; a fresh UUID suffices.
	token := "local-" + uuid.New().String()
	if registrationID != "" {
		token = registrationID + ":" + token
	}

	return token, nil
}
