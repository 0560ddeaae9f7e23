package usecase

import (
	"context"

	"twashell/internal/domain/entity"
)

// TokenAcquisition is the outcome of an acquisition attempt. Failures are
// reported here, never thrown: Error carries the description and Permission
// the prompt outcome when one was obtained.
type TokenAcquisition struct {
	Success    bool                   `json:"success"`
	Permission entity.PermissionState `json:"permission,omitempty"`
	Token      string                 `json:"token,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// TokenUsecase acquires and retains the messaging registration token.
type TokenUsecase interface {
	// AcquireToken requests permission interactively and, when granted,
	// obtains a token scoped to the active worker registration and persists
	// it. The call may suspend while the prompt awaits the user.
	AcquireToken(ctx context.Context) *TokenAcquisition

	// CurrentToken returns the persisted token, or repository.ErrNoToken.
	CurrentToken(ctx context.Context) (string, error)

	// ClearToken empties the token slot (permission revocation path).
	ClearToken(ctx context.Context) error
}
