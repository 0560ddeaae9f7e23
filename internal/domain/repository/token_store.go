package repository

import (
	"context"

	"twashell/internal/errors"
)

// ErrNoToken is returned when the token slot is empty.
var ErrNoToken = errors.New("no registration token stored")

// TokenStore persists the last acquired messaging token. Exactly one token is
// retained at a time; Set overwrites, Clear empties the slot.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
