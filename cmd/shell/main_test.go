package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"twashell/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirebaseMessenger_NoFirebaseSection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	messenger, err := newFirebaseMessenger(context.Background(), &config.Config{}, logger)

	require.NoError(t, err)
	assert.Nil(t, messenger)
}

func TestNewFirebaseMessenger_MissingAdminCredentialsDegrades(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Firebase: &config.FirebaseConfig{
			APIKey:   "api-key",
			VAPIDKey: "vapid-key",
		},
	}

	// Client identity alone must not fail the provider: token acquisition
	// stays up and dispatch degrades to its per-request failure result.
	messenger, err := newFirebaseMessenger(context.Background(), cfg, logger)

	require.NoError(t, err)
	assert.Nil(t, messenger)
}
