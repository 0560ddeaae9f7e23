package service

import (
	"context"

	"twashell/internal/domain/entity"
)

// PermissionPrompter surfaces the platform notification permission prompt.
// The call may suspend until the user responds.
type PermissionPrompter interface {
	RequestPermission(ctx context.Context) (entity.PermissionState, error)
}

// TokenSource issues registration tokens scoped to a worker registration.
type TokenSource interface {
	// ActiveRegistration returns the identifier of the currently active worker
	// registration, or empty when none is registered. It never creates one.
	ActiveRegistration(ctx context.Context) (string, error)

	// Token requests a registration token scoped to the given registration,
	// authorized by the VAPID public key.
	Token(ctx context.Context, vapidKey, registrationID string) (string, error)
}

// WindowClient is an open application window.
type WindowClient interface {
	URL() string
	Focus(ctx context.Context) error
}

// ClientRegistry enumerates and controls open window clients.
type ClientRegistry interface {
	// MatchAll lists open windows, optionally including ones not yet
	// controlled by the worker.
	MatchAll(ctx context.Context, includeUncontrolled bool) ([]WindowClient, error)

	// OpenWindow opens a new client window at the given URL.
	OpenWindow(ctx context.Context, url string) (WindowClient, error)

	// CanOpenWindow reports whether the platform supports opening windows.
	CanOpenWindow() bool

	// Claim takes control of all open clients immediately, without waiting for
	// their next navigation.
	Claim(ctx context.Context) error
}

// MessageSource delivers provider messages received while the application is
// foregrounded. The returned function unsubscribes the handler.
type MessageSource interface {
	OnMessage(handler func(*entity.PushPayload)) (unsubscribe func())
}
