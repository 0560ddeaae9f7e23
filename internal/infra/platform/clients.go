package platform

import (
	"context"
	"sync"

	"twashell/internal/domain/service"
)

// Window is an in-memory window client.
type Window struct {
	mu         sync.Mutex
	url        string
	focused    bool
	controlled bool
}

// URL returns the window's location.
func (w *Window) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.url
}

// Focus brings the window to the foreground.
func (w *Window) Focus(_ context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.focused = true

	return nil
}

// Focused reports whether Focus has been called.
func (w *Window) Focused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.focused
}

// MemoryClientRegistry tracks open windows in memory.
type MemoryClientRegistry struct {
	mu            sync.Mutex
	windows       []*Window
	canOpenWindow bool
}

// NewMemoryClientRegistry creates an empty registry that supports opening
// windows.
func NewMemoryClientRegistry() *MemoryClientRegistry {
	return &MemoryClientRegistry{canOpenWindow: true}
}

// AddWindow registers an already-open window at the given URL.
func (r *MemoryClientRegistry) AddWindow(url string, controlled bool) *Window {
	r.mu.Lock()
	defer r.mu.Unlock()

	window := &Window{url: url, controlled: controlled}
	r.windows = append(r.windows, window)

	return window
}

// SetCanOpenWindow toggles window-opening support.
func (r *MemoryClientRegistry) SetCanOpenWindow(can bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.canOpenWindow = can
}

// MatchAll lists open windows.
func (r *MemoryClientRegistry) MatchAll(_ context.Context, includeUncontrolled bool) ([]service.WindowClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients := make([]service.WindowClient, 0, len(r.windows))
	for _, window := range r.windows {
		if !includeUncontrolled && !window.controlled {
			continue
		}
		clients = append(clients, window)
	}

	return clients, nil
}

// OpenWindow opens a new window at the given URL.
func (r *MemoryClientRegistry) OpenWindow(_ context.Context, url string) (service.WindowClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	window := &Window{url: url, focused: true, controlled: true}
	r.windows = append(r.windows, window)

	return window, nil
}

// CanOpenWindow reports window-opening support.
func (r *MemoryClientRegistry) CanOpenWindow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.canOpenWindow
}

// Claim takes control of every open window.
func (r *MemoryClientRegistry) Claim(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, window := range r.windows {
		window.controlled = true
	}

	return nil
}

// Windows returns a snapshot of the registry's windows.
func (r *MemoryClientRegistry) Windows() []*Window {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*Window, len(r.windows))
	copy(snapshot, r.windows)

	return snapshot
}
