// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport endpoint, started by the application
// entrypoint and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
