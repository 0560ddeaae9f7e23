// Package platform provides headless implementations of the browser
// primitives the use cases depend on: the permission prompt, token issuance,
// window clients, the notification surface and the foreground message stream.
// The real implementations live in the platform; these stand-ins serve the
// demo shell and tests.
package platform

import (
	"context"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/service"
)

type staticPrompter struct {
	decision entity.PermissionState
}

// NewStaticPrompter creates a prompter that answers with the decision
// recorded in the platform config, standing in for the interactive prompt.
func NewStaticPrompter(cfg *config.PlatformConfig) service.PermissionPrompter {
	decision := entity.PermissionDefault
	if cfg != nil {
		decision = entity.ParsePermissionState(cfg.Permission)
	}

	return &staticPrompter{decision: decision}
}

func (p *staticPrompter) RequestPermission(ctx context.Context) (entity.PermissionState, error) {
	if err := ctx.Err(); err != nil {
		return entity.PermissionDefault, err
	}

	return p.decision, nil
}
