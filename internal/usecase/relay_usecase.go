package usecase

import (
	"context"

	"twashell/internal/domain/entity"
)

// RelayUsecase surfaces messages delivered while the application is
// foregrounded, where the background push path does not fire.
type RelayUsecase interface {
	// AwaitNext resolves with the first foreground message received. When the
	// messaging subsystem was never initialized the call never resolves; it
	// blocks until ctx is done and returns ctx.Err(). Callers re-invoke after
	// each resolution to keep listening.
	AwaitNext(ctx context.Context) (*entity.PushPayload, error)

	// Subscribe is the restartable form: the channel receives every
	// subsequent message until cancel is called or ctx is done.
	Subscribe(ctx context.Context) (<-chan *entity.PushPayload, func())
}
