package service

import (
	"context"

	"twashell/internal/domain/entity"
)

// Fetcher performs network fetches on behalf of the asset cache manager.
type Fetcher interface {
	Fetch(ctx context.Context, req *entity.FetchRequest) (*entity.FetchResponse, error)
}
