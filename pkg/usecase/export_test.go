package usecase

import "context"

// SetSyncDispatch makes background work run inline, for deterministic tests
func SetSyncDispatch(uc *UseCases) {
	uc.dispatch = func(ctx context.Context, handler func(ctx context.Context) error) {
		_ = handler(ctx)
	}
}

// ChunkItems is exported for testing
var ChunkItems = chunkItems
