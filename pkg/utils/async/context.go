package async

import "context"

type syncModeKey struct{}

// WithSyncMode makes Dispatch run handlers inline. Tests use it to observe
// the effects of a webhook before the response is checked.
func WithSyncMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, syncModeKey{}, true)
}

func isSyncMode(ctx context.Context) bool {
	v, _ := ctx.Value(syncModeKey{}).(bool)
	return v
}
