package syncx

import (
	"context"
	"github.com/sourcegraph/conc/iter"
	"time"
)

// awaitable is implemented by every future in this package, regardless of value type.
type awaitable interface {
	awaitAny(ctx context.Context) (any, error)
}

// IsPending reports whether val is a future created by this package.
func IsPending(val any) bool {
	_, ok := val.(awaitable)
	return ok
}

// AwaitAll settles a set of results, like those returned from emitting on a bus.
// Any result that is a [Future] or [FutureErr] from this package is awaited, and its resolved value replaces it in the output.
// All other values are passed through unchanged.
//
// Futures are awaited concurrently, sharing the optional timeout.
// Errors from rejected or timed out futures are joined, and the position of a failed future holds its zero value.
func AwaitAll(results []any, timeout ...time.Duration) ([]any, error) {
	if len(results) == 0 {
		return nil, nil
	}
	var (
		ctx    = context.Background()
		cancel = func() {}
	)
	if len(timeout) > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout[0])
	}
	defer cancel()
	return iter.MapErr(results, func(result *any) (any, error) {
		if pending, ok := (*result).(awaitable); ok {
			return pending.awaitAny(ctx)
		}
		return *result, nil
	})
}
