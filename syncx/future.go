package syncx

import (
	"context"
	"sync"
	"time"
)

// Future is a value that is resolved asynchronously at a later time.
// Once resolved, the value is cached for every call to Await.
type Future[T any] interface {
	// Resolve sets the value of the [Future] so it can be resolved by consumers.
	// Only the first call to Resolve will set the result. Subsequent calls do nothing.
	Resolve(T)
	// Await blocks until the value is made available with [Future.Resolve], or until the timeout elapses if specified.
	// If the timeout limit is reached, then the [Future] type's zero value is returned.
	// If no timeout is given, then the function will wait indefinitely.
	Await(...time.Duration) T
}

// FutureErr is the same as [Future], but it resolves to a value and an error.
// A FutureErr resolved with a non-nil error is considered rejected.
type FutureErr[T any] interface {
	// ResolveErr sets the value (and possibly an error) of the [FutureErr].
	// Only the first call to ResolveErr will set the result. Subsequent calls do nothing.
	ResolveErr(T, error)
	// AwaitErr blocks until the value is made available with [FutureErr.ResolveErr], or until the timeout elapses if specified.
	// If the timeout limit is reached, then the zero value is returned along with the context error.
	AwaitErr(...time.Duration) (T, error)
}

func NewFuture[T any]() Future[T] {
	return newFuture[T]()
}

func NewFutureErr[T any]() FutureErr[T] {
	return newFuture[T]()
}

// Resolved returns a [Future] that is already resolved with val.
func Resolved[T any](val T) Future[T] {
	f := newFuture[T]()
	f.Resolve(val)
	return f
}

// Rejected returns a [FutureErr] that is already resolved with err.
func Rejected[T any](err error) FutureErr[T] {
	var zero T
	f := newFuture[T]()
	f.ResolveErr(zero, err)
	return f
}

type future[T any] struct {
	resolve sync.Once
	done    chan struct{}
	val     T
	err     error
}

func newFuture[T any]() *future[T] {
	return &future[T]{done: make(chan struct{})}
}

func (f *future[T]) Resolve(val T) {
	f.ResolveErr(val, nil)
}

func (f *future[T]) Await(timeout ...time.Duration) T {
	val, _ := f.AwaitErr(timeout...)
	return val
}

func (f *future[T]) ResolveErr(val T, err error) {
	f.resolve.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

func (f *future[T]) AwaitErr(timeout ...time.Duration) (T, error) {
	var (
		ctx    = context.Background()
		cancel = func() {}
	)
	if len(timeout) > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout[0])
	}
	defer cancel()
	return f.await(ctx)
}

func (f *future[T]) await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *future[T]) awaitAny(ctx context.Context) (any, error) {
	return f.await(ctx)
}
