package topicbus

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnexpectedMessage = errors.New("unexpected message type")
)

// AssertMessage asserts that msg is of type T, returning an error wrapping [ErrUnexpectedMessage] if it's not.
func AssertMessage[T any](msg any) (T, error) {
	val, ok := msg.(T)
	if !ok {
		return val, fmt.Errorf("%w: expected %s, but got %T", ErrUnexpectedMessage, reflect.TypeFor[T](), msg)
	}
	return val, nil
}

// HandlerFor adapts a function that expects a specific message type to a [Handler].
// Messages of any other type fail the handler with [ErrUnexpectedMessage].
func HandlerFor[T any](fn func(msg T, meta Meta) (any, error)) Handler {
	return func(msg any, meta Meta) (any, error) {
		val, err := AssertMessage[T](msg)
		if err != nil {
			return nil, err
		}
		return fn(val, meta)
	}
}

// Listener adapts a function that neither returns a result nor fails to a [Handler].
// The handler's result is always nil.
func Listener(fn func(msg any, meta Meta)) Handler {
	return func(msg any, meta Meta) (any, error) {
		fn(msg, meta)
		return nil, nil
	}
}
