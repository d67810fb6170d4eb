package topicbus

import (
	"errors"
	"fmt"
)

var (
	ErrHandlerPanic = errors.New("handler panicked")
	ErrErrorLoop    = errors.New("error handlers exceeded max error depth")
)

// HandlerError is returned from [Bus.Emit] when a handler fails and nothing is subscribed to [ErrorTopic].
type HandlerError struct {
	Topic string
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for topic '%s' failed: %v", e.Topic, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError captures a value recovered from a panicking handler.
// It matches [ErrHandlerPanic] with [errors.Is].
type PanicError struct {
	Topic string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v on topic '%s': %v", ErrHandlerPanic, e.Topic, e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return errors.Join(ErrHandlerPanic, err)
	}
	return ErrHandlerPanic
}
