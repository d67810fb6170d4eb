/*
Package topicbus provides an in-process publish/subscribe bus that routes messages by hierarchical topic.

# Topics and patterns

A topic is a string of segments joined by a separator, like "metrics.cpu.changed".
Subscriptions use patterns, which are topics that may also contain two wildcard segments:

  - "*" matches exactly one segment, so "a.*" matches "a.b", but not "a" or "a.b.c".
  - "#" matches zero or more segments, so "a.#" matches "a", "a.b", and "a.b.c".

There is no escape for a literal "*" or "#" segment, and empty segments are matched literally.
The separator defaults to "." and can be changed with [Separator].

# Subscribing and emitting

Use [Bus.On] to register a [Handler] for a pattern.
The returned [Unsubscribe] removes exactly that registration, and may be called any number of times.

[Bus.Emit] calls every matching handler synchronously, in a stable order, before returning.
A handler registered once is called once per emit, even if the topic reaches it through more than one wildcard path.
Return values are collected in call order, so a handler may return a [syncx.Future] that the caller settles later with [syncx.AwaitAll].
The bus itself never waits on returned values.

# Errors

A handler fails when it returns a non-nil error or panics.
If anything is subscribed to [ErrorTopic], the error is emitted there and dispatch continues with the next handler.
Otherwise, [Bus.Emit] stops and returns a [*HandlerError] wrapping the failure.
Use [Bus.OnError] as a convenient way to subscribe to errors.

# History

Every emission is logged with its timestamp in a ring buffer of the most recent [DefaultHistorySize] entries (see [HistorySize]).
[Bus.History] returns the logged records whose topic matches a pattern, oldest first.

# Concurrency

A [Bus] is not safe for concurrent use.
Handlers run on the emitting goroutine, and may themselves call [Bus.On], [Bus.Emit], or an [Unsubscribe].
Unsubscribing during an emit takes effect immediately: a handler removed before its turn in the current emit is skipped.
Handlers subscribed during an emit are first called by the next emit, even if they join a list that hasn't been dispatched yet.

[syncx.Future]: github.com/saylorsolutions/topicbus/syncx
[syncx.AwaitAll]: github.com/saylorsolutions/topicbus/syncx
*/
package topicbus
