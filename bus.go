package topicbus

import (
	"fmt"
	"github.com/saylorsolutions/topicbus/assert"
	"github.com/saylorsolutions/topicbus/routing"
	"github.com/saylorsolutions/topicbus/structures/ring"
	"log/slog"
	"time"
)

// ErrorTopic is the topic that handler failures are emitted to, if it has subscribers.
const ErrorTopic = "error"

// Meta describes the emission a [Handler] is being called for.
type Meta struct {
	Topic     string
	Timestamp time.Time
}

// Handler is called with each message emitted to a topic matching its pattern.
// The returned value is collected into the results of [Bus.Emit].
// Returning a non-nil error (or panicking) is treated as a failure, see [Bus.Emit] for details.
type Handler func(msg any, meta Meta) (any, error)

// Unsubscribe removes a single registration made with [Bus.On].
// Calling it more than once does nothing.
type Unsubscribe func()

// Record is an entry in the emission history of a [Bus].
type Record struct {
	Topic     string
	Timestamp time.Time
}

// Millis returns the Unix timestamp of the emission in milliseconds.
func (r Record) Millis() int64 {
	return r.Timestamp.UnixMilli()
}

// Bus routes emitted messages to handlers subscribed with matching patterns.
type Bus struct {
	sep           string
	graph         *routing.Graph[Handler]
	cache         *routing.Cache[Handler]
	history       *ring.Ring[Record]
	log           *slog.Logger
	now           func() time.Time
	maxErrorDepth int
	errorDepth    int
}

// New creates a new [Bus], panicking if any [ConfigFunc] fails.
// Use [NewE] to handle configuration errors instead.
func New(configFuncs ...ConfigFunc) *Bus {
	bus, err := NewE(configFuncs...)
	if err != nil {
		panic(err)
	}
	return bus
}

// NewE creates a new [Bus], returning the first configuration error encountered.
func NewE(configFuncs ...ConfigFunc) (*Bus, error) {
	conf := defaultConf()
	for _, fn := range configFuncs {
		if err := fn(&conf); err != nil {
			return nil, err
		}
	}
	graph := routing.NewGraph[Handler](conf.sep)
	return &Bus{
		sep:           conf.sep,
		graph:         graph,
		cache:         routing.NewCache(graph),
		history:       ring.New[Record](conf.historySize),
		log:           conf.logger,
		now:           conf.now,
		maxErrorDepth: conf.maxErrorDepth,
	}, nil
}

// Separator returns the topic segment separator used by this [Bus].
func (b *Bus) Separator() string {
	return b.sep
}

// On registers handler for every topic matching pattern.
// The same handler may be registered many times, and each registration is called separately.
// This panics if handler is nil.
func (b *Bus) On(pattern string, handler Handler) Unsubscribe {
	assert.True("handler must not be nil", handler != nil)
	list, entry := b.graph.Subscribe(pattern, handler)
	// New nodes may now exist, so previous match results can't be trusted.
	b.cache.Reset()
	b.log.Debug("Subscribed handler", "pattern", pattern, "handlers", list.Len(), "nodes", b.graph.NodeCount())

	return func() {
		if list.Remove(entry) {
			b.log.Debug("Unsubscribed handler", "pattern", pattern, "handlers", list.Len())
		}
	}
}

// OnError registers a handler for errors emitted to [ErrorTopic].
func (b *Bus) OnError(handler func(err error, meta Meta)) Unsubscribe {
	assert.True("error handler must not be nil", handler != nil)
	return b.On(ErrorTopic, HandlerFor(func(err error, meta Meta) (any, error) {
		handler(err, meta)
		return nil, nil
	}))
}

// Subscribers returns the number of live handler registrations that would be called for topic.
func (b *Bus) Subscribers(topic string) int {
	var count int
	for _, list := range b.cache.Lookup(topic) {
		count += list.Len()
	}
	return count
}

// Emit calls every handler subscribed to a pattern matching topic with msg, and returns their results in call order.
//
// If a handler fails and [ErrorTopic] has subscribers, then the failure is emitted to them and dispatch continues.
// The failed handler's result is left out of the returned slice.
// If there are no error subscribers (or emitting the error fails too), then dispatch stops and a [*HandlerError] is returned.
func (b *Bus) Emit(topic string, msg any) ([]any, error) {
	ts := b.now()
	b.history.Push(Record{Topic: topic, Timestamp: ts})
	var (
		meta    = Meta{Topic: topic, Timestamp: ts}
		lists   = b.cache.Lookup(topic)
		results []any
	)
	b.log.Debug("Emitting", "topic", topic, "lists", len(lists))

	// Handlers subscribed by earlier handlers must not run in this emit, whichever list they join.
	snapshot := make([][]*routing.Entry[Handler], len(lists))
	for i, list := range lists {
		snapshot[i] = list.Entries()
	}
	for _, entries := range snapshot {
		for _, entry := range entries {
			if entry.Removed() {
				continue
			}
			result, err := invoke(entry.Value, msg, meta)
			if err == nil {
				results = append(results, result)
				continue
			}
			if err := b.redirectError(topic, err); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}

func (b *Bus) redirectError(topic string, err error) error {
	if b.Subscribers(ErrorTopic) == 0 {
		return &HandlerError{Topic: topic, Err: err}
	}
	if b.errorDepth >= b.maxErrorDepth {
		return &HandlerError{Topic: topic, Err: fmt.Errorf("%w (%d): %w", ErrErrorLoop, b.maxErrorDepth, err)}
	}
	b.log.Debug("Redirecting handler error", "topic", topic, "error", err)
	b.errorDepth++
	defer func() {
		b.errorDepth--
	}()
	_, emitErr := b.Emit(ErrorTopic, err)
	return emitErr
}

func invoke(handler Handler, msg any, meta Meta) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &PanicError{Topic: meta.Topic, Value: r}
		}
	}()
	return handler(msg, meta)
}

// History returns the recorded emissions with topics matching pattern, oldest first.
// Only the most recent emissions are retained, see [HistorySize].
func (b *Bus) History(pattern string) []Record {
	query := routing.NewGraph[struct{}](b.sep)
	query.Subscribe(pattern, struct{}{})
	var (
		matches  = routing.NewCache(query)
		timeline []Record
	)
	for _, rec := range b.history.Slice() {
		if len(matches.Lookup(rec.Topic)) > 0 {
			timeline = append(timeline, rec)
		}
	}
	return timeline
}
