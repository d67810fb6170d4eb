package topicbus

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/topicbus/routing"
	"log/slog"
	"time"
)

const (
	// DefaultHistorySize is the number of most recent emissions kept for [Bus.History].
	DefaultHistorySize = 9999
	// DefaultMaxErrorDepth limits how many times an error may be re-emitted to [ErrorTopic] from within error handlers.
	DefaultMaxErrorDepth = 8
)

var (
	ErrInvalidConfig = errors.New("invalid bus configuration")
)

type busConf struct {
	sep           string
	historySize   int
	maxErrorDepth int
	logger        *slog.Logger
	now           func() time.Time
}

func defaultConf() busConf {
	return busConf{
		sep:           routing.DefaultSeparator,
		historySize:   DefaultHistorySize,
		maxErrorDepth: DefaultMaxErrorDepth,
		logger:        slog.Default(),
		now:           time.Now,
	}
}

// ConfigFunc is used to override default [Bus] settings.
// An invalid setting returns an error wrapping [ErrInvalidConfig] and leaves the configuration unchanged.
type ConfigFunc func(conf *busConf) error

// Separator sets the string used to split topics and patterns into segments.
func Separator(sep string) ConfigFunc {
	return func(conf *busConf) error {
		if len(sep) == 0 {
			return fmt.Errorf("%w: separator must not be empty", ErrInvalidConfig)
		}
		conf.sep = sep
		return nil
	}
}

// HistorySize sets the number of emissions retained for [Bus.History].
func HistorySize(size int) ConfigFunc {
	return func(conf *busConf) error {
		if size < 1 {
			return fmt.Errorf("%w: history size must be >= 1, got %d", ErrInvalidConfig, size)
		}
		conf.historySize = size
		return nil
	}
}

// MaxErrorDepth sets how deeply errors from error handlers may be re-emitted before giving up with [ErrErrorLoop].
func MaxErrorDepth(depth int) ConfigFunc {
	return func(conf *busConf) error {
		if depth < 1 {
			return fmt.Errorf("%w: max error depth must be >= 1, got %d", ErrInvalidConfig, depth)
		}
		conf.maxErrorDepth = depth
		return nil
	}
}

// Logger sets the logger used for debug output. [slog.Default] is used otherwise.
func Logger(logger *slog.Logger) ConfigFunc {
	return func(conf *busConf) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidConfig)
		}
		conf.logger = logger
		return nil
	}
}

// Clock overrides the source of emission timestamps, which is mostly useful for tests.
func Clock(now func() time.Time) ConfigFunc {
	return func(conf *busConf) error {
		if now == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidConfig)
		}
		conf.now = now
		return nil
	}
}
