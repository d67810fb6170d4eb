package main

import (
	"fmt"
	"github.com/saylorsolutions/topicbus"
	"github.com/saylorsolutions/topicbus/env"
	"github.com/saylorsolutions/topicbus/routing"
	flag "github.com/spf13/pflag"
	"io"
	"log/slog"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type config struct {
	sep         string
	historySize int
	format      string
	verbose     bool
}

// parseConfig reads defaults from the environment, and overrides them with flags from args.
// The remaining positional arguments are returned.
func parseConfig(args []string, output io.Writer) (config, []string, error) {
	conf := config{
		sep:         env.Val("TOPICBUS_SEPARATOR", routing.DefaultSeparator),
		historySize: env.Int("TOPICBUS_HISTORY_SIZE", topicbus.DefaultHistorySize),
		format:      env.OneOf("TOPICBUS_FORMAT", formatText, formatText, formatJSON),
		verbose:     env.Bool("TOPICBUS_VERBOSE", false),
	}
	fs := flag.NewFlagSet("topicbus", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.SetInterspersed(false)
	fs.StringVar(&conf.sep, "sep", conf.sep, "Topic segment separator")
	fs.IntVar(&conf.historySize, "history", conf.historySize, "Number of emissions kept for history queries")
	fs.StringVar(&conf.format, "format", conf.format, "Script report format, either 'text' or 'json'")
	fs.BoolVarP(&conf.verbose, "verbose", "v", conf.verbose, "Enables debug logging to STDERR")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(output, `topicbus runs a topic bus script, or starts an interactive console if no script is given.

USAGE:
topicbus [FLAGS] [SCRIPT.yaml]

FLAGS
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		return conf, nil, err
	}
	if conf.format != formatText && conf.format != formatJSON {
		return conf, nil, fmt.Errorf("unknown format '%s', expected '%s' or '%s'", conf.format, formatText, formatJSON)
	}
	return conf, fs.Args(), nil
}

func (c config) logger(output io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}

func (c config) newBus(output io.Writer) (*topicbus.Bus, error) {
	return topicbus.NewE(
		topicbus.Separator(c.sep),
		topicbus.HistorySize(c.historySize),
		topicbus.Logger(c.logger(output)),
	)
}
