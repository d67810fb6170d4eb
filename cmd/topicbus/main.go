package main

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	conf, args, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	bus, err := conf.newBus(stderr)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return newConsole(bus, stdout, isTerminal(stdin)).Run(stdin)
	}
	if len(args) > 1 {
		return fmt.Errorf("expected at most one script, got %d", len(args))
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	script, err := parseScript(f)
	if err != nil {
		return fmt.Errorf("invalid script '%s': %w", args[0], err)
	}
	return writeReport(stdout, runScript(bus, script), conf.format)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
