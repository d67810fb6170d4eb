package main

import (
	"bufio"
	"fmt"
	"github.com/saylorsolutions/topicbus"
	"io"
	"slices"
	"strings"
)

const consoleHelp = `COMMANDS
  on NAME PATTERN         Subscribe a printing handler named NAME to PATTERN
  off NAME                Unsubscribe the handler named NAME
  emit TOPIC [MESSAGE...] Emit MESSAGE to TOPIC
  history PATTERN         Print recorded emissions matching PATTERN
  subs                    List subscription names
  help                    Print this help text
  quit                    Exit the console
`

// console is a line-oriented interface to a single bus.
type console struct {
	bus    *topicbus.Bus
	out    io.Writer
	prompt bool
	subs   map[string]topicbus.Unsubscribe
}

func newConsole(bus *topicbus.Bus, out io.Writer, prompt bool) *console {
	return &console{
		bus:    bus,
		out:    out,
		prompt: prompt,
		subs:   map[string]topicbus.Unsubscribe{},
	}
}

func (c *console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Run reads commands from in until it's exhausted or a quit command is read.
func (c *console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if c.prompt {
			c.printf("> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		quit, err := c.exec(fields[0], fields[1:])
		if err != nil {
			c.printf("%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (c *console) exec(cmd string, args []string) (bool, error) {
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true, nil
	case "help":
		c.printf(consoleHelp)
	case "on":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: on NAME PATTERN")
		}
		return false, c.on(args[0], args[1])
	case "off":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: off NAME")
		}
		return false, c.off(args[0])
	case "emit":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: emit TOPIC [MESSAGE...]")
		}
		return false, c.emit(args[0], strings.Join(args[1:], " "))
	case "history":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: history PATTERN")
		}
		for _, rec := range c.bus.History(args[0]) {
			c.printf("%d %s\n", rec.Millis(), rec.Topic)
		}
	case "subs":
		names := make([]string, 0, len(c.subs))
		for name := range c.subs {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			c.printf("%s\n", name)
		}
	default:
		return false, fmt.Errorf("unknown command '%s', try 'help'", cmd)
	}
	return false, nil
}

func (c *console) on(name, pattern string) error {
	if _, ok := c.subs[name]; ok {
		return fmt.Errorf("subscription '%s' already exists", name)
	}
	c.subs[name] = c.bus.On(pattern, topicbus.Listener(func(msg any, meta topicbus.Meta) {
		c.printf("[%s] %s: %v\n", name, meta.Topic, msg)
	}))
	return nil
}

func (c *console) off(name string) error {
	off, ok := c.subs[name]
	if !ok {
		return fmt.Errorf("no subscription named '%s'", name)
	}
	off()
	delete(c.subs, name)
	return nil
}

func (c *console) emit(topic, msg string) error {
	_, err := c.bus.Emit(topic, msg)
	return err
}
