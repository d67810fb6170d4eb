package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/topicbus"
	"github.com/saylorsolutions/topicbus/assert"
	"gopkg.in/yaml.v3"
	"io"
)

var errScriptFailure = errors.New("scripted failure")

// Script describes a sequence of bus operations to run and report on.
type Script struct {
	Subscriptions []Subscription `yaml:"subscriptions"`
	Steps         []Step         `yaml:"emit"`
	History       []string       `yaml:"history"`
}

// Subscription registers a named recording handler for Pattern.
// If Fail is set, the handler returns an error instead of a result.
type Subscription struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Fail    bool   `yaml:"fail"`
}

// Step either emits Message to Topic, or unsubscribes the subscription named by Off.
type Step struct {
	Topic   string `yaml:"topic"`
	Message any    `yaml:"message"`
	Off     string `yaml:"off"`
}

func parseScript(r io.Reader) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("script is empty")
		}
		return nil, err
	}
	if err := script.validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

func (s *Script) validate() error {
	errs := assert.CollectErrors()
	names := map[string]bool{}
	for i, sub := range s.Subscriptions {
		if len(sub.Name) == 0 {
			errs.Addf("subscription %d: missing name", i)
		} else if names[sub.Name] {
			errs.Addf("subscription %d: duplicate name '%s'", i, sub.Name)
		}
		names[sub.Name] = true
		if len(sub.Pattern) == 0 {
			errs.Addf("subscription %d: missing pattern", i)
		}
	}
	for i, step := range s.Steps {
		switch {
		case len(step.Topic) > 0 && len(step.Off) > 0:
			errs.Addf("emit step %d: only one of topic or off may be set", i)
		case len(step.Off) > 0:
			if !names[step.Off] {
				errs.Addf("emit step %d: unknown subscription '%s'", i, step.Off)
			}
		case len(step.Topic) == 0:
			errs.Addf("emit step %d: missing topic", i)
		}
	}
	for i, pattern := range s.History {
		if len(pattern) == 0 {
			errs.Addf("history %d: empty pattern", i)
		}
	}
	return errs.Result()
}

// runScript subscribes every scripted subscription, runs each step in order, and queries history.
// Handler failures are captured in the report rather than stopping the script.
func runScript(bus *topicbus.Bus, script *Script) *Report {
	var (
		report    = new(Report)
		delivered []Delivery
		offs      = map[string]topicbus.Unsubscribe{}
	)
	for _, sub := range script.Subscriptions {
		offs[sub.Name] = bus.On(sub.Pattern, func(msg any, meta topicbus.Meta) (any, error) {
			delivered = append(delivered, Delivery{Subscription: sub.Name, Topic: meta.Topic})
			if sub.Fail {
				return nil, fmt.Errorf("%w in '%s'", errScriptFailure, sub.Name)
			}
			return sub.Name, nil
		})
	}

	for _, step := range script.Steps {
		if len(step.Off) > 0 {
			offs[step.Off]()
			report.Steps = append(report.Steps, StepReport{Off: step.Off})
			continue
		}
		delivered = nil
		results, err := bus.Emit(step.Topic, step.Message)
		sr := StepReport{
			Topic:     step.Topic,
			Message:   step.Message,
			Delivered: delivered,
			Results:   results,
		}
		if err != nil {
			sr.Error = err.Error()
		}
		report.Steps = append(report.Steps, sr)
	}

	for _, pattern := range script.History {
		hr := HistoryReport{Pattern: pattern}
		for _, rec := range bus.History(pattern) {
			hr.Records = append(hr.Records, HistoryRecord{Topic: rec.Topic, Millis: rec.Millis()})
		}
		report.History = append(report.History, hr)
	}
	return report
}
