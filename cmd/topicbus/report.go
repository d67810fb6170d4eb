package main

import (
	"fmt"
	"github.com/goccy/go-json"
	"io"
	"strings"
)

type Report struct {
	Steps   []StepReport    `json:"steps"`
	History []HistoryReport `json:"history,omitempty"`
}

type StepReport struct {
	Topic     string     `json:"topic,omitempty"`
	Message   any        `json:"message,omitempty"`
	Off       string     `json:"off,omitempty"`
	Delivered []Delivery `json:"delivered,omitempty"`
	Results   []any      `json:"results,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Delivery records that a subscription's handler was called, and for which topic.
// Errors redirected to error subscribers show up with the error topic.
type Delivery struct {
	Subscription string `json:"subscription"`
	Topic        string `json:"topic"`
}

type HistoryReport struct {
	Pattern string          `json:"pattern"`
	Records []HistoryRecord `json:"records"`
}

type HistoryRecord struct {
	Topic  string `json:"topic"`
	Millis int64  `json:"ts"`
}

func writeReport(w io.Writer, report *Report, format string) error {
	if format == formatJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var buf strings.Builder
	for _, step := range report.Steps {
		if len(step.Off) > 0 {
			buf.WriteString(fmt.Sprintf("off %s\n", step.Off))
			continue
		}
		buf.WriteString(fmt.Sprintf("emit %s\n", step.Topic))
		if len(step.Delivered) == 0 {
			buf.WriteString("  (no subscribers)\n")
		}
		for _, d := range step.Delivered {
			buf.WriteString(fmt.Sprintf("  -> %s (%s)\n", d.Subscription, d.Topic))
		}
		if len(step.Error) > 0 {
			buf.WriteString(fmt.Sprintf("  error: %s\n", step.Error))
		}
	}
	for _, hist := range report.History {
		buf.WriteString(fmt.Sprintf("history %s\n", hist.Pattern))
		for _, rec := range hist.Records {
			buf.WriteString(fmt.Sprintf("  %d %s\n", rec.Millis, rec.Topic))
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
