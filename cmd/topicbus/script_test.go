package main

import (
	"github.com/saylorsolutions/topicbus"
	"github.com/saylorsolutions/topicbus/assert"
	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

const testScript = `
subscriptions:
  - name: jobs
    pattern: "jobs.*"
  - name: everything
    pattern: "#"
  - name: broken
    pattern: "jobs.fail"
    fail: true
  - name: errors
    pattern: error
emit:
  - topic: jobs.run
    message: hello
  - topic: jobs.fail
  - off: jobs
  - topic: jobs.run
history:
  - "jobs.*"
  - "error"
`

func fixedBus(t *testing.T) *topicbus.Bus {
	t.Helper()
	now := time.UnixMilli(1_000)
	bus, err := topicbus.NewE(topicbus.Clock(func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}))
	require.NoError(t, err)
	return bus
}

func TestParseScript(t *testing.T) {
	script, err := parseScript(strings.NewReader(testScript))
	require.NoError(t, err)
	testify.Len(t, script.Subscriptions, 4)
	testify.True(t, script.Subscriptions[2].Fail)
	testify.Len(t, script.Steps, 4)
	testify.Equal(t, "hello", script.Steps[0].Message)
	testify.Equal(t, "jobs", script.Steps[2].Off)
	testify.Equal(t, []string{"jobs.*", "error"}, script.History)
}

func TestParseScript_Invalid(t *testing.T) {
	const invalid = `
subscriptions:
  - name: a
    pattern: "a"
  - name: a
    pattern: ""
  - pattern: "b"
emit:
  - topic: a
    off: a
  - off: missing
  - message: no topic
history:
  - ""
`
	_, err := parseScript(strings.NewReader(invalid))
	require.Error(t, err)
	var collected *assert.Collector
	require.ErrorAs(t, err, &collected)
	testify.Equal(t, 7, collected.Len(), "All problems should be reported together: %v", err)
	testify.Contains(t, err.Error(), "duplicate name 'a'")
	testify.Contains(t, err.Error(), "unknown subscription 'missing'")
}

func TestParseScript_UnknownField(t *testing.T) {
	_, err := parseScript(strings.NewReader("subscription: []\n"))
	testify.Error(t, err)
}

func TestParseScript_Empty(t *testing.T) {
	_, err := parseScript(strings.NewReader(""))
	testify.Error(t, err)
}

func TestRunScript(t *testing.T) {
	script, err := parseScript(strings.NewReader(testScript))
	require.NoError(t, err)
	report := runScript(fixedBus(t), script)

	require.Len(t, report.Steps, 4)
	first := report.Steps[0]
	testify.Equal(t, "jobs.run", first.Topic)
	testify.Equal(t, []Delivery{
		{Subscription: "everything", Topic: "jobs.run"},
		{Subscription: "jobs", Topic: "jobs.run"},
	}, first.Delivered)
	testify.Equal(t, []any{"everything", "jobs"}, first.Results)
	testify.Empty(t, first.Error)

	second := report.Steps[1]
	testify.Empty(t, second.Error, "Failure should be redirected to the error subscriber")
	testify.Contains(t, second.Delivered, Delivery{Subscription: "broken", Topic: "jobs.fail"})
	testify.Contains(t, second.Delivered, Delivery{Subscription: "errors", Topic: topicbus.ErrorTopic})
	testify.NotContains(t, second.Results, "broken")

	testify.Equal(t, "jobs", report.Steps[2].Off)
	testify.Equal(t, []any{"everything"}, report.Steps[3].Results, "Unsubscribed handler should not be called")

	require.Len(t, report.History, 2)
	testify.Equal(t, []HistoryRecord{
		{Topic: "jobs.run", Millis: 1_001},
		{Topic: "jobs.fail", Millis: 1_002},
		{Topic: "jobs.run", Millis: 1_004},
	}, report.History[0].Records)
	testify.Equal(t, []HistoryRecord{{Topic: "error", Millis: 1_003}}, report.History[1].Records)
}

func TestRunScript_UnhandledError(t *testing.T) {
	script, err := parseScript(strings.NewReader(`
subscriptions:
  - name: broken
    pattern: "a"
    fail: true
emit:
  - topic: a
`))
	require.NoError(t, err)
	report := runScript(fixedBus(t), script)
	require.Len(t, report.Steps, 1)
	testify.Contains(t, report.Steps[0].Error, "scripted failure in 'broken'")
}
