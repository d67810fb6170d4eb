// Package env reads configuration defaults from environment variables.
// Each lookup falls back to a default when the variable is unset, blank, or invalid, so callers never have to handle parse errors.
package env

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" by [Bool].
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" by [Bool].
)

// Val returns the trimmed value of the environment variable key, or defaultVal if it's unset or blank.
func Val(key string, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

// Bool interprets an environment variable as a boolean using [DefaultTrue] and [DefaultFalse], compared case-insensitively.
func Bool(key string, defaultVal bool) bool {
	val := strings.ToLower(Val(key, ""))
	switch {
	case slices.Contains(DefaultTrue, val):
		return true
	case slices.Contains(DefaultFalse, val):
		return false
	default:
		return defaultVal
	}
}

// Int interprets an environment variable as a base 10 integer.
func Int(key string, defaultVal int) int {
	val := Val(key, "")
	if len(val) == 0 {
		return defaultVal
	}
	ival, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return ival
}

// OneOf returns the value of key if it's one of the allowed values (case-insensitive), and defaultVal otherwise.
// The returned value is lower case.
func OneOf(key string, defaultVal string, allowed ...string) string {
	val := strings.ToLower(Val(key, ""))
	for _, a := range allowed {
		if val == strings.ToLower(a) {
			return val
		}
	}
	return defaultVal
}
