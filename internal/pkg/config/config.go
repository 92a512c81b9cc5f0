// Package config defines the runtime configuration surface.
//
// Components receive the Config interface through their constructors; nothing
// reads configuration globals at call time. Values that are secrets (signing
// key, provider API key) are loaded once at process start.
package config

import (
	"io"
	"time"
)

// TimeConfig defines helpers for retrieving duration configuration values.
type TimeConfig interface {
	// GetSecond reads the value for key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetMinute reads the value for key as a number of minutes.
	GetMinute(key string) time.Duration

	// GetHour reads the value for key as a number of hours.
	GetHour(key string) time.Duration
}

// Config is the set of typed getters the application depends on. Missing keys
// yield zero values; callers supply their own defaults where that matters.
type Config interface {
	io.Closer
	TimeConfig

	// GetBool reads the value for key as a bool.
	GetBool(key string) bool

	// GetInt reads the value for key as an int.
	GetInt(key string) int

	// GetInt32 reads the value for key as an int32.
	GetInt32(key string) int32

	// GetFloat64 reads the value for key as a float64.
	GetFloat64(key string) float64

	// GetString reads the value for key as a string.
	GetString(key string) string

	// GetArray reads the value for key as a slice of strings.
	GetArray(key string) []string
}
