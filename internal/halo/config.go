package halo

import (
	"strconv"
	"time"
)

// Config controls a distributed automaton run.
type Config struct {
	Width       int
	Generations int
	Workers     int
	Rule        uint8

	// StepTimeout bounds how long a worker may wait on a boundary
	// exchange before the run is aborted. Zero disables the deadline.
	StepTimeout time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Generations: 256, Workers: 4, Rule: 30}
}

// FromMap populates a Config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["gens"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["timeout"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.StepTimeout = parsed
		}
	}
	return c
}
