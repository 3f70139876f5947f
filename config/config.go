package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"strings"
)

// Config is an ordered collection of string key-value entries. Values are stored as plain strings, the typed getters
// convert them on demand. Reading a missing or malformed value never fails, the lenient getters return the given
// fallback and the strict ones an error.
type Config struct {
	entries map[string]string
	keys    []string
}

func New() *Config {
	return &Config{
		entries: map[string]string{},
	}
}

func (c *Config) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Keys returns all keys in the order they were first set.
func (c *Config) Keys() []string {
	return c.keys
}

// Set stores the given value under the given key. Non-string values are converted to their canonical string form.
// Setting an existing key overwrites its value but keeps its original position.
func (c *Config) Set(key string, value any) {
	if _, ok := c.entries[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = cast.ToString(value)
}

func (c *Config) Value(key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *Config) Get(key string, fallback string) string {
	if value, ok := c.entries[key]; ok {
		return value
	}
	return fallback
}

func (c *Config) Float64(key string, fallback float64) float64 {
	value, err := c.Float64E(key)
	if err != nil {
		return fallback
	}
	return value
}

func (c *Config) Float64E(key string) (float64, error) {
	raw, ok := c.entries[key]
	if !ok {
		return 0, missingKeyError(key)
	}
	return cast.ToFloat64E(raw)
}

func (c *Config) Bool(key string, fallback bool) bool {
	value, err := c.BoolE(key)
	if err != nil {
		return fallback
	}
	return value
}

func (c *Config) BoolE(key string) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, missingKeyError(key)
	}
	return cast.ToBoolE(raw)
}

// String serializes the config into a fragment that Parse accepts again. Only explicitly set entries are emitted, in
// the order they were set. Values that would not survive lexing as a single token get quoted.
func (c *Config) String() string {
	var sb strings.Builder

	for i, key := range c.keys {
		if i > 0 {
			sb.WriteString(entrySeparator)
		}
		sb.WriteString(key)
		sb.WriteString(assignmentOperator)
		sb.WriteString(quoteIfNeeded(c.entries[key]))
	}

	return sb.String()
}

func quoteIfNeeded(value string) string {
	if value == "" || strings.ContainsAny(value, entrySeparator+assignmentOperator+stringDelimiter+" \t\n") {
		return stringDelimiter + value + stringDelimiter
	}
	return value
}

func missingKeyError(key string) error {
	return errors.Errorf("No entry for key '%s'", key)
}
