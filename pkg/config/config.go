// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ENV_SEQMATCH_CONFIG_SYSTEM    = "SEQMATCH_CONFIG_SYSTEM"
	ENV_SEQMATCH_CORE_BACKING     = "SEQMATCH_CORE_BACKING"
	ENV_SEQMATCH_CORE_MAXELEMENTS = "SEQMATCH_CORE_MAX_ELEMENTS"
)

const (
	DefaultPrecision = 2
	DefaultFormat    = "text"
	DefaultColor     = "auto"
	DefaultBacking   = "list"
)

type ErrBadConfigValue struct {
	key   string
	value string
}

func (err *ErrBadConfigValue) Error() string {
	return fmt.Sprintf("bad seqmatch config value '%s' for '%s'", err.value, err.key)
}

func IsErrBadConfigValue(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*ErrBadConfigValue)
	return ok
}

func overwrite(a, b string) string {
	if len(b) != 0 {
		return b
	}
	return a
}

type Core struct {
	Backing     string `toml:"backing,omitempty"`
	MaxElements int    `toml:"max_elements,omitzero"` // 0 keeps the lower layer, negative lifts its limit
}

func (c *Core) Overwrite(o *Core) {
	c.Backing = overwrite(c.Backing, o.Backing)
	if o.MaxElements != 0 {
		c.MaxElements = o.MaxElements
	}
}

type Output struct {
	Format    string `toml:"format,omitempty"`
	Precision *int   `toml:"precision,omitempty"`
	Color     string `toml:"color,omitempty"`
}

func (o *Output) Overwrite(other *Output) {
	o.Format = overwrite(o.Format, other.Format)
	o.Color = overwrite(o.Color, other.Color)
	if other.Precision != nil {
		p := *other.Precision
		o.Precision = &p
	}
}

type Config struct {
	Core   Core   `toml:"core,omitempty"`
	Output Output `toml:"output,omitempty"`
}

func (c *Config) Overwrite(o *Config) {
	if o == nil {
		return
	}
	c.Core.Overwrite(&o.Core)
	c.Output.Overwrite(&o.Output)
}

// overwriteEnv applies SEQMATCH_CORE_* environment overrides.
func (c *Config) overwriteEnv() error {
	if b, ok := os.LookupEnv(ENV_SEQMATCH_CORE_BACKING); ok && len(b) != 0 {
		c.Core.Backing = b
	}
	if s, ok := os.LookupEnv(ENV_SEQMATCH_CORE_MAXELEMENTS); ok && len(s) != 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return &ErrBadConfigValue{key: "core.max_elements", value: s}
		}
		c.Core.MaxElements = n
	}
	return nil
}

// Limit returns the element limit per sequence, 0 meaning unlimited. No limit
// applies unless one is configured.
func (c *Config) Limit() int {
	return max(c.Core.MaxElements, 0)
}

func (c *Config) BackingName() string {
	return overwrite(DefaultBacking, c.Core.Backing)
}

func (c *Config) FormatName() string {
	return overwrite(DefaultFormat, c.Output.Format)
}

func (c *Config) ColorMode() string {
	return overwrite(DefaultColor, c.Output.Color)
}

func (c *Config) Precision() int {
	if c.Output.Precision == nil {
		return DefaultPrecision
	}
	return *c.Output.Precision
}

// Validate rejects values no command could use.
func (c *Config) Validate() error {
	if p := c.Precision(); p < 0 || p > 17 {
		return &ErrBadConfigValue{key: "output.precision", value: strconv.Itoa(p)}
	}
	switch c.ColorMode() {
	case "auto", "always", "never":
	default:
		return &ErrBadConfigValue{key: "output.color", value: c.Output.Color}
	}
	return nil
}
