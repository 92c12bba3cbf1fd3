// Package config loads duscan's layered configuration and turns configured
// exclude patterns into a rules.Set.
//
// Layers, lowest to highest precedence:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config file ($XDG_CONFIG_HOME/duscan/duscan.toml or .yaml)
//  3. DUSCAN_* environment variables
//  4. a .duscan.toml in the scan root, when present
//
// Malformed exclude patterns are reported here, wrapped with the offending
// pattern; pkg/rules itself stays free of pattern diagnostics.
package config

import (
	"github.com/arthur-debert/duscan/pkg/errors"
	"github.com/arthur-debert/duscan/pkg/rules"
)

// Configuration layers that can supply exclude rules. Environment
// variables override scalars only, so no rule ever originates there.
const (
	SourceDefaults = "defaults"
	SourceConfig   = "config"
	SourceRoot     = "root"
)

// RuleConfig is one configured exclude rule.
type RuleConfig struct {
	// Pattern is a Go regular expression checked against file names.
	Pattern string `koanf:"pattern" toml:"pattern"`

	// Enabled gates the rule. Omitted means enabled.
	Enabled *bool `koanf:"enabled" toml:"enabled,omitempty"`

	// Source names the layer the rule came from. Set by the loader, not
	// read from config files.
	Source string `koanf:"-" toml:"-"`
}

// IsEnabled reports the effective enabled state, defaulting to true.
func (r RuleConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Config is the complete duscan configuration.
type Config struct {
	// Top is the number of largest files reported after a scan.
	Top int `koanf:"top" toml:"top"`

	// FollowSymlinks makes scans count symlink targets instead of the
	// links themselves.
	FollowSymlinks bool `koanf:"follow_symlinks" toml:"follow_symlinks"`

	// CrossDevices controls whether scans descend into directories on a
	// different filesystem than the scan root.
	CrossDevices bool `koanf:"cross_devices" toml:"cross_devices"`

	// Rules are the exclude rules, in evaluation order.
	Rules []RuleConfig `koanf:"rules" toml:"rules"`
}

// BuildSet compiles the configured patterns into a rule set, preserving
// order and enabled flags.
func (c *Config) BuildSet() (*rules.Set, error) {
	set := rules.NewSet()

	for i, rc := range c.Rules {
		if rc.Pattern == "" {
			return nil, errors.Newf(errors.ErrRuleInvalid, "rule %d has an empty pattern", i).
				WithDetail("index", i)
		}

		rule, err := rules.New(rc.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"rule %d has an invalid pattern", i).
				WithDetail("index", i).
				WithDetail("pattern", rc.Pattern)
		}

		rule.Enable(rc.IsEnabled())
		set.Add(rule)
	}

	return set, nil
}
