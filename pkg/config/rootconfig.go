package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/duscan/pkg/errors"
	"github.com/arthur-debert/duscan/pkg/logging"
	"github.com/arthur-debert/duscan/pkg/paths"
)

// rootOverride is the shape of a per-scan-root .duscan.toml.
type rootOverride struct {
	Top            *int         `toml:"top"`
	FollowSymlinks *bool        `toml:"follow_symlinks"`
	CrossDevices   *bool        `toml:"cross_devices"`
	Rules          []RuleConfig `toml:"rules"`
}

// ApplyRootOverride merges a .duscan.toml found in the scan root into cfg.
// Root-local rules are placed first so they match before global rules.
// A missing file is not an error.
func ApplyRootOverride(cfg *Config, root string) error {
	logger := logging.GetLogger("config")

	path := paths.RootConfigFile(root)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read root config %s", path)
	}

	var override rootOverride
	if err := toml.Unmarshal(data, &override); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse root config %s", path)
	}

	if override.Top != nil {
		cfg.Top = *override.Top
	}
	if override.FollowSymlinks != nil {
		cfg.FollowSymlinks = *override.FollowSymlinks
	}
	if override.CrossDevices != nil {
		cfg.CrossDevices = *override.CrossDevices
	}
	if len(override.Rules) > 0 {
		for i := range override.Rules {
			override.Rules[i].Source = SourceRoot
		}
		cfg.Rules = append(override.Rules, cfg.Rules...)
	}

	logger.Debug().
		Str("path", path).
		Int("localRules", len(override.Rules)).
		Msg("Applied root config override")

	return nil
}
