package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/duscan/pkg/errors"
	"github.com/arthur-debert/duscan/pkg/logging"
	"github.com/arthur-debert/duscan/pkg/paths"
)

// envPrefix is the prefix for environment variable overrides (DUSCAN_TOP etc.)
const envPrefix = "DUSCAN_"

// Load returns the effective configuration: embedded defaults, then the
// user config file (if any), then DUSCAN_* environment overrides.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom is Load with an explicit user config file path. A missing file
// is fine; layers below and above it still apply.
func LoadFrom(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config file
	ruleSource := SourceDefaults
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
		// User rules replace the default set wholesale, so the final
		// array has a single origin.
		uk := koanf.New(".")
		if err := uk.Load(file.Provider(path), parserFor(path)); err == nil && uk.Exists("rules") {
			ruleSource = SourceConfig
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else {
		logger.Debug().Str("path", path).Msg("No user config, using defaults")
	}

	// 3. Environment overrides: DUSCAN_TOP=25 becomes "top",
	// DUSCAN_FOLLOW_SYMLINKS=true becomes "follow_symlinks". Double
	// underscores separate nested keys.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	for i := range cfg.Rules {
		cfg.Rules[i].Source = ruleSource
	}

	logger.Debug().
		Int("ruleCount", len(cfg.Rules)).
		Int("top", cfg.Top).
		Msg("Configuration loaded")

	return &cfg, nil
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
