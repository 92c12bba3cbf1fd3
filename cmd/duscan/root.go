// Package duscan wires up the duscan command-line interface.
package duscan

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/duscan/internal/version"
	"github.com/arthur-debert/duscan/pkg/config"
	"github.com/arthur-debert/duscan/pkg/logging"
	"github.com/arthur-debert/duscan/pkg/paths"
	"github.com/arthur-debert/duscan/pkg/rules"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "duscan",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but treat it as incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newScanCmd(&configPath))
	rootCmd.AddCommand(newCheckCmd(&configPath))
	rootCmd.AddCommand(newRulesCmd(&configPath))
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// loadConfig loads the layered configuration, honoring --config.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.LoadFrom(paths.ConfigFile())
}

// loadRuleSet loads the configuration effective for root (root may be
// empty for commands without a scan root) and compiles its rule set.
func loadRuleSet(configPath, root string) (*config.Config, *rules.Set, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	if root != "" {
		if err := config.ApplyRootOverride(cfg, root); err != nil {
			return nil, nil, err
		}
	}

	set, err := cfg.BuildSet()
	if err != nil {
		return nil, nil, err
	}

	return cfg, set, nil
}
