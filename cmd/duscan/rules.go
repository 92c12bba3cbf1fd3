package duscan

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRulesCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [path]",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}

			cfg, set, err := loadRuleSet(*configPath, root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if set.Len() == 0 {
				fmt.Fprintln(w, MsgNoRules)
				return nil
			}

			// BuildSet preserves config order, so rules and cfg.Rules
			// line up index for index.
			for i, rc := range cfg.Rules {
				state := "enabled"
				if !rc.IsEnabled() {
					state = "disabled"
				}
				fmt.Fprintf(w, "%3d  %-8s  %-8s  %s\n", i, state, rc.Source, rc.Pattern)
			}
			return nil
		},
	}

	return cmd
}
