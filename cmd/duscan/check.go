package duscan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/duscan/pkg/errors"
	"github.com/arthur-debert/duscan/pkg/style"
)

func newCheckCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <name>...",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, err := loadRuleSet(*configPath, "")
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			anyExcluded := false

			for _, name := range args {
				if rule := set.MatchingRule(name); rule != nil {
					anyExcluded = true
					fmt.Fprintf(w, "%s: excluded by rule %s\n",
						name, style.PatternStyle.Render(rule.Pattern()))
				} else {
					fmt.Fprintf(w, "%s: not excluded\n", name)
				}
			}

			// Excluded names make the command fail so scripts can branch
			// on the exit status
			if anyExcluded {
				return errors.New(errors.ErrNameExcluded, MsgCheckExcluded)
			}
			return nil
		},
	}

	return cmd
}
