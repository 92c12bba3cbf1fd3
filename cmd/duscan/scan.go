package duscan

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/duscan/pkg/scanner"
	"github.com/arthur-debert/duscan/pkg/style"
)

func newScanCmd(configPath *string) *cobra.Command {
	var (
		formatStr string
		top       int
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: MsgScanShort,
		Long:  MsgScanLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			format, err := style.ParseFormat(formatStr)
			if err != nil {
				return err
			}

			cfg, set, err := loadRuleSet(*configPath, root)
			if err != nil {
				return err
			}
			if top > 0 {
				cfg.Top = top
			}

			s := scanner.New(set,
				scanner.WithTop(cfg.Top),
				scanner.WithFollowSymlinks(cfg.FollowSymlinks),
				scanner.WithCrossDevices(cfg.CrossDevices),
			)
			report, err := s.Scan(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderReport(out, report, format.Resolve(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "auto", MsgFlagFormat)
	cmd.Flags().IntVar(&top, "top", 0, MsgFlagTop)

	return cmd
}

func renderReport(w io.Writer, report *scanner.Report, format style.Format) {
	styled := format == style.FormatTerminal

	title := fmt.Sprintf("%s — %s", report.Root, scanner.HumanBytes(report.TotalBytes))
	if styled {
		title = style.TitleStyle.Render(title)
	}
	fmt.Fprintln(w, title)

	summary := fmt.Sprintf("%d files, %d directories", report.FileCount, report.DirCount)
	if n := len(report.Exclusions); n > 0 {
		summary += fmt.Sprintf(", %d excluded (%d dirs)", n, report.ExcludedDirs())
	}
	if report.ErrorCount > 0 {
		summary += fmt.Sprintf(", %d unreadable", report.ErrorCount)
	}
	if report.SkippedMounts > 0 {
		summary += fmt.Sprintf(", %d mount points skipped", report.SkippedMounts)
	}
	if styled {
		summary = style.MutedStyle.Render(summary)
	}
	fmt.Fprintln(w, summary)

	if len(report.TopFiles) > 0 {
		header := fmt.Sprintf("\nLargest %d files:", len(report.TopFiles))
		fmt.Fprintln(w, header)
		for _, entry := range report.TopFiles {
			size := scanner.HumanBytes(entry.Size)
			path := entry.Path
			if styled {
				size = style.SizeStyle.Render(size)
				path = style.PathStyle.Render(path)
			}
			fmt.Fprintf(w, "  %10s  %s\n", size, path)
		}
	}

	if len(report.Exclusions) > 0 {
		fmt.Fprintln(w, "\nExcluded:")
		for _, excl := range report.Exclusions {
			pattern := excl.Pattern
			path := excl.Path
			if excl.IsDir {
				path += "/"
			}
			if styled {
				pattern = style.PatternStyle.Render(pattern)
				path = style.MutedStyle.Render(path)
			}
			fmt.Fprintf(w, "  %s  (rule: %s)\n", path, pattern)
		}
	}
}
