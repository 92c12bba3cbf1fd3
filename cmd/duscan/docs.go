package duscan

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/duscan/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: MsgDocsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintln(w, MsgNoTopics)
				for _, name := range topicNames() {
					fmt.Fprintf(w, "  %s\n", name)
				}
				return nil
			}

			topic := args[0]
			content, err := topicsFS.ReadFile("topics/" + topic + ".md")
			if err != nil {
				return errors.Newf(errors.ErrTopicNotFound, "no such topic: %s", topic).
					WithDetail("topic", topic)
			}

			fmt.Fprint(w, renderMarkdown(string(content)))
			return nil
		},
	}

	return cmd
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw content when glamour cannot render
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
