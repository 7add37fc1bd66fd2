package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"snapr.dev/pkg/snapr/internal/domain"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <key> [paths...]",
		Short: "Show the diff of one pending snapshot",
		Long: `Print the diff between a pending snapshot and its accepted reference.
The key is the one printed by 'snapr list', or the test-local form
TestName#N / TestName@name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Show(context.Background(), domain.ShowArgs{
				Key:   args[0],
				Paths: parsePaths(args[1:]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
