package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"snapr.dev/pkg/snapr/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List pending snapshots",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(context.Background(), domain.ListArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
