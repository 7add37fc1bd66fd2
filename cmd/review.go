package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"snapr.dev/pkg/snapr/internal/domain"
)

// reviewCmd represents the review command.
var reviewCmd = newReviewCmd()

func newReviewCmd() *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "review [paths...]",
		Short: "Interactively review pending snapshots",
		Long:  reviewLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Review(context.Background(), domain.ReviewArgs{
				Paths: parsePaths(args),
				Keys:  keys,
			})

			return err
		},
	}

	cmd.Flags().StringArrayVarP(&keys, keyFlagName, "k", nil, "only review the snapshot with this key (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
