package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"snapr.dev/pkg/snapr/internal/domain"
	m "snapr.dev/pkg/snapr/internal/model"
)

// acceptCmd represents the accept command.
var acceptCmd = newAcceptCmd()

// rejectCmd represents the reject command.
var rejectCmd = newRejectCmd()

func newAcceptCmd() *cobra.Command {
	return newDecideCmd(m.DecisionAccept, "Accept pending snapshots",
		`Accept pending snapshots, replacing the accepted references. Inline
snapshots are written back into the test sources.`)
}

func newRejectCmd() *cobra.Command {
	return newDecideCmd(m.DecisionReject, "Reject pending snapshots",
		"Reject pending snapshots, keeping the accepted references unchanged.")
}

// newDecideCmd builds a batch command applying decision to every pending
// snapshot below the given paths, or only to those named with --key.
func newDecideCmd(decision m.Decision, short, long string) *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   decision.String() + " [paths...]",
		Short: short,
		Long:  long + "\n\n" + pathPatternsHelp,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Decide(context.Background(), domain.DecideArgs{
				Paths:    parsePaths(args),
				Keys:     keys,
				Decision: decision,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", decision, err)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&keys, keyFlagName, "k", nil, "only decide the snapshot with this key (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(rejectCmd)
}
