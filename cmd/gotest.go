package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"snapr.dev/pkg/snapr/internal/domain"
)

const testLongDescription = `Run 'go test' for the given packages (default: ./...) with snapshot
assertions recording pending snapshots instead of failing, then list them.
With --review the pending snapshots are reviewed right away; with --accept
they are all accepted.

Arguments after -- are passed to 'go test' unchanged:
  snapr test ./pkg/... -- -run TestUser -count=1`

// testCmd represents the test command.
var testCmd = newTestCmd()

func newTestCmd() *cobra.Command {
	var review, accept bool

	cmd := &cobra.Command{
		Use:   "test [packages...] [-- go test flags]",
		Short: "Run go test and collect pending snapshots",
		Long:  testLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, goTestArgs := splitGoTestArgs(cmd, args)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return workflow.Test(ctx, domain.TestArgs{
				Packages:   packages,
				GoTestArgs: goTestArgs,
				Review:     review,
				Accept:     accept,
				Output:     cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&review, reviewFlagName, false, "review pending snapshots after the run")
	cmd.Flags().BoolVar(&accept, acceptFlagName, false, "accept all pending snapshots after the run")
	cmd.MarkFlagsMutuallyExclusive(reviewFlagName, acceptFlagName)

	return cmd
}

// splitGoTestArgs separates package patterns from the arguments given after
// "--".
func splitGoTestArgs(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}

	return args[:dash], args[dash:]
}

func init() {
	rootCmd.AddCommand(testCmd)
}
