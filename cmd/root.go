// Package cmd provides the root command and CLI setup for snapr.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snapr.dev/pkg/snapr/internal/adapter"
	"snapr.dev/pkg/snapr/internal/controller"
	"snapr.dev/pkg/snapr/internal/domain"
	m "snapr.dev/pkg/snapr/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var referenceStore adapter.ReferenceStore
var pendingStore adapter.PendingStore
var testAdapter adapter.TestRunnerAdapter
var reviewer domain.Reviewer
var workflow domain.Workflow
var ui controller.UI

// verboseFlag raises the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	snapshotDir := viper.GetString(snapshotDirKey)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	referenceStore = adapter.NewLocalReferenceStore(fsAdapter, goFileAdapter, snapshotDir)
	pendingStore = adapter.NewLocalPendingStore(fsAdapter, snapshotDir)
	testAdapter = adapter.NewLocalTestRunnerAdapter()
	reviewer = domain.NewReviewer(referenceStore, pendingStore)
	workflow = domain.NewWorkflow(reviewer, testAdapter, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          search the current directory recursively (default)
  - ./pkg/...      search the pkg directory recursively
  - ./cmd ./pkg    search multiple directories`

const rootLongDescription = `Snapr is a snapshot testing tool for Go. Tests assert values against
accepted snapshots stored next to the test sources or inline in the test code;
mismatches leave pending snapshots that this command lets you review, accept
or reject.

` + pathPatternsHelp

const listLongDescription = `List pending snapshots waiting for review.

` + pathPatternsHelp

const reviewLongDescription = `Review pending snapshots one by one, showing the diff against the
accepted reference. Accepting an inline snapshot rewrites the literal in the
test source.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapr",
		Short: "Go snapshot testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the persistent flags
// installed, for wiring a single subcommand in isolation.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
