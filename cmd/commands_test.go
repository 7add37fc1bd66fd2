package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"snapr.dev/pkg/snapr/internal/domain"
	domainmocks "snapr.dev/pkg/snapr/internal/domain/mocks"
	m "snapr.dev/pkg/snapr/internal/model"
)

func useWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func TestListCmd_PassesPaths(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newListCmd())

	mockWorkflow.EXPECT().
		List(mock.Anything, domain.ListArgs{Paths: []m.Path{"./pkg/...", "./cmd"}}).
		Return(nil)

	cmd.SetArgs([]string{"list", "./pkg/...", "./cmd"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_DefaultsToNoPaths(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newListCmd())

	mockWorkflow.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
			return len(args.Paths) == 0
		})).
		Return(nil)

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}

func TestAcceptCmd_Keys(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newAcceptCmd())

	mockWorkflow.EXPECT().
		Decide(mock.Anything, domain.DecideArgs{
			Paths:    []m.Path{"./..."},
			Keys:     []string{"pkg/TestA", "TestB@json"},
			Decision: m.DecisionAccept,
		}).
		Return(m.ReviewReport{}, nil)

	cmd.SetArgs([]string{"accept", "./...", "--key", "pkg/TestA", "-k", "TestB@json"})
	require.NoError(t, cmd.Execute())
}

func TestRejectCmd_ReturnsFailures(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newRejectCmd())

	mockWorkflow.EXPECT().
		Decide(mock.Anything, mock.MatchedBy(func(args domain.DecideArgs) bool {
			return args.Decision == m.DecisionReject && len(args.Keys) == 0
		})).
		Return(m.ReviewReport{}, errors.New("permission denied"))

	cmd.SetArgs([]string{"reject"})

	err := cmd.Execute()
	require.ErrorContains(t, err, "reject: permission denied")
}

func TestReviewCmd(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newReviewCmd())

	mockWorkflow.EXPECT().
		Review(mock.Anything, domain.ReviewArgs{Paths: []m.Path{"./internal/..."}, Keys: []string{"TestA"}}).
		Return(m.ReviewReport{Accepted: []m.Identity{{Test: "TestA"}}}, nil)

	cmd.SetArgs([]string{"review", "./internal/...", "--key", "TestA"})
	require.NoError(t, cmd.Execute())
}

func TestShowCmd(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newShowCmd())

	mockWorkflow.EXPECT().
		Show(mock.Anything, domain.ShowArgs{Key: "pkg/TestA", Paths: []m.Path{"./pkg"}}).
		Return(nil)

	cmd.SetArgs([]string{"show", "pkg/TestA", "./pkg"})
	require.NoError(t, cmd.Execute())
}

func TestShowCmd_RequiresKey(t *testing.T) {
	useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newShowCmd())

	cmd.SetArgs([]string{"show"})
	require.Error(t, cmd.Execute())
}

func TestTestCmd_SplitsGoTestArgs(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, out := newTestRootCmd(t, newTestCmd())

	mockWorkflow.EXPECT().
		Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
			return len(args.Packages) == 1 && args.Packages[0] == "./pkg/..." &&
				len(args.GoTestArgs) == 2 && args.GoTestArgs[0] == "-run" && args.GoTestArgs[1] == "TestUser" &&
				args.Review && !args.Accept && args.Output == out
		})).
		Return(nil)

	cmd.SetArgs([]string{"test", "--review", "./pkg/...", "--", "-run", "TestUser"})
	require.NoError(t, cmd.Execute())
}

func TestTestCmd_WithoutDash(t *testing.T) {
	mockWorkflow := useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newTestCmd())

	mockWorkflow.EXPECT().
		Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
			return len(args.Packages) == 0 && args.GoTestArgs == nil && args.Accept
		})).
		Return(nil)

	cmd.SetArgs([]string{"test", "--accept"})
	require.NoError(t, cmd.Execute())
}

func TestTestCmd_ReviewAndAcceptAreExclusive(t *testing.T) {
	useWorkflow(t)
	cmd, _ := newTestRootCmd(t, newTestCmd())

	cmd.SetArgs([]string{"test", "--review", "--accept"})
	require.Error(t, cmd.Execute())
}
