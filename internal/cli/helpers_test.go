package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// runSeal executes the root command with args and stdin and returns what it
// wrote to stdout and stderr. Logs and config come from a fresh SEAL_HOME.
func runSeal(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("SEAL_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(CloseLogFile)

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// mockTerminalCheckFunc replaces terminalCheck and returns a restore function.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockConfirmFunc replaces confirmOverwrite and returns a restore function.
func mockConfirmFunc(answer bool, err error) func() {
	original := confirmOverwrite
	confirmOverwrite = func(string) (bool, error) { return answer, err }
	return func() { confirmOverwrite = original }
}
