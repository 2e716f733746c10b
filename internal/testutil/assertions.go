package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertComponentOpened checks the log output for the open message of a
// lifecycle component.
func AssertComponentOpened(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	assertLogLine(t, result, "Component opened", name)
}

// AssertComponentClosed checks the log output for the close message of a
// lifecycle component.
func AssertComponentClosed(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	assertLogLine(t, result, "Closing component", name)
}

func assertLogLine(t *testing.T, result *HarnessResult, msg, name string) {
	t.Helper()
	attr := fmt.Sprintf("component=%s", name)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, msg) && strings.Contains(line, attr) {
			return
		}
	}
	require.Failf(t, "log line not found", "expected %q with %s in log output", msg, attr)
}
