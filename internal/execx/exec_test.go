package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand reroutes command execution into TestHelperProcess
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the mock command executor
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "no command specified")
		os.Exit(1)
	}

	switch args[0] {
	case "echo":
		fmt.Println(strings.Join(args[1:], " "))
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "boom")
		os.Exit(1)
	default:
		os.Exit(0)
	}
}

func TestRun_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := NewExecutor(&Options{Stdout: &stdout, Stderr: &stderr})
	e.commandFunc = mockCommand

	err := e.Run(context.Background(), "echo", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestRun_Failure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := NewExecutor(&Options{Stdout: &stdout, Stderr: &stderr})
	e.commandFunc = mockCommand

	err := e.Run(context.Background(), "fail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail failed")
	assert.Contains(t, stderr.String(), "boom")
}

func TestRun_MissingCommandGetsHint(t *testing.T) {
	e := NewExecutor(nil)

	err := e.Run(context.Background(), "definitely-not-a-real-command-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLookPath(t *testing.T) {
	assert.False(t, LookPath("definitely-not-a-real-command-xyz"))
}
