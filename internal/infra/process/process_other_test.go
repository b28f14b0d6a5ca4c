//go:build !windows

package process

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExec_CapturesStdout(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	result, err := Exec(context.Background(), "sh", "-c", "printf 'line one\\r\\nline two'")
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode)
	require.Equal(t, "line one\r\nline two", string(result.Output))
}

func TestExec_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	result, err := Exec(context.Background(), "sh", "-c", "echo partial; echo denied >&2; exit 3")
	require.ErrorIs(t, err, ErrNonZeroExit)
	require.NotErrorIs(t, err, ErrStart)
	require.Equal(t, 3, result.ExitCode)
	require.Equal(t, "partial\n", string(result.Output))
	require.Contains(t, err.Error(), "exit=3")
	require.Contains(t, err.Error(), "denied")
}

func TestExec_MissingExecutable(t *testing.T) {
	_, err := Exec(context.Background(), "wlanprofiles-no-such-binary")
	require.ErrorIs(t, err, ErrStart)
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.NotErrorIs(t, err, ErrNonZeroExit)
}

func TestExec_CanceledContext(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Exec(ctx, "sh", "-c", "sleep 5")
	require.ErrorIs(t, err, context.Canceled)
}
