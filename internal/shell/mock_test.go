package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockRunner_QueuedResponses(t *testing.T) {
	m := NewMockRunner()
	m.On("gh auth status", Fail("not logged in"), Succeed("Logged in"))

	ctx := context.Background()

	_, err := m.Run(ctx, NewCommand("gh", "auth", "status"))
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, "not logged in", exitErr.Stderr)

	res, err := m.Run(ctx, NewCommand("gh", "auth", "status"))
	require.NoError(t, err)
	require.Equal(t, "Logged in", res.Stdout)

	// last response sticks
	res, err = m.Run(ctx, NewCommand("gh", "auth", "status"))
	require.NoError(t, err)
	require.Equal(t, "Logged in", res.Stdout)

	require.Equal(t, []string{"gh auth status", "gh auth status", "gh auth status"}, m.CommandLines())
}

func TestMockRunner_UnscriptedSucceeds(t *testing.T) {
	m := NewMockRunner()

	res, err := m.Run(context.Background(), NewInteractiveCommand("npm", "install").InDir("/workspace/demo"))
	require.NoError(t, err)
	require.Empty(t, res.Stdout)

	calls := m.Calls()
	require.Len(t, calls, 1)
	require.True(t, calls[0].Interactive)
	require.Equal(t, "/workspace/demo", calls[0].Dir)
}

func TestMockRunner_RunError(t *testing.T) {
	m := NewMockRunner()
	m.RunError = errors.New("boom")

	_, err := m.Run(context.Background(), NewCommand("npm", "install"))
	require.EqualError(t, err, "boom")
	require.Empty(t, m.Calls())
}
