package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modshell/internal/commands"
	"modshell/pkg/cmdtypes"
)

func get(t *testing.T, name string) *cmdtypes.Command {
	t.Helper()
	cmd, ok := commands.GlobalRegistry.Get(name)
	require.True(t, ok, "command %s not registered", name)
	return cmd
}

func TestBuiltin_Open(t *testing.T) {
	cmd := get(t, "open")

	assert.Equal(t, "Open a URL in the current view", cmd.Description)
	assert.True(t, cmd.SupportsCount)
	assert.Equal(t, 1, cmd.MinArgs)
	assert.Equal(t, 1, cmd.MaxArgs)
	assert.Equal(t, cmdtypes.NoSplit, cmd.MaxSplit)
	assert.Equal(t, []string{"url"}, cmd.Completion)
}

func TestBuiltin_Scroll(t *testing.T) {
	cmd := get(t, "scroll")

	assert.Equal(t, 0, cmd.MinArgs)
	assert.Equal(t, cmdtypes.Unbounded, cmd.MaxArgs)
	assert.False(t, cmd.SupportsCount)
}

func TestBuiltin_QuitAliases(t *testing.T) {
	q := get(t, "q")
	quit := get(t, "quit")

	assert.Same(t, q, quit)
	assert.Equal(t, "q", q.Name)
	assert.Equal(t, []string{"quit"}, q.Aliases)
}

func TestBuiltin_TabFocus(t *testing.T) {
	cmd := get(t, "tab-focus")

	assert.Equal(t, "tabs.current", cmd.Instance)
	assert.True(t, cmd.SupportsCount)
	// Explicit "?" override.
	assert.Equal(t, 0, cmd.MinArgs)
	assert.Equal(t, 1, cmd.MaxArgs)
}

func TestBuiltin_ModeConstraints(t *testing.T) {
	enter := get(t, "enter-insert")
	assert.Equal(t, []cmdtypes.Mode{cmdtypes.ModeNormal}, enter.Modes)
	assert.Empty(t, enter.NotModes)

	leave := get(t, "leave-mode")
	assert.True(t, leave.Hidden)
	assert.Equal(t, []cmdtypes.Mode{cmdtypes.ModeNormal}, leave.NotModes)
	assert.Empty(t, leave.Modes)
}

func TestBuiltin_HiddenExcludedFromVisible(t *testing.T) {
	for _, cmd := range commands.GlobalRegistry.Visible() {
		assert.NotEqual(t, "leave-mode", cmd.Name)
	}
}

func TestBuiltin_HandlersCallable(t *testing.T) {
	for _, cmd := range commands.GlobalRegistry.All() {
		require.NotNil(t, cmd.Handler, cmd.Name)
		assert.NoError(t, cmd.Handler([]string{"arg"}, 1), cmd.Name)
	}
}
