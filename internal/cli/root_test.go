package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "loadbar", cmd.Use)
	assert.Equal(t, Version, cmd.Version)
	assert.True(t, cmd.SilenceUsage)

	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "run", run.Name())

	for _, name := range []string{"total", "style", "clear", "interval"} {
		assert.NotNil(t, run.Flags().Lookup(name), "missing --%s flag", name)
	}
}

func TestRootCommand_Version(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "loadbar version "+Version)
}
