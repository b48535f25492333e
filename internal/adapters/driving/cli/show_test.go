package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

func TestShowCmd_Use(t *testing.T) {
	assert.Equal(t, "show [profile]", showCmd.Use)
}

func TestShowCmd_ListsProfilesWithoutArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, profileStore.Save(context.Background(), builtProfile("all-mcp")))
	require.NoError(t, profileStore.Save(context.Background(), builtProfile("working-ecosystem")))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"show"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "all-mcp")
	assert.Contains(t, buf.String(), "working-ecosystem")
}

func TestShowCmd_EmptyStore(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"show"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No profiles built yet.")
}

func TestShowCmd_PrintsProfile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, profileStore.Save(context.Background(), builtProfile("all-mcp")))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"show", "all-mcp"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Profile: all-mcp")
	assert.Contains(t, buf.String(), "servers:    1")
	assert.Contains(t, buf.String(), "github: npx -y @modelcontextprotocol/server-github")
}

func TestShowCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { showJSON = false }()

	require.NoError(t, profileStore.Save(context.Background(), builtProfile("all-mcp")))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"show", "all-mcp", "--json"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"mcpServers"`)
	assert.Contains(t, buf.String(), `"totalServers": 1`)
}

func TestShowCmd_UnknownProfile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"show", "missing"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
