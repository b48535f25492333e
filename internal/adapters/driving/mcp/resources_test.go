package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

func TestExtractProfileName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid profile URI",
			uri:      "profilectl://profiles/all-mcp",
			expected: "all-mcp",
		},
		{
			name:     "invalid prefix",
			uri:      "file://profiles/all-mcp",
			expected: "",
		},
		{
			name:     "nested path rejected",
			uri:      "profilectl://profiles/all-mcp/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractProfileName(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestServer_handleProfilesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns profile names", func(t *testing.T) {
		store := &mockProfileStore{profiles: map[string]*domain.Profile{
			"all-mcp": testProfile(t),
		}}
		server, err := NewServer(&Ports{Profiles: store})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "profilectl://profiles"},
		}
		result, err := server.handleProfilesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "all-mcp")
	})

	t.Run("empty store returns empty list", func(t *testing.T) {
		store := &mockProfileStore{}
		server, err := NewServer(&Ports{Profiles: store})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "profilectl://profiles"},
		}
		result, err := server.handleProfilesResource(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on store failure", func(t *testing.T) {
		store := &mockProfileStore{err: errors.New("disk unavailable")}
		server, err := NewServer(&Ports{Profiles: store})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "profilectl://profiles"},
		}
		_, err = server.handleProfilesResource(ctx, req)

		require.Error(t, err)
	})
}

func TestServer_handleProfileResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns profile document", func(t *testing.T) {
		store := &mockProfileStore{profiles: map[string]*domain.Profile{
			"all-mcp": testProfile(t),
		}}
		server, err := NewServer(&Ports{Profiles: store})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "profilectl://profiles/all-mcp"},
		}
		result, err := server.handleProfileResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"mcpServers"`)
		assert.Contains(t, result.Contents[0].Text, "github")
	})

	t.Run("unknown profile returns error", func(t *testing.T) {
		store := &mockProfileStore{}
		server, err := NewServer(&Ports{Profiles: store})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "profilectl://profiles/missing"},
		}
		_, err = server.handleProfileResource(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed URI returns not found", func(t *testing.T) {
		store := &mockProfileStore{}
		server, err := NewServer(&Ports{Profiles: store})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "profilectl://other/thing"},
		}
		_, err = server.handleProfileResource(ctx, req)

		require.Error(t, err)
	})
}
