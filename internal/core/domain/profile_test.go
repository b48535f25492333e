package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewProfile(t *testing.T) {
	profile := NewProfile("live-ecosystem", "Comprehensive stress test", testTime())

	assert.Equal(t, "live-ecosystem", profile.Name)
	assert.Equal(t, "Profile: live-ecosystem - Comprehensive stress test", profile.Description)
	assert.Equal(t, "2025-06-01T12:00:00Z", profile.Metadata.Created)
	assert.Equal(t, "2025-06-01T12:00:00Z", profile.Metadata.Modified)
	assert.NotNil(t, profile.Servers)
	assert.NotNil(t, profile.Metadata.Categories)
}

func TestNewProfile_NoDescription(t *testing.T) {
	profile := NewProfile("working-ecosystem", "", testTime())

	assert.Equal(t, "Profile: working-ecosystem", profile.Description)
}

func TestProfile_Add_FirstWriterWins(t *testing.T) {
	profile := NewProfile("test", "", testTime())

	inserted := profile.Add("github", ServerSpec{Command: "npx", Args: []string{"first"}})
	require.True(t, inserted)

	inserted = profile.Add("github", ServerSpec{Command: "npx", Args: []string{"second"}})
	assert.False(t, inserted)
	assert.Equal(t, []string{"first"}, profile.Servers["github"].Args)
}

func TestProfile_Add_NilArgsBecomeEmpty(t *testing.T) {
	profile := NewProfile("test", "", testTime())

	profile.Add("memory", ServerSpec{Command: "npx"})

	assert.NotNil(t, profile.Servers["memory"].Args)
	assert.Empty(t, profile.Servers["memory"].Args)
}

func TestProfile_Finalize(t *testing.T) {
	profile := NewProfile("test", "", testTime())
	profile.Add("github", ServerSpec{
		Command:  "npx",
		Category: "development",
		Metadata: &ServerMetadata{Type: ServerTypeProduction, Source: SourceTopServers, Verified: true},
	})
	profile.Add("slack", ServerSpec{
		Command:  "npx",
		Category: "communication",
		Metadata: &ServerMetadata{Type: ServerTypeProduction, Source: SourceTopServers, Verified: true},
	})
	profile.Add("figma", ServerSpec{
		Command:  "npx",
		Category: "design",
		Metadata: &ServerMetadata{Type: ServerTypeCuratedReal, Source: SourceEcosystemMapping},
	})
	// Duplicate category should collapse.
	profile.Add("linear", ServerSpec{
		Command:  "npx",
		Category: "development",
		Metadata: &ServerMetadata{Type: ServerTypeCuratedReal, Source: SourceEcosystemMapping},
	})

	later := testTime().Add(time.Hour)
	profile.Finalize(later)

	assert.Equal(t, 4, profile.Metadata.TotalServers)
	assert.Equal(t, 2, profile.Metadata.ProductionReady)
	assert.Equal(t, 2, profile.Metadata.CuratedReal)
	assert.Equal(t, 0, profile.Metadata.WorkingPackages)
	assert.Equal(t, []string{"communication", "design", "development"}, profile.Metadata.Categories)
	assert.Equal(t, "2025-06-01T13:00:00Z", profile.Metadata.Modified)
	assert.Equal(t, "2025-06-01T12:00:00Z", profile.Metadata.Created)
}

func TestProfile_Finalize_EmptyProfile(t *testing.T) {
	profile := NewProfile("empty", "", testTime())

	profile.Finalize(testTime())

	assert.Equal(t, 0, profile.Metadata.TotalServers)
	assert.Empty(t, profile.Metadata.Categories)
	assert.NotNil(t, profile.Metadata.Categories)
}

func TestProfile_Names_Sorted(t *testing.T) {
	profile := NewProfile("test", "", testTime())
	profile.Add("zulip", ServerSpec{Command: "npx"})
	profile.Add("asana", ServerSpec{Command: "npx"})
	profile.Add("memory", ServerSpec{Command: "npx"})

	assert.Equal(t, []string{"asana", "memory", "zulip"}, profile.Names())
}
