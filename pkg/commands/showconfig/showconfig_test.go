package showconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/codepdf/pkg/config"
)

func TestShowConfigRendersTOML(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.Title = "My Listing"

	result, err := ShowConfig(Options{Config: cfg})
	require.NoError(t, err)

	assert.Contains(t, result.TOML, `title = 'My Listing'`)
	assert.Contains(t, result.TOML, "[layout]")
}

func TestShowConfigMasksAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.AI.AnthropicAPIKey = "sk-ant-secret"

	result, err := ShowConfig(Options{Config: cfg})
	require.NoError(t, err)

	assert.NotContains(t, result.TOML, "sk-ant-secret")
	assert.Contains(t, result.TOML, "********")

	// The caller's config is left untouched.
	assert.Equal(t, "sk-ant-secret", cfg.AI.AnthropicAPIKey)
}
