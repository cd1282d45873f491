package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("WORKSPACE_ROOT", t.TempDir())

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.NotEmpty(t, cfg.WorkspaceRoot)

	// Defaults
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "gpt-4o", cfg.ModelID)
	assert.Equal(t, 60, cfg.GenerateTimeoutSeconds)
	assert.Equal(t, "npm install", cfg.InstallCommand)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("WORKSPACE_ROOT", t.TempDir())

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadConfigRequiresWorkspaceRoot(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("WORKSPACE_ROOT", "")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKSPACE_ROOT")
}
