package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestNewConfig(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n  - local.yaml\n",
		"base.yaml": "service:\n  name: vcsync\nlogging:\n  level: info\n",
	})
	t.Setenv(_configDirEnv, dir)

	provider, err := NewConfig()
	require.NoError(t, err)
	require.NotNil(t, provider)

	// local.yaml is listed but absent; base.yaml alone backs the provider.
	name := provider.Get("service.name")
	assert.True(t, name.HasValue())
	assert.Equal(t, "vcsync", name.String())

	level := provider.Get("logging.level")
	assert.True(t, level.HasValue())
	assert.Equal(t, "info", level.String())

	assert.False(t, provider.Get("nonexistent.path").HasValue())
}

func TestNewConfigMissingMeta(t *testing.T) {
	t.Setenv(_configDirEnv, t.TempDir())

	provider, err := NewConfig()
	assert.Error(t, err)
	assert.Nil(t, provider)
}

func TestNewConfigNoFilesPresent(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
	})
	t.Setenv(_configDirEnv, dir)

	provider, err := NewConfig()
	assert.Error(t, err)
	assert.Nil(t, provider)
}

func TestConfigFilePriority(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml":  "files:\n  - base.yaml\n  - local.yaml\n",
		"base.yaml":  "service:\n  name: vcsync\nlogging:\n  level: info\n",
		"local.yaml": "logging:\n  level: warn\n",
	})
	t.Setenv(_configDirEnv, dir)

	provider, err := NewConfig()
	require.NoError(t, err)

	// Later files win per key; untouched keys pass through.
	assert.Equal(t, "warn", provider.Get("logging.level").String())
	assert.Equal(t, "vcsync", provider.Get("service.name").String())
}

func TestConfigEnvExpansion(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
		"base.yaml": "socket:\n  url: ${VCSYNC_SOCKET_URL:ws://127.0.0.1:8765/sync}\n",
	})
	t.Setenv(_configDirEnv, dir)

	t.Run("default applies when unset", func(t *testing.T) {
		provider, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "ws://127.0.0.1:8765/sync", provider.Get("socket.url").String())
	})

	t.Run("environment value wins", func(t *testing.T) {
		t.Setenv("VCSYNC_SOCKET_URL", "ws://10.0.0.5:9000/sync")
		provider, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "ws://10.0.0.5:9000/sync", provider.Get("socket.url").String())
	})
}

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name           string
		envValue       string
		expectedResult string
	}{
		{
			name:           "returns environment variable when set",
			envValue:       "/custom/config/path",
			expectedResult: "/custom/config/path",
		},
		{
			name:           "returns default path when environment variable not set",
			envValue:       "",
			expectedResult: _defaultConfigDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_configDirEnv, tt.envValue)
			assert.Equal(t, tt.expectedResult, getConfigDir())
		})
	}
}

func TestConfigName(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
		"base.yaml": "service:\n  name: vcsync\n",
	})
	t.Setenv(_configDirEnv, dir)

	provider, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "config", provider.(Config).Name())
}
