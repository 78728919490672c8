package clientinfofile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func newConfigProvider(t *testing.T, contents string) config.Provider {
	t.Helper()
	provider, err := config.NewYAML(config.Source(strings.NewReader(contents)))
	require.NoError(t, err)
	return provider
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "all required params are present",
			yaml: "clientInfoFilePath: /my/sample/path/.vcsyncd\n",
		},
		{
			name:    "config processing error",
			yaml:    "otherKey: /my/sample/path/.vcsyncd\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    newConfigProvider(t, tt.yaml),
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		tempFile, err := os.CreateTemp(t.TempDir(), "test")
		require.NoError(t, err)
		tempFile.Close()

		m := module{
			logger:   zap.NewNop().Sugar(),
			infofile: tempFile.Name(),
		}

		err = m.OnStop(context.Background())
		assert.NoError(t, err)
		_, err = os.Stat(tempFile.Name())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file never written", func(t *testing.T) {
		m := module{
			logger:   zap.NewNop().Sugar(),
			infofile: filepath.Join(t.TempDir(), "never-created"),
		}

		// The info file only appears on first connect, so shutdown before
		// that must stay clean.
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("file removal error", func(t *testing.T) {
		// A file inside a read-only directory forces an error from os.Remove.
		tempDir := t.TempDir()
		tempFile, err := os.CreateTemp(tempDir, "test")
		require.NoError(t, err)
		tempFile.Close()

		require.NoError(t, os.Chmod(tempDir, 0555))
		t.Cleanup(func() { os.Chmod(tempDir, 0755) })

		m := module{
			logger:   zap.NewNop().Sugar(),
			infofile: tempFile.Name(),
		}

		assert.Error(t, m.OnStop(context.Background()))
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		tempFile, err := os.CreateTemp(t.TempDir(), "test")
		require.NoError(t, err)
		tempFile.Close()

		m := module{
			infofile:     tempFile.Name(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}

		steps := []struct {
			key        string
			value      string
			expectJSON string
		}{
			{
				key:        "url",
				value:      "ws://127.0.0.1:8765/sync",
				expectJSON: `{"url":"ws://127.0.0.1:8765/sync"}`,
			},
			{
				key:        "connected",
				value:      "true",
				expectJSON: `{"connected":"true","url":"ws://127.0.0.1:8765/sync"}`,
			},
			{
				key:        "connected",
				value:      "false",
				expectJSON: `{"connected":"false","url":"ws://127.0.0.1:8765/sync"}`,
			},
		}

		for _, step := range steps {
			err = m.UpdateField(step.key, step.value)
			assert.NoError(t, err)
			assert.Equal(t, step.value, m.fileContents[step.key])
			contents, err := os.ReadFile(tempFile.Name())
			assert.NoError(t, err)
			assert.Equal(t, step.expectJSON, string(contents))
		}
	})

	t.Run("file write failure", func(t *testing.T) {
		// A directory in place of the file forces a write failure.
		m := module{
			infofile:     t.TempDir(),
			logger:       zap.NewNop().Sugar(),
			fileContents: make(map[string]string),
		}
		assert.Error(t, m.UpdateField("key", "value"))
	})
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		errorString string
	}{
		{
			name: "valid configuration",
			yaml: "clientInfoFilePath: /my/sample/path/.vcsyncd\n",
		},
		{
			name:        "missing path key",
			yaml:        "otherKey: /my/sample/path/.vcsyncd\n",
			wantErr:     true,
			errorString: `missing field "clientInfoFilePath" in config`,
		},
		{
			name:        "missing path value",
			yaml:        "clientInfoFilePath:\notherKey: sample\n",
			wantErr:     true,
			errorString: `missing field "clientInfoFilePath" in config`,
		},
		{
			name:        "incorrectly formatted entry",
			yaml:        "clientInfoFilePath:\n  infofile: /sample/.file\n",
			wantErr:     true,
			errorString: `getting config field "clientInfoFilePath"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := module{
				logger: zap.NewNop().Sugar(),
			}
			err := m.processConfig(newConfigProvider(t, tt.yaml))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
