package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen: "127.0.0.1:8080"
session_key: "test-session-key"
database:
  path: "/tmp/test.db"
admin:
  username: "root"
  password: "changeme"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "root", cfg.Admin.Username)

	// defaults fill in unset values
	assert.Equal(t, 30, cfg.DefaultDailyTarget)
	assert.Equal(t, 172800, cfg.SessionMaxAge)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing session key",
			content: `
database:
  path: "/tmp/test.db"
`,
		},
		{
			name: "empty database path",
			content: `
session_key: "key"
database:
  path: ""
`,
		},
		{
			name: "non-positive daily target",
			content: `
session_key: "key"
default_daily_target: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
