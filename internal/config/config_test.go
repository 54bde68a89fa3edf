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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "db.internal"
port = 5432
user = "agenda"
dbname = "agenda"
`

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5432
user = "agenda"
password = "s3cret"
dbname = "agenda"
sslmode = "require"

[admin]
username = "admin"
password = "senha"
token = "token-123"

[booking_sessions]
ttl_minutes = 15

[notifications]
require_https = true
queue_size = 128
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db.internal port=5432 user=agenda password=s3cret dbname=agenda sslmode=require",
		cfg.Database.DSN())
	assert.Equal(t, "token-123", cfg.Admin.Token)
	assert.Equal(t, 15, cfg.Sessions.TTLMinutes)
	assert.True(t, cfg.Notifications.RequireHTTPS)
	assert.Equal(t, 128, cfg.Notifications.QueueSize)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "agenda-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 30, cfg.Sessions.TTLMinutes)
	assert.Equal(t, 64, cfg.Notifications.QueueSize)
	assert.Equal(t, 10, cfg.Notifications.SendTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoadRejectsPlaceholderHost(t *testing.T) {
	for _, host := range []string{"", "sua-url-do-banco", "changeme"} {
		path := writeConfig(t, `
[database]
host = "`+host+`"
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrStorageNotSet, "host %q should be rejected", host)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AGENDA_DB_HOST", "db.override")
	t.Setenv("AGENDA_DB_PORT", "6543")
	t.Setenv("AGENDA_ADMIN_PASSWORD", "env-senha")
	t.Setenv("AGENDA_ADMIN_TOKEN", "env-token")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-senha", cfg.Admin.Password)
	assert.Equal(t, "env-token", cfg.Admin.Token)
}
