package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	platform "Playhub/constants/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "PROD", "USE_HTTPS", "CERT_FILE", "KEY_FILE", "KEY",
	"API_BASE_URL", "GAME_SERVICE_URL", "GAME_SOCKET_URL", "HTTP_TIMEOUT",
	"IDP_URL", "IDP_REALM", "IDP_CLIENT_ID", "IDP_REDIRECT_URL",
	"TOKEN_REFRESH_INTERVAL", "TOKEN_MIN_VALIDITY",
	"LOBBY_POLL_INTERVAL", "NOTIFICATION_POLL_INTERVAL", "POLL_MAX_FAILURES",
	"REDIS_URL", "LEVELS_FILE",
}

func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "playhub-development-key", cfg.Key)
	assert.Equal(t, "playhub", cfg.IdentityRealm)
	assert.Equal(t, platform.DEFAULT_LOBBY_POLL_INTERVAL, cfg.LobbyPollInterval)
	assert.Equal(t, platform.DEFAULT_TOKEN_MIN_VALIDITY, cfg.TokenMinValidity)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1, cfg.PollMaxFailures)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOBBY_POLL_INTERVAL", "500ms")
	t.Setenv("POLL_MAX_FAILURES", "3")
	t.Setenv("API_BASE_URL", "http://api:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.LobbyPollInterval)
	assert.Equal(t, 3, cfg.PollMaxFailures)
	assert.Equal(t, "http://api:9000", cfg.APIBaseURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"LOBBY_POLL_INTERVAL": "soon"}},
		{"bad int", map[string]string{"POLL_MAX_FAILURES": "many"}},
		{"zero interval", map[string]string{"NOTIFICATION_POLL_INTERVAL": "0s"}},
		{"production without key", map[string]string{"PROD": "true"}},
		{"https without certificate", map[string]string{"USE_HTTPS": "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevels, levels)

	levels, err = LoadLevels("levels.yaml")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(levels), 3)
	assert.Equal(t, "Regular", levels[1].Name)
	assert.Equal(t, 5, levels[1].MinGamesPlayed)

	_, err = LoadLevels(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("levels: []\n"), 0o600))
	_, err = LoadLevels(empty)
	assert.Error(t, err)
}

func TestConnectRedisDisabled(t *testing.T) {
	client, err := Connect_redis("")
	assert.NoError(t, err)
	assert.Nil(t, client)
}
