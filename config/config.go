package config

import (
	platform "Playhub/constants/platform"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config gathers every setting of the gateway. Values come from the
// environment (optionally seeded by a .env file).
type Config struct {
	Port       string
	Production bool
	UseHTTPS   bool
	CertFile   string
	KeyFile    string

	// Key signs the session cookie
	Key string

	APIBaseURL     string
	GameServiceURL string
	GameSocketURL  string
	HTTPTimeout    time.Duration

	IdentityURL      string
	IdentityRealm    string
	IdentityClientID string
	RedirectURL      string

	TokenRefreshInterval time.Duration
	TokenMinValidity     time.Duration

	LobbyPollInterval        time.Duration
	NotificationPollInterval time.Duration
	PollMaxFailures          int

	RedisURL   string
	LevelsFile string
}

// Load reads the .env file when present and builds the configuration
func Load() (*Config, error) {
	// A missing .env file is fine, the environment still applies
	_ = godotenv.Load()

	cfg := &Config{
		Port:       os.Getenv("PORT"),
		Production: os.Getenv("PROD") == "true",
		UseHTTPS:   os.Getenv("USE_HTTPS") == "true",
		CertFile:   os.Getenv("CERT_FILE"),
		KeyFile:    os.Getenv("KEY_FILE"),
		Key:        os.Getenv("KEY"),

		APIBaseURL:     getenv("API_BASE_URL", "http://localhost:8081"),
		GameServiceURL: getenv("GAME_SERVICE_URL", "http://localhost:5000"),
		GameSocketURL:  getenv("GAME_SOCKET_URL", "ws://localhost:5000"),

		IdentityURL:      getenv("IDP_URL", "http://localhost:8180"),
		IdentityRealm:    getenv("IDP_REALM", "playhub"),
		IdentityClientID: getenv("IDP_CLIENT_ID", "playhub-frontend"),
		RedirectURL:      getenv("IDP_REDIRECT_URL", "http://localhost:8080/"),

		RedisURL:   os.Getenv("REDIS_URL"),
		LevelsFile: os.Getenv("LEVELS_FILE"),
	}

	var err error
	if cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.TokenRefreshInterval, err = durationEnv("TOKEN_REFRESH_INTERVAL", platform.DEFAULT_TOKEN_REFRESH_INTERVAL); err != nil {
		return nil, err
	}
	if cfg.TokenMinValidity, err = durationEnv("TOKEN_MIN_VALIDITY", platform.DEFAULT_TOKEN_MIN_VALIDITY); err != nil {
		return nil, err
	}
	if cfg.LobbyPollInterval, err = durationEnv("LOBBY_POLL_INTERVAL", platform.DEFAULT_LOBBY_POLL_INTERVAL); err != nil {
		return nil, err
	}
	if cfg.NotificationPollInterval, err = durationEnv("NOTIFICATION_POLL_INTERVAL", platform.DEFAULT_NOTIFICATION_POLL_INTERVAL); err != nil {
		return nil, err
	}
	if cfg.PollMaxFailures, err = intEnv("POLL_MAX_FAILURES", platform.DEFAULT_POLL_MAX_FAILURES); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		if c.UseHTTPS {
			c.Port = "443"
		} else {
			c.Port = "8080"
		}
	}
	if c.Key == "" && !c.Production {
		c.Key = "playhub-development-key"
	}
	if c.PollMaxFailures < 1 {
		c.PollMaxFailures = 1
	}
}

func (c *Config) validate() error {
	if c.Key == "" {
		return fmt.Errorf("KEY is required in production")
	}
	if c.LobbyPollInterval <= 0 || c.NotificationPollInterval <= 0 {
		return fmt.Errorf("poll intervals must be positive")
	}
	if c.TokenRefreshInterval <= 0 {
		return fmt.Errorf("TOKEN_REFRESH_INTERVAL must be positive")
	}
	if c.UseHTTPS && (c.CertFile == "" || c.KeyFile == "") {
		return fmt.Errorf("USE_HTTPS requires CERT_FILE and KEY_FILE")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationEnv(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return d, nil
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return n, nil
}
