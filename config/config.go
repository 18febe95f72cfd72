package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// EasyPlug admin specifics
	EasyPlug EasyPlugConfig
	Session  SessionConfig
	Google   GoogleConfig
	Cache    CacheConfig
	Limits   LimitsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EasyPlugConfig points at the upstream marketplace API.
type EasyPlugConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig controls where the bearer token is persisted.
type SessionConfig struct {
	TokenPath string
}

// GoogleConfig holds the OAuth client used to verify Google sign-in
// credentials before they are forwarded upstream.
type GoogleConfig struct {
	ClientID string
}

// CacheConfig holds TTLs for the query caches.
type CacheConfig struct {
	SubscriptionsTTL time.Duration
	ProfileTTL       time.Duration
	MetricsTTL       time.Duration
}

// LimitsConfig configures per-client rate limiting and how long an idle
// listing wizard keeps its session and spooled images.
type LimitsConfig struct {
	RequestsPerMin   int
	WizardSessionTTL time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Upstream API
	cfg.EasyPlug.BaseURL = viper.GetString("easyplug.base_url")
	cfg.EasyPlug.Timeout = viper.GetDuration("easyplug.timeout")
	if apiURL := viper.GetString("easyplug_api_url"); apiURL != "" {
		cfg.EasyPlug.BaseURL = apiURL
	}
	if cfg.EasyPlug.BaseURL == "" {
		return nil, fmt.Errorf("easyplug.base_url is required - set it in config.yaml or EASYPLUG_API_URL")
	}

	// Session token storage
	cfg.Session.TokenPath = viper.GetString("session.token_path")

	// Google sign-in
	cfg.Google.ClientID = viper.GetString("google.client_id")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}

	// Caches
	cfg.Cache.SubscriptionsTTL = viper.GetDuration("cache.subscriptions_ttl")
	cfg.Cache.ProfileTTL = viper.GetDuration("cache.profile_ttl")
	cfg.Cache.MetricsTTL = viper.GetDuration("cache.metrics_ttl")

	// Rate limiting and session lifetimes
	cfg.Limits.RequestsPerMin = viper.GetInt("limits.requests_per_min")
	cfg.Limits.WizardSessionTTL = viper.GetDuration("limits.wizard_session_ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("easyplug.timeout", "20s")
	viper.SetDefault("session.token_path", "access_token.json")

	viper.SetDefault("cache.subscriptions_ttl", "60s")
	viper.SetDefault("cache.profile_ttl", "60s")
	viper.SetDefault("cache.metrics_ttl", "30s")

	viper.SetDefault("limits.requests_per_min", 120)
	viper.SetDefault("limits.wizard_session_ttl", "30m")
}
