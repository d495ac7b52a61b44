package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration. It is built once at process
// start and injected into the services that need it; business logic never
// reads the environment directly.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// CallbackURL is the front-end base URL that receives the token pair
	// after a successful login.
	CallbackURL string `env:"AUTH_CALLBACK_URL"`

	Token  TokenConfig
	Mongo  MongoConfig
	Google ProviderConfig `envPrefix:"GOOGLE_"`
	GitHub ProviderConfig `envPrefix:"GITHUB_"`
}

// TokenConfig configures the token issuer
type TokenConfig struct {
	Secret          string        `env:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `env:"JWT_EXPIRATION" envDefault:"1h"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_EXPIRATION" envDefault:"168h"` // 7 days
}

// MongoConfig holds user store configuration. An empty URI selects the
// in-memory store.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DATABASE" envDefault:"login"`
}

// ProviderConfig holds one provider's OAuth client settings. The endpoint
// URLs default per provider and are overridable, which also lets tests point
// a provider at a local server.
type ProviderConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	CallbackURL  string `env:"CALLBACK_URL"`
	AuthURL      string `env:"AUTH_URL"`
	TokenURL     string `env:"TOKEN_URL"`
	UserInfoURL  string `env:"USERINFO_URL"`
	EmailsURL    string `env:"EMAILS_URL"` // GitHub only
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Token.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.CallbackURL == "" {
		return nil, fmt.Errorf("AUTH_CALLBACK_URL is required")
	}
	return &cfg, nil
}
