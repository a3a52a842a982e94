// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
)

// ProductionEnv is the NODE_ENV value that switches on production mode.
const ProductionEnv = "production"

// TokenTTL is the fixed lifetime of a session token.
const TokenTTL = 2 * time.Hour

// DefaultAllowOrigins are the front-end origins allowed to send credentialed requests
// when ALLOW_ORIGIN is not set.
var DefaultAllowOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://hire-echo.web.app",
	"https://hire-echo.firebaseapp.com",
}

// Config holds every environment-driven setting of the server.
type Config struct {
	Port int    `env:"PORT,default=5000"`
	Env  string `env:"NODE_ENV,default=development"`

	TokenSecret string        `env:"API_SECRET_KEY"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,default=2h"`

	// ConnStr wins over the individual credential parts when set.
	ConnStr string `env:"DB_CONNECTION_STR"`
	DBUser  string `env:"USER_ID"`
	DBPass  string `env:"USER_PASS"`
	DBHost  string `env:"DB_HOST,default=cluster0.jnc3ejx.mongodb.net"`
	DBName  string `env:"DB_NAME,default=hireEchoDB"`

	AllowOrigin string `env:"ALLOW_ORIGIN"`
	RateLimit   int    `env:"RATE_LIMIT_REQUESTS_PER_SECOND,default=5"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	IncrementTimeout time.Duration `env:"INCREMENT_TIMEOUT,default=10s"`
}

// Load decodes the configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("API_SECRET_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.TokenTTL != TokenTTL {
		return fmt.Errorf("TOKEN_TTL must be %s, got: %s", TokenTTL, c.TokenTTL)
	}
	if c.ConnStr == "" && (c.DBUser == "" || c.DBPass == "") {
		return fmt.Errorf("either DB_CONNECTION_STR or both USER_ID and USER_PASS must be set")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME cannot be empty")
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 5
	}
	if c.IncrementTimeout <= 0 {
		c.IncrementTimeout = 10 * time.Second
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, ProductionEnv)
}

// DatabaseURI returns the connection string for the document store.
func (c *Config) DatabaseURI() string {
	if c.ConnStr != "" {
		return c.ConnStr
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}

// AllowOrigins returns the CORS allow-list.
func (c *Config) AllowOrigins() []string {
	if strings.TrimSpace(c.AllowOrigin) == "" {
		return DefaultAllowOrigins
	}
	var origins []string
	for _, o := range strings.Split(c.AllowOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
