// Package config loads server configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultContactDelay    = time.Second
	defaultLogLevel        = "info"
)

// Config captures runtime configuration for the portfolio server.
type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Contact ContactConfig
	Site    SiteConfig
	// Dev re-parses templates per request and disables asset caching.
	Dev      bool
	LogLevel string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for Port.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// ContentConfig points at optional on-disk overrides. Empty values mean the embedded copies.
type ContentConfig struct {
	DataDir      string
	TemplatesDir string
	PublicDir    string
}

// ContactConfig tunes the simulated contact submission.
type ContactConfig struct {
	Delay time.Duration
}

// SiteConfig holds values used for absolute URLs in SEO metadata.
type SiteConfig struct {
	// BaseURL has no trailing slash; empty disables canonical links.
	BaseURL string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env path. An empty path skips dotenv loading.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv stops Load from consulting os.LookupEnv.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles configuration from defaults, an optional .env file and the environment.
// Precedence: explicit map > process environment > .env > defaults.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnv, err := readDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		value, ok := dotEnv[key]
		return value, ok
	}

	var invalid []string

	cfg := Config{
		Server: ServerConfig{
			Port:            firstSet(lookup, defaultPort, "PORTFOLIO_WEB_PORT", "PORT"),
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Content: ContentConfig{
			DataDir:      strings.TrimSpace(firstSet(lookup, "", "PORTFOLIO_CONTENT_DIR")),
			TemplatesDir: strings.TrimSpace(firstSet(lookup, "", "PORTFOLIO_TEMPLATES_DIR")),
			PublicDir:    strings.TrimSpace(firstSet(lookup, "", "PORTFOLIO_PUBLIC_DIR")),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(strings.TrimSpace(firstSet(lookup, "", "PORTFOLIO_SITE_URL")), "/"),
		},
		LogLevel: strings.ToLower(strings.TrimSpace(firstSet(lookup, defaultLogLevel, "LOG_LEVEL"))),
	}

	dev, ok := parseBool(firstSet(lookup, "", "PORTFOLIO_WEB_DEV", "DEV"))
	if !ok {
		invalid = append(invalid, "PORTFOLIO_WEB_DEV")
	}
	cfg.Dev = dev

	cfg.Contact.Delay = defaultContactDelay
	if raw := strings.TrimSpace(firstSet(lookup, "", "PORTFOLIO_CONTACT_DELAY")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, "PORTFOLIO_CONTACT_DELAY")
		} else {
			cfg.Contact.Delay = d
		}
	}

	invalid = append(invalid, validate(cfg)...)
	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func validate(cfg Config) []string {
	var invalid []string
	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port < 0 || port > 65535 {
		invalid = append(invalid, "PORTFOLIO_WEB_PORT")
	}
	if cfg.Site.BaseURL != "" {
		u, err := url.Parse(cfg.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid = append(invalid, "PORTFOLIO_SITE_URL")
		}
	}
	return invalid
}

func readDotEnv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}

// firstSet returns the first non-blank value among keys, or fallback.
func firstSet(lookup func(string) (string, bool), fallback string, keys ...string) string {
	for _, key := range keys {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return fallback
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return false, true
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}
