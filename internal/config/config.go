// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution and overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// RuntimeEnvironment selects sandbox or live eBay endpoints.
type RuntimeEnvironment string

// Runtime environments.
const (
	EnvLocal      RuntimeEnvironment = "local"
	EnvStage      RuntimeEnvironment = "stage"
	EnvProduction RuntimeEnvironment = "production"
)

// IsProduction reports whether live eBay endpoints are used.
func (e RuntimeEnvironment) IsProduction() bool {
	return e == EnvProduction
}

// Environment variables read on top of the YAML file.
const (
	EnvMasterSecret       = "MASTER_SECRET"
	EnvRuntimeEnvironment = "RUNTIME_ENVIRONMENT"
	EnvDatabaseURL        = "DATABASE_URL"
	EnvLogLevel           = "SHOP_LOG_LEVEL"
	EnvLogFormat          = "SHOP_LOG_FORMAT"
)

// Config is the top-level application configuration.
type Config struct {
	Environment RuntimeEnvironment `yaml:"environment"`
	Server      ServerConfig       `yaml:"server"`
	Database    DatabaseConfig     `yaml:"database"`
	Secrets     SecretsConfig      `yaml:"secrets"`
	Ebay        EbayConfig         `yaml:"ebay"`
	Images      ImagesConfig       `yaml:"images"`
	Cookies     CookieConfig       `yaml:"cookies"`
	Scheduler   SchedulerConfig    `yaml:"scheduler"`
	Telemetry   TelemetryConfig    `yaml:"telemetry"`
	Logging     LoggingConfig      `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. URL wins when set;
// otherwise the DSN is assembled from the fields and a password secret.
type DatabaseConfig struct {
	URL            string        `yaml:"url"`
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	Name           string        `yaml:"name"`
	User           string        `yaml:"user"`
	PasswordSecret string        `yaml:"password_secret"`
	SSLMode        string        `yaml:"sslmode"`
	MaxConns       int32         `yaml:"max_conns"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// DSN returns a PostgreSQL keyword/value connection string.
func (d *DatabaseConfig) DSN(password string) string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s connect_timeout=%d",
		d.Host, d.Port, d.Name, d.User, password, d.SSLMode, int(d.ConnectTimeout.Seconds()),
	)
}

// SecretsConfig defines where sealed secrets come from.
type SecretsConfig struct {
	// MasterKey is the base64 AEAD key. Normally supplied via MASTER_SECRET.
	MasterKey string `yaml:"master_key"`
	// TablePath overrides the embedded secret table.
	TablePath string `yaml:"table_path"`
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	ClientID         string          `yaml:"client_id"`
	ClientSecretName string          `yaml:"client_secret_name"`
	RuName           string          `yaml:"ru_name"`
	BaseURL          string          `yaml:"base_url"`
	AuthURL          string          `yaml:"auth_url"`
	ItemURLBase      string          `yaml:"item_url_base"`
	MarketplaceID    string          `yaml:"marketplace_id"`
	ContentLanguage  string          `yaml:"content_language"`
	ConnectTimeout   time.Duration   `yaml:"connect_timeout"`
	RequestTimeout   time.Duration   `yaml:"request_timeout"`
	Policies         PolicyConfig    `yaml:"policies"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
	Retry            RetryConfig     `yaml:"retry"`
}

// TokenURL returns the OAuth2 token endpoint under BaseURL.
func (e *EbayConfig) TokenURL() string {
	return strings.TrimRight(e.BaseURL, "/") + "/identity/v1/oauth2/token"
}

// AnalyticsURL returns the Developer Analytics rate limit endpoint.
func (e *EbayConfig) AnalyticsURL() string {
	return strings.TrimRight(e.BaseURL, "/") + "/developer/analytics/v1_beta/rate_limit/"
}

// PolicyConfig holds the seller business policy ids attached to offers.
type PolicyConfig struct {
	Fulfillment string `yaml:"fulfillment"`
	Payment     string `yaml:"payment"`
	Return      string `yaml:"return"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// RetryConfig bounds the linear retry applied to publication steps.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Delay       time.Duration `yaml:"delay"`
}

// ImagesConfig locates the static host serving item images.
type ImagesConfig struct {
	BaseURL string `yaml:"base_url"`
	Subpath string `yaml:"subpath"`
}

// CookieConfig scopes the eBay token cookies.
type CookieConfig struct {
	Path   string `yaml:"path"`
	Domain string `yaml:"domain"`
}

// SchedulerConfig defines the background job intervals. Zero disables a job.
type SchedulerConfig struct {
	Enabled           bool          `yaml:"enabled"`
	TokenWarmInterval time.Duration `yaml:"token_warm_interval"`
	QuotaInterval     time.Duration `yaml:"quota_interval"`
}

// TelemetryConfig defines OTLP export settings.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process
// environment without overriding variables that are already set. A
// missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution, applying environment overrides, defaults and validation.
// An empty path configures from the environment alone.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.Expand(string(data), func(key string) string {
			v, _ := lookup(key)
			return v
		})

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyEnv(cfg, lookup)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvMasterSecret); ok && v != "" {
		cfg.Secrets.MasterKey = v
	}
	if v, ok := lookup(EnvRuntimeEnvironment); ok && v != "" {
		cfg.Environment = RuntimeEnvironment(strings.ToLower(v))
	}
	if v, ok := lookup(EnvDatabaseURL); ok && v != "" {
		cfg.Database.URL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = EnvLocal
	}
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay, cfg.Environment)
	applyImagesDefaults(&cfg.Images)
	applyCookieDefaults(&cfg.Cookies)
	applySchedulerDefaults(&cfg.Scheduler)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Host == "" {
		d.Host = "localhost"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.Name == "" {
		d.Name = "shop"
	}
	if d.User == "" {
		d.User = "user"
	}
	if d.PasswordSecret == "" {
		d.PasswordSecret = "postgres__user.shop.password"
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.MaxConns == 0 {
		d.MaxConns = 16
	}
	if d.ConnectTimeout == 0 {
		d.ConnectTimeout = 5 * time.Second
	}
}

func applyEbayDefaults(e *EbayConfig, env RuntimeEnvironment) {
	if env.IsProduction() {
		setDefault(&e.BaseURL, "https://api.ebay.com")
		setDefault(&e.AuthURL, "https://auth.ebay.com/oauth2/authorize")
		setDefault(&e.ItemURLBase, "https://www.ebay.com/itm")
		setDefault(&e.ClientSecretName, "ebay__production.cert_id")
	} else {
		setDefault(&e.BaseURL, "https://api.sandbox.ebay.com")
		setDefault(&e.AuthURL, "https://auth.sandbox.ebay.com/oauth2/authorize")
		setDefault(&e.ItemURLBase, "https://sandbox.ebay.com/itm")
		setDefault(&e.ClientSecretName, "ebay__sandbox.cert_id")
	}
	setDefault(&e.MarketplaceID, "EBAY_US")
	setDefault(&e.ContentLanguage, "en-US")

	// Sandbox business policies of the shop's seller account.
	setDefault(&e.Policies.Fulfillment, "6209442000")
	setDefault(&e.Policies.Payment, "6209443000")
	setDefault(&e.Policies.Return, "6209449000")

	if e.ConnectTimeout == 0 {
		e.ConnectTimeout = 5 * time.Second
	}
	if e.RequestTimeout == 0 {
		e.RequestTimeout = 20 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
	applyRetryDefaults(&e.Retry)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 2_000_000
	}
}

func applyRetryDefaults(r *RetryConfig) {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 3
	}
	if r.Delay == 0 {
		r.Delay = 500 * time.Millisecond
	}
}

func applyImagesDefaults(i *ImagesConfig) {
	setDefault(&i.Subpath, "images")
}

func applyCookieDefaults(c *CookieConfig) {
	setDefault(&c.Path, "/")
}

func applySchedulerDefaults(s *SchedulerConfig) {
	if s.TokenWarmInterval == 0 {
		s.TokenWarmInterval = 30 * time.Minute
	}
	if s.QuotaInterval == 0 {
		s.QuotaInterval = 15 * time.Minute
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	setDefault(&t.Endpoint, "localhost:4317")
	setDefault(&t.ServiceName, "shop-inventory")
}

func applyLoggingDefaults(l *LoggingConfig) {
	setDefault(&l.Level, "info")
	setDefault(&l.Format, "text")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func validate(cfg *Config) error {
	var errs []error

	valid := []RuntimeEnvironment{EnvLocal, EnvStage, EnvProduction}
	if !slices.Contains(valid, cfg.Environment) {
		errs = append(errs, fmt.Errorf(
			"environment must be one of: local, stage, production (got %q)", cfg.Environment,
		))
	}
	if cfg.Secrets.MasterKey == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvMasterSecret))
	}
	if cfg.Database.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be positive"))
	}
	if cfg.Ebay.ClientID == "" {
		errs = append(errs, fmt.Errorf("ebay.client_id is required"))
	}
	if cfg.Ebay.RuName == "" {
		errs = append(errs, fmt.Errorf("ebay.ru_name is required"))
	}
	if cfg.Ebay.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("ebay.retry.max_attempts must be at least 1"))
	}
	if cfg.Images.BaseURL == "" {
		errs = append(errs, fmt.Errorf("images.base_url is required"))
	}

	return errors.Join(errs...)
}
