package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hanpama/gqlclient/internal/client"
	"github.com/hanpama/gqlclient/internal/transport"
)

// Config is the client configuration file.
//
//	endpoint: https://api.example.com/graphql
//	timeout: 10s
//	headers:
//	  Authorization: Bearer ${API_TOKEN}
//	checkDocument: true
//	maxBodyBytes: 1048576
//	otel:
//	  endpoint: localhost:4317
//	  service: gqlc
type Config struct {
	Endpoint      string            `yaml:"endpoint"`
	Timeout       time.Duration     `yaml:"timeout"`
	Headers       map[string]string `yaml:"headers"`
	CheckDocument bool              `yaml:"checkDocument"`
	MaxBodyBytes  int64             `yaml:"maxBodyBytes"`
	OTel          OTelConfig        `yaml:"otel"`
}

type OTelConfig struct {
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
}

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	DefaultTimeout = 30 * time.Second
	DefaultService = "gqlc"
)

// Override adjusts a decoded configuration before defaults and validation
// are applied.
type Override func(*Config)

// Load reads, expands, defaults and validates the YAML file at path.
func Load(path string, overrides ...Override) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data, overrides...)
}

// Parse expands ${VAR} references from the environment, decodes data,
// applies overrides, then defaults and validates the result. Empty data
// yields a configuration built from overrides and defaults alone.
func Parse(data []byte, overrides ...Override) (*Config, error) {
	expanded := os.Expand(string(data), os.Getenv)

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for _, o := range overrides {
		o(&cfg)
	}
	cfg.SetDefaults()
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("validation errors: %w", errors.Join(toErrors(errs)...))
	}
	return &cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// SetDefaults fills zero fields.
func (c *Config) SetDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.OTel.Service == "" {
		c.OTel.Service = DefaultService
	}
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	if c.Endpoint == "" {
		errs = append(errs, ValidationError{Field: "endpoint", Message: "is required"})
	} else if u, err := url.Parse(c.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "endpoint", Message: "must be an absolute URL"})
	}
	if c.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "timeout", Message: "must not be negative"})
	}
	if c.MaxBodyBytes < 0 {
		errs = append(errs, ValidationError{Field: "maxBodyBytes", Message: "must not be negative"})
	}
	return errs
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithHeaders(c.Headers),
		client.WithTransport(transport.NewHTTP(
			transport.WithTimeout(c.Timeout),
			transport.WithMaxBodyBytes(c.MaxBodyBytes),
		)),
	}
	if c.CheckDocument {
		opts = append(opts, client.WithDocumentCheck())
	}
	return opts
}

func toErrors(errs []ValidationError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
