package config

import (
	"fmt"
	"net"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for ekaya-querydesc.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"3443"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// TLS configuration (optional - if both provided, server uses HTTPS)
	TLSCertPath string `yaml:"tls_cert_path" env:"TLS_CERT_PATH" env-default:""`
	TLSKeyPath  string `yaml:"tls_key_path" env:"TLS_KEY_PATH" env-default:""`

	// Query description settings
	Describe DescribeConfig `yaml:"describe"`
}

// DescribeConfig holds settings for the query description endpoint.
type DescribeConfig struct {
	// DictionaryPath is an optional YAML file of table/field display names
	// layered over the built-in dictionary.
	DictionaryPath string `yaml:"dictionary_path" env:"DICTIONARY_PATH" env-default:""`
	// MaxSQLBytes caps the request body size accepted by the describe endpoint.
	MaxSQLBytes int64 `yaml:"max_sql_bytes" env:"DESCRIBE_MAX_SQL_BYTES" env-default:"65536"`
	// IncludeHTML renders details to HTML unless the request says otherwise.
	IncludeHTML bool `yaml:"include_html" env:"DESCRIBE_INCLUDE_HTML" env-default:"false"`
}

// Load reads configuration from config.yaml with environment variable overrides.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validateTLS(); err != nil {
		return nil, fmt.Errorf("invalid TLS configuration: %w", err)
	}

	if err := cfg.validateDescribe(); err != nil {
		return nil, fmt.Errorf("invalid describe configuration: %w", err)
	}

	cfg.BindAddr = ResolveBindAddrForDocker(cfg.BindAddr)

	return cfg, nil
}

// ListenAddr returns the host:port the server listens on.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.BindAddr, c.Port)
}

// TLSEnabled returns true when both TLS files are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertPath != "" && c.TLSKeyPath != ""
}

// validateTLS ensures TLS configuration is valid if provided.
// Both cert and key must be provided together, and files must exist.
func (c *Config) validateTLS() error {
	certSet := c.TLSCertPath != ""
	keySet := c.TLSKeyPath != ""

	if certSet != keySet {
		return fmt.Errorf("both tls_cert_path and tls_key_path must be provided together")
	}

	// Actual readability is checked by ListenAndServeTLS at startup
	if certSet {
		if _, err := os.Stat(c.TLSCertPath); err != nil {
			return fmt.Errorf("TLS cert file does not exist: %w", err)
		}
		if _, err := os.Stat(c.TLSKeyPath); err != nil {
			return fmt.Errorf("TLS key file does not exist: %w", err)
		}
	}

	return nil
}

func (c *Config) validateDescribe() error {
	if c.Describe.MaxSQLBytes <= 0 {
		return fmt.Errorf("max_sql_bytes must be positive, got %d", c.Describe.MaxSQLBytes)
	}

	if c.Describe.DictionaryPath != "" {
		if _, err := os.Stat(c.Describe.DictionaryPath); err != nil {
			return fmt.Errorf("dictionary file does not exist: %w", err)
		}
	}

	return nil
}
