package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFile writes config.yaml into a temp directory and changes into it
// so Load() finds it. Returns the directory.
func withConfigFile(t *testing.T, yamlContent string) string {
	t.Helper()

	tmpDir := t.TempDir()
	if yamlContent != "" {
		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))
	}

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		os.Chdir(originalDir)
	})

	// Clear env vars that might interfere with tests
	for _, key := range []string{"PORT", "ENVIRONMENT", "BIND_ADDR", "DICTIONARY_PATH", "DESCRIBE_MAX_SQL_BYTES", "DESCRIBE_INCLUDE_HTML", "TLS_CERT_PATH", "TLS_KEY_PATH"} {
		os.Unsetenv(key)
	}

	return tmpDir
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	withConfigFile(t, `
port: "3443"
env: "test"
describe:
  max_sql_bytes: 1024
`)

	t.Setenv("PORT", "4443")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "4443", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "test-version", cfg.Version)
	// YAML value still used where no env var is set
	assert.Equal(t, int64(1024), cfg.Describe.MaxSQLBytes)
}

func TestLoad_Defaults(t *testing.T) {
	withConfigFile(t, `
env: "test"
`)

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "3443", cfg.Port)
	assert.Equal(t, int64(65536), cfg.Describe.MaxSQLBytes)
	assert.False(t, cfg.Describe.IncludeHTML)
	assert.Empty(t, cfg.Describe.DictionaryPath)
	assert.False(t, cfg.TLSEnabled())
}

func TestLoad_DescribeConfigFromEnv(t *testing.T) {
	dir := withConfigFile(t, `
env: "test"
`)
	dictPath := filepath.Join(dir, "dictionary.yaml")
	require.NoError(t, os.WriteFile(dictPath, []byte("tables: {}\n"), 0644))

	t.Setenv("DICTIONARY_PATH", dictPath)
	t.Setenv("DESCRIBE_MAX_SQL_BYTES", "2048")
	t.Setenv("DESCRIBE_INCLUDE_HTML", "true")

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, dictPath, cfg.Describe.DictionaryPath)
	assert.Equal(t, int64(2048), cfg.Describe.MaxSQLBytes)
	assert.True(t, cfg.Describe.IncludeHTML)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	withConfigFile(t, "")

	_, err := Load("test-version")
	assert.Error(t, err, "expected error when config.yaml is missing")
}

func TestLoad_MissingDictionaryFile(t *testing.T) {
	withConfigFile(t, `
describe:
  dictionary_path: "/nonexistent/dictionary.yaml"
`)

	_, err := Load("test-version")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "dictionary file does not exist"), err.Error())
}

func TestLoad_NonPositiveMaxSQLBytes(t *testing.T) {
	withConfigFile(t, `
describe:
  max_sql_bytes: -1
`)

	_, err := Load("test-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_sql_bytes must be positive")
}

func TestListenAddr(t *testing.T) {
	cfg := &Config{BindAddr: "127.0.0.1", Port: "3443"}
	assert.Equal(t, "127.0.0.1:3443", cfg.ListenAddr())

	cfg = &Config{BindAddr: "::1", Port: "8080"}
	assert.Equal(t, "[::1]:8080", cfg.ListenAddr())
}

func TestValidateTLS_BothProvided(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "test-cert.pem")
	keyPath := filepath.Join(dir, "test-key.pem")
	require.NoError(t, os.WriteFile(certPath, []byte("fake-cert-content"), 0644))
	require.NoError(t, os.WriteFile(keyPath, []byte("fake-key-content"), 0644))

	withConfigFile(t, fmt.Sprintf(`
tls_cert_path: "%s"
tls_key_path: "%s"
`, certPath, keyPath))

	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, certPath, cfg.TLSCertPath)
	assert.Equal(t, keyPath, cfg.TLSKeyPath)
	assert.True(t, cfg.TLSEnabled())
}

func TestValidateTLS_OnlyCertProvided(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "test-cert.pem")
	require.NoError(t, os.WriteFile(certPath, []byte("fake-cert-content"), 0644))

	withConfigFile(t, fmt.Sprintf(`
tls_cert_path: "%s"
`, certPath))

	_, err := Load("test-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both tls_cert_path and tls_key_path must be provided together")
}

func TestValidateTLS_KeyFileNotFound(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "test-cert.pem")
	require.NoError(t, os.WriteFile(certPath, []byte("fake-cert-content"), 0644))

	withConfigFile(t, fmt.Sprintf(`
tls_cert_path: "%s"
tls_key_path: "%s"
`, certPath, filepath.Join(dir, "missing-key.pem")))

	_, err := Load("test-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TLS key file does not exist")
}
