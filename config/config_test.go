package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_TokenTTLDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  env: test
jwt:
  secret: test-secret-value
`)

	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test-secret-value", cfg.JWT.Secret)
	// The raw loader leaves the zero TTL; New applies the default.
	assert.Zero(t, cfg.JWT.TTL)
}

func TestNew_AppliesTokenTTLDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  env: test
jwt:
  secret: test-secret-value
`)
	t.Chdir(dir)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TTL)
}

func TestNew_RequiresSecret(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  env: test
jwt:
  ttl: 24h
`)
	t.Chdir(dir)

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestLoadWithEnv_ExplicitTTL(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
jwt:
  secret: test-secret-value
  ttl: 48h
`)
	t.Chdir(dir)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, cfg.JWT.TTL)
}

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
