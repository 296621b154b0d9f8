package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"secretKey": "",
			"tokenTTL":  "1h",
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_SECRETKEY", want: "auth.secretKey"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "@daily", cfg.Revocation.PruneSchedule)
	assert.False(t, cfg.Revocation.PruneEnabled)
	assert.Equal(t, int64(2_000_000), cfg.Storage.MaxUploadSize)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)

	raw, err := base64.RawURLEncoding.DecodeString(cfg.Auth.SecretKey)
	require.NoError(t, err)
	assert.Len(t, raw, secretKeyBytes)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{SecretKey: "configured", TokenTTL: 5 * time.Minute, BcryptCost: 10},
		Storage: &StorageConfig{BucketURL: "file:///tmp/images", MaxUploadSize: 100},
	}
	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, "configured", cfg.Auth.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "file:///tmp/images", cfg.Storage.BucketURL)
	assert.Equal(t, int64(100), cfg.Storage.MaxUploadSize)
}

func TestGenerateSecretKey_Unique(t *testing.T) {
	first, err := GenerateSecretKey()
	require.NoError(t, err)
	second, err := GenerateSecretKey()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.GreaterOrEqual(t, len(first), 43) // 256 bits in base64
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  env: test
  serviceName: uploader
http:
  port: 8000
auth:
  secretKey: ""
  tokenTTL: 1h
storage:
  bucketUrl: mem://
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlContent), 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_TOKENTTL", "30m")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "uploader", cfg.Env.ServiceName)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}
