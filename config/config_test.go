package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: tube
  log:
    level: debug
http:
  port: 8000
  cookie:
    secure: true
mongo:
  uri: mongodb://localhost:27017
  database: tube
  connectTimeout: 3s
secretKey:
  access: access-secret
  refresh: refresh-secret
token:
  accessTTL: 10m
media:
  bucketUrl: mem://
  publicBaseUrl: http://localhost:8000/media
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FileValues(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Token.AccessTTL)
	assert.True(t, cfg.HTTP.Cookie.Secure)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("MONGO_DATABASE", "tube_override")
	t.Setenv("SECRETKEY_REFRESH", "from-env")
	t.Setenv("TOKEN_ACCESSTTL", "1m")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "tube_override", cfg.Mongo.Database)
	assert.Equal(t, "from-env", cfg.SecretKey.Refresh)
	assert.Equal(t, time.Minute, cfg.Token.AccessTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestNew_AppliesDefaults(t *testing.T) {
	writeTestConfig(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, defaultRefreshTTL, cfg.Token.RefreshTTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "avatars", cfg.Media.AvatarFolder)
	assert.Equal(t, "covers", cfg.Media.CoverFolder)
	assert.Equal(t, "lax", cfg.HTTP.Cookie.SameSite)
	assert.EqualValues(t, defaultMaxUploadSize, cfg.Media.MaxUploadSize)
	assert.EqualValues(t, defaultRateLimitPerSecond, cfg.HTTP.RateLimit.PerSecond)
	assert.Equal(t, defaultRateLimitBurst, cfg.HTTP.RateLimit.Burst)
	assert.Equal(t, defaultRateLimitExpiresIn, cfg.HTTP.RateLimit.ExpiresIn)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorContains(t, cfg.Validate(), "mongo")

	cfg.Mongo.URI = "mongodb://localhost"
	cfg.Mongo.Database = "tube"
	assert.ErrorContains(t, cfg.Validate(), "secrets")

	cfg.SecretKey.Access = "a"
	cfg.SecretKey.Refresh = "r"
	assert.ErrorContains(t, cfg.Validate(), "bucket")

	cfg.Media.BucketURL = "mem://"
	assert.NoError(t, cfg.Validate())
}
