package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"ticker/config"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, contents string) string {
	dir, err := ioutil.TempDir("", "ticker-config")
	assert.NoError(t, err)

	err = ioutil.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0644)
	assert.NoError(t, err)

	return dir
}

func TestNewReturnsDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.New("", "")
	assert.NoError(t, err)

	assert.Equal(t, config.Development, cfg.Env)
	assert.Equal(t, "sqlite3", cfg.DB.Dialect)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Collect.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Collect.LockTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Collect.Window)
	assert.Equal(t, 7*24*time.Hour, cfg.Purge.MaxAge)
	assert.Equal(t, 500, cfg.Purge.BatchSize)
}

func TestNewIgnoresMissingFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "ticker-config")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	_, err = config.New(dir, "config")
	assert.NoError(t, err)
}

func TestNewReadsFile(t *testing.T) {
	dir := writeConfig(t, `
env: production
secret_key: file_secret
database:
  dialect: postgres
  dsn: postgres://localhost/ticker
collect:
  interval: 2m
  window: 48h
purge:
  batch_size: 50
`)
	defer os.RemoveAll(dir)

	cfg, err := config.New(dir, "config")
	assert.NoError(t, err)

	assert.Equal(t, config.Production, cfg.Env)
	assert.Equal(t, "file_secret", cfg.SecretKey)
	assert.Equal(t, "postgres", cfg.DB.Dialect)
	assert.Equal(t, "postgres://localhost/ticker", cfg.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Collect.Interval)
	assert.Equal(t, 48*time.Hour, cfg.Collect.Window)
	assert.Equal(t, 50, cfg.Purge.BatchSize)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := writeConfig(t, "secret_key: file_secret\n")
	defer os.RemoveAll(dir)

	os.Setenv("TICKER_SECRET_KEY", "env_secret")
	defer os.Unsetenv("TICKER_SECRET_KEY")

	cfg, err := config.New(dir, "config")
	assert.NoError(t, err)
	assert.Equal(t, "env_secret", cfg.SecretKey)
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	for _, contents := range []string{
		"database:\n  dialect: mysql\n",
		"collect:\n  interval: soon\n",
		"purge:\n  batch_size: 0\n",
		"env: production\n",
	} {
		dir := writeConfig(t, contents)

		_, err := config.New(dir, "config")
		assert.Error(t, err, contents)

		os.RemoveAll(dir)
	}
}

func TestLevel(t *testing.T) {
	cfg := &config.Config{Env: config.Development}
	lvl, err := cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	cfg.Env = config.Production
	lvl, err = cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	cfg.LogLevel = "warn"
	lvl, err = cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	cfg.LogLevel = "loud"
	_, err = cfg.Level()
	assert.Error(t, err)
}
