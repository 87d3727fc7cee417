package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, ex.
// TICKER_DATABASE_DSN overrides database.dsn
const EnvPrefix = "TICKER"

const (
	Development = "development"
	Production  = "production"
)

// DBConfig contains the data needed to open the database
type DBConfig struct {
	Dialect string
	DSN     string
	LogMode bool
}

type RedisConfig struct {
	URL string
}

// CollectConfig schedules collection. Window bounds how old an item may be
// and still be ingested
type CollectConfig struct {
	Interval    time.Duration
	LockTimeout time.Duration
	Window      time.Duration
}

type PurgeConfig struct {
	MaxAge    time.Duration
	BatchSize int
}

// Config contains the application settings
type Config struct {
	Env        string
	LogLevel   string
	SecretKey  string
	BcryptCost int
	DB         DBConfig
	Redis      RedisConfig
	Collect    CollectConfig
	Purge      PurgeConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", Development)
	v.SetDefault("log_level", "")
	v.SetDefault("secret_key", "")
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("database.dialect", "sqlite3")
	v.SetDefault("database.dsn", "file:/data/ticker/db.sqlite3")
	v.SetDefault("database.log_mode", false)
	v.SetDefault("redis.url", "")
	v.SetDefault("collect.interval", "1m")
	v.SetDefault("collect.lock_timeout", "10m")
	v.SetDefault("collect.window", "24h")
	v.SetDefault("purge.max_age", "168h")
	v.SetDefault("purge.batch_size", 500)
}

// New reads the named config file from path, if present, and applies
// environment overrides on top of it. An empty path skips the file
func New(path, name string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigName(name)
		v.AddConfigPath(path)

		err := v.ReadInConfig()
		if _, ok := err.(viper.ConfigFileNotFoundError); err != nil && !ok {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:        v.GetString("env"),
		LogLevel:   v.GetString("log_level"),
		SecretKey:  v.GetString("secret_key"),
		BcryptCost: v.GetInt("bcrypt_cost"),
		DB: DBConfig{
			Dialect: v.GetString("database.dialect"),
			DSN:     v.GetString("database.dsn"),
			LogMode: v.GetBool("database.log_mode"),
		},
		Redis: RedisConfig{
			URL: v.GetString("redis.url"),
		},
		Purge: PurgeConfig{
			BatchSize: v.GetInt("purge.batch_size"),
		},
	}

	var err error
	cfg.Collect.Interval, err = duration(v, "collect.interval")
	if err != nil {
		return nil, err
	}

	cfg.Collect.LockTimeout, err = duration(v, "collect.lock_timeout")
	if err != nil {
		return nil, err
	}

	cfg.Collect.Window, err = duration(v, "collect.window")
	if err != nil {
		return nil, err
	}

	cfg.Purge.MaxAge, err = duration(v, "purge.max_age")
	if err != nil {
		return nil, err
	}

	if cfg.Purge.BatchSize < 1 {
		return nil, errors.Errorf("invalid purge.batch_size: %d", cfg.Purge.BatchSize)
	}

	switch cfg.DB.Dialect {
	case "sqlite3", "postgres":
	default:
		return nil, errors.Errorf("unsupported database.dialect: %q", cfg.DB.Dialect)
	}

	if cfg.Env == Production && cfg.SecretKey == "" {
		return nil, errors.New("secret_key is required in production")
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return d, errors.Wrapf(err, "failed to parse %s duration", key)
	}

	return d, nil
}

// Level returns the configured log level. Without an explicit level,
// development logs at debug and everything else at info
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel != "" {
		lvl, err := zerolog.ParseLevel(c.LogLevel)
		return lvl, errors.Wrap(err, "failed to parse log level")
	}

	if c.Env == Development {
		return zerolog.DebugLevel, nil
	}

	return zerolog.InfoLevel, nil
}
