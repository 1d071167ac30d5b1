package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Shipping     ShippingConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MERCADOVIVA_APP_ENV" required:"true"`
	Port         string `envconfig:"MERCADOVIVA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MERCADOVIVA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MERCADOVIVA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MERCADOVIVA_DB_DSN"`
	Driver string `envconfig:"MERCADOVIVA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MERCADOVIVA_DB_HOST"`
	LegacyPort     int    `envconfig:"MERCADOVIVA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MERCADOVIVA_DB_USER"`
	LegacyPassword string `envconfig:"MERCADOVIVA_DB_PASSWORD"`
	LegacyName     string `envconfig:"MERCADOVIVA_DB_NAME"`
	LegacySSLMode  string `envconfig:"MERCADOVIVA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MERCADOVIVA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MERCADOVIVA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MERCADOVIVA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MERCADOVIVA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MERCADOVIVA_REDIS_URL"`
	Address      string        `envconfig:"MERCADOVIVA_REDIS_ADDR"`
	Password     string        `envconfig:"MERCADOVIVA_REDIS_PASSWORD"`
	DB           int           `envconfig:"MERCADOVIVA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MERCADOVIVA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MERCADOVIVA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MERCADOVIVA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MERCADOVIVA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MERCADOVIVA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ShippingConfig tunes the quote aggregation pipeline.
type ShippingConfig struct {
	// QuoteTimeout bounds a whole cart aggregation; on expiry the caller
	// gets a retryable timeout instead of partial results.
	QuoteTimeout time.Duration `envconfig:"MERCADOVIVA_SHIPPING_QUOTE_TIMEOUT" default:"8s"`
	// CacheTTL applies to cached seller quotes and reference lookups.
	CacheTTL time.Duration `envconfig:"MERCADOVIVA_SHIPPING_CACHE_TTL" default:"1h"`
	// DefaultItemWeightGrams is assumed for items with no registered weight.
	DefaultItemWeightGrams int `envconfig:"MERCADOVIVA_SHIPPING_DEFAULT_ITEM_WEIGHT_G" default:"300"`
	// VolumetricDivisor converts cm3 to volumetric kg (road freight standard).
	VolumetricDivisor int `envconfig:"MERCADOVIVA_SHIPPING_VOLUMETRIC_DIVISOR" default:"5000"`
}

// FeatureFlagsConfig toggles optional behavior, mostly for local development.
type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MERCADOVIVA_FEATURE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
