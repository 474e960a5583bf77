package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Flash         FlashConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FIRESHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"FIRESHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FIRESHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FIRESHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FIRESHOP_DB_DSN"`
	Driver string `envconfig:"FIRESHOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FIRESHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"FIRESHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FIRESHOP_DB_USER"`
	LegacyPassword string `envconfig:"FIRESHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"FIRESHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"FIRESHOP_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"FIRESHOP_DB_SQLITE_PATH" default:"fireshop.db"`

	MaxOpenConns    int           `envconfig:"FIRESHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FIRESHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FIRESHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FIRESHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FIRESHOP_REDIS_URL"`
	PoolSize     int           `envconfig:"FIRESHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FIRESHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FIRESHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FIRESHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FIRESHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"FIRESHOP_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FIRESHOP_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"FIRESHOP_JWT_EXPIRATION_MINUTES" default:"60"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"FIRESHOP_BCRYPT_COST" default:"10"`
}

type FlashConfig struct {
	// Secret signs the flash cookie; falls back to the JWT secret when empty.
	Secret string `envconfig:"FIRESHOP_FLASH_SECRET"`
}

// SecretOr returns the configured flash secret or the provided fallback.
func (f FlashConfig) SecretOr(fallback string) string {
	if strings.TrimSpace(f.Secret) != "" {
		return f.Secret
	}
	return fallback
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"FIRESHOP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"FIRESHOP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"FIRESHOP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FIRESHOP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FIRESHOP_AUTO_MIGRATE" default:"false"`
	SeedCatalog bool `envconfig:"FIRESHOP_SEED_CATALOG" default:"false"`
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
