package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
	Simulation   SimulationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
	// ConnectAttempts bounds startup retries while the database comes up.
	ConnectAttempts int
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
}

// AuthConfig defines session token parameters.
type AuthConfig struct {
	JWTSecret         string
	SessionTTLMinutes int
	BcryptCost        int
	SweepSpec         string
}

// NotificationConfig controls where toast notices are delivered.
type NotificationConfig struct {
	RedisChannel string
	InboxLimit   int
}

// SimulationConfig holds the artificial latencies of the prototype's network stand-ins.
type SimulationConfig struct {
	LoginDelayMS     int
	PaymentDelayMS   int
	WalkStartDelayMS int
	PhotoDelayMS     int
	WalkEndDelayMS   int
	OverlapPolicy    string
}

// Load reads the environment (and an optional .env file). Unset keys take
// their defaults; malformed values are reported together.
func Load() (*Config, error) {
	_ = godotenv.Load()

	e := &envReader{}
	cfg := &Config{
		App: AppConfig{
			Name:                  e.str("APP_NAME", "happy-paws"),
			Env:                   e.str("APP_ENV", "development"),
			Host:                  e.str("APP_HOST", "0.0.0.0"),
			Port:                  e.str("APP_PORT", "8080"),
			Version:               e.str("APP_VERSION", "dev"),
			RequestTimeoutSeconds: e.integer("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:             e.str("POSTGRES_DSN", ""),
			MaxConns:        int32(e.integer("POSTGRES_MAX_CONNS", 10)),
			MinConns:        int32(e.integer("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:   e.boolean("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec:  int32(e.integer("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec:  int32(e.integer("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
			ConnectAttempts: e.integer("POSTGRES_CONNECT_ATTEMPTS", 3),
		},
		Redis: RedisConfig{
			Addr:     e.str("REDIS_ADDR", ""),
			Password: e.str("REDIS_PASSWORD", ""),
			DB:       e.integer("REDIS_DB", 0),
		},
		Logger: LoggerConfig{
			Level:  e.str("LOG_LEVEL", "info"),
			Format: e.oneOf("LOG_FORMAT", "json", "console"),
		},
		Auth: AuthConfig{
			JWTSecret:         e.str("AUTH_JWT_SECRET", "dev-secret"),
			SessionTTLMinutes: e.integer("AUTH_SESSION_TTL_MINUTES", 240),
			BcryptCost:        e.integer("AUTH_BCRYPT_COST", 10),
			SweepSpec:         e.str("AUTH_SESSION_SWEEP_SPEC", "@every 1m"),
		},
		Notification: NotificationConfig{
			RedisChannel: e.str("NOTIFY_REDIS_CHANNEL", ""),
			InboxLimit:   e.integer("NOTIFY_INBOX_LIMIT", 50),
		},
		Simulation: SimulationConfig{
			LoginDelayMS:     e.integer("SIM_LOGIN_DELAY_MS", 1000),
			PaymentDelayMS:   e.integer("SIM_PAYMENT_DELAY_MS", 1500),
			WalkStartDelayMS: e.integer("SIM_WALK_START_DELAY_MS", 1500),
			PhotoDelayMS:     e.integer("SIM_PHOTO_DELAY_MS", 1500),
			WalkEndDelayMS:   e.integer("SIM_WALK_END_DELAY_MS", 3000),
			OverlapPolicy:    e.oneOf("SIM_OVERLAP_POLICY", "replace", "reject"),
		},
	}
	if err := errors.Join(e.errs...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SessionTTL returns how long a session token stays valid.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return 4 * time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// Delay converts a millisecond setting to a duration, clamping negatives to zero.
func Delay(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// envReader reads typed values and remembers every malformed one.
type envReader struct {
	errs []error
}

func (e *envReader) str(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func (e *envReader) integer(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %q is not an integer", key, val))
		return fallback
	}
	return parsed
}

func (e *envReader) boolean(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %q is not a boolean", key, val))
		return fallback
	}
	return parsed
}

// oneOf returns the value of key if it is one of allowed. The first allowed
// value is the default.
func (e *envReader) oneOf(key string, allowed ...string) string {
	val := strings.ToLower(e.str(key, allowed[0]))
	for _, a := range allowed {
		if val == a {
			return val
		}
	}
	e.errs = append(e.errs, fmt.Errorf("%s: %q, want one of %s", key, val, strings.Join(allowed, ", ")))
	return allowed[0]
}
