package config

import (
	"errors"
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store kinds selected by DatabaseURL.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Streak scopes.
const (
	StreakScopeSession = "session"
	StreakScopeGlobal  = "global"
)

const defaultPublicPaths = "/login,/register,/login_user,/register_user,/logout_user,/static/style.css,/static/script.js,/health"

const defaultAPIPaths = "/get_user_profile,/chat"

// Config centralises runtime configuration.
type Config struct {
	HTTPPort        string
	DatabaseURL     string
	SessionSecret   string
	SessionTTL      time.Duration
	SessionCookie   string
	SecureCookies   bool
	StreakScope     string
	RedisURL        string
	PublicPaths     []string
	APIPaths        []string
	AllowedOrigins  []string
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	LogLevel        string
	LogFormat       string
}

// Load reads configuration from environment variables, after merging an
// optional .env file, providing sane defaults.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	httpPort := getEnv("HTTP_PORT", "")
	if httpPort == "" {
		httpPort = getEnv("PORT", "8080")
	}

	cfg := Config{
		HTTPPort:        httpPort,
		DatabaseURL:     resolveDatabaseURL(),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTL:      getDurationEnv("SESSION_TTL", 31*24*time.Hour),
		SessionCookie:   getEnv("SESSION_COOKIE_NAME", "careerbot_session"),
		SecureCookies:   getBoolEnv("SESSION_COOKIE_SECURE", false),
		StreakScope:     strings.ToLower(getEnv("CHAT_STREAK_SCOPE", StreakScopeSession)),
		RedisURL:        getEnv("REDIS_URL", ""),
		PublicPaths:     splitCSV(getEnv("PUBLIC_PATHS", defaultPublicPaths)),
		APIPaths:        splitCSV(getEnv("API_PATHS", defaultAPIPaths)),
		AllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeoutSec:  getIntEnv("HTTP_READ_TIMEOUT", 15),
		WriteTimeoutSec: getIntEnv("HTTP_WRITE_TIMEOUT", 15),
		IdleTimeoutSec:  getIntEnv("HTTP_IDLE_TIMEOUT", 60),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("database configuration missing: provide DATABASE_URL, PG* env vars or SQLITE_PATH")
	}
	if c.SessionSecret != "" && len(c.SessionSecret) < 16 {
		return errors.New("SESSION_SECRET is too short; use at least 16 characters")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if strings.TrimSpace(c.SessionCookie) == "" {
		return errors.New("SESSION_COOKIE_NAME must not be empty")
	}
	switch c.StreakScope {
	case StreakScopeSession, StreakScopeGlobal:
	default:
		return fmt.Errorf("CHAT_STREAK_SCOPE must be %q or %q, got %q", StreakScopeSession, StreakScopeGlobal, c.StreakScope)
	}
	return nil
}

// StoreKind reports which account store DatabaseURL selects.
func (c Config) StoreKind() string {
	if coerceDatabaseURL(c.DatabaseURL) != "" {
		return StorePostgres
	}
	return StoreSQLite
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := []string{}
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// resolveDatabaseURL prefers an explicit DATABASE_URL, then a Postgres DSN
// assembled from PG* variables, then a local sqlite file.
func resolveDatabaseURL() string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		if coerced := coerceDatabaseURL(raw); coerced != "" {
			return coerced
		}
		return raw
	}
	if fromFile := readEnvFile("DATABASE_URL_FILE"); fromFile != "" {
		if coerced := coerceDatabaseURL(fromFile); coerced != "" {
			return coerced
		}
	}

	if dsn := postgresFromParts(); dsn != "" {
		return dsn
	}
	return getEnv("SQLITE_PATH", "users.db")
}

func postgresFromParts() string {
	host := firstNonEmpty(os.Getenv("PGHOST"), os.Getenv("POSTGRES_HOST"))
	user := firstNonEmpty(os.Getenv("PGUSER"), os.Getenv("POSTGRES_USER"))
	if host == "" || user == "" {
		return ""
	}
	password := firstNonEmpty(os.Getenv("PGPASSWORD"), os.Getenv("POSTGRES_PASSWORD"))
	database := firstNonEmpty(os.Getenv("PGDATABASE"), os.Getenv("POSTGRES_DB"), user)
	port := firstNonEmpty(os.Getenv("PGPORT"), os.Getenv("POSTGRES_PORT"), "5432")
	sslMode := firstNonEmpty(os.Getenv("PGSSLMODE"), "disable")

	dsn := &neturl.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + database,
		User:   neturl.User(user),
	}
	if password != "" {
		dsn.User = neturl.UserPassword(user, password)
	}
	query := dsn.Query()
	query.Set("sslmode", sslMode)
	dsn.RawQuery = query.Encode()
	return dsn.String()
}

func normalisePostgresScheme(url string) string {
	if strings.HasPrefix(url, "postgresql://") {
		return "postgres://" + strings.TrimPrefix(url, "postgresql://")
	}
	return url
}

func coerceDatabaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		return normalisePostgresScheme(raw)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func readEnvFile(key string) string {
	path := os.Getenv(key)
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
