package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	HTTPPort     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TemplatesDir string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	SessionCookieName   string
	SessionCookieSecure bool
	SessionTTL          time.Duration

	PageSize int

	TelegramBotToken    string
	TelegramAdminChatID int64
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "taxipark"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.HTTPPort = cast.ToInt(getOrReturnDefault("HTTP_PORT", 8080))
	cfg.ReadTimeout = time.Duration(cast.ToInt(getOrReturnDefault("HTTP_READ_TIMEOUT_SEC", 15))) * time.Second
	cfg.WriteTimeout = time.Duration(cast.ToInt(getOrReturnDefault("HTTP_WRITE_TIMEOUT_SEC", 15))) * time.Second
	cfg.TemplatesDir = cast.ToString(getOrReturnDefault("TEMPLATES_DIR", ""))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "taxipark"))

	cfg.RedisHost = cast.ToString(getOrReturnDefault("REDIS_HOST", "localhost"))
	cfg.RedisPort = cast.ToString(getOrReturnDefault("REDIS_PORT", "6379"))
	cfg.RedisPassword = cast.ToString(getOrReturnDefault("REDIS_PASSWORD", ""))
	cfg.RedisDB = cast.ToInt(getOrReturnDefault("REDIS_DB", 0))

	cfg.SessionCookieName = cast.ToString(getOrReturnDefault("SESSION_COOKIE_NAME", "sessionid"))
	cfg.SessionCookieSecure = cast.ToBool(getOrReturnDefault("SESSION_COOKIE_SECURE", false))
	cfg.SessionTTL = time.Duration(cast.ToInt(getOrReturnDefault("SESSION_TTL_HOURS", 24*14))) * time.Hour

	cfg.PageSize = cast.ToInt(getOrReturnDefault("PAGE_SIZE", 5))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TELEGRAM_BOT_TOKEN", ""))
	cfg.TelegramAdminChatID = cast.ToInt64(getOrReturnDefault("TELEGRAM_ADMIN_CHAT_ID", 0))

	return cfg
}

// PostgresURL is used both by the pool and by golang-migrate.
func (c Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
	)
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
