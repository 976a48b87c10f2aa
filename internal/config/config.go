package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        `env:"RUN_ADDRESS"`   // Адрес и порт запуска сервиса
	DatabaseURI string        `env:"DATABASE_URI"`  // URI подключения к БД
	JWTSecret   string        `env:"JWT_SECRET"`    // Секретный ключ для JWT
	JWTTokenTTL time.Duration `env:"JWT_TOKEN_TTL"` // Время жизни JWT токена
	LogLevel    string        `env:"LOG_LEVEL"`     // Уровень логирования
	LogFile     string        `env:"LOG_FILE"`      // Файл логов с ротацией, пусто - только stderr

	// Загрузка скриншотов
	BaseURL       string `env:"BASE_URL"`
	UploadDir     string `env:"UPLOAD_DIR"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE"`

	// Реквизиты UPI для QR оплаты
	UPIID        string `env:"UPI_ID"`
	UPIPayeeName string `env:"UPI_PAYEE_NAME"`

	// Уведомления
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`
	NATSURL           string `env:"NATS_URL"`

	// Worker Pool конфигурация
	NotifyWorkers       int           `env:"NOTIFY_WORKERS"`
	NotifyQueueSize     int           `env:"NOTIFY_QUEUE_SIZE"`
	NotifyTimeout       time.Duration `env:"NOTIFY_TIMEOUT"`
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL"` // 0 отключает кэш каталога

	// Ограничение частоты запросов к /api
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// Администратор, создаваемый при старте
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Валидация
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`
}

const defaultJWTSecret = "default-secret-key-change-in-production"

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		RunAddress:          ":8080",
		JWTSecret:           defaultJWTSecret,
		JWTTokenTTL:         24 * time.Hour,
		LogLevel:            "info",
		BaseURL:             "http://localhost:8080",
		UploadDir:           "uploads",
		MaxUploadSize:       5 << 20,
		UPIPayeeName:        "Hostia",
		NotifyWorkers:       2,
		NotifyQueueSize:     100,
		NotifyTimeout:       10 * time.Second,
		ExpirySweepInterval: time.Hour,
		CatalogCacheTTL:     time.Minute,
		RateLimitRPS:        100.0 / 60,
		RateLimitBurst:      100,
		CORSAllowedOrigins:  []string{"*"},
		MinPasswordLength:   6,
	}
}

// Load загружает конфигурацию из .env, флагов и переменных окружения
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return errors.New("database URI is required (use -d flag or DATABASE_URI env)")
	}
	if c.JWTTokenTTL <= 0 {
		return errors.New("JWT_TOKEN_TTL must be positive")
	}
	if c.MaxUploadSize <= 0 {
		return errors.New("MAX_UPLOAD_SIZE must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	return nil
}

// InsecureJWTSecret сообщает, что используется секрет по умолчанию
func (c *Config) InsecureJWTSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}
