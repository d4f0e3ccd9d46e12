package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Storage      StorageConfig
	OAuth2Google OAuth2GoogleConfig
	Timesheet    TimesheetConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type StorageConfig struct {
	Driver    string
	LocalPath string
	BaseURL   string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// TimesheetConfig holds the workday rules applied by the computation engine.
type TimesheetConfig struct {
	Timezone              string
	LunchThresholdMinutes int
	LunchDeductionMinutes int
	ExpectedMinutesPerDay int
	PairingPolicy         string
	BatchConcurrency      int
}

func Load() (*Config, error) {
	// A missing .env is fine in containerized deploys where the environment
	// is injected directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Driver:    getEnv("STORAGE_DRIVER", "local"),
		LocalPath: getEnv("STORAGE_LOCAL_PATH", "./storage"),
		BaseURL:   getEnv("STORAGE_BASE_URL", ""),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Timesheet engine configuration
	lunchThreshold, err := strconv.Atoi(getEnv("TIMESHEET_LUNCH_THRESHOLD_MINUTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_LUNCH_THRESHOLD_MINUTES: %w", err)
	}
	lunchDeduction, err := strconv.Atoi(getEnv("TIMESHEET_LUNCH_DEDUCTION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_LUNCH_DEDUCTION_MINUTES: %w", err)
	}
	expectedPerDay, err := strconv.Atoi(getEnv("TIMESHEET_EXPECTED_MINUTES_PER_DAY", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_EXPECTED_MINUTES_PER_DAY: %w", err)
	}
	batchConcurrency, err := strconv.Atoi(getEnv("TIMESHEET_BATCH_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMESHEET_BATCH_CONCURRENCY: %w", err)
	}

	config.Timesheet = TimesheetConfig{
		Timezone:              getEnv("TIMESHEET_TIMEZONE", "America/Sao_Paulo"),
		LunchThresholdMinutes: lunchThreshold,
		LunchDeductionMinutes: lunchDeduction,
		ExpectedMinutesPerDay: expectedPerDay,
		PairingPolicy:         getEnv("TIMESHEET_PAIRING_POLICY", "replace_open_entrance"),
		BatchConcurrency:      batchConcurrency,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Timesheet.LunchDeductionMinutes < 0 {
		return fmt.Errorf("TIMESHEET_LUNCH_DEDUCTION_MINUTES must not be negative")
	}
	if c.Timesheet.ExpectedMinutesPerDay <= 0 {
		return fmt.Errorf("TIMESHEET_EXPECTED_MINUTES_PER_DAY must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
