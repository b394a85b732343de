package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Mail providers
const (
	MailProviderSMTP     = "smtp"
	MailProviderSendGrid = "sendgrid"
	MailProviderLog      = "log"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
		SeedOnStart     bool   `yaml:"seed_on_start" env:"DB_SEED_ON_START"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Mail struct {
		Provider       string `yaml:"provider" env:"MAIL_PROVIDER"`
		FromName       string `yaml:"from_name" env:"MAIL_FROM_NAME"`
		FromEmail      string `yaml:"from_email" env:"MAIL_FROM_EMAIL"`
		LoginURL       string `yaml:"login_url" env:"MAIL_LOGIN_URL"`
		Workers        int    `yaml:"workers" env:"MAIL_WORKERS"`
		QueueSize      int    `yaml:"queue_size" env:"MAIL_QUEUE_SIZE"`
		SendTimeout    string `yaml:"send_timeout" env:"MAIL_SEND_TIMEOUT"`
		SMTPHost       string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort       int    `yaml:"smtp_port" env:"SMTP_PORT"`
		SMTPUsername   string `yaml:"smtp_username" env:"SMTP_USERNAME"`
		SMTPPassword   string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		SMTPUseTLS     bool   `yaml:"smtp_use_tls" env:"SMTP_USE_TLS"`
		SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	} `yaml:"mail"`

	Storage struct {
		Path string `yaml:"path" env:"STORAGE_PATH"`
	} `yaml:"storage"`
}

// LoadConfig loads configuration from a yaml file, an optional .env file and
// environment variables, in that order of precedence (lowest first).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(GetEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDotEnv loads variables from a dotenv file without overriding the
// variables already present in the process environment. A missing file is fine.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "30s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "ams"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"
	config.Database.SeedOnStart = true

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "ams.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Mail.Provider = MailProviderLog
	config.Mail.FromName = "AMS"
	config.Mail.FromEmail = "ams.alerts2025@gmail.com"
	config.Mail.LoginURL = "http://localhost:5173/login"
	config.Mail.Workers = 4
	config.Mail.QueueSize = 256
	config.Mail.SendTimeout = "30s"
	config.Mail.SMTPHost = "smtp.gmail.com"
	config.Mail.SMTPPort = 587

	config.Storage.Path = "uploads"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	switch strings.ToLower(config.Mail.Provider) {
	case MailProviderSMTP:
		if config.Mail.SMTPHost == "" || config.Mail.SMTPPort <= 0 {
			return fmt.Errorf("smtp host and port are required for the smtp mail provider")
		}
	case MailProviderSendGrid:
		if config.Mail.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid api key is required for the sendgrid mail provider")
		}
	case MailProviderLog:
	default:
		return fmt.Errorf("unknown mail provider %q", config.Mail.Provider)
	}

	if config.Mail.Workers <= 0 {
		return fmt.Errorf("mail workers must be positive")
	}
	if config.Mail.QueueSize <= 0 {
		return fmt.Errorf("mail queue size must be positive")
	}
	if d, err := time.ParseDuration(config.Mail.SendTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid mail send timeout %q", config.Mail.SendTimeout)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
