package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	envPrefix = "PANEL_"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логгера
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessHoursConfig рабочие часы, из которых генерируются слоты
type BusinessHoursConfig struct {
	OpeningTime            string `toml:"opening_time"`
	ClosingTime            string `toml:"closing_time"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	Timezone               string `toml:"timezone"`
}

// StorageConfig выбор хранилища журнала записей: memory или postgres
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки PostgreSQL, ConnMaxLifetime в секундах
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}

	query := dsn.Query()
	query.Set("sslmode", d.SSLMode)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// Load читает TOML файл, затем .env рядом с ним и переменные окружения PANEL_*.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "ops_panel",
		},
		BusinessHours: BusinessHoursConfig{
			OpeningTime:            domain.DefaultOpeningTime,
			ClosingTime:            domain.DefaultClosingTime,
			SlotGranularityMinutes: int(domain.DefaultSlotGranularity / time.Minute),
			Timezone:               "Local",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"LOG_LEVEL":      &c.Logs.Level,
		"STORAGE_DRIVER": &c.Storage.Driver,
		"DB_HOST":        &c.Database.Host,
		"DB_USER":        &c.Database.User,
		"DB_PASSWORD":    &c.Database.Password,
		"DB_NAME":        &c.Database.DBName,
		"DB_SSLMODE":     &c.Database.SSLMode,
		"TIMEZONE":       &c.BusinessHours.Timezone,
	}
	for name, dst := range stringVars {
		if value, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = value
		}
	}

	intVars := map[string]*int{
		"HTTP_PORT": &c.Server.HTTPPort,
		"DB_PORT":   &c.Database.Port,
	}
	for name, dst := range intVars {
		value, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, envPrefix, name, value)
		}
		*dst = parsed
	}

	return nil
}

// Validate проверяет конфигурацию целиком
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for the postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: storage.driver must be %q or %q, got %q", ErrInvalidConfig, StorageMemory, StoragePostgres, c.Storage.Driver)
	}

	if _, err := c.Hours(); err != nil {
		return err
	}

	return nil
}

// Hours строит рабочие часы домена и проверяет их
func (c *Config) Hours() (domain.BusinessHours, error) {
	bh := c.BusinessHours

	location, err := time.LoadLocation(bh.Timezone)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("%w: business_hours.timezone: %v", ErrInvalidConfig, err)
	}

	hours := domain.BusinessHours{
		OpeningTime:     types.TimeString(strings.TrimSpace(bh.OpeningTime)),
		ClosingTime:     types.TimeString(strings.TrimSpace(bh.ClosingTime)),
		SlotGranularity: time.Duration(bh.SlotGranularityMinutes) * time.Minute,
		Location:        location,
	}
	if err := hours.Validate(); err != nil {
		return domain.BusinessHours{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return hours, nil
}
