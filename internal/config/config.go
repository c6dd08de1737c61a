package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Database         DatabaseConfig         `toml:"database"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	Auth             AuthConfig             `toml:"auth"`
	Parking          ParkingConfig          `toml:"parking"`
	Tickets          TicketsConfig          `toml:"tickets"`
	PlateRecognition PlateRecognitionConfig `toml:"plate_recognition"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки выпуска и проверки JWT-токенов
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// ParkingConfig параметры парковки
type ParkingConfig struct {
	TotalSlots   int     `toml:"total_slots"`
	PricePerHour float64 `toml:"price_per_hour"`
	Currency     string  `toml:"currency"`
}

// TicketsConfig настройки экспорта QR-билетов
type TicketsConfig struct {
	Dir string `toml:"dir"`
}

// PlateRecognitionConfig настройки внешнего сервиса распознавания номеров
// Доступность фиксируется здесь один раз на старте
type PlateRecognitionConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "parking-service"
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 12 * 60
	}
	if c.Parking.TotalSlots == 0 {
		c.Parking.TotalSlots = domain.DefaultTotalSlots
	}
	if c.Parking.PricePerHour == 0 {
		c.Parking.PricePerHour = domain.DefaultPricePerHour
	}
	if c.Parking.Currency == "" {
		c.Parking.Currency = domain.DefaultCurrency
	}
	if c.Tickets.Dir == "" {
		c.Tickets.Dir = "tickets"
	}
	if c.PlateRecognition.Timeout == 0 {
		c.PlateRecognition.Timeout = 5
	}
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if c.Parking.TotalSlots < domain.MinTotalSlots || c.Parking.TotalSlots > domain.MaxTotalSlots {
		return fmt.Errorf("config: parking.total_slots must be within [%d, %d]",
			domain.MinTotalSlots, domain.MaxTotalSlots)
	}
	if c.Parking.PricePerHour < 0 {
		return fmt.Errorf("config: parking.price_per_hour must not be negative")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if c.PlateRecognition.Enabled && c.PlateRecognition.URL == "" {
		return fmt.Errorf("config: plate_recognition.url is required when recognition is enabled")
	}
	return nil
}
