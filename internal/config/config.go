// Package config загружает конфигурацию сервиса из TOML файла.
// Секреты CloudPayments можно переопределить переменными окружения
// CLOUDPAYMENTS_PUBLIC_ID / CLOUDPAYMENTS_API_SECRET.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// ErrMissingCredentials возвращается, когда не заданы реквизиты CloudPayments.
// Без API Secret невозможно проверять подлинность уведомлений шлюза,
// поэтому запуск с пустым секретом запрещён.
var ErrMissingCredentials = errors.New("config: cloudpayments credentials are required")

// Config конфигурация сервиса
type Config struct {
	Server        Server        `toml:"server"`
	Database      Database      `toml:"database"`
	Logs          Logs          `toml:"logs"`
	Metrics       Metrics       `toml:"metrics"`
	CloudPayments CloudPayments `toml:"cloudpayments"`
	Booking       Booking       `toml:"booking"`
	Shop          Shop          `toml:"shop"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки прометей-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CloudPayments реквизиты платежного шлюза.
// PublicID безопасно отдавать на фронт, APISecret - только в конфиге/окружении.
type CloudPayments struct {
	PublicID   string `toml:"public_id"`
	APISecret  string `toml:"api_secret"`
	APIURL     string `toml:"api_url"`
	AutoRefund bool   `toml:"auto_refund"`
	Timeout    int    `toml:"timeout"`
}

// Booking параметры бронирования
type Booking struct {
	SlotStepMinutes     int    `toml:"slot_step_minutes"`
	HoldMinutes         int    `toml:"hold_minutes"`
	CancelDeadlineHours int    `toml:"cancel_deadline_hours"`
	Currency            string `toml:"currency"`
	TimezoneOffset      string `toml:"timezone_offset"`
	SweepSchedule       string `toml:"sweep_schedule"` // cron spec; пусто = фоновая очистка выключена
}

// Shop публичные данные салона
type Shop struct {
	Name         string `toml:"name"`
	Tagline      string `toml:"tagline"`
	ContactsHTML string `toml:"contacts_html"`
}

// Load загружает и валидирует конфигурацию
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Секреты из окружения имеют приоритет над файлом
	if v := os.Getenv("CLOUDPAYMENTS_PUBLIC_ID"); v != "" {
		cfg.CloudPayments.PublicID = v
	}
	if v := os.Getenv("CLOUDPAYMENTS_API_SECRET"); v != "" {
		cfg.CloudPayments.APISecret = v
	}

	cfg.applyDefaults()

	if cfg.CloudPayments.PublicID == "" || cfg.CloudPayments.APISecret == "" {
		return nil, ErrMissingCredentials
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Booking.SlotStepMinutes <= 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Booking.HoldMinutes <= 0 {
		c.Booking.HoldMinutes = domain.DefaultHoldMinutes
	}
	if c.Booking.CancelDeadlineHours <= 0 {
		c.Booking.CancelDeadlineHours = domain.DefaultCancelDeadlineHours
	}
	if c.Booking.Currency == "" {
		c.Booking.Currency = domain.DefaultCurrency
	}
	if c.Booking.TimezoneOffset == "" {
		c.Booking.TimezoneOffset = domain.DefaultTimezoneOffset
	}
	if c.CloudPayments.APIURL == "" {
		c.CloudPayments.APIURL = "https://api.cloudpayments.ru"
	}
	if c.CloudPayments.Timeout <= 0 {
		c.CloudPayments.Timeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-service"
	}
}
