package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	BookingService ServiceClientConfig  `toml:"booking_service"`
	PaymentService ServiceClientConfig  `toml:"payment_service"`
	Checkout       CheckoutConfig       `toml:"checkout"`
	Cache          CacheConfig          `toml:"cache"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ServiceClientConfig настройки интеграционного клиента
type ServiceClientConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CheckoutConfig настройки оркестрации оплаты
type CheckoutConfig struct {
	PollIntervalSeconds int    `toml:"poll_interval_seconds"`
	MaxPollAttempts     int    `toml:"max_poll_attempts"`
	MinimumNights       int    `toml:"minimum_nights"`
	BackURLBase         string `toml:"back_url_base"`
}

// CacheConfig настройки кэша списков броней (Redis)
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// Дефолтные значения для секции [checkout]
// Интервал и лимит попыток дают ~60 секунд ожидания подтверждения оплаты
const (
	defaultPollIntervalSeconds = 3
	defaultMaxPollAttempts     = 20
	defaultMinimumNights       = 1
	defaultCacheTTLSeconds     = 30
	defaultBookingTimeout      = 5
	defaultPaymentTimeout      = 2
)

// Load загружает конфигурацию из TOML файла
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

func (c *Config) applyDefaults() {
	if c.Checkout.PollIntervalSeconds <= 0 {
		c.Checkout.PollIntervalSeconds = defaultPollIntervalSeconds
	}
	if c.Checkout.MaxPollAttempts <= 0 {
		c.Checkout.MaxPollAttempts = defaultMaxPollAttempts
	}
	if c.Checkout.MinimumNights <= 0 {
		c.Checkout.MinimumNights = defaultMinimumNights
	}
	if c.Cache.TTLSeconds <= 0 {
		c.Cache.TTLSeconds = defaultCacheTTLSeconds
	}
	if c.BookingService.Timeout <= 0 {
		c.BookingService.Timeout = defaultBookingTimeout
	}
	if c.PaymentService.Timeout <= 0 {
		c.PaymentService.Timeout = defaultPaymentTimeout
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if c.BookingService.URL == "" {
		return fmt.Errorf("config: booking_service.url is required")
	}
	if c.PaymentService.URL == "" {
		return fmt.Errorf("config: payment_service.url is required")
	}
	// Таймаут запроса статуса должен быть короче интервала опроса,
	// иначе зависший запрос задержит отсчет попыток
	if c.PaymentService.Timeout >= c.Checkout.PollIntervalSeconds {
		return fmt.Errorf("config: payment_service.timeout must be less than checkout.poll_interval_seconds")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("config: cache.addr is required when cache is enabled")
	}
	return nil
}
