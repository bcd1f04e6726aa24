package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// APIBaseURL is the intake backend every outbound endpoint is derived from.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"findme-dev-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	ReportTransport   string        `env:"REPORT_TRANSPORT" envDefault:"simulate"`
	ReportSubmitDelay time.Duration `env:"REPORT_SUBMIT_DELAY" envDefault:"1500ms"`

	NotificationTTL    time.Duration `env:"NOTIFICATION_TTL" envDefault:"5s"`
	NotificationMaxTTL time.Duration `env:"NOTIFICATION_MAX_TTL" envDefault:"10s"`
	NotificationLimit  int           `env:"NOTIFICATION_LIMIT" envDefault:"3"`

	ConsultationRateLimit  int           `env:"CONSULTATION_RATE_LIMIT" envDefault:"5"`
	ConsultationRateWindow time.Duration `env:"CONSULTATION_RATE_WINDOW" envDefault:"1m"`
}

// Endpoints are the absolute URLs of the intake backend.
type Endpoints struct {
	Upload    string
	Counselor string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values the tickers and limiters cannot run with.
func (c *Config) validate() error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"SESSION_TTL", c.SessionTTL},
		{"NOTIFICATION_TTL", c.NotificationTTL},
		{"NOTIFICATION_MAX_TTL", c.NotificationMaxTTL},
		{"CONSULTATION_RATE_WINDOW", c.ConsultationRateWindow},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.value)
		}
	}
	if c.ReportSubmitDelay < 0 {
		return fmt.Errorf("REPORT_SUBMIT_DELAY must not be negative, got %s", c.ReportSubmitDelay)
	}
	if c.NotificationLimit < 1 {
		return fmt.Errorf("NOTIFICATION_LIMIT must be at least 1, got %d", c.NotificationLimit)
	}
	if c.ConsultationRateLimit < 1 {
		return fmt.Errorf("CONSULTATION_RATE_LIMIT must be at least 1, got %d", c.ConsultationRateLimit)
	}
	return nil
}

func (c *Config) Endpoints() Endpoints {
	return Endpoints{
		Upload:    c.endpoint("api", "upload"),
		Counselor: c.endpoint("api", "counselor"),
	}
}

func (c *Config) endpoint(elem ...string) string {
	u, err := url.JoinPath(c.APIBaseURL, elem...)
	if err != nil {
		return c.APIBaseURL + "/" + strings.Join(elem, "/")
	}
	return u
}

// AllowedOrigins splits FrontendURL on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.FrontendURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
