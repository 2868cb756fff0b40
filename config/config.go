// Package config loads the aggregator configuration: defaults, an optional
// YAML file, a .env file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderYahoo     = "yahoo"
	ProviderFinanceGo = "financego"
)

type Server struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	RequestTimeout  time.Duration `yaml:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type Market struct {
	Provider  string        `yaml:"provider" validate:"oneof=yahoo financego"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	HomeURL   string        `yaml:"home_url" validate:"required,url"`
	APIURL    string        `yaml:"api_url" validate:"required,url"`
	UserAgent string        `yaml:"user_agent" validate:"required"`
	// Concurrency bounds the parallel symbol fetches of /hot-stocks.
	Concurrency int `yaml:"concurrency" validate:"min=1,max=8"`
}

type News struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
	Output string `yaml:"output"`
}

type Config struct {
	Server Server `yaml:"server"`
	Market Market `yaml:"market"`
	News   News   `yaml:"news"`
	Log    Log    `yaml:"log"`
}

func Default() Config {
	return Config{
		Server: Server{
			Port:            "8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Market: Market{
			Provider:    ProviderYahoo,
			Timeout:     10 * time.Second,
			HomeURL:     "https://finance.yahoo.com",
			APIURL:      "https://query2.finance.yahoo.com",
			UserAgent:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Concurrency: 4,
		},
		News: News{
			BaseURL: "https://newsapi.org",
			Timeout: 10 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// Load reads YAML config from path. If path is empty, config.yml is used when
// present; otherwise defaults apply. A .env file in the working directory is
// loaded into the environment before overrides are read.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.yml"); err == nil {
			path = "config.yml"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		cfg.Market.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
		}
		cfg.Market.Timeout = d
		cfg.News.Timeout = d
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded values against the struct constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
