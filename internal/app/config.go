package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// DefaultEnvFile is loaded when present before reading the environment.
const DefaultEnvFile = ".env"

// Config holds runtime configuration for the console.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	Seed               bool   `envconfig:"CONSOLE_SEED" default:"true"`
	PageSize           int    `envconfig:"CONSOLE_PAGE_SIZE" default:"10"`
	AttachmentMaxBytes int64  `envconfig:"CONSOLE_ATTACHMENT_MAX_BYTES" default:"10485760"`
	Currency           string `envconfig:"CONSOLE_CURRENCY" default:"USD"`
	Locale             string `envconfig:"CONSOLE_LOCALE" default:"en-US"`
}

// LoadConfig reads envFile, when it exists, and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PageSize <= 0 {
		return errors.New("page size must be positive")
	}
	if c.AttachmentMaxBytes <= 0 {
		return errors.New("attachment limit must be positive")
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency %q: %w", c.Currency, err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// CurrencyUnit returns the configured currency, USD when unset or invalid.
func (c *Config) CurrencyUnit() currency.Unit {
	if c != nil {
		if unit, err := currency.ParseISO(c.Currency); err == nil {
			return unit
		}
	}
	return currency.USD
}

// LanguageTag returns the configured display locale.
func (c *Config) LanguageTag() language.Tag {
	if c != nil {
		if tag, err := language.Parse(c.Locale); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}
