// Package config loads tutortrack settings from an optional YAML file, a .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEnvFile is loaded when no env files are passed to Load
const DefaultEnvFile = ".env"

// DefaultUserID scopes CLI data when no user is configured
const DefaultUserID = "local"

// Config holds every setting the binaries need
type Config struct {
	Redis    RedisConfig    `yaml:"redis"`
	Discord  DiscordConfig  `yaml:"discord"`
	Currency CurrencyConfig `yaml:"currency"`
	Report   ReportConfig   `yaml:"report"`

	// UserID scopes the CLI's data; the Discord bot uses the caller's ID instead
	UserID string `yaml:"user"`

	// Timezone decides what "today" means; empty means the host's local zone
	Timezone string `yaml:"timezone"`

	// Rates seed a user's rate document the first time it is read
	Rates models.RateConfig `yaml:"rates"`
}

// RedisConfig holds the store connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DiscordConfig holds the bot credentials
type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`
	GuildID       string `yaml:"guild_id"`
}

// CurrencyConfig controls how amounts are printed
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
	Locale string `yaml:"locale"`
}

// ReportConfig controls report headings
type ReportConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Currency: CurrencyConfig{
			Symbol: accounting.DefaultCurrencySymbol,
			Locale: accounting.DefaultLocale,
		},
		Report: ReportConfig{
			Title: "TutorTrack",
		},
		UserID: DefaultUserID,
		Rates:  *models.DefaultRateConfig(),
	}
}

// Load builds the configuration. path names an optional YAML file; envFiles
// default to DefaultEnvFile and are skipped when missing. Variables already
// set in the environment win over .env values.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Discord.Token, "DISCORD_TOKEN")
	setString(&c.Discord.ApplicationID, "APPLICATION_ID")
	setString(&c.Discord.GuildID, "GUILD_ID")
	setString(&c.UserID, "TUTORTRACK_USER")
	setString(&c.Timezone, "TUTORTRACK_TIMEZONE")
	setString(&c.Currency.Symbol, "TUTORTRACK_CURRENCY_SYMBOL")
	setString(&c.Currency.Locale, "TUTORTRACK_LOCALE")
	setString(&c.Report.Title, "TUTORTRACK_REPORT_TITLE")
	setString(&c.Report.Author, "TUTORTRACK_REPORT_AUTHOR")

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		c.Redis.DB = db
	}

	rates := []struct {
		key    string
		target *float64
	}{
		{"TUTORTRACK_MORNING_RATE", &c.Rates.Morning},
		{"TUTORTRACK_EVENING_RATE", &c.Rates.Evening},
		{"TUTORTRACK_DEFAULT_RATE", &c.Rates.Default},
	}
	for _, r := range rates {
		v := os.Getenv(r.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", r.key, v, err)
		}
		*r.target = f
	}

	return nil
}

// setString overwrites target with the variable when it is set and non-empty
func setString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// Validate checks the settings for values that can never work
func (c *Config) Validate() error {
	if c.Redis.Addr == "" {
		return errors.New("redis address is required")
	}

	if c.Redis.DB < 0 {
		return fmt.Errorf("redis db must not be negative, got %d", c.Redis.DB)
	}

	for name, rate := range map[string]float64{
		"morning": c.Rates.Morning,
		"evening": c.Rates.Evening,
		"default": c.Rates.Default,
	} {
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
			return fmt.Errorf("%s rate must be a non-negative number, got %v", name, rate)
		}
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Money returns the formatter for the configured currency
func (c *Config) Money() *accounting.MoneyFormatter {
	return accounting.NewMoneyFormatter(c.Currency.Symbol, c.Currency.Locale)
}
