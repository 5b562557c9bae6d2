package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything backyard reads from its config file and environment.
type Config struct {
	APIBase        string
	APIToken       string
	CountryPrefix  string
	RequestTimeout time.Duration
	LogFile        string
	// RequestsPerMinute throttles observation API calls; zero disables it.
	RequestsPerMinute int

	Sightings SightingsConfig
	Display   DisplayConfig
	Email     EmailConfig
}

// SightingsConfig locates the recent-sightings query.
type SightingsConfig struct {
	Lat       float64
	Lng       float64
	PlaceName string
}

// DisplayConfig controls how dates are rendered.
type DisplayConfig struct {
	Locale   string
	Timezone string
}

// EmailConfig points the contact form at an EmailJS-compatible relay.
type EmailConfig struct {
	RelayBase  string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Recipient  string
}

// Configured reports whether enough relay settings are present to send mail.
func (e EmailConfig) Configured() bool {
	return e.ServiceID != "" && e.TemplateID != "" && e.PublicKey != ""
}

// Environment variables that override file values.
const (
	EnvAPIBase        = "BACKYARD_API_BASE"
	EnvAPIToken       = "BACKYARD_API_TOKEN"
	EnvCountryPrefix  = "BACKYARD_COUNTRY_PREFIX"
	EnvEmailPublicKey = "BACKYARD_EMAIL_PUBLIC_KEY"
)

const (
	defaultConfigPath        = "~/.config/backyard/config.toml"
	defaultAPIBase           = "https://api.ebird.org/v2"
	defaultCountryPrefix     = "US"
	defaultLat               = 34.08
	defaultLng               = -118.20
	defaultPlaceName         = "Los Angeles, CA"
	defaultLocale            = "en-US"
	defaultRelayBase         = "https://api.emailjs.com"
	defaultRequestsPerMinute = 60
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		APIBase:           defaultAPIBase,
		CountryPrefix:     defaultCountryPrefix,
		RequestsPerMinute: defaultRequestsPerMinute,
		Sightings: SightingsConfig{
			Lat:       defaultLat,
			Lng:       defaultLng,
			PlaceName: defaultPlaceName,
		},
		Display: DisplayConfig{Locale: defaultLocale},
		Email:   EmailConfig{RelayBase: defaultRelayBase},
	}
}

type rawConfig struct {
	APIBase        string `toml:"api_base"`
	APIToken       string `toml:"api_token"`
	CountryPrefix  string `toml:"country_prefix"`
	RequestTimeout string `toml:"request_timeout"`
	RequestsPerMin *int   `toml:"requests_per_minute"`
	LogFile        string `toml:"log_file"`

	Sightings struct {
		Lat       *float64 `toml:"lat"`
		Lng       *float64 `toml:"lng"`
		PlaceName string   `toml:"place_name"`
	} `toml:"sightings"`

	Display struct {
		Locale   string `toml:"locale"`
		Timezone string `toml:"timezone"`
	} `toml:"display"`

	Email struct {
		RelayBase  string `toml:"relay_base"`
		ServiceID  string `toml:"service_id"`
		TemplateID string `toml:"template_id"`
		PublicKey  string `toml:"public_key"`
		Recipient  string `toml:"recipient"`
	} `toml:"email"`
}

// Load reads the config file at path (or the default path), falling back to
// defaults when the file is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		applyEnv(&cfg)
		return cfg, cfg.Validate()
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := merge(&cfg, raw); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	return cfg, cfg.Validate()
}

func merge(cfg *Config, raw rawConfig) error {
	setString(&cfg.APIBase, raw.APIBase)
	setString(&cfg.APIToken, raw.APIToken)
	setString(&cfg.CountryPrefix, raw.CountryPrefix)
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}

	if raw.RequestsPerMin != nil {
		cfg.RequestsPerMinute = *raw.RequestsPerMin
	}

	if raw.Sightings.Lat != nil {
		cfg.Sightings.Lat = *raw.Sightings.Lat
	}
	if raw.Sightings.Lng != nil {
		cfg.Sightings.Lng = *raw.Sightings.Lng
	}
	setString(&cfg.Sightings.PlaceName, raw.Sightings.PlaceName)

	setString(&cfg.Display.Locale, raw.Display.Locale)
	setString(&cfg.Display.Timezone, raw.Display.Timezone)

	setString(&cfg.Email.RelayBase, raw.Email.RelayBase)
	setString(&cfg.Email.ServiceID, raw.Email.ServiceID)
	setString(&cfg.Email.TemplateID, raw.Email.TemplateID)
	setString(&cfg.Email.PublicKey, raw.Email.PublicKey)
	setString(&cfg.Email.Recipient, raw.Email.Recipient)
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.APIBase, os.Getenv(EnvAPIBase))
	setString(&cfg.APIToken, os.Getenv(EnvAPIToken))
	setString(&cfg.CountryPrefix, os.Getenv(EnvCountryPrefix))
	setString(&cfg.Email.PublicKey, os.Getenv(EnvEmailPublicKey))
}

// setString overwrites dst with the trimmed value unless it is blank.
func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

// parseDuration accepts Go duration strings ("15s") or bare seconds ("15").
func parseDuration(value string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("must not be negative")
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return d, nil
}

// Validate checks values that would otherwise fail later in surprising ways.
func (c Config) Validate() error {
	if c.Sightings.Lat < -90 || c.Sightings.Lat > 90 {
		return fmt.Errorf("sightings.lat %v out of range", c.Sightings.Lat)
	}
	if c.Sightings.Lng < -180 || c.Sightings.Lng > 180 {
		return fmt.Errorf("sightings.lng %v out of range", c.Sightings.Lng)
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the display time zone; empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Display.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("display.timezone: %w", err)
	}
	return loc, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
