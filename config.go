package sqlbind

import (
	"fmt"
	"os"

	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents engine configuration.
type Config struct {
	// FormatCacheSize bounds the format cache. Zero shares the process-wide
	// cache.
	FormatCacheSize int    `json:"format_cache_size" yaml:"format_cache_size"`
	ScanCacheSize   int    `json:"scan_cache_size" yaml:"scan_cache_size"`
	Locale          string `json:"locale" yaml:"locale"`
	Currency        string `json:"currency" yaml:"currency"`
	DefaultTemplate string `json:"default_template" yaml:"default_template"`
	// DefaultDriver, when set, overrides DefaultTemplate with the driver's.
	DefaultDriver string `json:"default_driver,omitempty" yaml:"default_driver,omitempty"`
	MaxLength     int    `json:"max_length" yaml:"max_length"`
}

// DefaultConfig returns the configuration New uses for a zero Config file.
func DefaultConfig() Config {
	return Config{
		ScanCacheSize:   512,
		Locale:          "en-US",
		Currency:        "USD",
		DefaultTemplate: string(dialect.TemplateNumbered),
	}
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if c.FormatCacheSize < 0 {
		return fmt.Errorf("%w: format_cache_size must not be negative: %d", ErrInvalidConfig, c.FormatCacheSize)
	}
	if c.ScanCacheSize < 0 {
		return fmt.Errorf("%w: scan_cache_size must not be negative: %d", ErrInvalidConfig, c.ScanCacheSize)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max_length must not be negative: %d", ErrInvalidConfig, c.MaxLength)
	}
	if _, err := c.locale(); err != nil {
		return err
	}
	if _, err := c.currency(); err != nil {
		return err
	}
	if _, err := c.template(); err != nil {
		return err
	}
	return nil
}

func (c *Config) locale() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
	}
	return tag, nil
}

func (c *Config) currency() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: currency %q: %v", ErrInvalidConfig, c.Currency, err)
	}
	return unit, nil
}

func (c *Config) template() (dialect.Template, error) {
	if c.DefaultDriver != "" {
		d, err := dialect.ForDriver(c.DefaultDriver)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return d.Template(), nil
	}
	tpl, err := dialect.ParseTemplate(c.DefaultTemplate)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return tpl, nil
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
