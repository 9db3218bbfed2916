// Package config loads the wlt settings: defaults, a wealth.toml file, a .env
// file and WEALTH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/view"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the name of the configuration file.
const FileName = "wealth.toml"

// Config holds all configuration for wlt.
type Config struct {
	Holdings   HoldingsConfig   `toml:"holdings"`
	Allocation AllocationConfig `toml:"allocation"`
	Rates      RatesConfig      `toml:"rates"`
	Logging    LoggingConfig    `toml:"logging"`
}

// HoldingsConfig holds the defaults of the holdings table.
type HoldingsConfig struct {
	GroupBy       string `toml:"group_by"` // short name or property path, e.g. "asset.market.code"
	ValueIn       string `toml:"value_in"`
	HideEmpty     bool   `toml:"hide_empty"`
	SortKey       string `toml:"sort_key"`
	SortDirection string `toml:"sort_direction"`
}

// AllocationConfig holds the defaults of the allocation breakdown.
type AllocationConfig struct {
	GroupBy         string   `toml:"group_by"`
	DisplayCurrency string   `toml:"display_currency"` // empty: the currency of value_in
	Exclude         []string `toml:"exclude"`
	ManualFile      string   `toml:"manual_file"`
}

// RatesConfig locates FX rates.
type RatesConfig struct {
	File string `toml:"file"`
	Path string `toml:"path"` // jsonpath of the rates in File
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Holdings: HoldingsConfig{
			GroupBy:       wealth.ByCategory.String(),
			ValueIn:       wealth.Portfolio.String(),
			HideEmpty:     true,
			SortKey:       wealth.SortByMarketValue.String(),
			SortDirection: wealth.Descending.String(),
		},
		Allocation: AllocationConfig{
			GroupBy: wealth.ByCategory.String(),
		},
		Rates: RatesConfig{
			Path: wealth.DefaultRatesPath,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPaths returns the configuration files read by default, the least
// specific first.
func DefaultPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "wealth", FileName))
	}
	return append(paths, FileName)
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped, later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	// a .env file is optional
	_ = godotenv.Load()

	config := NewDefaultConfig()
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("WEALTH_GROUP_BY"); v != "" {
		config.Holdings.GroupBy = v
	}
	if v := os.Getenv("WEALTH_VALUE_IN"); v != "" {
		config.Holdings.ValueIn = v
	}
	if v := os.Getenv("WEALTH_HIDE_EMPTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Holdings.HideEmpty = b
		}
	}
	if v := os.Getenv("WEALTH_SORT_KEY"); v != "" {
		config.Holdings.SortKey = v
	}
	if v := os.Getenv("WEALTH_SORT_DIRECTION"); v != "" {
		config.Holdings.SortDirection = v
	}
	if v := os.Getenv("WEALTH_ALLOCATION_GROUP_BY"); v != "" {
		config.Allocation.GroupBy = v
	}
	if v := os.Getenv("WEALTH_DISPLAY_CURRENCY"); v != "" {
		config.Allocation.DisplayCurrency = strings.ToUpper(v)
	}
	if v := os.Getenv("WEALTH_RATES_PATH"); v != "" {
		config.Rates.Path = v
	}
	if v := os.Getenv("WEALTH_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("WEALTH_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}
}

// Validate checks that every enumerated setting has a known value.
func (c *Config) Validate() error {
	var errs []error
	if _, err := wealth.ParseGroupBy(c.Holdings.GroupBy); err != nil {
		errs = append(errs, fmt.Errorf("holdings.group_by: %w", err))
	}
	if _, err := wealth.ParseValueIn(c.Holdings.ValueIn); err != nil {
		errs = append(errs, fmt.Errorf("holdings.value_in: %w", err))
	}
	if _, err := wealth.ParseDirection(c.Holdings.SortDirection); err != nil {
		errs = append(errs, fmt.Errorf("holdings.sort_direction: %w", err))
	}
	if _, err := wealth.ParseGroupBy(c.Allocation.GroupBy); err != nil {
		errs = append(errs, fmt.Errorf("allocation.group_by: %w", err))
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ViewOptions returns the explicit engine parameters of the configuration.
// c must be valid.
func (c *Config) ViewOptions() view.Options {
	groupBy, _ := wealth.ParseGroupBy(c.Holdings.GroupBy)
	valueIn, _ := wealth.ParseValueIn(c.Holdings.ValueIn)
	return view.Options{
		GroupBy:         groupBy,
		ValueIn:         valueIn,
		HideEmpty:       c.Holdings.HideEmpty,
		DisplayCurrency: strings.ToUpper(c.Allocation.DisplayCurrency),
	}
}

// ViewState returns the initial view state of the configuration. c must be
// valid.
func (c *Config) ViewState() view.State {
	direction, _ := wealth.ParseDirection(c.Holdings.SortDirection)
	groupBy, _ := wealth.ParseGroupBy(c.Allocation.GroupBy)
	return view.State{
		Mode:               view.Table,
		Sort:               wealth.SortConfig{Key: wealth.ParseSortKey(c.Holdings.SortKey), Direction: direction},
		AllocationGroupBy:  groupBy,
		ExcludedCategories: c.Allocation.Exclude,
	}
}
