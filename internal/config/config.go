// Package config loads the flightboard configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/flightboard"
	"github.com/bjaus/flightboard/internal/schedule"
)

// DefaultLineLength is the console width messages are wrapped to.
const DefaultLineLength = 94

// Config represents the application configuration. Unset sections fall back
// to the built-in schedule.
type Config struct {
	// Width messages and banners are wrapped to
	LineLength int `yaml:"line_length,omitempty"`

	// Schedule table layout, in display order
	Columns []ColumnConfig `yaml:"columns,omitempty"`

	// Airlines offered when adding a flight
	Airlines []string `yaml:"airlines,omitempty"`

	// Flights tracked at startup
	Flights []schedule.Flight `yaml:"flights,omitempty"`
}

// ColumnConfig is one schedule table column.
type ColumnConfig struct {
	Field   string `yaml:"field"`
	Heading string `yaml:"heading"`
	Width   int    `yaml:"width"`
	Align   string `yaml:"align,omitempty"`
}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/flightboard/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flightboard", "config.yaml"), nil
}

// DefaultConfigPath returns ~/.config/flightboard/config.yaml
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		LineLength: DefaultLineLength,
		Airlines:   schedule.DefaultAirlines(),
		Flights:    schedule.DefaultFlights(),
	}
	for _, col := range schedule.DefaultColumns() {
		cfg.Columns = append(cfg.Columns, ColumnConfig{Field: col.Field, Heading: col.Heading, Width: col.Width})
	}
	return cfg
}

// Load loads config from the default path, returns defaults if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. Sections missing from the
// file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.LineLength == 0 {
		c.LineLength = def.LineLength
	}
	if len(c.Columns) == 0 {
		c.Columns = def.Columns
	}
	if c.Airlines == nil {
		c.Airlines = def.Airlines
	}
	if c.Flights == nil {
		c.Flights = def.Flights
	}
}

// Validate checks the line length and that the column layout names each
// flight field exactly once.
func (c *Config) Validate() error {
	if c.LineLength <= 0 {
		return fmt.Errorf("line_length must be positive, got %d", c.LineLength)
	}
	cols, err := c.TableColumns()
	if err != nil {
		return err
	}
	// Checked against the flight fields, not the seed flights.
	if _, err := flightboard.RenderRow(cols, schedule.Flight{}.Record()); err != nil {
		return fmt.Errorf("columns must name each flight field once: %w", err)
	}
	return nil
}

// TableColumns converts the configured columns into a validated layout.
func (c *Config) TableColumns() (flightboard.Columns, error) {
	cols := make(flightboard.Columns, len(c.Columns))
	for i, cc := range c.Columns {
		align, err := flightboard.ParseAlignment(cc.Align)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cc.Field, err)
		}
		cols[i] = flightboard.Column{Field: cc.Field, Heading: cc.Heading, Width: cc.Width, Align: align}
	}
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	return cols, nil
}

// Repository seeds a schedule repository from the configured airlines and
// flights.
func (c *Config) Repository(opts ...schedule.Option) *schedule.Repository {
	return schedule.New(c.Airlines, c.Flights, opts...)
}
