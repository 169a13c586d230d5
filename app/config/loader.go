package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the calendar configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the calendar configuration file. A missing file is not an
// error: defaults describe a complete calendar on their own.
func (l *Loader) Load() (*CalendarConfig, error) {
	config := &CalendarConfig{}

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		switch {
		case os.IsNotExist(err):
			log.Printf("No configuration file at %s, using defaults", l.path)
		case err != nil:
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse YAML: %w", err)
			}
			log.Printf("Loaded configuration from %s", l.path)
		}
	}

	l.setDefaults(config)

	if err := l.validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *CalendarConfig) {
	if config.Calendar.Name == "" {
		config.Calendar.Name = "Calendar"
	}
	if config.Calendar.Timezone == "" {
		config.Calendar.Timezone = "Australia/Sydney"
	}
	if config.Calendar.UIDDomain == "" {
		config.Calendar.UIDDomain = "sheetcal"
	}
	if config.Settings.RefreshInterval == 0 {
		config.Settings.RefreshInterval = 3600 // seconds
	}
	if config.Settings.CombinedName == "" {
		config.Settings.CombinedName = "all"
	}
}

// validate validates the configuration
func (l *Loader) validate(config *CalendarConfig) error {
	if _, err := time.LoadLocation(config.Calendar.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", config.Calendar.Timezone, err)
	}

	if config.Settings.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must be non-negative")
	}

	return nil
}
