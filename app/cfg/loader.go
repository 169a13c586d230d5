package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input configuration
	Input      string `long:"input" env:"INPUT" default:"./calendar.csv" description:"Source file: a CSV file or a SQLite database"`
	InputTable string `long:"input-table" env:"INPUT_TABLE" default:"events" description:"Table to read when the input is a SQLite database"`
	ConfigFile string `long:"config" env:"CONFIG_FILE" default:"./calendar.yml" description:"Calendar configuration file"`

	// Output configuration
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"./public" description:"Directory for generated .ics documents"`

	// Serve mode configuration
	Serve           bool   `long:"serve" env:"SERVE" description:"Serve generated calendars over HTTP and rebuild periodically"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	RebuildInterval int    `long:"rebuild-interval" env:"REBUILD_INTERVAL" default:"300" description:"Rebuild interval in seconds (serve mode)"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for the rebuild endpoint (optional)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for log timestamps (e.g., UTC, Australia/Sydney)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Input:           raw.Input,
		InputTable:      raw.InputTable,
		ConfigFile:      raw.ConfigFile,
		OutputDir:       raw.OutputDir,
		Serve:           raw.Serve,
		Port:            raw.Port,
		RebuildInterval: raw.RebuildInterval,
		APIAccessKey:    raw.APIAccessKey,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
