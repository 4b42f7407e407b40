// Package config loads, validates and persists poolheat configuration.
//
// Configuration is layered: built-in defaults, then the global file at
// $POOLHEAT_HOME/config.yaml (default ~/.poolheat/config.yaml), then an
// optional project overlay, then environment variables. CLI flags are applied
// last by the caller.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/logging"
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Report formats accepted by report.format.
const (
	ReportText     = "text"
	ReportMarkdown = "markdown"
	ReportJSON     = "json"
)

const (
	// HomeEnvVar overrides the poolheat home directory.
	HomeEnvVar = "POOLHEAT_HOME"

	// DirName is the directory name used for both global and project config.
	DirName = ".poolheat"

	// FileName is the configuration file name inside DirName.
	FileName = "config.yaml"

	defaultPrecision    = 2
	defaultGasCost      = 2.00
	defaultDesiredTempF = 82
	configFilePerm      = 0o600
	configDirPerm       = 0o750
	outputTypeFile      = "file"
)

// Config is the full poolheat configuration.
type Config struct {
	Version  string         `yaml:"version"  json:"version"`
	Output   OutputConfig   `yaml:"output"   json:"output"`
	Logging  LoggingConfig  `yaml:"logging"  json:"logging"`
	Model    engine.Model   `yaml:"model"    json:"model"`
	Report   ReportConfig   `yaml:"report"   json:"report"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`

	configPath string
}

// OutputConfig controls estimate rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file"           json:"file"`
}

// ReportConfig holds the text printed on generated reports.
type ReportConfig struct {
	Format     string `yaml:"format"     json:"format"`
	Location   string `yaml:"location"   json:"location"`
	Contact    string `yaml:"contact"    json:"contact"`
	Disclaimer string `yaml:"disclaimer" json:"disclaimer"`
}

// DefaultsConfig supplies estimate inputs the user did not pass as flags.
type DefaultsConfig struct {
	Season             engine.Season        `yaml:"season"               json:"season"`
	GasCostPerTherm    float64              `yaml:"gas_cost_per_therm"   json:"gas_cost_per_therm"`
	DesiredTempF       float64              `yaml:"desired_temp_f"       json:"desired_temp_f"`
	LocalIncentiveKind engine.IncentiveKind `yaml:"local_incentive_kind" json:"local_incentive_kind"`
}

// DefaultDisclaimer is printed at the foot of every report unless overridden.
const DefaultDisclaimer = "Estimates assume constant panel output and a fixed annual gas price " +
	"escalation. Actual savings depend on weather, usage and utility rates."

// Default returns a configuration holding only built-in defaults.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Model: engine.DefaultModel(),
		Report: ReportConfig{
			Format:     ReportText,
			Disclaimer: DefaultDisclaimer,
		},
		Defaults: DefaultsConfig{
			Season:             engine.SeasonFullYear,
			GasCostPerTherm:    defaultGasCost,
			DesiredTempF:       defaultDesiredTempF,
			LocalIncentiveKind: engine.IncentivePercent,
		},
		configPath: DefaultConfigPath(),
	}
}

// New returns defaults overlaid with the global config file (when present)
// and environment overrides. A malformed file is reported on stderr and
// ignored so a broken config never blocks an estimate.
func New() *Config {
	cfg := Default()
	if err := cfg.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", cfg.configPath, err)
		cfg = Default()
	}
	cfg.ApplyEnvOverrides()
	return cfg
}

// HomeDir returns the poolheat home directory.
func HomeDir() string {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DirName
	}
	return filepath.Join(home, DirName)
}

// DefaultConfigPath returns the global configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), FileName)
}

// ConfigPath returns the file this configuration loads from and saves to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads the config file onto c. Fields absent from the file keep their
// current values. Returns an error wrapping os.ErrNotExist when there is no
// file.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if err = CheckVersion(c.Version); err != nil {
		return err
	}
	return nil
}

// Save writes c to its config path, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if err := CheckVersion(c.Version); err != nil {
		errs = append(errs, err)
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q (must be table, json or ndjson)",
			ErrInvalidOutputFormat, c.Output.DefaultFormat))
	}

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}
	if !logging.ValidFormat(c.Logging.Format) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}

	switch c.Report.Format {
	case ReportText, ReportMarkdown, ReportJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidReportFormat, c.Report.Format))
	}

	if err := c.Model.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidModel, err))
	}

	if err := c.Defaults.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (d DefaultsConfig) validate() error {
	g := d.GasCostPerTherm
	if !(g > 0) || math.IsInf(g, 0) {
		return fmt.Errorf("%w: gas_cost_per_therm must be positive, got %v", ErrInvalidDefaults, g)
	}
	if math.IsNaN(d.DesiredTempF) || math.IsInf(d.DesiredTempF, 0) {
		return fmt.Errorf("%w: desired_temp_f must be finite", ErrInvalidDefaults)
	}
	return nil
}

// EnsureConfigDir creates the poolheat home directory.
func EnsureConfigDir() error {
	return os.MkdirAll(HomeDir(), configDirPerm)
}

//nolint:gochecknoglobals // Process-wide configuration for the running command.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// InitGlobalConfig loads the configuration once per process.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
}

// GetGlobalConfig returns the process-wide configuration, loading it on first
// use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}
	InitGlobalConfig()
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process-wide configuration. Passing nil forces
// the next GetGlobalConfig to reload.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}
