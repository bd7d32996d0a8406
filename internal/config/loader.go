package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".asbscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration. All fields are optional;
// zero values leave the corresponding Config field untouched.
type File struct {
	// Columns renames the expected column headers.
	Columns ColumnNames `yaml:"columns"`

	// Alpha overrides the significance threshold.
	Alpha float64 `yaml:"alpha"`

	// Output overrides the cleaned-CSV path.
	Output string `yaml:"output"`

	// Charts overrides the HTML dashboard path.
	Charts string `yaml:"charts"`
}

// LoadConfigFile loads overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply overlays the file's non-zero values onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.Columns.ResponseTime != "" {
		cfg.Columns.ResponseTime = f.Columns.ResponseTime
	}
	if f.Columns.Hour != "" {
		cfg.Columns.Hour = f.Columns.Hour
	}
	if f.Columns.IncidentType != "" {
		cfg.Columns.IncidentType = f.Columns.IncidentType
	}
	if f.Columns.Borough != "" {
		cfg.Columns.Borough = f.Columns.Borough
	}
	if f.Alpha != 0 {
		cfg.Alpha = f.Alpha
	}
	if f.Output != "" {
		cfg.OutputPath = f.Output
	}
	if f.Charts != "" {
		cfg.ChartsPath = f.Charts
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .asbscan in the current directory
// 3. Look for .asbscan in the user's home directory
// 4. Look for .asbscan in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
