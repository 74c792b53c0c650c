package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default layouts match the C locale's %x and %X.
const (
	DefaultDateLayout = "01/02/06"
	DefaultTimeLayout = "15:04:05"
	DefaultDataFile   = "time_clock_data.json"
	configDirName     = ".timeclock"
	configFileName    = "config.yaml"
)

// Config represents the time clock configuration.
// Relative paths are resolved against the working directory.
type Config struct {
	DataFile   string `yaml:"data_file"`
	JournalDB  string `yaml:"journal_db"`
	DateLayout string `yaml:"date_layout"`
	TimeLayout string `yaml:"time_layout"`
	NoColor    bool   `yaml:"no_color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataFile:   DefaultDataFile,
		JournalDB:  filepath.Join(configDirName, "journal.db"),
		DateLayout: DefaultDateLayout,
		TimeLayout: DefaultTimeLayout,
	}
}

// Path returns the config file location for a working directory.
func Path(dir string) string {
	return filepath.Join(dir, configDirName, configFileName)
}

// LoadConfig reads .timeclock/config.yaml from the specified directory.
// A missing file yields the defaults; blank fields fall back to defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if fileCfg.DataFile != "" {
		cfg.DataFile = fileCfg.DataFile
	}
	if fileCfg.JournalDB != "" {
		cfg.JournalDB = fileCfg.JournalDB
	}
	if fileCfg.DateLayout != "" {
		cfg.DateLayout = fileCfg.DateLayout
	}
	if fileCfg.TimeLayout != "" {
		cfg.TimeLayout = fileCfg.TimeLayout
	}
	cfg.NoColor = fileCfg.NoColor

	return cfg, nil
}

// SaveConfig writes config.yaml to the directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Join(dir, configDirName), 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", configDirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Resolve returns p joined to dir unless p is absolute.
func Resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
