package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/recbadge/recbadge/internal/logging"
)

// Config holds the widget settings loaded from recbadge.toml
type Config struct {
	HideDelaySeconds    int    `toml:"hideDelaySeconds"`    // Seconds before the hint label hides itself
	BlinkIntervalMillis int    `toml:"blinkIntervalMillis"` // Indicator blink period while recording
	StartRecording      bool   `toml:"startRecording"`      // Widget comes up in the recording state
	LogDir              string `toml:"logDir"`
}

const configFileName = "recbadge.toml"

// FindConfigFile looks for recbadge.toml next to the executable, then in the
// current directory, then in the install directory. Returns "" when no file
// exists anywhere.
func FindConfigFile() string {
	baseDirs := []string{}
	if exe, err := os.Executable(); err == nil {
		baseDirs = append(baseDirs, filepath.Dir(exe))
	}
	if cwd, err := os.Getwd(); err == nil {
		baseDirs = append(baseDirs, cwd)
	}
	baseDirs = append(baseDirs, GetInstallDir())

	for _, dir := range baseDirs {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfig reads the configuration file at path, falling back to defaults
// when path is empty or unreadable. Environment variables override the file.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		HideDelaySeconds:    15,
		BlinkIntervalMillis: 500,
		StartRecording:      true,
		LogDir:              "logs",
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, config); err != nil {
			logging.ErrorLogger.Printf("Error reading %s: %v", path, err)
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		logging.Trace("Loaded configuration from %s", path)
	} else {
		logging.WarningLogger.Printf("%s not found, using default configuration", configFileName)
	}

	if delay := os.Getenv("RECBADGE_HIDE_DELAY"); delay != "" {
		if seconds, err := strconv.Atoi(delay); err == nil && seconds > 0 {
			config.HideDelaySeconds = seconds
		} else {
			logging.WarningLogger.Printf("Ignoring invalid RECBADGE_HIDE_DELAY %q", delay)
		}
	}
	if interval := os.Getenv("RECBADGE_BLINK_INTERVAL"); interval != "" {
		if millis, err := strconv.Atoi(interval); err == nil && millis > 0 {
			config.BlinkIntervalMillis = millis
		} else {
			logging.WarningLogger.Printf("Ignoring invalid RECBADGE_BLINK_INTERVAL %q", interval)
		}
	}

	if config.HideDelaySeconds <= 0 {
		config.HideDelaySeconds = 15
	}
	if config.BlinkIntervalMillis <= 0 {
		config.BlinkIntervalMillis = 500
	}

	return config, nil
}

// HideDelay returns the hint label delay as a duration
func (c *Config) HideDelay() time.Duration {
	return time.Duration(c.HideDelaySeconds) * time.Second
}

// BlinkInterval returns the indicator blink period as a duration
func (c *Config) BlinkInterval() time.Duration {
	return time.Duration(c.BlinkIntervalMillis) * time.Millisecond
}

// GetInstallDir returns the per-user application directory
func GetInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "recbadge")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "recbadge")
	default:
		return filepath.Join(home, ".local", "share", "recbadge")
	}
}

// UpdateConfigFile rewrites the configuration file at path with the current
// values of cfg, creating it when missing.
func UpdateConfigFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logging.InfoLogger.Printf("Updated config file at %s", path)
	return nil
}
